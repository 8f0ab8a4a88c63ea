package v1

type SendMessageRequest struct {
	To     string `json:"to"`
	Text   string `json:"text"`
	Sender string `json:"sender,omitempty"`
	SendAt string `json:"send_at,omitempty"`
}

type SendBatchRequest struct {
	Messages      []BatchMessage `json:"messages"`
	DefaultText   string         `json:"default_text,omitempty"`
	DefaultSender string         `json:"default_sender,omitempty"`
	SendAt        string         `json:"send_at,omitempty"`
}

type BatchMessage struct {
	To     string `json:"to"`
	Text   string `json:"text,omitempty"`
	Sender string `json:"sender,omitempty"`
}
