package v1

type SendMessageResponse struct {
	MessageID int64  `json:"message_id"`
	Status    string `json:"status"`
}

type SendBatchResponse struct {
	Accepted bool `json:"accepted"`
	Messages int  `json:"messages"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

type ErrorResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	ServiceCode int64  `json:"service_code,omitempty"`
}
