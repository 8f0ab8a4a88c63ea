package smsassistent

// DefaultBaseURL is the production endpoint of the sms-assistent.by HTTP API.
const DefaultBaseURL = "https://userarea.sms-assistent.by/api/v1/"

type Config struct {
	BaseURL  string `mapstructure:"base_url"`
	Username string `mapstructure:"username"`
	Token    string `mapstructure:"token"`
	Password string `mapstructure:"password"`
	Sender   string `mapstructure:"sender"`
}
