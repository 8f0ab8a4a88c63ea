package service

import (
	"time"

	"github.com/smsassistent/client-go/pkg/smsassistent"
)

type SendMessageCommand struct {
	Phone  string
	Text   string
	Sender string
	SendAt time.Time
}

type SendBatchCommand struct {
	Messages []smsassistent.Message
	Defaults smsassistent.BatchDefaults
	SendAt   time.Time
}
