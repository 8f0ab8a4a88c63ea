package service

import (
	"context"

	"github.com/smsassistent/client-go/pkg/smsassistent"
	"go.uber.org/zap"
)

// Messenger is the slice of the SMS client the service depends on.
type Messenger interface {
	Balance(ctx context.Context) (float64, error)
	SendMessage(ctx context.Context, phone, text string, opts *smsassistent.SendOptions) (int64, error)
	SendMessages(ctx context.Context, messages []smsassistent.Message, opts *smsassistent.BatchOptions) (bool, error)
}

type SMSService interface {
	Balance(ctx context.Context) (float64, error)
	SendMessage(ctx context.Context, cmd SendMessageCommand) (int64, error)
	SendBatch(ctx context.Context, cmd SendBatchCommand) (bool, error)
}

type sms struct {
	client Messenger
	logger *zap.Logger
}

func NewSMSService(client Messenger, logger *zap.Logger) SMSService {
	return &sms{client: client, logger: logger}
}

func (s *sms) Balance(ctx context.Context) (float64, error) {
	balance, err := s.client.Balance(ctx)
	if err != nil {
		s.logger.Warn("Failed to retrieve balance", zap.Error(err))
		return 0, err
	}

	s.logger.Debug("Balance retrieved", zap.Float64("balance", balance))

	return balance, nil
}

func (s *sms) SendMessage(ctx context.Context, cmd SendMessageCommand) (int64, error) {
	opts := &smsassistent.SendOptions{Sender: cmd.Sender, SendAt: cmd.SendAt}

	id, err := s.client.SendMessage(ctx, cmd.Phone, cmd.Text, opts)
	if err != nil {
		s.logger.Warn("SMS send failed",
			zap.Error(err),
			zap.String("to", cmd.Phone))
		return 0, err
	}

	s.logger.Info("SMS sent successfully",
		zap.Int64("messageID", id),
		zap.String("to", cmd.Phone))

	return id, nil
}

func (s *sms) SendBatch(ctx context.Context, cmd SendBatchCommand) (bool, error) {
	opts := &smsassistent.BatchOptions{Defaults: cmd.Defaults, SendAt: cmd.SendAt}

	accepted, err := s.client.SendMessages(ctx, cmd.Messages, opts)
	if err != nil {
		s.logger.Warn("Batch send failed",
			zap.Error(err),
			zap.Int("messages", len(cmd.Messages)))
		return false, err
	}

	if !accepted {
		s.logger.Warn("Batch rejected by the service",
			zap.Int("messages", len(cmd.Messages)))
		return false, nil
	}

	s.logger.Info("Batch accepted",
		zap.Int("messages", len(cmd.Messages)))

	return true, nil
}
