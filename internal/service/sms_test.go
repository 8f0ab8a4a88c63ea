package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/smsassistent/client-go/internal/mocks"
	"github.com/smsassistent/client-go/internal/service"
	"github.com/smsassistent/client-go/pkg/smsassistent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSMS_Balance(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns client balance", func(t *testing.T) {
		mockClient := &mocks.Messenger{}
		svc := service.NewSMSService(mockClient, logger)

		mockClient.On("Balance", ctx).Return(3.50, nil)

		balance, err := svc.Balance(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3.50, balance)
		mockClient.AssertExpectations(t)
	})

	t.Run("propagates client error", func(t *testing.T) {
		mockClient := &mocks.Messenger{}
		svc := service.NewSMSService(mockClient, logger)

		svcErr := smsassistent.MapServiceError(-10)
		mockClient.On("Balance", ctx).Return(0.0, svcErr)

		_, err := svc.Balance(ctx)

		assert.Equal(t, svcErr, err)
		mockClient.AssertExpectations(t)
	})
}

func TestSMS_SendMessage(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	cmd := service.SendMessageCommand{
		Phone:  "375291234567",
		Text:   "Hi",
		Sender: "Shop",
		SendAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local),
	}

	t.Run("passes options through and returns id", func(t *testing.T) {
		mockClient := &mocks.Messenger{}
		svc := service.NewSMSService(mockClient, logger)

		expectedOpts := &smsassistent.SendOptions{Sender: cmd.Sender, SendAt: cmd.SendAt}
		mockClient.On("SendMessage", ctx, cmd.Phone, cmd.Text, expectedOpts).Return(int64(12345), nil)

		id, err := svc.SendMessage(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(12345), id)
		mockClient.AssertExpectations(t)
	})

	t.Run("propagates client error", func(t *testing.T) {
		mockClient := &mocks.Messenger{}
		svc := service.NewSMSService(mockClient, logger)

		svcErr := smsassistent.MapServiceError(-4)
		mockClient.On("SendMessage", ctx, cmd.Phone, cmd.Text,
			&smsassistent.SendOptions{Sender: cmd.Sender, SendAt: cmd.SendAt}).Return(int64(0), svcErr)

		_, err := svc.SendMessage(ctx, cmd)

		assert.Equal(t, svcErr, err)
		mockClient.AssertExpectations(t)
	})
}

func TestSMS_SendBatch(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	cmd := service.SendBatchCommand{
		Messages: []smsassistent.Message{{Phone: "375291234567", Text: "Hi"}},
		Defaults: smsassistent.BatchDefaults{Sender: "Shop"},
	}

	t.Run("accepted batch", func(t *testing.T) {
		mockClient := &mocks.Messenger{}
		svc := service.NewSMSService(mockClient, logger)

		expectedOpts := &smsassistent.BatchOptions{Defaults: cmd.Defaults, SendAt: cmd.SendAt}
		mockClient.On("SendMessages", ctx, cmd.Messages, expectedOpts).Return(true, nil)

		accepted, err := svc.SendBatch(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, accepted)
		mockClient.AssertExpectations(t)
	})

	t.Run("rejected batch is not an error", func(t *testing.T) {
		mockClient := &mocks.Messenger{}
		svc := service.NewSMSService(mockClient, logger)

		mockClient.On("SendMessages", ctx, cmd.Messages,
			&smsassistent.BatchOptions{Defaults: cmd.Defaults}).Return(false, nil)

		accepted, err := svc.SendBatch(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, accepted)
		mockClient.AssertExpectations(t)
	})

	t.Run("propagates authentication error", func(t *testing.T) {
		mockClient := &mocks.Messenger{}
		svc := service.NewSMSService(mockClient, logger)

		mockClient.On("SendMessages", ctx, cmd.Messages,
			&smsassistent.BatchOptions{Defaults: cmd.Defaults}).Return(false, smsassistent.ErrMissingUsername)

		_, err := svc.SendBatch(ctx, cmd)

		assert.ErrorIs(t, err, smsassistent.ErrAuthentication)
		mockClient.AssertExpectations(t)
	})
}
