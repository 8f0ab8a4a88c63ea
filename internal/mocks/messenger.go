package mocks

import (
	"context"

	"github.com/smsassistent/client-go/pkg/smsassistent"
	"github.com/stretchr/testify/mock"
)

type Messenger struct {
	mock.Mock
}

func (_m *Messenger) Balance(ctx context.Context) (float64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(float64), ret.Error(1)
}

func (_m *Messenger) SendMessage(ctx context.Context, phone, text string, opts *smsassistent.SendOptions) (int64, error) {
	ret := _m.Called(ctx, phone, text, opts)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *Messenger) SendMessages(ctx context.Context, messages []smsassistent.Message, opts *smsassistent.BatchOptions) (bool, error) {
	ret := _m.Called(ctx, messages, opts)
	return ret.Get(0).(bool), ret.Error(1)
}
