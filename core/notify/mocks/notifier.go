package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Notifier is a mock implementation of notify.Notifier
type Notifier struct {
	mock.Mock
}

func (m *Notifier) Info(ctx context.Context, msg string) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *Notifier) Success(ctx context.Context, msg string) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *Notifier) Warning(ctx context.Context, msg string) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *Notifier) Error(ctx context.Context, msg string) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
