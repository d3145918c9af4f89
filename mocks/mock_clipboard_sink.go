package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClipboardSink is a mock implementation of port.ClipboardSink.
type MockClipboardSink struct {
	mock.Mock
}

func (m *MockClipboardSink) Copy(ctx context.Context, label, text string) error {
	args := m.Called(ctx, label, text)
	return args.Error(0)
}
