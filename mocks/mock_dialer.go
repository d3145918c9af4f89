package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDialer is a mock implementation of port.Dialer.
type MockDialer struct {
	mock.Mock
}

func (m *MockDialer) Dial(ctx context.Context, uri string) error {
	args := m.Called(ctx, uri)
	return args.Error(0)
}
