package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockBarcodeDecoder is a mock implementation of port.BarcodeDecoder.
type MockBarcodeDecoder struct {
	mock.Mock
}

func (m *MockBarcodeDecoder) Decode(ctx context.Context, image []byte) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}
