package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"upiscan/internal/domain"
	"upiscan/internal/service"
)

// MockScanService is a mock implementation of service.ScanService.
type MockScanService struct {
	mock.Mock
}

func (m *MockScanService) Extract(ctx context.Context, payload string) (*domain.Extraction, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Extraction), args.Error(1)
}

func (m *MockScanService) Scan(ctx context.Context, payload string) (*domain.ScanResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanResult), args.Error(1)
}

func (m *MockScanService) ScanImage(ctx context.Context, input service.ImageScanInput) (*domain.ScanResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanResult), args.Error(1)
}

func (m *MockScanService) ExtractBatch(ctx context.Context, payloads []string) ([]domain.BatchItem, error) {
	args := m.Called(ctx, payloads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchItem), args.Error(1)
}

func (m *MockScanService) Inspect(ctx context.Context, payload string) (*domain.Inspection, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inspection), args.Error(1)
}
