package noop

import (
	"context"
	"log"

	"upiscan/internal/port"
)

type noopDialer struct{}

// NewNoopDialer creates a Dialer that logs the URI instead of placing a call.
func NewNoopDialer() port.Dialer {
	return &noopDialer{}
}

func (d *noopDialer) Dial(_ context.Context, uri string) error {
	log.Printf("[NOOP DIAL] %s", uri)
	return nil
}
