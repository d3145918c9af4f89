package noop

import (
	"context"
	"log"

	"upiscan/internal/port"
)

type noopClipboard struct{}

// NewNoopClipboard creates a ClipboardSink that only logs what would be copied.
func NewNoopClipboard() port.ClipboardSink {
	return &noopClipboard{}
}

func (c *noopClipboard) Copy(_ context.Context, label, text string) error {
	log.Printf("[NOOP CLIPBOARD] %s: %s", label, text)
	return nil
}
