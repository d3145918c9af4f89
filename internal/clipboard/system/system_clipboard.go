package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"upiscan/internal/port"
)

// ErrUnsupported is returned when no clipboard utility is available on this host.
var ErrUnsupported = errors.New("system clipboard unavailable")

type systemClipboard struct {
	write func(string) error
}

// NewSystemClipboard creates a ClipboardSink backed by the OS clipboard.
// The label is not stored; desktop clipboards hold plain text only.
func NewSystemClipboard() port.ClipboardSink {
	return &systemClipboard{write: clipboard.WriteAll}
}

func (c *systemClipboard) Copy(ctx context.Context, _ string, text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
