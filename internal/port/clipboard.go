package port

import "context"

// ClipboardSink accepts plain text under a human-readable label.
type ClipboardSink interface {
	Copy(ctx context.Context, label, text string) error
}
