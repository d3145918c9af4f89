package clipboard

import (
	"fmt"

	"upiscan/internal/clipboard/noop"
	"upiscan/internal/clipboard/system"
	"upiscan/internal/config"
	"upiscan/internal/port"
)

// New returns the ClipboardSink named by cfg.Provider.
func New(cfg *config.ClipboardConfig) (port.ClipboardSink, error) {
	switch cfg.Provider {
	case "", "noop":
		return noop.NewNoopClipboard(), nil
	case "system":
		return system.NewSystemClipboard(), nil
	default:
		return nil, fmt.Errorf("unknown clipboard provider: %s", cfg.Provider)
	}
}
