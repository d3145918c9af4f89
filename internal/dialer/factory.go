package dialer

import (
	"fmt"

	"upiscan/internal/config"
	"upiscan/internal/dialer/noop"
	"upiscan/internal/port"
)

// New returns the Dialer named by cfg.Provider.
func New(cfg *config.DialerConfig) (port.Dialer, error) {
	switch cfg.Provider {
	case "", "noop":
		return noop.NewNoopDialer(), nil
	default:
		return nil, fmt.Errorf("unknown dialer provider: %s", cfg.Provider)
	}
}
