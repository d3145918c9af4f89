package clipboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upiscan/internal/clipboard"
	"upiscan/internal/config"
)

func TestNew(t *testing.T) {
	for _, provider := range []string{"", "noop", "system"} {
		t.Run(provider, func(t *testing.T) {
			sink, err := clipboard.New(&config.ClipboardConfig{Provider: provider})
			require.NoError(t, err)
			assert.NotNil(t, sink)
		})
	}

	_, err := clipboard.New(&config.ClipboardConfig{Provider: "wayland"})
	assert.Error(t, err)
}

func TestNoopClipboard_Copy(t *testing.T) {
	sink, err := clipboard.New(&config.ClipboardConfig{Provider: "noop"})
	require.NoError(t, err)
	assert.NoError(t, sink.Copy(context.Background(), "UPI Id", "merchant@bank"))
}
