package commands

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		name       string
		verbose    bool
		configured string
		want       slog.Level
	}{
		{"verbose wins over config", true, "error", slog.LevelDebug},
		{"config debug", false, "debug", slog.LevelDebug},
		{"config warn", false, "warn", slog.LevelWarn},
		{"config error", false, "error", slog.LevelError},
		{"default info", false, "", slog.LevelInfo},
		{"unknown falls back to info", false, "chatty", slog.LevelInfo},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseLogLevel(tc.verbose, tc.configured))
		})
	}
}
