package rabbitmq

import (
	"strings"
	"testing"
)

func TestConsumerConfig_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		prefetch     int
		tag          string
		wantPrefetch int
		wantTag      string
	}{
		{"explicit", 4, "worker-1", 4, "worker-1"},
		{"zero prefetch -> default", 0, "t", defaultPrefetch, "t"},
		{"negative prefetch -> default", -1, "t", defaultPrefetch, "t"},
		{"spaced tag trimmed", 1, "  w  ", 1, "w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := ConsumerConfig{Prefetch: tt.prefetch, ConsumerTag: tt.tag}
			if got := cfg.prefetch(); got != tt.wantPrefetch {
				t.Fatalf("prefetch: want %d, got %d", tt.wantPrefetch, got)
			}
			if got := cfg.consumerTag(); got != tt.wantTag {
				t.Fatalf("consumerTag: want %q, got %q", tt.wantTag, got)
			}
		})
	}

	t.Run("generated tag is unique", func(t *testing.T) {
		t.Parallel()
		cfg := ConsumerConfig{}
		a, b := cfg.consumerTag(), cfg.consumerTag()
		if !strings.HasPrefix(a, "streets-consumer-") || a == b {
			t.Fatalf("unexpected generated tags %q %q", a, b)
		}
	})
}
