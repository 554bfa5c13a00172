package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		def       int
		max       int
		want      int
	}{
		{"zero falls back to default", 0, 20, 100, 20},
		{"negative falls back to default", -5, 20, 100, 20},
		{"within range passes through", 50, 20, 100, 50},
		{"over max is clamped", 500, 20, 100, 100},
		{"exactly max passes through", 100, 20, 100, 100},
		{"one is valid", 1, 20, 100, 1},
		{"zero bounds use hard-coded fallbacks", 0, 0, 0, DefaultPageSize},
		{"oversized with zero bounds clamps to hard max", 500, 0, 0, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.requested, tt.def, tt.max))
		})
	}
}
