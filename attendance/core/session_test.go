package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionValid(t *testing.T) {
	established := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	timeout := time.Hour

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{
			name:     "Fresh session",
			now:      established.Add(time.Minute),
			expected: true,
		},
		{
			name:     "Just under the timeout",
			now:      established.Add(59 * time.Minute),
			expected: true,
		},
		{
			name:     "Exactly at the timeout",
			now:      established.Add(60 * time.Minute),
			expected: false,
		},
		{
			name:     "Past the timeout",
			now:      established.Add(61 * time.Minute),
			expected: false,
		},
		{
			name:     "Same instant",
			now:      established,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SessionValid(established, tt.now, timeout))
		})
	}
}
