package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 250 * time.Microsecond, want: "250µs"},
		{in: 42 * time.Millisecond, want: "42ms"},
		{in: 1500 * time.Millisecond, want: "1.5s"},
		{in: 90 * time.Second, want: "1.5m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.in))
		})
	}
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, "1.2s", Seconds(1.23))
	assert.Equal(t, "0µs", Seconds(0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
