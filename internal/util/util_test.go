package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:                      "0 B",
		512:                    "512 B",
		1024:                   "1.0 KB",
		1536:                   "1.5 KB",
		100 * 1024:             "100.0 KB",
		1024 * 1024:            "1.0 MB",
		5 * 1024 * 1024 * 1024: "5.0 GB",
	}

	for in, want := range tests {
		assert.Equal(t, want, FormatBytes(in), "FormatBytes(%d)", in)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0s"},
		{in: 45 * time.Second, want: "45s"},
		{in: 59*time.Second + 500*time.Millisecond, want: "1m0s"},
		{in: 2*time.Minute + 30*time.Second, want: "2m30s"},
		{in: 26*time.Hour + 5*time.Minute, want: "26h5m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), "FormatDuration(%s)", tt.in)
	}
}
