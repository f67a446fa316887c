package fsutils

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestGetSizeShortText(t *testing.T) {
	const (
		kb = int64(1024)
		mb = 1024 * kb
		gb = 1024 * mb
		tb = 1024 * gb
	)
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{"empty_csv", 0, "0B"},
		{"header_only", 37, "37B"},
		{"just_below_kb", kb - 1, "1023B"},
		{"one_kb", kb, "1KB"},
		{"rounds_down", kb + kb/2 - 1, "1KB"},
		{"rounds_up", kb + kb/2, "2KB"},
		{"kb_rounds_to_mb", mb - 1, "1MB"},
		{"daily_export", 3*mb + 200*kb, "3MB"},
		{"mb_rounds_up", mb + mb/2, "2MB"},
		{"gb_boundary", gb - mb/2, "1GB"},
		{"one_tb", tb, "1TB"},
		{"tb_is_largest_unit", 1024 * tb, "1024TB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSizeShortText(tt.size))
		})
	}
}
