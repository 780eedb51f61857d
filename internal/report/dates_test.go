package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2025, time.September, 15, 13, 45, 0, 0, time.Local)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantFrom   string
		wantTo     string
	}{
		{"defaults to today", "", "", "2025-09-15", "2025-09-15"},
		{"explicit range", "2025-09-01", "2025-09-14", "2025-09-01", "2025-09-14"},
		{"malformed start", "14/09/2025", "2025-09-20", "2025-09-15", "2025-09-20"},
		{"missing end", "2025-09-10", "", "2025-09-10", "2025-09-15"},
		{"reversed bounds are swapped", "2025-09-14", "2025-09-01", "2025-09-01", "2025-09-14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseRange(tt.start, tt.end, today)
			assert.Equal(t, tt.wantFrom, r.Start())
			assert.Equal(t, tt.wantTo, r.End())
			assert.Zero(t, r.From.Hour())
		})
	}
}

func TestRangeLabels(t *testing.T) {
	single := ParseRange("2025-09-15", "2025-09-15", today)
	assert.True(t, single.SingleDay())
	assert.Equal(t, "Senin, 15 September 2025", single.Label())
	assert.Equal(t, "15 Sep 2025", single.ShortLabel())
	assert.Equal(t, "20250915_20250915", single.FileSuffix())

	multi := ParseRange("2025-08-31", "2025-09-02", today)
	assert.False(t, multi.SingleDay())
	assert.Equal(t, "Minggu, 31 Agustus 2025 s/d Selasa, 02 September 2025", multi.Label())
	assert.Equal(t, "31 Agu 2025 s/d 02 Sep 2025", multi.ShortLabel())
	assert.Equal(t, "20250831_20250902", multi.FileSuffix())
}
