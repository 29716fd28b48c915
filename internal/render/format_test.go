package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "500", FormatCount(500))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "100,000", FormatCount(100000))
	assert.Equal(t, "0", FormatCount(0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.0%", FormatPercent(50))
	assert.Equal(t, "99.9%", FormatPercent(99.94))
	assert.Equal(t, "0.0%", FormatPercent(0))
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0d 0h 0m"},
		{90 * time.Second, "0d 0h 1m"},
		{26*time.Hour + 5*time.Minute, "1d 2h 5m"},
		{72 * time.Hour, "3d 0h 0m"},
		{-time.Second, NA},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUptime(tt.d))
	}
}

func TestFormatLoad(t *testing.T) {
	assert.Equal(t, "1.23, 0.50, 0.10", FormatLoad([3]float64{1.234, 0.5, 0.1}))
}

func TestBarFill(t *testing.T) {
	tests := []struct {
		width   int
		percent float64
		want    int
	}{
		{40, 50, 20},
		{40, 0, 0},
		{40, 100, 40},
		{40, 51, 20}, // 20.4 rounds down
		{40, 54, 22}, // 21.6 rounds up
		{100, 33.3, 33},
		{0, 50, 0},
		{40, -5, 0},
		{40, 150, 40},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BarFill(tt.width, tt.percent), "BarFill(%d, %v)", tt.width, tt.percent)
	}
}
