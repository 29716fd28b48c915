package render

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Placeholder for fields the snapshot could not provide.
const NA = "N/A"

// FormatCount renders an integer with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent renders a percentage to one decimal place.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatTemp renders a temperature in degrees Celsius.
func FormatTemp(c float64) string {
	return fmt.Sprintf("%.1f°C", c)
}

// FormatLoad renders the 1/5/15 minute load averages.
func FormatLoad(load [3]float64) string {
	return fmt.Sprintf("%.2f, %.2f, %.2f", load[0], load[1], load[2])
}

// FormatUptime converts a duration into a human-readable "Xd Yh Zm".
func FormatUptime(d time.Duration) string {
	if d < 0 {
		return NA
	}
	secs := int64(d.Seconds())
	days := secs / (24 * 3600)
	secs %= 24 * 3600
	hours := secs / 3600
	secs %= 3600
	minutes := secs / 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}

// BarFill computes how many of width cells a percentage fills, rounded
// to the nearest cell. Both surfaces share this rule so a 50% bar looks
// the same in the terminal and on the panel.
func BarFill(width int, percent float64) int {
	if width <= 0 {
		return 0
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return int(math.Round(float64(width) * percent / 100))
}

// orNA substitutes the placeholder for empty string values.
func orNA(s string) string {
	if s == "" {
		return NA
	}
	return s
}
