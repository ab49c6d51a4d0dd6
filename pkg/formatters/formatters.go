// Package formatters provides human-readable formatting for byte counts,
// durations, and time-remaining estimates.
package formatters

import (
	"fmt"
	"math"
	"time"
)

// Exported constants.
const (
	// BytesPerKB is the number of bytes in a kibibyte.
	BytesPerKB int64 = 1 << 10
	// BytesPerMB is the number of bytes in a mebibyte.
	BytesPerMB int64 = 1 << 20
	// BytesPerGB is the number of bytes in a gibibyte.
	BytesPerGB int64 = 1 << 30
	// BytesPerTB is the number of bytes in a tebibyte.
	BytesPerTB int64 = 1 << 40

	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// FormatSize formats a byte count as a human-readable magnitude string.
// Thresholds are checked largest-first; a value exactly at a threshold reports
// in that unit (exactly 1 GiB is "1.00 GB", not "1024.00 MB"). Values below
// 1 KiB are reported as plain bytes.
func FormatSize(bytes int64) string {
	switch {
	case bytes >= BytesPerTB:
		return fmt.Sprintf("%.2f TB", roundTwoDecimals(float64(bytes)/float64(BytesPerTB)))
	case bytes >= BytesPerGB:
		return fmt.Sprintf("%.2f GB", roundTwoDecimals(float64(bytes)/float64(BytesPerGB)))
	case bytes >= BytesPerMB:
		return fmt.Sprintf("%.2f MB", roundTwoDecimals(float64(bytes)/float64(BytesPerMB)))
	case bytes >= BytesPerKB:
		return fmt.Sprintf("%.2f KB", roundTwoDecimals(float64(bytes)/float64(BytesPerKB)))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}

// roundTwoDecimals rounds half away from zero at two decimal places, so that
// 1023.995 becomes 1024.00 rather than relying on printf's half-even rounding.
func roundTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatETA formats a remaining-time estimate in seconds with unit-appropriate
// rounding: seconds below a minute, whole minutes below an hour, otherwise
// whole hours with the remainder in minutes.
func FormatETA(seconds int64) string {
	switch {
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%ds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%dm", seconds/secondsPerMinute)
	default:
		hours := seconds / secondsPerHour
		minutes := (seconds % secondsPerHour) / secondsPerMinute
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}

// FormatDuration formats an elapsed duration as "2m 30s" style text.
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	hours := duration / time.Hour
	duration %= time.Hour
	minutes := duration / time.Minute
	duration %= time.Minute
	seconds := duration / time.Second

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}
