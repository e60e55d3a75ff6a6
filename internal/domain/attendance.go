package domain

import "math"

// AttendanceTier buckets the attendance percentage for display.
type AttendanceTier string

const (
	TierHigh   AttendanceTier = "high"   // >= 80%
	TierMedium AttendanceTier = "medium" // 50-79%
	TierLow    AttendanceTier = "low"    // < 50%
)

// AttendancePercentage returns round(present/total*100), or 0 when total is
// not positive. Present above total is tolerated; the result is simply above
// 100. Every consumer (form badge, message text, submission payload) must go
// through this function so the three displays can never disagree.
func AttendancePercentage(present, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

// TierFor returns the display tier for a percentage.
func TierFor(percent int) AttendanceTier {
	switch {
	case percent >= 80:
		return TierHigh
	case percent >= 50:
		return TierMedium
	default:
		return TierLow
	}
}
