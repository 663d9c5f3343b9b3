// ================== internal/pkg/decay/decay.go ==================
package decay

import (
	"math"
	"time"
)

// Exponential returns e^(-lambda * ageDays). Used for interest accumulation
// and for the recency term in candidate scoring. Negative ages are clamped
// to zero so clock skew can never inflate a score.
func Exponential(ageDays, lambda float64) float64 {
	if ageDays < 0 {
		ageDays = 0
	}
	return math.Exp(-lambda * ageDays)
}

// Logarithmic returns 1 / (1 + ln(ageDays)). Used for trending popularity.
// Ages below one day are floored at 1 so same-day items never produce a
// negative or divergent logarithm.
func Logarithmic(ageDays float64) float64 {
	if ageDays < 1 {
		ageDays = 1
	}
	return 1 / (1 + math.Log(ageDays))
}

// AgeDays returns the age of created relative to now, in days. A zero or
// future creation time yields 0, so the caller's decay factor stays at 1.
func AgeDays(now, created time.Time) float64 {
	if created.IsZero() || created.After(now) {
		return 0
	}
	return now.Sub(created).Hours() / 24
}
