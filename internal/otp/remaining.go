package otp

import (
	"time"

	"github.com/MKhiriev/accbox/models"
)

// Urgency is the visual tier of the remaining time.
type Urgency int

const (
	// UrgencyNormal is more than 10 seconds left.
	UrgencyNormal Urgency = iota
	// UrgencyWarning is 6 to 10 seconds left.
	UrgencyWarning
	// UrgencyCritical is 5 seconds or less. The code is expiring.
	UrgencyCritical
)

func (u Urgency) String() string {
	switch u {
	case UrgencyWarning:
		return "warning"
	case UrgencyCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Expiring reports whether the code display should be marked as expiring.
func (u Urgency) Expiring() bool {
	return u == UrgencyCritical
}

// TimeRemaining returns the seconds left in the current window. At an exact
// multiple of period it returns period, never zero.
func TimeRemaining(now time.Time, period int) int {
	if period <= 0 {
		period = models.DefaultPeriod
	}
	p := int64(period)
	rem := now.Unix() % p
	if rem < 0 {
		rem += p
	}
	return int(p - rem)
}

// Progress returns remaining/period in [0, 1].
func Progress(remaining, period int) float64 {
	if period <= 0 {
		return 0
	}
	p := float64(remaining) / float64(period)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// UrgencyFor classifies remaining seconds.
func UrgencyFor(remaining int) Urgency {
	switch {
	case remaining <= 5:
		return UrgencyCritical
	case remaining <= 10:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}
