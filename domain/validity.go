package domain

import "time"

// Validity is the derived usability state of a token's time window. It is
// computed on demand and never persisted.
type Validity string

const (
	// ValidityPermanent means neither window bound is set: the token is
	// usable for as long as its status allows.
	ValidityPermanent Validity = "permanent"
	// ValidityActive means the window has not closed yet. A future start
	// time does not gate usage; it is a display-only lower bound.
	ValidityActive Validity = "active"
	// ValidityExpired means the end of the window has passed.
	ValidityExpired Validity = "expired"
)

// EvaluateValidity computes the effective window state of t at the given
// instant. Status is a separate gate composed by the consumer: a disabled
// token must be rejected even when its window evaluates to Active, and an
// expired window wins regardless of status.
func EvaluateValidity(t *Token, now time.Time) Validity {
	if t.StartTime == nil && t.EndTime == nil {
		return ValidityPermanent
	}
	if t.EndTime != nil && t.EndTime.Before(now) {
		return ValidityExpired
	}
	return ValidityActive
}
