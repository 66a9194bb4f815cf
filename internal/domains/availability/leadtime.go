package availability

import "time"

type LeadTimeDecision struct {
	Allowed bool
	GapDays int
}

// CheckLeadTime rejects a check-in only when it is strictly fewer than minLeadDays days away.
func CheckLeadTime(checkIn, now time.Time, minLeadDays int) LeadTimeDecision {
	gap := DaysBetween(now, checkIn)

	return LeadTimeDecision{
		Allowed: gap >= minLeadDays,
		GapDays: gap,
	}
}
