package availability

import "hotel/config"

const (
	DefaultMinLeadDays       = 14
	DefaultSearchHorizonDays = 30
	DefaultMaxSuggestions    = 3
)

// Policy holds the booking rules the engine enforces.
type Policy struct {
	// MinLeadDays is the smallest accepted gap between today and check-in. A gap equal to
	// MinLeadDays is accepted.
	MinLeadDays int
	// SearchHorizonDays bounds the forward date-shift search.
	SearchHorizonDays int
	MaxSuggestions    int
	// VerifySubstitutes re-checks that a substitute room type has a free room for the stay.
	VerifySubstitutes bool
	// SuggestOnPending attaches alternatives to pending outcomes.
	SuggestOnPending bool
}

func DefaultPolicy() Policy {
	return Policy{
		MinLeadDays:       DefaultMinLeadDays,
		SearchHorizonDays: DefaultSearchHorizonDays,
		MaxSuggestions:    DefaultMaxSuggestions,
		VerifySubstitutes: true,
		SuggestOnPending:  true,
	}
}

func PolicyFromConfig(cfg *config.Config) Policy {
	policy := DefaultPolicy()

	if cfg.Booking.MinLeadDays > 0 {
		policy.MinLeadDays = cfg.Booking.MinLeadDays
	}

	if cfg.Booking.SearchHorizonDays > 0 {
		policy.SearchHorizonDays = cfg.Booking.SearchHorizonDays
	}

	if cfg.Booking.MaxSuggestions > 0 {
		policy.MaxSuggestions = cfg.Booking.MaxSuggestions
	}

	policy.VerifySubstitutes = cfg.Booking.VerifySubstitutes
	policy.SuggestOnPending = cfg.Booking.SuggestOnPending

	return policy
}
