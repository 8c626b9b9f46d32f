package stay

import "time"

// State is the lifecycle state of a reservation. Only cancellation is ever
// stored; the calendar states are derived from the range and a reference
// time, so stored state can never drift out of sync with the calendar.
type State string

const (
	StatePending   State = "pending"
	StateActive    State = "active"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
)

// Terminal reports whether the state excludes the reservation from conflict
// checks: a completed or cancelled stay no longer occupies calendar time.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// StateOf derives the lifecycle state of a stay as of the given moment.
// Cancellation wins over the calendar. The asOf moment is expected to be
// read once per request and threaded through, so a single operation never
// observes two different "nows".
// The asOf instant is reduced to its calendar date before comparing, so a
// stay is active from the first moment of its check-in day in the caller's
// timezone, not from the UTC midnight instant.
func StateOf(r Range, cancelled bool, asOf time.Time) State {
	if cancelled {
		return StateCancelled
	}

	today := Date(asOf)

	if today.Before(r.CheckIn) {
		return StatePending
	}

	if today.Before(r.CheckOut) {
		return StateActive
	}

	return StateCompleted
}
