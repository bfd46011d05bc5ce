package reservation

// transitions is the legal status graph. Pending is the only non-terminal
// origin besides Confirmed; nothing leaves Cancelled or Completed.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// ValidateTransition checks the requested move against the status graph.
// Role gating (diners may never transition, operators only on their own
// restaurants) is the access guard's job, not the lifecycle's.
func ValidateTransition(from, to Status) error {
	if !from.IsValid() || !to.IsValid() {
		return ErrInvalidStatus
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return ErrIllegalTransition
}

// NextStatuses returns the statuses reachable from s in one step.
func NextStatuses(s Status) []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}
