package valueobjects

// Status names a complaint lifecycle state. Status rows live in the
// database as operator-configured data; these constants are the names the
// engine resolves against that table at runtime.
type Status string

const (
	StatusOpen        Status = "OPEN"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusResolved    Status = "RESOLVED"
	StatusRejected    Status = "REJECTED"
)

var validStatuses = map[Status]bool{
	StatusOpen:        true,
	StatusUnderReview: true,
	StatusResolved:    true,
	StatusRejected:    true,
}

// statusTransitions encodes the forward-only lifecycle. Terminal states
// have no outgoing transitions.
var statusTransitions = map[Status][]Status{
	StatusOpen: {
		StatusUnderReview,
		StatusResolved,
		StatusRejected,
	},
	StatusUnderReview: {
		StatusResolved,
		StatusRejected,
	},
	StatusResolved: {},
	StatusRejected: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

func (s Status) CanTransitionTo(next Status) bool {
	// Re-stamping the same status is allowed: reassignment keeps a
	// complaint in UNDER_REVIEW.
	if s == next {
		return !s.IsTerminal()
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
