package domain

// Status is an order's position in the counter lifecycle.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

// lifecycle is the only allowed progression; no backward moves, no skips.
var lifecycle = []Status{StatusPending, StatusPreparing, StatusReady, StatusCompleted}

// Valid reports whether s is one of the four lifecycle states.
func (s Status) Valid() bool {
	for _, st := range lifecycle {
		if s == st {
			return true
		}
	}
	return false
}

// Next returns the immediate successor state. ok is false for
// StatusCompleted (terminal) and for unknown states.
func (s Status) Next() (Status, bool) {
	for i, st := range lifecycle {
		if s == st && i+1 < len(lifecycle) {
			return lifecycle[i+1], true
		}
	}
	return "", false
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool { return s == StatusCompleted }
