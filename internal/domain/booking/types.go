package booking

import "strings"

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// StateKind enumerates the time-relative listing categories. WAITING and
// REJECTED filter on status; CURRENT, PAST and FUTURE filter on the booking
// period relative to a single "now" snapshot taken by the caller.
type StateKind int

const (
	StateAll StateKind = iota
	StateWaiting
	StateRejected
	StateCurrent
	StatePast
	StateFuture
	StateUnknown
)

// StateFilter is a closed tagged variant over the listing categories. An
// unrecognized input parses to the StateUnknown variant, which keeps the
// original literal so callers can report it back verbatim.
type StateFilter struct {
	kind    StateKind
	literal string
}

var stateKinds = map[string]StateKind{
	"ALL":      StateAll,
	"WAITING":  StateWaiting,
	"REJECTED": StateRejected,
	"CURRENT":  StateCurrent,
	"PAST":     StatePast,
	"FUTURE":   StateFuture,
}

// ParseStateFilter is case-insensitive and never fails; check Known on the
// result before using it in a query.
func ParseStateFilter(raw string) StateFilter {
	if kind, ok := stateKinds[strings.ToUpper(raw)]; ok {
		return StateFilter{kind: kind, literal: raw}
	}
	return StateFilter{kind: StateUnknown, literal: raw}
}

func (f StateFilter) Kind() StateKind {
	return f.kind
}

func (f StateFilter) Known() bool {
	return f.kind != StateUnknown
}

// Literal returns the raw input the filter was parsed from.
func (f StateFilter) Literal() string {
	return f.literal
}
