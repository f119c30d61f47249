package edge

import "fmt"

// Action describes how a setter corrected an out-of-range input.
type Action uint8

const (
	// ActionClamped means the value was reduced to the field's limit or to a
	// defined default, and the corrected value was stored.
	ActionClamped Action = iota + 1
	// ActionMasked means the value was bitwise-masked down to the legal bit
	// pattern, and the masked value was stored.
	ActionMasked
	// ActionIgnored means the operation was skipped and the prior stored
	// value was preserved.
	ActionIgnored
)

func (a Action) String() string {
	switch a {
	case ActionClamped:
		return "clamped"
	case ActionMasked:
		return "masked"
	case ActionIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Diagnostic reports a recoverable out-of-range input to a setter. Setters
// return nil when the input was within range. The record is always left in a
// legal state: the Applied value (for clamp/mask) or the prior value (for
// ignore) is the contract, so callers may collect diagnostics or drop them.
type Diagnostic struct {
	// Field is the name of the record field the setter targets.
	Field string
	// Action is the correction that was applied.
	Action Action
	// Given is the out-of-range input value (the index for ignored per-index
	// operations).
	Given uint64
	// Applied is the value actually stored. Zero and meaningless for
	// ActionIgnored.
	Applied uint64
}

func (d *Diagnostic) String() string {
	if d.Action == ActionIgnored {
		return fmt.Sprintf("%s: index %d out of range, ignored", d.Field, d.Given)
	}

	return fmt.Sprintf("%s: value %d out of range, %s to %d", d.Field, d.Given, d.Action, d.Applied)
}

func clamped(field string, given, applied uint64) *Diagnostic {
	return &Diagnostic{Field: field, Action: ActionClamped, Given: given, Applied: applied}
}

func masked(field string, given, applied uint64) *Diagnostic {
	return &Diagnostic{Field: field, Action: ActionMasked, Given: given, Applied: applied}
}

func ignored(field string, given uint64) *Diagnostic {
	return &Diagnostic{Field: field, Action: ActionIgnored, Given: given}
}
