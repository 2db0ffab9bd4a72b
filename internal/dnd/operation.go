package dnd

import (
	"fmt"
	"strings"
)

// Operation is the semantic effect of a completed drop.
type Operation int

const (
	OpNone Operation = iota
	OpMove
	OpCopy
	OpLink
	// OpCancel is only ever returned by a target's acceptance. It vetoes the
	// drop and always resolves to OpNone.
	OpCancel
)

// defaultPrecedence is used when several operations intersect and the target
// does not supply its own priority.
var defaultPrecedence = []Operation{OpMove, OpCopy, OpLink}

// String implements fmt.Stringer
func (o Operation) String() string {
	switch o {
	case OpMove:
		return "move"
	case OpCopy:
		return "copy"
	case OpLink:
		return "link"
	case OpCancel:
		return "cancel"
	default:
		return "none"
	}
}

// IsConcrete reports whether o is one of copy, move or link.
func (o Operation) IsConcrete() bool {
	return o == OpMove || o == OpCopy || o == OpLink
}

// ParseOperation parses "move", "copy", "link", "none" or "cancel".
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "move":
		return OpMove, nil
	case "copy":
		return OpCopy, nil
	case "link":
		return OpLink, nil
	case "none", "":
		return OpNone, nil
	case "cancel":
		return OpCancel, nil
	}
	return OpNone, fmt.Errorf("unknown drop operation '%s'", s)
}

// OperationSet is a set of concrete operations.
type OperationSet uint8

// NewOperationSet builds a set from the concrete operations in ops.
// OpNone and OpCancel are ignored.
func NewOperationSet(ops ...Operation) OperationSet {
	var s OperationSet
	for _, op := range ops {
		if op.IsConcrete() {
			s |= 1 << uint(op)
		}
	}
	return s
}

// Has reports whether op is in the set.
func (s OperationSet) Has(op Operation) bool {
	return op.IsConcrete() && s&(1<<uint(op)) != 0
}

// Intersect returns the operations present in both sets.
func (s OperationSet) Intersect(other OperationSet) OperationSet {
	return s & other
}

// Empty reports whether the set has no operations.
func (s OperationSet) Empty() bool {
	return s == 0
}

// Operations returns the members in move, copy, link order.
func (s OperationSet) Operations() []Operation {
	var ops []Operation
	for _, op := range defaultPrecedence {
		if s.Has(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

// String implements fmt.Stringer
func (s OperationSet) String() string {
	ops := s.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Allowed is the ordered list of operations a drag source permits. The order
// is the source's declaration order and is visible to targets.
type Allowed []Operation

// DefaultAllowed is used when a source declares nothing.
var DefaultAllowed = Allowed{OpMove}

// ParseAllowed parses a list of operation names, dropping duplicates and
// anything that is not concrete. An empty result falls back to DefaultAllowed.
func ParseAllowed(names []string) (Allowed, error) {
	var out Allowed
	seen := NewOperationSet()
	for _, name := range names {
		op, err := ParseOperation(name)
		if err != nil {
			return nil, err
		}
		if !op.IsConcrete() || seen.Has(op) {
			continue
		}
		seen |= NewOperationSet(op)
		out = append(out, op)
	}
	if len(out) == 0 {
		return DefaultAllowed, nil
	}
	return out, nil
}

// normalize removes non-concrete entries and duplicates, defaulting to move.
func (a Allowed) normalize() Allowed {
	var out Allowed
	seen := NewOperationSet()
	for _, op := range a {
		if !op.IsConcrete() || seen.Has(op) {
			continue
		}
		seen |= NewOperationSet(op)
		out = append(out, op)
	}
	if len(out) == 0 {
		return append(Allowed(nil), DefaultAllowed...)
	}
	return out
}

// Set returns the allowed operations as a set.
func (a Allowed) Set() OperationSet {
	return NewOperationSet(a...)
}

// First returns the first declared operation, or OpNone when empty.
func (a Allowed) First() Operation {
	if len(a) == 0 {
		return OpNone
	}
	return a[0]
}

// ModifierHint maps held modifier keys to a requested operation, following
// the desktop convention: alt copies, ctrl links, shift forces a move.
func ModifierHint(alt, ctrl, shift bool) Operation {
	switch {
	case alt:
		return OpCopy
	case ctrl:
		return OpLink
	case shift:
		return OpMove
	}
	return OpNone
}

// MarshalText implements encoding.TextMarshaler
func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *Operation) UnmarshalText(text []byte) error {
	op, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
