package dnd

// Acceptance is a drop target's answer to "what would you do with this offer".
//
// A target either names a single Preferred operation, lists the operations it
// Accepts, or vetoes the drop with Cancel. Priority overrides the default
// move > copy > link precedence when several accepted operations remain.
type Acceptance struct {
	Accepts   OperationSet
	Cancel    bool
	Preferred Operation
	Priority  []Operation
}

// Prefer accepts exactly one operation.
func Prefer(op Operation) Acceptance {
	if op == OpCancel {
		return Reject()
	}
	return Acceptance{Preferred: op, Accepts: NewOperationSet(op)}
}

// Accept accepts any of ops.
func Accept(ops ...Operation) Acceptance {
	return Acceptance{Accepts: NewOperationSet(ops...)}
}

// AcceptInOrder accepts ops and resolves ties in the given order.
func AcceptInOrder(ops ...Operation) Acceptance {
	return Acceptance{Accepts: NewOperationSet(ops...), Priority: ops}
}

// Reject vetoes the drop regardless of what the source allows.
func Reject() Acceptance {
	return Acceptance{Cancel: true}
}

// Negotiate resolves the operation a drop would perform. The result is
// always a member of allowed or OpNone. hint is the operation requested by
// modifier keys, OpNone when nothing is held.
func Negotiate(allowed Allowed, acc Acceptance, hint Operation) Operation {
	if acc.Cancel || acc.Preferred == OpCancel {
		return OpNone
	}

	allowedSet := allowed.normalize().Set()

	if acc.Preferred.IsConcrete() && allowedSet.Has(acc.Preferred) {
		// A modifier still wins when the target would take it too.
		if hint.IsConcrete() && hint != acc.Preferred && allowedSet.Intersect(acc.Accepts).Has(hint) {
			return hint
		}
		return acc.Preferred
	}

	common := allowedSet.Intersect(acc.Accepts)
	if common.Empty() {
		return OpNone
	}

	if hint.IsConcrete() && common.Has(hint) {
		return hint
	}

	for _, op := range acc.Priority {
		if common.Has(op) {
			return op
		}
	}
	for _, op := range defaultPrecedence {
		if common.Has(op) {
			return op
		}
	}
	return OpNone
}
