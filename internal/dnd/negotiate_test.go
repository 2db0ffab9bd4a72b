package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name    string
		allowed Allowed
		acc     Acceptance
		hint    Operation
		want    Operation
	}{
		{name: "preferred and allowed", allowed: Allowed{OpMove, OpCopy}, acc: Prefer(OpCopy), want: OpCopy},
		{name: "preferred not allowed", allowed: Allowed{OpMove}, acc: Prefer(OpCopy), want: OpNone},
		{name: "cancel wins", allowed: Allowed{OpMove, OpCopy, OpLink}, acc: Reject(), want: OpNone},
		{name: "preferred cancel", allowed: Allowed{OpCopy}, acc: Acceptance{Preferred: OpCancel, Accepts: NewOperationSet(OpCopy)}, want: OpNone},
		{name: "default precedence move first", allowed: Allowed{OpLink, OpCopy, OpMove}, acc: Accept(OpMove, OpCopy, OpLink), want: OpMove},
		{name: "default precedence copy over link", allowed: Allowed{OpLink, OpCopy}, acc: Accept(OpCopy, OpLink), want: OpCopy},
		{name: "target priority", allowed: Allowed{OpMove, OpCopy, OpLink}, acc: AcceptInOrder(OpLink, OpCopy), want: OpLink},
		{name: "empty intersection", allowed: Allowed{OpMove}, acc: Accept(OpCopy, OpLink), want: OpNone},
		{name: "hint inside intersection", allowed: Allowed{OpMove, OpCopy}, acc: Accept(OpMove, OpCopy), hint: OpCopy, want: OpCopy},
		{name: "hint outside intersection ignored", allowed: Allowed{OpMove, OpCopy}, acc: Accept(OpMove, OpCopy), hint: OpLink, want: OpMove},
		{name: "hint overrides preferred when accepted", allowed: Allowed{OpMove, OpCopy}, acc: Acceptance{Preferred: OpMove, Accepts: NewOperationSet(OpMove, OpCopy)}, hint: OpCopy, want: OpCopy},
		{name: "empty allowed defaults to move", allowed: nil, acc: Accept(OpMove), want: OpMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.allowed, tt.acc, tt.hint))
		})
	}
}

func TestNegotiate_ResultIsAllowedOrNone(t *testing.T) {
	all := []Operation{OpNone, OpMove, OpCopy, OpLink, OpCancel}
	sources := []Allowed{{OpMove}, {OpCopy}, {OpLink}, {OpCopy, OpLink}, {OpMove, OpCopy, OpLink}}

	for _, allowed := range sources {
		for _, preferred := range all {
			for _, hint := range all {
				got := Negotiate(allowed, Acceptance{Preferred: preferred, Accepts: NewOperationSet(OpMove, OpLink)}, hint)
				if got != OpNone {
					assert.True(t, allowed.Set().Has(got), "allowed=%v preferred=%v hint=%v got=%v", allowed, preferred, hint, got)
				}
			}
		}
	}
}

func TestParseAllowed(t *testing.T) {
	allowed, err := ParseAllowed([]string{"link", "copy", "link", "none"})
	require.NoError(t, err)
	assert.Equal(t, Allowed{OpLink, OpCopy}, allowed)

	allowed, err = ParseAllowed(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultAllowed, allowed)

	_, err = ParseAllowed([]string{"teleport"})
	assert.Error(t, err)
}

func TestOperation_TextRoundTrip(t *testing.T) {
	var op Operation
	require.NoError(t, op.UnmarshalText([]byte("Copy")))
	assert.Equal(t, OpCopy, op)

	text, err := OpLink.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "link", string(text))
}

func TestModifierHint(t *testing.T) {
	assert.Equal(t, OpCopy, ModifierHint(true, true, false))
	assert.Equal(t, OpLink, ModifierHint(false, true, true))
	assert.Equal(t, OpMove, ModifierHint(false, false, true))
	assert.Equal(t, OpNone, ModifierHint(false, false, false))
}

func TestRequireTypes(t *testing.T) {
	acc := RequireTypes([]string{TypeItemKey}, nil)

	assert.True(t, acc(NewTypeSet(TypeText), Allowed{OpMove}).Cancel)
	assert.Equal(t, OpMove, acc(NewTypeSet(TypeItemKey, TypeText), Allowed{OpMove}).Preferred)
}

func TestOperationSet_String(t *testing.T) {
	assert.Equal(t, "{move,link}", NewOperationSet(OpLink, OpMove, OpCancel).String())
	assert.True(t, NewOperationSet().Empty())
}
