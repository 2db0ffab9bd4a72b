package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stow/internal/collection"
)

func newShelf(keys ...string) *collection.Collection {
	entries := make([]collection.Entry, len(keys))
	for i, k := range keys {
		entries[i] = collection.Entry{Key: k, Text: k}
	}
	return collection.New(entries)
}

func TestKeysForDrag_SelectedItemCarriesSelectionInOrder(t *testing.T) {
	m, _ := newTestManager()
	coll := newShelf("foo", "bar", "baz", "qux")
	coll.SetSelectedKeys([]string{"qux", "bar", "foo"})
	drag := NewDraggableCollection(m, coll, DraggableOptions{})

	assert.Equal(t, []string{"foo", "bar", "qux"}, drag.KeysForDrag("bar"))
}

func TestKeysForDrag_UnselectedItemAlone(t *testing.T) {
	m, _ := newTestManager()
	coll := newShelf("foo", "bar", "baz")
	coll.SetSelectedKeys([]string{"foo", "bar"})
	drag := NewDraggableCollection(m, coll, DraggableOptions{})

	assert.Equal(t, []string{"baz"}, drag.KeysForDrag("baz"))
	assert.Equal(t, []string{"foo", "bar"}, coll.SelectedKeys(), "selection is untouched")
}

func TestKeysForDrag_SingleSelectionIsJustTheKey(t *testing.T) {
	m, _ := newTestManager()
	coll := newShelf("foo", "bar")
	coll.SetSelectedKeys([]string{"foo"})
	drag := NewDraggableCollection(m, coll, DraggableOptions{})

	assert.Equal(t, []string{"foo"}, drag.KeysForDrag("foo"))
}

func TestStartDrag_PayloadFollowsSelection(t *testing.T) {
	m, _ := newTestManager()
	coll := newShelf("foo", "bar", "baz")
	coll.SetSelectedKeys([]string{"baz", "foo"})
	drag := NewDraggableCollection(m, coll, DraggableOptions{Allowed: Allowed{OpMove, OpCopy}})

	s, err := drag.StartDrag("foo", ModalityKeyboard)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, StateDragging, snap.State)
	assert.Equal(t, []string{"foo", "baz"}, snap.Payload.Strings(TypeItemKey))
	assert.True(t, drag.IsDragging("baz"))
	assert.False(t, drag.IsDragging("bar"))
	assert.Equal(t, 2, drag.DraggingCount())

	require.NoError(t, m.Cancel(ReasonEscape))
	assert.Zero(t, drag.DraggingCount())
}

func TestStartDrag_PointerStaysArmed(t *testing.T) {
	m, _ := newTestManager()
	started := false
	drag := NewDraggableCollection(m, newShelf("foo"), DraggableOptions{
		OnDragStart: func([]string, DragStartEvent) { started = true },
	})

	s, err := drag.StartDrag("foo", ModalityPointer)
	require.NoError(t, err)
	assert.Equal(t, StateArmed, s.State())
	assert.False(t, started)
	assert.False(t, drag.IsDragging("foo"))

	require.NoError(t, m.Start())
	assert.True(t, started)
	assert.True(t, drag.IsDragging("foo"))
}

func TestDraggable_OnDragEndReportsKeysAndOperation(t *testing.T) {
	m, reg := newTestManager()
	coll := newShelf("foo", "bar")
	coll.SelectAll()

	var endKeys []string
	var end DragEndEvent
	calls := 0
	drag := NewDraggableCollection(m, coll, DraggableOptions{
		Allowed: Allowed{OpCopy},
		OnDragEnd: func(keys []string, e DragEndEvent) {
			calls++
			endKeys = keys
			end = e
		},
	})
	h := reg.Register(Registration{Target: TargetFuncs{}})

	_, err := drag.StartDrag("bar", ModalityKeyboard)
	require.NoError(t, err)
	require.NoError(t, m.Over(h))
	_, err = m.Drop()
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"foo", "bar"}, endKeys)
	assert.Equal(t, OpCopy, end.Operation)
	assert.Equal(t, StateDropped, end.State)
}

func TestDraggable_GetItemsFailureAbortsGesture(t *testing.T) {
	m, _ := newTestManager()
	ended := 0
	drag := NewDraggableCollection(m, newShelf("foo"), DraggableOptions{
		GetItems:  func([]string) ([]DragItem, error) { return nil, assert.AnError },
		OnDragEnd: func([]string, DragEndEvent) { ended++ },
	})

	_, err := drag.StartDrag("foo", ModalityKeyboard)

	assert.ErrorIs(t, err, ErrProducerFailed)
	assert.Equal(t, 1, ended)
	assert.False(t, m.Active())
}

func TestPreview_Badge(t *testing.T) {
	m, _ := newTestManager()
	coll := newShelf("foo", "bar", "baz")
	coll.SetSelectedKeys([]string{"foo", "bar", "baz"})
	drag := NewDraggableCollection(m, coll, DraggableOptions{})

	p := drag.Preview("bar")
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, "bar", p.DraggedKey)
	assert.Equal(t, "3", p.Badge())

	coll.ClearSelection()
	assert.Empty(t, drag.Preview("bar").Badge())
}
