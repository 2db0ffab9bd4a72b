package dnd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	err  error
	text string
}

func (s *memStore) ReadText() (string, error) {
	return s.text, s.err
}

func (s *memStore) WriteText(text string) error {
	if s.err != nil {
		return s.err
	}
	s.text = text
	return nil
}

type clipFixture struct {
	bridge *ClipboardBridge
	cut    [][]string
	dst    *DroppableCollection
	m      *Manager
	pasted []DropEvent
	src    *DraggableCollection
	store  *memStore
}

func newClipFixture(t *testing.T) *clipFixture {
	t.Helper()
	f := &clipFixture{store: &memStore{}}
	f.m, _ = newTestManager()

	from := newShelf("foo", "bar", "baz")
	from.SetSelectedKeys([]string{"foo", "bar"})
	f.src = NewDraggableCollection(f.m, from, DraggableOptions{
		Allowed: Allowed{OpMove, OpCopy, OpLink},
		OnCut:   func(keys []string) { f.cut = append(f.cut, keys) },
	})

	f.dst = NewDroppableCollection(f.m, newShelf("qux"), DroppableOptions{
		OnItems: true,
		GetDropOperation: func(_ DropPoint, _ TypeSet, allowed Allowed) Acceptance {
			return Accept(allowed...)
		},
		OnDrop: func(_ DropPoint, e DropEvent) { f.pasted = append(f.pasted, e) },
	})
	f.bridge = NewClipboardBridge(f.m, f.store)
	return f
}

func TestClipboard_CutThenPasteOnOtherCollection(t *testing.T) {
	f := newClipFixture(t)

	keys, err := f.bridge.Cut(f.src, "foo")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, keys)
	assert.Equal(t, [][]string{{"foo", "bar"}}, f.cut)
	assert.Equal(t, "foo\nbar", f.store.text)

	res, err := f.bridge.Paste(f.dst, DropPoint{Position: PositionRoot})
	require.NoError(t, err)

	assert.Equal(t, StateDropped, res.State)
	assert.Equal(t, OpMove, res.Operation)
	require.Len(t, f.pasted, 1)
	assert.Equal(t, ModalityVirtual, f.pasted[0].Modality)
	assert.Equal(t, []string{"foo", "bar"}, f.pasted[0].Payload.Strings(TypeItemKey))

	_, _, held := f.bridge.Held()
	assert.False(t, held, "a cut is released once pasted")
	assert.False(t, f.m.Active())
}

func TestClipboard_CopyPastesRepeatedly(t *testing.T) {
	f := newClipFixture(t)

	_, err := f.bridge.Copy(f.src, "baz")
	require.NoError(t, err)
	assert.Empty(t, f.cut)

	for i := 0; i < 2; i++ {
		res, err := f.bridge.Paste(f.dst, DropPoint{Key: "qux", Position: PositionOn})
		require.NoError(t, err)
		assert.Equal(t, OpCopy, res.Operation)
	}
	require.Len(t, f.pasted, 2)
	assert.Equal(t, []string{"baz"}, f.pasted[1].Payload.Strings(TypeItemKey))

	keys, op, held := f.bridge.Held()
	assert.True(t, held)
	assert.Equal(t, []string{"baz"}, keys)
	assert.Equal(t, OpCopy, op)
}

func TestClipboard_ForeignTextPastesAsCopy(t *testing.T) {
	f := newClipFixture(t)
	_, err := f.bridge.Cut(f.src, "foo")
	require.NoError(t, err)

	f.store.text = "groceries\n\n  milk  \n"

	res, err := f.bridge.Paste(f.dst, DropPoint{Position: PositionRoot})
	require.NoError(t, err)

	assert.Equal(t, OpCopy, res.Operation)
	require.Len(t, f.pasted, 1)
	assert.Equal(t, []string{"groceries", "milk"}, f.pasted[0].Payload.Strings(TypeText))
	assert.Empty(t, f.pasted[0].Payload.Strings(TypeItemKey))
	_, _, held := f.bridge.Held()
	assert.True(t, held, "the held cut was not used")
}

func TestClipboard_ForeignPasteKeepsCutForLater(t *testing.T) {
	f := newClipFixture(t)
	_, err := f.bridge.Cut(f.src, "foo")
	require.NoError(t, err)
	cutText := f.store.text

	f.store.text = "milk"
	res, err := f.bridge.Paste(f.dst, DropPoint{Position: PositionRoot})
	require.NoError(t, err)
	require.Equal(t, StateDropped, res.State)

	keys, op, held := f.bridge.Held()
	require.True(t, held)
	assert.Equal(t, []string{"foo", "bar"}, keys)
	assert.Equal(t, OpMove, op)

	f.store.text = cutText
	res, err = f.bridge.Paste(f.dst, DropPoint{Position: PositionRoot})
	require.NoError(t, err)

	assert.Equal(t, OpMove, res.Operation)
	require.Len(t, f.pasted, 2)
	assert.Equal(t, []string{"foo", "bar"}, f.pasted[1].Payload.Strings(TypeItemKey))
	_, _, held = f.bridge.Held()
	assert.False(t, held, "the pasted cut is released")
}

func TestClipboard_UnreadableStoreUsesHeldPayload(t *testing.T) {
	f := newClipFixture(t)
	f.store.err = errors.New("no display")

	_, err := f.bridge.Copy(f.src, "baz")
	require.NoError(t, err)

	items, allowed, err := f.bridge.Items()
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, Allowed{OpCopy}, allowed)
}

func TestClipboard_EmptyPaste(t *testing.T) {
	f := newClipFixture(t)

	_, err := f.bridge.Paste(f.dst, DropPoint{Position: PositionRoot})

	assert.ErrorIs(t, err, ErrClipboardEmpty)
	assert.False(t, f.m.Active())
}

func TestClipboard_PasteOnUnknownPoint(t *testing.T) {
	f := newClipFixture(t)
	_, err := f.bridge.Copy(f.src, "baz")
	require.NoError(t, err)

	_, err = f.bridge.Paste(f.dst, DropPoint{Key: "nope", Position: PositionOn})

	assert.ErrorIs(t, err, ErrUnknownTarget)
	assert.False(t, f.m.Active())
}

func TestClipboard_PasteDuringDragIsIgnored(t *testing.T) {
	f := newClipFixture(t)
	_, err := f.bridge.Copy(f.src, "baz")
	require.NoError(t, err)
	_, err = f.src.StartDrag("foo", ModalityKeyboard)
	require.NoError(t, err)

	_, err = f.bridge.Paste(f.dst, DropPoint{Position: PositionRoot})

	assert.ErrorIs(t, err, ErrSessionActive)
	assert.Equal(t, StateDragging, f.m.Snapshot().State)
}

func TestClipboard_RejectedPasteKeepsCut(t *testing.T) {
	f := newClipFixture(t)
	f.dst.opts.GetDropOperation = func(DropPoint, TypeSet, Allowed) Acceptance { return Reject() }
	_, err := f.bridge.Cut(f.src, "foo")
	require.NoError(t, err)

	res, err := f.bridge.Paste(f.dst, DropPoint{Position: PositionRoot})
	require.NoError(t, err)

	assert.Equal(t, StateCancelled, res.State)
	assert.Empty(t, f.pasted)
	_, _, held := f.bridge.Held()
	assert.True(t, held)
}

func TestClipboard_ContentsRestore(t *testing.T) {
	f := newClipFixture(t)
	_, err := f.bridge.Cut(f.src, "foo")
	require.NoError(t, err)

	c, ok := f.bridge.Contents()
	require.True(t, ok)
	assert.Equal(t, OpMove, c.Operation)
	assert.Equal(t, []string{"foo", "bar"}, c.Keys)

	other := NewClipboardBridge(f.m, f.store)
	other.Restore(c)
	res, err := other.Paste(f.dst, DropPoint{Position: PositionRoot})
	require.NoError(t, err)
	assert.Equal(t, OpMove, res.Operation)
	assert.Equal(t, []string{"foo", "bar"}, f.pasted[0].Payload.Strings(TypeItemKey))

	other.Restore(ClipboardContents{})
	_, _, held := other.Held()
	assert.False(t, held)
}
