package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stow/internal/collection"
)

func TestDroppable_RegistersRootItemsAndGaps(t *testing.T) {
	m, reg := newTestManager()
	coll := newShelf("foo", "bar")

	drop := NewDroppableCollection(m, coll, DroppableOptions{Between: true, OnItems: true, Label: "inbox"})

	// root + 2 on + 2 before + 1 after
	assert.Equal(t, 6, reg.Len())
	for _, p := range []DropPoint{
		{Position: PositionRoot},
		{Key: "foo", Position: PositionOn},
		{Key: "foo", Position: PositionBefore},
		{Key: "bar", Position: PositionBefore},
		{Key: "bar", Position: PositionAfter},
	} {
		h, ok := drop.HandleFor(p)
		require.True(t, ok, p.String())
		got, ok := drop.PointFor(h)
		require.True(t, ok)
		assert.Equal(t, p, got)
	}

	chain := reg.TargetsUnder(mustHandle(t, drop, DropPoint{Key: "bar", Position: PositionOn}))
	require.Len(t, chain, 2)
	assert.Equal(t, drop.Root(), chain[1].Handle)
}

func TestDroppable_NavigationOrderFollowsCollection(t *testing.T) {
	m, reg := newTestManager()
	drop := NewDroppableCollection(m, newShelf("foo", "bar"), DroppableOptions{Between: true, OnItems: true, Order: []int{0}})

	var got []string
	for _, ref := range reg.Targets() {
		p, _ := drop.PointFor(ref.Handle)
		got = append(got, p.String())
	}
	assert.Equal(t, []string{"root", "before foo", "on foo", "before bar", "on bar", "after bar"}, got)
}

func TestDroppable_SyncKeepsSurvivingHandles(t *testing.T) {
	m, reg := newTestManager()
	coll := newShelf("foo", "bar")
	drop := NewDroppableCollection(m, coll, DroppableOptions{OnItems: true})
	fooHandle := mustHandle(t, drop, DropPoint{Key: "foo", Position: PositionOn})
	barHandle := mustHandle(t, drop, DropPoint{Key: "bar", Position: PositionOn})

	coll.Reset([]collection.Entry{{Key: "baz"}, {Key: "foo"}})
	drop.Sync()

	assert.Equal(t, fooHandle, mustHandle(t, drop, DropPoint{Key: "foo", Position: PositionOn}))
	assert.False(t, reg.Contains(barHandle))
	_, ok := drop.HandleFor(DropPoint{Key: "baz", Position: PositionOn})
	assert.True(t, ok)
}

func TestDroppable_SyncFollowsExpansion(t *testing.T) {
	m, _ := newTestManager()
	coll := collection.New([]collection.Entry{{Key: "foo", Type: "folder"}, {Key: "qux", Parent: "foo"}})
	drop := NewDroppableCollection(m, coll, DroppableOptions{OnItems: true})

	_, ok := drop.HandleFor(DropPoint{Key: "qux", Position: PositionOn})
	assert.False(t, ok, "collapsed children have no targets")

	coll.SetExpanded("foo", true)
	drop.Sync()

	_, ok = drop.HandleFor(DropPoint{Key: "qux", Position: PositionOn})
	assert.True(t, ok)
}

func TestDroppable_DropCallbackGetsPoint(t *testing.T) {
	m, _ := newTestManager()
	var got DropPoint
	var event DropEvent
	drop := NewDroppableCollection(m, newShelf("foo", "bar"), DroppableOptions{
		Between: true,
		OnDrop: func(p DropPoint, e DropEvent) {
			got = p
			event = e
		},
	})
	src := NewDraggableCollection(m, newShelf("x"), DraggableOptions{Allowed: Allowed{OpCopy}})

	_, err := src.StartDrag("x", ModalityKeyboard)
	require.NoError(t, err)
	require.NoError(t, m.Over(mustHandle(t, drop, DropPoint{Key: "bar", Position: PositionBefore})))
	assert.True(t, drop.IsDropTarget(DropPoint{Key: "bar", Position: PositionBefore}))
	assert.True(t, drop.IsHovered())
	assert.False(t, drop.IsRootDropTarget())

	_, err = m.Drop()
	require.NoError(t, err)

	assert.Equal(t, DropPoint{Key: "bar", Position: PositionBefore}, got)
	assert.Equal(t, OpCopy, event.Operation)
	assert.Equal(t, []string{"x"}, event.Payload.Strings(TypeItemKey))
	assert.False(t, drop.IsHovered())
}

func TestDroppable_RequiredTypeScenario(t *testing.T) {
	m, _ := newTestManager()
	var drops []DropEvent
	drop := NewDroppableCollection(m, newShelf(), DroppableOptions{
		GetDropOperation: func(_ DropPoint, types TypeSet, allowed Allowed) Acceptance {
			return RequireTypes([]string{TypeText}, nil)(types, allowed)
		},
		OnDrop: func(_ DropPoint, e DropEvent) { drops = append(drops, e) },
	})

	src := SourceFuncs{
		Allowed: Allowed{OpMove, OpCopy},
		Items: func() ([]DragItem, error) {
			return []DragItem{NewDragItem(map[string]string{TypeText: "hello world"})}, nil
		},
	}
	_, err := m.Begin(src, ModalityPointer)
	require.NoError(t, err)
	require.NoError(t, m.Over(drop.Root()))
	res, err := m.Drop()
	require.NoError(t, err)

	assert.Equal(t, OpMove, res.Operation)
	require.Len(t, drops, 1)
	assert.Equal(t, OpMove, drops[0].Operation)
	require.Equal(t, 1, drops[0].Payload.Len())
	assert.Equal(t, map[string]string{TypeText: "hello world"}, drops[0].Payload.Item(0).Values())

	// the same target cancels an offer without text
	_, err = m.Begin(SourceFuncs{Items: func() ([]DragItem, error) {
		return []DragItem{NewDragItem(map[string]string{TypeItemKey: "k"})}, nil
	}}, ModalityPointer)
	require.NoError(t, err)
	require.NoError(t, m.Over(drop.Root()))
	res, err = m.Drop()
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, res.State)
	assert.Len(t, drops, 1)
}

func TestDroppable_ActivateOnlyExpandsDirectories(t *testing.T) {
	m, _ := newTestManager()
	var activated []string
	drop := NewDroppableCollection(m, newShelf("foo", "baz"), DroppableOptions{
		OnItems:        true,
		IsDirectory:    func(key string) bool { return key == "foo" },
		OnDropActivate: func(p DropPoint, _ DropEvent) { activated = append(activated, p.Key) },
	})
	_, err := m.Begin(SourceFuncs{Items: func() ([]DragItem, error) {
		return []DragItem{NewDragItem(map[string]string{TypeText: "x"})}, nil
	}}, ModalityKeyboard)
	require.NoError(t, err)

	require.NoError(t, m.Over(mustHandle(t, drop, DropPoint{Key: "baz", Position: PositionOn})))
	require.NoError(t, m.Activate())
	require.NoError(t, m.Over(mustHandle(t, drop, DropPoint{Key: "foo", Position: PositionOn})))
	require.NoError(t, m.Activate())

	assert.Equal(t, []string{"foo"}, activated)
}

func TestDroppable_CloseUnregistersEverything(t *testing.T) {
	m, reg := newTestManager()
	drop := NewDroppableCollection(m, newShelf("foo"), DroppableOptions{Between: true, OnItems: true})

	drop.Close()

	assert.Zero(t, reg.Len())
}

func mustHandle(t *testing.T, d *DroppableCollection, p DropPoint) Handle {
	t.Helper()
	h, ok := d.HandleFor(p)
	require.True(t, ok, "no target for %s", p)
	return h
}
