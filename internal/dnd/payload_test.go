package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayload_RejectsEmpty(t *testing.T) {
	_, err := NewPayload(nil)

	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestPayload_TypesIsUnion(t *testing.T) {
	p, err := NewPayload([]DragItem{
		NewDragItem(map[string]string{TypeText: "a"}),
		NewDragItem(map[string]string{TypeItemKey: "b"}),
	})
	require.NoError(t, err)

	assert.True(t, p.Types().HasAll(TypeText, TypeItemKey))
	assert.Equal(t, []string{"a"}, p.Strings(TypeText))
	assert.Equal(t, 2, p.Len())
}

func TestPayload_IsCopied(t *testing.T) {
	items := []DragItem{NewDragItem(map[string]string{TypeText: "a"})}
	p, err := NewPayload(items)
	require.NoError(t, err)

	items[0] = NewDragItem(map[string]string{TypeText: "changed"})

	v, _ := p.Item(0).Get(TypeText)
	assert.Equal(t, "a", v)
}

func TestDragItem_LazyValueProducedOnce(t *testing.T) {
	calls := 0
	item := NewDragItem(map[string]string{TypeText: "foo"}).WithLazy(TypeShelf, func() string {
		calls++
		return "inbox"
	})

	assert.Equal(t, 0, calls)
	assert.Equal(t, []string{TypeShelf, TypeText}, item.Types())

	v, ok := item.Get(TypeShelf)
	require.True(t, ok)
	assert.Equal(t, "inbox", v)
	_, _ = item.Get(TypeShelf)
	assert.Equal(t, 1, calls)

	assert.Equal(t, map[string]string{TypeText: "foo", TypeShelf: "inbox"}, item.Values())
}
