// Package collection is an ordered, keyed list of items with selection and
// one level or more of nesting. The node tree is rebuilt only when the
// entries change; every read in between uses the same arena.
package collection

// Entry is the input form of an item.
type Entry struct {
	Key    string
	Parent string
	Text   string
	Type   string
}

// Node is an entry placed in the tree.
type Node struct {
	Children []string
	Index    int
	Key      string
	Level    int
	Parent   string
	Text     string
	Type     string
}

// Collection holds the node arena plus selection and expansion state.
type Collection struct {
	expanded map[string]bool
	nodes    map[string]*Node
	order    []string
	roots    []string
	selected map[string]bool
	version  uint64
}

// New builds a collection from entries in order.
func New(entries []Entry) *Collection {
	c := &Collection{
		expanded: make(map[string]bool),
		selected: make(map[string]bool),
	}
	c.Reset(entries)
	return c
}

// Reset rebuilds the arena. Selection and expansion of keys that still exist
// are kept.
func (c *Collection) Reset(entries []Entry) {
	nodes := make(map[string]*Node, len(entries))
	var keys []string
	for _, e := range entries {
		if _, dup := nodes[e.Key]; dup || e.Key == "" {
			continue
		}
		nodes[e.Key] = &Node{Key: e.Key, Parent: e.Parent, Text: e.Text, Type: e.Type}
		keys = append(keys, e.Key)
	}

	var roots []string
	for _, key := range keys {
		n := nodes[key]
		parent, ok := nodes[n.Parent]
		if !ok || n.Parent == key {
			n.Parent = ""
			roots = append(roots, key)
			continue
		}
		parent.Children = append(parent.Children, key)
	}

	c.nodes = nodes
	c.roots = roots
	c.order = c.order[:0]
	visited := make(map[string]bool, len(nodes))
	for _, key := range roots {
		c.walk(key, 0, visited)
	}
	// Entries in a parent cycle are unreachable from any root.
	for _, key := range keys {
		if !visited[key] {
			n := nodes[key]
			if p, ok := nodes[n.Parent]; ok {
				p.Children = removeKey(p.Children, key)
			}
			n.Parent = ""
			c.roots = append(c.roots, key)
			c.walk(key, 0, visited)
		}
	}

	for key := range c.selected {
		if _, ok := nodes[key]; !ok {
			delete(c.selected, key)
		}
	}
	for key := range c.expanded {
		if _, ok := nodes[key]; !ok {
			delete(c.expanded, key)
		}
	}
	c.version++
}

func (c *Collection) walk(key string, level int, visited map[string]bool) {
	if visited[key] {
		return
	}
	visited[key] = true
	n := c.nodes[key]
	n.Level = level
	n.Index = len(c.order)
	c.order = append(c.order, key)
	for _, child := range n.Children {
		c.walk(child, level+1, visited)
	}
}

// Version changes on every Reset and expansion change.
func (c *Collection) Version() uint64 {
	return c.version
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.order)
}

// Get returns the node for key.
func (c *Collection) Get(key string) (Node, bool) {
	n, ok := c.nodes[key]
	if !ok {
		return Node{}, false
	}
	out := *n
	out.Children = append([]string(nil), n.Children...)
	return out, true
}

// Has reports whether key exists.
func (c *Collection) Has(key string) bool {
	_, ok := c.nodes[key]
	return ok
}

// Keys returns every key, depth first.
func (c *Collection) Keys() []string {
	return append([]string(nil), c.order...)
}

// Roots returns the top-level keys.
func (c *Collection) Roots() []string {
	return append([]string(nil), c.roots...)
}

// Children returns the direct children of key.
func (c *Collection) Children(key string) []string {
	n, ok := c.nodes[key]
	if !ok {
		return nil
	}
	return append([]string(nil), n.Children...)
}

// VisibleKeys returns the keys whose ancestors are all expanded, depth first.
func (c *Collection) VisibleKeys() []string {
	var out []string
	var visit func(keys []string)
	visit = func(keys []string) {
		for _, key := range keys {
			out = append(out, key)
			if c.expanded[key] {
				visit(c.nodes[key].Children)
			}
		}
	}
	visit(c.roots)
	return out
}

// IsExpanded reports whether key's children are visible.
func (c *Collection) IsExpanded(key string) bool {
	return c.expanded[key]
}

// SetExpanded shows or hides key's children.
func (c *Collection) SetExpanded(key string, expanded bool) {
	if _, ok := c.nodes[key]; !ok || c.expanded[key] == expanded {
		return
	}
	if expanded {
		c.expanded[key] = true
	} else {
		delete(c.expanded, key)
	}
	c.version++
}

// ToggleExpanded flips key's expansion.
func (c *Collection) ToggleExpanded(key string) {
	c.SetExpanded(key, !c.expanded[key])
}

// IsSelected reports whether key is selected.
func (c *Collection) IsSelected(key string) bool {
	return c.selected[key]
}

// SelectedKeys returns the selected keys in collection order.
func (c *Collection) SelectedKeys() []string {
	var out []string
	for _, key := range c.order {
		if c.selected[key] {
			out = append(out, key)
		}
	}
	return out
}

// SetSelectedKeys replaces the selection. Unknown keys are ignored.
func (c *Collection) SetSelectedKeys(keys []string) {
	c.selected = make(map[string]bool, len(keys))
	for _, key := range keys {
		if _, ok := c.nodes[key]; ok {
			c.selected[key] = true
		}
	}
}

// ToggleSelected flips key in the selection.
func (c *Collection) ToggleSelected(key string) {
	if _, ok := c.nodes[key]; !ok {
		return
	}
	if c.selected[key] {
		delete(c.selected, key)
		return
	}
	c.selected[key] = true
}

// SelectAll selects every item.
func (c *Collection) SelectAll() {
	for _, key := range c.order {
		c.selected[key] = true
	}
}

// ClearSelection empties the selection.
func (c *Collection) ClearSelection() {
	c.selected = make(map[string]bool)
}

func removeKey(keys []string, key string) []string {
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
