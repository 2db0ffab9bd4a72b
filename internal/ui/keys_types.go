package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/stow/internal/theme"
)

// BoundKey is a binding resolved from its definition and the user's
// custom keys
type BoundKey struct {
	Binding key.Binding
}

// Tip is a rotating hint under the board. Format has one %s per key.
type Tip struct {
	Format string
	Keys   []string
}

// String renders the tip without styling
func (t Tip) String() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// Render styles the tip, highlighting its keys
func (t Tip) Render() string {
	var b strings.Builder
	b.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	for i, part := range strings.Split(t.Format, "%s") {
		b.WriteString(theme.TipTextStyle.Render(part))
		if i < len(t.Keys) {
			b.WriteString(theme.TipKeyStyle.Render(t.Keys[i]))
		}
	}
	return b.String()
}

// buildTips lists a tip for each definition that has one and a bound key,
// in definition order
func buildTips(shortcuts map[string]string) []Tip {
	var tips []Tip
	for _, def := range AllKeyDefinitions {
		shortcut, ok := shortcuts[def.Name]
		if def.TipFormat == "" || !ok {
			continue
		}
		tips = append(tips, Tip{Format: def.TipFormat, Keys: []string{shortcut}})
	}
	return tips
}
