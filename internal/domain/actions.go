package domain

// Action represents a user-invocable action in the system.
type Action struct {
	Description  string
	Name         string
	RequiresItem bool
}

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "copy", Description: "Copy the item or selection to the clipboard", RequiresItem: true},
	{Name: "cut", Description: "Cut the item or selection, to be moved on paste", RequiresItem: true},
	{Name: "delete", Description: "Delete the item or selection", RequiresItem: true},
	{Name: "help", Description: "Show keyboard shortcuts", RequiresItem: false},
	{Name: "new_folder", Description: "Add a folder to the shelf", RequiresItem: false},
	{Name: "new_item", Description: "Add an item to the shelf", RequiresItem: false},
	{Name: "new_shelf", Description: "Add a shelf", RequiresItem: false},
	{Name: "paste", Description: "Paste the clipboard at the focused position", RequiresItem: false},
	{Name: "quit", Description: "Exit stow", RequiresItem: false},
	{Name: "select_all", Description: "Select every item in the shelf", RequiresItem: false},
	{Name: "start_drag", Description: "Drag the item or selection with the keyboard", RequiresItem: true},
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}

// GetActionsForContext returns actions filtered by context.
// If hasItem is false, actions that require an item are excluded.
func GetActionsForContext(hasItem bool) []Action {
	if hasItem {
		return Actions
	}

	var filtered []Action
	for _, a := range Actions {
		if !a.RequiresItem {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
