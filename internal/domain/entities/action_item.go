package entities

// ActionItem is a task extracted from one qualifying sentence. Person and
// Deadline are nil when the sentence carried no entity of that category;
// nil and empty string are distinct at the rendering contract.
type ActionItem struct {
	Task     string  `json:"task"`
	Person   *string `json:"person,omitempty"`
	Deadline *string `json:"deadline,omitempty"`
}

// NewActionItem creates an action item with both annotations unset
func NewActionItem(task string) ActionItem {
	return ActionItem{Task: task}
}
