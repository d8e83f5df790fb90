package entities

// MeetingMinutes is the composed minutes document. Immutable once composed;
// its only consumer is the renderer that flattens it to text.
type MeetingMinutes struct {
	Title        string       `json:"title"`
	Participants []string     `json:"participants"`
	Summary      string       `json:"summary"`
	ActionItems  []ActionItem `json:"action_items"`
}
