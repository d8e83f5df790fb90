package minutes

import (
	"strings"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/domain/entities"
)

// TitleLayout derives the minutes title from the generation timestamp
const TitleLayout = "2006-01-02 15:04"

// Compose combines summary, action items, participants and title into the
// final minutes document
func Compose(title, summary string, actionItems []entities.ActionItem, participants []string) entities.MeetingMinutes {
	return entities.MeetingMinutes{
		Title:        title,
		Participants: participants,
		Summary:      summary,
		ActionItems:  actionItems,
	}
}

// Render flattens the minutes into the line-oriented text document. The
// format is a compatibility contract and must stay byte-for-byte stable:
//
//	Meeting Title: {title}
//	Participants: {comma-space-joined participants}
//
//	Summary:
//	{summary}
//
//	Action Items:
//	- Task: {task} | Person: {person or empty} | Deadline: {deadline or empty}
//
// The Action Items section is omitted entirely when there are no items.
// Unset person/deadline render as empty strings, never as "None".
func Render(m entities.MeetingMinutes) string {
	var b strings.Builder

	b.WriteString("Meeting Title: ")
	b.WriteString(m.Title)
	b.WriteString("\n")

	b.WriteString("Participants: ")
	b.WriteString(strings.Join(m.Participants, ", "))
	b.WriteString("\n\n")

	b.WriteString("Summary:\n")
	b.WriteString(m.Summary)
	b.WriteString("\n\n")

	if len(m.ActionItems) > 0 {
		b.WriteString("Action Items:\n")
		for _, item := range m.ActionItems {
			b.WriteString("- Task: ")
			b.WriteString(item.Task)
			b.WriteString(" | Person: ")
			b.WriteString(orEmpty(item.Person))
			b.WriteString(" | Deadline: ")
			b.WriteString(orEmpty(item.Deadline))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// ArtifactName is the deterministic download file name for a minutes title
func ArtifactName(title string) string {
	return "minutes_" + title + ".txt"
}

// SplitParticipants parses the user-supplied comma-separated participant
// list: trim each name, drop blanks, keep order and duplicates.
func SplitParticipants(raw string) []string {
	participants := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			participants = append(participants, name)
		}
	}
	return participants
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
