package advisor

import "strings"

// ChatMessage is one prior turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript renders history as "AI: ..." / "User: ..." lines.
func Transcript(history []ChatMessage) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		speaker := "User"
		if msg.Role == "assistant" {
			speaker = "AI"
		}
		lines = append(lines, speaker+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}
