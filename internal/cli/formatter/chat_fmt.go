package formatter

import (
	"strings"

	"github.com/alexanderramin/fittrack/internal/chat"
)

// FormatChatMessage renders one message with a sender label and time.
func FormatChatMessage(m chat.Message) string {
	stamp := Dim(m.Timestamp.Format("15:04"))
	if m.Sender == chat.SenderUser {
		return Dim("You ") + stamp + "\n" + m.Text
	}
	return StylePurple.Render("Coach ") + stamp + "\n" + StyleFg.Render(m.Text)
}

// FormatChatHistory renders messages oldest first, separated by blank lines.
func FormatChatHistory(msgs []chat.Message) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, FormatChatMessage(m))
	}
	return strings.Join(parts, "\n\n")
}
