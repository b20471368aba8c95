package cli

import (
	"github.com/alexanderramin/fittrack/internal/chat"
	"github.com/alexanderramin/fittrack/internal/tracker"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Session is the one tracker session for the lifetime of the TUI.
	Session *tracker.Session

	// Conversation outlives the chat view so history survives leaving it.
	Conversation *chat.Conversation
	// ChatPending counts coach replies still on their way.
	ChatPending int

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{
		App:          app,
		Session:      app.NewSession(),
		Conversation: chat.NewConversation(app.now),
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator), the output line,
// and status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
