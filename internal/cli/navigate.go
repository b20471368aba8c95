package cli

import (
	"github.com/alexanderramin/fittrack/internal/chat"
	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

type pushViewMsg struct {
	view View
}

type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to re-read shared state.
type refreshViewMsg struct{}

type quitMsg struct{}

// cmdOutputMsg carries a transient one-line result shown above the
// status bar until the next key press.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// chatReplyMsg delivers a delayed coach reply. The appModel appends it to
// the shared conversation whichever view is active.
type chatReplyMsg struct {
	message chat.Message
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func errorOutput(err error) string {
	return formatter.StyleRed.Render("Error: ") + err.Error()
}

// wizardCompleteOutput pops the wizard and shows msg.
func wizardCompleteOutput(msg string) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(msg)}
}
