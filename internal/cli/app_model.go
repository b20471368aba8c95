package cli

import (
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI. It owns the view
// stack; views talk to it through the messages in navigate.go.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient result of the last action, cleared on the next key press.
	lastOutput string
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)
	return appModel{
		state:     state,
		viewStack: []View{newDashboardView(state)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) pop() {
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.pop()
		return m, nil

	case refreshViewMsg:
		// Views below the top re-read state too, so the dashboard is
		// current when a form above it closes.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case cmdOutputMsg:
		m.lastOutput = msg.output
		return m, nil

	case wizardCompleteMsg:
		m.pop()
		return m, tea.Batch(msg.nextCmd, func() tea.Msg { return refreshViewMsg{} })

	case chatReplyMsg:
		m.state.Conversation.Append(msg.message)
		if m.state.ChatPending > 0 {
			m.state.ChatPending--
		}
		return m, m.forward(msg)

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, m.forward(msg)
}

// forward hands msg to the active view.
func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.lastOutput = ""

	// Views with their own text input get every key, including q and esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		return m, m.forward(msg)
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		m.pop()
		return m, nil
	}

	return m, m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.lastOutput, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("fittrack")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	if n := m.state.ChatPending; n > 0 {
		header += "  " + formatter.StyleYellow.Render("● coach typing")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput returns true if the view has its own text input and
// should receive all key events.
func viewCapturesInput(v View) bool {
	switch v.ID() {
	case ViewForm, ViewChat:
		return true
	}
	return false
}
