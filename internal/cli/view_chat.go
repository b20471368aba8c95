package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chatView is the assistant chat: a scrollable history above a single
// line input. History lives in SharedState.Conversation, so replies that
// arrive after the view is closed are still there when it reopens.
type chatView struct {
	state *SharedState
	input textinput.Model
	vp    viewport.Model
}

func newChatView(state *SharedState) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "Ask about workouts, nutrition, stretching..."
	ti.CharLimit = 500

	vp := viewport.New(0, 0)
	vp.KeyMap = chatViewportKeyMap()

	v := &chatView{state: state, input: ti, vp: vp}
	v.resize()
	return v
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case chatReplyMsg:
		v.sync()
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, func() tea.Msg { return wizardCompleteMsg{} }
		case tea.KeyEnter:
			text := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			return v, v.send(text)
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			v.vp, cmd = v.vp.Update(msg)
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// send records the user's message and schedules the coach reply after
// the bot delay.
func (v *chatView) send(text string) tea.Cmd {
	switch strings.ToLower(text) {
	case "/quit", "/exit", "/q":
		return popView()
	}

	if _, ok := v.state.Conversation.Send(text); !ok {
		return nil
	}
	v.state.ChatPending++
	v.sync()

	bot := v.state.App.Bot
	return tea.Tick(bot.Delay, func(t time.Time) tea.Msg {
		return chatReplyMsg{message: bot.Compose(text, t)}
	})
}

func (v *chatView) resize() {
	w := max(v.state.Width, 20)
	h := 20
	if v.state.Height > 0 {
		// One line each for the typing indicator and the prompt.
		h = max(v.state.ContentHeight()-2, 1)
	}
	v.vp.Width = w
	v.vp.Height = h
	v.input.Width = max(w-4, 10)
	v.sync()
}

// sync re-renders the history into the viewport and scrolls to the end.
func (v *chatView) sync() {
	v.vp.SetContent(formatter.FormatChatHistory(v.state.Conversation.Messages()))
	v.vp.GotoBottom()
}

func (v *chatView) View() string {
	var b strings.Builder
	b.WriteString(v.vp.View())
	b.WriteString("\n")
	if v.state.ChatPending > 0 {
		b.WriteString(formatter.Dim("Coach is typing..."))
	}
	b.WriteString("\n")
	b.WriteString(formatter.StylePurple.Render("you") + formatter.Dim("> "))
	b.WriteString(v.input.View())
	return b.String()
}

func (v *chatView) ID() ViewID    { return ViewChat }
func (v *chatView) Title() string { return "Coach" }
func (v *chatView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "scroll")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// chatViewportKeyMap leaves letters to the text input; only arrows and
// paging keys scroll.
func chatViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}
