package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/repository"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type profileLoadedMsg struct {
	profile *domain.UserProfile
	err     error
}

// profileView shows the saved profile and opens the edit form on e.
type profileView struct {
	state   *SharedState
	profile *domain.UserProfile
	loading bool
	err     error
}

func newProfileView(state *SharedState) *profileView {
	return &profileView{state: state, loading: true}
}

func (v *profileView) Init() tea.Cmd {
	return v.load()
}

func (v *profileView) load() tea.Cmd {
	profiles := v.state.App.Profiles
	return func() tea.Msg {
		p, err := profiles.Get(context.Background())
		if errors.Is(err, repository.ErrNotFound) {
			return profileLoadedMsg{}
		}
		return profileLoadedMsg{profile: p, err: err}
	}
}

var editProfileKey = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		v.loading = false
		v.profile = msg.profile
		v.err = msg.err
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.load()

	case tea.KeyMsg:
		if key.Matches(msg, editProfileKey) && !v.loading {
			return v, startEditProfileWizard(v.state, profileFormFrom(v.profile), nil)
		}
	}
	return v, nil
}

func (v *profileView) View() string {
	switch {
	case v.loading:
		return formatter.Dim("Loading profile...")
	case v.err != nil:
		return errorOutput(v.err)
	}
	return formatter.FormatProfile(v.profile)
}

func (v *profileView) ID() ViewID    { return ViewProfile }
func (v *profileView) Title() string { return "Profile" }
func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{editProfileKey}
}
