package cli

import (
	"time"

	"github.com/alexanderramin/fittrack/internal/chat"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/alexanderramin/fittrack/internal/tracker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands and the TUI need.
type App struct {
	// NewSession starts a fresh seeded session. Workouts are not
	// persisted, so every command and every TUI run begins from the seed.
	NewSession func() *tracker.Session
	Profiles   service.ProfileService
	Bot        chat.Bot

	// Clock defaults to time.Now.
	Clock func() time.Time

	// IsInteractive reports whether stdin is a terminal. When nil the
	// root command never starts the TUI.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "fittrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fittrack",
		Short: "Log workouts, track weekly progress and chat with a fitness coach",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}
	root.SilenceUsage = true

	root.AddCommand(
		newWorkoutsCmd(app),
		newSummaryCmd(app),
		newProfileCmd(app),
		newChatCmd(app),
	)

	return root
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
