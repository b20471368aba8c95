package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat MESSAGE...",
		Short: "Ask the fitness coach a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			stop := func() {}
			if app.IsInteractive != nil && app.IsInteractive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Coach is typing...")
			}
			reply, err := app.Bot.Respond(cmd.Context(), text)
			stop()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
			return nil
		},
	}
}
