package cli

import (
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var policy policyFlag

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show category counts, totals, personal best and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.NewSession()
			snap := s.Snapshot()
			if cmd.Flags().Changed("policy") {
				snap = s.SetProgressPolicy(policy.v)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(snap))
			return nil
		},
	}

	cmd.Flags().Var(&policy, "policy", "Progress policy")

	return cmd
}
