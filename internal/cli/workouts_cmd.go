package cli

import (
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/pipeline"
	"github.com/alexanderramin/fittrack/internal/tracker"
	"github.com/spf13/cobra"
)

func newWorkoutsCmd(app *App) *cobra.Command {
	filter := categoryFlag{v: domain.CategoryAll}
	column := sortColumnFlag{v: pipeline.ColumnDate}
	order := directionFlag{v: pipeline.SortDesc}

	cmd := &cobra.Command{
		Use:     "workouts",
		Aliases: []string{"ls"},
		Short:   "Show the workout table",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.NewSession()
			s.SetFilter(filter.v)
			snap := applySort(s, pipeline.SortState{Column: column.v, Direction: order.v})

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkouts(snap, app.now()))
			return nil
		},
	}

	cmd.Flags().Var(&filter, "filter", "Category: "+joinCategories())
	cmd.Flags().Var(&column, "sort", "Sort column (date, name, type, reps, sets, weight, duration, notes, id)")
	cmd.Flags().Var(&order, "order", "Sort direction")

	return cmd
}

// applySort drives the session's toggle rule until want is active. From
// any state this takes at most two toggles.
func applySort(s *tracker.Session, want pipeline.SortState) tracker.Snapshot {
	snap := s.Snapshot()
	for i := 0; i < 2 && s.Sort() != want; i++ {
		snap = s.SetSort(want.Column)
	}
	return snap
}
