package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/pipeline"
	"github.com/alexanderramin/fittrack/internal/tracker"
)

type workoutColumn struct {
	title  string
	column pipeline.SortColumn
}

var workoutColumns = []workoutColumn{
	{"DATE", pipeline.ColumnDate},
	{"EXERCISE", pipeline.ColumnExerciseName},
	{"TYPE", pipeline.ColumnExerciseType},
	{"REPS", pipeline.ColumnReps},
	{"SETS", pipeline.ColumnSets},
	{"WEIGHT", pipeline.ColumnWeight},
	{"DURATION", pipeline.ColumnDuration},
	{"NOTES", pipeline.ColumnNotes},
}

// WorkoutHeaders returns the table headers with an arrow on the sorted column.
func WorkoutHeaders(sort pipeline.SortState) []string {
	headers := make([]string, 0, len(workoutColumns)+1)
	headers = append(headers, "")
	for _, c := range workoutColumns {
		title := c.title
		if c.column == sort.Column {
			if sort.Direction == pipeline.SortAsc {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		headers = append(headers, title)
	}
	return headers
}

// WorkoutRow renders one record. Inactive optional fields are shown as
// given; absent ones as a dash.
func WorkoutRow(w domain.Workout, completed bool, today time.Time) []string {
	check := Dim("○")
	name := w.ExerciseName
	if completed {
		check = StyleGreen.Render("✔")
		name = StyleDim.Strikethrough(true).Render(name)
	}

	date := w.Date
	if day, ok := w.Day(); ok {
		date = fmt.Sprintf("%s %s", w.Date, Dim("("+RelativeDay(day, today)+")"))
	}

	notes := w.Notes
	if len([]rune(notes)) > 28 {
		notes = string([]rune(notes)[:27]) + "…"
	}

	return []string{
		check,
		date,
		name,
		TypeBadge(w.ExerciseType),
		fmt.Sprintf("%d", w.Reps),
		optInt(w.Sets),
		optFloat(w.Weight, " kg"),
		optFloat(w.Duration, " min"),
		notes,
	}
}

// WorkoutTable builds the table for a snapshot's derived view.
func WorkoutTable(snap tracker.Snapshot, cursor int, today time.Time) Table {
	rows := make([][]string, 0, len(snap.View))
	for _, w := range snap.View {
		rows = append(rows, WorkoutRow(w, snap.Completions.Completed(w.ID), today))
	}
	return Table{Headers: WorkoutHeaders(snap.Sort), Rows: rows, Cursor: cursor}
}

// FormatWorkouts renders the derived view as a plain table with a totals line.
func FormatWorkouts(snap tracker.Snapshot, today time.Time) string {
	var b strings.Builder
	b.WriteString(FormatCategoryTabs(snap.Counts, snap.Filter))
	b.WriteString("\n\n")

	if len(snap.View) == 0 {
		b.WriteString(Dim("No workouts in this category.") + "\n")
		return b.String()
	}

	table := WorkoutTable(snap, -1, today)
	b.WriteString(table.Render())
	b.WriteString("\n")
	b.WriteString(FormatTotals(snap))
	b.WriteString("\n")
	return b.String()
}

// FormatTotals summarizes the filtered view.
func FormatTotals(snap tracker.Snapshot) string {
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		Dim("Workouts"), Bold(fmt.Sprintf("%d", len(snap.View))),
		Dim("Score"), Bold(fmt.Sprintf("%d", snap.TotalScore)),
		Dim("Duration"), Bold(FormatMinutes(snap.TotalDuration)),
	)
}

// FormatCategoryTabs renders "All (8)  Cardio (3)  ..." with the active
// category highlighted.
func FormatCategoryTabs(counts tracker.CategoryCounts, active domain.Category) string {
	tabs := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		label := fmt.Sprintf("%s (%d)", c, counts.Get(c))
		if c == active {
			tabs = append(tabs, StyleHeader.Render("["+label+"]"))
			continue
		}
		tabs = append(tabs, Dim(" "+label+" "))
	}
	return strings.Join(tabs, " ")
}

// FormatPersonalBest describes the best record, or a placeholder when
// there are no records.
func FormatPersonalBest(pb *domain.Workout) string {
	if pb == nil {
		return Dim("No workouts yet.")
	}

	var detail string
	switch {
	case pb.ExerciseType == domain.ExerciseStrength && pb.Weight != nil:
		sets := domain.IntFromPtrWithDefault(1, pb.Sets)
		detail = fmt.Sprintf("%s kg × %d reps × %d sets", FormatNumber(*pb.Weight), pb.Reps, sets)
	case pb.Duration != nil:
		detail = FormatMinutes(*pb.Duration)
	default:
		detail = fmt.Sprintf("%d reps", pb.Reps)
	}
	return fmt.Sprintf("%s  %s  %s", Bold(pb.ExerciseName), TypeBadge(pb.ExerciseType), Dim(detail))
}

// PolicyLabel names a progress policy for display.
func PolicyLabel(p domain.ProgressPolicy, weeklyGoal int) string {
	if p == domain.ProgressCompletion {
		return "Completed"
	}
	return fmt.Sprintf("Weekly goal (%d)", weeklyGoal)
}

// FormatSummary renders counts, totals, personal best and progress.
func FormatSummary(snap tracker.Snapshot) string {
	var b strings.Builder

	b.WriteString(Header("Summary") + "\n\n")
	for _, c := range domain.Categories {
		b.WriteString(fmt.Sprintf("  %s %d\n", Dim(padRight(string(c), 12)), snap.Counts.Get(c)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  %s %d\n", Dim(padRight("Score", 12)), snap.TotalScore))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim(padRight("Duration", 12)), FormatMinutes(snap.TotalDuration)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim(padRight("Best", 12)), FormatPersonalBest(snap.PersonalBest)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim(padRight("Progress", 12)), RenderProgress(snap.Progress, 20)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim(padRight("", 12)), Dim(PolicyLabel(snap.Policy, snap.WeeklyGoal))))

	return b.String()
}
