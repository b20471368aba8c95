// Package pipeline derives the displayed workout list from the canonical
// collection: filter by category, then stable sort by one column.
package pipeline

import (
	"cmp"
	"sort"
	"strings"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/stats"
)

// DeriveView filters records to category and sorts the result by s.
// The input slice is never modified.
func DeriveView(records []domain.Workout, category domain.Category, s SortState) []domain.Workout {
	view := stats.FilterByType(records, category)
	sort.SliceStable(view, func(i, j int) bool {
		return Compare(view[i], view[j], s) < 0
	})
	return view
}

// Compare orders a and b under s, returning -1, 0 or +1.
//
// Dates compare chronologically, numbers numerically and text with a
// case-sensitive byte comparison; descending order negates the result.
// Absent values (nil optional number, empty notes, unparsable date) sort
// after present ones in both directions and are equal to each other.
func Compare(a, b domain.Workout, s SortState) int {
	hasA, hasB := hasValue(a, s.Column), hasValue(b, s.Column)
	switch {
	case !hasA && !hasB:
		return 0
	case !hasA:
		return 1
	case !hasB:
		return -1
	}

	c := compareValues(a, b, s.Column)
	if s.Direction == SortDesc {
		c = -c
	}
	return c
}

func hasValue(w domain.Workout, column SortColumn) bool {
	switch column {
	case ColumnDate:
		_, ok := w.Day()
		return ok
	case ColumnSets:
		return w.Sets != nil
	case ColumnWeight:
		return w.Weight != nil
	case ColumnDuration:
		return w.Duration != nil
	case ColumnNotes:
		return w.Notes != ""
	}
	return true
}

// compareValues compares two present values in ascending order.
func compareValues(a, b domain.Workout, column SortColumn) int {
	switch column {
	case ColumnDate:
		da, _ := a.Day()
		db, _ := b.Day()
		return da.Compare(db)
	case ColumnReps:
		return cmp.Compare(a.Reps, b.Reps)
	case ColumnSets:
		return cmp.Compare(*a.Sets, *b.Sets)
	case ColumnWeight:
		return cmp.Compare(*a.Weight, *b.Weight)
	case ColumnDuration:
		return cmp.Compare(*a.Duration, *b.Duration)
	case ColumnID:
		return strings.Compare(a.ID, b.ID)
	case ColumnExerciseName:
		return strings.Compare(a.ExerciseName, b.ExerciseName)
	case ColumnExerciseType:
		return strings.Compare(string(a.ExerciseType), string(b.ExerciseType))
	case ColumnNotes:
		return strings.Compare(a.Notes, b.Notes)
	}
	return 0
}
