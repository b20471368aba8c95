package pipeline

import (
	"strings"
)

type SortColumn string

const (
	ColumnID           SortColumn = "id"
	ColumnExerciseName SortColumn = "exerciseName"
	ColumnExerciseType SortColumn = "exerciseType"
	ColumnDate         SortColumn = "date"
	ColumnReps         SortColumn = "reps"
	ColumnSets         SortColumn = "sets"
	ColumnWeight       SortColumn = "weight"
	ColumnDuration     SortColumn = "duration"
	ColumnNotes        SortColumn = "notes"
)

// SortColumns lists every sortable column.
var SortColumns = []SortColumn{
	ColumnID, ColumnExerciseName, ColumnExerciseType, ColumnDate,
	ColumnReps, ColumnSets, ColumnWeight, ColumnDuration, ColumnNotes,
}

var columnAliases = map[string]SortColumn{
	"name": ColumnExerciseName,
	"type": ColumnExerciseType,
}

// ParseSortColumn matches s case-insensitively against the column names
// and the short aliases "name" and "type".
func ParseSortColumn(s string) (SortColumn, bool) {
	s = strings.TrimSpace(s)
	for _, c := range SortColumns {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	c, ok := columnAliases[strings.ToLower(s)]
	return c, ok
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection accepts "asc" or "desc", case-insensitively.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	}
	return "", false
}

// SortState is the active sort column and direction.
type SortState struct {
	Column    SortColumn
	Direction SortDirection
}

// DefaultSort is newest first.
func DefaultSort() SortState {
	return SortState{Column: ColumnDate, Direction: SortDesc}
}

// Toggle applies a header click: the active column flips direction, any
// other column becomes active in descending order.
func (s SortState) Toggle(column SortColumn) SortState {
	if s.Column == column {
		if s.Direction == SortDesc {
			return SortState{Column: column, Direction: SortAsc}
		}
		return SortState{Column: column, Direction: SortDesc}
	}
	return SortState{Column: column, Direction: SortDesc}
}

func (s SortState) String() string {
	return string(s.Column) + " " + string(s.Direction)
}
