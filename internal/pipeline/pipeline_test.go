package pipeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/seed"
	"github.com/alexanderramin/fittrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 18, 15, 30, 0, 0, time.Local)

func ids(records []domain.Workout) []string {
	out := make([]string, 0, len(records))
	for _, w := range records {
		out = append(out, w.ID)
	}
	return out
}

func TestDeriveView_DefaultSortIsNewestFirst(t *testing.T) {
	view := DeriveView(seed.Workouts(testNow), domain.CategoryAll, DefaultSort())
	// 2 and 7 share a date and keep their seed order.
	assert.Equal(t, []string{"1", "2", "7", "3", "4", "5", "6", "8"}, ids(view))
}

func TestDeriveView_DateAscending(t *testing.T) {
	view := DeriveView(seed.Workouts(testNow), domain.CategoryAll, SortState{Column: ColumnDate, Direction: SortAsc})
	assert.Equal(t, []string{"8", "6", "5", "4", "3", "2", "7", "1"}, ids(view))
}

func TestDeriveView_DatesCompareChronologically(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("a", testutil.WithID("a"), testutil.WithDate("2025-10-01")),
		testutil.NewTestWorkout("b", testutil.WithID("b"), testutil.WithDate("2025-09-30")),
		testutil.NewTestWorkout("c", testutil.WithID("c"), testutil.WithDate("2024-12-31")),
	}
	view := DeriveView(records, domain.CategoryAll, SortState{Column: ColumnDate, Direction: SortAsc})
	assert.Equal(t, []string{"c", "b", "a"}, ids(view))
}

func TestDeriveView_FilterThenSort(t *testing.T) {
	view := DeriveView(seed.Workouts(testNow), domain.Category(domain.ExerciseStrength), SortState{Column: ColumnReps, Direction: SortDesc})
	assert.Equal(t, []string{"6", "2", "3", "7"}, ids(view))
}

func TestDeriveView_TextIsCaseSensitive(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("squats", testutil.WithID("lower")),
		testutil.NewTestWorkout("Squats", testutil.WithID("upper")),
		testutil.NewTestWorkout("Bench", testutil.WithID("bench")),
	}
	view := DeriveView(records, domain.CategoryAll, SortState{Column: ColumnExerciseName, Direction: SortAsc})
	assert.Equal(t, []string{"bench", "upper", "lower"}, ids(view))
}

func TestDeriveView_AbsentValuesSortLast(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("a", testutil.WithID("a"), testutil.WithWeight(80)),
		testutil.NewTestWorkout("b", testutil.WithID("b")),
		testutil.NewTestWorkout("c", testutil.WithID("c"), testutil.WithWeight(60)),
		testutil.NewTestWorkout("d", testutil.WithID("d")),
		testutil.NewTestWorkout("e", testutil.WithID("e"), testutil.WithWeight(100)),
	}

	asc := DeriveView(records, domain.CategoryAll, SortState{Column: ColumnWeight, Direction: SortAsc})
	assert.Equal(t, []string{"c", "a", "e", "b", "d"}, ids(asc))

	desc := DeriveView(records, domain.CategoryAll, SortState{Column: ColumnWeight, Direction: SortDesc})
	assert.Equal(t, []string{"e", "a", "c", "b", "d"}, ids(desc))
}

func TestDeriveView_SeedOptionalColumns(t *testing.T) {
	records := seed.Workouts(testNow)
	tests := []struct {
		name string
		sort SortState
		want []string
	}{
		// Bench 60, Squats 80, Deadlift 100; the rest carry no weight.
		{"weight desc", SortState{Column: ColumnWeight, Direction: SortDesc}, []string{"7", "6", "3", "1", "2", "4", "5", "8"}},
		// Squats 3, Deadlift 3, Bench 4, Push-ups 5.
		{"sets asc", SortState{Column: ColumnSets, Direction: SortAsc}, []string{"6", "7", "3", "2", "1", "4", "5", "8"}},
		// Cycling 60, Yoga 45, Swimming 45, Running 30.
		{"duration desc", SortState{Column: ColumnDuration, Direction: SortDesc}, []string{"5", "4", "8", "1", "2", "3", "6", "7"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(DeriveView(records, domain.CategoryAll, tc.sort)))
		})
	}
}

func TestDeriveView_StableInBothDirections(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("x", testutil.WithID("1"), testutil.WithReps(10)),
		testutil.NewTestWorkout("x", testutil.WithID("2"), testutil.WithReps(5)),
		testutil.NewTestWorkout("x", testutil.WithID("3"), testutil.WithReps(10)),
		testutil.NewTestWorkout("x", testutil.WithID("4"), testutil.WithReps(5)),
	}
	asc := DeriveView(records, domain.CategoryAll, SortState{Column: ColumnReps, Direction: SortAsc})
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(asc))

	desc := DeriveView(records, domain.CategoryAll, SortState{Column: ColumnReps, Direction: SortDesc})
	assert.Equal(t, []string{"1", "3", "2", "4"}, ids(desc))
}

func TestDeriveView_DoesNotMutateInput(t *testing.T) {
	records := seed.Workouts(testNow)
	before := ids(records)
	_ = DeriveView(records, domain.CategoryAll, SortState{Column: ColumnExerciseName, Direction: SortAsc})
	assert.Equal(t, before, ids(records))
}

func TestDeriveView_EmptyInput(t *testing.T) {
	view := DeriveView(nil, domain.Category(domain.ExerciseCardio), DefaultSort())
	assert.NotNil(t, view)
	assert.Empty(t, view)
}

// Property checks over random collections.

func TestDeriveView_RandomCollections(t *testing.T) {
	columns := []SortColumn{
		ColumnReps, ColumnExerciseName, ColumnExerciseType, ColumnID, ColumnDate,
		ColumnSets, ColumnWeight, ColumnDuration, ColumnNotes,
	}

	for seedVal := int64(1); seedVal <= 25; seedVal++ {
		records := testutil.RandomWorkouts(seedVal, 40, testNow)
		snapshot := ids(records)

		for _, cat := range domain.Categories {
			for _, col := range columns {
				for _, dir := range []SortDirection{SortAsc, SortDesc} {
					view := DeriveView(records, cat, SortState{Column: col, Direction: dir})

					filtered := make([]domain.Workout, 0)
					for _, w := range records {
						if cat.Matches(w.ExerciseType) {
							filtered = append(filtered, w)
						}
					}
					require.ElementsMatch(t, ids(filtered), ids(view))

					pos := make(map[string]int, len(records))
					for i, w := range records {
						pos[w.ID] = i
					}
					for i := 1; i < len(view); i++ {
						c := Compare(view[i-1], view[i], SortState{Column: col, Direction: dir})
						require.LessOrEqual(t, c, 0, "seed=%d col=%s dir=%s", seedVal, col, dir)
						if c == 0 {
							require.Less(t, pos[view[i-1].ID], pos[view[i].ID], "stability seed=%d col=%s", seedVal, col)
						}
					}
				}
			}
		}

		assert.Equal(t, snapshot, ids(records), "input must not be reordered")
	}
}
