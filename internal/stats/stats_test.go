package stats

import (
	"testing"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/seed"
	"github.com/alexanderramin/fittrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var testNow = time.Date(2025, 6, 18, 15, 30, 0, 0, time.Local)

func TestTotalScore(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("Push-ups", testutil.WithReps(50), testutil.WithSets(5)),
		testutil.NewTestWorkout("Running", testutil.WithType(domain.ExerciseCardio), testutil.WithReps(1), testutil.WithSets(3)),
		testutil.NewTestWorkout("Plank", testutil.WithReps(12)),
	}
	// 250 + 1 (sets ignored for cardio) + 12 (no sets)
	assert.Equal(t, 263, TotalScore(records))
	assert.Equal(t, 0, TotalScore(nil))
}

func TestTotalDuration(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("Running", testutil.WithType(domain.ExerciseCardio), testutil.WithDuration(30)),
		testutil.NewTestWorkout("Squats"),
		testutil.NewTestWorkout("Yoga", testutil.WithType(domain.ExerciseFlexibility), testutil.WithDuration(45.5)),
	}
	assert.Equal(t, 75.5, TotalDuration(records))
	assert.Equal(t, 0.0, TotalDuration(nil))
}

func TestPersonalBest_StrengthWins(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("Deadlift", testutil.WithReps(30), testutil.WithSets(3), testutil.WithWeight(100)),
		testutil.NewTestWorkout("Bench Press", testutil.WithReps(40), testutil.WithSets(4), testutil.WithWeight(60)),
	}
	best := PersonalBest(records)
	require.NotNil(t, best)
	assert.Equal(t, "Bench Press", best.ExerciseName)
	assert.Equal(t, 9600.0, StrengthScore(*best))
}

func TestPersonalBest_SeedIsSquats(t *testing.T) {
	best := PersonalBest(seed.Workouts(testNow))
	require.NotNil(t, best)
	assert.Equal(t, "Squats", best.ExerciseName)
	assert.Equal(t, 14400.0, StrengthScore(*best))
}

func TestPersonalBest_TieKeepsFirst(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("A", testutil.WithID("a"), testutil.WithReps(10), testutil.WithWeight(50)),
		testutil.NewTestWorkout("B", testutil.WithID("b"), testutil.WithReps(5), testutil.WithSets(2), testutil.WithWeight(50)),
	}
	best := PersonalBest(records)
	require.NotNil(t, best)
	assert.Equal(t, "a", best.ID)
}

func TestPersonalBest_ZeroWeightStillStrength(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("Running", testutil.WithType(domain.ExerciseCardio), testutil.WithDuration(60)),
		testutil.NewTestWorkout("Pull-ups", testutil.WithReps(10), testutil.WithWeight(0)),
	}
	best := PersonalBest(records)
	require.NotNil(t, best)
	assert.Equal(t, "Pull-ups", best.ExerciseName)
}

func TestPersonalBest_CardioFallback(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("Push-ups", testutil.WithReps(50), testutil.WithSets(5)),
		testutil.NewTestWorkout("Walk", testutil.WithType(domain.ExerciseCardio)),
		testutil.NewTestWorkout("Cycling", testutil.WithType(domain.ExerciseCardio), testutil.WithDuration(60)),
		testutil.NewTestWorkout("Swimming", testutil.WithType(domain.ExerciseCardio), testutil.WithDuration(60)),
	}
	best := PersonalBest(records)
	require.NotNil(t, best)
	assert.Equal(t, "Cycling", best.ExerciseName)
}

func TestPersonalBest_FirstRecordFallback(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("Yoga", testutil.WithType(domain.ExerciseFlexibility)),
		testutil.NewTestWorkout("Push-ups", testutil.WithReps(50)),
	}
	best := PersonalBest(records)
	require.NotNil(t, best)
	assert.Equal(t, "Yoga", best.ExerciseName)

	assert.Nil(t, PersonalBest(nil))
}

func TestFilterByType(t *testing.T) {
	records := seed.Workouts(testNow)

	all := FilterByType(records, domain.CategoryAll)
	assert.Equal(t, records, all)

	cardio := FilterByType(records, domain.Category(domain.ExerciseCardio))
	names := make([]string, 0, len(cardio))
	for _, w := range cardio {
		names = append(names, w.ExerciseName)
	}
	assert.Equal(t, []string{"Running", "Cycling", "Swimming"}, names)

	none := FilterByType(nil, domain.Category(domain.ExerciseStrength))
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"wednesday", testNow, "2025-06-15"},
		{"sunday", time.Date(2025, 6, 15, 0, 5, 0, 0, time.Local), "2025-06-15"},
		{"saturday", time.Date(2025, 6, 21, 23, 59, 0, 0, time.Local), "2025-06-15"},
		{"across month", time.Date(2025, 7, 2, 9, 0, 0, 0, time.Local), "2025-06-29"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeekStart(tc.now).Format(domain.DateLayout))
		})
	}
}

func TestWeeklyProgress(t *testing.T) {
	records := []domain.Workout{
		// Sunday of this week counts at day granularity.
		testutil.NewTestWorkout("Squats", testutil.WithDate("2025-06-15"), testutil.WithReps(60), testutil.WithSets(3)),
		testutil.NewTestWorkout("Push-ups", testutil.WithDate("2025-06-18"), testutil.WithReps(50), testutil.WithSets(5)),
		// Saturday of last week does not.
		testutil.NewTestWorkout("Deadlift", testutil.WithDate("2025-06-14"), testutil.WithReps(30), testutil.WithSets(3)),
		testutil.NewTestWorkout("Broken", testutil.WithDate("not-a-date"), testutil.WithReps(500)),
	}
	// (180 + 250) / 1000
	assert.Equal(t, 43, WeeklyProgress(records, testNow))
}

func TestWeeklyProgress_ClampsAt100(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("Push-ups", testutil.WithDate("2025-06-16"), testutil.WithReps(100), testutil.WithSets(20)),
	}
	assert.Equal(t, 100, WeeklyProgress(records, testNow))
	assert.Equal(t, 0, WeeklyProgress(nil, testNow))
}

func TestWeeklyProgressWithGoal(t *testing.T) {
	records := []domain.Workout{
		testutil.NewTestWorkout("Push-ups", testutil.WithDate("2025-06-16"), testutil.WithReps(50), testutil.WithSets(5)),
	}
	assert.Equal(t, 50, WeeklyProgressWithGoal(records, testNow, 500))
	assert.Equal(t, 25, WeeklyProgressWithGoal(records, testNow, 0), "non-positive goal falls back to default")
}

func TestCompletionProgress(t *testing.T) {
	records := seed.Workouts(testNow)
	assert.Equal(t, 25, CompletionProgress(records, domain.CompletionMap{"1": true, "4": true, "5": false}))
	assert.Equal(t, 0, CompletionProgress(nil, domain.CompletionMap{"1": true}))

	// Stale entries count and the result is capped.
	two := records[:2]
	assert.Equal(t, 100, CompletionProgress(two, domain.CompletionMap{"1": true, "2": true, "x": true}))
}

func TestComputeProgress(t *testing.T) {
	in := ProgressInput{
		Records: []domain.Workout{
			testutil.NewTestWorkout("Push-ups", testutil.WithID("p"), testutil.WithDate("2025-06-16"), testutil.WithReps(100)),
			testutil.NewTestWorkout("Squats", testutil.WithID("s"), testutil.WithDate("2025-06-16"), testutil.WithReps(100)),
		},
		Completions: domain.CompletionMap{"p": true},
		Now:         testNow,
		WeeklyGoal:  1000,
	}
	assert.Equal(t, 20, ComputeProgress(domain.ProgressVolume, in))
	assert.Equal(t, 50, ComputeProgress(domain.ProgressCompletion, in))
	assert.Equal(t, 20, ComputeProgress("mystery", in))
}
