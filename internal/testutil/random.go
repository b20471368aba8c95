package testutil

import (
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/brianvoe/gofakeit/v6"
)

// exerciseNames is the pool random records draw their names from. The
// pool is small on purpose so that sorts see duplicate keys.
var exerciseNames = []string{
	"Running", "Cycling", "Rowing", "Swimming",
	"Squats", "Deadlift", "Bench Press", "Pull-ups",
	"Yoga", "Pilates", "Stretching",
}

// RandomWorkouts generates n records from a seeded faker. Each optional
// field is left absent about a third of the time and dates fall within
// thirty days before base.
func RandomWorkouts(seed int64, n int, base time.Time) []domain.Workout {
	f := gofakeit.New(seed)
	out := make([]domain.Workout, 0, n)
	for i := 0; i < n; i++ {
		w := domain.Workout{
			ID:           f.UUID(),
			ExerciseName: exerciseNames[f.Number(0, len(exerciseNames)-1)],
			ExerciseType: domain.ExerciseTypes[f.Number(0, len(domain.ExerciseTypes)-1)],
			Date:         base.AddDate(0, 0, -f.Number(0, 30)).Format(domain.DateLayout),
			Reps:         f.Number(0, 60),
		}
		if f.Number(0, 2) > 0 {
			w.Sets = domain.IntPtr(f.Number(1, 6))
		}
		if f.Number(0, 2) > 0 {
			w.Weight = domain.Float64Ptr(float64(f.Number(0, 200)))
		}
		if f.Number(0, 2) > 0 {
			w.Duration = domain.Float64Ptr(float64(f.Number(5, 120)))
		}
		if f.Bool() {
			w.Notes = f.Sentence(4)
		}
		out = append(out, w)
	}
	return out
}
