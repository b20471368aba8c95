package testutil

import (
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/google/uuid"
)

// Workout options
type WorkoutOption func(*domain.Workout)

func WithID(id string) WorkoutOption {
	return func(w *domain.Workout) {
		w.ID = id
	}
}

func WithType(t domain.ExerciseType) WorkoutOption {
	return func(w *domain.Workout) {
		w.ExerciseType = t
	}
}

func WithDate(date string) WorkoutOption {
	return func(w *domain.Workout) {
		w.Date = date
	}
}

// WithDaysAgo dates the record n calendar days before today.
func WithDaysAgo(today time.Time, n int) WorkoutOption {
	return func(w *domain.Workout) {
		w.Date = today.AddDate(0, 0, -n).Format(domain.DateLayout)
	}
}

func WithReps(n int) WorkoutOption {
	return func(w *domain.Workout) {
		w.Reps = n
	}
}

func WithSets(n int) WorkoutOption {
	return func(w *domain.Workout) {
		w.Sets = &n
	}
}

func WithWeight(kg float64) WorkoutOption {
	return func(w *domain.Workout) {
		w.Weight = &kg
	}
}

func WithDuration(min float64) WorkoutOption {
	return func(w *domain.Workout) {
		w.Duration = &min
	}
}

// NewTestWorkout returns a one-rep strength record dated 2025-06-15
// with a fresh id, customised by opts.
func NewTestWorkout(name string, opts ...WorkoutOption) domain.Workout {
	w := domain.Workout{
		ID:           uuid.New().String(),
		ExerciseName: name,
		ExerciseType: domain.ExerciseStrength,
		Date:         "2025-06-15",
		Reps:         1,
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// NewTestProfile returns a profile that passes validation.
func NewTestProfile() domain.UserProfile {
	return domain.UserProfile{
		FullName:      "Alex Runner",
		Age:           34,
		Gender:        domain.GenderOther,
		FitnessGoal:   domain.GoalEndurance,
		ContactNumber: "+15551234567",
	}
}
