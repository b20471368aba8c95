// Package seed provides the starter workouts every session begins with.
package seed

import (
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
)

type entry struct {
	id       string
	name     string
	typ      domain.ExerciseType
	daysAgo  int
	reps     int
	sets     *int
	weight   *float64
	duration *float64
	notes    string
}

var entries = []entry{
	{id: "1", name: "Running", typ: domain.ExerciseCardio, daysAgo: 0, reps: 1, duration: domain.Float64Ptr(30), notes: "Morning run in the park"},
	{id: "2", name: "Push-ups", typ: domain.ExerciseStrength, daysAgo: 1, reps: 50, sets: domain.IntPtr(5), notes: "Increased reps from last session"},
	{id: "3", name: "Bench Press", typ: domain.ExerciseStrength, daysAgo: 2, reps: 40, sets: domain.IntPtr(4), weight: domain.Float64Ptr(60), notes: "Felt strong today"},
	{id: "4", name: "Yoga", typ: domain.ExerciseFlexibility, daysAgo: 3, reps: 1, duration: domain.Float64Ptr(45), notes: "Focus on lower back flexibility"},
	{id: "5", name: "Cycling", typ: domain.ExerciseCardio, daysAgo: 4, reps: 1, duration: domain.Float64Ptr(60), notes: "Long ride on the coastal route"},
	{id: "6", name: "Squats", typ: domain.ExerciseStrength, daysAgo: 5, reps: 60, sets: domain.IntPtr(3), weight: domain.Float64Ptr(80), notes: "Working on form"},
	{id: "7", name: "Deadlift", typ: domain.ExerciseStrength, daysAgo: 1, reps: 30, sets: domain.IntPtr(3), weight: domain.Float64Ptr(100), notes: "Personal best on weight"},
	{id: "8", name: "Swimming", typ: domain.ExerciseCardio, daysAgo: 6, reps: 1, duration: domain.Float64Ptr(45), notes: "Practiced freestyle technique"},
}

// Workouts returns a fresh copy of the starter records, dated relative
// to today's calendar date in today's location.
func Workouts(today time.Time) []domain.Workout {
	out := make([]domain.Workout, 0, len(entries))
	for _, e := range entries {
		w := domain.Workout{
			ID:           e.id,
			ExerciseName: e.name,
			ExerciseType: e.typ,
			Date:         today.AddDate(0, 0, -e.daysAgo).Format(domain.DateLayout),
			Reps:         e.reps,
			Notes:        e.notes,
		}
		if e.sets != nil {
			w.Sets = domain.IntPtr(*e.sets)
		}
		if e.weight != nil {
			w.Weight = domain.Float64Ptr(*e.weight)
		}
		if e.duration != nil {
			w.Duration = domain.Float64Ptr(*e.duration)
		}
		out = append(out, w)
	}
	return out
}
