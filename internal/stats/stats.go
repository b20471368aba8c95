// Package stats computes summary numbers over workout collections.
// Every function is pure and total: empty input yields zero values.
package stats

import (
	"math"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// DefaultWeeklyGoal is the score that counts as 100% weekly progress.
const DefaultWeeklyGoal = 1000

// Score returns the volume score of a single record: reps*sets for
// strength records with sets, reps otherwise.
func Score(w domain.Workout) int {
	if w.ExerciseType == domain.ExerciseStrength && w.Sets != nil {
		return w.Reps * *w.Sets
	}
	return w.Reps
}

// TotalScore sums Score over records.
func TotalScore(records []domain.Workout) int {
	total := 0
	for _, w := range records {
		total += Score(w)
	}
	return total
}

// TotalDuration sums durations in minutes. Absent durations count as 0.
func TotalDuration(records []domain.Workout) float64 {
	total := 0.0
	for _, w := range records {
		total += domain.Float64FromPtrWithDefault(0, w.Duration)
	}
	return total
}

// StrengthScore is weight*reps*sets with absent sets counted as one.
func StrengthScore(w domain.Workout) float64 {
	sets := domain.IntFromPtrWithDefault(1, w.Sets)
	return domain.Float64FromPtrWithDefault(0, w.Weight) * float64(w.Reps) * float64(sets)
}

// PersonalBest picks the standout record:
//  1. the strength record with a weight maximizing StrengthScore;
//  2. otherwise the cardio record with the longest duration;
//  3. otherwise the first record.
//
// Ties keep the earliest record. Returns nil for empty input.
func PersonalBest(records []domain.Workout) *domain.Workout {
	if len(records) == 0 {
		return nil
	}

	bestIdx := -1
	bestScore := 0.0
	for i, w := range records {
		if w.ExerciseType != domain.ExerciseStrength || w.Weight == nil {
			continue
		}
		if s := StrengthScore(w); bestIdx < 0 || s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	if bestIdx >= 0 {
		best := records[bestIdx]
		return &best
	}

	for i, w := range records {
		if w.ExerciseType != domain.ExerciseCardio {
			continue
		}
		if d := domain.Float64FromPtrWithDefault(0, w.Duration); bestIdx < 0 || d > bestScore {
			bestIdx, bestScore = i, d
		}
	}
	if bestIdx >= 0 {
		best := records[bestIdx]
		return &best
	}

	first := records[0]
	return &first
}

// FilterByType keeps the records in category, preserving order.
// The result is never nil.
func FilterByType(records []domain.Workout, category domain.Category) []domain.Workout {
	out := make([]domain.Workout, 0, len(records))
	for _, w := range records {
		if category.Matches(w.ExerciseType) {
			out = append(out, w)
		}
	}
	return out
}

// WeekStart returns the Sunday that starts the week containing now,
// as a calendar date at midnight UTC. The weekday is taken from now's
// own location.
func WeekStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, time.UTC)
}

// ThisWeek returns the records dated on or after the start of now's week.
// Records with unparsable dates are skipped.
func ThisWeek(records []domain.Workout, now time.Time) []domain.Workout {
	start := WeekStart(now)
	out := make([]domain.Workout, 0, len(records))
	for _, w := range records {
		day, ok := w.Day()
		if !ok || day.Before(start) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// WeeklyProgress is WeeklyProgressWithGoal with DefaultWeeklyGoal.
func WeeklyProgress(records []domain.Workout, now time.Time) int {
	return WeeklyProgressWithGoal(records, now, DefaultWeeklyGoal)
}

// WeeklyProgressWithGoal returns this week's total score as a percentage
// of goal, rounded and capped at 100. A goal of zero or less falls back
// to DefaultWeeklyGoal.
func WeeklyProgressWithGoal(records []domain.Workout, now time.Time, goal int) int {
	if goal <= 0 {
		goal = DefaultWeeklyGoal
	}
	score := TotalScore(ThisWeek(records, now))
	return percent(float64(score), float64(goal))
}

// CompletionProgress returns the share of completed entries relative to
// the number of records, rounded and capped at 100. Entries for ids that
// are no longer in records still count.
func CompletionProgress(records []domain.Workout, completions domain.CompletionMap) int {
	if len(records) == 0 {
		return 0
	}
	return percent(float64(completions.CountCompleted()), float64(len(records)))
}

// ProgressInput bundles what either progress policy may need.
type ProgressInput struct {
	Records     []domain.Workout
	Completions domain.CompletionMap
	Now         time.Time
	WeeklyGoal  int
}

// ComputeProgress evaluates the selected policy. Unknown policies use volume.
func ComputeProgress(policy domain.ProgressPolicy, in ProgressInput) int {
	if policy == domain.ProgressCompletion {
		return CompletionProgress(in.Records, in.Completions)
	}
	return WeeklyProgressWithGoal(in.Records, in.Now, in.WeeklyGoal)
}

func percent(value, total float64) int {
	p := int(math.Round(value / total * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
