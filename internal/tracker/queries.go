package tracker

import (
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/pipeline"
	"github.com/alexanderramin/fittrack/internal/stats"
)

// CategoryCounts holds the tab badge counts over the full collection.
type CategoryCounts struct {
	All         int
	Cardio      int
	Strength    int
	Flexibility int
}

// Get returns the count for category c.
func (c CategoryCounts) Get(cat domain.Category) int {
	switch cat {
	case domain.CategoryAll:
		return c.All
	case domain.Category(domain.ExerciseCardio):
		return c.Cardio
	case domain.Category(domain.ExerciseStrength):
		return c.Strength
	case domain.Category(domain.ExerciseFlexibility):
		return c.Flexibility
	}
	return 0
}

// Snapshot is everything a renderer needs after a command.
type Snapshot struct {
	View         []domain.Workout
	Counts       CategoryCounts
	Filter       domain.Category
	Sort         pipeline.SortState
	Completions  domain.CompletionMap
	PersonalBest *domain.Workout
	Progress     int
	Policy       domain.ProgressPolicy
	WeeklyGoal   int

	// Totals cover the filtered view.
	TotalScore    int
	TotalDuration float64
}

// CountsByType counts the whole collection, ignoring the active filter.
func (s *Session) CountsByType() CategoryCounts {
	c := CategoryCounts{All: len(s.records)}
	for _, w := range s.records {
		switch w.ExerciseType {
		case domain.ExerciseCardio:
			c.Cardio++
		case domain.ExerciseStrength:
			c.Strength++
		case domain.ExerciseFlexibility:
			c.Flexibility++
		}
	}
	return c
}

// CurrentView returns the filtered, sorted records.
func (s *Session) CurrentView() []domain.Workout {
	return pipeline.DeriveView(s.records, s.filter, s.sort)
}

// Records returns a copy of the canonical collection, newest insertion first.
func (s *Session) Records() []domain.Workout {
	return append([]domain.Workout(nil), s.records...)
}

func (s *Session) Len() int { return len(s.records) }

// Completions returns a copy of the completion map.
func (s *Session) Completions() domain.CompletionMap {
	return s.completions.Clone()
}

func (s *Session) IsCompleted(id string) bool {
	return s.completions.Completed(id)
}

func (s *Session) Filter() domain.Category {
	return s.filter
}

func (s *Session) Sort() pipeline.SortState {
	return s.sort
}

func (s *Session) Policy() domain.ProgressPolicy {
	return s.policy
}

// ExerciseNames returns the distinct exercise names in first-seen order.
func (s *Session) ExerciseNames() []string {
	seen := make(map[string]bool, len(s.records))
	names := make([]string, 0, len(s.records))
	for _, w := range s.records {
		if seen[w.ExerciseName] {
			continue
		}
		seen[w.ExerciseName] = true
		names = append(names, w.ExerciseName)
	}
	return names
}

// PersonalBest is computed over the whole collection.
func (s *Session) PersonalBest() *domain.Workout {
	return stats.PersonalBest(s.records)
}

// Progress evaluates the active progress policy over the whole collection.
func (s *Session) Progress() int {
	return stats.ComputeProgress(s.policy, stats.ProgressInput{
		Records:     s.records,
		Completions: s.completions,
		Now:         s.clock(),
		WeeklyGoal:  s.weeklyGoal,
	})
}

// Snapshot gathers every query result in one value.
func (s *Session) Snapshot() Snapshot {
	view := s.CurrentView()
	return Snapshot{
		View:          view,
		Counts:        s.CountsByType(),
		Filter:        s.filter,
		Sort:          s.sort,
		Completions:   s.completions.Clone(),
		PersonalBest:  s.PersonalBest(),
		Progress:      s.Progress(),
		Policy:        s.policy,
		WeeklyGoal:    s.weeklyGoal,
		TotalScore:    stats.TotalScore(view),
		TotalDuration: stats.TotalDuration(view),
	}
}
