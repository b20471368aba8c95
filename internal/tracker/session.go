// Package tracker holds the session state controller: the single owner of
// the workout collection and of the filter, sort and completion state
// layered on top of it.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/pipeline"
	"github.com/alexanderramin/fittrack/internal/stats"
	"github.com/google/uuid"
)

// ErrDuplicateID is returned by AddWorkout when the id generator keeps
// producing ids already present in the collection.
var ErrDuplicateID = errors.New("duplicate workout id")

const maxIDAttempts = 8

// Session is not safe for concurrent use. Callers serialise commands,
// as the bubbletea runtime does through Update.
type Session struct {
	records     []domain.Workout
	filter      domain.Category
	sort        pipeline.SortState
	completions domain.CompletionMap
	policy      domain.ProgressPolicy
	weeklyGoal  int

	clock    func() time.Time
	newID    func() string
	observer Observer
}

type Option func(*Session)

// WithClock overrides the time source used for weekly progress.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

// WithIDGenerator overrides the id assigned to added workouts.
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) { s.newID = gen }
}

func WithProgressPolicy(p domain.ProgressPolicy) Option {
	return func(s *Session) { s.policy = p }
}

func WithWeeklyGoal(goal int) Option {
	return func(s *Session) { s.weeklyGoal = goal }
}

func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

// NewSession starts a session over a copy of seed with the All filter,
// newest-first sort and no completions.
func NewSession(seed []domain.Workout, opts ...Option) *Session {
	s := &Session{
		records:     append([]domain.Workout(nil), seed...),
		filter:      domain.CategoryAll,
		sort:        pipeline.DefaultSort(),
		completions: domain.CompletionMap{},
		policy:      domain.ProgressVolume,
		weeklyGoal:  stats.DefaultWeeklyGoal,
		clock:       time.Now,
		newID:       uuid.NewString,
		observer:    NoopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ── commands ─────────────────────────────────────────────────────────────────

// AddWorkout validates form and prepends the new record. On validation
// failure the session is left untouched and the *domain.InvalidInputError
// is returned. Ids already in the collection are redrawn up to
// maxIDAttempts times before ErrDuplicateID is returned.
func (s *Session) AddWorkout(form domain.WorkoutForm) (w domain.Workout, err error) {
	startedAt := time.Now()
	fields := map[string]any{"exercise": form.ExerciseName}
	defer func() {
		if err != nil {
			fields["invalid_fields"] = domain.InvalidFields(err)
		} else {
			fields["id"] = w.ID
		}
		s.observe("add-workout", startedAt, fields, err)
	}()

	w, err = domain.NewWorkout(form, s.newID())
	if err != nil {
		return domain.Workout{}, err
	}
	for attempt := 1; s.indexOf(w.ID) >= 0; attempt++ {
		if attempt == maxIDAttempts {
			fields["id"] = w.ID
			return domain.Workout{}, fmt.Errorf("add workout %q: %w", w.ID, ErrDuplicateID)
		}
		w.ID = s.newID()
	}

	records := make([]domain.Workout, 0, len(s.records)+1)
	records = append(records, w)
	s.records = append(records, s.records...)
	return w, nil
}

// SetFilter makes category the active filter.
func (s *Session) SetFilter(category domain.Category) Snapshot {
	startedAt := time.Now()
	s.filter = category
	s.observe("set-filter", startedAt, map[string]any{"filter": string(category)}, nil)
	return s.Snapshot()
}

// SetSort applies the header-click toggle rule for column.
func (s *Session) SetSort(column pipeline.SortColumn) Snapshot {
	startedAt := time.Now()
	s.sort = s.sort.Toggle(column)
	s.observe("set-sort", startedAt, map[string]any{
		"column":    string(s.sort.Column),
		"direction": string(s.sort.Direction),
	}, nil)
	return s.Snapshot()
}

// ToggleCompletion flips the completion flag for id. Ids that match no
// record are still recorded; the records themselves never change.
func (s *Session) ToggleCompletion(id string) Snapshot {
	startedAt := time.Now()
	done := s.completions.Toggle(id)
	s.observe("toggle-completion", startedAt, map[string]any{
		"id":        id,
		"completed": done,
		"known":     s.indexOf(id) >= 0,
	}, nil)
	return s.Snapshot()
}

// FocusExercise switches the filter to the type of the first record named
// name. It reports false and changes nothing when no record matches.
func (s *Session) FocusExercise(name string) (Snapshot, bool) {
	startedAt := time.Now()
	for _, w := range s.records {
		if w.ExerciseName == name {
			s.filter = domain.Category(w.ExerciseType)
			s.observe("focus-exercise", startedAt, map[string]any{
				"exercise": name,
				"filter":   string(s.filter),
			}, nil)
			return s.Snapshot(), true
		}
	}
	s.observe("focus-exercise", startedAt, map[string]any{"exercise": name, "matched": false}, nil)
	return s.Snapshot(), false
}

// SetProgressPolicy selects how Progress is computed.
func (s *Session) SetProgressPolicy(p domain.ProgressPolicy) Snapshot {
	startedAt := time.Now()
	if !domain.ValidProgressPolicies[string(p)] {
		p = domain.ProgressVolume
	}
	s.policy = p
	s.observe("set-progress-policy", startedAt, map[string]any{"policy": string(p)}, nil)
	return s.Snapshot()
}

func (s *Session) observe(name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveCommand(CommandEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *Session) indexOf(id string) int {
	for i, w := range s.records {
		if w.ID == id {
			return i
		}
	}
	return -1
}
