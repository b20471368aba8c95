package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// DateLayout is the calendar date format used for workout dates.
const DateLayout = "2006-01-02"

// Workout is a single logged exercise entry. Records are never mutated
// once created; the session replaces them wholesale.
type Workout struct {
	ID           string
	ExerciseName string
	ExerciseType ExerciseType
	Date         string
	Reps         int
	Sets         *int
	Weight       *float64 // kg
	Duration     *float64 // minutes
	Notes        string
}

// Day returns the record's calendar date at midnight UTC.
// ok is false when Date is not a valid YYYY-MM-DD value.
func (w Workout) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, w.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// WorkoutForm holds raw form input before validation.
type WorkoutForm struct {
	ExerciseName string
	ExerciseType string
	Date         string
	Reps         string
	Sets         string
	Weight       string
	Duration     string
	Notes        string
}

// NewWorkout validates form and builds a record with the given id.
//
// Name, type and date are required; every failing field is reported in a
// single *InvalidInputError. Numeric fields are never rejected: reps falls
// back to 0 and the optional numbers are dropped when blank, unparsable
// or negative.
func NewWorkout(form WorkoutForm, id string) (Workout, error) {
	var errs error

	name := strings.TrimSpace(form.ExerciseName)
	if name == "" {
		errs = multierr.Append(errs, fieldErr("exerciseName", "is required"))
	}

	typ, ok := ParseExerciseType(form.ExerciseType)
	if !ok {
		errs = multierr.Append(errs, fieldErr("exerciseType",
			fmt.Sprintf("must be one of Cardio, Strength, Flexibility (got %q)", form.ExerciseType)))
	}

	date := strings.TrimSpace(form.Date)
	if _, err := time.Parse(DateLayout, date); err != nil {
		errs = multierr.Append(errs, fieldErr("date", "must be a YYYY-MM-DD calendar date"))
	}

	if err := newInvalidInputError(errs); err != nil {
		return Workout{}, err
	}

	return Workout{
		ID:           id,
		ExerciseName: name,
		ExerciseType: typ,
		Date:         date,
		Reps:         IntFromPtrWithDefault(0, parseOptionalInt(form.Reps)),
		Sets:         parseOptionalInt(form.Sets),
		Weight:       parseOptionalFloat(form.Weight),
		Duration:     parseOptionalFloat(form.Duration),
		Notes:        strings.TrimSpace(form.Notes),
	}, nil
}

// parseOptionalInt returns nil for blank, unparsable or negative input.
func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// parseOptionalFloat returns nil for blank, unparsable, non-finite or negative input.
func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
