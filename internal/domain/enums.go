package domain

import "strings"

type ExerciseType string

const (
	ExerciseCardio      ExerciseType = "Cardio"
	ExerciseStrength    ExerciseType = "Strength"
	ExerciseFlexibility ExerciseType = "Flexibility"
)

// ExerciseTypes lists the exercise types in display order.
var ExerciseTypes = []ExerciseType{ExerciseCardio, ExerciseStrength, ExerciseFlexibility}

// ParseExerciseType matches s case-insensitively against the known
// exercise types and returns the canonical value.
func ParseExerciseType(s string) (ExerciseType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range ExerciseTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// Category is the active filter: All or one of the exercise types.
type Category string

const CategoryAll Category = "All"

// Categories lists the filter tabs in display order.
var Categories = []Category{
	CategoryAll,
	Category(ExerciseCardio),
	Category(ExerciseStrength),
	Category(ExerciseFlexibility),
}

// ParseCategory accepts "all" or an exercise type, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	if strings.EqualFold(strings.TrimSpace(s), string(CategoryAll)) {
		return CategoryAll, true
	}
	t, ok := ParseExerciseType(s)
	if !ok {
		return "", false
	}
	return Category(t), true
}

// Matches reports whether a record of type t belongs to the category.
func (c Category) Matches(t ExerciseType) bool {
	return c == CategoryAll || string(c) == string(t)
}

type ProgressPolicy string

const (
	ProgressVolume     ProgressPolicy = "volume"
	ProgressCompletion ProgressPolicy = "completion"
)

// ValidProgressPolicies is the canonical set of accepted progress policy strings.
var ValidProgressPolicies = map[string]bool{
	"volume": true, "completion": true,
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ValidGenders is the canonical set of accepted gender strings.
var ValidGenders = map[string]bool{
	"male": true, "female": true, "other": true,
}

type FitnessGoal string

const (
	GoalWeightLoss FitnessGoal = "weight-loss"
	GoalMuscleGain FitnessGoal = "muscle-gain"
	GoalEndurance  FitnessGoal = "endurance"
	GoalGeneral    FitnessGoal = "general"
)

// ValidFitnessGoals is the canonical set of accepted fitness goal strings.
var ValidFitnessGoals = map[string]bool{
	"weight-loss": true, "muscle-gain": true, "endurance": true, "general": true,
}

// Label returns the human-readable name of the goal.
func (g FitnessGoal) Label() string {
	switch g {
	case GoalWeightLoss:
		return "Weight Loss"
	case GoalMuscleGain:
		return "Muscle Gain"
	case GoalEndurance:
		return "Endurance"
	case GoalGeneral:
		return "General Fitness"
	default:
		return string(g)
	}
}

// Label returns the human-readable name of the gender.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return string(g)
	}
}
