package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserProfile_Valid(t *testing.T) {
	p, err := NewUserProfile(ProfileForm{
		FullName:      "Ada Lovelace",
		Age:           "36",
		Gender:        "Female",
		FitnessGoal:   "endurance",
		ContactNumber: "0123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, 36, p.Age)
	assert.Equal(t, GenderFemale, p.Gender)
	assert.Equal(t, GoalEndurance, p.FitnessGoal)
}

func TestNewUserProfile_Invalid(t *testing.T) {
	_, err := NewUserProfile(ProfileForm{
		FullName:      "A",
		Age:           "120",
		Gender:        "robot",
		FitnessGoal:   "fame",
		ContactNumber: "555",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t,
		[]string{"fullName", "age", "gender", "fitnessGoal", "contactNumber"},
		InvalidFields(err))
}

func TestValidateProfile_AgeBounds(t *testing.T) {
	base := UserProfile{FullName: "Jo", Gender: GenderOther, FitnessGoal: GoalGeneral, ContactNumber: "0123456789"}
	for age, ok := range map[int]bool{0: false, 1: true, 119: true, 120: false, -3: false} {
		p := base
		p.Age = age
		err := ValidateProfile(p)
		if ok {
			assert.NoError(t, err, "age %d", age)
		} else {
			assert.Equal(t, []string{"age"}, InvalidFields(err), "age %d", age)
		}
	}
}

func TestUserProfile_JSONStoresAgeAsString(t *testing.T) {
	p := UserProfile{FullName: "Jo", Age: 30, Gender: GenderMale, FitnessGoal: GoalMuscleGain, ContactNumber: "0123456789"}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"fullName":"Jo","age":"30","gender":"male","fitnessGoal":"muscle-gain","contactNumber":"0123456789"}`,
		string(raw))
}

func TestGoalAndGenderLabels(t *testing.T) {
	assert.Equal(t, "General Fitness", GoalGeneral.Label())
	assert.Equal(t, "Weight Loss", GoalWeightLoss.Label())
	assert.Equal(t, "Female", GenderFemale.Label())
}
