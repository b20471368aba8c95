package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// ProfileKey is the settings key the profile is stored under.
const ProfileKey = "userProfile"

// UserProfile is the persisted personal information of the single user.
// Age is encoded as a JSON string to stay compatible with stored blobs.
type UserProfile struct {
	FullName      string      `json:"fullName"`
	Age           int         `json:"age,string"`
	Gender        Gender      `json:"gender"`
	FitnessGoal   FitnessGoal `json:"fitnessGoal"`
	ContactNumber string      `json:"contactNumber"`
}

// ProfileForm holds raw profile input before validation.
type ProfileForm struct {
	FullName      string
	Age           string
	Gender        string
	FitnessGoal   string
	ContactNumber string
}

// NewUserProfile parses and validates a profile form.
func NewUserProfile(form ProfileForm) (UserProfile, error) {
	p := UserProfile{
		FullName:      strings.TrimSpace(form.FullName),
		Gender:        Gender(strings.ToLower(strings.TrimSpace(form.Gender))),
		FitnessGoal:   FitnessGoal(strings.ToLower(strings.TrimSpace(form.FitnessGoal))),
		ContactNumber: strings.TrimSpace(form.ContactNumber),
	}

	age, err := strconv.Atoi(strings.TrimSpace(form.Age))
	if err != nil {
		// Leave Age at zero so ValidateProfile reports it.
		age = 0
	}
	p.Age = age

	if err := ValidateProfile(p); err != nil {
		return UserProfile{}, err
	}
	return p, nil
}

// ValidateProfile checks every field and reports all failures at once.
func ValidateProfile(p UserProfile) error {
	var errs error
	if utf8.RuneCountInString(strings.TrimSpace(p.FullName)) < 2 {
		errs = multierr.Append(errs, fieldErr("fullName", "must be at least 2 characters"))
	}
	if p.Age < 1 || p.Age > 119 {
		errs = multierr.Append(errs, fieldErr("age", "must be between 1 and 119"))
	}
	if !ValidGenders[string(p.Gender)] {
		errs = multierr.Append(errs, fieldErr("gender", fmt.Sprintf("must be male, female or other (got %q)", p.Gender)))
	}
	if !ValidFitnessGoals[string(p.FitnessGoal)] {
		errs = multierr.Append(errs, fieldErr("fitnessGoal", fmt.Sprintf("unknown goal %q", p.FitnessGoal)))
	}
	if utf8.RuneCountInString(strings.TrimSpace(p.ContactNumber)) < 10 {
		errs = multierr.Append(errs, fieldErr("contactNumber", "must be at least 10 characters"))
	}
	return newInvalidInputError(errs)
}
