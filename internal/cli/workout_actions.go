package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// startAddWorkoutWizard opens the workout form pre-filled from form.
// err, when set, is the rejection of the previous submission.
func startAddWorkoutWizard(state *SharedState, form domain.WorkoutForm, err error) tea.Cmd {
	if form.Date == "" {
		form.Date = state.App.now().Format(domain.DateLayout)
	}
	f := &form
	return startWizardCmd(state, "Log workout", newWorkoutForm(f, err), func() tea.Cmd {
		return applyAddWorkout(state, *f)
	})
}

// applyAddWorkout validates and records form. Invalid input reopens the
// form with the entered values and the rejected fields.
func applyAddWorkout(state *SharedState, form domain.WorkoutForm) tea.Cmd {
	msg, err := execAddWorkout(state, form)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return startAddWorkoutWizard(state, form, err)
		}
		return outputCmd(errorOutput(err))
	}
	return outputCmd(msg)
}

// execAddWorkout adds the record to the session and returns a one-line
// confirmation.
func execAddWorkout(state *SharedState, form domain.WorkoutForm) (string, error) {
	w, err := state.Session.AddWorkout(form)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s Logged %s %s %s",
		formatter.StyleGreen.Render("✔"),
		formatter.Bold(w.ExerciseName),
		formatter.TypeBadge(w.ExerciseType),
		formatter.TruncID(w.ID)), nil
}

// startEditProfileWizard opens the profile form pre-filled from form.
func startEditProfileWizard(state *SharedState, form domain.ProfileForm, err error) tea.Cmd {
	f := &form
	return startWizardCmd(state, "Edit profile", newProfileForm(f, err), func() tea.Cmd {
		return applySaveProfile(state, *f)
	})
}

// applySaveProfile persists form. Invalid input reopens the form.
func applySaveProfile(state *SharedState, form domain.ProfileForm) tea.Cmd {
	msg, err := execSaveProfile(context.Background(), state, form)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return startEditProfileWizard(state, form, err)
		}
		return outputCmd(errorOutput(err))
	}
	return outputCmd(msg)
}

func execSaveProfile(ctx context.Context, state *SharedState, form domain.ProfileForm) (string, error) {
	saved, err := state.App.Profiles.SaveForm(ctx, form)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s Profile saved for %s",
		formatter.StyleGreen.Render("✔"),
		formatter.Bold(saved.FullName)), nil
}
