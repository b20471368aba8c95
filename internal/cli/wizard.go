package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fittrackHuhTheme returns a huh theme built on the formatter palette.
func fittrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var genderOrder = []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther}

var goalOrder = []domain.FitnessGoal{
	domain.GoalWeightLoss,
	domain.GoalMuscleGain,
	domain.GoalEndurance,
	domain.GoalGeneral,
}

// errorNote shows the fields a previous submission rejected.
func errorNote(err error) *huh.Note {
	fields := domain.InvalidFields(err)
	desc := err.Error()
	if len(fields) > 0 {
		desc = "Check: " + strings.Join(fields, ", ")
	}
	return huh.NewNote().
		Title(formatter.StyleRed.Render("Not saved")).
		Description(desc)
}

var errRequired = errors.New("required")

func requiredText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}

// newWorkoutForm binds a huh form to form. A non-nil err is shown above
// the fields so the user can correct a rejected submission.
func newWorkoutForm(form *domain.WorkoutForm, err error) *huh.Form {
	typeOptions := make([]huh.Option[string], 0, len(domain.ExerciseTypes))
	for _, t := range domain.ExerciseTypes {
		typeOptions = append(typeOptions, huh.NewOption(string(t), string(t)))
	}
	if form.ExerciseType == "" {
		form.ExerciseType = string(domain.ExerciseCardio)
	}

	var fields []huh.Field
	if err != nil {
		fields = append(fields, errorNote(err))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Exercise").
			Placeholder("e.g. Morning Run").
			Value(&form.ExerciseName).
			Validate(requiredText),
		huh.NewSelect[string]().
			Title("Type").
			Options(typeOptions...).
			Value(&form.ExerciseType),
		huh.NewInput().
			Title("Date").
			Description("YYYY-MM-DD").
			Value(&form.Date).
			Validate(requiredText),
		huh.NewInput().
			Title("Reps").
			Value(&form.Reps),
		huh.NewInput().
			Title("Sets").
			Value(&form.Sets),
		huh.NewInput().
			Title("Weight (kg)").
			Value(&form.Weight),
		huh.NewInput().
			Title("Duration (min)").
			Value(&form.Duration),
		huh.NewInput().
			Title("Notes").
			Value(&form.Notes),
	)

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(fittrackHuhTheme()).
		WithShowHelp(false)
}

// newProfileForm binds a huh form to form, pre-filled from its values.
func newProfileForm(form *domain.ProfileForm, err error) *huh.Form {
	genders := make([]huh.Option[string], 0, len(genderOrder))
	for _, g := range genderOrder {
		genders = append(genders, huh.NewOption(g.Label(), string(g)))
	}
	goals := make([]huh.Option[string], 0, len(goalOrder))
	for _, g := range goalOrder {
		goals = append(goals, huh.NewOption(g.Label(), string(g)))
	}

	var fields []huh.Field
	if err != nil {
		fields = append(fields, errorNote(err))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Full name").
			Value(&form.FullName),
		huh.NewInput().
			Title("Age").
			Value(&form.Age),
		huh.NewSelect[string]().
			Title("Gender").
			Options(genders...).
			Value(&form.Gender),
		huh.NewSelect[string]().
			Title("Fitness goal").
			Options(goals...).
			Value(&form.FitnessGoal),
		huh.NewInput().
			Title("Contact number").
			Placeholder("+15551234567").
			Value(&form.ContactNumber),
	)

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(fittrackHuhTheme()).
		WithShowHelp(false)
}
