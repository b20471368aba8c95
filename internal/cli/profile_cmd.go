package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/repository"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context())
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var input domain.ProfileForm

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save profile fields; unspecified fields keep their saved values",
		Long: "Save profile fields. Flags override the saved profile field by field.\n" +
			"With no flags on an interactive terminal, a form is shown instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := app.Profiles.Get(cmd.Context())
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			form := profileFormFrom(existing)

			if cmd.Flags().NFlag() == 0 && app.IsInteractive != nil && app.IsInteractive() {
				if err := newProfileForm(&form, nil).Run(); err != nil {
					return err
				}
			} else {
				mergeProfileFlags(cmd, &form, input)
			}

			saved, err := app.Profiles.SaveForm(cmd.Context(), form)
			if err != nil {
				return fmt.Errorf("profile not saved: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Profile saved")+"\n")
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(&saved))
			return nil
		},
	}

	addProfileFlags(cmd.Flags(), &input)

	return cmd
}

// profileFormFrom pre-fills a form from a saved profile, or returns an
// empty form when there is none.
func profileFormFrom(p *domain.UserProfile) domain.ProfileForm {
	if p == nil {
		return domain.ProfileForm{}
	}
	return domain.ProfileForm{
		FullName:      p.FullName,
		Age:           strconv.Itoa(p.Age),
		Gender:        string(p.Gender),
		FitnessGoal:   string(p.FitnessGoal),
		ContactNumber: p.ContactNumber,
	}
}

func mergeProfileFlags(cmd *cobra.Command, form *domain.ProfileForm, input domain.ProfileForm) {
	flags := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = strings.TrimSpace(v)
		}
	}
	set("name", &form.FullName, input.FullName)
	set("age", &form.Age, input.Age)
	set("gender", &form.Gender, input.Gender)
	set("goal", &form.FitnessGoal, input.FitnessGoal)
	set("contact", &form.ContactNumber, input.ContactNumber)
}
