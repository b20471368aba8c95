package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/pipeline"
	"github.com/spf13/pflag"
)

// Typed flag values reject bad input at parse time with the list of
// accepted values.

type categoryFlag struct{ v domain.Category }

func (f *categoryFlag) String() string { return string(f.v) }
func (f *categoryFlag) Type() string   { return "category" }
func (f *categoryFlag) Set(s string) error {
	c, ok := domain.ParseCategory(s)
	if !ok {
		return fmt.Errorf("must be one of %s", joinCategories())
	}
	f.v = c
	return nil
}

type sortColumnFlag struct{ v pipeline.SortColumn }

func (f *sortColumnFlag) String() string { return string(f.v) }
func (f *sortColumnFlag) Type() string   { return "column" }
func (f *sortColumnFlag) Set(s string) error {
	c, ok := pipeline.ParseSortColumn(s)
	if !ok {
		names := make([]string, len(pipeline.SortColumns))
		for i, c := range pipeline.SortColumns {
			names[i] = string(c)
		}
		return fmt.Errorf("must be one of %s", strings.Join(names, ", "))
	}
	f.v = c
	return nil
}

type directionFlag struct{ v pipeline.SortDirection }

func (f *directionFlag) String() string { return string(f.v) }
func (f *directionFlag) Type() string   { return "asc|desc" }
func (f *directionFlag) Set(s string) error {
	d, ok := pipeline.ParseSortDirection(s)
	if !ok {
		return fmt.Errorf("must be asc or desc")
	}
	f.v = d
	return nil
}

type policyFlag struct{ v domain.ProgressPolicy }

func (f *policyFlag) String() string { return string(f.v) }
func (f *policyFlag) Type() string   { return "volume|completion" }
func (f *policyFlag) Set(s string) error {
	p := domain.ProgressPolicy(strings.ToLower(strings.TrimSpace(s)))
	if !domain.ValidProgressPolicies[string(p)] {
		return fmt.Errorf("must be volume or completion")
	}
	f.v = p
	return nil
}

var (
	_ pflag.Value = (*categoryFlag)(nil)
	_ pflag.Value = (*sortColumnFlag)(nil)
	_ pflag.Value = (*directionFlag)(nil)
	_ pflag.Value = (*policyFlag)(nil)
)

func joinCategories() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// addProfileFlags binds the profile form fields to fs.
func addProfileFlags(fs *pflag.FlagSet, form *domain.ProfileForm) {
	fs.StringVar(&form.FullName, "name", "", "Full name (at least 2 characters)")
	fs.StringVar(&form.Age, "age", "", "Age in years (1-119)")
	fs.StringVar(&form.Gender, "gender", "", "male, female or other")
	fs.StringVar(&form.FitnessGoal, "goal", "", "weight-loss, muscle-gain, endurance or general")
	fs.StringVar(&form.ContactNumber, "contact", "", "Contact number (at least 10 characters)")
}
