package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// FormatProfile renders a saved profile, or a hint when none exists.
func FormatProfile(p *domain.UserProfile) string {
	if p == nil {
		return Dim("No profile saved yet. Run 'fittrack profile set' or press P in the app.") + "\n"
	}

	rows := [][2]string{
		{"Name", p.FullName},
		{"Age", fmt.Sprintf("%d", p.Age)},
		{"Gender", p.Gender.Label()},
		{"Goal", p.FitnessGoal.Label()},
		{"Contact", p.ContactNumber},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(padRight(r[0], 9)), r[1]))
	}
	return RenderBox("Profile", strings.TrimRight(b.String(), "\n")) + "\n"
}
