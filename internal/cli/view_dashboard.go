package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/pipeline"
	"github.com/alexanderramin/fittrack/internal/tracker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardKeyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Focus      key.Binding
	Policy     key.Binding
	Add        key.Binding
	Chat       key.Binding
	Profile    key.Binding
	SortByKeys map[string]pipeline.SortColumn
}

var dashboardKeys = dashboardKeyMap{
	NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab")),
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
	Focus:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next exercise")),
	Policy:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "policy")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "log")),
	Chat:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
	Profile: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "profile")),
	SortByKeys: map[string]pipeline.SortColumn{
		"d": pipeline.ColumnDate,
		"n": pipeline.ColumnExerciseName,
		"t": pipeline.ColumnExerciseType,
		"r": pipeline.ColumnReps,
		"s": pipeline.ColumnSets,
		"w": pipeline.ColumnWeight,
		"u": pipeline.ColumnDuration,
	},
}

// Rows of chrome around the table: tabs, blank, header, separator,
// blank and totals.
const dashboardChrome = 6

// Terminal width from which the summary panel sits beside the table.
const splitWidth = 130

// dashboardView is the home screen: category tabs, the derived workout
// table and a summary panel with the personal best, weekly progress and
// the exercise names f cycles through.
type dashboardView struct {
	state  *SharedState
	snap   tracker.Snapshot
	cursor int
	offset int
	// focused is the exercise name last picked with f. Empty once the
	// category is changed by hand.
	focused string
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state: state,
		snap:  state.Session.Snapshot(),
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Workouts" }

func (v *dashboardView) ShortHelp() []key.Binding {
	k := dashboardKeys
	return []key.Binding{
		k.NextTab,
		key.NewBinding(key.WithKeys("d"), key.WithHelp("dntrswu", "sort")),
		k.Toggle,
		k.Focus,
		k.Policy,
		k.Add,
		k.Chat,
		k.Profile,
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.apply(v.state.Session.Snapshot())
		return v, nil
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := dashboardKeys
	session := v.state.Session

	if col, ok := k.SortByKeys[msg.String()]; ok {
		v.apply(session.SetSort(col))
		return nil
	}

	switch {
	case key.Matches(msg, k.NextTab):
		v.setCategory(v.categoryIndex() + 1)
	case key.Matches(msg, k.PrevTab):
		v.setCategory(v.categoryIndex() - 1)
	case len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '4':
		v.setCategory(int(msg.Runes[0] - '1'))

	case key.Matches(msg, k.Up):
		v.moveCursor(-1)
	case key.Matches(msg, k.Down):
		v.moveCursor(1)

	case key.Matches(msg, k.Toggle):
		if w, ok := v.selected(); ok {
			v.apply(session.ToggleCompletion(w.ID))
		}

	case key.Matches(msg, k.Focus):
		return v.focusNext()

	case key.Matches(msg, k.Policy):
		next := domain.ProgressCompletion
		if session.Policy() == domain.ProgressCompletion {
			next = domain.ProgressVolume
		}
		v.apply(session.SetProgressPolicy(next))

	case key.Matches(msg, k.Add):
		return startAddWorkoutWizard(v.state, domain.WorkoutForm{}, nil)

	case key.Matches(msg, k.Chat):
		return pushView(newChatView(v.state))

	case key.Matches(msg, k.Profile):
		return pushView(newProfileView(v.state))
	}
	return nil
}

// apply stores a fresh snapshot and keeps the cursor on a visible row.
func (v *dashboardView) apply(snap tracker.Snapshot) {
	v.snap = snap
	v.cursor = min(v.cursor, max(len(snap.View)-1, 0))
}

func (v *dashboardView) categoryIndex() int {
	for i, c := range domain.Categories {
		if c == v.snap.Filter {
			return i
		}
	}
	return 0
}

func (v *dashboardView) setCategory(i int) {
	n := len(domain.Categories)
	i = ((i % n) + n) % n
	v.apply(v.state.Session.SetFilter(domain.Categories[i]))
	v.cursor = 0
	v.focused = ""
}

// focusNext moves to the exercise after the focused one, wrapping around,
// and puts the cursor on its newest row in the narrowed view.
func (v *dashboardView) focusNext() tea.Cmd {
	names := v.state.Session.ExerciseNames()
	if len(names) == 0 {
		return nil
	}
	next := 0
	for i, name := range names {
		if name == v.focused {
			next = (i + 1) % len(names)
			break
		}
	}
	name := names[next]

	snap, found := v.state.Session.FocusExercise(name)
	v.apply(snap)
	if !found {
		return nil
	}
	v.focused = name
	v.cursor = 0
	for i, w := range snap.View {
		if w.ExerciseName == name {
			v.cursor = i
			break
		}
	}
	return outputCmd(formatter.Dim(fmt.Sprintf("Showing %s: %s", snap.Filter, name)))
}

func (v *dashboardView) moveCursor(delta int) {
	if len(v.snap.View) == 0 {
		return
	}
	v.cursor = min(max(v.cursor+delta, 0), len(v.snap.View)-1)
}

func (v *dashboardView) selected() (domain.Workout, bool) {
	if v.cursor < 0 || v.cursor >= len(v.snap.View) {
		return domain.Workout{}, false
	}
	return v.snap.View[v.cursor], true
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	left := v.renderTable()
	right := v.renderPanel()

	if v.state.Width >= splitWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}
	return left + "\n" + right
}

func (v *dashboardView) renderTable() string {
	var b strings.Builder
	b.WriteString(formatter.FormatCategoryTabs(v.snap.Counts, v.snap.Filter))
	b.WriteString("\n\n")

	if len(v.snap.View) == 0 {
		b.WriteString(formatter.Dim("No workouts in this category. Press a to log one."))
		b.WriteString("\n")
		return b.String()
	}

	table := formatter.WorkoutTable(v.snap, v.cursor, v.state.App.now())

	// Window the rows once the terminal size is known.
	if v.state.Height > 0 {
		visible := max(v.state.ContentHeight()-dashboardChrome, 3)
		if v.state.Width < splitWidth {
			visible = max(visible-panelHeight, 3)
		}
		if v.cursor < v.offset {
			v.offset = v.cursor
		}
		if v.cursor >= v.offset+visible {
			v.offset = v.cursor - visible + 1
		}
		v.offset = min(v.offset, max(len(table.Rows)-visible, 0))
		end := min(v.offset+visible, len(table.Rows))
		table.Rows = table.Rows[v.offset:end]
		table.Cursor = v.cursor - v.offset
	}

	b.WriteString(table.Render())
	b.WriteString("\n")
	b.WriteString(formatter.FormatTotals(v.snap))
	b.WriteString("\n")
	return b.String()
}

// Height of the summary panel box with the seed's exercise names.
const panelHeight = 12

// Widest line of exercise names in the panel.
const exerciseLineWidth = 40

func (v *dashboardView) renderPanel() string {
	lines := []string{
		formatter.Dim("Personal best"),
		formatter.FormatPersonalBest(v.snap.PersonalBest),
		"",
		fmt.Sprintf("%s  %s",
			formatter.RenderProgress(v.snap.Progress, 20),
			formatter.Dim(formatter.PolicyLabel(v.snap.Policy, v.snap.WeeklyGoal))),
		"",
		formatter.Dim("Exercises (f)"),
	}
	lines = append(lines, v.renderExerciseNames()...)
	return formatter.RenderBox("This week", strings.Join(lines, "\n"))
}

// renderExerciseNames packs the names into lines no wider than
// exerciseLineWidth, never splitting a name. The focused one is bold.
func (v *dashboardView) renderExerciseNames() []string {
	const sep = " · "
	var lines []string
	var line strings.Builder
	width := 0
	for _, name := range v.state.Session.ExerciseNames() {
		w := lipgloss.Width(name)
		if width > 0 && width+lipgloss.Width(sep)+w > exerciseLineWidth {
			lines = append(lines, line.String())
			line.Reset()
			width = 0
		}
		if width > 0 {
			line.WriteString(formatter.Dim(sep))
			width += lipgloss.Width(sep)
		}
		if name == v.focused {
			line.WriteString(formatter.Bold(name))
		} else {
			line.WriteString(name)
		}
		width += w
	}
	if width > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
