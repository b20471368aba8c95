package formatter

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/fittrack/internal/chat"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/pipeline"
	"github.com/alexanderramin/fittrack/internal/seed"
	"github.com/alexanderramin/fittrack/internal/testutil"
	"github.com/alexanderramin/fittrack/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var today = time.Date(2025, 6, 18, 15, 30, 0, 0, time.Local)

func seededSnapshot() tracker.Snapshot {
	s := tracker.NewSession(seed.Workouts(today), tracker.WithClock(func() time.Time { return today }))
	return s.Snapshot()
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		width   int
		want    string
	}{
		{"empty", 0, 10, "[░░░░░░░░░░]   0%"},
		{"half", 50, 10, "[█████░░░░░]  50%"},
		{"full", 100, 4, "[████] 100%"},
		{"over clamps", 150, 4, "[████] 100%"},
		{"negative clamps", -5, 4, "[░░░░]   0%"},
		{"tiny width clamps to 2", 50, 1, "[█░]  50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.percent, tt.width)))
		})
	}
}

func TestTable_Render(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "LONGER"}, [][]string{{"xyz", "1"}, {"q"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "A    LONGER", lines[0])
	assert.Equal(t, "───  ──────", lines[1])
	assert.Equal(t, "xyz  1", strings.TrimRight(lines[2], " "))
	assert.Equal(t, "q", strings.TrimRight(lines[3], " "))
}

func TestTable_Cursor(t *testing.T) {
	out := stripANSI(Table{Headers: []string{"N"}, Rows: [][]string{{"a"}, {"b"}}, Cursor: 1}.Render())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "  N", lines[0])
	assert.Equal(t, "  a", lines[2])
	assert.Equal(t, "▸ b", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRelativeDay(t *testing.T) {
	tests := []struct {
		daysAgo int
		want    string
	}{
		{0, "Today"},
		{1, "Yesterday"},
		{-1, "Tomorrow"},
		{-3, "In 3d"},
		{5, "5d ago"},
		{21, "3w ago"},
		{90, "3mo ago"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDay(today.AddDate(0, 0, -tt.daysAgo), today))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45.9))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 50m", FormatMinutes(110))
}

func TestWorkoutHeaders_SortArrow(t *testing.T) {
	h := WorkoutHeaders(pipeline.DefaultSort())
	assert.Equal(t, "DATE ▼", h[1])
	assert.Equal(t, "EXERCISE", h[2])

	h = WorkoutHeaders(pipeline.SortState{Column: pipeline.ColumnReps, Direction: pipeline.SortAsc})
	assert.Equal(t, "DATE", h[1])
	assert.Equal(t, "REPS ▲", h[4])
}

func TestWorkoutRow(t *testing.T) {
	w := testutil.NewTestWorkout("Bench Press",
		testutil.WithDaysAgo(today, 2),
		testutil.WithReps(8),
		testutil.WithSets(4),
		testutil.WithWeight(62.5),
	)

	row := WorkoutRow(w, false, today)
	for i := range row {
		row[i] = stripANSI(row[i])
	}
	assert.Equal(t, "○", row[0])
	assert.Equal(t, "2025-06-16 (2d ago)", row[1])
	assert.Equal(t, "Bench Press", row[2])
	assert.Equal(t, "● Strength", row[3])
	assert.Equal(t, []string{"8", "4", "62.5 kg", "—"}, row[4:8])

	done := WorkoutRow(w, true, today)
	assert.Equal(t, "✔", stripANSI(done[0]))
}

func TestFormatWorkouts_Seed(t *testing.T) {
	out := stripANSI(FormatWorkouts(seededSnapshot(), today))

	assert.Contains(t, out, "[All (8)]")
	assert.Contains(t, out, "Cardio (3)")
	assert.Contains(t, out, "Strength (4)")
	assert.Contains(t, out, "Flexibility (1)")
	assert.Contains(t, out, "DATE ▼")
	for _, name := range []string{"Running", "Squats", "Yoga", "Swimming"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Workouts 8")
}

func TestFormatWorkouts_EmptyCategory(t *testing.T) {
	s := tracker.NewSession(nil)
	out := stripANSI(FormatWorkouts(s.Snapshot(), today))
	assert.Contains(t, out, "No workouts in this category.")
}

func TestFormatPersonalBest(t *testing.T) {
	assert.Equal(t, "No workouts yet.", stripANSI(FormatPersonalBest(nil)))

	squats := testutil.NewTestWorkout("Squats", testutil.WithReps(3), testutil.WithSets(60), testutil.WithWeight(80))
	assert.Contains(t, stripANSI(FormatPersonalBest(&squats)), "80 kg × 3 reps × 60 sets")

	run := testutil.NewTestWorkout("Running", testutil.WithType(domain.ExerciseCardio), testutil.WithDuration(45))
	assert.Contains(t, stripANSI(FormatPersonalBest(&run)), "45m")
}

func TestFormatSummary(t *testing.T) {
	out := stripANSI(FormatSummary(seededSnapshot()))

	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "Squats")
	assert.Contains(t, out, "Weekly goal (1000)")
	assert.Contains(t, out, "%")
}

func TestFormatProfile(t *testing.T) {
	assert.Contains(t, stripANSI(FormatProfile(nil)), "No profile saved yet")

	p := testutil.NewTestProfile()
	out := stripANSI(FormatProfile(&p))
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "Alex Runner")
	assert.Contains(t, out, "Endurance")
	assert.Contains(t, out, "+15551234567")
}

func TestFormatChatHistory(t *testing.T) {
	at := time.Date(2025, 6, 18, 9, 5, 0, 0, time.UTC)
	out := stripANSI(FormatChatHistory([]chat.Message{
		{Text: "hi", Sender: chat.SenderBot, Timestamp: at},
		{Text: "yo", Sender: chat.SenderUser, Timestamp: at},
	}))
	assert.Equal(t, "Coach 09:05\nhi\n\nYou 09:05\nyo", out)
}

func TestSpinner_StopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "Thinking...")
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, out, "Thinking...")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"))
}
