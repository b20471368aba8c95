package cli

import (
	"testing"

	"github.com/alexanderramin/fittrack/internal/teatest"
)

// TestDriver wraps teatest.Driver with accessors for appModel internals
// (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sizes the terminal and
// drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(140, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Dashboard returns the dashboard view at the bottom of the stack.
func (d *TestDriver) Dashboard() *dashboardView {
	return d.appModel().viewStack[0].(*dashboardView)
}

// IsQuitting reports whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the transient output line.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}
