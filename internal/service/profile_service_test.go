package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/repository"
	"github.com/alexanderramin/fittrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

// untouchableUoW fails the test if a transaction is ever opened.
type untouchableUoW struct {
	t *testing.T
}

func (u untouchableUoW) WithinTx(context.Context, func(context.Context, db.DBTX) error) error {
	u.t.Fatal("unexpected transaction")
	return nil
}

func TestProfileService_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	svc := NewProfileService(testutil.NewTestUoW(database), obs)
	ctx := context.Background()

	_, err := svc.Get(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	want := testutil.NewTestProfile()
	require.NoError(t, svc.Save(ctx, want))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	require.Len(t, obs.events, 3)
	assert.Equal(t, "get-profile", obs.events[0].Name)
	assert.True(t, obs.events[0].Success, "missing profile is not a failure")
	assert.Equal(t, false, obs.events[0].Fields["found"])
	assert.Equal(t, "save-profile", obs.events[1].Name)
	assert.True(t, obs.events[1].Success)
	assert.Equal(t, true, obs.events[2].Fields["found"])
}

func TestProfileService_InvalidProfileNeverOpensTx(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewProfileService(untouchableUoW{t: t}, obs)

	bad := testutil.NewTestProfile()
	bad.Age = 0
	bad.ContactNumber = "123"

	err := svc.Save(context.Background(), bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, []string{"age", "contactNumber"}, domain.InvalidFields(err))

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "age,contactNumber", obs.events[0].Fields["invalid_fields"])
}

func TestProfileService_SaveForm(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewProfileService(testutil.NewTestUoW(database))
	ctx := context.Background()

	p, err := svc.SaveForm(ctx, domain.ProfileForm{
		FullName:      "  Sam Lee ",
		Age:           "28",
		Gender:        "Female",
		FitnessGoal:   "muscle-gain",
		ContactNumber: "0123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam Lee", p.FullName)
	assert.Equal(t, domain.GenderFemale, p.Gender)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, *got)
}

func TestProfileService_SaveFormRejectsBadAge(t *testing.T) {
	svc := NewProfileService(untouchableUoW{t: t})

	_, err := svc.SaveForm(context.Background(), domain.ProfileForm{
		FullName:      "Sam Lee",
		Age:           "twenty",
		Gender:        "female",
		FitnessGoal:   "general",
		ContactNumber: "0123456789",
	})
	require.Error(t, err)
	assert.Equal(t, []string{"age"}, domain.InvalidFields(err))
}

func TestProfileService_WriteFailureRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	good := NewProfileService(testutil.NewTestUoW(database))
	original := testutil.NewTestProfile()
	require.NoError(t, good.Save(ctx, original))

	writeErr := errors.New("disk full")
	failing := NewProfileService(&testutil.FailingWriteUoW{
		DB:    database,
		Match: "INSERT INTO settings",
		Err:   writeErr,
	})

	updated := original
	updated.FullName = "Someone Else"
	err := failing.Save(ctx, updated)
	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)

	got, err := good.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, original.FullName, got.FullName)
}
