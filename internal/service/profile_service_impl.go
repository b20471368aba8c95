package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/repository"
)

type profileService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProfileService(uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Get(ctx context.Context) (profile *domain.UserProfile, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		// A missing profile is an expected state, not a failure.
		if errors.Is(err, repository.ErrNotFound) {
			fields["found"] = false
			s.observe(ctx, "get-profile", startedAt, nil, fields)
			return
		}
		s.observe(ctx, "get-profile", startedAt, err, fields)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		p, err := profilesIn(tx).Get(ctx)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["found"] = true
	return profile, nil
}

func (s *profileService) Save(ctx context.Context, p domain.UserProfile) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observe(ctx, "save-profile", startedAt, err, fields)
	}()

	if err = domain.ValidateProfile(p); err != nil {
		fields["invalid_fields"] = strings.Join(domain.InvalidFields(err), ",")
		return err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return profilesIn(tx).Save(ctx, p)
	})
	return err
}

func (s *profileService) SaveForm(ctx context.Context, form domain.ProfileForm) (domain.UserProfile, error) {
	p, err := domain.NewUserProfile(form)
	if err != nil {
		s.observe(ctx, "save-profile", time.Now().UTC(), err, map[string]any{
			"invalid_fields": strings.Join(domain.InvalidFields(err), ","),
		})
		return domain.UserProfile{}, err
	}
	if err := s.Save(ctx, p); err != nil {
		return domain.UserProfile{}, err
	}
	return p, nil
}

func (s *profileService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// profilesIn builds a tx-scoped profile repository.
func profilesIn(tx db.DBTX) *repository.ProfileRepo {
	return repository.NewProfileRepo(repository.NewSQLiteSettingsStore(tx))
}
