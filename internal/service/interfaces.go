package service

import (
	"context"

	"github.com/alexanderramin/fittrack/internal/domain"
)

type ProfileService interface {
	// Get returns an error matching repository.ErrNotFound when no
	// profile has been saved yet.
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p domain.UserProfile) error
	// SaveForm parses raw form input, then saves it like Save.
	SaveForm(ctx context.Context, form domain.ProfileForm) (domain.UserProfile, error)
}
