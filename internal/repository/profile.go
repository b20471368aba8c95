package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// ProfileRepo stores the user profile as one JSON document under
// domain.ProfileKey.
type ProfileRepo struct {
	store SettingsStore
}

func NewProfileRepo(store SettingsStore) *ProfileRepo {
	return &ProfileRepo{store: store}
}

// Get returns ErrNotFound (wrapped) when no profile has been saved.
func (r *ProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	raw, err := r.store.Get(ctx, domain.ProfileKey)
	if err != nil {
		return nil, fmt.Errorf("user profile: %w", err)
	}
	var p domain.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decoding user profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepo) Save(ctx context.Context, p domain.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding user profile: %w", err)
	}
	if err := r.store.Put(ctx, domain.ProfileKey, raw); err != nil {
		return fmt.Errorf("user profile: %w", err)
	}
	return nil
}
