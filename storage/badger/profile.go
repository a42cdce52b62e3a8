package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(backend *Backend) *ProfileRepository {
	return &ProfileRepository{backend: backend}
}

// Close releases repository resources.
func (r *ProfileRepository) Close() error {
	return nil
}

// SaveProfile stores a profile, replacing any existing profile for the same
// user id.
func (r *ProfileRepository) SaveProfile(ctx context.Context, profile *core.UserProfile) error {
	if err := core.ValidateProfile(profile); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProfileKey(profile.UserId)
		now := time.Now().UTC()

		// A replace keeps the original creation time.
		if profile.InsertedAt.IsZero() {
			profile.InsertedAt = now
			if item, err := tx.Get(key); err == nil {
				_ = item.Value(func(val []byte) error {
					if existing, err := storage.UnmarshalProfile(val); err == nil {
						profile.InsertedAt = existing.InsertedAt
					}
					return nil
				})
			}
		}
		profile.UpdatedAt = now

		if err := tx.Set(key, storage.MarshalProfile(profile)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetProfile retrieves the profile for a user id.
func (r *ProfileRepository) GetProfile(ctx context.Context, userId string) (*core.UserProfile, error) {
	var profile *core.UserProfile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProfileKey(userId))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			profile, err = storage.UnmarshalProfile(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteProfile removes the profile for a user id.
func (r *ProfileRepository) DeleteProfile(ctx context.Context, userId string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProfileKey(userId)
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
