// Package store exposes read access to the entity tables. Lookups are
// fail-soft: a miss (or any lookup failure) returns nil, never an error.
package store

import (
	"context"
	"errors"

	"github.com/villagehq/village/internal/logger"
	"github.com/villagehq/village/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store resolves entities and users by their identifiers.
type Store interface {
	// Entity returns the entity with the given guid, or nil.
	Entity(ctx context.Context, guid int64) *model.Entity
	// UserByUsername returns the user with the given username, or nil.
	UserByUsername(ctx context.Context, username string) *model.User
}

type gormStore struct {
	db    *gorm.DB
	cache *Cache
}

// New creates a Store over db. cache may be nil to disable entity caching.
func New(db *gorm.DB, cache *Cache) Store {
	return &gormStore{db: db, cache: cache}
}

func (s *gormStore) Entity(ctx context.Context, guid int64) *model.Entity {
	if guid <= 0 {
		return nil
	}

	if e := s.cache.getEntity(ctx, guid); e != nil {
		return e
	}

	var e model.Entity
	if err := s.db.WithContext(ctx).First(&e, "guid = ?", guid).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("entity lookup failed", zap.Int64("guid", guid), zap.Error(err))
		}
		return nil
	}

	s.cache.putEntity(ctx, &e)
	return &e
}

func (s *gormStore) UserByUsername(ctx context.Context, username string) *model.User {
	if username == "" {
		return nil
	}

	var u model.User
	if err := s.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("user lookup failed", zap.String("username", username), zap.Error(err))
		}
		return nil
	}
	return &u
}
