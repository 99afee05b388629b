package svc

import (
	"github.com/villagehq/village/internal/config"
	"github.com/villagehq/village/internal/store"

	"gorm.io/gorm"
)

// ServiceContext bundles the process-wide collaborators handed to the
// router. Everything here is read-only during request handling; per-request
// state lives on page.State.
type ServiceContext struct {
	Config *config.Config
	DB     *gorm.DB
	Store  store.Store
	Cache  *store.Cache
}

// New creates the service context.
func New(cfg *config.Config, db *gorm.DB, cache *store.Cache) *ServiceContext {
	return &ServiceContext{
		Config: cfg,
		DB:     db,
		Store:  store.New(db, cache),
		Cache:  cache,
	}
}
