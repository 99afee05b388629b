// Package page resolves which entity owns the current page and tracks the
// request's context stack. All state lives on a per-request State object;
// nothing is shared between requests.
package page

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/villagehq/village/internal/hook"
	"github.com/villagehq/village/internal/model"
	"github.com/villagehq/village/internal/store"
)

// Hook identifiers for owner resolution.
const (
	HookPageOwner  = "page_owner"
	HookTypeSystem = "system"
)

var (
	groupUsernameRe = regexp.MustCompile(`^group:([0-9]+)$`)
	contextSeedRe   = regexp.MustCompile(`^/pg/([\w\-]+)`)
)

// State carries the per-request page state: the context stack, the hook
// registry for owner resolution, and the memoized owner guid.
type State struct {
	ctx   context.Context
	req   Request
	store store.Store
	hooks *hook.Registry[int64]
	stack *Stack

	ownerGUID int64
	resolved  bool
}

// Option customizes a State at construction.
type Option func(*State)

// WithDefaultContext sets the label Context reports when the stack is empty.
func WithDefaultContext(label string) Option {
	return func(s *State) {
		s.stack = NewStack(label)
	}
}

// WithHandler registers an additional page_owner handler at the given
// priority. Handlers below priority 100 run before the default handler.
func WithHandler(priority int, fn hook.Handler[int64]) Option {
	return func(s *State) {
		s.hooks.MustRegister(HookPageOwner, HookTypeSystem, priority, fn)
	}
}

// defaultHandlerPriority is where the default owner handler sits in the
// chain, leaving room on both sides for plugin handlers.
const defaultHandlerPriority = 100

// NewState builds the page state for one request and runs the boot phase:
// the default owner handler is registered and the initial context entry is
// seeded from the request URI. Must happen before anything reads the context
// or resolves the owner.
func NewState(ctx context.Context, req Request, st store.Store, opts ...Option) *State {
	s := &State{
		ctx:   ctx,
		req:   req,
		store: st,
		hooks: hook.NewRegistry[int64](),
		stack: NewStack(""),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.boot()
	return s
}

// boot wires the default owner handler and seeds the context stack from a
// /pg/<token> URI. The token is assigned verbatim, not pushed.
func (s *State) boot() {
	s.hooks.MustRegister(HookPageOwner, HookTypeSystem, defaultHandlerPriority, s.defaultOwnerHandler)

	if m := contextSeedRe.FindStringSubmatch(s.req.URI()); m != nil {
		s.stack.seed(m[1])
	}
}

// Stack returns the request's context stack.
func (s *State) Stack() *Stack {
	return s.stack
}

// Context returns the current top-of-stack context label.
func (s *State) Context() string {
	return s.stack.Get()
}

// OwnerGUID returns the guid of the entity owning the current page. The
// first call triggers the page_owner hook chain and memoizes the result;
// later calls return the memoized value, including an explicit 0.
func (s *State) OwnerGUID() int64 {
	if s.resolved {
		return s.ownerGUID
	}

	s.ownerGUID = s.hooks.Trigger(HookPageOwner, HookTypeSystem, 0, nil)
	s.resolved = true
	return s.ownerGUID
}

// SetOwnerGUID forces the memoized owner guid. The hook chain will not run
// for this request afterwards.
func (s *State) SetOwnerGUID(guid int64) {
	s.ownerGUID = guid
	s.resolved = true
}

// OwnerEntity returns the owning entity, or nil when no owner resolved or
// the entity no longer exists. A missing entity is not an error.
func (s *State) OwnerEntity() *model.Entity {
	guid := s.OwnerGUID()
	if guid <= 0 {
		return nil
	}
	return s.store.Entity(s.ctx, guid)
}

// defaultOwnerHandler resolves the owner from request signals. Rules run in
// order, first match wins; every lookup miss falls through. With no match the
// previous value is returned unchanged.
func (s *State) defaultOwnerHandler(prev int64, _ map[string]any) int64 {
	if username := s.req.Param("username"); username != "" {
		if m := groupUsernameRe.FindStringSubmatch(username); m != nil {
			if guid, err := strconv.ParseInt(m[1], 10, 64); err == nil {
				if e := s.store.Entity(s.ctx, guid); e != nil {
					return e.GUID
				}
			}
		}
		if u := s.store.UserByUsername(s.ctx, username); u != nil {
			return u.GUID
		}
	}

	if owner := s.req.Param("owner_guid"); owner != "" {
		if guid, err := strconv.ParseInt(owner, 10, 64); err == nil {
			if e := s.store.Entity(s.ctx, guid); e != nil {
				return e.GUID
			}
		}
	}

	if guid := s.ownerFromPath(); guid != 0 {
		return guid
	}

	return prev
}

// ownerFromPath applies the /pg/<handler>/<action>/<target> rules.
func (s *State) ownerFromPath() int64 {
	path := s.req.URI()
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 4 || segments[0] != "pg" {
		return 0
	}

	action, target := segments[2], segments[3]
	switch action {
	case "owner", "friends":
		if u := s.store.UserByUsername(s.ctx, target); u != nil {
			return u.GUID
		}
	case "view", "edit":
		if guid, err := strconv.ParseInt(target, 10, 64); err == nil {
			if e := s.store.Entity(s.ctx, guid); e != nil {
				return e.ContainerGUID
			}
		}
	case "add", "group":
		if guid, err := strconv.ParseInt(target, 10, 64); err == nil {
			if e := s.store.Entity(s.ctx, guid); e != nil {
				return e.GUID
			}
		}
	}
	return 0
}
