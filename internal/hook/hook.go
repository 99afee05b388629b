// Package hook provides a named-hook registry with priority-ordered handler
// chains. Handlers thread a value through the chain; the first handler that
// returns a non-zero value short-circuits the chain.
package hook

import (
	"fmt"
	"sort"
	"sync"
)

// Handler transforms the value threaded through a hook chain. A handler
// receives the previous value and the trigger params and returns either a new
// value (which ends the chain) or the zero value to pass.
type Handler[T comparable] func(prev T, params map[string]any) T

type key struct {
	name string
	typ  string
}

type entry[T comparable] struct {
	priority int
	seq      int
	fn       Handler[T]
}

// Registry manages handler registration and triggering for named hooks.
// A hook is addressed by a (name, type) pair.
type Registry[T comparable] struct {
	mu       sync.RWMutex
	handlers map[key][]entry[T]
	seq      int
}

// NewRegistry creates an empty hook registry.
func NewRegistry[T comparable]() *Registry[T] {
	return &Registry[T]{
		handlers: make(map[key][]entry[T]),
	}
}

// Register adds a handler for the given hook. Lower priority runs earlier;
// ties run in registration order.
func (r *Registry[T]) Register(name, typ string, priority int, fn Handler[T]) error {
	if fn == nil {
		return fmt.Errorf("cannot register nil handler for hook %s/%s", name, typ)
	}
	if name == "" {
		return fmt.Errorf("hook name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{name: name, typ: typ}
	r.seq++
	r.handlers[k] = append(r.handlers[k], entry[T]{priority: priority, seq: r.seq, fn: fn})
	return nil
}

// MustRegister registers a handler and panics on error.
func (r *Registry[T]) MustRegister(name, typ string, priority int, fn Handler[T]) {
	if err := r.Register(name, typ, priority, fn); err != nil {
		panic(err)
	}
}

// Count returns the number of handlers registered for the hook.
func (r *Registry[T]) Count(name, typ string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[key{name: name, typ: typ}])
}

// Trigger runs the hook's handlers in priority order, threading value through
// the chain. The first non-zero result wins and is returned immediately; a
// zero result leaves the threaded value unchanged. With no handlers (or all
// returning zero) the initial value comes back unchanged.
func (r *Registry[T]) Trigger(name, typ string, initial T, params map[string]any) T {
	r.mu.RLock()
	entries := make([]entry[T], len(r.handlers[key{name: name, typ: typ}]))
	copy(entries, r.handlers[key{name: name, typ: typ}])
	r.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority < entries[j].priority
		}
		return entries[i].seq < entries[j].seq
	})

	var zero T
	value := initial
	for _, e := range entries {
		if out := e.fn(value, params); out != zero {
			return out
		}
	}
	return value
}
