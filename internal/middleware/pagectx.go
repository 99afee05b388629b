package middleware

import (
	"github.com/villagehq/village/internal/page"
	"github.com/villagehq/village/internal/store"

	"github.com/gofiber/fiber/v2"
)

// pageStateKey is the locals key holding the request's *page.State.
const pageStateKey = "pageState"

// fiberRequest adapts a fiber context to page.Request. Param checks the
// query string first, then the form body.
type fiberRequest struct {
	c *fiber.Ctx
}

func (r fiberRequest) Param(name string) string {
	if v := r.c.Query(name); v != "" {
		return v
	}
	return r.c.FormValue(name)
}

func (r fiberRequest) URI() string {
	return r.c.OriginalURL()
}

// PageContext builds a fresh page.State for every request and stores it in
// the request locals. Must be registered before any handler that reads the
// page context or resolves the page owner.
func PageContext(st store.Store, opts ...page.Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := page.NewState(c.UserContext(), fiberRequest{c: c}, st, opts...)
		c.Locals(pageStateKey, state)
		return c.Next()
	}
}

// PageState returns the request's page state, or nil when PageContext did
// not run.
func PageState(c *fiber.Ctx) *page.State {
	state, _ := c.Locals(pageStateKey).(*page.State)
	return state
}
