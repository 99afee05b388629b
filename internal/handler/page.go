package handler

import (
	"github.com/villagehq/village/internal/middleware"
	"github.com/villagehq/village/internal/response"
	"github.com/villagehq/village/internal/types"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the /pg page surface.
type PageHandler struct{}

// NewPageHandler creates a page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Show resolves the owner and context for a /pg/<handler>/... page and
// returns them. Rendering proper lives with the individual page handlers;
// this endpoint exposes what they would render against.
func (h *PageHandler) Show(c *fiber.Ctx) error {
	state := middleware.PageState(c)
	if state == nil {
		return response.ServerError(c, "page state not initialized")
	}

	info := types.PageInfo{
		Handler:   c.Params("handler"),
		Context:   state.Context(),
		OwnerGUID: state.OwnerGUID(),
		Owner:     types.ToEntityInfo(state.OwnerEntity()),
	}
	return response.Success(c, info)
}
