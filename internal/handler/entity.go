package handler

import (
	"strconv"

	"github.com/villagehq/village/internal/response"
	"github.com/villagehq/village/internal/store"
	"github.com/villagehq/village/internal/types"
	"github.com/villagehq/village/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// EntityHandler serves entity and user lookups.
type EntityHandler struct {
	store store.Store
}

// NewEntityHandler creates an entity handler over st.
func NewEntityHandler(st store.Store) *EntityHandler {
	return &EntityHandler{store: st}
}

// Get returns the entity with the guid from the path.
func (h *EntityHandler) Get(c *fiber.Ctx) error {
	guid, err := strconv.ParseInt(c.Params("guid"), 10, 64)
	if err != nil {
		return response.Error(c, "invalid guid")
	}

	e := h.store.Entity(c.UserContext(), guid)
	if e == nil {
		return response.NotFound(c, "")
	}
	return response.Success(c, types.ToEntityInfo(e))
}

// GetUser returns the user with the username from the path.
func (h *EntityHandler) GetUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if utils.IsBlank(username) {
		return response.Error(c, "invalid username")
	}

	u := h.store.UserByUsername(c.UserContext(), username)
	if u == nil {
		return response.NotFound(c, "")
	}
	return response.Success(c, types.ToUserInfo(u))
}
