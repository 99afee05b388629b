package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/villagehq/village/internal/middleware"
	"github.com/villagehq/village/internal/model"
	"github.com/villagehq/village/internal/response"
	"github.com/villagehq/village/internal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	entities map[int64]*model.Entity
	users    map[string]*model.User
}

func (s *stubStore) Entity(_ context.Context, guid int64) *model.Entity {
	return s.entities[guid]
}

func (s *stubStore) UserByUsername(_ context.Context, username string) *model.User {
	return s.users[username]
}

func newTestApp() *fiber.App {
	st := &stubStore{
		entities: map[int64]*model.Entity{
			301: {GUID: 301, Type: model.TypeUser},
			42:  {GUID: 42, Type: model.TypeObject, Subtype: "blog", ContainerGUID: 301},
		},
		users: map[string]*model.User{
			"alice": {GUID: 301, Username: "alice"},
		},
	}

	app := fiber.New()
	app.Use(middleware.PageContext(st))

	pages := NewPageHandler()
	entities := NewEntityHandler(st)
	app.Get("/pg/:handler", pages.Show)
	app.Get("/pg/:handler/*", pages.Show)
	api := app.Group("/api")
	api.Get("/entities/:guid", entities.Get)
	api.Get("/users/:username", entities.GetUser)

	return app
}

func decodePage(t *testing.T, body io.Reader) types.PageInfo {
	t.Helper()
	var envelope struct {
		Code int            `json:"code"`
		Data types.PageInfo `json:"data"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	require.Equal(t, response.CodeSuccess, envelope.Code)
	return envelope.Data
}

func TestPageHandler_Show(t *testing.T) {
	app := newTestApp()

	t.Run("blog view page reports the container owner", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/pg/blog/view/42", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		info := decodePage(t, resp.Body)
		assert.Equal(t, "blog", info.Handler)
		assert.Equal(t, "blog", info.Context)
		assert.Equal(t, int64(301), info.OwnerGUID)
		require.NotNil(t, info.Owner)
		assert.Equal(t, int64(301), info.Owner.GUID)
	})

	t.Run("owner page resolves the named user", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/pg/photos/owner/alice", nil))
		require.NoError(t, err)

		info := decodePage(t, resp.Body)
		assert.Equal(t, "photos", info.Context)
		assert.Equal(t, int64(301), info.OwnerGUID)
	})

	t.Run("unresolvable page has no owner", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/pg/dashboard", nil))
		require.NoError(t, err)

		info := decodePage(t, resp.Body)
		assert.Equal(t, "dashboard", info.Context)
		assert.Equal(t, int64(0), info.OwnerGUID)
		assert.Nil(t, info.Owner)
	})
}

func TestEntityHandler(t *testing.T) {
	app := newTestApp()

	t.Run("entity lookup", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/entities/42", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("entity miss is 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/entities/9999", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid guid is an error envelope", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/entities/abc", nil))
		require.NoError(t, err)

		var envelope response.Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, response.CodeError, envelope.Code)
	})

	t.Run("user lookup", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/users/alice", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("user miss is 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/users/nobody", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
