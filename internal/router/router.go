package router

import (
	"github.com/villagehq/village/internal/handler"
	"github.com/villagehq/village/internal/middleware"
	"github.com/villagehq/village/internal/page"
	"github.com/villagehq/village/internal/svc"

	"github.com/gofiber/fiber/v2"
)

// Setup wires the middleware chain and routes.
func Setup(app *fiber.App, ctx *svc.ServiceContext) {
	app.Use(
		middleware.CORS(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recover(),
		middleware.PageContext(ctx.Store, page.WithDefaultContext(ctx.Config.Page.DefaultContext)),
	)

	pages := handler.NewPageHandler()
	entities := handler.NewEntityHandler(ctx.Store)

	// Page surface: /pg/<handler>/<action>/<target>
	app.Get("/pg/:handler", pages.Show)
	app.Get("/pg/:handler/*", pages.Show)

	api := app.Group("/api")
	api.Get("/entities/:guid", entities.Get)
	api.Get("/users/:username", entities.GetUser)
}
