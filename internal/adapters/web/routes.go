package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the application routes. Routes that reach the
// upstream API go through limited.
func SetupRoutes(app *fiber.App, handlers *Handlers, limited fiber.Handler) {
	// Home page
	app.Get("/", handlers.Home)

	// HTMX endpoint for converting posts from form input
	app.Post("/fetch", limited, handlers.FetchPost)

	// Post view - mirrors the platform's URL structure
	// Example: /acgfbr/status/2006396789411172607
	app.Get("/:username/status/:id", limited, handlers.ViewPost)

	// Raw markdown
	app.Get("/api/markdown/:username/:id", limited, handlers.APIMarkdown)
	app.Post("/api/convert", handlers.APIConvert)
}
