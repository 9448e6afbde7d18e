package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site endpoints and the token-gated admin
// panel endpoints.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/catalog", handlers.catalogHandler.getCatalog())
		r.Get("/search", handlers.catalogHandler.search())
		r.Get("/marquee", handlers.marqueeHandler.getMarquee())

		r.Post("/admin/login", handlers.authHandler.login())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/admin/password", handlers.authHandler.changePassword())

		// Project endpoints
		r.Post("/admin/project", handlers.projectHandler.createProject())
		r.Put("/admin/project/{projectID}", handlers.projectHandler.updateProject())
		r.Put("/admin/project/{projectID}/tags", handlers.projectHandler.updateProjectTags())
		r.Delete("/admin/project/{projectID}", handlers.projectHandler.deleteProject())

		// Section endpoints
		r.Post("/admin/section/{sectionID}/movies", handlers.sectionHandler.addToSection())
		r.Delete("/admin/section/{sectionID}/movies/{projectID}", handlers.sectionHandler.removeFromSection())
		r.Put("/admin/section/{sectionID}/order", handlers.sectionHandler.reorderSection())
		r.Put("/admin/section/{sectionID}/title", handlers.sectionHandler.renameSection())

		// Category endpoints
		r.Post("/admin/categories", handlers.sectionHandler.createCategory())
		r.Put("/admin/categories/order", handlers.sectionHandler.reorderCategories())
		r.Delete("/admin/categories/{categoryID}", handlers.sectionHandler.deleteCategory())

		// Page content endpoints
		r.Put("/admin/pages", handlers.catalogHandler.updatePages())
		r.Put("/admin/badge", handlers.catalogHandler.updateBadge())
		r.Put("/admin/theme", handlers.catalogHandler.updateTheme())

		// Marquee endpoints
		r.Post("/admin/marquee", handlers.marqueeHandler.addMarquee())
		r.Delete("/admin/marquee/{itemID}", handlers.marqueeHandler.removeMarquee())

		// Media endpoints
		r.Post("/admin/media", handlers.mediaHandler.upload())
		r.Get("/admin/media", handlers.mediaHandler.list())
		r.Delete("/admin/media", handlers.mediaHandler.remove())
	})
}
