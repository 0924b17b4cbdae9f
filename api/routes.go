package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the /api endpoint surface to the entity handlers.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.health())

		// Project endpoints
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/featured", handlers.projectHandler.getFeaturedProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		// Personal info endpoints
		r.Post("/personal-info", handlers.personalInfoHandler.createOrUpdatePersonalInfo())
		r.Get("/personal-info", handlers.personalInfoHandler.getPersonalInfo())
		r.Put("/personal-info", handlers.personalInfoHandler.updatePersonalInfo())

		// Contact endpoints
		r.Post("/contacts", handlers.contactHandler.createContact())
		r.Get("/contacts", handlers.contactHandler.getAllContacts())
		r.Get("/contacts/unread", handlers.contactHandler.getUnreadContacts())
		r.Get("/contacts/{contactID}", handlers.contactHandler.getContact())
		r.Put("/contacts/{contactID}/read", handlers.contactHandler.markContactAsRead())
		r.Delete("/contacts/{contactID}", handlers.contactHandler.deleteContact())

		// Skill endpoints
		r.Post("/skills", handlers.skillHandler.createSkillCategory())
		r.Get("/skills", handlers.skillHandler.getAllSkillCategories())
		r.Get("/skills/{categoryID}", handlers.skillHandler.getSkillCategory())
		r.Put("/skills/{categoryID}", handlers.skillHandler.updateSkillCategory())
		r.Delete("/skills/{categoryID}", handlers.skillHandler.deleteSkillCategory())
	})
}
