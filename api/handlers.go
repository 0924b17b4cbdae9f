package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rpupo63/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db *mongo.Database, cfg map[string]string) *routeHandlers {
	return &routeHandlers{
		projectHandler:      newProjectHandler(services.NewProjectService(db)),
		personalInfoHandler: newPersonalInfoHandler(services.NewPersonalInfoService(db)),
		contactHandler:      newContactHandler(services.NewContactService(db), services.NewContactNotifier(cfg)),
		skillHandler:        newSkillHandler(services.NewSkillService(db)),
	}
}

// health reports that the API is up.
func (h *routeHandlers) health() http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "health").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteMessage(w, "Portfolio API is running!")
	}
}
