package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skills    skillService
}

func newSkillHandler(skills skillService) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skills:    skills,
	}
}

// createSkillCategory creates a new skill category
func (h skillHandler) createSkillCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.SkillCategoryCreate
		if err := decodeBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.skills.Create(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// getAllSkillCategories retrieves all skill categories, newest first
func (h skillHandler) getAllSkillCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.skills.All(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill categories", err))
			return
		}

		h.responder.WriteJSON(w, categories)
	}
}

// getSkillCategory retrieves a specific skill category by ID
func (h skillHandler) getSkillCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := chi.URLParam(r, "categoryID")

		category, err := h.skills.Get(r.Context(), categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
			return
		}

		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill category not found"))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// updateSkillCategory applies a partial update to an existing skill category
func (h skillHandler) updateSkillCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := chi.URLParam(r, "categoryID")

		var patch models.SkillCategoryUpdate
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.skills.Update(r.Context(), categoryID, patch)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill category", err))
			return
		}

		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill category not found"))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// deleteSkillCategory deletes a skill category by ID
func (h skillHandler) deleteSkillCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := chi.URLParam(r, "categoryID")

		deleted, err := h.skills.Delete(r.Context(), categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill category", err))
			return
		}

		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill category not found"))
			return
		}

		h.responder.WriteMessage(w, "Skill category deleted successfully")
	}
}
