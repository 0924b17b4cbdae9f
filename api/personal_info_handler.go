package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type personalInfoHandler struct {
	responder    Responder
	logger       zerolog.Logger
	personalInfo personalInfoService
}

func newPersonalInfoHandler(personalInfo personalInfoService) personalInfoHandler {
	logger := log.With().Str("handlerName", "personalInfoHandler").Logger()

	return personalInfoHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		personalInfo: personalInfo,
	}
}

// createOrUpdatePersonalInfo fully replaces the profile, creating it when absent
func (h personalInfoHandler) createOrUpdatePersonalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.PersonalInfoCreate
		if err := decodeBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		info, err := h.personalInfo.CreateOrUpdate(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "personal info", err))
			return
		}

		h.responder.WriteJSON(w, info)
	}
}

// getPersonalInfo returns the stored profile. An empty store is not an error:
// a default profile is synthesized and returned without being persisted.
func (h personalInfoHandler) getPersonalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := h.personalInfo.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "personal info", err))
			return
		}

		if info == nil {
			h.responder.WriteJSON(w, models.DefaultPersonalInfo())
			return
		}

		h.responder.WriteJSON(w, info)
	}
}

// updatePersonalInfo applies a partial update to the stored profile
func (h personalInfoHandler) updatePersonalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.PersonalInfoUpdate
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		info, err := h.personalInfo.Update(r.Context(), patch)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "personal info", err))
			return
		}

		if info == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Personal info not found"))
			return
		}

		h.responder.WriteJSON(w, info)
	}
}
