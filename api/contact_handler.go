package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	contacts  contactService
	notifier  contactNotifier
}

func newContactHandler(contacts contactService, notifier contactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		contacts:  contacts,
		notifier:  notifier,
	}
}

// createContact stores an inbound contact-form submission
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ContactCreate
		if err := decodeBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, err := h.contacts.Create(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		// A failed notification never fails the submission
		if h.notifier.Enabled() {
			go func(c models.Contact) {
				if err := h.notifier.Notify(c); err != nil {
					h.logger.Error().Err(err).Str("contactID", c.ID).Msg("Failed to send contact notification")
				}
			}(contact)
		}

		h.responder.WriteJSON(w, contact)
	}
}

// getAllContacts retrieves all contact submissions, newest first
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contacts.All(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}

		h.responder.WriteJSON(w, contacts)
	}
}

// getUnreadContacts retrieves the submissions not yet marked as read
func (h contactHandler) getUnreadContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contacts.Unread(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "unread contacts", err))
			return
		}

		h.responder.WriteJSON(w, contacts)
	}
}

// getContact retrieves a specific contact submission by ID
func (h contactHandler) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID := chi.URLParam(r, "contactID")

		contact, err := h.contacts.Get(r.Context(), contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}

		if contact == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Contact not found"))
			return
		}

		h.responder.WriteJSON(w, contact)
	}
}

// markContactAsRead flips a submission's read flag to true
func (h contactHandler) markContactAsRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID := chi.URLParam(r, "contactID")

		marked, err := h.contacts.MarkAsRead(r.Context(), contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact", err))
			return
		}

		if !marked {
			h.responder.WriteError(w, errs.NewNotFoundError("Contact not found"))
			return
		}

		h.responder.WriteMessage(w, "Contact marked as read")
	}
}

// deleteContact deletes a contact submission by ID
func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID := chi.URLParam(r, "contactID")

		deleted, err := h.contacts.Delete(r.Context(), contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact", err))
			return
		}

		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Contact not found"))
			return
		}

		h.responder.WriteMessage(w, "Contact deleted successfully")
	}
}
