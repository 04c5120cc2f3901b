package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aldisn/contactbook-be/internal/apperr"
	"github.com/aldisn/contactbook-be/internal/auth"
	"github.com/aldisn/contactbook-be/internal/models"
	"github.com/aldisn/contactbook-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ContactHandler handles HTTP requests related to contacts.
type ContactHandler struct {
	service services.ContactServiceProvider
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service services.ContactServiceProvider) *ContactHandler {
	return &ContactHandler{service: service}
}

// GetAll handles the request to list the caller's contacts.
func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	contacts, err := h.service.GetAllContacts(caller.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", caller.ID).Msg("Failed to list contacts")
		writeError(w, err)
		return
	}

	resources := make([]models.ContactResource, 0, len(contacts))
	for _, c := range contacts {
		resources = append(resources, c.Resource())
	}
	writeJSON(w, http.StatusOK, resources)
}

// Create handles the request to create a new contact.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	var input services.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	contact, err := h.service.CreateContact(caller.ID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, contact.Resource())
}

// Get handles the request to get a single contact with its addresses.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	contact, err := h.service.GetContactByID(caller.ID, chi.URLParam(r, "contactId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contact.Resource())
}

// Update handles partial updates of an owned contact.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	var input services.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	contact, err := h.service.UpdateContact(caller.ID, chi.URLParam(r, "contactId"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contact.Resource())
}

// Delete handles the request to delete a contact and its addresses.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	if err := h.service.DeleteContact(caller.ID, chi.URLParam(r, "contactId")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
