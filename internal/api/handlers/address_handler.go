package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aldisn/contactbook-be/internal/apperr"
	"github.com/aldisn/contactbook-be/internal/auth"
	"github.com/aldisn/contactbook-be/internal/services"
	"github.com/go-chi/chi/v5"
)

// AddressHandler handles HTTP requests for addresses nested under contacts.
type AddressHandler struct {
	service services.AddressServiceProvider
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(service services.AddressServiceProvider) *AddressHandler {
	return &AddressHandler{service: service}
}

// Create handles the request to add an address to an owned contact.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	var input services.AddressInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	address, err := h.service.CreateAddress(caller.ID, chi.URLParam(r, "contactId"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, address.Resource())
}

// Update handles partial updates of an address reached through its contact.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	var input services.AddressInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	address, err := h.service.UpdateAddress(caller.ID, chi.URLParam(r, "contactId"), chi.URLParam(r, "addressId"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, address.Resource())
}

// Delete handles the request to delete an address.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeError(w, apperr.ErrUnauthenticated)
		return
	}

	if err := h.service.DeleteAddress(caller.ID, chi.URLParam(r, "contactId"), chi.URLParam(r, "addressId")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
