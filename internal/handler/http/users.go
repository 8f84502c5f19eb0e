package http

import (
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, users, http.StatusOK)
	return err
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	var request models.UserRequest
	if err := decodeJSON(r, &request); err != nil {
		return err
	}

	user, err := h.services.UserService.RegisterUser(r.Context(), request)
	if writeValidationError(w, r, err) {
		return nil
	}
	if err != nil {
		return err
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.UserID).Msg("user created")
	utils.WriteCreated(w, "/")
	return nil
}
