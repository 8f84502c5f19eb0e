package http

import (
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) error {
	message := models.MessageResponse{Message: h.services.AppInfoService.Welcome(r.Context())}

	_, err := utils.WriteJSON(w, message, http.StatusOK)
	return err
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) error {
	return errRouteNotFound
}
