package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/app"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

// errorStatus is the response an error is answered with.
type errorStatus struct {
	code    int
	message string
}

var internalServerError = errorStatus{http.StatusInternalServerError, app.MsgInternalServerError}

var errorStatusMap = map[error]errorStatus{
	service.ErrAccessDenied:    {http.StatusUnauthorized, app.MsgAccessDenied},
	service.ErrAccessForbidden: {http.StatusForbidden, app.MsgAccessForbidden},
	service.ErrCourseNotFound:  {http.StatusNotFound, app.MsgCourseNotFound},

	errInvalidCourseID: {http.StatusNotFound, app.MsgCourseNotFound},
	errInvalidJSON:     {http.StatusBadRequest, app.MsgInvalidJSON},
	errRouteNotFound:   {http.StatusNotFound, app.MsgRouteNotFound},
}

func statusFromError(err error) errorStatus {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return internalServerError
}

// handlerFunc is an http.HandlerFunc that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc. It is the terminal error handler:
// any error fn returns is written as the {message, error} envelope with the
// status from errorStatusMap, or 500 when the error is unknown.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status.code >= http.StatusInternalServerError {
		log.Err(err).Str("func", "Handler.writeError").Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status.code).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.NewErrorResponse(status.message), status.code); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
