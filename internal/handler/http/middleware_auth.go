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

// auth is an HTTP middleware that enforces Basic authentication.
//
// The identifier of the credential pair is the user's email address. On
// success the authenticated [models.User] is stored in the request context
// via [utils.WithCurrentUser] before delegating to the next handler.
//
// Every credential problem (absent or malformed header, empty identifier
// or secret, unknown email, wrong password) is answered with the same
// 401 {"message": "Access Denied"}; the reason is only logged. A failure of
// the user lookup itself is answered with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		email, password, ok := r.BasicAuth()
		if !ok {
			log.Warn().Msg("authentication failed: no Basic credentials")
			writeAuthFailure(w, r, http.StatusUnauthorized, app.MsgAccessDenied)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), email, password)
		switch {
		case errors.Is(err, service.ErrAccessDenied):
			writeAuthFailure(w, r, http.StatusUnauthorized, app.MsgAccessDenied)
			return
		case err != nil:
			log.Err(err).Msg("error occurred during authentication")
			writeAuthFailure(w, r, http.StatusInternalServerError, app.MsgInternalServerError)
			return
		}

		log.Debug().Int64("user_id", user.UserID).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(r.Context(), user)))
	})
}

func writeAuthFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing auth failure response")
	}
}

// currentUser returns the user stored by auth.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		return models.User{}, errNoCurrentUser
	}
	return user, nil
}
