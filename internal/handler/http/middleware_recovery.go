package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-courses-api/internal/app"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

// withRecovery turns a panic in a downstream handler into the 500 error
// envelope. The stack goes to the log, never to the client.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := wrapResponseWriter(w)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			utils.WriteJSON(rw, models.NewErrorResponse(app.MsgInternalServerError), http.StatusInternalServerError)
		}()

		next.ServeHTTP(rw, r)
	})
}
