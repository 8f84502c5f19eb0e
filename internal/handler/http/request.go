package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
	"github.com/go-chi/chi/v5"
)

// decodeJSON decodes the request body into dst. An empty body decodes as an
// empty object, so the entity validator reports the missing attributes.
// Anything but whitespace after the JSON value is rejected.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON value", errInvalidJSON)
	}
	return nil
}

// courseIDFromPath parses the {id} path parameter.
func courseIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidCourseID, raw)
	}
	return id, nil
}

// writeValidationError answers a *validators.ValidationError with 400 and
// the ordered list of messages. It reports false for any other error, which
// the caller then returns to the terminal error handler.
func writeValidationError(w http.ResponseWriter, r *http.Request, err error) bool {
	validationErr, ok := validators.AsValidationError(err)
	if !ok {
		return false
	}

	if _, writeErr := utils.WriteJSON(w, models.ValidationErrorResponse{Errors: validationErr.Messages}, http.StatusBadRequest); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing validation errors")
	}
	return true
}
