package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// responseBody covers both error shapes of the API: {message, error} and
// {errors: [...]}.
type responseBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	responseErr := &ResponseError{StatusCode: resp.StatusCode()}

	var body responseBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		responseErr.Message = body.Message
		responseErr.Errors = body.Errors
	} else {
		responseErr.Message = strings.TrimSpace(string(resp.Body()))
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		responseErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		responseErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		responseErr.kind = ErrForbidden
	case http.StatusNotFound:
		responseErr.kind = ErrNotFound
	case http.StatusInternalServerError:
		responseErr.kind = ErrInternalServerError
	default:
		if responseErr.Message == "" {
			responseErr.Message = http.StatusText(resp.StatusCode())
		}
	}

	return responseErr
}
