package models

// MessageResponse is the body of informational responses such as the
// welcome route.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope written by the terminal error
// handler and the auth middleware. Error is always an empty object: stack
// traces and internal details are never serialised.
type ErrorResponse struct {
	Message string   `json:"message"`
	Error   struct{} `json:"error"`
}

// NewErrorResponse builds an [ErrorResponse] carrying message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// ValidationErrorResponse is the 400 body produced when an entity fails
// validation. Errors keeps the order in which the rules were declared.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
