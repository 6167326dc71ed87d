package models

// ErrorResponse is the body returned for a single error, e.g. a missing record
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorsResponse is the body returned when a request payload is rejected
type ValidationErrorsResponse struct {
	Errors []string `json:"errors"`
}

// Fixed error messages returned by the API
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgPizzaNotFound      = "Pizza not found"
	MsgValidationErrors   = "validation errors"
	MsgInvalidRequestBody = "Invalid request body"
)

// NewErrorResponse creates a single error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorsResponse creates the generic validation failure body
func NewValidationErrorsResponse() ValidationErrorsResponse {
	return ValidationErrorsResponse{Errors: []string{MsgValidationErrors}}
}

// OAuth2 error codes (RFC 6749)
const (
	ErrInvalidRequest       = "invalid_request"
	ErrInvalidClient        = "invalid_client"
	ErrInvalidGrant         = "invalid_grant"
	ErrUnsupportedGrantType = "unsupported_grant_type"
	ErrInvalidToken         = "invalid_token"
)

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(error, description string) OAuth2Error {
	return OAuth2Error{
		Error:            error,
		ErrorDescription: description,
	}
}
