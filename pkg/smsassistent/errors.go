package smsassistent

import (
	"errors"
	"fmt"
)

// ErrAuthentication is the base error for every credential precondition
// failure. Concrete causes wrap it, so errors.Is(err, ErrAuthentication)
// matches both.
var ErrAuthentication = errors.New("AUTHENTICATION_FAILED")

var (
	ErrMissingUsername    = fmt.Errorf("%w: username is required", ErrAuthentication)
	ErrMissingCredentials = fmt.Errorf("%w: token or password is required", ErrAuthentication)
)

// ErrTransportRequired is returned by NewClient when no HTTP transport is
// supplied.
var ErrTransportRequired = errors.New("TRANSPORT_REQUIRED")

// ServiceError carries a negative response code from the plain-text
// endpoints together with its catalogued description.
type ServiceError struct {
	Code        int64
	Description string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("sms-assistent: %s (code %d)", e.Description, e.Code)
}

// ParseError is returned when a plain-text endpoint responds with a body
// that is not a number. The raw body is kept for diagnostics.
type ParseError struct {
	Body  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sms-assistent: unparsable response %q", e.Body)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

const descriptionUnknown = "unknown service error"

var codeDescriptions = map[int64]string{
	-1:  "invalid recipient number",
	-2:  "message text is missing or invalid",
	-3:  "invalid sender name",
	-4:  "insufficient credits",
	-5:  "wrong username or password",
	-6:  "sender address is not registered",
	-7:  "invalid scheduled send date",
	-8:  "sending to this network is not allowed",
	-9:  "message rejected by the service",
	-10: "account is blocked",
	-11: "duplicate message rejected",
	-12: "service temporarily unavailable",
}

// MapServiceError translates a negative service code into a typed error.
// Codes outside the catalogue keep their value with a generic description.
func MapServiceError(code int64) *ServiceError {
	if description, exists := codeDescriptions[code]; exists {
		return &ServiceError{Code: code, Description: description}
	}

	return &ServiceError{Code: code, Description: descriptionUnknown}
}
