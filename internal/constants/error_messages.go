package constants

const (
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeAuthentication     = "AUTHENTICATION_FAILED"
	ErrCodeServiceRejected    = "SERVICE_REJECTED"
	ErrCodeProviderResponse   = "PROVIDER_BAD_RESPONSE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidRequestBody = "failed to parse request body"
	ErrMsgAuthentication     = "provider credentials are missing or invalid"
	ErrMsgServiceRejected    = "request rejected by the SMS service"
	ErrMsgProviderResponse   = "unexpected response from the SMS service"
	ErrMsgInternalError      = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
	ErrCodeAuthentication:     ErrMsgAuthentication,
	ErrCodeServiceRejected:    ErrMsgServiceRejected,
	ErrCodeProviderResponse:   ErrMsgProviderResponse,
	ErrCodeInternalError:      ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeAuthentication:
		return 401
	case ErrCodeServiceRejected, ErrCodeProviderResponse:
		return 502
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
