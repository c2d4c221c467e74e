package httputil

// Machine-readable error codes for failures raised outside the use cases.
// Use-case failures carry their apperr kind as the code instead.
const (
	CodeInvalidRequest    = "invalid_request"
	CodeMissingAuth       = "missing_auth"
	CodeInvalidAuthHeader = "invalid_auth_header"
	CodeInvalidToken      = "invalid_token"
	CodeTokenExpired      = "token_expired"
	CodeRateLimited       = "rate_limited"
)
