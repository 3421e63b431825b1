package dto

import "net/http"

// Domain error codes surfaced at the HTTP boundary. Insufficiency is a
// client error here: the request asked for more than the shop holds.
const (
	CodeNotFound               = "NOT_FOUND"
	CodeAlreadyExists          = "ALREADY_EXISTS"
	CodeInvalidInput           = "INVALID_INPUT"
	CodeInsufficientStock      = "INSUFFICIENT_STOCK"
	CodeInsufficientBatchStock = "INSUFFICIENT_BATCH_STOCK"
	CodeInvalidCredentials     = "INVALID_CREDENTIALS"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeTokenExpired           = "TOKEN_EXPIRED"
	CodeTokenInvalid           = "TOKEN_INVALID"
	CodeTokenRevoked           = "TOKEN_REVOKED"
	CodeInternal               = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall through to 400: unknown domain codes are
// validation failures raised by entity constructors.
var errorCodeHTTPStatus = map[string]int{
	CodeNotFound:               http.StatusNotFound,
	CodeAlreadyExists:          http.StatusConflict,
	CodeInvalidInput:           http.StatusBadRequest,
	CodeInsufficientStock:      http.StatusBadRequest,
	CodeInsufficientBatchStock: http.StatusBadRequest,
	"CONCURRENCY_CONFLICT":     http.StatusConflict,
	CodeInvalidCredentials:     http.StatusUnauthorized,
	CodeUnauthorized:           http.StatusUnauthorized,
	CodeTokenExpired:           http.StatusUnauthorized,
	CodeTokenInvalid:           http.StatusUnauthorized,
	CodeTokenRevoked:           http.StatusUnauthorized,
	CodeInternal:               http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
