package response

import "fmt"

// Error codes
const (
	ErrCodeMalformedID       = "MALFORMED_ID"
	ErrCodeMissingFields     = "MISSING_FIELDS"
	ErrCodeMissingIncrement  = "MISSING_INCREMENT"
	ErrCodeInvalidIncrement  = "INVALID_INCREMENT"
	ErrCodeVotesOutOfRange   = "VOTES_OUT_OF_RANGE"
	ErrCodeInvalidSortColumn = "INVALID_SORT_COLUMN"
	ErrCodeInvalidOrder      = "INVALID_ORDER"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeRouteNotFound     = "ROUTE_NOT_FOUND"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

const (
	MsgMalformedID      = "Bad request"
	MsgMissingFields    = "Bad request: missing required fields"
	MsgMissingIncrement = "Bad request: inc_votes is required"
	MsgInvalidIncrement = "Bad request: inc_votes must be a number"
	MsgVotesOutOfRange  = "Bad request: inc_votes takes votes out of range"
	MsgRouteNotFound    = "Route not found"
	MsgInternal         = "Internal server error"
)

// AppError is the error type returned by the service layer.
// Code selects the HTTP status, Message is sent to the client and
// Details stays in the logs.
type AppError struct {
	Code    string
	Message string
	Details string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

func NewMalformedIDError(raw string) *AppError {
	return NewAppError(ErrCodeMalformedID, MsgMalformedID, fmt.Sprintf("invalid id %q", raw))
}

func NewMissingFieldsError(details string) *AppError {
	return NewAppError(ErrCodeMissingFields, MsgMissingFields, details)
}

func NewMissingIncrementError() *AppError {
	return NewAppError(ErrCodeMissingIncrement, MsgMissingIncrement, "")
}

func NewInvalidIncrementError(details string) *AppError {
	return NewAppError(ErrCodeInvalidIncrement, MsgInvalidIncrement, details)
}

func NewVotesOutOfRangeError(delta int64) *AppError {
	return NewAppError(ErrCodeVotesOutOfRange, MsgVotesOutOfRange, fmt.Sprintf("inc_votes %d", delta))
}

func NewInvalidSortColumnError(column string) *AppError {
	return NewAppError(ErrCodeInvalidSortColumn, fmt.Sprintf("Invalid sort_by column: %s", column), "")
}

func NewInvalidOrderError(order string) *AppError {
	return NewAppError(ErrCodeInvalidOrder, fmt.Sprintf("Invalid order: %s", order), "")
}

// NewNotFoundError builds the not-found error for an entity kind and the key the client sent
func NewNotFoundError(kind, field, key string) *AppError {
	return NewAppError(ErrCodeNotFound, fmt.Sprintf("%s not found for %s: %s", kind, field, key), "")
}

func NewInternalError(details string) *AppError {
	return NewAppError(ErrCodeInternal, MsgInternal, details)
}
