package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Kind    string     `json:"kind,omitempty"`
	Rows    []RowError `json:"rows,omitempty"`
}

// RowError points a validation message at a spreadsheet row. Row numbers are
// 1-based plus the header row, matching what the user sees in Excel.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Error kinds for the import pipeline. Extraction, mapping and validation
// failures are actionable by fixing the source file; reconciliation and
// transport failures are fatal for the attempt.
const (
	KindExtraction     = "extraction_failure"
	KindMapping        = "mapping_incomplete"
	KindValidation     = "validation_failure"
	KindReconciliation = "reconciliation_failure"
	KindTransport      = "transport_failure"
)

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrUnprocessable  = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewExtractionError reports a file that could not be parsed into rows.
func NewExtractionError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindExtraction,
		Message: message,
	}
}

// NewMappingError reports mandatory logical fields with no matching column.
func NewMappingError(missingFields []string) *AppError {
	rows := make([]RowError, 0, len(missingFields))
	for _, f := range missingFields {
		rows = append(rows, RowError{Row: 0, Message: "Missing required column: " + f})
	}
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindMapping,
		Message: "Required columns are missing from the uploaded file",
		Rows:    rows,
	}
}

// NewRowValidationError carries every row violation found in a batch.
// An import that returns one of these has written nothing.
func NewRowValidationError(rows []RowError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindValidation,
		Message: "Validation failed; no records were imported",
		Rows:    rows,
	}
}

// NewReconciliationError reports a failed post-write integrity check.
// This is fatal and non-retryable; the diagnostic carries per-table
// counts and totals.
func NewReconciliationError(diagnostic string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindReconciliation,
		Message: diagnostic,
	}
}

// NewTransportError wraps a failed persistence call, kept distinct from
// validation errors so callers never confuse the two.
func NewTransportError(err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindTransport,
		Message: "Persistence call failed: " + err.Error(),
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
