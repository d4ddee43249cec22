package apperrors

import (
	"errors"
	"net/http"
)

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound      = NewResourceNotFoundError("Student not found")
	ErrStudentNumberExists  = NewConflictError("A student with this student number already exists")
	ErrStudentHasReferences = NewConflictError("Student has attendance records or payables and cannot be deleted")
)

// Event errors
var (
	ErrEventNotFound = NewResourceNotFoundError("Event not found")
	ErrEventHasSlots = NewConflictError("Event has attendance slots and cannot be deleted")
)

// Attendance errors
var (
	ErrSlotNotFound        = NewResourceNotFoundError("Attendance slot not found")
	ErrDuplicateSlot       = NewConflictError("An attendance slot with the same trigger time and type already exists for this event")
	ErrSlotHasRecords      = NewConflictError("Attendance slot has attendance records and cannot be deleted")
	ErrRecordNotFound      = NewResourceNotFoundError("Attendance record not found")
	ErrDuplicateRecord     = NewConflictError("Student already has an attendance record for this slot")
	ErrFineAlreadyAssessed = NewConflictError("Fine for this event has already been assessed")
	ErrNothingToAssess     = NewBadRequestError("Student has no outstanding fine for this event")
)

// Payable errors
var (
	ErrPayableNotFound       = NewResourceNotFoundError("Payable not found")
	ErrReceiptExceedsBalance = NewBadRequestError("Receipt amount exceeds the remaining balance")
	ErrReceiptNumberExists   = NewConflictError("A receipt with this receipt number already exists")
	ErrInvalidAmount         = NewBadRequestError("Amount must be at least 0.01")
)

// Organization chart errors
var (
	ErrOrganizationNotFound = NewResourceNotFoundError("Organization not found")
	ErrChartNotPublished    = NewResourceNotFoundError("Organization chart is not published")
	ErrNodeNotFound         = NewResourceNotFoundError("Chart node not found")
	ErrEdgeNotFound         = NewResourceNotFoundError("Chart edge not found")
	ErrDuplicateEdge        = NewConflictError("An edge between these nodes already exists")
	ErrChartModified        = NewConflictError("Organization chart was modified concurrently, reload and try again")
)

// CustomError carries a client-facing message on top of a sentinel error.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError reports a schema violation; message names the field.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// StatusCode maps an error onto the HTTP status the API reports for it.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidationFailed), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err. Errors that map to 500
// never leak their text.
func Message(err error) string {
	if StatusCode(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}
