package domain

// ErrorCode identifies a domain failure. The set is closed: handlers map
// codes to HTTP statuses and clients switch on them, so new failures get a
// new code here rather than free-form messages.
type ErrorCode string

const (
	CodeRoomNotFound                  ErrorCode = "ROOM_NOT_FOUND"
	CodeGuestNotFound                 ErrorCode = "GUEST_NOT_FOUND"
	CodeBookingNotFound               ErrorCode = "BOOKING_NOT_FOUND"
	CodeRoomInMaintenance             ErrorCode = "ROOM_IN_MAINTENANCE"
	CodeRoomNotAvailable              ErrorCode = "ROOM_NOT_AVAILABLE"
	CodeInvalidDateRange              ErrorCode = "INVALID_DATE_RANGE"
	CodeMissingRequiredInformation    ErrorCode = "MISSING_REQUIRED_INFORMATION"
	CodeInvalidEmail                  ErrorCode = "INVALID_EMAIL"
	CodeInvalidPersonID               ErrorCode = "INVALID_PERSON_ID"
	CodeMissingRoomName               ErrorCode = "MISSING_ROOM_NAME"
	CodeMissingRoomLevel              ErrorCode = "MISSING_ROOM_LEVEL"
	CodeInvalidPrice                  ErrorCode = "INVALID_PRICE"
	CodeCannotDeleteRoomWithBookings  ErrorCode = "CANNOT_DELETE_ROOM_WITH_BOOKINGS"
	CodeCannotDeleteGuestWithBookings ErrorCode = "CANNOT_DELETE_GUEST_WITH_BOOKINGS"
	CodeStorageFailure                ErrorCode = "STORAGE_FAILURE"
)

// Error is the only error type services return. Two errors with the same
// code match under errors.Is, so callers compare against the sentinels
// below instead of inspecting messages.
type Error struct {
	Code    ErrorCode
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrRoomNotFound                  = &Error{Code: CodeRoomNotFound, Message: "room not found"}
	ErrGuestNotFound                 = &Error{Code: CodeGuestNotFound, Message: "guest not found"}
	ErrBookingNotFound               = &Error{Code: CodeBookingNotFound, Message: "booking not found"}
	ErrRoomInMaintenance             = &Error{Code: CodeRoomInMaintenance, Message: "room is in maintenance"}
	ErrRoomNotAvailable              = &Error{Code: CodeRoomNotAvailable, Message: "room is not available for the requested period"}
	ErrInvalidDateRange              = &Error{Code: CodeInvalidDateRange, Message: "start date must be before end date and not in the past"}
	ErrMissingRequiredInformation    = &Error{Code: CodeMissingRequiredInformation, Message: "name, surname and email are required"}
	ErrInvalidEmail                  = &Error{Code: CodeInvalidEmail, Message: "email address is not valid"}
	ErrInvalidPersonID               = &Error{Code: CodeInvalidPersonID, Message: "document number is not valid"}
	ErrMissingRoomName               = &Error{Code: CodeMissingRoomName, Message: "room name is required"}
	ErrMissingRoomLevel              = &Error{Code: CodeMissingRoomLevel, Message: "room level must be positive"}
	ErrInvalidPrice                  = &Error{Code: CodeInvalidPrice, Message: "room price must be positive"}
	ErrCannotDeleteRoomWithBookings  = &Error{Code: CodeCannotDeleteRoomWithBookings, Message: "room has bookings and cannot be deleted"}
	ErrCannotDeleteGuestWithBookings = &Error{Code: CodeCannotDeleteGuestWithBookings, Message: "guest has bookings and cannot be deleted"}
)

// StorageError wraps an unexpected persistence failure so it surfaces as a
// domain error without losing the underlying cause.
func StorageError(err error) *Error {
	return &Error{Code: CodeStorageFailure, Message: "storage operation failed", cause: err}
}
