package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodesMatchSentinels(t *testing.T) {
	cases := map[ErrorCode]*Error{
		CodeRoomNotFound:                  ErrRoomNotFound,
		CodeGuestNotFound:                 ErrGuestNotFound,
		CodeBookingNotFound:               ErrBookingNotFound,
		CodeRoomInMaintenance:             ErrRoomInMaintenance,
		CodeRoomNotAvailable:              ErrRoomNotAvailable,
		CodeInvalidDateRange:              ErrInvalidDateRange,
		CodeMissingRequiredInformation:    ErrMissingRequiredInformation,
		CodeInvalidEmail:                  ErrInvalidEmail,
		CodeInvalidPersonID:               ErrInvalidPersonID,
		CodeMissingRoomName:               ErrMissingRoomName,
		CodeMissingRoomLevel:              ErrMissingRoomLevel,
		CodeInvalidPrice:                  ErrInvalidPrice,
		CodeCannotDeleteRoomWithBookings:  ErrCannotDeleteRoomWithBookings,
		CodeCannotDeleteGuestWithBookings: ErrCannotDeleteGuestWithBookings,
	}

	for code, sentinel := range cases {
		assert.Equal(t, code, sentinel.Code)
		assert.NotEmpty(t, sentinel.Message)
	}
}

func TestErrorIs_MatchesByCode(t *testing.T) {
	err := &Error{Code: CodeRoomNotFound, Message: "room 42 not found"}

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.NotErrorIs(t, err, ErrGuestNotFound)

	// Wrapping preserves the match.
	wrapped := fmt.Errorf("create booking: %w", err)
	assert.ErrorIs(t, wrapped, ErrRoomNotFound)
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection reset")
	err := StorageError(cause)

	assert.Equal(t, CodeStorageFailure, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")

	var de *Error
	assert.ErrorAs(t, error(err), &de)
}
