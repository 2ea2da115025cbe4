package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomValidate_Ordering(t *testing.T) {
	r := Room{Name: "", Level: 0, Price: Price{Amount: 0}}
	assert.ErrorIs(t, r.Validate(), ErrMissingRoomName)

	r.Name = "101"
	assert.ErrorIs(t, r.Validate(), ErrMissingRoomLevel)

	r.Level = 1
	assert.ErrorIs(t, r.Validate(), ErrInvalidPrice)

	r.Price = Price{Amount: 100, Currency: "USD"}
	assert.NoError(t, r.Validate())
}
