package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campground/internal/domains/reservation/model"
	"campground/internal/domains/reservation/stay"
)

func TestReservation_Range_FloorsToCalendarDate(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	// Ledger rows decode as UTC midnights; rows touched in the application
	// timezone must still yield the same calendar-date range.
	utcRow := model.Reservation{
		CheckIn:  time.Date(2023, time.June, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2023, time.June, 13, 0, 0, 0, 0, time.UTC),
	}
	localRow := model.Reservation{
		CheckIn:  time.Date(2023, time.June, 10, 0, 0, 0, 0, jakarta),
		CheckOut: time.Date(2023, time.June, 13, 0, 0, 0, 0, jakarta),
	}

	assert.Equal(t, utcRow.Range(), localRow.Range())
	assert.Equal(t, 3, utcRow.Range().Nights())

	// Back-to-back with the stored stay regardless of which location the
	// request dates were parsed in.
	next, err := stay.NewRange(
		time.Date(2023, time.June, 13, 0, 0, 0, 0, jakarta),
		time.Date(2023, time.June, 15, 0, 0, 0, 0, jakarta))
	assert.NoError(t, err)
	assert.False(t, stay.Overlaps(next, utcRow.Range()))
}

func TestReservation_Cancelled(t *testing.T) {
	cancelledAt := time.Date(2023, time.June, 5, 9, 0, 0, 0, time.UTC)

	assert.False(t, model.Reservation{}.Cancelled())
	assert.True(t, model.Reservation{CancelledAt: &cancelledAt}.Cancelled())
}

func TestReservation_StateAt(t *testing.T) {
	reservation := model.Reservation{
		CheckIn:  time.Date(2023, time.June, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2023, time.June, 13, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, stay.StatePending, reservation.StateAt(time.Date(2023, time.June, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, stay.StateActive, reservation.StateAt(time.Date(2023, time.June, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, stay.StateCompleted, reservation.StateAt(time.Date(2023, time.June, 20, 0, 0, 0, 0, time.UTC)))
}
