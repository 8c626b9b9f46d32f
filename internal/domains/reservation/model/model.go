package model

import (
	"campground/internal/domains/reservation/stay"
	"campground/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID          = "id"
	FieldCampsiteID  = "campsite_id"
	FieldGuestID     = "guest_id"
	FieldCheckIn     = "check_in"
	FieldCheckOut    = "check_out"
	FieldCancelledAt = "cancelled_at"
	FieldCancelledBy = "cancelled_by"
)

// Reservation occupies one campsite over the half-open [check_in, check_out)
// date interval. Cancellation is the only stored lifecycle fact; pending,
// active and completed are derived from the dates at read time.
type Reservation struct {
	ID          string     `db:"id"`
	CampsiteID  string     `db:"campsite_id"`
	GuestID     string     `db:"guest_id"`
	CheckIn     time.Time  `db:"check_in"`
	CheckOut    time.Time  `db:"check_out"`
	CancelledAt *time.Time `db:"cancelled_at"`
	CancelledBy *string    `db:"cancelled_by"`

	CampsiteName    string `db:"campsite_name"     table:"campsites" column:"name"`
	NightlyFeeCents int64  `db:"nightly_fee_cents" table:"campsite_categories"`

	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "JOIN campsites ON campsites.id = " + TableName + ".campsite_id" +
		" JOIN campsite_categories ON campsite_categories.id = campsites.category_id"
}

func (r Reservation) Cancelled() bool {
	return r.CancelledAt != nil
}

func (r Reservation) Range() stay.Range {
	return stay.Range{CheckIn: stay.Date(r.CheckIn), CheckOut: stay.Date(r.CheckOut)}
}

// StateAt derives the lifecycle state of this reservation at the given moment.
func (r Reservation) StateAt(asOf time.Time) stay.State {
	return stay.StateOf(r.Range(), r.Cancelled(), asOf)
}
