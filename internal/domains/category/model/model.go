package model

import "campground/shared/model"

const (
	TableName  = "campsite_categories"
	EntityName = "category"

	FieldID              = "id"
	FieldName            = "name"
	FieldMaxStayNights   = "max_stay_nights"
	FieldNightlyFeeCents = "nightly_fee_cents"
)

// Category is the policy group for its campsites: how long a stay may run
// and what a night costs. Policy changes are forward-looking only; already
// admitted reservations keep the terms they were booked under.
type Category struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	MaxStayNights   int    `db:"max_stay_nights"`
	NightlyFeeCents int64  `db:"nightly_fee_cents"`
	model.Metadata
}
