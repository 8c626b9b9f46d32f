package dto

import (
	"campground/internal/domains/reservation/model"
	"campground/internal/domains/reservation/stay"
	"campground/shared"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	"campground/shared/failure"
	gModel "campground/shared/model"
	"campground/shared/timezone"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CampsiteID string `json:"campsite_id" validate:"required,uuid"`
	CheckIn    string `json:"check_in"    validate:"required,calendardate"`
	CheckOut   string `json:"check_out"   validate:"required,calendardate"`
}

// Range parses the requested dates in the application timezone and validates
// their ordering.
func (c *CreateReservationRequest) Range() (stay.Range, error) {
	checkIn, err := timezone.Parse(constant.CalendarDateFormat, c.CheckIn)
	if err != nil {
		return stay.Range{}, failure.BadRequestFromString(fmt.Sprintf("invalid check_in date: %v", err)) //nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.CalendarDateFormat, c.CheckOut)
	if err != nil {
		return stay.Range{}, failure.BadRequestFromString(fmt.Sprintf("invalid check_out date: %v", err)) //nolint:wrapcheck
	}

	return stay.NewRange(checkIn, checkOut) //nolint:wrapcheck
}

// ToModel builds the ledger row. The asOf moment comes from the service's
// single clock read, so creation metadata matches every other timestamp
// derived in the same request.
func (c *CreateReservationRequest) ToModel(guest string, rng stay.Range, asOf time.Time) model.Reservation {
	return model.Reservation{
		ID:         uuid.NewString(),
		CampsiteID: c.CampsiteID,
		GuestID:    guest,
		CheckIn:    rng.CheckIn,
		CheckOut:   rng.CheckOut,
		Metadata: gModel.Metadata{
			CreatedAt:  asOf,
			ModifiedAt: asOf,
			CreatedBy:  guest,
			ModifiedBy: guest,
		},
	}
}

type ReservationResponse struct {
	ID            string `json:"id"`
	CampsiteID    string `json:"campsite_id"`
	CampsiteName  string `json:"campsite_name"`
	GuestID       string `json:"guest_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Nights        int    `json:"nights"`
	State         string `json:"state"`
	TotalFeeCents int64  `json:"total_fee_cents"`
	gDto.Metadata
}

// FromModel shapes a reservation for the caller, deriving the lifecycle
// state and the total fee as of the given moment.
func (r *ReservationResponse) FromModel(model model.Reservation, asOf time.Time) {
	rng := model.Range()

	r.ID = model.ID
	r.CampsiteID = model.CampsiteID
	r.CampsiteName = model.CampsiteName
	r.GuestID = model.GuestID
	r.CheckIn = model.CheckIn.Format(constant.CalendarDateFormat)
	r.CheckOut = model.CheckOut.Format(constant.CalendarDateFormat)
	r.Nights = rng.Nights()
	r.State = string(model.StateAt(asOf))
	r.TotalFeeCents = int64(rng.Nights()) * model.NightlyFeeCents
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int, asOf time.Time) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod, asOf)
	}
}

// ReservationEvent is the payload published to Kafka when a reservation is
// admitted or cancelled.
type ReservationEvent struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	CampsiteID    string `json:"campsite_id"`
	GuestID       string `json:"guest_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	OccurredAt    string `json:"occurred_at"`
}

const (
	EventTypeAdmitted  = "reservation.admitted"
	EventTypeCancelled = "reservation.cancelled"
)

func NewReservationEvent(eventType string, model model.Reservation, occurredAt time.Time) ReservationEvent {
	return ReservationEvent{
		Type:          eventType,
		ReservationID: model.ID,
		CampsiteID:    model.CampsiteID,
		GuestID:       model.GuestID,
		CheckIn:       model.CheckIn.Format(constant.CalendarDateFormat),
		CheckOut:      model.CheckOut.Format(constant.CalendarDateFormat),
		OccurredAt:    timezone.Format(occurredAt, constant.DateFormat),
	}
}
