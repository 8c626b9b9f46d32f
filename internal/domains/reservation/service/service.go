package service

import (
	"campground/config"
	"campground/infras/kafka"
	"campground/infras/otel"
	campsiteModel "campground/internal/domains/campsite/model"
	campsiteRepo "campground/internal/domains/campsite/repository"
	"campground/internal/domains/reservation/model"
	"campground/internal/domains/reservation/model/dto"
	"campground/internal/domains/reservation/repository"
	"campground/internal/domains/reservation/stay"
	"campground/shared"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	"campground/shared/failure"
	"campground/shared/timezone"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Reservation
	campsiteRepo campsiteRepo.Campsite
	cfg          *config.Config
	kafka        kafka.Client
	otel         otel.Otel
}

func New(repo repository.Reservation, campsiteRepo campsiteRepo.Campsite, cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:         repo,
		campsiteRepo: campsiteRepo,
		cfg:          cfg,
		kafka:        kafkaClient,
		otel:         otel,
	}
}

// Create admits or rejects a reservation request. Checks run in a fixed
// order and short-circuit on the first failure: campsite existence, date
// ordering, check-in not already past, stay duration against the campsite's
// category limit, then overlap against every reservation still pending or
// active. The ledger is
// always read straight from Postgres so the conflict check never sees stale
// data, and a single clock read at the top keeps every check on the same
// "now". A storage-level overlap rejection on insert means a concurrent
// request won the race after our conflict check passed.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	asOf := timezone.Now()
	guest, _ := ctx.Value(constant.ContextKeyUserID).(string)

	campsite, err := s.campsiteRepo.Get(ctx, shared.FilterByID(req.CampsiteID, campsiteModel.FieldID, campsiteModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get campsite")

		return res, fmt.Errorf("failed to get campsite: %w", err)
	}

	if campsite.ID == constant.Empty {
		return res, failure.NotFound("campsite not found") // nolint:wrapcheck
	}

	rng, err := req.Range()
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if rng.CheckIn.Before(stay.Date(asOf)) {
		return res, stay.ErrCheckInPast // nolint:wrapcheck
	}

	if nights := rng.Nights(); nights > campsite.MaxStayNights {
		return res, &stay.DurationExceededError{RequestedNights: nights, MaxNights: campsite.MaxStayNights}
	}

	existing, err := s.repo.ListNonTerminal(ctx, req.CampsiteID, asOf)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reservations for conflict check")

		return res, fmt.Errorf("failed to list reservations for conflict check: %w", err)
	}

	for _, other := range existing {
		if stay.Overlaps(rng, other.Range()) {
			return res, &stay.ConflictError{ConflictingRange: other.Range()}
		}
	}

	reservation := req.ToModel(guest, rng, asOf)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && (pqErr.Code == constant.PqErrorCodeExclusionViolation || pqErr.Code == constant.PqErrorCodeUniqueViolation) {
			log.Warn().Str("campsiteID", req.CampsiteID).Msg("concurrent reservation won the overlap constraint")

			return res, &stay.AdmissionRaceError{CampsiteID: req.CampsiteID}
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	reservation.CampsiteName = campsite.Name
	reservation.NightlyFeeCents = campsite.NightlyFeeCents
	res.FromModel(reservation, asOf)

	go s.publishEvent(ctx, dto.EventTypeAdmitted, reservation, asOf)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	asOf := timezone.Now()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit, asOf)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	asOf := timezone.Now()
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if !privilegedFrom(ctx) && reservation.GuestID != user {
		return res, failure.ForbiddenError // nolint:wrapcheck
	}

	res.FromModel(reservation, asOf)

	return res, nil
}

// Cancel marks a reservation cancelled. Privileged callers may cancel in any
// state; the owning guest only while the reservation is still pending.
// A caller allowed to cancel who retries against an already-cancelled
// reservation gets a no-op success; unrelated guests are refused regardless.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	asOf := timezone.Now()
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if !privilegedFrom(ctx) && reservation.GuestID != user {
		return failure.ForbiddenError // nolint:wrapcheck
	}

	// Idempotency only applies to callers who could cancel in the first place
	if reservation.Cancelled() {
		return nil
	}

	if !privilegedFrom(ctx) {
		if state := reservation.StateAt(asOf); state != stay.StatePending {
			return &stay.CancellationNotAllowedError{State: state}
		}
	}

	updatedFields := map[string]any{
		model.FieldCancelledAt:   asOf,
		model.FieldCancelledBy:   user,
		constant.FieldModifiedAt: asOf,
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	go s.publishEvent(ctx, dto.EventTypeCancelled, reservation, asOf)

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation model.Reservation, occurredAt time.Time) {
	c := context.WithoutCancel(ctx)

	message := kafka.Message{
		Key:   reservation.ID,
		Value: dto.NewReservationEvent(eventType, reservation, occurredAt),
	}

	if err := s.kafka.SendMessages(c, constant.KafkaTopicReservationEvents, message); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("failed to publish reservation event")
	}
}

func privilegedFrom(ctx context.Context) bool {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return role == constant.RoleAdmin || role == constant.RoleSuperAdmin
}
