package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"campground/config"
	kafkaMocks "campground/infras/kafka/mocks"
	"campground/infras/otel/mocks"
	campsiteMocks "campground/internal/domains/campsite/mocks"
	campsiteModel "campground/internal/domains/campsite/model"
	reservationMocks "campground/internal/domains/reservation/mocks"
	"campground/internal/domains/reservation/model"
	"campground/internal/domains/reservation/model/dto"
	"campground/internal/domains/reservation/service"
	"campground/internal/domains/reservation/stay"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	"campground/shared/failure"
	"campground/shared/timezone"
)

const (
	testCampsiteID = "b9f7c5a2-4d1e-4f6a-9c3b-2e8d7a6f5c41"
	testGuestID    = "guest-1"
)

func testCampsite(maxNights int) campsiteModel.Campsite {
	return campsiteModel.Campsite{
		ID:              testCampsiteID,
		Name:            "Riverside 12",
		MaxStayNights:   maxNights,
		NightlyFeeCents: 4500,
	}
}

func testReservation(id, guest, checkIn, checkOut string) model.Reservation {
	in, _ := timezone.Parse(constant.CalendarDateFormat, checkIn)
	out, _ := timezone.Parse(constant.CalendarDateFormat, checkOut)

	return model.Reservation{
		ID:         id,
		CampsiteID: testCampsiteID,
		GuestID:    guest,
		CheckIn:    in,
		CheckOut:   out,
	}
}

func camperCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCamper)
}

func adminCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func newService(t *testing.T) (service.Reservation, *reservationMocks.MockReservation, *campsiteMocks.MockCampsite, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCampsiteRepo := campsiteMocks.NewMockCampsite(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockCampsiteRepo, cfg, mockKafka, mockOtel)

	return svc, mockRepo, mockCampsiteRepo, mockKafka
}

// day returns the calendar date offset days from now, so admission requests
// in these tests always sit in the future relative to the service's clock.
func day(offset int) string {
	return timezone.Now().AddDate(0, 0, offset).Format(constant.CalendarDateFormat)
}

func TestReservationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient)
		assertErr func(t *testing.T, err error)
	}{
		{
			name: "campsite not found",
			req: dto.CreateReservationRequest{
				CampsiteID: testCampsiteID,
				CheckIn:    day(30),
				CheckOut:   day(35),
			},
			setupMock: func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient) {
				campsites.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(campsiteModel.Campsite{}, nil)
			},
			assertErr: func(t *testing.T, err error) {
				assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
			},
		},
		{
			name: "check-in after check-out is an invalid range",
			req: dto.CreateReservationRequest{
				CampsiteID: testCampsiteID,
				CheckIn:    day(35),
				CheckOut:   day(30),
			},
			setupMock: func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient) {
				campsites.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testCampsite(7), nil)
			},
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, stay.ErrInvalidDateRange)
			},
		},
		{
			name: "zero-night request is an invalid range, not a trivial admit",
			req: dto.CreateReservationRequest{
				CampsiteID: testCampsiteID,
				CheckIn:    day(30),
				CheckOut:   day(30),
			},
			setupMock: func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient) {
				campsites.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testCampsite(7), nil)
			},
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, stay.ErrInvalidDateRange)
			},
		},
		{
			name: "eight nights against a seven-night maximum",
			req: dto.CreateReservationRequest{
				CampsiteID: testCampsiteID,
				CheckIn:    day(30),
				CheckOut:   day(38),
			},
			setupMock: func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient) {
				campsites.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testCampsite(7), nil)
			},
			assertErr: func(t *testing.T, err error) {
				var durationErr *stay.DurationExceededError
				require.ErrorAs(t, err, &durationErr)
				assert.Equal(t, 8, durationErr.RequestedNights)
				assert.Equal(t, 7, durationErr.MaxNights)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			},
		},
		{
			name: "past-dated request is rejected",
			req: dto.CreateReservationRequest{
				CampsiteID: testCampsiteID,
				CheckIn:    day(-3),
				CheckOut:   day(-1),
			},
			setupMock: func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient) {
				campsites.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testCampsite(7), nil)
			},
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, stay.ErrCheckInPast)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			},
		},
		{
			name: "past check-in with future check-out is rejected",
			req: dto.CreateReservationRequest{
				CampsiteID: testCampsiteID,
				CheckIn:    day(-1),
				CheckOut:   day(2),
			},
			setupMock: func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient) {
				campsites.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testCampsite(7), nil)
			},
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, stay.ErrCheckInPast)
			},
		},
		{
			name: "overlap with an existing reservation",
			req: dto.CreateReservationRequest{
				CampsiteID: testCampsiteID,
				CheckIn:    day(31),
				CheckOut:   day(34),
			},
			setupMock: func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient) {
				campsites.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testCampsite(7), nil)
				repo.EXPECT().
					ListNonTerminal(gomock.Any(), testCampsiteID, gomock.Any()).
					Return([]model.Reservation{testReservation("res-1", "other-guest", day(30), day(33))}, nil)
			},
			assertErr: func(t *testing.T, err error) {
				var conflictErr *stay.ConflictError
				require.ErrorAs(t, err, &conflictErr)
				assert.Equal(t, "["+day(30)+", "+day(33)+")", conflictErr.ConflictingRange.String())
				assert.Equal(t, http.StatusConflict, failure.GetCode(err))
			},
		},
		{
			name: "overlap check walks every non-terminal reservation",
			req: dto.CreateReservationRequest{
				CampsiteID: testCampsiteID,
				CheckIn:    day(40),
				CheckOut:   day(43),
			},
			setupMock: func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient) {
				campsites.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testCampsite(7), nil)
				repo.EXPECT().
					ListNonTerminal(gomock.Any(), testCampsiteID, gomock.Any()).
					Return([]model.Reservation{
						testReservation("res-1", "other-guest", day(30), day(33)),
						testReservation("res-2", "other-guest", day(42), day(45)),
					}, nil)
			},
			assertErr: func(t *testing.T, err error) {
				var conflictErr *stay.ConflictError
				require.ErrorAs(t, err, &conflictErr)
				assert.Equal(t, "["+day(42)+", "+day(45)+")", conflictErr.ConflictingRange.String())
			},
		},
		{
			name: "concurrent insert loses the storage overlap constraint",
			req: dto.CreateReservationRequest{
				CampsiteID: testCampsiteID,
				CheckIn:    day(30),
				CheckOut:   day(35),
			},
			setupMock: func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient) {
				campsites.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testCampsite(7), nil)
				repo.EXPECT().
					ListNonTerminal(gomock.Any(), testCampsiteID, gomock.Any()).
					Return(nil, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)})
			},
			assertErr: func(t *testing.T, err error) {
				var raceErr *stay.AdmissionRaceError
				require.ErrorAs(t, err, &raceErr)
				assert.Equal(t, testCampsiteID, raceErr.CampsiteID)
				assert.Equal(t, http.StatusConflict, failure.GetCode(err))
			},
		},
		{
			name: "unrelated insert error propagates as infrastructure failure",
			req: dto.CreateReservationRequest{
				CampsiteID: testCampsiteID,
				CheckIn:    day(30),
				CheckOut:   day(35),
			},
			setupMock: func(repo *reservationMocks.MockReservation, campsites *campsiteMocks.MockCampsite, kafka *kafkaMocks.MockClient) {
				campsites.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testCampsite(7), nil)
				repo.EXPECT().
					ListNonTerminal(gomock.Any(), testCampsiteID, gomock.Any()).
					Return(nil, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))
			},
			assertErr: func(t *testing.T, err error) {
				var raceErr *stay.AdmissionRaceError
				assert.False(t, errors.As(err, &raceErr))
				assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCampsiteRepo, mockKafka := newService(t)
			tt.setupMock(mockRepo, mockCampsiteRepo, mockKafka)

			_, err := svc.Create(camperCtx(testGuestID), tt.req)

			require.Error(t, err)
			tt.assertErr(t, err)
		})
	}
}

func TestReservationService_Create_Admitted(t *testing.T) {
	svc, mockRepo, mockCampsiteRepo, mockKafka := newService(t)

	mockCampsiteRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testCampsite(7), nil)
	mockRepo.EXPECT().
		ListNonTerminal(gomock.Any(), testCampsiteID, gomock.Any()).
		Return([]model.Reservation{testReservation("res-1", "other-guest", day(30), day(33))}, nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
			assert.Equal(t, testCampsiteID, reservation.CampsiteID)
			assert.Equal(t, testGuestID, reservation.GuestID)
			assert.Nil(t, reservation.CancelledAt)
			assert.Equal(t, reservation.CreatedAt, reservation.ModifiedAt)

			return nil
		})
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
		Return(nil).
		AnyTimes()

	// back-to-back with the existing stay: no overlap
	res, err := svc.Create(camperCtx(testGuestID), dto.CreateReservationRequest{
		CampsiteID: testCampsiteID,
		CheckIn:    day(33),
		CheckOut:   day(38),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Riverside 12", res.CampsiteName)
	assert.Equal(t, 5, res.Nights)
	assert.Equal(t, int64(5*4500), res.TotalFeeCents)
	assert.Equal(t, string(stay.StatePending), res.State)
}

func TestReservationService_Create_SameDayCheckInAdmitted(t *testing.T) {
	svc, mockRepo, mockCampsiteRepo, mockKafka := newService(t)

	mockCampsiteRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testCampsite(7), nil)
	mockRepo.EXPECT().
		ListNonTerminal(gomock.Any(), testCampsiteID, gomock.Any()).
		Return(nil, nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
		Return(nil).
		AnyTimes()

	// checking in today is not "in the past"
	res, err := svc.Create(camperCtx(testGuestID), dto.CreateReservationRequest{
		CampsiteID: testCampsiteID,
		CheckIn:    day(0),
		CheckOut:   day(2),
	})

	require.NoError(t, err)
	assert.Equal(t, string(stay.StateActive), res.State)
}

func TestReservationService_Create_ExactMaximumStayAdmitted(t *testing.T) {
	svc, mockRepo, mockCampsiteRepo, mockKafka := newService(t)

	mockCampsiteRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testCampsite(7), nil)
	mockRepo.EXPECT().
		ListNonTerminal(gomock.Any(), testCampsiteID, gomock.Any()).
		Return(nil, nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Create(camperCtx(testGuestID), dto.CreateReservationRequest{
		CampsiteID: testCampsiteID,
		CheckIn:    day(30),
		CheckOut:   day(37),
	})

	require.NoError(t, err)
	assert.Equal(t, 7, res.Nights)
}

func TestReservationService_Get(t *testing.T) {
	futureIn := timezone.Now().AddDate(0, 1, 0).Format(constant.CalendarDateFormat)
	futureOut := timezone.Now().AddDate(0, 1, 3).Format(constant.CalendarDateFormat)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(repo *reservationMocks.MockReservation)
		wantErr   bool
		wantCode  int
		wantState string
	}{
		{
			name: "owner reads own reservation",
			ctx:  camperCtx(testGuestID),
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testReservation("res-1", testGuestID, futureIn, futureOut), nil)
			},
			wantState: string(stay.StatePending),
		},
		{
			name: "admin reads any reservation",
			ctx:  adminCtx("admin-1"),
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testReservation("res-1", testGuestID, futureIn, futureOut), nil)
			},
			wantState: string(stay.StatePending),
		},
		{
			name: "camper cannot read another guest's reservation",
			ctx:  camperCtx("someone-else"),
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testReservation("res-1", testGuestID, futureIn, futureOut), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "reservation not found",
			ctx:  camperCtx(testGuestID),
			setupMock: func(repo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _ := newService(t)
			tt.setupMock(mockRepo)

			res, err := svc.Get(tt.ctx, "res-1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantState, res.State)
		})
	}
}

func TestReservationService_Cancel(t *testing.T) {
	now := timezone.Now()
	futureIn := now.AddDate(0, 1, 0).Format(constant.CalendarDateFormat)
	futureOut := now.AddDate(0, 1, 3).Format(constant.CalendarDateFormat)
	pastIn := now.AddDate(0, 0, -1).Format(constant.CalendarDateFormat)
	activeOut := now.AddDate(0, 0, 3).Format(constant.CalendarDateFormat)
	pastOut := now.AddDate(0, 0, -1).Format(constant.CalendarDateFormat)
	farPastIn := now.AddDate(0, 0, -5).Format(constant.CalendarDateFormat)

	cancelledAt := now.AddDate(0, 0, -2)
	cancelledBy := testGuestID

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(repo *reservationMocks.MockReservation, kafka *kafkaMocks.MockClient)
		assertErr func(t *testing.T, err error)
	}{
		{
			name: "owner cancels own pending reservation",
			ctx:  camperCtx(testGuestID),
			setupMock: func(repo *reservationMocks.MockReservation, kafka *kafkaMocks.MockClient) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testReservation("res-1", testGuestID, futureIn, futureOut), nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Contains(t, fields, model.FieldCancelledAt)
						assert.Equal(t, testGuestID, fields[model.FieldCancelledBy])

						return nil
					})
				kafka.EXPECT().
					SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "cancelling an already-cancelled reservation is idempotent",
			ctx:  camperCtx(testGuestID),
			setupMock: func(repo *reservationMocks.MockReservation, kafka *kafkaMocks.MockClient) {
				reservation := testReservation("res-1", testGuestID, futureIn, futureOut)
				reservation.CancelledAt = &cancelledAt
				reservation.CancelledBy = &cancelledBy

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
		},
		{
			name: "owner cannot cancel an active reservation",
			ctx:  camperCtx(testGuestID),
			setupMock: func(repo *reservationMocks.MockReservation, kafka *kafkaMocks.MockClient) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testReservation("res-1", testGuestID, pastIn, activeOut), nil)
			},
			assertErr: func(t *testing.T, err error) {
				var notAllowed *stay.CancellationNotAllowedError
				require.ErrorAs(t, err, &notAllowed)
				assert.Equal(t, stay.StateActive, notAllowed.State)
				assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
			},
		},
		{
			name: "owner cannot cancel a completed reservation",
			ctx:  camperCtx(testGuestID),
			setupMock: func(repo *reservationMocks.MockReservation, kafka *kafkaMocks.MockClient) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testReservation("res-1", testGuestID, farPastIn, pastOut), nil)
			},
			assertErr: func(t *testing.T, err error) {
				var notAllowed *stay.CancellationNotAllowedError
				require.ErrorAs(t, err, &notAllowed)
				assert.Equal(t, stay.StateCompleted, notAllowed.State)
			},
		},
		{
			name: "admin cancels an active reservation",
			ctx:  adminCtx("admin-1"),
			setupMock: func(repo *reservationMocks.MockReservation, kafka *kafkaMocks.MockClient) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testReservation("res-1", testGuestID, pastIn, activeOut), nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				kafka.EXPECT().
					SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "camper cannot cancel another guest's reservation",
			ctx:  camperCtx("someone-else"),
			setupMock: func(repo *reservationMocks.MockReservation, kafka *kafkaMocks.MockClient) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testReservation("res-1", testGuestID, futureIn, futureOut), nil)
			},
			assertErr: func(t *testing.T, err error) {
				assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
			},
		},
		{
			name: "camper is refused on another guest's cancelled reservation",
			ctx:  camperCtx("someone-else"),
			setupMock: func(repo *reservationMocks.MockReservation, kafka *kafkaMocks.MockClient) {
				reservation := testReservation("res-1", testGuestID, futureIn, futureOut)
				reservation.CancelledAt = &cancelledAt
				reservation.CancelledBy = &cancelledBy

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
			assertErr: func(t *testing.T, err error) {
				// ownership is checked before the idempotent no-op
				assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
			},
		},
		{
			name: "reservation not found",
			ctx:  camperCtx(testGuestID),
			setupMock: func(repo *reservationMocks.MockReservation, kafka *kafkaMocks.MockClient) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			assertErr: func(t *testing.T, err error) {
				assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockKafka := newService(t)
			tt.setupMock(mockRepo, mockKafka)

			err := svc.Cancel(tt.ctx, "res-1")

			if tt.assertErr != nil {
				require.Error(t, err)
				tt.assertErr(t, err)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestReservationService_GetAll(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	futureIn := timezone.Now().AddDate(0, 1, 0).Format(constant.CalendarDateFormat)
	futureOut := timezone.Now().AddDate(0, 1, 3).Format(constant.CalendarDateFormat)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Reservation{testReservation("res-1", testGuestID, futureIn, futureOut)}, nil)

	res, err := svc.GetAll(adminCtx("admin-1"), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Reservations, 1)
	assert.Equal(t, string(stay.StatePending), res.Reservations[0].State)
	assert.Equal(t, 3, res.Reservations[0].Nights)
}
