package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"campground/config"
	"campground/infras/otel/mocks"
	campsiteMocks "campground/internal/domains/campsite/mocks"
	"campground/internal/domains/campsite/model"
	"campground/internal/domains/campsite/model/dto"
	"campground/internal/domains/campsite/service"
	categoryMocks "campground/internal/domains/category/mocks"
	reservationMocks "campground/internal/domains/reservation/mocks"
	"campground/internal/domains/reservation/stay"
	cacheMocks "campground/shared/cache/mocks"
	"campground/shared/constant"
	"campground/shared/failure"
)

func newService(t *testing.T) (service.Campsite, *campsiteMocks.MockCampsite, *categoryMocks.MockCategory, *reservationMocks.MockReservation, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := campsiteMocks.NewMockCampsite(ctrl)
	mockCategoryRepo := categoryMocks.NewMockCategory(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCategoryRepo, mockReservationRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCategoryRepo, mockReservationRepo, mockCache
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestCampsiteService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateCampsiteRequest
		setupMock func(repo *campsiteMocks.MockCampsite, categories *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateCampsiteRequest{
				Name:       "Riverside 12",
				CategoryID: "11111111-1111-1111-1111-111111111111",
				Active:     true,
			},
			setupMock: func(repo *campsiteMocks.MockCampsite, categories *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache) {
				categories.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "category does not exist",
			req: dto.CreateCampsiteRequest{
				Name:       "Riverside 12",
				CategoryID: "11111111-1111-1111-1111-111111111111",
			},
			setupMock: func(repo *campsiteMocks.MockCampsite, categories *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache) {
				categories.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreateCampsiteRequest{
				Name:       "Riverside 12",
				CategoryID: "11111111-1111-1111-1111-111111111111",
			},
			setupMock: func(repo *campsiteMocks.MockCampsite, categories *categoryMocks.MockCategory, cache *cacheMocks.MockRedisCache) {
				categories.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCategoryRepo, _, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCategoryRepo, mockCache)

			err := svc.Create(testCtx(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCampsiteService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *campsiteMocks.MockCampsite, reservations *reservationMocks.MockReservation, cache *cacheMocks.MockRedisCache)
		assertErr func(t *testing.T, err error)
	}{
		{
			name: "deletes a campsite with no live reservations",
			setupMock: func(repo *campsiteMocks.MockCampsite, reservations *reservationMocks.MockReservation, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				reservations.EXPECT().
					HasNonTerminal(gomock.Any(), "campsite-1", gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "refuses while a reservation is still pending or active",
			setupMock: func(repo *campsiteMocks.MockCampsite, reservations *reservationMocks.MockReservation, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				reservations.EXPECT().
					HasNonTerminal(gomock.Any(), "campsite-1", gomock.Any()).
					Return(true, nil)
			},
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, stay.ErrCampsiteInUse)
				assert.Equal(t, http.StatusConflict, failure.GetCode(err))
			},
		},
		{
			name: "campsite not found",
			setupMock: func(repo *campsiteMocks.MockCampsite, reservations *reservationMocks.MockReservation, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			assertErr: func(t *testing.T, err error) {
				assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockReservationRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockReservationRepo, mockCache)

			err := svc.Delete(testCtx(), "campsite-1")

			if tt.assertErr != nil {
				require.Error(t, err)
				tt.assertErr(t, err)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCampsiteService_Get(t *testing.T) {
	t.Run("cache miss falls back to the database", func(t *testing.T) {
		svc, mockRepo, _, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Campsite{ID: "campsite-1", Name: "Riverside 12", MaxStayNights: 7}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(testCtx(), "campsite-1")

		require.NoError(t, err)
		assert.Equal(t, "Riverside 12", res.Name)
		assert.Equal(t, 7, res.MaxStayNights)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Campsite{}, nil)

		_, err := svc.Get(testCtx(), "campsite-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
