package service

import (
	"campground/config"
	"campground/infras/otel"
	"campground/internal/domains/campsite/model"
	"campground/internal/domains/campsite/model/dto"
	"campground/internal/domains/campsite/repository"
	categoryModel "campground/internal/domains/category/model"
	categoryRepo "campground/internal/domains/category/repository"
	reservationRepo "campground/internal/domains/reservation/repository"
	"campground/internal/domains/reservation/stay"
	"campground/shared"
	"campground/shared/cache"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	"campground/shared/failure"
	"campground/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCampsite    = "campsite:get"
	cacheGetAllCampsite = "campsite:gets"
	cacheCountCampsite  = "campsite:count"
)

type Campsite interface {
	Create(ctx context.Context, req dto.CreateCampsiteRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCampsitesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CampsiteResponse, error)
	Update(ctx context.Context, req dto.UpdateCampsiteRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Campsite
	categoryRepo    categoryRepo.Category
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.Campsite, categoryRepo categoryRepo.Category, reservationRepo reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Campsite {
	return &serviceImpl{
		repo:            repo,
		categoryRepo:    categoryRepo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCampsiteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	categoryExists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, categoryModel.FieldID, categoryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !categoryExists {
		return failure.BadRequestFromString("category does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create campsite")

		return fmt.Errorf("failed to create campsite: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCampsite)
		shared.InvalidateCaches(c, s.cache, cacheCountCampsite)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCampsitesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCampsite, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for campsites")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count campsites")

		return res, fmt.Errorf("failed to count campsites: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get campsites")

		return res, fmt.Errorf("failed to get campsites: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save campsites to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCampsite, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for campsite count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count campsites")

		return res, fmt.Errorf("failed to count campsites: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save campsite count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CampsiteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCampsite, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for campsite")

		return res, nil
	}

	campsite, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get campsite")

		return res, fmt.Errorf("failed to get campsite: %w", err)
	}

	if campsite.ID == constant.Empty {
		return res, failure.NotFound("campsite not found") // nolint:wrapcheck
	}

	res.FromModel(campsite)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save campsite to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCampsiteRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCampsiteRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if campsite exists")

		return fmt.Errorf("failed to check if campsite exists: %w", err)
	}

	if !exist {
		log.Error().Msg("campsite not found")

		return failure.NotFound("campsite not found") // nolint:wrapcheck
	}

	if req.CategoryID != constant.Empty {
		categoryExists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, categoryModel.FieldID, categoryModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if category exists")

			return fmt.Errorf("failed to check if category exists: %w", err)
		}

		if !categoryExists {
			return failure.BadRequestFromString("category does not exist") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update campsite")

		return fmt.Errorf("failed to update campsite: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCampsite, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete campsite from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCampsite)
		shared.InvalidateCaches(c, s.cache, cacheCountCampsite)
	}()

	return nil
}

// Delete removes a campsite, refusing while any reservation on it is still
// pending or active. Cancelled and completed reservations never block removal.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	asOf := timezone.Now()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if campsite exists")

		return fmt.Errorf("failed to check if campsite exists: %w", err)
	}

	if !exist {
		log.Error().Msg("campsite not found")

		return failure.NotFound("campsite not found") // nolint:wrapcheck
	}

	inUse, err := s.reservationRepo.HasNonTerminal(ctx, id, asOf)
	if err != nil {
		log.Error().Err(err).Msg("failed to check campsite reservations")

		return fmt.Errorf("failed to check campsite reservations: %w", err)
	}

	if inUse {
		return stay.ErrCampsiteInUse // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete campsite")

		return fmt.Errorf("failed to delete campsite: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCampsite, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete campsite from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCampsite)
		shared.InvalidateCaches(c, s.cache, cacheCountCampsite)
	}()

	return nil
}
