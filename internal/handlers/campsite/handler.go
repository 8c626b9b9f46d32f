package campsite

import (
	"campground/infras/otel"
	"campground/internal/domains/campsite/model"
	"campground/internal/domains/campsite/model/dto"
	"campground/internal/domains/campsite/service"
	"campground/shared"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	"campground/shared/validator"
	"campground/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Campsite
	otel    otel.Otel
}

func New(service service.Campsite, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/campsites", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCampsite)
		routerGroup.Get("/", handler.GetCampsites)
		routerGroup.Get("/{id}", handler.GetCampsiteByID)
		routerGroup.Patch("/{id}", handler.UpdateCampsite)
		routerGroup.Delete("/{id}", handler.DeleteCampsite)
	})
}

// CreateCampsite handles the creation of a new campsite.
// @Summary Create a new campsite
// @Description Create a new campsite assigned to an existing category.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param request body dto.CreateCampsiteRequest true "Create Campsite Request"
// @Success 201 {object} response.Message "Campsite created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites [post]
// @Security BearerAuth
func (handler *Handler) CreateCampsite(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCampsite")
	defer scope.End()

	req := dto.CreateCampsiteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create campsite")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campsite created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Campsite created successfully")
}

// GetCampsites retrieves all campsites based on query parameters.
// @Summary Get all campsites
// @Description Retrieve all campsites with optional filtering and pagination.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name (partial match)"
// @Param category_id query string false "Filter by category ID"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetCampsitesResponse] "List of campsites"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites [get]
func (handler *Handler) GetCampsites(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampsites")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	categoryID := r.URL.Query().Get(model.FieldCategoryID)
	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if categoryID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategoryID,
			Operator: gDto.FilterOperatorEq,
			Value:    categoryID,
			Table:    model.TableName,
		})
	}

	if active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	campsites, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get campsites")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Campsites retrieved successfully")

	response.WithJSON(w, http.StatusOK, campsites)
}

// GetCampsiteByID retrieves a campsite by its ID.
// @Summary Get a campsite by ID
// @Description Retrieve a campsite, including its category's stay policy, by its unique identifier.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param id path string true "Campsite ID"
// @Success 200 {object} response.Data[dto.CampsiteResponse] "Campsite details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id} [get]
func (handler *Handler) GetCampsiteByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampsiteByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	campsite, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get campsite by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Campsite retrieved successfully")

	response.WithJSON(w, http.StatusOK, campsite)
}

// UpdateCampsite updates an existing campsite by its ID.
// @Summary Update a campsite by ID
// @Description Update the details of an existing campsite.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param id path string true "Campsite ID"
// @Param request body dto.UpdateCampsiteRequest true "Update Campsite Request"
// @Success 200 {object} response.Message "Campsite updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCampsite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCampsite")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCampsiteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update campsite")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campsite updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Campsite updated successfully")
}

// DeleteCampsite deletes a campsite by its ID.
// @Summary Delete a campsite by ID
// @Description Delete a campsite; refused while any reservation on it is still pending or active.
// @Tags Campsite
// @Accept json
// @Produce json
// @Param id path string true "Campsite ID"
// @Success 200 {object} response.Message "Campsite deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campsites/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCampsite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCampsite")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete campsite")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campsite deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Campsite deleted successfully")
}
