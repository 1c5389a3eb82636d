package banner

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/banner/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/banner/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/banner/service"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/validator"
	"github.com/anupam2nd/mylavanya-sub003/transport/http/response"
)

type Handler struct {
	service service.Banner
	otel    otel.Otel
}

func New(service service.Banner, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/banners", func(r chi.Router) {
		r.Post("/", handler.CreateBanner)
		r.Get("/", handler.GetBanners)
		r.Get("/{id}", handler.GetBannerByID)
		r.Put("/{id}", handler.UpdateBanner)
		r.Delete("/{id}", handler.DeleteBanner)
	})
}

// CreateBanner uploads a banner image and creates the banner entry.
// @Summary Create a new banner
// @Description Upload a banner image to S3 and create the banner entry.
// @Tags Banner
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Banner title"
// @Param target_url formData string false "Target URL"
// @Param sort_order formData int false "Sort order"
// @Param file formData file true "Banner image"
// @Success 201 {object} response.Data[dto.BannerResponse] "Banner created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/banners [post]
// @Security BearerAuth
func (handler *Handler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBanner")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	sortOrder, _ := strconv.Atoi(r.FormValue(model.FieldSortOrder))

	req := dto.CreateBannerRequest{
		Title:     r.FormValue(model.FieldTitle),
		TargetURL: r.FormValue(model.FieldTargetURL),
		SortOrder: sortOrder,
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create banner")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Banner created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBanners lists banners. The public storefront calls this without auth.
// @Summary Get all banners
// @Description Retrieve banners with optional filtering and pagination.
// @Tags Banner
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query string false "Filter by active flag (true/false)"
// @Success 200 {object} response.Data[dto.GetBannersResponse] "List of banners"
// @Failure 500 {object} response.Error
// @Router /v1/banners [get]
func (handler *Handler) GetBanners(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBanners")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	active := r.URL.Query().Get(model.FieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active == "true",
			Table:    model.TableName,
		})
	}

	banners, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get banners")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Banners retrieved successfully")

	response.WithJSON(w, http.StatusOK, banners)
}

// GetBannerByID retrieves a banner by its ID.
// @Summary Get a banner by ID
// @Description Retrieve a banner by its unique identifier.
// @Tags Banner
// @Accept json
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} response.Data[dto.BannerResponse] "Banner details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/banners/{id} [get]
func (handler *Handler) GetBannerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBannerByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	banner, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get banner by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Banner retrieved successfully")

	response.WithJSON(w, http.StatusOK, banner)
}

// UpdateBanner updates an existing banner by its ID.
// @Summary Update a banner by ID
// @Description Update the details of an existing banner.
// @Tags Banner
// @Accept json
// @Produce json
// @Param id path string true "Banner ID"
// @Param request body dto.UpdateBannerRequest true "Update Banner Request"
// @Success 200 {object} response.Message "Banner updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/banners/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBanner")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBannerRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update banner")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Banner updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Banner updated successfully")
}

// DeleteBanner deletes a banner by its ID.
// @Summary Delete a banner by ID
// @Description Delete a banner and remove its image from S3.
// @Tags Banner
// @Accept json
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} response.Message "Banner deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/banners/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBanner")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete banner")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Banner deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Banner deleted successfully")
}
