package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/status/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/status/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/status/service"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/validator"
	"github.com/anupam2nd/mylavanya-sub003/transport/http/response"
)

type Handler struct {
	service service.Status
	otel    otel.Otel
}

func New(service service.Status, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/statuses", func(r chi.Router) {
		r.Post("/", handler.CreateStatus)
		r.Get("/", handler.GetStatuses)
		r.Get("/{id}", handler.GetStatusByID)
		r.Put("/{id}", handler.UpdateStatus)
		r.Delete("/{id}", handler.DeleteStatus)
	})
}

// CreateStatus adds an entry to the status catalog.
// @Summary Create a new status
// @Description Create a status catalog entry with a unique status code.
// @Tags Status
// @Accept json
// @Produce json
// @Param request body dto.CreateStatusRequest true "Create Status Request"
// @Success 201 {object} response.Message "Status created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/statuses [post]
// @Security BearerAuth
func (handler *Handler) CreateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStatus")
	defer scope.End()

	req := dto.CreateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Status created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Status created successfully")
}

// GetStatuses retrieves all status catalog entries.
// @Summary Get all statuses
// @Description Retrieve all status catalog entries with optional filtering and pagination.
// @Tags Status
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query string false "Filter by active flag (true/false)"
// @Success 200 {object} response.Data[dto.GetStatusesResponse] "List of statuses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/statuses [get]
// @Security BearerAuth
func (handler *Handler) GetStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatuses")
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

	statuses, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get statuses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Statuses retrieved successfully")

	response.WithJSON(w, http.StatusOK, statuses)
}

// GetStatusByID retrieves a status catalog entry by its ID.
// @Summary Get a status by ID
// @Description Retrieve a status catalog entry by its unique identifier.
// @Tags Status
// @Accept json
// @Produce json
// @Param id path string true "Status ID"
// @Success 200 {object} response.Data[dto.StatusResponse] "Status details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/statuses/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStatusByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatusByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	status, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get status by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Status retrieved successfully")

	response.WithJSON(w, http.StatusOK, status)
}

// UpdateStatus updates a status catalog entry by its ID.
// @Summary Update a status by ID
// @Description Update the details of an existing status catalog entry.
// @Tags Status
// @Accept json
// @Produce json
// @Param id path string true "Status ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/statuses/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Status updated successfully")
}

// DeleteStatus deletes a status catalog entry by its ID.
// @Summary Delete a status by ID
// @Description Delete a status catalog entry using its unique identifier.
// @Tags Status
// @Accept json
// @Produce json
// @Param id path string true "Status ID"
// @Success 200 {object} response.Message "Status deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/statuses/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Status deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Status deleted successfully")
}
