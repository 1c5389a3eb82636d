package artist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/service"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/validator"
	"github.com/anupam2nd/mylavanya-sub003/transport/http/response"
)

type Handler struct {
	service service.Artist
	otel    otel.Otel
}

func New(service service.Artist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/artists", func(r chi.Router) {
		r.Post("/", handler.CreateArtist)
		r.Get("/", handler.GetArtists)
		r.Get("/{id}", handler.GetArtistByID)
		r.Put("/{id}", handler.UpdateArtist)
		r.Patch("/{id}/active", handler.SetArtistActive)
		r.Delete("/{id}", handler.DeleteArtist)
	})
}

// CreateArtist handles the creation of a new artist.
// @Summary Create a new artist
// @Description Create an artist with a unique employee code.
// @Tags Artist
// @Accept json
// @Produce json
// @Param request body dto.CreateArtistRequest true "Create Artist Request"
// @Success 201 {object} response.Message "Artist created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists [post]
// @Security BearerAuth
func (handler *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArtist")
	defer scope.End()

	req := dto.CreateArtistRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create artist")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Artist created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Artist created successfully")
}

// GetArtists retrieves all artists based on query parameters.
// @Summary Get all artists
// @Description Retrieve all artists with optional filtering and pagination.
// @Tags Artist
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query string false "Filter by active flag (true/false)"
// @Success 200 {object} response.Data[dto.GetArtistsResponse] "List of artists"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists [get]
// @Security BearerAuth
func (handler *Handler) GetArtists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtists")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	active := r.URL.Query().Get(model.FieldActive)

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

	if active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active == "true",
			Table:    model.TableName,
		})
	}

	artists, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get artists")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artists retrieved successfully")

	response.WithJSON(w, http.StatusOK, artists)
}

// GetArtistByID retrieves an artist by their ID.
// @Summary Get an artist by ID
// @Description Retrieve an artist by their unique identifier.
// @Tags Artist
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} response.Data[dto.ArtistResponse] "Artist details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetArtistByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtistByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	artist, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get artist by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artist retrieved successfully")

	response.WithJSON(w, http.StatusOK, artist)
}

// UpdateArtist updates an existing artist by their ID.
// @Summary Update an artist by ID
// @Description Update the details of an existing artist.
// @Tags Artist
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Param request body dto.UpdateArtistRequest true "Update Artist Request"
// @Success 200 {object} response.Message "Artist updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateArtist")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateArtistRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update artist")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Artist updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Artist updated successfully")
}

// SetArtistActive toggles an artist's availability for assignment.
// @Summary Activate or deactivate an artist
// @Description Toggle whether an artist can be assigned to bookings.
// @Tags Artist
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Param request body dto.SetArtistActiveRequest true "Set Artist Active Request"
// @Success 200 {object} response.Message "Artist availability updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id}/active [patch]
// @Security BearerAuth
func (handler *Handler) SetArtistActive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetArtistActive")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetArtistActiveRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetActive(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set artist availability")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Artist availability updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Artist availability updated successfully")
}

// DeleteArtist deletes an artist by their ID.
// @Summary Delete an artist by ID
// @Description Delete an artist. Non-superadmin callers deactivate instead of removing the row.
// @Tags Artist
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} response.Message "Artist deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteArtist")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete artist")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Artist deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Artist deleted successfully")
}
