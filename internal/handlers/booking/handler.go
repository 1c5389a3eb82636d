package booking

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/service"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
	"github.com/anupam2nd/mylavanya-sub003/shared/validator"
	"github.com/anupam2nd/mylavanya-sub003/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/export", handler.ExportBookings)
		routerGroup.Get("/{bookingNo}", handler.GetBookingByNo)
		routerGroup.Put("/{bookingNo}", handler.UpdateBooking)
		routerGroup.Put("/{bookingNo}/status", handler.UpdateBookingStatus)
		routerGroup.Put("/{bookingNo}/artist", handler.AssignArtist)
		routerGroup.Post("/{bookingNo}/services", handler.AddService)
	})

	router.Get("/track/{bookingNo}", handler.TrackBooking)
}

// CreateBooking handles the creation of a new booking group.
// @Summary Create a new booking
// @Description Create a booking with one or more service line items. All items share a generated booking number.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves bookings grouped by booking number.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filtering and pagination. Members only see their own bookings.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_no query string false "Filter by booking number prefix"
// @Param status query string false "Filter by status code"
// @Param booking_date query string false "Filter by booking date (YYYY-MM-DD)"
// @Param artist_id query string false "Filter by assigned artist"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := handler.buildFilters(r)

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// ExportBookings streams the filtered bookings as a CSV download.
// @Summary Export bookings to CSV
// @Description Export bookings matching the given filters as a CSV file.
// @Tags Booking
// @Accept json
// @Produce text/csv
// @Param booking_no query string false "Filter by booking number prefix"
// @Param status query string false "Filter by status code"
// @Param booking_date query string false "Filter by booking date (YYYY-MM-DD)"
// @Param artist_id query string false "Filter by assigned artist"
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/export [get]
// @Security BearerAuth
func (handler *Handler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	filterGroup := handler.buildFilters(r)

	content, err := handler.service.ExportCSV(ctx, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings exported successfully")

	filename := fmt.Sprintf("bookings_%s.csv", timezone.Now().Format(constant.DateFormat))
	response.WithFile(w, constant.ContentTypeCSV, filename, content)
}

// GetBookingByNo retrieves a booking group by its booking number.
// @Summary Get a booking by booking number
// @Description Retrieve all service line items sharing the given booking number.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingNo path string true "Booking Number"
// @Success 200 {object} response.Data[dto.BookingGroupResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingNo} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByNo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByNo")
	defer scope.End()

	bookingNo := chi.URLParam(r, constant.RequestParamBookingNo)

	booking, err := handler.service.Get(ctx, bookingNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates customer or schedule details across a booking group.
// @Summary Update a booking
// @Description Update customer or schedule details. Changes apply to every line item of the booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingNo path string true "Booking Number"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingNo} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	bookingNo := chi.URLParam(r, constant.RequestParamBookingNo)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, bookingNo); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// UpdateBookingStatus moves a booking group to a new status.
// @Summary Update booking status
// @Description Change the status of every line item of a booking. Assignment statuses require an artist.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingNo path string true "Booking Number"
// @Param request body dto.UpdateBookingStatusRequest true "Update Booking Status Request"
// @Success 200 {object} response.Message "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingNo}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	bookingNo := chi.URLParam(r, constant.RequestParamBookingNo)

	req := dto.UpdateBookingStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, bookingNo); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// AssignArtist assigns an active artist to a booking group.
// @Summary Assign an artist to a booking
// @Description Assign an active artist to every line item of a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingNo path string true "Booking Number"
// @Param request body dto.AssignArtistRequest true "Assign Artist Request"
// @Success 200 {object} response.Message "Artist assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingNo}/artist [put]
// @Security BearerAuth
func (handler *Handler) AssignArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignArtist")
	defer scope.End()

	bookingNo := chi.URLParam(r, constant.RequestParamBookingNo)

	req := dto.AssignArtistRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AssignArtist(ctx, req, bookingNo); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign artist")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Artist assigned successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Artist assigned successfully")
}

// AddService appends a new service line item to an existing booking group.
// @Summary Add a service to a booking
// @Description Append a service line item to an existing booking. The item inherits the booking's schedule and artist.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingNo path string true "Booking Number"
// @Param request body dto.AddServiceRequest true "Add Service Request"
// @Success 201 {object} response.Data[dto.AddServiceResponse] "Service added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 410 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingNo}/services [post]
// @Security BearerAuth
func (handler *Handler) AddService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddService")
	defer scope.End()

	bookingNo := chi.URLParam(r, constant.RequestParamBookingNo)

	req := dto.AddServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddService(ctx, req, bookingNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service added successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// TrackBooking exposes the public tracking view of a booking.
// @Summary Track a booking
// @Description Public tracking endpoint. Returns service names and statuses without customer details.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingNo path string true "Booking Number"
// @Success 200 {object} response.Data[dto.TrackBookingResponse] "Tracking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/track/{bookingNo} [get]
func (handler *Handler) TrackBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrackBooking")
	defer scope.End()

	bookingNo := chi.URLParam(r, constant.RequestParamBookingNo)

	res, err := handler.service.Track(ctx, bookingNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to track booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// buildFilters assembles the booking list filters from query parameters.
// Members are always restricted to bookings they created.
func (handler *Handler) buildFilters(r *http.Request) gDto.FilterGroup {
	ctx := r.Context()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleMember {
		userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCreatedBy,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	// Booking numbers match by prefix so a "2609" search covers a whole month.
	if value := r.URL.Query().Get(model.FieldBookingNo); value != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingNo,
			Operator: gDto.FilterOperatorPrefix,
			Value:    value,
			Table:    model.TableName,
		})
	}

	for _, field := range []string{model.FieldStatus, model.FieldBookingDate, model.FieldArtistID} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	return filterGroup
}
