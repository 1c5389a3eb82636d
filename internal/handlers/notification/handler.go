package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/service"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/transport/http/response"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", handler.GetNotifications)
		r.Put("/{id}/read", handler.MarkNotificationRead)
	})
}

// GetNotifications lists the authenticated user's notifications.
// @Summary Get notifications
// @Description Retrieve the authenticated user's notifications with pagination.
// @Tags Notification
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param read query string false "Filter by read flag (true/false)"
// @Success 200 {object} response.Data[dto.GetNotificationsResponse] "List of notifications"
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}

	if read := r.URL.Query().Get(model.FieldRead); read != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRead,
			Operator: gDto.FilterOperatorEq,
			Value:    read == "true",
			Table:    model.TableName,
		})
	}

	notifications, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}

// MarkNotificationRead marks one of the user's notifications as read.
// @Summary Mark a notification as read
// @Description Mark one of the authenticated user's notifications as read.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Notification marked as read"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/{id}/read [put]
// @Security BearerAuth
func (handler *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkNotificationRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkRead(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification as read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notification marked as read")

	response.WithMessage(w, http.StatusOK, "Notification marked as read")
}
