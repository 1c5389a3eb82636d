package otp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	authSvc "github.com/anupam2nd/mylavanya-sub003/internal/domains/auth/service"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/service"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	"github.com/anupam2nd/mylavanya-sub003/shared/validator"
	"github.com/anupam2nd/mylavanya-sub003/transport/http/response"
)

type Handler struct {
	service service.OTP
	auth    authSvc.Auth
	otel    otel.Otel
}

func New(service service.OTP, auth authSvc.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/otp", func(r chi.Router) {
		r.Post("/send", handler.SendServiceOTP)
		r.Post("/verify", handler.VerifyServiceOTP)
		r.Post("/registration/send", handler.SendRegistrationOTP)
		r.Post("/registration/verify", handler.VerifyRegistrationOTP)
	})
}

// SendServiceOTP issues an OTP gating a booking status transition.
// @Summary Send a service OTP
// @Description Issue an OTP for starting or completing a service, or for adding a service to a booking.
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body dto.SendServiceOTPRequest true "Send OTP Request"
// @Success 200 {object} response.Data[dto.SendOTPResponse] "OTP sent successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/otp/send [post]
// @Security BearerAuth
func (handler *Handler) SendServiceOTP(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendServiceOTP")
	defer scope.End()

	req := dto.SendServiceOTPRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SendServiceOTP(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send service OTP")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service OTP sent successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyServiceOTP consumes an OTP and applies the gated status transition.
// @Summary Verify a service OTP
// @Description Verify an OTP and move the booking to the corresponding status.
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body dto.VerifyServiceOTPRequest true "Verify OTP Request"
// @Success 200 {object} response.Message "OTP verified successfully"
// @Failure 400 {object} response.Error
// @Failure 410 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/otp/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyServiceOTP(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyServiceOTP")
	defer scope.End()

	req := dto.VerifyServiceOTPRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.VerifyServiceOTP(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify service OTP")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service OTP verified successfully")

	response.WithMessage(w, http.StatusOK, "OTP verified successfully")
}

// SendRegistrationOTP issues an OTP for phone verification during signup.
// @Summary Send a registration OTP
// @Description Issue an OTP to verify a phone number during member registration.
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body dto.SendRegistrationOTPRequest true "Send Registration OTP Request"
// @Success 200 {object} response.Data[dto.SendOTPResponse] "OTP sent successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/otp/registration/send [post]
func (handler *Handler) SendRegistrationOTP(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendRegistrationOTP")
	defer scope.End()

	req := dto.SendRegistrationOTPRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SendRegistrationOTP(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send registration OTP")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Registration OTP sent successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyRegistrationOTP consumes a registration OTP and marks the phone verified.
// @Summary Verify a registration OTP
// @Description Verify the OTP sent to a phone number and mark the member account as verified.
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body dto.VerifyRegistrationOTPRequest true "Verify Registration OTP Request"
// @Success 200 {object} response.Message "Phone verified successfully"
// @Failure 400 {object} response.Error
// @Failure 410 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/otp/registration/verify [post]
func (handler *Handler) VerifyRegistrationOTP(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyRegistrationOTP")
	defer scope.End()

	req := dto.VerifyRegistrationOTPRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.VerifyRegistrationOTP(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify registration OTP")

		response.WithError(w, err)

		return
	}

	if err := handler.auth.MarkPhoneVerified(ctx, req.Phone); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark phone as verified")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Registration OTP verified successfully")

	response.WithMessage(w, http.StatusOK, "Phone verified successfully")
}
