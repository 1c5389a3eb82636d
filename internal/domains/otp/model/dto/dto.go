package dto

type SendServiceOTPRequest struct {
	BookingNo string `json:"booking_no" validate:"required"`
	Purpose   string `json:"purpose"    validate:"required,oneof=start complete add_service"`
}

type VerifyServiceOTPRequest struct {
	BookingNo string `json:"booking_no" validate:"required"`
	OTP       string `json:"otp"        validate:"required,numeric"`
	Purpose   string `json:"purpose"    validate:"required,oneof=start complete add_service"`
}

type SendRegistrationOTPRequest struct {
	Phone string `json:"phone" validate:"required,max=20"`
}

type VerifyRegistrationOTPRequest struct {
	Phone string `json:"phone" validate:"required,max=20"`
	OTP   string `json:"otp"   validate:"required,numeric"`
}

type SendOTPResponse struct {
	BookingNo string `json:"booking_no,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Purpose   string `json:"purpose"`
	ExpiresAt string `json:"expires_at"`
}
