package model

import (
	"time"

	"github.com/anupam2nd/mylavanya-sub003/shared/model"
)

const (
	TableName  = "otps"
	EntityName = "otp"

	FieldID        = "id"
	FieldBookingNo = "booking_no"
	FieldPhone     = "phone"
	FieldCode      = "code"
	FieldPurpose   = "purpose"
	FieldExpiresAt = "expires_at"
	FieldVerified  = "verified"
)

// OTP purposes. Service-status codes gate booking transitions, the
// registration code gates phone-only signup.
const (
	PurposeStart        = "start"
	PurposeComplete     = "complete"
	PurposeAddService   = "add_service"
	PurposeRegistration = "registration"
)

type OTP struct {
	ID        string    `db:"id"`
	BookingNo string    `db:"booking_no"`
	Phone     string    `db:"phone"`
	Code      string    `db:"code"`
	Purpose   string    `db:"purpose"`
	ExpiresAt time.Time `db:"expires_at"`
	Verified  bool      `db:"verified"`
	model.Metadata
}

// Expired reports whether the code can no longer be verified at the given time.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
