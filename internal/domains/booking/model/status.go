package model

import "slices"

// Status codes observed in bookings. The status column is free text matched
// against the status catalog, not a closed enum; these are the codes the
// lifecycle rules care about.
const (
	StatusPending            = "pending"
	StatusApprove            = "approve"
	StatusBeauticianAssigned = "Beautician_assigned"
	StatusAssignedLower      = "beautician_assigned"
	StatusConfirm            = "confirm"
	StatusOnTheWay           = "ontheway"
	StatusServiceStarted     = "service_started"
	StatusDone               = "done"
	StatusCancelled          = "cancelled"
)

var sendOTPStatuses = []string{
	StatusBeauticianAssigned,
	StatusAssignedLower,
	StatusApprove,
	StatusPending,
}

var completeStatuses = []string{
	StatusConfirm,
	StatusServiceStarted,
	StatusOnTheWay,
}

// CanSendOTP reports whether the customer OTP may be issued for a booking
// in the given status.
func CanSendOTP(status string) bool {
	return slices.Contains(sendOTPStatuses, status)
}

// CanComplete reports whether a booking in the given status may be marked
// complete.
func CanComplete(status string) bool {
	return slices.Contains(completeStatuses, status)
}

// RequiresArtist reports whether the given status may only be entered with
// an artist already assigned.
func RequiresArtist(status string) bool {
	return status == StatusBeauticianAssigned || status == StatusAssignedLower
}

// IsTerminal reports whether no further transitions leave the given status.
func IsTerminal(status string) bool {
	return status == StatusDone || status == StatusCancelled
}
