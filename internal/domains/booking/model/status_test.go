package model

import "testing"

func TestCanSendOTP(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusPending, true},
		{StatusApprove, true},
		{StatusBeauticianAssigned, true},
		{StatusAssignedLower, true},
		{StatusConfirm, false},
		{StatusServiceStarted, false},
		{StatusDone, false},
		{StatusCancelled, false},
		{"unknown", false},
	}

	for _, tt := range tests {
		if got := CanSendOTP(tt.status); got != tt.want {
			t.Errorf("CanSendOTP(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCanComplete(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusConfirm, true},
		{StatusOnTheWay, true},
		{StatusServiceStarted, true},
		{StatusPending, false},
		{StatusApprove, false},
		{StatusBeauticianAssigned, false},
		{StatusDone, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		if got := CanComplete(tt.status); got != tt.want {
			t.Errorf("CanComplete(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRequiresArtist(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusBeauticianAssigned, true},
		{StatusAssignedLower, true},
		{StatusPending, false},
		{StatusConfirm, false},
		{StatusDone, false},
	}

	for _, tt := range tests {
		if got := RequiresArtist(tt.status); got != tt.want {
			t.Errorf("RequiresArtist(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusDone, true},
		{StatusCancelled, true},
		{StatusPending, false},
		{StatusServiceStarted, false},
		{StatusOnTheWay, false},
	}

	for _, tt := range tests {
		if got := IsTerminal(tt.status); got != tt.want {
			t.Errorf("IsTerminal(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
