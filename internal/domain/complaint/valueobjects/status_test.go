package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "open", status: StatusOpen, want: true},
		{name: "under review", status: StatusUnderReview, want: true},
		{name: "resolved", status: StatusResolved, want: true},
		{name: "rejected", status: StatusRejected, want: true},
		{name: "unknown value", status: Status("ESCALATED"), want: false},
		{name: "lowercase is not valid", status: Status("open"), want: false},
		{name: "empty", status: Status(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusOpen.IsTerminal())
	assert.False(t, StatusUnderReview.IsTerminal())
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "open to under review", from: StatusOpen, to: StatusUnderReview, want: true},
		{name: "open to resolved", from: StatusOpen, to: StatusResolved, want: true},
		{name: "open to rejected", from: StatusOpen, to: StatusRejected, want: true},
		{name: "under review to resolved", from: StatusUnderReview, to: StatusResolved, want: true},
		{name: "under review to rejected", from: StatusUnderReview, to: StatusRejected, want: true},
		{name: "under review stays under review on reassignment", from: StatusUnderReview, to: StatusUnderReview, want: true},
		{name: "no backwards transition to open", from: StatusUnderReview, to: StatusOpen, want: false},
		{name: "resolved is terminal", from: StatusResolved, to: StatusUnderReview, want: false},
		{name: "rejected is terminal", from: StatusRejected, to: StatusUnderReview, want: false},
		{name: "terminal cannot re-stamp itself", from: StatusResolved, to: StatusResolved, want: false},
		{name: "no crossing between terminal states", from: StatusResolved, to: StatusRejected, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "UNDER_REVIEW", StatusUnderReview.String())
}
