package models_test

import (
	"testing"

	"github.com/husseinfaraj7/odv-sub000/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	cases := []struct {
		input    string
		expected models.OrderStatus
		wantErr  bool
	}{
		{"PENDING", models.StatusPending, false},
		{"pending", models.StatusPending, false},
		{"  Shipped  ", models.StatusShipped, false},
		{"cancelled", models.StatusCancelled, false},
		{"Delivered", models.StatusDelivered, false},
		{"", "", true},
		{"REFUNDED", "", true},
		{"SHIPPED EXTRA", "", true},
	}

	for _, tc := range cases {
		status, err := models.ParseOrderStatus(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.input)
		} else {
			assert.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.expected, status)
		}
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	// Non-terminal states accept any valid target status.
	assert.True(t, models.StatusPending.CanTransitionTo(models.StatusConfirmed))
	assert.True(t, models.StatusConfirmed.CanTransitionTo(models.StatusProcessing))
	assert.True(t, models.StatusProcessing.CanTransitionTo(models.StatusShipped))
	assert.True(t, models.StatusShipped.CanTransitionTo(models.StatusDelivered))
	assert.True(t, models.StatusPending.CanTransitionTo(models.StatusCancelled))
	assert.True(t, models.StatusShipped.CanTransitionTo(models.StatusCancelled))

	// Terminal states reject everything, including going backwards.
	assert.False(t, models.StatusDelivered.CanTransitionTo(models.StatusShipped))
	assert.False(t, models.StatusDelivered.CanTransitionTo(models.StatusPending))
	assert.False(t, models.StatusDelivered.CanTransitionTo(models.StatusCancelled))
	assert.False(t, models.StatusCancelled.CanTransitionTo(models.StatusPending))
	assert.False(t, models.StatusCancelled.CanTransitionTo(models.StatusConfirmed))
	assert.False(t, models.StatusCancelled.CanTransitionTo(models.StatusDelivered))
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, models.StatusDelivered.IsTerminal())
	assert.True(t, models.StatusCancelled.IsTerminal())
	assert.False(t, models.StatusPending.IsTerminal())
	assert.False(t, models.StatusConfirmed.IsTerminal())
	assert.False(t, models.StatusProcessing.IsTerminal())
	assert.False(t, models.StatusShipped.IsTerminal())
}
