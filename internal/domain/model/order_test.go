package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusProcessing,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
		model.OrderStatusCancelled,
	} {
		assert.True(t, s.IsValid(), "status %s", s)
	}

	assert.False(t, model.OrderStatus("refunded").IsValid())
	assert.False(t, model.OrderStatus("").IsValid())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.OrderStatus
		to   model.OrderStatus
		want bool
	}{
		{"pending to processing", model.OrderStatusPending, model.OrderStatusProcessing, true},
		{"pending to cancelled", model.OrderStatusPending, model.OrderStatusCancelled, true},
		{"pending skips to shipped", model.OrderStatusPending, model.OrderStatusShipped, false},
		{"processing to shipped", model.OrderStatusProcessing, model.OrderStatusShipped, true},
		{"processing to cancelled", model.OrderStatusProcessing, model.OrderStatusCancelled, true},
		{"processing back to pending", model.OrderStatusProcessing, model.OrderStatusPending, false},
		{"shipped to delivered", model.OrderStatusShipped, model.OrderStatusDelivered, true},
		{"shipped cannot cancel", model.OrderStatusShipped, model.OrderStatusCancelled, false},
		{"delivered is terminal", model.OrderStatusDelivered, model.OrderStatusProcessing, false},
		{"cancelled is terminal", model.OrderStatusCancelled, model.OrderStatusPending, false},
		{"same status is not a transition", model.OrderStatusPending, model.OrderStatusPending, false},
		{"unknown target", model.OrderStatusPending, model.OrderStatus("refunded"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
