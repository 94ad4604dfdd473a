package entities_test

import (
	"testing"

	"github.com/webshop-oms/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staff = entities.Actor{Role: entities.RoleStaff, ID: "staff-1"}

func TestApplyTransition(t *testing.T) {
	testCases := []struct {
		name    string
		order   entities.Order
		target  entities.Status
		actor   entities.Actor
		reason  string
		wantErr error
	}{
		{
			name:   "pending to confirmed",
			order:  entities.Order{ID: "1", Status: entities.StatusPending},
			target: entities.StatusConfirmed,
			actor:  staff,
		},
		{
			name:   "pending to cancelled with reason",
			order:  entities.Order{ID: "1", Status: entities.StatusPending},
			target: entities.StatusCancelled,
			actor:  staff,
			reason: "out of stock",
		},
		{
			name:    "cancel without reason",
			order:   entities.Order{ID: "1", Status: entities.StatusPending},
			target:  entities.StatusCancelled,
			actor:   staff,
			wantErr: entities.ErrMissingReason,
		},
		{
			name:    "return without reason",
			order:   entities.Order{ID: "1", Status: entities.StatusDelivered},
			target:  entities.StatusReturned,
			actor:   staff,
			wantErr: entities.ErrMissingReason,
		},
		{
			name:    "delivered cannot be cancelled",
			order:   entities.Order{ID: "1", Status: entities.StatusDelivered},
			target:  entities.StatusCancelled,
			actor:   staff,
			reason:  "customer asked",
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:    "skipping a stage is illegal",
			order:   entities.Order{ID: "1", Status: entities.StatusPending},
			target:  entities.StatusShipping,
			actor:   staff,
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:    "cancelled is terminal",
			order:   entities.Order{ID: "1", Status: entities.StatusCancelled},
			target:  entities.StatusConfirmed,
			actor:   staff,
			wantErr: entities.ErrTerminalState,
		},
		{
			name:    "refunded is terminal",
			order:   entities.Order{ID: "1", Status: entities.StatusRefunded},
			target:  entities.StatusCancelled,
			actor:   staff,
			reason:  "whatever",
			wantErr: entities.ErrTerminalState,
		},
		{
			name:    "customer may not apply transitions",
			order:   entities.Order{ID: "1", Status: entities.StatusPending},
			target:  entities.StatusCancelled,
			actor:   entities.Actor{Role: entities.RoleCustomer, ID: "cust-1"},
			reason:  "changed my mind",
			wantErr: entities.ErrForbidden,
		},
		{
			name:    "unknown target status",
			order:   entities.Order{ID: "1", Status: entities.StatusPending},
			target:  entities.Status("shipped"),
			actor:   staff,
			wantErr: entities.ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.order
			next, err := entities.ApplyTransition(tc.order, tc.target, tc.actor, tc.reason)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				// the input copy is never mutated
				assert.Equal(t, before, tc.order)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.target, next.Status)
			assert.Equal(t, tc.actor.ID, next.ResolvedBy)
			if tc.reason != "" {
				require.NotNil(t, next.CancelReason)
				assert.Equal(t, entities.ReasonOriginStaff, next.CancelReason.Origin)
				assert.Equal(t, tc.reason, next.CancelReason.Text)
			}
		})
	}
}

func TestApplyTransition_StaffReasonSupersedesCustomerRequest(t *testing.T) {
	order := entities.Order{
		ID:     "1",
		Status: entities.StatusConfirmed,
		CancelReason: &entities.CancelReason{
			Origin:   entities.ReasonOriginCustomer,
			Category: entities.CancelCategoryOther,
			Text:     "Đổi ý",
		},
	}

	next, err := entities.ApplyTransition(order, entities.StatusCancelled, staff, "Đổi ý")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCancelled, next.Status)
	assert.Equal(t, entities.ReasonOriginStaff, next.CancelReason.Origin)
	assert.Equal(t, "Đổi ý", next.CancelReason.Text)

	// no way out of cancelled
	_, err = entities.ApplyTransition(next, entities.StatusConfirmed, staff, "")
	assert.ErrorIs(t, err, entities.ErrTerminalState)
}

func TestApplyTransition_AdvanceLeavesPendingRequestStale(t *testing.T) {
	order := entities.Order{
		ID:     "1",
		Status: entities.StatusConfirmed,
		CancelReason: &entities.CancelReason{
			Origin:   entities.ReasonOriginCustomer,
			Category: entities.CancelCategoryChangedMind,
		},
	}

	// advancing normally is the implicit denial: the request stays recorded
	// but is ignored once the status moves past confirmed
	next, err := entities.ApplyTransition(order, entities.StatusProcessing, staff, "")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusProcessing, next.Status)
	assert.Equal(t, entities.ReasonOriginCustomer, next.CancelReason.Origin)
}

func TestRequestCancellation(t *testing.T) {
	testCases := []struct {
		name     string
		status   entities.Status
		category string
		text     string
		wantErr  error
	}{
		{name: "pending", status: entities.StatusPending, category: entities.CancelCategoryChangedMind},
		{name: "confirmed", status: entities.StatusConfirmed, category: entities.CancelCategoryDeliveryTooSlow},
		{name: "other with text", status: entities.StatusPending, category: entities.CancelCategoryOther, text: "Đổi ý"},
		{name: "other without text", status: entities.StatusPending, category: entities.CancelCategoryOther, wantErr: entities.ErrMissingReason},
		{name: "processing", status: entities.StatusProcessing, category: entities.CancelCategoryChangedMind, wantErr: entities.ErrNotCancellable},
		{name: "shipping", status: entities.StatusShipping, category: entities.CancelCategoryChangedMind, wantErr: entities.ErrNotCancellable},
		{name: "delivered", status: entities.StatusDelivered, category: entities.CancelCategoryChangedMind, wantErr: entities.ErrNotCancellable},
		{name: "cancelled", status: entities.StatusCancelled, category: entities.CancelCategoryChangedMind, wantErr: entities.ErrNotCancellable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := entities.Order{ID: "1", Status: tc.status}
			next, err := entities.RequestCancellation(order, tc.category, tc.text)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.status, next.Status, "status never changes in phase one")
			require.NotNil(t, next.CancelReason)
			assert.Equal(t, entities.ReasonOriginCustomer, next.CancelReason.Origin)
			assert.Equal(t, tc.category, next.CancelReason.Category)
			assert.Equal(t, tc.text, next.CancelReason.Text)
		})
	}
}

func TestRequestCancellation_SecondRequestOverwrites(t *testing.T) {
	order := entities.Order{ID: "1", Status: entities.StatusPending}

	first, err := entities.RequestCancellation(order, entities.CancelCategoryChangedMind, "")
	require.NoError(t, err)

	second, err := entities.RequestCancellation(first, entities.CancelCategoryOther, "Đổi ý")
	require.NoError(t, err)

	require.NotNil(t, second.CancelReason)
	assert.Equal(t, entities.CancelCategoryOther, second.CancelReason.Category)
	assert.Equal(t, "Đổi ý", second.CancelReason.Text)
}
