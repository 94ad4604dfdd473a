package entities_test

import (
	"testing"

	"github.com/webshop-oms/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	testCases := []struct {
		name          string
		items         []entities.LineItem
		orderDiscount int64
		shippingFee   int64
		want          entities.Totals
	}{
		{
			name: "two lines with order discount and shipping",
			items: []entities.LineItem{
				{UnitPrice: 150000, Quantity: 2},
				{UnitPrice: 250000, Quantity: 1},
			},
			orderDiscount: 50000,
			shippingFee:   30000,
			want:          entities.Totals{Subtotal: 550000, LineDiscountTotal: 0, GrandTotal: 530000},
		},
		{
			name: "line discounts accumulate",
			items: []entities.LineItem{
				{UnitPrice: 100000, Quantity: 1, LineDiscount: 10000},
				{UnitPrice: 200000, Quantity: 2, LineDiscount: 40000},
			},
			want: entities.Totals{Subtotal: 500000, LineDiscountTotal: 50000, GrandTotal: 450000},
		},
		{
			name: "discounts exceeding subtotal clamp to zero",
			items: []entities.LineItem{
				{UnitPrice: 10000, Quantity: 1},
			},
			orderDiscount: 999999,
			shippingFee:   5000,
			want:          entities.Totals{Subtotal: 10000, LineDiscountTotal: 0, GrandTotal: 0},
		},
		{
			name: "no items",
			want: entities.Totals{},
		},
		{
			name:        "shipping only",
			shippingFee: 30000,
			want:        entities.Totals{GrandTotal: 30000},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := entities.ComputeTotals(tc.items, tc.orderDiscount, tc.shippingFee)
			assert.Equal(t, tc.want, got)

			// pure: same inputs, same outputs
			assert.Equal(t, got, entities.ComputeTotals(tc.items, tc.orderDiscount, tc.shippingFee))
		})
	}
}

func TestOrderTotals(t *testing.T) {
	order := entities.Order{
		Items: []entities.LineItem{
			{UnitPrice: 150000, Quantity: 2},
			{UnitPrice: 250000, Quantity: 1},
		},
		OrderDiscount: 50000,
		ShippingFee:   30000,
	}

	// identical result regardless of status
	order.Status = entities.StatusPending
	pending := order.Totals()
	order.Status = entities.StatusCancelled
	cancelled := order.Totals()

	assert.Equal(t, pending, cancelled)
	assert.Equal(t, int64(530000), pending.GrandTotal)
}
