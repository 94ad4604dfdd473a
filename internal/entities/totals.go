package entities

// Totals are always derived from line items and order-level adjustments,
// never stored as an independent source of truth.
type Totals struct {
	Subtotal          int64
	LineDiscountTotal int64
	GrandTotal        int64
}

// ComputeTotals is pure and status-independent: the same function serves
// display, cancellation summaries and audits. The grand total is floored at
// zero so a malformed discount never propagates as a negative amount.
func ComputeTotals(items []LineItem, orderDiscount, shippingFee int64) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.UnitPrice * int64(it.Quantity)
		t.LineDiscountTotal += it.LineDiscount
	}

	t.GrandTotal = t.Subtotal - t.LineDiscountTotal - orderDiscount + shippingFee
	if t.GrandTotal < 0 {
		t.GrandTotal = 0
	}
	return t
}

func (o Order) Totals() Totals {
	return ComputeTotals(o.Items, o.OrderDiscount, o.ShippingFee)
}
