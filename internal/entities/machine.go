package entities

// ApplyTransition validates a single status move and returns the next order
// state. It operates on a value copy: on error the stored order is untouched.
//
// Only staff may apply transitions; customers signal intent through
// RequestCancellation and never mutate status themselves.
func ApplyTransition(order Order, target Status, actor Actor, reason string) (Order, error) {
	if actor.Role != RoleStaff {
		return Order{}, ErrForbidden
	}
	if !target.Valid() {
		return Order{}, ErrIllegalTransition
	}
	if IsTerminal(order.Status) {
		return Order{}, ErrTerminalState
	}
	if !CanTransition(order.Status, target) {
		return Order{}, ErrIllegalTransition
	}
	if reason == "" && reasonRequired(target) {
		return Order{}, ErrMissingReason
	}

	order.Status = target
	if reason != "" {
		// Staff text supersedes any pending customer request.
		order.CancelReason = &CancelReason{Origin: ReasonOriginStaff, Text: reason}
	}
	order.ResolvedBy = actor.ID
	return order, nil
}

// RequestCancellation is phase one of the cancellation handshake: it records
// customer intent without touching status. Repeated requests overwrite the
// previous one, there is never more than one pending request per order.
func RequestCancellation(order Order, category, text string) (Order, error) {
	if !Cancellable(order.Status) {
		return Order{}, ErrNotCancellable
	}
	if category == CancelCategoryOther && text == "" {
		return Order{}, ErrMissingReason
	}

	order.CancelReason = &CancelReason{
		Origin:   ReasonOriginCustomer,
		Category: category,
		Text:     text,
	}
	return order, nil
}
