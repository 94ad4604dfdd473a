package entities

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipping   Status = "shipping"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusReturned   Status = "returned"
	StatusRefunded   Status = "refunded"
)

// transitions is the single source of truth for status legality.
// An empty adjacency set means the status is terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipping, StatusCancelled},
	StatusShipping:   {StatusDelivered, StatusCancelled},
	StatusDelivered:  {StatusReturned},
	StatusReturned:   {StatusRefunded, StatusCancelled},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown order status: %q", s)
	}
	return status, nil
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// LegalNextStatuses returns a copy of the adjacency set, so callers
// (including presentation layers) never re-derive the edge list themselves.
func LegalNextStatuses(s Status) []Status {
	next := make([]Status, len(transitions[s]))
	copy(next, transitions[s])
	return next
}

func IsTerminal(s Status) bool {
	return s.Valid() && len(transitions[s]) == 0
}

// Cancellable reports whether a customer may still request cancellation.
// Past CONFIRMED the order may already be in fulfillment.
func Cancellable(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// reasonRequired: cancelling or returning an order must be explained.
func reasonRequired(target Status) bool {
	return target == StatusCancelled || target == StatusReturned
}
