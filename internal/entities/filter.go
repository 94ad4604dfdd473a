package entities

import "time"

// ListFilter scopes the read path. CustomerID is forced by the service for
// customer actors; Search is honored only for staff.
type ListFilter struct {
	CustomerID string
	Status     Status    // empty means any
	From       time.Time // zero means unbounded
	To         time.Time // inclusive
	Search     string    // matches order id and customer name

	Limit  int
	Offset int
}
