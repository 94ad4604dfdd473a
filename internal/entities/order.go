package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleStaff
}

// Actor is the authenticated caller, threaded explicitly into every core
// operation. Identity verification itself happens at the gateway.
type Actor struct {
	Role Role
	ID   string
	Name string
}

type ReasonOrigin string

const (
	ReasonOriginCustomer ReasonOrigin = "customer"
	ReasonOriginStaff    ReasonOrigin = "staff"
)

// Customer-selectable cancellation categories. CancelCategoryOther
// requires free text.
const (
	CancelCategoryChangedMind     = "changed_mind"
	CancelCategoryFoundBetter     = "found_better_price"
	CancelCategoryDeliveryTooSlow = "delivery_too_slow"
	CancelCategoryOrderedMistake  = "ordered_by_mistake"
	CancelCategoryOther           = "other"
)

// CancelReason keeps provenance as an explicit field instead of encoding it
// into the reason text. Category is set only for customer requests.
type CancelReason struct {
	Origin   ReasonOrigin
	Category string
	Text     string
}

type LineItem struct {
	VariantID    string
	Quantity     int
	UnitPrice    int64
	LineDiscount int64
}

type Order struct {
	ID           string
	CustomerID   string
	CustomerName string
	Status       Status

	// Items are fixed at checkout, only status and cancellation
	// metadata change afterwards.
	Items         []LineItem
	OrderDiscount int64
	ShippingFee   int64

	CancelReason *CancelReason
	ResolvedBy   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusUpdate describes one compare-and-swap write: the new status is
// persisted only if the stored status still equals From. A nil Reason leaves
// the stored cancellation reason untouched.
type StatusUpdate struct {
	OrderID    string
	From       Status
	To         Status
	Reason     *CancelReason
	ResolvedBy string
}

// TransitionRecord is one audit entry: who moved the order and why.
type TransitionRecord struct {
	OrderID   string
	From      Status
	To        Status
	ActorRole Role
	ActorID   string
	Reason    string
	CreatedAt time.Time
}

// StatusChangedEvent is published after every committed transition.
type StatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	From       Status    `json:"from"`
	To         Status    `json:"to"`
	ActorID    string    `json:"actor_id"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(LineItem{})
	gob.Register(CancelReason{})
}
