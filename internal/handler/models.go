package handler

import (
	"time"

	"github.com/webshop-oms/order-service/internal/entities"

	"github.com/google/uuid"
)

// LineItem позиция заказа
type LineItem struct {
	VariantID    string `json:"variant_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	UnitPrice    int64  `json:"unit_price" validate:"gte=0"`
	LineDiscount int64  `json:"line_discount" validate:"gte=0"`
}

// CancelReason причина отмены с указанием источника
type CancelReason struct {
	Origin   string `json:"origin"`
	Category string `json:"category,omitempty"`
	Text     string `json:"text,omitempty"`
}

// Totals суммы заказа, всегда производные от позиций
type Totals struct {
	Subtotal          int64 `json:"subtotal"`
	LineDiscountTotal int64 `json:"line_discount_total"`
	GrandTotal        int64 `json:"grand_total"`
}

// Order представляет заказ
type Order struct {
	OrderID       string        `json:"order_id"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name,omitempty"`
	Status        string        `json:"status"`
	Items         []LineItem    `json:"items,omitempty"`
	OrderDiscount int64         `json:"order_discount"`
	ShippingFee   int64         `json:"shipping_fee"`
	Totals        Totals        `json:"totals"`
	CancelReason  *CancelReason `json:"cancel_reason,omitempty"`
	ResolvedBy    string        `json:"resolved_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// OrderCreated входящее сообщение о новом заказе из checkout
type OrderCreated struct {
	OrderID       string     `json:"order_id"`
	CustomerID    string     `json:"customer_id" validate:"required"`
	CustomerName  string     `json:"customer_name" validate:"required"`
	Items         []LineItem `json:"items" validate:"required,min=1,dive"`
	OrderDiscount int64      `json:"order_discount" validate:"gte=0"`
	ShippingFee   int64      `json:"shipping_fee" validate:"gte=0"`
	CreatedAt     int64      `json:"created_at"`
}

// CancelRequest запрос покупателя на отмену заказа
type CancelRequest struct {
	Category string `json:"category" validate:"required,oneof=changed_mind found_better_price delivery_too_slow ordered_by_mistake other"`
	Reason   string `json:"reason"`
}

// TransitionRequest запрос сотрудника на смену статуса
type TransitionRequest struct {
	TargetStatus string `json:"target_status" validate:"required"`
	Reason       string `json:"reason"`
}

// ListResponse страница заказов
type ListResponse struct {
	Orders   []Order `json:"orders"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

// NextStatusesResponse допустимые следующие статусы
type NextStatusesResponse struct {
	Current string   `json:"current"`
	Next    []string `json:"next"`
}

// TransitionEntry запись аудита переходов
type TransitionEntry struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	ActorRole string    `json:"actor_role"`
	ActorID   string    `json:"actor_id"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func LineItemEntityToJSON(i entities.LineItem) LineItem {
	return LineItem{
		VariantID:    i.VariantID,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice,
		LineDiscount: i.LineDiscount,
	}
}

func LineItemJSONToEntity(i LineItem) entities.LineItem {
	return entities.LineItem{
		VariantID:    i.VariantID,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice,
		LineDiscount: i.LineDiscount,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemEntityToJSON(it))
	}

	totals := o.Totals()

	resp := Order{
		OrderID:       o.ID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		Status:        string(o.Status),
		Items:         items,
		OrderDiscount: o.OrderDiscount,
		ShippingFee:   o.ShippingFee,
		Totals: Totals{
			Subtotal:          totals.Subtotal,
			LineDiscountTotal: totals.LineDiscountTotal,
			GrandTotal:        totals.GrandTotal,
		},
		ResolvedBy: o.ResolvedBy,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}

	if o.CancelReason != nil {
		resp.CancelReason = &CancelReason{
			Origin:   string(o.CancelReason.Origin),
			Category: o.CancelReason.Category,
			Text:     o.CancelReason.Text,
		}
	}

	return resp
}

func OrderCreatedToEntity(m OrderCreated) entities.Order {
	items := make([]entities.LineItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, LineItemJSONToEntity(it))
	}

	id := m.OrderID
	if id == "" {
		id = uuid.NewString()
	}

	createdAt := time.Now().UTC()
	if m.CreatedAt > 0 {
		createdAt = time.Unix(m.CreatedAt, 0).UTC()
	}

	return entities.Order{
		ID:            id,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		Status:        entities.StatusPending,
		Items:         items,
		OrderDiscount: m.OrderDiscount,
		ShippingFee:   m.ShippingFee,
		CreatedAt:     createdAt,
	}
}

func TransitionEntityToJSON(t entities.TransitionRecord) TransitionEntry {
	return TransitionEntry{
		From:      string(t.From),
		To:        string(t.To),
		ActorRole: string(t.ActorRole),
		ActorID:   t.ActorID,
		Reason:    t.Reason,
		CreatedAt: t.CreatedAt,
	}
}
