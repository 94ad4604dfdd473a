package repo

import (
	"database/sql"
	"time"

	"github.com/webshop-oms/order-service/internal/entities"
)

type Order struct {
	OrderID        string         `db:"order_id"`
	CustomerID     string         `db:"customer_id"`
	CustomerName   string         `db:"customer_name"`
	Status         string         `db:"status"`
	OrderDiscount  int64          `db:"order_discount"`
	ShippingFee    int64          `db:"shipping_fee"`
	CancelOrigin   sql.NullString `db:"cancel_origin"`
	CancelCategory sql.NullString `db:"cancel_category"`
	CancelReason   sql.NullString `db:"cancel_reason"`
	ResolvedBy     sql.NullString `db:"resolved_by"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type Item struct {
	OrderID      string `db:"order_id"`
	Position     int    `db:"position"`
	VariantID    string `db:"variant_id"`
	Quantity     int    `db:"quantity"`
	UnitPrice    int64  `db:"unit_price"`
	LineDiscount int64  `db:"line_discount"`
}

type Transition struct {
	OrderID    string         `db:"order_id"`
	FromStatus string         `db:"from_status"`
	ToStatus   string         `db:"to_status"`
	ActorRole  string         `db:"actor_role"`
	ActorID    string         `db:"actor_id"`
	Reason     sql.NullString `db:"reason"`
	CreatedAt  time.Time      `db:"created_at"`
}

func ItemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		VariantID:    i.VariantID,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice,
		LineDiscount: i.LineDiscount,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:            o.OrderID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		Status:        entities.Status(o.Status),
		OrderDiscount: o.OrderDiscount,
		ShippingFee:   o.ShippingFee,
		ResolvedBy:    nullStringToString(o.ResolvedBy),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if o.CancelOrigin.Valid {
		order.CancelReason = &entities.CancelReason{
			Origin:   entities.ReasonOrigin(o.CancelOrigin.String),
			Category: nullStringToString(o.CancelCategory),
			Text:     nullStringToString(o.CancelReason),
		}
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func TransitionToEntity(t Transition) entities.TransitionRecord {
	return entities.TransitionRecord{
		OrderID:   t.OrderID,
		From:      entities.Status(t.FromStatus),
		To:        entities.Status(t.ToStatus),
		ActorRole: entities.Role(t.ActorRole),
		ActorID:   t.ActorID,
		Reason:    nullStringToString(t.Reason),
		CreatedAt: t.CreatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
