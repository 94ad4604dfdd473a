package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/webshop-oms/order-service/internal/entities"
	"github.com/webshop-oms/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_id", "customer_id", "customer_name", "status",
	"order_discount", "shipping_fee",
	"cancel_origin", "cancel_category", "cancel_reason",
	"resolved_by", "created_at", "updated_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsFor(ctx, []string{orderID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[orderID]), nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.ListFilter) ([]entities.Order, error) {
	b := r.applyFilter(r.qb.Select(orderColumns...).From("orders"), f).
		OrderBy("created_at DESC", "order_id")

	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args := b.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}

	itemsMap, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID]))
	}
	return result, nil
}

func (r *postgresRepo) CountOrders(ctx context.Context, f entities.ListFilter) (int64, error) {
	query, args := r.applyFilter(r.qb.Select("COUNT(*)").From("orders"), f).MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) applyFilter(b sq.SelectBuilder, f entities.ListFilter) sq.SelectBuilder {
	if f.CustomerID != "" {
		b = b.Where(sq.Eq{"customer_id": f.CustomerID})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": string(f.Status)})
	}
	if !f.From.IsZero() {
		b = b.Where(sq.GtOrEq{"created_at": f.From})
	}
	if !f.To.IsZero() {
		b = b.Where(sq.LtOrEq{"created_at": f.To})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"order_id": pattern},
			sq.ILike{"customer_name": pattern},
		})
	}
	return b
}

func (r *postgresRepo) itemsFor(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	query, args := r.qb.Select(
		"order_id", "position", "variant_id", "quantity", "unit_price", "line_discount").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}
	return itemsMap, nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_id", "customer_id", "customer_name", "status",
			"order_discount", "shipping_fee", "created_at", "updated_at",
		).
		Values(
			o.ID, o.CustomerID, o.CustomerName, string(o.Status),
			o.OrderDiscount, o.ShippingFee, o.CreatedAt, o.CreatedAt,
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "variant_id", "quantity", "unit_price", "line_discount").
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	for i, it := range items {
		q = q.Values(orderID, i, it.VariantID, it.Quantity, it.UnitPrice, it.LineDiscount)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

// UpdateStatus performs the optimistic compare-and-swap: the row is written
// only while its status still equals upd.From. The false return means the
// order moved (or vanished) concurrently and the caller must re-read.
func (r *postgresRepo) UpdateStatus(ctx context.Context, upd entities.StatusUpdate) (bool, error) {
	b := r.qb.Update("orders").
		Set("status", string(upd.To)).
		Set("resolved_by", upd.ResolvedBy).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"order_id": upd.OrderID, "status": string(upd.From)})

	if upd.Reason != nil {
		b = b.
			Set("cancel_origin", string(upd.Reason.Origin)).
			Set("cancel_category", nullString(upd.Reason.Category)).
			Set("cancel_reason", nullString(upd.Reason.Text))
	}

	query, args := b.MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected == 1, nil
}

// SetCancellationRequest writes the customer-tagged reason, conditioned on
// the order still being in a cancellable status.
func (r *postgresRepo) SetCancellationRequest(ctx context.Context, orderID string, reason entities.CancelReason) (bool, error) {
	cancellable := []string{string(entities.StatusPending), string(entities.StatusConfirmed)}

	query, args := r.qb.Update("orders").
		Set("cancel_origin", string(reason.Origin)).
		Set("cancel_category", nullString(reason.Category)).
		Set("cancel_reason", nullString(reason.Text)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"order_id": orderID, "status": cancellable}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to set cancellation request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected == 1, nil
}

func (r *postgresRepo) SaveTransition(ctx context.Context, rec entities.TransitionRecord) error {
	query, args := r.qb.Insert("order_transitions").
		Columns("order_id", "from_status", "to_status", "actor_role", "actor_id", "reason", "created_at").
		Values(
			rec.OrderID, string(rec.From), string(rec.To),
			string(rec.ActorRole), rec.ActorID, nullString(rec.Reason), rec.CreatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save transition: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListTransitions(ctx context.Context, orderID string) ([]entities.TransitionRecord, error) {
	query, args := r.qb.Select(
		"order_id", "from_status", "to_status", "actor_role", "actor_id", "reason", "created_at").
		From("order_transitions").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var rows []Transition
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select transitions: %w", err)
	}

	result := make([]entities.TransitionRecord, 0, len(rows))
	for _, t := range rows {
		result = append(result, TransitionToEntity(t))
	}
	return result, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
