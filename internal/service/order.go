package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/webshop-oms/order-service/internal/entities"
	"github.com/webshop-oms/order-service/pkg/trm"
	"github.com/webshop-oms/order-service/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// PageSize is fixed for both customer and staff list views.
const PageSize = 20

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.ListFilter) ([]entities.Order, error)
	CountOrders(ctx context.Context, f entities.ListFilter) (int64, error)

	// Save operations are idempotent (ON CONFLICT DO NOTHING), so
	// redelivered messages are harmless.
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error

	UpdateStatus(ctx context.Context, upd entities.StatusUpdate) (bool, error)
	SetCancellationRequest(ctx context.Context, orderID string, reason entities.CancelReason) (bool, error)

	SaveTransition(ctx context.Context, rec entities.TransitionRecord) error
	ListTransitions(ctx context.Context, orderID string) ([]entities.TransitionRecord, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type EventProducer interface {
	PublishStatusChanged(ctx context.Context, e entities.StatusChangedEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	producer  EventProducer
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, producer EventProducer) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		producer:  producer,
	}
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// SaveOrder persists an order arriving from checkout. New orders always
// enter the lifecycle in PENDING.
func (s *orderService) SaveOrder(ctx context.Context, order entities.Order) error {
	if order.Status == "" {
		order.Status = entities.StatusPending
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}

			s.logger.Debug("order saved", "order_id", order.ID)
			return nil
		})
	}

	return utils.Retry(readRetry, fn)
}

// GetOrder is the single-order read path. Customers may only read their own
// orders; the ownership check runs on the fetched record, never on caller
// input alone.
func (s *orderService) GetOrder(ctx context.Context, actor entities.Actor, orderID string) (entities.Order, error) {
	if !actor.Role.Valid() {
		return entities.Order{}, entities.ErrForbidden
	}

	order, err := s.getCached(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if actor.Role == entities.RoleCustomer && order.CustomerID != actor.ID {
		return entities.Order{}, entities.ErrForbidden
	}

	return order, nil
}

// ListOrders scopes the filter by actor role: customers are pinned to their
// own orders and cannot free-text search; staff see everything. List and
// count run concurrently.
func (s *orderService) ListOrders(ctx context.Context, actor entities.Actor, f entities.ListFilter, page int) ([]entities.Order, int64, error) {
	if !actor.Role.Valid() {
		return nil, 0, entities.ErrForbidden
	}
	if actor.Role == entities.RoleCustomer {
		f.CustomerID = actor.ID
		f.Search = ""
	}

	if page < 1 {
		page = 1
	}
	f.Limit = PageSize
	f.Offset = (page - 1) * PageSize

	var (
		eg     errgroup.Group
		orders []entities.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, f)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountOrders(ctx, f)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// RequestCancellation is phase one of the cancellation handshake. The write
// is conditioned on the order still being cancellable at write time, so a
// concurrent staff transition cannot be overwritten.
func (s *orderService) RequestCancellation(ctx context.Context, actor entities.Actor, orderID, category, text string) (entities.Order, error) {
	if actor.Role != entities.RoleCustomer {
		return entities.Order{}, entities.ErrForbidden
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.CustomerID != actor.ID {
		return entities.Order{}, entities.ErrForbidden
	}

	next, err := entities.RequestCancellation(order, category, text)
	if err != nil {
		return entities.Order{}, err
	}

	ok, err := s.repo.SetCancellationRequest(ctx, orderID, *next.CancelReason)
	if err != nil {
		return entities.Order{}, err
	}
	if !ok {
		// lost the race against a staff transition
		if _, err := s.repo.GetOrderByID(ctx, orderID); err != nil {
			return entities.Order{}, err
		}
		return entities.Order{}, entities.ErrNotCancellable
	}

	s.cache.Delete(orderID)
	s.logger.Info("cancellation requested",
		slog.String("order_id", orderID),
		slog.String("customer_id", actor.ID),
		slog.String("category", category),
	)
	return next, nil
}

// ApplyTransition moves an order to an adjacent status. The status CAS and
// the audit row commit in one transaction; on a lost race the caller gets
// ErrConflict and must re-read.
func (s *orderService) ApplyTransition(ctx context.Context, actor entities.Actor, orderID string, target entities.Status, reason string) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	next, err := entities.ApplyTransition(order, target, actor, reason)
	if err != nil {
		return entities.Order{}, err
	}

	upd := entities.StatusUpdate{
		OrderID:    orderID,
		From:       order.Status,
		To:         target,
		ResolvedBy: actor.ID,
	}
	if reason != "" {
		upd.Reason = next.CancelReason
	}

	rec := entities.TransitionRecord{
		OrderID:   orderID,
		From:      order.Status,
		To:        target,
		ActorRole: actor.Role,
		ActorID:   actor.ID,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		ok, err := s.repo.UpdateStatus(ctx, upd)
		if err != nil {
			return err
		}
		if !ok {
			if _, err := s.repo.GetOrderByID(ctx, orderID); err != nil {
				return err
			}
			return entities.ErrConflict
		}
		return s.repo.SaveTransition(ctx, rec)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID)

	evt := entities.StatusChangedEvent{
		OrderID:    orderID,
		From:       order.Status,
		To:         target,
		ActorID:    actor.ID,
		Reason:     reason,
		OccurredAt: rec.CreatedAt,
	}
	if err := s.producer.PublishStatusChanged(ctx, evt); err != nil {
		// the transition is already committed, downstream consumers catch up
		// from the audit log, so this is log-and-continue
		s.logger.ErrorContext(ctx, "failed to publish status change", slog.Any("error", err))
	}

	s.logger.Info("transition applied",
		slog.String("order_id", orderID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(target)),
		slog.String("staff_id", actor.ID),
	)
	return next, nil
}

// GetTransitions returns the audit trail of an order, staff only.
func (s *orderService) GetTransitions(ctx context.Context, actor entities.Actor, orderID string) ([]entities.TransitionRecord, error) {
	if actor.Role != entities.RoleStaff {
		return nil, entities.ErrForbidden
	}

	if _, err := s.repo.GetOrderByID(ctx, orderID); err != nil {
		return nil, err
	}

	return s.repo.ListTransitions(ctx, orderID)
}

// WarmUpCache preloads the most recent orders on startup.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.ListOrders(ctx, entities.ListFilter{Limit: count})
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(order.ID, data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) getCached(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, entities.ErrInvalidOrder
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
		return order, nil
	}
	s.cache.Set(orderID, data)
	return order, nil
}
