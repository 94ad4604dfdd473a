package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/webshop-oms/order-service/internal/entities"
	"github.com/webshop-oms/order-service/internal/middleware"
	"github.com/webshop-oms/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	GetOrder(ctx context.Context, actor entities.Actor, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, actor entities.Actor, f entities.ListFilter, page int) ([]entities.Order, int64, error)
	RequestCancellation(ctx context.Context, actor entities.Actor, orderID, category, text string) (entities.Order, error)
	ApplyTransition(ctx context.Context, actor entities.Actor, orderID string, target entities.Status, reason string) (entities.Order, error)
	GetTransitions(ctx context.Context, actor entities.Actor, orderID string) ([]entities.TransitionRecord, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/{order_id}", h.GetOrder)
		r.Get("/{order_id}/transitions", h.LegalTransitions)
		r.Get("/{order_id}/history", h.History)
		r.Post("/{order_id}/cancel-request", h.RequestCancellation)
		r.Post("/{order_id}/transition", h.ApplyTransition)
	})
}

// ListOrders возвращает страницу заказов.
// @Summary      Список заказов
// @Description  Покупатель видит только свои заказы, сотрудник — все. Фильтры: статус, диапазон дат, поиск (только для сотрудников).
// @Tags         orders
// @Param        status     query  string  false  "Фильтр по статусу"
// @Param        date_from  query  string  false  "Начало диапазона (RFC3339 или YYYY-MM-DD)"
// @Param        date_to    query  string  false  "Конец диапазона, включительно"
// @Param        search     query  string  false  "Поиск по ID заказа и имени покупателя"
// @Param        page       query  int     false  "Номер страницы"
// @Success      200  {object}  ListResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var f entities.ListFilter
	q := r.URL.Query()

	if raw := q.Get("status"); raw != "" {
		status, err := entities.ParseStatus(raw)
		if err != nil {
			utils.WriteError(w, "unknown status", http.StatusBadRequest)
			return
		}
		f.Status = status
	}

	var err error
	if f.From, err = parseDate(q.Get("date_from"), false); err != nil {
		utils.WriteError(w, "invalid date_from", http.StatusBadRequest)
		return
	}
	if f.To, err = parseDate(q.Get("date_to"), true); err != nil {
		utils.WriteError(w, "invalid date_to", http.StatusBadRequest)
		return
	}
	f.Search = q.Get("search")

	page := 1
	if raw := q.Get("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil || page < 1 {
			utils.WriteError(w, "invalid page", http.StatusBadRequest)
			return
		}
	}

	orders, total, err := h.svc.ListOrders(ctx, actor, f, page)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	resp := ListResponse{
		Orders:   make([]Order, 0, len(orders)),
		Total:    total,
		Page:     page,
		PageSize: 20,
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, OrderEntityToJSON(o))
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	order, err := h.svc.GetOrder(ctx, actor, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// LegalTransitions возвращает допустимые следующие статусы заказа.
// Присылается из единственной авторитетной таблицы переходов, чтобы
// клиенты не дублировали список рёбер.
// @Summary      Допустимые переходы
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      200  {object}  NextStatusesResponse
// @Router       /orders/{order_id}/transitions [get]
func (h *HTTPHandler) LegalTransitions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	order, err := h.svc.GetOrder(ctx, actor, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	next := entities.LegalNextStatuses(order.Status)
	resp := NextStatusesResponse{
		Current: string(order.Status),
		Next:    make([]string, 0, len(next)),
	}
	for _, s := range next {
		resp.Next = append(resp.Next, string(s))
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// History возвращает журнал переходов заказа (только для сотрудников).
// @Summary      История переходов
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      200  {array}  TransitionEntry
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/history [get]
func (h *HTTPHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	records, err := h.svc.GetTransitions(ctx, actor, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	resp := make([]TransitionEntry, 0, len(records))
	for _, rec := range records {
		resp = append(resp, TransitionEntityToJSON(rec))
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// RequestCancellation фиксирует намерение покупателя отменить заказ.
// Статус заказа при этом не меняется.
// @Summary      Запрос на отмену
// @Tags         orders
// @Param        order_id  path  string         true  "Идентификатор заказа"
// @Param        body      body  CancelRequest  true  "Категория и причина"
// @Success      200  {object}  Order
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже нельзя отменить"
// @Router       /orders/{order_id}/cancel-request [post]
func (h *HTTPHandler) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	var req CancelRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.RequestCancellation(ctx, actor, orderID, req.Category, req.Reason)
	if err != nil {
		cancellationRequestsRejected.Inc()
		h.writeDomainError(ctx, w, err)
		return
	}

	cancellationRequests.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ApplyTransition переводит заказ в соседний статус (только для сотрудников).
// @Summary      Применить переход
// @Tags         orders
// @Param        order_id  path  string             true  "Идентификатор заказа"
// @Param        body      body  TransitionRequest  true  "Целевой статус и причина"
// @Success      200  {object}  Order
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход или конфликт версий"
// @Failure      422  {object}  utils.ErrorResponse "Не указана причина"
// @Router       /orders/{order_id}/transition [post]
func (h *HTTPHandler) ApplyTransition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	var req TransitionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target, err := entities.ParseStatus(req.TargetStatus)
	if err != nil {
		utils.WriteError(w, "unknown target status", http.StatusBadRequest)
		return
	}

	order, err := h.svc.ApplyTransition(ctx, actor, orderID, target, req.Reason)
	if err != nil {
		transitionsRejected.WithLabelValues(rejectionLabel(err)).Inc()
		h.writeDomainError(ctx, w, err)
		return
	}

	transitionsApplied.WithLabelValues(string(target)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) actor(w http.ResponseWriter, r *http.Request) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return entities.Actor{}, false
	}
	return actor, true
}

func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrNotCancellable):
		utils.WriteError(w, "this order can no longer be cancelled", http.StatusConflict)
	case errors.Is(err, entities.ErrTerminalState):
		utils.WriteError(w, "order is in a terminal state", http.StatusConflict)
	case errors.Is(err, entities.ErrIllegalTransition):
		utils.WriteError(w, "illegal status transition", http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		utils.WriteError(w, "order was modified concurrently, please retry", http.StatusConflict)
	case errors.Is(err, entities.ErrMissingReason):
		utils.WriteError(w, "reason is required", http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func rejectionLabel(err error) string {
	switch {
	case errors.Is(err, entities.ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, entities.ErrTerminalState):
		return "terminal_state"
	case errors.Is(err, entities.ErrMissingReason):
		return "missing_reason"
	case errors.Is(err, entities.ErrConflict):
		return "conflict"
	case errors.Is(err, entities.ErrForbidden):
		return "forbidden"
	case errors.Is(err, entities.ErrOrderNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// parseDate accepts RFC3339 or a bare date. A bare end date covers the whole
// day, keeping the range inclusive.
func parseDate(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
