package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/webshop-oms/order-service/internal/entities"
	"github.com/webshop-oms/order-service/internal/handler"
	mocks "github.com/webshop-oms/order-service/internal/handler/mocks"
	"github.com/webshop-oms/order-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	staff    = entities.Actor{Role: entities.RoleStaff, ID: "staff-1"}
	customer = entities.Actor{Role: entities.RoleCustomer, ID: "cust-1"}
)

func newTestRouter(t *testing.T) (*mocks.MockOrderService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	r.Use(middleware.Actor)
	h.Init(r)
	return svc, r
}

func asActor(req *http.Request, actor entities.Actor) *http.Request {
	req.Header.Set("X-Actor-Role", string(actor.Role))
	req.Header.Set("X-Actor-Id", actor.ID)
	return req
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	validOrder := entities.Order{ID: "123", CustomerID: "cust-1", Status: entities.StatusPending}

	testCases := []struct {
		name         string
		orderID      string
		actor        *entities.Actor
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "123",
			actor:   &customer,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, customer, "123").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"123"`,
		},
		{
			name:         "no actor headers",
			orderID:      "123",
			actor:        nil,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthorized"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			actor:   &staff,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, staff, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "foreign order",
			orderID: "456",
			actor:   &customer,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, customer, "456").
					Return(entities.Order{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"forbidden"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			if tc.actor != nil {
				req = asActor(req, *tc.actor)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	orders := []entities.Order{
		{ID: "1", CustomerID: "cust-1", Status: entities.StatusPending},
		{ID: "2", CustomerID: "cust-1", Status: entities.StatusConfirmed},
	}

	t.Run("success with filters", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			ListOrders(mock.Anything, staff, entities.ListFilter{Status: entities.StatusPending, Search: "linh"}, 2).
			Return(orders, int64(42), nil).Once()

		req := asActor(httptest.NewRequest(http.MethodGet, "/orders?status=pending&search=linh&page=2", nil), staff)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, float64(42), resp["total"])
		assert.Equal(t, float64(2), resp["page"])
		assert.Len(t, resp["orders"], 2)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, r := newTestRouter(t)

		req := asActor(httptest.NewRequest(http.MethodGet, "/orders?status=teleported", nil), staff)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "unknown status")
	})

	t.Run("invalid page", func(t *testing.T) {
		_, r := newTestRouter(t)

		req := asActor(httptest.NewRequest(http.MethodGet, "/orders?page=0", nil), staff)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid date_from", func(t *testing.T) {
		_, r := newTestRouter(t)

		req := asActor(httptest.NewRequest(http.MethodGet, "/orders?date_from=yesterday", nil), staff)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid date_from")
	})

	t.Run("bare dates cover the whole day", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			ListOrders(mock.Anything, staff, mock.Anything, 1).
			Run(func(_ context.Context, _ entities.Actor, f entities.ListFilter, _ int) {
				assert.Equal(t, "2026-08-01T00:00:00Z", f.From.Format("2006-01-02T15:04:05Z"))
				// включительно до конца дня
				assert.Equal(t, "2026-08-02", f.To.Format("2006-01-02"))
				assert.Equal(t, 23, f.To.Hour())
			}).
			Return(nil, int64(0), nil).Once()

		req := asActor(httptest.NewRequest(http.MethodGet, "/orders?date_from=2026-08-01&date_to=2026-08-02", nil), staff)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestHTTPHandler_LegalTransitions(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().
		GetOrder(mock.Anything, staff, "123").
		Return(entities.Order{ID: "123", Status: entities.StatusDelivered}, nil).Once()

	req := asActor(httptest.NewRequest(http.MethodGet, "/orders/123/transitions", nil), staff)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Current string   `json:"current"`
		Next    []string `json:"next"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "delivered", resp.Current)
	assert.Equal(t, []string{"returned"}, resp.Next)
}

func TestHTTPHandler_History(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, r := newTestRouter(t)

		records := []entities.TransitionRecord{
			{OrderID: "123", From: entities.StatusPending, To: entities.StatusConfirmed, ActorRole: entities.RoleStaff, ActorID: "staff-1"},
		}
		svc.EXPECT().
			GetTransitions(mock.Anything, staff, "123").
			Return(records, nil).Once()

		req := asActor(httptest.NewRequest(http.MethodGet, "/orders/123/history", nil), staff)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"from":"pending"`)
		assert.Contains(t, rr.Body.String(), `"to":"confirmed"`)
	})

	t.Run("customer is not allowed", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			GetTransitions(mock.Anything, customer, "123").
			Return(nil, entities.ErrForbidden).Once()

		req := asActor(httptest.NewRequest(http.MethodGet, "/orders/123/history", nil), customer)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestHTTPHandler_RequestCancellation(t *testing.T) {
	cancelled := entities.Order{
		ID:         "123",
		CustomerID: "cust-1",
		Status:     entities.StatusPending,
		CancelReason: &entities.CancelReason{
			Origin:   entities.ReasonOriginCustomer,
			Category: entities.CancelCategoryChangedMind,
		},
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"category":"changed_mind"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					RequestCancellation(mock.Anything, customer, "123", "changed_mind", "").
					Return(cancelled, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"cancel_reason"`,
		},
		{
			name:         "broken body",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "unknown category",
			body:         `{"category":"bored"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Category"`,
		},
		{
			name: "order already shipping",
			body: `{"category":"changed_mind"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					RequestCancellation(mock.Anything, customer, "123", "changed_mind", "").
					Return(entities.Order{}, entities.ErrNotCancellable).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"this order can no longer be cancelled"`,
		},
		{
			name: "other without text",
			body: `{"category":"other"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					RequestCancellation(mock.Anything, customer, "123", "other", "").
					Return(entities.Order{}, entities.ErrMissingReason).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"reason is required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newTestRouter(t)
			tc.mockBehavior(svc)

			req := asActor(httptest.NewRequest(http.MethodPost, "/orders/123/cancel-request", strings.NewReader(tc.body)), customer)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ApplyTransition(t *testing.T) {
	processing := entities.Order{ID: "123", CustomerID: "cust-1", Status: entities.StatusProcessing, ResolvedBy: "staff-1"}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"target_status":"processing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ApplyTransition(mock.Anything, staff, "123", entities.StatusProcessing, "").
					Return(processing, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"processing"`,
		},
		{
			name:         "unknown target status",
			body:         `{"target_status":"teleported"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"unknown target status"`,
		},
		{
			name:         "missing target status",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"TargetStatus"`,
		},
		{
			name: "illegal jump",
			body: `{"target_status":"delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ApplyTransition(mock.Anything, staff, "123", entities.StatusDelivered, "").
					Return(entities.Order{}, entities.ErrIllegalTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"illegal status transition"`,
		},
		{
			name: "lost the race",
			body: `{"target_status":"processing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ApplyTransition(mock.Anything, staff, "123", entities.StatusProcessing, "").
					Return(entities.Order{}, entities.ErrConflict).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order was modified concurrently, please retry"`,
		},
		{
			name: "cancel without reason",
			body: `{"target_status":"cancelled"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ApplyTransition(mock.Anything, staff, "123", entities.StatusCancelled, "").
					Return(entities.Order{}, entities.ErrMissingReason).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"reason is required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newTestRouter(t)
			tc.mockBehavior(svc)

			req := asActor(httptest.NewRequest(http.MethodPost, "/orders/123/transition", strings.NewReader(tc.body)), staff)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
