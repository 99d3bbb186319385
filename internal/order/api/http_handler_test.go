package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/avkrasnov/delivery-store/internal/order/domain"
)

type stubOrderService struct {
	placeOrder func(ctx context.Context, login string, req domain.PlaceOrderRequest) (*domain.Order, error)
	listOrders func(ctx context.Context, login string) ([]domain.Order, error)
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, login string, req domain.PlaceOrderRequest) (*domain.Order, error) {
	return s.placeOrder(ctx, login, req)
}

func (s *stubOrderService) ListOrders(ctx context.Context, login string) ([]domain.Order, error) {
	return s.listOrders(ctx, login)
}

func (s *stubOrderService) StopScheduler() {}

func setupRouter(svc *stubOrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewOrderHandler(svc).RegisterRoutes(api)
	return router
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderHandler(t *testing.T) {
	t.Run("201 on success", func(t *testing.T) {
		svc := &stubOrderService{
			placeOrder: func(ctx context.Context, login string, req domain.PlaceOrderRequest) (*domain.Order, error) {
				assert.Equal(t, "ivan", login)
				assert.Len(t, req.Orders, 1)
				return &domain.Order{ID: 42, Login: login, Status: domain.StatusPending}, nil
			},
		}
		w := doRequest(setupRouter(svc), http.MethodPost, "/api/orders", "ivan",
			`{"orders":[{"article":1001,"quantity":5,"price":3.50}]}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"order_id":42`)
	})

	t.Run("401 without bearer token", func(t *testing.T) {
		svc := &stubOrderService{}
		w := doRequest(setupRouter(svc), http.MethodPost, "/api/orders", "",
			`{"orders":[{"article":1001,"quantity":5,"price":3.50}]}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("400 on non-list payload", func(t *testing.T) {
		svc := &stubOrderService{}
		w := doRequest(setupRouter(svc), http.MethodPost, "/api/orders", "ivan", `{"orders":"nope"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("400 on empty list", func(t *testing.T) {
		svc := &stubOrderService{}
		w := doRequest(setupRouter(svc), http.MethodPost, "/api/orders", "ivan", `{"orders":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("400 names the offending article on insufficient stock", func(t *testing.T) {
		svc := &stubOrderService{
			placeOrder: func(ctx context.Context, login string, req domain.PlaceOrderRequest) (*domain.Order, error) {
				return nil, domain.NewInsufficientStock(0, 1002, 3, 5)
			},
		}
		w := doRequest(setupRouter(svc), http.MethodPost, "/api/orders", "ivan",
			`{"orders":[{"article":1002,"quantity":5,"price":1.00}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "1002")
	})

	t.Run("400 on invalid line", func(t *testing.T) {
		svc := &stubOrderService{
			placeOrder: func(ctx context.Context, login string, req domain.PlaceOrderRequest) (*domain.Order, error) {
				return nil, domain.NewInvalidLine(0, 0, "quantity must be a positive integer")
			},
		}
		w := doRequest(setupRouter(svc), http.MethodPost, "/api/orders", "ivan",
			`{"orders":[{"article":1001,"quantity":-1,"price":1.00}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "quantity")
	})

	t.Run("500 on storage failure", func(t *testing.T) {
		svc := &stubOrderService{
			placeOrder: func(ctx context.Context, login string, req domain.PlaceOrderRequest) (*domain.Order, error) {
				return nil, context.DeadlineExceeded
			},
		}
		w := doRequest(setupRouter(svc), http.MethodPost, "/api/orders", "ivan",
			`{"orders":[{"article":1001,"quantity":1,"price":1.00}]}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListOrdersHandler(t *testing.T) {
	svc := &stubOrderService{
		listOrders: func(ctx context.Context, login string) ([]domain.Order, error) {
			return []domain.Order{{ID: 1, Login: login, Status: domain.StatusPending}}, nil
		},
	}
	w := doRequest(setupRouter(svc), http.MethodGet, "/api/orders", "ivan", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"order_id":1`)
}
