package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/parthk/bakery-backend/internal/api"
	"github.com/parthk/bakery-backend/internal/api/handler"
	"github.com/parthk/bakery-backend/internal/model"
)

type noopProductService struct{}

func (noopProductService) CreateProduct(ctx context.Context, name string, price float64) (*model.Product, error) {
	return &model.Product{ID: 1, Name: name, Price: price}, nil
}
func (noopProductService) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	return &model.Product{ID: id}, nil
}
func (noopProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return nil, nil
}
func (noopProductService) DeleteProduct(ctx context.Context, id int64) error {
	return nil
}

type noopOrderService struct{}

func (noopOrderService) CreateOrder(ctx context.Context, productID int64) (*model.Order, error) {
	return &model.Order{ID: 1, ProductID: productID, Status: "pending"}, nil
}
func (noopOrderService) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	return &model.Order{ID: id, Status: "pending"}, nil
}
func (noopOrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return nil, nil
}
func (noopOrderService) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	return nil
}
func (noopOrderService) DeleteOrder(ctx context.Context, id int64) error {
	return nil
}

func setupTestRouter() http.Handler {
	logger := zerolog.Nop()
	server := api.NewServer(
		handler.NewProductHandler(noopProductService{}, &logger),
		handler.NewOrderHandler(noopOrderService{}, &logger),
	)
	return SetupRouter(server, &logger)
}

func TestWelcomeRoute(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Welcome to Parth's Bakery API!"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutesRegistered(t *testing.T) {
	r := setupTestRouter()

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/products", http.StatusOK},
		{http.MethodGet, "/products/1", http.StatusOK},
		{http.MethodDelete, "/products/1", http.StatusOK},
		{http.MethodGet, "/order", http.StatusOK},
		{http.MethodGet, "/order/1", http.StatusOK},
		{http.MethodDelete, "/order/1", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, tc.status, rec.Code, "%s %s", tc.method, tc.path)
	}
}
