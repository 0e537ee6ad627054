package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/parthk/bakery-backend/internal/apperr"
	"github.com/parthk/bakery-backend/internal/model"
)

type stubProductService struct {
	products map[int64]model.Product
	nextID   int64
	err      error
}

func newStubProductService() *stubProductService {
	return &stubProductService{
		products: map[int64]model.Product{},
		nextID:   1,
	}
}

func (s *stubProductService) CreateProduct(ctx context.Context, name string, price float64) (*model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := model.Product{ID: s.nextID, Name: name, Price: price}
	s.products[p.ID] = p
	s.nextID++
	return &p, nil
}

func (s *stubProductService) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.products[id]
	if !ok {
		return nil, apperr.NotFound("Product not found!")
	}
	return &p, nil
}

func (s *stubProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []model.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductService) DeleteProduct(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.products[id]; !ok {
		return apperr.NotFound("Product not found")
	}
	delete(s.products, id)
	return nil
}

func productTestRouter(svc *stubProductService) *chi.Mux {
	logger := zerolog.Nop()
	h := NewProductHandler(svc, &logger)

	r := chi.NewRouter()
	r.Get("/products", h.ListProducts)
	r.Post("/products", h.CreateProduct)
	r.Get("/products/{id}", h.GetProduct)
	r.Delete("/products/{id}", h.DeleteProduct)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateProductHandler(t *testing.T) {
	router := productTestRouter(newStubProductService())

	rec := doRequest(t, router, http.MethodPost, "/products", `{"name":"Croissant","price":3.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Product struct {
			ID    int64   `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Product added!", resp.Message)
	require.NotZero(t, resp.Product.ID)
	require.Equal(t, "Croissant", resp.Product.Name)
	require.Equal(t, 3.5, resp.Product.Price)
}

func TestCreateProductHandlerMissingFields(t *testing.T) {
	router := productTestRouter(newStubProductService())

	for _, body := range []string{`{}`, `{"name":"Croissant"}`, `{"price":3.5}`, ``} {
		rec := doRequest(t, router, http.MethodPost, "/products", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Missing product name or price", resp["error"])
	}
}

func TestGetProductHandler(t *testing.T) {
	svc := newStubProductService()
	svc.products[1] = model.Product{ID: 1, Name: "Croissant", Price: 3.5}
	router := productTestRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, float64(1), resp["id"])
	require.Equal(t, "Croissant", resp["name"])
	require.Equal(t, 3.5, resp["price"])
}

func TestGetProductHandlerNotFound(t *testing.T) {
	router := productTestRouter(newStubProductService())

	rec := doRequest(t, router, http.MethodGet, "/products/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Product not found!", resp["message"])
}

func TestGetProductHandlerNonIntegerID(t *testing.T) {
	router := productTestRouter(newStubProductService())

	rec := doRequest(t, router, http.MethodGet, "/products/abc", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProductsHandlerEmpty(t *testing.T) {
	router := productTestRouter(newStubProductService())

	rec := doRequest(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	// empty list must encode as [], not null
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestDeleteProductHandler(t *testing.T) {
	svc := newStubProductService()
	svc.products[1] = model.Product{ID: 1, Name: "Croissant", Price: 3.5}
	router := productTestRouter(svc)

	rec := doRequest(t, router, http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Product deleted successfully", resp["message"])

	rec = doRequest(t, router, http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Product not found", resp["error"])
}

func TestProductHandlerInternalError(t *testing.T) {
	svc := newStubProductService()
	svc.err = errors.New("connection refused")
	router := productTestRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Internal server error", resp["error"])
}
