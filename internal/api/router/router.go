package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/parthk/bakery-backend/internal/api"
	m "github.com/parthk/bakery-backend/internal/api/middleware"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With"},
	}))
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Welcome to Parth's Bakery API!"}`))
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", server.ProductHandler.ListProducts)
		r.Post("/", server.ProductHandler.CreateProduct)
		r.Get("/{id}", server.ProductHandler.GetProduct)
		r.Delete("/{id}", server.ProductHandler.DeleteProduct)
	})

	r.Route("/order", func(r chi.Router) {
		r.Get("/", server.OrderHandler.ListOrders)
		r.Post("/", server.OrderHandler.CreateOrder)
		r.Get("/{id}", server.OrderHandler.GetOrder)
		r.Put("/{id}", server.OrderHandler.UpdateOrderStatus)
		r.Delete("/{id}", server.OrderHandler.DeleteOrder)
	})

	return r
}
