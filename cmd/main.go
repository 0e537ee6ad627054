package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/parthk/bakery-backend/internal/api"
	"github.com/parthk/bakery-backend/internal/api/handler"
	"github.com/parthk/bakery-backend/internal/api/router"
	"github.com/parthk/bakery-backend/internal/appcontext"
	"github.com/parthk/bakery-backend/internal/config"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	app, err := appcontext.NewApplicationContext(config.GetConfig(), &logger)
	if err != nil {
		log.Fatal(err)
		return
	}

	productHandler := handler.NewProductHandler(app.ProductService, &logger)
	orderHandler := handler.NewOrderHandler(app.OrderService, &logger)

	server := api.NewServer(productHandler, orderHandler)

	r := router.SetupRouter(server, &logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDownCompleted <- struct{}{}
	}()

	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDownCompleted
	log.Printf("closed completed")
}
