package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/parthk/bakery-backend/internal/apperr"
	"github.com/parthk/bakery-backend/internal/infra/messaging"
	"github.com/parthk/bakery-backend/internal/infra/repository/db"
	"github.com/parthk/bakery-backend/internal/model"
)

type IOrderService interface {
	CreateOrder(ctx context.Context, productID int64) (*model.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) error
	DeleteOrder(ctx context.Context, id int64) error
}

type OrderService struct {
	orderRepo   db.OrderRepository
	productRepo db.ProductRepository
	publisher   messaging.Publisher
	logger      *zerolog.Logger
}

func NewOrderService(
	orderRepo db.OrderRepository,
	productRepo db.ProductRepository,
	publisher messaging.Publisher,
	logger *zerolog.Logger,
) IOrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// CreateOrder persists an order for an existing product and emits a
// notification to the order queue. The publish is best-effort: a broker
// failure is logged and the committed order is returned anyway.
func (s *OrderService) CreateOrder(ctx context.Context, productID int64) (*model.Order, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, err
	}

	order, err := s.orderRepo.Create(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	notification := model.OrderNotification{
		OrderID:      order.ID,
		ProductID:    order.ProductID,
		Status:       order.Status,
		ProductName:  product.Name,
		ProductPrice: product.Price,
	}
	if err := s.publisher.PublishOrderCreated(ctx, notification); err != nil {
		// Order stays committed even when the broker is unreachable.
		s.logger.Error().Err(err).
			Int64("order_id", order.ID).
			Msg("failed to publish order notification")
	}

	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.List(ctx)
}

// UpdateOrderStatus overwrites the status unconditionally. Any non-empty
// string is a valid status, there is no transition guard.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	updated, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !updated {
		return apperr.NotFound("Order not found")
	}
	return nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	deleted, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Order not found")
	}
	return nil
}
