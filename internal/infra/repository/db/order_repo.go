package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parthk/bakery-backend/internal/model"
)

// OrderRepository handles persistence for Orders.
type OrderRepository interface {
	// Create inserts an order for the given product. The status column is
	// left to the schema default.
	Create(ctx context.Context, productID int64) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, productID int64) (*model.Order, error) {
	var order model.Order
	err := r.pool.QueryRow(ctx,
		"INSERT INTO orders (product_id) VALUES ($1) RETURNING id, product_id, status",
		productID,
	).Scan(&order.ID, &order.ProductID, &order.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.pool.QueryRow(ctx,
		"SELECT id, product_id, status FROM orders WHERE id = $1",
		id,
	).Scan(&order.ID, &order.ProductID, &order.Status)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, product_id, status FROM orders")
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.ProductID, &o.Status); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
