package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parthk/bakery-backend/internal/model"
)

// ProductRepository handles persistence for Products.
type ProductRepository interface {
	Create(ctx context.Context, name string, price float64) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	// Delete removes the product and, through the schema's cascade rule, all
	// of its orders. It reports whether a row was actually deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Create(ctx context.Context, name string, price float64) (*model.Product, error) {
	var product model.Product
	err := r.pool.QueryRow(ctx,
		"INSERT INTO bakery_products (name, price) VALUES ($1, $2) RETURNING id, name, price",
		name, price,
	).Scan(&product.ID, &product.Name, &product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.pool.QueryRow(ctx,
		"SELECT id, name, price FROM bakery_products WHERE id = $1",
		id,
	).Scan(&product.ID, &product.Name, &product.Price)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, name, price FROM bakery_products")
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM bakery_products WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
