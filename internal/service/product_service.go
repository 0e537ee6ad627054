package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/parthk/bakery-backend/internal/apperr"
	"github.com/parthk/bakery-backend/internal/infra/repository/db"
	"github.com/parthk/bakery-backend/internal/model"
)

type IProductService interface {
	CreateProduct(ctx context.Context, name string, price float64) (*model.Product, error)
	GetProductByID(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type ProductService struct {
	productRepo db.ProductRepository
}

func NewProductService(productRepo db.ProductRepository) IProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, name string, price float64) (*model.Product, error) {
	return s.productRepo.Create(ctx, name, price)
}

func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Product not found!")
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

// DeleteProduct removes the product. Orders referencing it are removed by
// the store's cascade rule.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Product not found")
	}
	return nil
}
