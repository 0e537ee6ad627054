package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/parthk/bakery-backend/internal/api/dto"
	"github.com/parthk/bakery-backend/internal/apperr"
	"github.com/parthk/bakery-backend/internal/model"
	"github.com/parthk/bakery-backend/internal/service"
)

type ProductHandler struct {
	productService service.IProductService
	logger         *zerolog.Logger
}

func NewProductHandler(productService service.IProductService, logger *zerolog.Logger) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list products")
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, convertProductsToDTO(products))
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		errorJSON(w, http.StatusBadRequest, "Missing product name or price")
		return
	}
	if createDTO.Name == nil || createDTO.Price == nil {
		errorJSON(w, http.StatusBadRequest, "Missing product name or price")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), *createDTO.Name, *createDTO.Price)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create product")
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateProductResponse{
		Message: "Product added!",
		Product: convertProductToDTO(product),
	})
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		messageJSON(w, http.StatusNotFound, "Product not found!")
		return
	}

	product, err := h.productService.GetProductByID(r.Context(), id)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			messageJSON(w, int(appErr.Code), appErr.Message)
		} else {
			h.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
			errorJSON(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, convertProductToDTO(product))
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			errorJSON(w, int(appErr.Code), appErr.Message)
		} else {
			h.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
			errorJSON(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	messageJSON(w, http.StatusOK, "Product deleted successfully")
}

func convertProductToDTO(product *model.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}
}

func convertProductsToDTO(products []model.Product) []dto.ProductDTO {
	dtos := make([]dto.ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, convertProductToDTO(&products[i]))
	}
	return dtos
}
