package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/parthk/bakery-backend/internal/api/dto"
	"github.com/parthk/bakery-backend/internal/apperr"
	"github.com/parthk/bakery-backend/internal/service"
)

type OrderHandler struct {
	orderService service.IOrderService
	logger       *zerolog.Logger
}

func NewOrderHandler(orderService service.IOrderService, logger *zerolog.Logger) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list orders")
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	dtos := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, dto.OrderDTO{
			OrderID:   o.ID,
			ProductID: o.ProductID,
			Status:    o.Status,
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		errorJSON(w, http.StatusBadRequest, "Missing product_id")
		return
	}
	if createDTO.ProductID == nil {
		errorJSON(w, http.StatusBadRequest, "Missing product_id")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), *createDTO.ProductID)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			errorJSON(w, int(appErr.Code), appErr.Message)
		} else {
			h.logger.Error().Err(err).Msg("failed to create order")
			errorJSON(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		Message: "Order placed successfully!",
		OrderID: order.ID,
	})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.orderService.GetOrderByID(r.Context(), id)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			errorJSON(w, int(appErr.Code), appErr.Message)
		} else {
			h.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
			errorJSON(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.OrderStatusDTO{
		OrderID: order.ID,
		Status:  order.Status,
	})
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "Order not found")
		return
	}

	var updateDTO dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		errorJSON(w, http.StatusBadRequest, "Missing new status")
		return
	}
	if updateDTO.Status == nil || *updateDTO.Status == "" {
		errorJSON(w, http.StatusBadRequest, "Missing new status")
		return
	}

	if err := h.orderService.UpdateOrderStatus(r.Context(), id, *updateDTO.Status); err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			errorJSON(w, int(appErr.Code), appErr.Message)
		} else {
			h.logger.Error().Err(err).Int64("order_id", id).Msg("failed to update order status")
			errorJSON(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	messageJSON(w, http.StatusOK, fmt.Sprintf("Order %d updated to status '%s'", id, *updateDTO.Status))
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		messageJSON(w, http.StatusNotFound, "Order not found")
		return
	}

	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			messageJSON(w, int(appErr.Code), appErr.Message)
		} else {
			h.logger.Error().Err(err).Int64("order_id", id).Msg("failed to delete order")
			errorJSON(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	messageJSON(w, http.StatusOK, "Order deleted successfully")
}
