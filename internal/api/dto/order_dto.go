package dto

type CreateOrderDTO struct {
	ProductID *int64 `json:"product_id"`
}

type UpdateOrderStatusDTO struct {
	Status *string `json:"status"`
}

type OrderDTO struct {
	OrderID   int64  `json:"order_id"`
	ProductID int64  `json:"product_id"`
	Status    string `json:"status"`
}

type OrderStatusDTO struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}
