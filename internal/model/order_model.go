package model

type Order struct {
	ID        int64
	ProductID int64
	Status    string
}

// OrderNotification is the message body published to the order queue
// when an order is created.
type OrderNotification struct {
	OrderID      int64   `json:"order_id"`
	ProductID    int64   `json:"product_id"`
	Status       string  `json:"status"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
}
