package dto

// CreateProductDTO uses pointer fields so a missing field can be told apart
// from a zero value.
type CreateProductDTO struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type ProductDTO struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type CreateProductResponse struct {
	Message string     `json:"message"`
	Product ProductDTO `json:"product"`
}
