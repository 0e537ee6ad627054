package model

type Product struct {
	ID    int64
	Name  string
	Price float64
}
