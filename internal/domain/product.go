package domain

import "time"

// Product is a catalog entry. Price stays in the raw display form the catalog
// provides (e.g. "PKR 1,200"); numeric work goes through the price package.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Price       string    `json:"price"`
	Image       string    `json:"image,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	ReviewCount int       `json:"reviewCount,omitempty"`
	InStock     *bool     `json:"inStock,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Available reports whether the product can be added to a cart.
// An absent stock flag counts as in stock.
func (p Product) Available() bool {
	return p.InStock == nil || *p.InStock
}
