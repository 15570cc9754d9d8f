package domain

import "time"

// Cart is the aggregate view a consumer receives: the lines in insertion
// order plus the two derived scalars. Snapshots are deep copies; mutating a
// returned Cart never touches store state.
type Cart struct {
	Lines       []CartLine `json:"lineItems"`
	TotalItems  int        `json:"totalItems"`
	TotalAmount int64      `json:"totalAmount"`
	Open        bool       `json:"open"`
}

// CartLine is one product entry in the cart. Product is a snapshot copied at
// add time; catalog edits after that do not reach the line. Identity within
// the cart is Product.ID, not the line ID, which exists only for display
// grouping.
type CartLine struct {
	ID         string    `json:"id"`
	Product    Product   `json:"product"`
	Quantity   int       `json:"quantity"`
	UnitPrice  int64     `json:"unitPrice"`
	TotalPrice int64     `json:"totalPrice"`
	AddedAt    time.Time `json:"addedAt"`
}
