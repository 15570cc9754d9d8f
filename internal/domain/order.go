package domain

import "time"

// OrderStatus is the order lifecycle state. Any status may move to any other;
// no transition table is enforced.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CustomerInfo holds the contact fields captured on the checkout form.
type CustomerInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type ShippingAddress struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	District   string `json:"district"`
	City       string `json:"city"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
}

// OrderedProduct is a cart line frozen into an order: its own quantity, unit
// price and line total, decoupled from any later cart mutation.
type OrderedProduct struct {
	ProductID  int      `json:"productId"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	Image      string   `json:"image,omitempty"`
	Quantity   int      `json:"quantity"`
	UnitPrice  int64    `json:"unitPrice"`
	TotalPrice int64    `json:"totalPrice"`
}

// Order is created exactly once at checkout. TotalItems and TotalAmount are
// copied from the cart at creation and are authoritative from then on; the
// Products list is audit detail and is never summed again. Status (and
// UpdatedAt with it) is the only field that may change afterwards.
type Order struct {
	ID          string           `json:"id"`
	Customer    CustomerInfo     `json:"customer"`
	Shipping    ShippingAddress  `json:"shipping"`
	Status      OrderStatus      `json:"status"`
	Products    []OrderedProduct `json:"products"`
	TotalItems  int              `json:"totalItems"`
	TotalAmount int64            `json:"totalAmount"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
