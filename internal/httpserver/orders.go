package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimart/internal/domain"
	"agrimart/internal/price"
	"agrimart/internal/service/orderhistory"
)

type orderResponse struct {
	domain.Order
	DisplayAmount string `json:"displayAmount"`
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		Order:         o,
		DisplayAmount: price.FormatPKR(o.TotalAmount),
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	result := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}
	return result
}

type checkoutRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Country    string `json:"country" binding:"required"`
	State      string `json:"state" binding:"required"`
	District   string `json:"district"`
	City       string `json:"city" binding:"required"`
	Address    string `json:"address" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
}

// checkout freezes the current cart into an order and clears the cart,
// completing the purchase flow in one request.
func (h *handlers) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot := h.cart.Snapshot()
	if len(snapshot.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	customer := domain.CustomerInfo{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	shipping := domain.ShippingAddress{
		Country:    req.Country,
		State:      req.State,
		District:   req.District,
		City:       req.City,
		Address:    req.Address,
		PostalCode: req.PostalCode,
	}

	order := h.orders.AddOrderFromCart(customer, shipping, snapshot.Lines, snapshot.TotalAmount, snapshot.TotalItems)
	h.cart.Clear()
	h.logger.Printf("checkout: order=%s items=%d amount=%d", order.ID, order.TotalItems, order.TotalAmount)

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// listOrders serves the history page. A bare status query uses the one-shot
// filter; any combination involving product or id goes through the staged
// filters; no query at all resets to the full list. The sort parameter
// reorders the projection being returned.
func (h *handlers) listOrders(c *gin.Context) {
	product := c.Query("product")
	status := c.Query("status")
	id := c.Query("id")

	switch {
	case product == "" && id == "" && status != "":
		h.orders.FilterByStatus(status)
	case product != "" || id != "" || status != "":
		h.orders.SetFilters(orderhistory.FilterUpdate{Product: &product, Status: &status, OrderID: &id})
		h.orders.ApplyFilters()
	default:
		h.orders.ResetFilters()
	}

	if sortDir := c.Query("sort"); sortDir == "asc" || sortDir == "desc" {
		h.orders.SortByDate(sortDir == "asc")
	}

	c.JSON(http.StatusOK, gin.H{"orders": toOrderResponses(h.orders.Filtered())})
}

func (h *handlers) getOrder(c *gin.Context) {
	order, ok := h.orders.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	h.orders.SetSelected(order)
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handlers) updateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	if !h.orders.UpdateStatus(c.Param("id"), status) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	order, _ := h.orders.Get(c.Param("id"))
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
