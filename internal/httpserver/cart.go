package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimart/internal/domain"
	"agrimart/internal/price"
)

type cartLineResponse struct {
	domain.CartLine
	DisplayTotal string `json:"displayTotal"`
}

type cartResponse struct {
	Lines         []cartLineResponse `json:"lineItems"`
	TotalItems    int                `json:"totalItems"`
	TotalAmount   int64              `json:"totalAmount"`
	DisplayAmount string             `json:"displayAmount"`
	Open          bool               `json:"open"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	lines := make([]cartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, cartLineResponse{
			CartLine:     line,
			DisplayTotal: price.FormatPKR(line.TotalPrice),
		})
	}
	return cartResponse{
		Lines:         lines,
		TotalItems:    cart.TotalItems,
		TotalAmount:   cart.TotalAmount,
		DisplayAmount: price.FormatPKR(cart.TotalAmount),
		Open:          cart.Open,
	}
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, toCartResponse(h.cart.Snapshot()))
}

type addCartItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.catalog.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Printf("add cart item %d: %v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !p.Available() {
		c.JSON(http.StatusConflict, gin.H{"error": domain.ErrOutOfStock.Error()})
		return
	}

	h.cart.Add(*p, req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(h.cart.Snapshot()))
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// setCartItemQuantity sets the line quantity; zero or negative removes the
// line, matching the store's removal signal.
func (h *handlers) setCartItemQuantity(c *gin.Context) {
	id, ok := intParam(c, "productId")
	if !ok {
		return
	}
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.cart.SetQuantity(id, req.Quantity) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not in cart"})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(h.cart.Snapshot()))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	id, ok := intParam(c, "productId")
	if !ok {
		return
	}
	if !h.cart.Remove(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not in cart"})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(h.cart.Snapshot()))
}

func (h *handlers) incrementCartItem(c *gin.Context) {
	id, ok := intParam(c, "productId")
	if !ok {
		return
	}
	if !h.cart.Increment(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not in cart"})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(h.cart.Snapshot()))
}

func (h *handlers) decrementCartItem(c *gin.Context) {
	id, ok := intParam(c, "productId")
	if !ok {
		return
	}
	if !h.cart.Decrement(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not in cart"})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(h.cart.Snapshot()))
}

func (h *handlers) clearCart(c *gin.Context) {
	h.cart.Clear()
	c.Status(http.StatusNoContent)
}

type discountRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

func (h *handlers) applyDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.cart.ApplyDiscount(req.Amount)
	c.JSON(http.StatusOK, toCartResponse(h.cart.Snapshot()))
}

func (h *handlers) openCart(c *gin.Context) {
	h.cart.Open()
	c.Status(http.StatusNoContent)
}

func (h *handlers) closeCart(c *gin.Context) {
	h.cart.Close()
	c.Status(http.StatusNoContent)
}

func (h *handlers) toggleCart(c *gin.Context) {
	h.cart.Toggle()
	c.JSON(http.StatusOK, gin.H{"open": h.cart.Snapshot().Open})
}
