package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	cartsvc "agrimart/internal/service/cart"
	"agrimart/internal/service/catalog"
	"agrimart/internal/service/orderhistory"
)

// Deps carries the stores and services the handlers run on.
type Deps struct {
	CatalogSvc *catalog.Service
	CartStore  *cartsvc.Store
	OrderStore *orderhistory.Store
}

type handlers struct {
	logger      *log.Logger
	catalog     *catalog.Service
	cart        *cartsvc.Store
	orders      *orderhistory.Store
	fileURLHost string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, corsOrigins []string, fileURLHost string) (*gin.Engine, error) {
	if deps.CatalogSvc == nil || deps.CartStore == nil || deps.OrderStore == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	h := &handlers{
		logger:      logger,
		catalog:     deps.CatalogSvc,
		cart:        deps.CartStore,
		orders:      deps.OrderStore,
		fileURLHost: fileURLHost,
	}

	router.GET("/healthz", healthHandler)

	api := router.Group("/api")

	products := api.Group("/products")
	products.GET("", h.listProducts)
	products.GET("/:id", h.getProduct)
	products.POST("", h.createProduct)
	products.PATCH("/:id", h.updateProduct)
	products.DELETE("/:id", h.deleteProduct)

	cart := api.Group("/cart")
	cart.GET("", h.getCart)
	cart.DELETE("", h.clearCart)
	cart.POST("/items", h.addCartItem)
	cart.PATCH("/items/:productId", h.setCartItemQuantity)
	cart.DELETE("/items/:productId", h.removeCartItem)
	cart.POST("/items/:productId/increment", h.incrementCartItem)
	cart.POST("/items/:productId/decrement", h.decrementCartItem)
	cart.POST("/discount", h.applyDiscount)
	cart.POST("/open", h.openCart)
	cart.POST("/close", h.closeCart)
	cart.POST("/toggle", h.toggleCart)

	api.POST("/checkout", h.checkout)

	orders := api.Group("/orders")
	orders.GET("", h.listOrders)
	orders.GET("/:id", h.getOrder)
	orders.PATCH("/:id/status", h.updateOrderStatus)

	return router, nil
}
