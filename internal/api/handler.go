package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/service"
	"storefront/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers. It is a thin consumer of the storefront
// facade and performs no store logic of its own; request binding here is the
// form validation the store trusts to have happened before checkout.
type Handler struct {
	storefront *service.Storefront
}

// NewHandler creates a new HTTP handler
func NewHandler(storefront *service.Storefront) *Handler {
	return &Handler{
		storefront: storefront,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.GET("/products/:id", h.getProduct)
		v1.GET("/categories", h.listCategories)

		v1.GET("/cart", h.getCart)
		v1.POST("/cart/items", h.addCartItem)
		v1.PUT("/cart/items/:id", h.updateCartItem)
		v1.DELETE("/cart/items/:id", h.removeCartItem)
		v1.DELETE("/cart", h.clearCart)

		v1.POST("/checkout", h.checkout)

		v1.GET("/orders", h.listOrders)
		v1.GET("/orders/:id", h.getOrder)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// listProducts handles the listing page pipeline: ?category=&q=&sort=
func (h *Handler) listProducts(c *gin.Context) {
	category := c.Query("category")
	term := c.Query("q")
	order := catalog.SortOrder(c.DefaultQuery("sort", string(catalog.SortDefault)))

	products := h.storefront.BrowseProducts(category, term, order)

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// getProduct handles product detail lookup
func (h *Handler) getProduct(c *gin.Context) {
	product, ok := h.storefront.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// listCategories returns the closed category set
func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.storefront.Categories(),
	})
}

// cartResponse is the cart plus its derived values, recomputed per request
func (h *Handler) cartResponse() gin.H {
	return gin.H{
		"items":      h.storefront.Cart(),
		"total":      h.storefront.CartTotal(),
		"item_count": h.storefront.CartItemCount(),
	}
}

// getCart handles cart reads
func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// addCartItem handles add-to-cart
func (h *Handler) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.storefront.AddToCart(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, h.cartResponse())
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// updateCartItem sets a line's quantity; zero or negative removes the line
func (h *Handler) updateCartItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	h.storefront.UpdateCartQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, h.cartResponse())
}

// removeCartItem deletes a cart line
func (h *Handler) removeCartItem(c *gin.Context) {
	h.storefront.RemoveFromCart(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, h.cartResponse())
}

// clearCart empties the cart
func (h *Handler) clearCart(c *gin.Context) {
	h.storefront.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, h.cartResponse())
}

type checkoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=Nagad bKash"`
	TransactionID string `json:"transaction_id"`
}

// checkout places an order from the current cart
func (h *Handler) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	order, err := h.storefront.PlaceOrder(c.Request.Context(), models.CustomerDetails{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to place order",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// listOrders returns the order history, newest first
func (h *Handler) listOrders(c *gin.Context) {
	orders := h.storefront.Orders()
	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// getOrder handles order confirmation lookup
func (h *Handler) getOrder(c *gin.Context) {
	order, ok := h.storefront.OrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
