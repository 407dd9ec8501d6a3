package httpserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Storage))

	h := &handler{app: deps.App, logger: logger}

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/state", h.state)
		api.POST("/navigate", h.navigate)

		cart := api.Group("/cart")
		{
			cart.POST("/open", h.openCart)
			cart.POST("/close", h.closeCart)
			cart.POST("/items", h.addItem)
			cart.PUT("/items/:id/:size", h.updateItem)
			cart.DELETE("/items/:id/:size", h.removeItem)
			cart.POST("/items/:id/:size/increment", h.incrementItem)
			cart.POST("/items/:id/:size/decrement", h.decrementItem)
		}

		checkout := api.Group("/checkout")
		{
			checkout.POST("", h.beginCheckout)
			checkout.POST("/delivery", h.submitDelivery)
			checkout.POST("/payment", h.submitPayment)
			checkout.POST("/back", h.checkoutBack)
		}

		api.POST("/consent/:category/:decision", h.consent)

		forms := api.Group("/forms")
		{
			forms.POST("/submission", h.submitDesign)
			forms.POST("/contact", h.sendContact)
		}

		api.POST("/cookie-consent", h.cookieConsent)
	}

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= 500 {
			logger.Error("HTTP request", fields...)
			return
		}
		logger.Debug("HTTP request", fields...)
	}
}
