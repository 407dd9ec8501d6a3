package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/consent"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/storefront"
)

type handler struct {
	app    *storefront.App
	logger *zap.Logger
}

type addItemRequest struct {
	ProductID int    `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type navigateRequest struct {
	View string `json:"view" binding:"required"`
}

type decisionRequest struct {
	Decision string `json:"decision" binding:"required"`
}

func (h *handler) listProducts(c *gin.Context) {
	category, err := domain.ParseProductCategory(c.DefaultQuery("category", string(domain.CategoryAll)))
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.app.Products(category))
}

func (h *handler) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.app.Product(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handler) state(c *gin.Context) {
	h.respondState(c)
}

func (h *handler) navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.respond(c, h.app.Navigate(domain.View(req.View)))
}

func (h *handler) openCart(c *gin.Context) {
	h.app.OpenCart()
	h.respondState(c)
}

func (h *handler) closeCart(c *gin.Context) {
	h.app.CloseCart()
	h.respondState(c)
}

func (h *handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	size, err := domain.ParseSize(req.Size)
	if err != nil {
		badRequest(c, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = domain.MinQuantity
	}

	h.respond(c, h.app.AddToCart(c.Request.Context(), req.ProductID, size, req.Quantity))
}

func (h *handler) updateItem(c *gin.Context) {
	id, size, ok := lineParams(c)
	if !ok {
		return
	}
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.respond(c, h.app.UpdateQuantity(c.Request.Context(), id, size, req.Quantity))
}

func (h *handler) removeItem(c *gin.Context) {
	id, size, ok := lineParams(c)
	if !ok {
		return
	}

	h.app.RemoveFromCart(c.Request.Context(), id, size)
	h.respondState(c)
}

func (h *handler) incrementItem(c *gin.Context) {
	id, size, ok := lineParams(c)
	if !ok {
		return
	}
	h.respond(c, h.app.Increment(c.Request.Context(), id, size))
}

func (h *handler) decrementItem(c *gin.Context) {
	id, size, ok := lineParams(c)
	if !ok {
		return
	}
	h.respond(c, h.app.Decrement(c.Request.Context(), id, size))
}

func (h *handler) beginCheckout(c *gin.Context) {
	h.respond(c, h.app.BeginCheckout(c.Request.Context()))
}

func (h *handler) submitDelivery(c *gin.Context) {
	var info domain.DeliveryInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		badRequest(c, err)
		return
	}
	h.respond(c, h.app.SubmitDelivery(c.Request.Context(), info))
}

func (h *handler) submitPayment(c *gin.Context) {
	var info domain.PaymentInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		badRequest(c, err)
		return
	}
	h.respond(c, h.app.SubmitPayment(c.Request.Context(), info))
}

func (h *handler) checkoutBack(c *gin.Context) {
	h.respond(c, h.app.CheckoutBack())
}

func (h *handler) consent(c *gin.Context) {
	category, err := consent.ParseCategory(c.Param("category"))
	if err != nil {
		h.fail(c, err)
		return
	}
	decision, err := domain.ParseConsentDecision(c.Param("decision"))
	if err != nil {
		h.fail(c, err)
		return
	}

	if decision == domain.ConsentAccepted {
		err = h.app.AcceptConsent(c.Request.Context(), category)
	} else {
		err = h.app.DeclineConsent(c.Request.Context(), category)
	}
	h.respond(c, err)
}

func (h *handler) submitDesign(c *gin.Context) {
	var fields domain.DesignSubmission
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, err)
		return
	}
	h.respond(c, h.app.SubmitDesign(c.Request.Context(), fields))
}

func (h *handler) sendContact(c *gin.Context) {
	var fields domain.ContactMessage
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, err)
		return
	}
	h.respond(c, h.app.SendContact(c.Request.Context(), fields))
}

func (h *handler) cookieConsent(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	decision, err := domain.ParseConsentDecision(req.Decision)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, h.app.DecideCookies(c.Request.Context(), decision))
}

// respond renders the storefront state after a successful event. A held-back
// submission still renders the state so the client can show the prompt.
func (h *handler) respond(c *gin.Context, err error) {
	if err != nil && !errors.Is(err, domain.ErrConsentRequired) {
		h.fail(c, err)
		return
	}

	st, stateErr := h.app.State()
	if stateErr != nil {
		h.fail(c, stateErr)
		return
	}
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": st})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *handler) respondState(c *gin.Context) {
	h.respond(c, nil)
}

func (h *handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func lineParams(c *gin.Context) (int, domain.Size, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return 0, "", false
	}
	size, err := domain.ParseSize(c.Param("size"))
	if err != nil {
		badRequest(c, err)
		return 0, "", false
	}
	return id, size, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
