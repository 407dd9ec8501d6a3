// Package storefront dispatches shopper events to the cart, checkout, forms
// and cookie banner of one storefront session.
package storefront

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/cart"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/catalog"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/checkout"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/consent"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/forms"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/notify"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/schedule"
)

// recentNotifications is how many toasts State keeps.
const recentNotifications = 5

type Deps struct {
	Catalog   *catalog.Catalog
	Storage   port.ClientStorage
	Notifier  port.Notifier // optional, receives every toast as well
	Scheduler schedule.Scheduler
	Currency  currency.Unit
	Logger    *zap.Logger
}

// App is safe for concurrent use. Every event runs under one lock, the same
// way a single UI thread would process them.
type App struct {
	mu sync.Mutex

	view       domain.View
	cartOpen   bool
	bannerOpen bool
	banner     schedule.Handle
	session    *checkout.Session

	catalog    *catalog.Catalog
	cart       *cart.Store
	gate       *consent.Gate
	cookies    *consent.CookieBanner
	submission *forms.Flow[domain.DesignSubmission]
	contact    *forms.Flow[domain.ContactMessage]
	scheduler  schedule.Scheduler
	notifier   port.Notifier
	recent     *notify.Recorder
	logger     *zap.Logger
}

func New(d Deps) *App {
	recent := notify.NewRecorder(recentNotifications)

	var notifier port.Notifier = recent
	if d.Notifier != nil {
		notifier = notify.Multi(recent, d.Notifier)
	}

	gate := consent.NewGate(d.Storage, d.Logger)

	return &App{
		view:       domain.ViewHome,
		catalog:    d.Catalog,
		cart:       cart.NewStore(d.Currency, notifier, d.Logger),
		gate:       gate,
		cookies:    consent.NewCookieBanner(d.Storage, d.Scheduler, d.Logger),
		submission: forms.NewDesignSubmission(gate, d.Scheduler, notifier, d.Logger),
		contact:    forms.NewContact(gate, d.Scheduler, notifier, d.Logger),
		scheduler:  d.Scheduler,
		notifier:   notifier,
		recent:     recent,
		logger:     d.Logger,
	}
}

// Start schedules the cookie banner if no decision is stored yet.
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	handle, err := a.cookies.Schedule(ctx, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.bannerOpen = true
	})
	if err != nil {
		return fmt.Errorf("cookies.Schedule: %w", err)
	}
	a.banner = handle
	return nil
}

// Close cancels every pending timer.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.banner != nil {
		a.banner.Cancel()
		a.banner = nil
	}
	if a.session != nil {
		a.session.Close()
		a.session = nil
	}
	a.submission.Close()
	a.contact.Close()
}

func (a *App) Products(category domain.ProductCategory) []domain.Product {
	return a.catalog.Filter(category)
}

func (a *App) Product(id int) (domain.Product, error) {
	return a.catalog.ByID(id)
}

// Navigate switches to a page. Leaving a form page discards that form.
func (a *App) Navigate(view domain.View) error {
	if _, err := domain.ParseView(string(view)); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.leaveView(view)
	a.view = view
	return nil
}

func (a *App) OpenCart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cartOpen = true
}

func (a *App) CloseCart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cartOpen = false
}

func (a *App) AddToCart(ctx context.Context, productID int, size domain.Size, quantity int) error {
	p, err := a.catalog.ByID(productID)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	return a.cart.AddItem(ctx, p.ID, p.Name, p.Price, size, quantity)
}

func (a *App) RemoveFromCart(ctx context.Context, productID int, size domain.Size) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cart.RemoveItem(ctx, productID, size)
}

func (a *App) UpdateQuantity(ctx context.Context, productID int, size domain.Size, quantity int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cart.UpdateQuantity(ctx, productID, size, quantity)
}

func (a *App) Increment(ctx context.Context, productID int, size domain.Size) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cart.Increment(ctx, productID, size)
}

func (a *App) Decrement(ctx context.Context, productID int, size domain.Size) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cart.Decrement(ctx, productID, size)
}

// BeginCheckout closes the cart drawer and starts a checkout over a snapshot
// of the cart.
func (a *App) BeginCheckout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cartOpen = false
	if a.cart.Len() == 0 {
		return domain.ErrEmptyCart
	}
	if a.session != nil {
		a.session.Close()
		a.session = nil
	}

	session, err := checkout.Start(ctx, a.cart, a.gate, a.scheduler, a.onComplete, a.logger)
	if err != nil {
		return fmt.Errorf("checkout.Start: %w", err)
	}

	a.leaveView(domain.ViewCheckout)
	a.session = session
	a.view = domain.ViewCheckout
	return nil
}

func (a *App) SubmitDelivery(ctx context.Context, info domain.DeliveryInfo) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return domain.ErrNoCheckout
	}
	return a.session.SubmitDelivery(ctx, info)
}

func (a *App) SubmitPayment(ctx context.Context, info domain.PaymentInfo) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return domain.ErrNoCheckout
	}
	return a.session.SubmitPayment(ctx, info)
}

// CheckoutBack abandons the checkout and returns to the shop with the cart open.
func (a *App) CheckoutBack() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return domain.ErrNoCheckout
	}
	a.session.Close()
	a.exitCheckout()
	return nil
}

// AcceptConsent answers the prompt of category. For the forms this also
// submits the held fields.
func (a *App) AcceptConsent(ctx context.Context, category domain.ConsentCategory) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch category {
	case domain.ConsentCheckout:
		if a.session == nil {
			return domain.ErrNoCheckout
		}
		return a.session.AcceptConsent(ctx)
	case domain.ConsentSubmission:
		return a.submission.AcceptConsent(ctx)
	case domain.ConsentContact:
		return a.contact.AcceptConsent(ctx)
	}
	return fmt.Errorf("category[%s]: %w", category, domain.ErrUnknownConsentCategory)
}

// DeclineConsent answers the prompt of category. Declining checkout consent
// leaves the checkout with the cart intact.
func (a *App) DeclineConsent(ctx context.Context, category domain.ConsentCategory) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch category {
	case domain.ConsentCheckout:
		if a.session == nil {
			return domain.ErrNoCheckout
		}
		if err := a.session.DeclineConsent(ctx); err != nil {
			return err
		}
		a.exitCheckout()
		return nil
	case domain.ConsentSubmission:
		return a.submission.DeclineConsent(ctx)
	case domain.ConsentContact:
		return a.contact.DeclineConsent(ctx)
	}
	return fmt.Errorf("category[%s]: %w", category, domain.ErrUnknownConsentCategory)
}

func (a *App) SubmitDesign(ctx context.Context, fields domain.DesignSubmission) error {
	return a.submission.Submit(ctx, fields)
}

func (a *App) SendContact(ctx context.Context, fields domain.ContactMessage) error {
	return a.contact.Submit(ctx, fields)
}

// DecideCookies stores the banner decision and hides the banner.
func (a *App) DecideCookies(ctx context.Context, decision domain.ConsentDecision) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.cookies.Decide(ctx, decision); err != nil {
		return err
	}
	if a.banner != nil {
		a.banner.Cancel()
		a.banner = nil
	}
	a.bannerOpen = false
	return nil
}

// onComplete runs on the scheduler once the completion delay has passed.
func (a *App) onComplete(summary domain.OrderSummary) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil || a.session.ID() != summary.OrderID {
		a.logger.Info("Ignoring completion of a stale checkout", zap.Stringer("checkout_id", summary.OrderID))
		return
	}

	ctx := context.Background()
	a.cart.Clear(ctx)
	a.session = nil
	a.view = domain.ViewHome

	err := a.notifier.Notify(ctx, domain.Notification{
		Kind:        domain.NotificationSuccess,
		Title:       "Order completed successfully!",
		Description: "Thank you for supporting Shadow Strength!",
		At:          time.Now(),
	})
	if err != nil {
		a.logger.Warn("Failed to deliver notification", zap.Error(err))
	}

	a.logger.Info("Order completed",
		zap.Stringer("order_id", summary.OrderID),
		zap.Int("item_count", summary.ItemCount),
		zap.String("total", summary.Total))
}

func (a *App) exitCheckout() {
	a.session = nil
	a.view = domain.ViewShop
	a.cartOpen = true
}

func (a *App) leaveView(next domain.View) {
	if a.view == next {
		return
	}

	switch a.view {
	case domain.ViewSubmissions:
		a.submission.Close()
	case domain.ViewContact:
		a.contact.Close()
	case domain.ViewCheckout:
		if a.session != nil {
			a.session.Close()
			a.session = nil
		}
	}
}

// CheckoutState is nil in State when no checkout is running.
type CheckoutState struct {
	ID         uuid.UUID             `json:"id"`
	Step       domain.CheckoutStep   `json:"step"`
	HasConsent bool                  `json:"hasConsent"`
	Prompt     *domain.Disclosure    `json:"prompt,omitempty"`
	Items      []domain.CartLineItem `json:"items"`
	Summary    *domain.OrderSummary  `json:"summary,omitempty"`
}

type State struct {
	View          domain.View                          `json:"view"`
	CartOpen      bool                                 `json:"cartOpen"`
	Items         []domain.CartLineItem                `json:"items"`
	ItemCount     int                                  `json:"itemCount"`
	Total         string                               `json:"total"`
	Checkout      *CheckoutState                       `json:"checkout,omitempty"`
	Submission    forms.State[domain.DesignSubmission] `json:"submission"`
	Contact       forms.State[domain.ContactMessage]   `json:"contact"`
	CookieBanner  bool                                 `json:"cookieBanner"`
	Notifications []domain.Notification                `json:"notifications"`
}

func (a *App) State() (State, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	total, err := a.cart.Total()
	if err != nil {
		return State{}, fmt.Errorf("cart.Total: %w", err)
	}

	st := State{
		View:          a.view,
		CartOpen:      a.cartOpen,
		Items:         a.cart.Items(),
		ItemCount:     a.cart.ItemCount(),
		Total:         total.String(),
		Submission:    a.submission.State(),
		Contact:       a.contact.State(),
		CookieBanner:  a.bannerOpen,
		Notifications: a.recent.Recent(),
	}

	if s := a.session; s != nil {
		summary := s.Summary()
		st.Checkout = &CheckoutState{
			ID:         s.ID(),
			Step:       s.Step(),
			HasConsent: s.HasConsent(),
			Prompt:     s.Prompt(),
			Items:      summary.Items,
		}
		if s.Step() == domain.StepComplete {
			st.Checkout.Summary = &summary
		}
	}
	return st, nil
}
