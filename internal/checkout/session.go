// Package checkout implements the forward-only delivery → payment → complete flow.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/cart"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/schedule"
)

// CompletionDelay is how long the confirmation stays up before the order completes.
const CompletionDelay = 3 * time.Second

// Snapshot is read once when the session starts.
type Snapshot interface {
	Items() []domain.CartLineItem
	Total() (domain.Money, error)
}

type ConsentGate interface {
	HasConsented(ctx context.Context, c domain.ConsentCategory) (bool, error)
	RequestConsent(ctx context.Context, c domain.ConsentCategory) (domain.Disclosure, error)
	RecordConsent(ctx context.Context, c domain.ConsentCategory, decision domain.ConsentDecision) error
}

// CompleteFunc runs once the completion delay has elapsed.
type CompleteFunc func(summary domain.OrderSummary)

type Session struct {
	id    uuid.UUID
	step  domain.CheckoutStep
	items []domain.CartLineItem
	total domain.Money

	delivery domain.DeliveryInfo
	payment  domain.PaymentInfo

	hasConsent bool
	prompt     *domain.Disclosure
	closed     bool

	gate       ConsentGate
	scheduler  schedule.Scheduler
	completion schedule.Handle
	onComplete CompleteFunc
	logger     *zap.Logger
}

// Start snapshots the cart and reads the checkout consent flag. Without
// consent the prompt is raised right away.
func Start(ctx context.Context, snapshot Snapshot, gate ConsentGate, scheduler schedule.Scheduler, onComplete CompleteFunc, logger *zap.Logger) (*Session, error) {
	items := snapshot.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	total, err := snapshot.Total()
	if err != nil {
		return nil, fmt.Errorf("snapshot.Total: %w", err)
	}

	hasConsent, err := gate.HasConsented(ctx, domain.ConsentCheckout)
	if err != nil {
		return nil, fmt.Errorf("gate.HasConsented: %w", err)
	}

	s := &Session{
		id:         uuid.New(),
		step:       domain.StepDelivery,
		items:      items,
		total:      total,
		hasConsent: hasConsent,
		gate:       gate,
		scheduler:  scheduler,
		onComplete: onComplete,
		logger:     logger,
	}
	s.logger = logger.With(zap.Stringer("checkout_id", s.id))

	if !hasConsent {
		if err := s.raisePrompt(ctx); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Checkout started",
		zap.Int("lines", len(items)),
		zap.String("total", total.String()),
		zap.Bool("has_consent", hasConsent))
	return s, nil
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Step() domain.CheckoutStep { return s.step }

func (s *Session) HasConsent() bool { return s.hasConsent }

// Prompt returns the pending consent prompt, if any.
func (s *Session) Prompt() *domain.Disclosure { return s.prompt }

func (s *Session) Closed() bool { return s.closed }

func (s *Session) SubmitDelivery(ctx context.Context, info domain.DeliveryInfo) error {
	if err := s.ready(domain.StepDelivery); err != nil {
		return err
	}
	if err := info.Validate(); err != nil {
		return fmt.Errorf("delivery: %w", err)
	}
	if err := s.requireConsent(ctx); err != nil {
		return err
	}

	s.delivery = info
	s.advance()
	return nil
}

// SubmitPayment completes the order. Payment is simulated and always succeeds;
// the completion callback is scheduled after CompletionDelay.
func (s *Session) SubmitPayment(ctx context.Context, info domain.PaymentInfo) error {
	if err := s.ready(domain.StepPayment); err != nil {
		return err
	}
	if err := info.Validate(); err != nil {
		return fmt.Errorf("payment: %w", err)
	}
	if err := s.requireConsent(ctx); err != nil {
		return err
	}

	s.payment = info
	s.advance()

	summary := s.Summary()
	s.completion = s.scheduler.AfterFunc(CompletionDelay, func() {
		s.logger.Info("Checkout completed")
		if s.onComplete != nil {
			s.onComplete(summary)
		}
	})
	return nil
}

// AcceptConsent stores the acceptance and closes the prompt. It does not
// advance the step; the shopper resubmits.
func (s *Session) AcceptConsent(ctx context.Context) error {
	if s.closed {
		return domain.ErrSessionClosed
	}
	if err := s.gate.RecordConsent(ctx, domain.ConsentCheckout, domain.ConsentAccepted); err != nil {
		return fmt.Errorf("gate.RecordConsent: %w", err)
	}

	s.hasConsent = true
	s.prompt = nil
	return nil
}

// DeclineConsent ends the session. Nothing is stored, so the prompt returns
// on the next checkout.
func (s *Session) DeclineConsent(ctx context.Context) error {
	if s.closed {
		return domain.ErrSessionClosed
	}
	if err := s.gate.RecordConsent(ctx, domain.ConsentCheckout, domain.ConsentDeclined); err != nil {
		return fmt.Errorf("gate.RecordConsent: %w", err)
	}

	s.prompt = nil
	s.Close()
	return nil
}

// Close tears the session down and cancels a pending completion.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if s.completion != nil && s.completion.Cancel() {
		s.logger.Info("Pending checkout completion cancelled")
	}
}

func (s *Session) Summary() domain.OrderSummary {
	items := make([]domain.CartLineItem, len(s.items))
	copy(items, s.items)

	return domain.OrderSummary{
		OrderID:   s.id,
		Items:     items,
		ItemCount: cart.ItemCount(s.items),
		Total:     s.total.String(),
		Email:     s.delivery.Email,
	}
}

func (s *Session) ready(want domain.CheckoutStep) error {
	if s.closed {
		return domain.ErrSessionClosed
	}
	if s.step != want {
		return fmt.Errorf("submit %s at step %s: %w", want, s.step, domain.ErrInvalidStep)
	}
	return nil
}

func (s *Session) requireConsent(ctx context.Context) error {
	if s.hasConsent {
		return nil
	}
	if err := s.raisePrompt(ctx); err != nil {
		return err
	}
	return domain.ErrConsentRequired
}

func (s *Session) raisePrompt(ctx context.Context) error {
	d, err := s.gate.RequestConsent(ctx, domain.ConsentCheckout)
	if err != nil {
		return fmt.Errorf("gate.RequestConsent: %w", err)
	}
	s.prompt = &d
	return nil
}

func (s *Session) advance() {
	next, _ := s.step.Next()
	s.logger.Info("Checkout step advanced",
		zap.String("from", string(s.step)),
		zap.String("to", string(next)))
	s.step = next
}
