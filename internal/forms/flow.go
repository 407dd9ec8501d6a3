// Package forms drives the consent-gated design submission and contact forms.
package forms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/schedule"
)

// ResetDelay is how long the confirmation stays up before the form clears.
const ResetDelay = 3 * time.Second

type Fields interface {
	Validate() error
}

type ConsentGate interface {
	HasConsented(ctx context.Context, c domain.ConsentCategory) (bool, error)
	RequestConsent(ctx context.Context, c domain.ConsentCategory) (domain.Disclosure, error)
	RecordConsent(ctx context.Context, c domain.ConsentCategory, decision domain.ConsentDecision) error
}

type State[T Fields] struct {
	Fields    T                  `json:"fields"`
	Submitted bool               `json:"submitted"`
	Prompt    *domain.Disclosure `json:"prompt,omitempty"`
}

// Flow is safe for concurrent use; the reset callback runs on the scheduler's goroutine.
type Flow[T Fields] struct {
	mu sync.Mutex

	category domain.ConsentCategory
	title    string

	fields    T
	submitted bool
	prompt    *domain.Disclosure
	reset     schedule.Handle

	gate      ConsentGate
	scheduler schedule.Scheduler
	notifier  port.Notifier
	logger    *zap.Logger
}

// NewFlow builds a form gated on category. title is the notification shown on submit.
func NewFlow[T Fields](category domain.ConsentCategory, title string, gate ConsentGate, scheduler schedule.Scheduler, notifier port.Notifier, logger *zap.Logger) *Flow[T] {
	return &Flow[T]{
		category:  category,
		title:     title,
		gate:      gate,
		scheduler: scheduler,
		notifier:  notifier,
		logger:    logger.With(zap.String("form", string(category))),
	}
}

func NewDesignSubmission(gate ConsentGate, scheduler schedule.Scheduler, notifier port.Notifier, logger *zap.Logger) *Flow[domain.DesignSubmission] {
	return NewFlow[domain.DesignSubmission](domain.ConsentSubmission, "Design submitted!", gate, scheduler, notifier, logger)
}

func NewContact(gate ConsentGate, scheduler schedule.Scheduler, notifier port.Notifier, logger *zap.Logger) *Flow[domain.ContactMessage] {
	return NewFlow[domain.ContactMessage](domain.ConsentContact, "Message sent!", gate, scheduler, notifier, logger)
}

// Submit keeps the fields and submits them once consent exists. Without
// consent the prompt is raised and ErrConsentRequired returned.
func (f *Flow[T]) Submit(ctx context.Context, fields T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitted {
		return domain.ErrFormSubmitted
	}
	if err := fields.Validate(); err != nil {
		return fmt.Errorf("%s: %w", f.category, err)
	}
	f.fields = fields

	ok, err := f.gate.HasConsented(ctx, f.category)
	if err != nil {
		return fmt.Errorf("gate.HasConsented: %w", err)
	}
	if !ok {
		d, err := f.gate.RequestConsent(ctx, f.category)
		if err != nil {
			return fmt.Errorf("gate.RequestConsent: %w", err)
		}
		f.prompt = &d
		return domain.ErrConsentRequired
	}

	f.complete(ctx)
	return nil
}

// AcceptConsent stores the acceptance and submits the fields held back by
// the prompt right away.
func (f *Flow[T]) AcceptConsent(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.gate.RecordConsent(ctx, f.category, domain.ConsentAccepted); err != nil {
		return fmt.Errorf("gate.RecordConsent: %w", err)
	}
	held := f.prompt != nil
	f.prompt = nil

	if held && !f.submitted {
		f.complete(ctx)
	}
	return nil
}

// DeclineConsent closes the prompt and leaves the form filled and unsubmitted.
func (f *Flow[T]) DeclineConsent(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.gate.RecordConsent(ctx, f.category, domain.ConsentDeclined); err != nil {
		return fmt.Errorf("gate.RecordConsent: %w", err)
	}
	f.prompt = nil
	return nil
}

func (f *Flow[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	return State[T]{Fields: f.fields, Submitted: f.submitted, Prompt: f.prompt}
}

// Close discards the form and cancels a pending reset.
func (f *Flow[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.reset != nil {
		f.reset.Cancel()
		f.reset = nil
	}
	f.clear()
}

func (f *Flow[T]) complete(ctx context.Context) {
	f.submitted = true
	f.logger.Info("Form submitted")

	if f.notifier != nil {
		err := f.notifier.Notify(ctx, domain.Notification{
			Kind:  domain.NotificationSuccess,
			Title: f.title,
			At:    time.Now(),
		})
		if err != nil {
			f.logger.Warn("Failed to deliver notification", zap.Error(err))
		}
	}

	var handle schedule.Handle
	handle = f.scheduler.AfterFunc(ResetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		// a newer submission owns the form now
		if f.reset != handle {
			return
		}
		f.reset = nil
		f.clear()
	})
	f.reset = handle
}

func (f *Flow[T]) clear() {
	var zero T
	f.fields = zero
	f.submitted = false
	f.prompt = nil
}
