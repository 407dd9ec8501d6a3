package consent

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/schedule"
)

const (
	CookieConsentKey     = "shadowStrengthCookieConsent"
	CookieConsentDateKey = "shadowStrengthConsentDate"

	// BannerDelay is how long the banner waits before appearing.
	BannerDelay = time.Second
)

// CookieBanner is the site-wide cookie decision, independent of the form gates.
type CookieBanner struct {
	storage   port.ClientStorage
	scheduler schedule.Scheduler
	logger    *zap.Logger
	now       func() time.Time
}

func NewCookieBanner(storage port.ClientStorage, scheduler schedule.Scheduler, logger *zap.Logger) *CookieBanner {
	return &CookieBanner{
		storage:   storage,
		scheduler: scheduler,
		logger:    logger,
		now:       time.Now,
	}
}

type CookieState struct {
	Decision  domain.ConsentDecision `json:"decision,omitempty"`
	DecidedAt string                 `json:"decidedAt,omitempty"`
}

func (b *CookieBanner) State(ctx context.Context) (CookieState, error) {
	decision, _, err := b.storage.Get(ctx, CookieConsentKey)
	if err != nil {
		return CookieState{}, fmt.Errorf("storage.Get: %w", err)
	}
	date, _, err := b.storage.Get(ctx, CookieConsentDateKey)
	if err != nil {
		return CookieState{}, fmt.Errorf("storage.Get: %w", err)
	}
	return CookieState{Decision: domain.ConsentDecision(decision), DecidedAt: date}, nil
}

// ShouldShow is true while no decision of any kind has been stored.
func (b *CookieBanner) ShouldShow(ctx context.Context) (bool, error) {
	value, found, err := b.storage.Get(ctx, CookieConsentKey)
	if err != nil {
		return false, fmt.Errorf("storage.Get: %w", err)
	}
	return !found || value == "", nil
}

func (b *CookieBanner) HasConsent(ctx context.Context) (bool, error) {
	value, found, err := b.storage.Get(ctx, CookieConsentKey)
	if err != nil {
		return false, fmt.Errorf("storage.Get: %w", err)
	}
	return found && value == string(domain.ConsentAccepted), nil
}

func (b *CookieBanner) Accept(ctx context.Context) error {
	return b.Decide(ctx, domain.ConsentAccepted)
}

func (b *CookieBanner) Decline(ctx context.Context) error {
	return b.Decide(ctx, domain.ConsentDeclined)
}

// Decide stores the decision together with its timestamp.
func (b *CookieBanner) Decide(ctx context.Context, decision domain.ConsentDecision) error {
	if _, err := domain.ParseConsentDecision(string(decision)); err != nil {
		return err
	}

	err := b.storage.SetMany(ctx, map[string]string{
		CookieConsentKey:     string(decision),
		CookieConsentDateKey: b.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("storage.SetMany: %w", err)
	}

	b.logger.Info("Cookie consent recorded", zap.String("decision", string(decision)))
	return nil
}

// Schedule calls show after BannerDelay if no decision is stored yet. The
// returned handle is nil when the banner is not needed.
func (b *CookieBanner) Schedule(ctx context.Context, show func()) (schedule.Handle, error) {
	needed, err := b.ShouldShow(ctx)
	if err != nil {
		return nil, err
	}
	if !needed {
		return nil, nil
	}
	return b.scheduler.AfterFunc(BannerDelay, show), nil
}
