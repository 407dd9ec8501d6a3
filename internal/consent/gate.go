// Package consent keeps the per-form data-consent flags and the site-wide
// cookie banner decision in client storage.
package consent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
)

// Gate answers whether a form category may submit.
type Gate struct {
	storage port.ClientStorage
	logger  *zap.Logger
}

func NewGate(storage port.ClientStorage, logger *zap.Logger) *Gate {
	return &Gate{storage: storage, logger: logger}
}

// HasConsented is true only when the stored flag is exactly "accepted".
func (g *Gate) HasConsented(ctx context.Context, c domain.ConsentCategory) (bool, error) {
	cat, err := lookup(c)
	if err != nil {
		return false, err
	}

	value, found, err := g.storage.Get(ctx, cat.storageKey)
	if err != nil {
		return false, fmt.Errorf("storage.Get: %w", err)
	}

	return found && value == string(domain.ConsentAccepted), nil
}

// RequestConsent returns the prompt to show for c. The answer comes back
// through RecordConsent.
func (g *Gate) RequestConsent(_ context.Context, c domain.ConsentCategory) (domain.Disclosure, error) {
	cat, err := lookup(c)
	if err != nil {
		return domain.Disclosure{}, err
	}

	d := cat.disclosure
	d.DataCollected = append([]string(nil), d.DataCollected...)
	return d, nil
}

// RecordConsent persists an acceptance. A decline is not stored so the
// shopper is asked again next time.
func (g *Gate) RecordConsent(ctx context.Context, c domain.ConsentCategory, decision domain.ConsentDecision) error {
	cat, err := lookup(c)
	if err != nil {
		return err
	}

	switch decision {
	case domain.ConsentAccepted:
		if err := g.storage.Set(ctx, cat.storageKey, string(domain.ConsentAccepted)); err != nil {
			return fmt.Errorf("storage.Set: %w", err)
		}
	case domain.ConsentDeclined:
	default:
		return fmt.Errorf("decision[%s] is not valid: %w", decision, domain.ErrInvalidDecision)
	}

	g.logger.Info("Consent recorded",
		zap.String("category", string(c)),
		zap.String("decision", string(decision)))
	return nil
}
