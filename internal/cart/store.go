// Package cart holds the in-memory shopping cart of one storefront session.
package cart

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
)

// Store keeps at most one line per (product, size). Totals are recomputed
// from the lines on every call. A Store is not safe for concurrent use.
type Store struct {
	lines    []domain.CartLineItem
	currency currency.Unit
	notifier port.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewStore(unit currency.Unit, notifier port.Notifier, logger *zap.Logger) *Store {
	return &Store{
		currency: unit,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// AddItem merges into the line with the same product and size, summing
// quantities without an upper bound, or appends a new line.
func (s *Store) AddItem(ctx context.Context, productID int, name, price string, size domain.Size, quantity int) error {
	if !size.Valid() {
		return fmt.Errorf("size[%s] is not valid: %w", size, domain.ErrInvalidSize)
	}
	if quantity < domain.MinQuantity {
		return fmt.Errorf("quantity[%d] must be positive: %w", quantity, domain.ErrQuantityOutOfRange)
	}

	if i := s.index(productID, size); i >= 0 {
		s.lines[i].Quantity += quantity
	} else {
		s.lines = append(s.lines, domain.CartLineItem{
			ProductID: productID,
			Name:      name,
			UnitPrice: price,
			Size:      size,
			Quantity:  quantity,
		})
	}

	s.notify(ctx, domain.NotificationSuccess, "Added to cart!", fmt.Sprintf("%s (Size: %s)", name, size))
	return nil
}

// RemoveItem deletes the matching line and reports whether one existed. The
// notification is sent either way.
func (s *Store) RemoveItem(ctx context.Context, productID int, size domain.Size) bool {
	defer s.notify(ctx, domain.NotificationInfo, "Removed from cart", "")

	i := s.index(productID, size)
	if i < 0 {
		return false
	}

	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return true
}

// UpdateQuantity replaces the quantity of the matching line. Quantities
// outside [MinQuantity, MaxQuantity] are rejected; a missing line is a no-op.
func (s *Store) UpdateQuantity(_ context.Context, productID int, size domain.Size, quantity int) error {
	if err := domain.ValidateQuantity(quantity); err != nil {
		return err
	}

	if i := s.index(productID, size); i >= 0 {
		s.lines[i].Quantity = quantity
	}
	return nil
}

func (s *Store) Increment(ctx context.Context, productID int, size domain.Size) error {
	return s.step(ctx, productID, size, 1)
}

func (s *Store) Decrement(ctx context.Context, productID int, size domain.Size) error {
	return s.step(ctx, productID, size, -1)
}

func (s *Store) step(ctx context.Context, productID int, size domain.Size, delta int) error {
	i := s.index(productID, size)
	if i < 0 {
		return nil
	}
	return s.UpdateQuantity(ctx, productID, size, domain.ClampQuantity(s.lines[i].Quantity+delta))
}

// Total sums unit price times quantity over all lines.
func (s *Store) Total() (domain.Money, error) {
	return Total(s.currency, s.lines)
}

func (s *Store) ItemCount() int {
	return ItemCount(s.lines)
}

// Items returns a copy of the lines in the order they were added.
func (s *Store) Items() []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Len() int {
	return len(s.lines)
}

func (s *Store) Clear(context.Context) {
	s.lines = nil
}

func (s *Store) index(productID int, size domain.Size) int {
	for i, line := range s.lines {
		if line.ProductID == productID && line.Size == size {
			return i
		}
	}
	return -1
}

func (s *Store) notify(ctx context.Context, kind domain.NotificationKind, title, description string) {
	if s.notifier == nil {
		return
	}

	err := s.notifier.Notify(ctx, domain.Notification{
		Kind:        kind,
		Title:       title,
		Description: description,
		At:          s.now(),
	})
	if err != nil {
		s.logger.Warn("Failed to deliver notification", zap.String("title", title), zap.Error(err))
	}
}
