package cart_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/currency"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/cart"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/notify"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
)

func newStore(t *testing.T, notifier port.Notifier) *cart.Store {
	t.Helper()
	return cart.NewStore(currency.USD, notifier, zaptest.NewLogger(t))
}

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	ctx := t.Context()
	s := newStore(t, nil)

	require.NoError(t, s.AddItem(ctx, 1, "Shadow Tank Pro", "$34.99", domain.SizeM, 1))
	require.NoError(t, s.AddItem(ctx, 1, "Shadow Tank Pro", "$34.99", domain.SizeM, 2))

	want := []domain.CartLineItem{
		{ProductID: 1, Name: "Shadow Tank Pro", UnitPrice: "$34.99", Size: domain.SizeM, Quantity: 3},
	}
	assert.Empty(t, cmp.Diff(want, s.Items()))

	total, err := s.Total()
	require.NoError(t, err)
	assert.Equal(t, "$104.97", total.String())
}

func TestAddItemDifferentSizesAreSeparateLines(t *testing.T) {
	ctx := t.Context()
	s := newStore(t, nil)

	require.NoError(t, s.AddItem(ctx, 1, "Shadow Tank Pro", "$34.99", domain.SizeM, 1))
	require.NoError(t, s.AddItem(ctx, 1, "Shadow Tank Pro", "$34.99", domain.SizeL, 1))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.ItemCount())
}

func TestAddItemDoesNotClampRepeatAdds(t *testing.T) {
	ctx := t.Context()
	s := newStore(t, nil)

	require.NoError(t, s.AddItem(ctx, 4, "Power Hoodie", "$54.99", domain.SizeXL, 10))
	require.NoError(t, s.AddItem(ctx, 4, "Power Hoodie", "$54.99", domain.SizeXL, 10))

	assert.Equal(t, 20, s.ItemCount())
}

func TestAddItemKeepsNameAndPriceOfFirstAdd(t *testing.T) {
	ctx := t.Context()
	s := newStore(t, nil)

	require.NoError(t, s.AddItem(ctx, 3, "Community Crew Tee", "$29.99", domain.SizeS, 1))
	require.NoError(t, s.AddItem(ctx, 3, "Renamed Tee", "$19.99", domain.SizeS, 1))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Community Crew Tee", items[0].Name)
	assert.Equal(t, "$29.99", items[0].UnitPrice)
}

func TestAddItemValidation(t *testing.T) {
	tests := []struct {
		name     string
		size     domain.Size
		quantity int
		wantErr  error
	}{
		{name: "unknown size: error", size: "XXXL", quantity: 1, wantErr: domain.ErrInvalidSize},
		{name: "zero quantity: error", size: domain.SizeM, quantity: 0, wantErr: domain.ErrQuantityOutOfRange},
		{name: "negative quantity: error", size: domain.SizeM, quantity: -2, wantErr: domain.ErrQuantityOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, nil)
			err := s.AddItem(t.Context(), 1, "Shadow Tank Pro", "$34.99", tt.size, tt.quantity)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, s.Len())
		})
	}
}

func TestRemoveItem(t *testing.T) {
	ctx := t.Context()
	rec := notify.NewRecorder(0)
	s := newStore(t, rec)

	require.NoError(t, s.AddItem(ctx, 1, "Shadow Tank Pro", "$34.99", domain.SizeM, 1))
	require.NoError(t, s.AddItem(ctx, 2, "Strength Flex Leggings", "$44.99", domain.SizeS, 1))

	assert.False(t, s.RemoveItem(ctx, 1, domain.SizeL))
	assert.True(t, s.RemoveItem(ctx, 1, domain.SizeM))
	assert.False(t, s.RemoveItem(ctx, 1, domain.SizeM))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)

	var titles []string
	for _, n := range rec.Recent() {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{
		"Added to cart!",
		"Added to cart!",
		"Removed from cart",
		"Removed from cart",
		"Removed from cart",
	}, titles)
	assert.Equal(t, "Shadow Tank Pro (Size: M)", rec.Recent()[0].Description)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int
		wantErr  error
	}{
		{name: "lower bound: ok", quantity: 1, want: 1},
		{name: "upper bound: ok", quantity: 10, want: 10},
		{name: "zero: out of range", quantity: 0, want: 2, wantErr: domain.ErrQuantityOutOfRange},
		{name: "eleven: out of range", quantity: 11, want: 2, wantErr: domain.ErrQuantityOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			s := newStore(t, nil)
			require.NoError(t, s.AddItem(ctx, 5, "Elite Training Shorts", "$39.99", domain.SizeL, 2))

			err := s.UpdateQuantity(ctx, 5, domain.SizeL, tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, s.Items()[0].Quantity)
		})
	}
}

func TestUpdateQuantityMissingLineIsNoop(t *testing.T) {
	s := newStore(t, nil)
	require.NoError(t, s.UpdateQuantity(t.Context(), 9, domain.SizeM, 3))
	assert.Zero(t, s.Len())
}

func TestIncrementDecrementClamp(t *testing.T) {
	ctx := t.Context()
	s := newStore(t, nil)
	require.NoError(t, s.AddItem(ctx, 9, "Legacy Snapback", "$24.99", domain.SizeM, 9))

	require.NoError(t, s.Increment(ctx, 9, domain.SizeM))
	require.NoError(t, s.Increment(ctx, 9, domain.SizeM))
	assert.Equal(t, 10, s.ItemCount())

	require.NoError(t, s.UpdateQuantity(ctx, 9, domain.SizeM, 1))
	require.NoError(t, s.Decrement(ctx, 9, domain.SizeM))
	assert.Equal(t, 1, s.ItemCount())
}

func TestTotalInvalidPrice(t *testing.T) {
	ctx := t.Context()
	s := newStore(t, nil)
	require.NoError(t, s.AddItem(ctx, 1, "Shadow Tank Pro", "$34.99", domain.SizeM, 1))
	require.NoError(t, s.AddItem(ctx, 99, "Mystery Item", "thirty dollars", domain.SizeM, 1))

	_, err := s.Total()
	require.ErrorIs(t, err, domain.ErrInvalidPriceFormat)
}

func TestTotalEmptyCart(t *testing.T) {
	s := newStore(t, nil)

	total, err := s.Total()
	require.NoError(t, err)
	assert.Equal(t, "$0.00", total.String())
	assert.Zero(t, s.ItemCount())
}

func TestClear(t *testing.T) {
	ctx := t.Context()
	s := newStore(t, nil)
	require.NoError(t, s.AddItem(ctx, 1, "Shadow Tank Pro", "$34.99", domain.SizeM, 1))

	s.Clear(ctx)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Items())
}

func TestItemsIsACopy(t *testing.T) {
	ctx := t.Context()
	s := newStore(t, nil)
	require.NoError(t, s.AddItem(ctx, 1, "Shadow Tank Pro", "$34.99", domain.SizeM, 1))

	items := s.Items()
	items[0].Quantity = 7
	assert.Equal(t, 1, s.ItemCount())
}

type addOp struct {
	productID int
	size      domain.Size
	quantity  int
}

func randomOps(r *rand.Rand, n int) []addOp {
	ops := make([]addOp, n)
	for i := range ops {
		ops[i] = addOp{
			productID: 1 + r.IntN(4),
			size:      domain.Sizes[r.IntN(len(domain.Sizes))],
			quantity:  1 + r.IntN(10),
		}
	}
	return ops
}

func TestAddSequenceProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(gofakeit.Uint64(), gofakeit.Uint64()))

	for round := range 50 {
		t.Run(fmt.Sprintf("round %d", round), func(t *testing.T) {
			ctx := t.Context()
			ops := randomOps(r, 1+r.IntN(30))

			s := newStore(t, nil)
			wantQty := map[domain.LineKey]int{}
			for _, op := range ops {
				price := fmt.Sprintf("$%d.99", 10+op.productID)
				require.NoError(t, s.AddItem(ctx, op.productID, gofakeit.ProductName(), price, op.size, op.quantity))
				wantQty[domain.LineKey{ProductID: op.productID, Size: op.size}] += op.quantity
			}

			assert.Equal(t, len(wantQty), s.Len())

			gotQty := map[domain.LineKey]int{}
			sum := 0
			for _, line := range s.Items() {
				gotQty[line.Key()] = line.Quantity
				sum += line.Quantity
			}
			assert.Empty(t, cmp.Diff(wantQty, gotQty))
			assert.Equal(t, sum, s.ItemCount())

			// same final lines in a different order give the same total
			total, err := s.Total()
			require.NoError(t, err)

			shuffled := newStore(t, nil)
			r.Shuffle(len(ops), func(i, j int) { ops[i], ops[j] = ops[j], ops[i] })
			for _, op := range ops {
				price := fmt.Sprintf("$%d.99", 10+op.productID)
				require.NoError(t, shuffled.AddItem(ctx, op.productID, "", price, op.size, op.quantity))
			}
			shuffledTotal, err := shuffled.Total()
			require.NoError(t, err)
			assert.True(t, total.Amount.Equal(shuffledTotal.Amount), "%s != %s", total, shuffledTotal)
		})
	}
}

func TestTotalUnaffectedByRemovedLines(t *testing.T) {
	ctx := t.Context()

	a := newStore(t, nil)
	require.NoError(t, a.AddItem(ctx, 1, "Shadow Tank Pro", "$34.99", domain.SizeM, 2))
	require.NoError(t, a.AddItem(ctx, 4, "Power Hoodie", "$54.99", domain.SizeL, 1))
	require.NoError(t, a.AddItem(ctx, 9, "Legacy Snapback", "$24.99", domain.SizeS, 3))
	a.RemoveItem(ctx, 9, domain.SizeS)

	b := newStore(t, nil)
	require.NoError(t, b.AddItem(ctx, 4, "Power Hoodie", "$54.99", domain.SizeL, 1))
	require.NoError(t, b.AddItem(ctx, 1, "Shadow Tank Pro", "$34.99", domain.SizeM, 2))

	ta, err := a.Total()
	require.NoError(t, err)
	tb, err := b.Total()
	require.NoError(t, err)
	assert.Equal(t, "$124.97", ta.String())
	assert.Equal(t, ta.String(), tb.String())
}

type failingNotifier struct{}

func (failingNotifier) Notify(context.Context, domain.Notification) error {
	return errors.New("broker down")
}

func TestNotifierFailureDoesNotFailMutation(t *testing.T) {
	s := newStore(t, failingNotifier{})
	require.NoError(t, s.AddItem(t.Context(), 1, "Shadow Tank Pro", "$34.99", domain.SizeM, 1))
	assert.Equal(t, 1, s.ItemCount())
}
