package domain

import "fmt"

const (
	MinQuantity = 1
	MaxQuantity = 10
)

type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// Sizes lists every size in display order.
var Sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

func ParseSize(s string) (Size, error) {
	for _, size := range Sizes {
		if string(size) == s {
			return size, nil
		}
	}
	return "", fmt.Errorf("size[%s] is not valid: %w", s, ErrInvalidSize)
}

func (s Size) Valid() bool {
	_, err := ParseSize(string(s))
	return err == nil
}

// ClampQuantity bounds q to [MinQuantity, MaxQuantity] the way the quantity stepper does.
func ClampQuantity(q int) int {
	return max(MinQuantity, min(MaxQuantity, q))
}

func ValidateQuantity(q int) error {
	if q < MinQuantity || q > MaxQuantity {
		return fmt.Errorf("quantity[%d] is not within [%d, %d]: %w", q, MinQuantity, MaxQuantity, ErrQuantityOutOfRange)
	}
	return nil
}

type LineKey struct {
	ProductID int
	Size      Size
}

// CartLineItem is one product variant in the cart. Name and UnitPrice are
// copied from the product when the line is created.
type CartLineItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"price"`
	Size      Size   `json:"size"`
	Quantity  int    `json:"quantity"`
}

func (i CartLineItem) Key() LineKey {
	return LineKey{ProductID: i.ProductID, Size: i.Size}
}

// Subtotal parses the unit price and multiplies it by the quantity.
func (i CartLineItem) Subtotal() (Money, error) {
	price, err := ParsePrice(i.UnitPrice)
	if err != nil {
		return Money{}, fmt.Errorf("line[%d/%s]: %w", i.ProductID, i.Size, err)
	}
	return price.Mul(i.Quantity), nil
}
