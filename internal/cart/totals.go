package cart

import (
	"fmt"

	"golang.org/x/text/currency"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
)

// Total folds lines into a single amount in unit. The first unparseable price
// fails the whole total.
func Total(unit currency.Unit, lines []domain.CartLineItem) (domain.Money, error) {
	total := domain.Zero(unit)
	for _, line := range lines {
		subtotal, err := line.Subtotal()
		if err != nil {
			return domain.Money{}, err
		}

		total, err = total.Add(subtotal)
		if err != nil {
			return domain.Money{}, fmt.Errorf("line[%d/%s]: %w", line.ProductID, line.Size, err)
		}
	}
	return total, nil
}

func ItemCount(lines []domain.CartLineItem) int {
	n := 0
	for _, line := range lines {
		n += line.Quantity
	}
	return n
}
