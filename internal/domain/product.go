package domain

import "fmt"

type ProductCategory string

const (
	CategoryMens   ProductCategory = "mens"
	CategoryWomens ProductCategory = "womens"
	CategoryUnisex ProductCategory = "unisex"

	// CategoryAll is the catalog filter that matches every product.
	CategoryAll ProductCategory = "all"
)

func ParseProductCategory(s string) (ProductCategory, error) {
	switch c := ProductCategory(s); c {
	case CategoryMens, CategoryWomens, CategoryUnisex, CategoryAll:
		return c, nil
	}
	return "", fmt.Errorf("category[%s] is not valid", s)
}

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Price       string          `json:"price"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
}
