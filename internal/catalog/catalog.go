// Package catalog is the fixed product list of the shop.
package catalog

import (
	"fmt"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
)

const imageBase = "https://images.unsplash.com/"

var products = []domain.Product{
	{ID: 1, Name: "Shadow Tank Pro", Category: domain.CategoryMens, Price: "$34.99", Image: imageBase + "photo-1744551472645-7fd56c0406ff"},
	{ID: 2, Name: "Strength Flex Leggings", Category: domain.CategoryWomens, Price: "$44.99", Image: imageBase + "photo-1626444231642-6bd985bca16a"},
	{ID: 3, Name: "Community Crew Tee", Category: domain.CategoryUnisex, Price: "$29.99", Image: imageBase + "photo-1613593013133-b6e122feafe8"},
	{ID: 4, Name: "Power Hoodie", Category: domain.CategoryUnisex, Price: "$54.99", Image: imageBase + "photo-1650744784287-66283639f54b"},
	{ID: 5, Name: "Elite Training Shorts", Category: domain.CategoryMens, Price: "$39.99", Image: imageBase + "photo-1615570484051-3f5c08d4c87e"},
	{ID: 6, Name: "Unity Sports Bra", Category: domain.CategoryWomens, Price: "$36.99", Image: imageBase + "photo-1626444231642-6bd985bca16a"},
	{ID: 7, Name: "Foundation Joggers", Category: domain.CategoryMens, Price: "$49.99", Image: imageBase + "photo-1615570484051-3f5c08d4c87e"},
	{ID: 8, Name: "Empower Crop Top", Category: domain.CategoryWomens, Price: "$32.99", Image: imageBase + "photo-1626444231642-6bd985bca16a"},
	{ID: 9, Name: "Legacy Snapback", Category: domain.CategoryUnisex, Price: "$24.99", Image: imageBase + "photo-1613593013133-b6e122feafe8"},
}

type Catalog struct {
	products []domain.Product
}

// New returns the built-in catalog.
func New() *Catalog {
	return &Catalog{products: products}
}

// NewWith serves the given products instead of the built-in list.
func NewWith(products []domain.Product) *Catalog {
	return &Catalog{products: append([]domain.Product(nil), products...)}
}

func (c *Catalog) All() []domain.Product {
	return append([]domain.Product(nil), c.products...)
}

// Filter returns products of category in catalog order; CategoryAll matches everything.
func (c *Catalog) Filter(category domain.ProductCategory) []domain.Product {
	if category == domain.CategoryAll {
		return c.All()
	}

	var out []domain.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ByID(id int) (domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product[%d]: %w", id, domain.ErrUnknownProduct)
}
