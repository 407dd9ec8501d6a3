package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/catalog"
	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
)

func TestFilter(t *testing.T) {
	c := catalog.New()

	tests := []struct {
		category domain.ProductCategory
		wantIDs  []int
	}{
		{category: domain.CategoryAll, wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{category: domain.CategoryMens, wantIDs: []int{1, 5, 7}},
		{category: domain.CategoryWomens, wantIDs: []int{2, 6, 8}},
		{category: domain.CategoryUnisex, wantIDs: []int{3, 4, 9}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			var ids []int
			for _, p := range c.Filter(tt.category) {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEveryPriceParses(t *testing.T) {
	for _, p := range catalog.New().All() {
		_, err := domain.ParsePrice(p.Price)
		require.NoError(t, err, p.Name)
	}
}

func TestByID(t *testing.T) {
	c := catalog.New()

	p, err := c.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Shadow Tank Pro", p.Name)
	assert.Equal(t, "$34.99", p.Price)

	_, err = c.ByID(100)
	require.ErrorIs(t, err, domain.ErrUnknownProduct)
}

func TestAllIsACopy(t *testing.T) {
	c := catalog.New()
	all := c.All()
	all[0].Name = "changed"

	p, err := c.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Shadow Tank Pro", p.Name)
}
