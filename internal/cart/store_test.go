package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

func testProduct(id string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "Basmati Rice",
		Variants: []domain.Variant{{Unit: "500g", Price: 50, Discount: "0%"}},
	}
}

func TestStore_AddIncrementsExistingLine(t *testing.T) {
	s := NewStore()
	p := testProduct("p1")

	for i := 1; i <= 5; i++ {
		li := s.Add(p, "500g", 50)
		assert.Equal(t, i, li.Quantity)
	}

	require.Equal(t, 1, s.Len())
	li, ok := s.Get("p1", "500g")
	require.True(t, ok)
	assert.Equal(t, 5, li.Quantity)
	assert.Equal(t, 50.0, li.Price) // unit price, not a running total
}

func TestStore_SameProductDifferentUnitsAreSeparateLines(t *testing.T) {
	s := NewStore()
	p := testProduct("p1")
	p.Variants = append(p.Variants, domain.Variant{Unit: "1kg", Price: 90})

	s.Add(p, "500g", 50)
	s.Add(p, "1kg", 90)
	assert.Equal(t, 2, s.Len())
}

func TestStore_AddKeepsCachedPrice(t *testing.T) {
	s := NewStore()
	p := testProduct("p1")

	s.Add(p, "500g", 50)
	// a later add passes a different price; the cached one wins
	li := s.Add(p, "500g", 60)
	assert.Equal(t, 50.0, li.Price)
}

func TestStore_DecreaseDecrementsInPlace(t *testing.T) {
	s := NewStore()
	p := testProduct("p1")
	s.Add(p, "500g", 50)
	s.Add(p, "500g", 50)

	li, removed, ok := s.Decrease("p1", "500g")
	require.True(t, ok)
	assert.False(t, removed)
	assert.Equal(t, 1, li.Quantity)
	assert.Equal(t, 1, s.Len())
}

func TestStore_DecreaseAtOneRemovesLine(t *testing.T) {
	s := NewStore()
	s.Add(testProduct("p1"), "500g", 50)

	_, removed, ok := s.Decrease("p1", "500g")
	require.True(t, ok)
	assert.True(t, removed)
	assert.Equal(t, 0, s.Len())
}

func TestStore_DecreaseAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	_, _, ok := s.Decrease("missing", "500g")
	assert.False(t, ok)
}

func TestStore_RemoveAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Remove("missing", "500g"))
}

func TestStore_ReplaceAll(t *testing.T) {
	s := NewStore()
	s.Add(testProduct("p1"), "500g", 50)

	snapshot := []domain.LineItem{
		{
			Product:      domain.ProductRef{Product: testProduct("p2")},
			SelectedUnit: "500g",
			Price:        30,
			Quantity:     4,
		},
	}
	s.ReplaceAll(snapshot)

	require.Equal(t, 1, s.Len())
	_, ok := s.Get("p1", "500g")
	assert.False(t, ok, "previous state must not survive a replace")
	li, ok := s.Get("p2", "500g")
	require.True(t, ok)
	assert.Equal(t, 4, li.Quantity)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Add(testProduct("p1"), "500g", 50)
	s.Add(testProduct("p2"), "500g", 30)
	s.Clear()
	assert.Equal(t, 0, s.Len())
}
