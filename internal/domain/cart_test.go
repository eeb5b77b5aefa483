package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRef_UnmarshalSnapshot(t *testing.T) {
	var li LineItem
	err := json.Unmarshal([]byte(`{"productId":{"_id":"p1","name":"Rice"},"selectedUnit":"1kg","price":90,"quantity":2}`), &li)
	require.NoError(t, err)
	assert.Equal(t, "p1", li.ProductID())
	assert.Equal(t, "Rice", li.Product.Name)
}

func TestProductRef_UnmarshalBareID(t *testing.T) {
	var li LineItem
	err := json.Unmarshal([]byte(`{"productId":"p2","selectedUnit":"500g","price":40,"quantity":1}`), &li)
	require.NoError(t, err)
	assert.Equal(t, "p2", li.ProductID())
}

func TestLineItem_Subtotal(t *testing.T) {
	li := LineItem{Price: 50, Quantity: 3}
	assert.Equal(t, 150.0, li.Subtotal())
}
