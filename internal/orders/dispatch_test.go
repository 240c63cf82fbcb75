package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrade/order-records-backend/pkg/db/models"
	"github.com/veltrade/order-records-backend/pkg/enums"
)

func TestDeriveDispatchPartial(t *testing.T) {
	result := DeriveDispatch([]string{"A", "B", "C"}, []string{"A", "B"})

	assert.Equal(t, enums.DispatchStatusPartial, result.Status)
	assert.Equal(t, "A; B", result.DeliveredItems)
	assert.Equal(t, "C", result.UndeliveredItems)
}

func TestDeriveDispatchDelivered(t *testing.T) {
	result := DeriveDispatch([]string{"A", "B"}, []string{"B", "A"})

	assert.Equal(t, enums.DispatchStatusDelivered, result.Status)
	assert.Equal(t, "A; B", result.DeliveredItems)
	assert.Empty(t, result.UndeliveredItems)
}

func TestDeriveDispatchPending(t *testing.T) {
	result := DeriveDispatch([]string{"A", "B"}, nil)

	assert.Equal(t, enums.DispatchStatusPending, result.Status)
	assert.Empty(t, result.DeliveredItems)
	assert.Equal(t, "A; B", result.UndeliveredItems)
}

func TestDeriveDispatchIgnoresUnknownTokens(t *testing.T) {
	result := DeriveDispatch([]string{"A"}, []string{"A", "Z"})

	assert.Equal(t, enums.DispatchStatusDelivered, result.Status)
	assert.Equal(t, "A", result.DeliveredItems)
}

func TestParseProductDetails(t *testing.T) {
	tokens := ParseProductDetails("Bed Sheets x20; Towels; Soap Bars x100;")

	require.Len(t, tokens, 3)
	assert.Equal(t, "Bed Sheets", tokens[0].Name)
	require.NotNil(t, tokens[0].Qty)
	assert.Equal(t, 20, *tokens[0].Qty)

	assert.Equal(t, "Towels", tokens[1].Name)
	assert.Nil(t, tokens[1].Qty)

	assert.Equal(t, "Soap Bars", tokens[2].Name)
	require.NotNil(t, tokens[2].Qty)
	assert.Equal(t, 100, *tokens[2].Qty)
}

func TestParseProductDetailsEmpty(t *testing.T) {
	assert.Empty(t, ParseProductDetails(""))
	assert.Empty(t, ParseProductDetails(" ; ; "))
}

func TestFlattenItems(t *testing.T) {
	flat := FlattenItems([]models.OrderItem{
		{ProductName: "Towels", Qty: 12},
		{ProductName: "Bath Mats", Qty: 4},
	})
	assert.Equal(t, "Towels x12; Bath Mats x4", flat)
}

func TestProductNamesPrefersItems(t *testing.T) {
	order := &models.Order{
		ProductDetails: "Stale x1",
		Items: []models.OrderItem{
			{ProductName: "Towels"},
			{ProductName: "Soap"},
		},
	}
	assert.Equal(t, []string{"Towels", "Soap"}, ProductNames(order))
}

func TestProductNamesFallsBackToDetails(t *testing.T) {
	order := &models.Order{ProductDetails: "Towels x12; Soap"}
	assert.Equal(t, []string{"Towels", "Soap"}, ProductNames(order))
}
