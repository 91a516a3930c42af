package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// La clasificación de estado es una función pura de (cantidad, reorden) y
// es la misma para listados, reportes y dashboard.
func TestStockStatus(t *testing.T) {
	cases := []struct {
		name         string
		quantity     int64
		reorderLevel int64
		want         string
	}{
		{"agotado", 0, 5, entity.StatusOutOfStock},
		{"agotado con reorden cero", 0, 0, entity.StatusOutOfStock},
		{"bajo stock en el límite", 5, 5, entity.StatusLowStock},
		{"bajo stock", 1, 5, entity.StatusLowStock},
		{"disponible justo sobre el límite", 6, 5, entity.StatusAvailable},
		{"disponible", 100, 5, entity.StatusAvailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.StockStatus(tc.quantity, tc.reorderLevel))
		})
	}
}

func TestItemStatus(t *testing.T) {
	item := &entity.Item{Quantity: 4, ReorderLevel: 5}
	assert.Equal(t, entity.StatusLowStock, item.Status())
}

func TestSignedQuantity(t *testing.T) {
	in := &entity.Transaction{Type: entity.TransactionTypeIN, Quantity: 7}
	out := &entity.Transaction{Type: entity.TransactionTypeOUT, Quantity: 7}
	assert.Equal(t, int64(7), in.SignedQuantity())
	assert.Equal(t, int64(-7), out.SignedQuantity())
}
