package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInconsistentStock = errors.New("stock inconsistente con el libro de movimientos")
)

// InsufficientStockError detalla una salida rechazada por stock insuficiente.
// Compatible con errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	ItemID    string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para ítem %s: disponible %d, solicitado %d",
		e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ConsistencyError detalla una discrepancia entre el stock almacenado y el
// derivado del libro de movimientos. Nunca se corrige automáticamente: se
// reporta para que un operador registre el ajuste correspondiente.
// Compatible con errors.Is(err, ErrInconsistentStock).
type ConsistencyError struct {
	ItemID  string
	Stored  int64
	Derived int64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("stock inconsistente para ítem %s: almacenado %d, derivado %d",
		e.ItemID, e.Stored, e.Derived)
}

func (e *ConsistencyError) Is(target error) bool {
	return target == ErrInconsistentStock
}
