package entity

import "time"

// Tipos de movimiento del libro de inventario.
const (
	TransactionTypeIN  = "IN"  // entrada
	TransactionTypeOUT = "OUT" // salida
)

// ValidTransactionType indica si t es un tipo de movimiento conocido.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIN || t == TransactionTypeOUT
}

// Transaction representa una entrada inmutable del libro de movimientos.
// ItemName se captura al crear el movimiento para que la auditoría sobreviva
// renombres del ítem. Los movimientos nunca se editan ni se borran.
type Transaction struct {
	ID        string
	ItemID    string
	ItemName  string // snapshot al momento de crear
	Type      string // IN u OUT
	Quantity  int64  // siempre positivo; el signo lo da Type
	Notes     string
	Date      time.Time
	CreatedAt time.Time
}

// SignedQuantity devuelve la cantidad con signo: positiva para IN,
// negativa para OUT. La suma de cantidades con signo sobre el libro
// más la línea base del ítem reproduce el stock actual.
func (t *Transaction) SignedQuantity() int64 {
	if t.Type == TransactionTypeOUT {
		return -t.Quantity
	}
	return t.Quantity
}
