package dto

import "time"

// CreateTransactionRequest body para POST /api/transactions.
type CreateTransactionRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
	Notes    string `json:"notes"`
}

// TransactionResponse salida de un movimiento del libro.
type TransactionResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Notes     string    `json:"notes,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionListResponse lista paginada de movimientos.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Page         PageResponse          `json:"page"`
}
