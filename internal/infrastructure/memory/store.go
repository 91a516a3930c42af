// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Se usa en tests y para desarrollo local sin PostgreSQL. Las
// entidades se guardan y devuelven por copia para que ningún caller mute
// el estado compartido por fuera de los repositorios.
package memory

import (
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Store estado compartido de los repositorios en memoria.
type Store struct {
	mu    sync.RWMutex
	items map[string]entity.Item
	txs   map[string]entity.Transaction

	// txMu serializa las transacciones del TxRunner. Equivale al bloqueo
	// de fila de PostgreSQL, con granularidad global: suficiente para
	// tests y desarrollo, no para producción.
	txMu sync.Mutex
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		items: make(map[string]entity.Item),
		txs:   make(map[string]entity.Transaction),
	}
}

// snapshot copia el estado completo, para rollback.
func (s *Store) snapshot() (map[string]entity.Item, map[string]entity.Transaction) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make(map[string]entity.Item, len(s.items))
	for k, v := range s.items {
		items[k] = v
	}
	txs := make(map[string]entity.Transaction, len(s.txs))
	for k, v := range s.txs {
		txs[k] = v
	}
	return items, txs
}

// restore repone un snapshot previo.
func (s *Store) restore(items map[string]entity.Item, txs map[string]entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.txs = txs
}
