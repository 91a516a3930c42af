// seed aplica el esquema base y carga ítems de ejemplo para desarrollo.
//
// Uso: go run ./cmd/seed [ruta/migracion.sql]
// Por defecto aplica internal/infrastructure/postgres/migrations/001_init.sql.
// Los ítems que ya existen se dejan intactos.
package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"

	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
)

type sampleItem struct {
	name         string
	category     string
	quantity     int64
	reorderLevel int64
	unitPrice    string
	supplier     string
}

var samples = []sampleItem{
	{"martillo de uña", "herramientas", 24, 5, "12.50", "Ferretería Central"},
	{"taladro percutor", "herramientas", 8, 3, "89.90", "Ferretería Central"},
	{"clavos 2\" (caja x500)", "fijaciones", 120, 20, "4.20", "Distribuidora Norte"},
	{"tornillos drywall (caja x100)", "fijaciones", 45, 15, "3.80", "Distribuidora Norte"},
	{"pintura blanca 1gal", "pinturas", 3, 6, "18.00", "Pinturas del Sur"},
	{"rodillo 9\"", "pinturas", 0, 4, "5.50", "Pinturas del Sur"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	migrationPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "001_init.sql")
	if len(os.Args) > 1 {
		migrationPath = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	schema, err := os.ReadFile(migrationPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", migrationPath).Msg("leer migración")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Str("path", migrationPath).Msg("esquema aplicado")

	itemRepo := postgres.NewItemRepository(pool)
	var created, skipped int
	for _, s := range samples {
		price, err := decimal.NewFromString(s.unitPrice)
		if err != nil {
			log.Fatal().Err(err).Str("item", s.name).Msg("precio de ejemplo inválido")
		}
		now := time.Now()
		item := &entity.Item{
			ID:              uuid.New().String(),
			Name:            s.name,
			Category:        s.category,
			Quantity:        s.quantity,
			InitialQuantity: s.quantity,
			ReorderLevel:    s.reorderLevel,
			UnitPrice:       price,
			Supplier:        s.supplier,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		switch err := itemRepo.Create(ctx, item); {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicate):
			skipped++
		default:
			log.Fatal().Err(err).Str("item", s.name).Msg("insertar ítem de ejemplo")
		}
	}
	log.Info().Int("creados", created).Int("existentes", skipped).Msg("seed completado")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
