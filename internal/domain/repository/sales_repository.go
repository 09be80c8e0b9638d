package repository

import (
	"context"

	"github.com/jhoicas/mala-inventario/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia del registro de ventas.
type LedgerRepository interface {
	// Load devuelve el registro completo; vacío si el archivo aún no existe.
	Load(ctx context.Context) ([]entity.SaleRecord, error)

	// Save sobrescribe el archivo con el registro completo.
	Save(ctx context.Context, sales []entity.SaleRecord) error
}
