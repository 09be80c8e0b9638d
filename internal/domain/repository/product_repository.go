package repository

import (
	"context"

	"github.com/jhoicas/mala-inventario/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia del catálogo de productos (DIP).
type CatalogRepository interface {
	// Load lee el catálogo completo. Si el archivo no existe devuelve domain.ErrFileNotFound.
	// Si falta la columna Ventas se asume 0 en todas las filas.
	Load(ctx context.Context) ([]entity.Product, error)

	// SaveAndReload sobrescribe el archivo y devuelve la tabla releída desde disco.
	// Si la escritura falla devuelve la tabla recibida sin cambios junto con el error.
	SaveAndReload(ctx context.Context, products []entity.Product) ([]entity.Product, error)
}
