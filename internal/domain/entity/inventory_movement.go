package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/mala-inventario/internal/domain"
)

// StockDirection sentido de un ajuste de inventario.
type StockDirection string

// Sentidos de ajuste.
const (
	StockAdd    StockDirection = "Añadir" // entrada
	StockRemove StockDirection = "Quitar" // salida
)

// ParseStockDirection acepta la etiqueta del formulario o su equivalente en inglés.
func ParseStockDirection(s string) (StockDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "añadir", "anadir", "add", "in":
		return StockAdd, nil
	case "quitar", "remove", "out":
		return StockRemove, nil
	}
	return "", fmt.Errorf("%w: operación %q", domain.ErrInvalidInput, s)
}

// InventoryMovement describe un ajuste aplicado a un producto.
type InventoryMovement struct {
	OperationID string
	Code        string
	Direction   StockDirection
	Quantity    int
	Before      int
	After       int
}

// ApplyMovement ajusta el inventario de p. Una salida mayor al inventario
// disponible devuelve ErrInsufficientStock sin modificar p.
func ApplyMovement(p *Product, dir StockDirection, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	switch dir {
	case StockAdd:
		p.Inventory += quantity
	case StockRemove:
		if p.Inventory < quantity {
			return domain.ErrInsufficientStock
		}
		p.Inventory -= quantity
	default:
		return fmt.Errorf("%w: operación %q", domain.ErrInvalidInput, dir)
	}
	return nil
}
