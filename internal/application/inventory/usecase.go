package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/mala-inventario/internal/application/session"
	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
	"github.com/jhoicas/mala-inventario/pkg/logger"
)

// AdjustStockUseCase añade o quita unidades del inventario de un producto y guarda el
// catálogo (escribir y releer). Una salida mayor al inventario disponible se rechaza
// sin efecto alguno.
type AdjustStockUseCase struct {
	state *session.State
	log   *logger.Logger
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(state *session.State, log *logger.Logger) *AdjustStockUseCase {
	return &AdjustStockUseCase{state: state, log: log}
}

// AdjustInput entrada del ajuste.
type AdjustInput struct {
	Code      string
	Quantity  int
	Direction entity.StockDirection
}

// AdjustStock aplica el ajuste. Errores: ErrInvalidInput (cantidad <= 0),
// ErrProductNotFound, ErrInsufficientStock y los de persistencia (ErrPermissionOrLock).
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, in AdjustInput) (*entity.InventoryMovement, error) {
	code := strings.TrimSpace(in.Code)
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero positivo", domain.ErrInvalidInput)
	}
	opID := uuid.New().String()
	mov := &entity.InventoryMovement{
		OperationID: opID,
		Code:        code,
		Direction:   in.Direction,
		Quantity:    in.Quantity,
	}

	snap, err := uc.state.Mutate(ctx, func(w *session.Working) error {
		i := entity.IndexOf(w.Products, code)
		if i < 0 {
			return domain.ErrProductNotFound
		}
		mov.Before = w.Products[i].Inventory
		if err := entity.ApplyMovement(&w.Products[i], in.Direction, in.Quantity); err != nil {
			return err
		}
		w.TouchCatalog()
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).
			Str("operation_id", opID).
			Str("codigo", code).
			Str("operacion", string(in.Direction)).
			Int("cantidad", in.Quantity).
			Msg("ajuste de inventario rechazado")
		return nil, err
	}

	if i := entity.IndexOf(snap.Products, code); i >= 0 {
		mov.After = snap.Products[i].Inventory
	}
	uc.log.Info().
		Str("operation_id", opID).
		Str("codigo", code).
		Str("operacion", string(in.Direction)).
		Int("cantidad", in.Quantity).
		Int("inventario", mov.After).
		Msg("inventario actualizado")
	return mov, nil
}
