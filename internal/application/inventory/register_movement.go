package inventory

import (
	"context"

	"github.com/jhoicas/mala-inventario/internal/application/dto"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
)

// AdjustStockFromRequest adapta el request HTTP (formulario o JSON) al caso de uso AdjustStock.
func (uc *AdjustStockUseCase) AdjustStockFromRequest(ctx context.Context, in dto.AdjustStockRequest) (*dto.MovementResponse, error) {
	dir, err := entity.ParseStockDirection(in.Operation)
	if err != nil {
		return nil, err
	}
	mov, err := uc.AdjustStock(ctx, AdjustInput{Code: in.Code, Quantity: in.Quantity, Direction: dir})
	if err != nil {
		return nil, err
	}
	return &dto.MovementResponse{
		OperationID:     mov.OperationID,
		Code:            mov.Code,
		Operation:       string(mov.Direction),
		Quantity:        mov.Quantity,
		InventoryBefore: mov.Before,
		InventoryAfter:  mov.After,
	}, nil
}
