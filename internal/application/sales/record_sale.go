// Package sales contiene el registro de ventas: valida la venta, descuenta
// inventario, acumula Ventas y agrega la fila al registro.
package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/mala-inventario/internal/application/dto"
	"github.com/jhoicas/mala-inventario/internal/application/session"
	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
	"github.com/jhoicas/mala-inventario/pkg/logger"
)

// RecentSalesDefault filas del historial que muestra la vista de ventas.
const RecentSalesDefault = 5

// RecordSaleUseCase registra ventas sobre el estado de la sesión.
type RecordSaleUseCase struct {
	state *session.State
	log   *logger.Logger
	now   func() time.Time
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(state *session.State, log *logger.Logger) *RecordSaleUseCase {
	return &RecordSaleUseCase{state: state, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (para pruebas).
func (uc *RecordSaleUseCase) WithClock(now func() time.Time) *RecordSaleUseCase {
	uc.now = now
	return uc
}

// RecordSale valida y registra la venta. Orden de validación: cantidad y canal,
// producto existente, inventario suficiente (sin cumplimiento parcial).
// El catálogo se guarda antes que el registro; si el registro no se puede guardar
// el inventario ya quedó descontado y se devuelve ErrLedgerNotPersisted.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	code := strings.TrimSpace(in.Code)
	sale, err := entity.NewSaleRecord(uc.now(), code, in.Quantity, in.Channel)
	if err != nil {
		return nil, err
	}
	opID := uuid.New().String()

	snap, err := uc.state.Mutate(ctx, func(w *session.Working) error {
		i := entity.IndexOf(w.Products, sale.Code)
		if i < 0 {
			return domain.ErrProductNotFound
		}
		p := &w.Products[i]
		if p.Inventory < sale.Quantity {
			return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, p.Inventory, sale.Quantity)
		}
		p.Inventory -= sale.Quantity
		p.Sales += sale.Quantity
		w.Sales = append(w.Sales, sale)
		w.TouchCatalog()
		w.TouchLedger()
		return nil
	})
	ev := uc.log.Info()
	if err != nil {
		ev = uc.log.Warn().Err(err)
		if errors.Is(err, domain.ErrLedgerNotPersisted) {
			ev = uc.log.Error().Err(err)
		}
	}
	ev.Str("operation_id", opID).
		Str("codigo", sale.Code).
		Int("cantidad", sale.Quantity).
		Str("canal", string(sale.Channel)).
		Msg("registro de venta")

	if err != nil && !errors.Is(err, domain.ErrLedgerNotPersisted) {
		return nil, err
	}

	out := &dto.RecordSaleResponse{OperationID: opID, Sale: toSaleResponse(sale)}
	if i := entity.IndexOf(snap.Products, sale.Code); i >= 0 {
		out.Inventory = snap.Products[i].Inventory
		out.Sales = snap.Products[i].Sales
	}
	return out, err
}

// RecentSales devuelve las últimas n ventas en orden de registro.
func (uc *RecordSaleUseCase) RecentSales(n int) []dto.SaleResponse {
	all := uc.state.Snapshot().Sales
	if n <= 0 {
		n = RecentSalesDefault
	}
	if n > len(all) {
		n = len(all)
	}
	out := make([]dto.SaleResponse, 0, n)
	for _, s := range all[len(all)-n:] {
		out = append(out, toSaleResponse(s))
	}
	return out
}

func toSaleResponse(s entity.SaleRecord) dto.SaleResponse {
	return dto.SaleResponse{
		Date:     s.Date,
		Code:     s.Code,
		Quantity: s.Quantity,
		Channel:  string(s.Channel),
	}
}
