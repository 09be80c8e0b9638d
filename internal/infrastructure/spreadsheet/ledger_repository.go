package spreadsheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
	"github.com/jhoicas/mala-inventario/internal/domain/repository"
)

// Columnas fijas del registro de ventas.
const (
	ColDate     = "Fecha"
	ColQuantity = "Cantidad"
	ColChannel  = "Canal"
)

var ledgerColumns = []string{ColDate, ColCode, ColQuantity, ColChannel}

var _ repository.LedgerRepository = (*LedgerRepository)(nil)

// LedgerRepository persiste el registro de ventas en una hoja de cálculo.
type LedgerRepository struct {
	path  string
	codec codec
}

// NewLedgerRepository construye el repositorio; el formato se elige por extensión.
func NewLedgerRepository(path string) (*LedgerRepository, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}
	return &LedgerRepository{path: path, codec: c}, nil
}

// Path ruta del archivo de ventas.
func (r *LedgerRepository) Path() string { return r.path }

// Load devuelve las ventas tal como están en el archivo, o un registro vacío si no existe.
func (r *LedgerRepository) Load(ctx context.Context) ([]entity.SaleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, err := r.codec.read(r.path)
	if errors.Is(err, domain.ErrFileNotFound) {
		return []entity.SaleRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ventas %s: %w", r.path, err)
	}
	sales, err := decodeLedger(t)
	if err != nil {
		return nil, fmt.Errorf("ventas %s: %w", r.path, err)
	}
	return sales, nil
}

// Save sobrescribe el archivo con el registro completo.
func (r *LedgerRepository) Save(ctx context.Context, sales []entity.SaleRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rows := make([][]any, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []any{s.Date, s.Code, s.Quantity, string(s.Channel)})
	}
	if err := r.codec.write(r.path, ledgerColumns, rows); err != nil {
		return fmt.Errorf("guardar ventas %s: %w", r.path, err)
	}
	return nil
}

func decodeLedger(t table) ([]entity.SaleRecord, error) {
	sales := []entity.SaleRecord{}
	if len(t.header) == 0 {
		return sales, nil
	}
	idx := make(map[string]int, len(ledgerColumns))
	for _, name := range ledgerColumns {
		i := t.column(name)
		if i < 0 {
			return nil, fmt.Errorf("%w: falta la columna %s", domain.ErrInvalidInput, name)
		}
		idx[name] = i
	}
	for n, row := range t.rows {
		date, err := parseDate(row[idx[ColDate]])
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w: %v", n+2, domain.ErrInvalidInput, err)
		}
		qty, err := parseInt(row[idx[ColQuantity]])
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w: Cantidad: %v", n+2, domain.ErrInvalidInput, err)
		}
		sales = append(sales, entity.SaleRecord{
			Date:     date,
			Code:     row[idx[ColCode]],
			Quantity: qty,
			Channel:  entity.Channel(row[idx[ColChannel]]),
		})
	}
	return sales, nil
}
