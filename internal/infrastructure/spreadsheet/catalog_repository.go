package spreadsheet

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
	"github.com/jhoicas/mala-inventario/internal/domain/repository"
	"github.com/jhoicas/mala-inventario/pkg/logger"
)

// Columnas del catálogo en el orden en que se escriben.
const (
	ColCode      = "CODIGO"
	ColFamily    = "Familia"
	ColColor     = "Color"
	ColSize      = "Talla"
	ColPrice     = "Precio"
	ColCost      = "costo"
	ColInventory = "Inventario"
	ColSales     = "Ventas"
)

var catalogColumns = []string{ColCode, ColFamily, ColColor, ColSize, ColPrice, ColCost, ColInventory, ColSales}

// requiredCatalogColumns todas salvo Ventas, que se completa con 0 si falta.
var requiredCatalogColumns = catalogColumns[:7]

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository persiste el catálogo en una hoja de cálculo.
type CatalogRepository struct {
	path  string
	codec codec
	log   *logger.Logger
}

// NewCatalogRepository construye el repositorio; el formato se elige por extensión (.xlsx o .csv).
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}
	return &CatalogRepository{path: path, codec: c, log: logger.Nop()}, nil
}

// WithLogger asigna el logger para las advertencias de carga.
func (r *CatalogRepository) WithLogger(log *logger.Logger) *CatalogRepository {
	if log != nil {
		r.log = log
	}
	return r
}

// Path ruta del archivo del catálogo.
func (r *CatalogRepository) Path() string { return r.path }

// Load lee el catálogo. Devuelve domain.ErrFileNotFound si el archivo no existe.
func (r *CatalogRepository) Load(ctx context.Context) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, err := r.codec.read(r.path)
	if err != nil {
		return nil, fmt.Errorf("catálogo %s: %w", r.path, err)
	}
	products, skipped, err := decodeCatalog(t)
	if err != nil {
		return nil, fmt.Errorf("catálogo %s: %w", r.path, err)
	}
	if len(skipped) > 0 {
		r.log.Warn().
			Str("archivo", r.path).
			Ints("filas", skipped).
			Msg("filas sin CODIGO omitidas; se eliminarán al guardar el catálogo")
	}
	return products, nil
}

// SaveAndReload sobrescribe el archivo y lo vuelve a leer para normalizar tipos y columnas.
// Ante un error devuelve la tabla recibida sin cambios.
func (r *CatalogRepository) SaveAndReload(ctx context.Context, products []entity.Product) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return products, err
	}
	header, rows := encodeCatalog(products)
	if err := r.codec.write(r.path, header, rows); err != nil {
		return products, fmt.Errorf("guardar catálogo %s: %w", r.path, err)
	}
	reloaded, err := r.Load(ctx)
	if err != nil {
		return products, fmt.Errorf("releer catálogo: %w", err)
	}
	return reloaded, nil
}

// decodeCatalog convierte la tabla en productos. Las filas sin CODIGO se omiten y
// se devuelven sus números de fila.
func decodeCatalog(t table) ([]entity.Product, []int, error) {
	if len(t.header) == 0 {
		return []entity.Product{}, nil, nil
	}
	idx := make(map[string]int, len(catalogColumns))
	for _, name := range catalogColumns {
		idx[name] = t.column(name)
	}
	for _, name := range requiredCatalogColumns {
		if idx[name] < 0 {
			return nil, nil, fmt.Errorf("%w: falta la columna %s", domain.ErrInvalidInput, name)
		}
	}
	known := make(map[int]bool, len(idx))
	for _, i := range idx {
		if i >= 0 {
			known[i] = true
		}
	}

	products := make([]entity.Product, 0, len(t.rows))
	seen := make(map[string]int, len(t.rows))
	var skipped []int
	for n, row := range t.rows {
		line := n + 2 // fila 1 es el encabezado
		if strings.TrimSpace(row[idx[ColCode]]) == "" {
			skipped = append(skipped, line)
			continue
		}
		p, err := decodeProduct(row, idx)
		if err != nil {
			return nil, nil, fmt.Errorf("fila %d: %w", line, err)
		}
		if prev, dup := seen[p.Code]; dup {
			return nil, nil, fmt.Errorf("fila %d: %w: CODIGO %s ya aparece en la fila %d", line, domain.ErrDuplicate, p.Code, prev)
		}
		seen[p.Code] = line
		for i, h := range t.header {
			if known[i] || h == "" {
				continue
			}
			if p.Attributes == nil {
				p.Attributes = make(map[string]string)
			}
			p.Attributes[h] = row[i]
		}
		products = append(products, p)
	}
	return products, skipped, nil
}

func decodeProduct(row []string, idx map[string]int) (entity.Product, error) {
	get := func(name string) string {
		if i := idx[name]; i >= 0 {
			return row[i]
		}
		return ""
	}
	price, err := parseDecimal(get(ColPrice))
	if err != nil {
		return entity.Product{}, fmt.Errorf("%w: Precio %q", domain.ErrInvalidInput, get(ColPrice))
	}
	cost, err := parseDecimal(get(ColCost))
	if err != nil {
		return entity.Product{}, fmt.Errorf("%w: costo %q", domain.ErrInvalidInput, get(ColCost))
	}
	inventory, err := parseInt(get(ColInventory))
	if err != nil {
		return entity.Product{}, fmt.Errorf("%w: Inventario: %v", domain.ErrInvalidInput, err)
	}
	sales, err := parseInt(get(ColSales))
	if err != nil {
		return entity.Product{}, fmt.Errorf("%w: Ventas: %v", domain.ErrInvalidInput, err)
	}
	return entity.NewProduct(get(ColCode), get(ColFamily), get(ColColor), get(ColSize), price, cost, inventory, sales)
}

// encodeCatalog escribe las columnas conocidas y después las adicionales en orden alfabético.
func encodeCatalog(products []entity.Product) ([]string, [][]any) {
	extraSet := make(map[string]bool)
	for _, p := range products {
		for k := range p.Attributes {
			extraSet[k] = true
		}
	}
	extras := make([]string, 0, len(extraSet))
	for k := range extraSet {
		extras = append(extras, k)
	}
	sort.Strings(extras)

	header := append(append([]string{}, catalogColumns...), extras...)
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		row := []any{p.Code, p.Family, p.Color, p.Size, p.Price, p.Cost, p.Inventory, p.Sales}
		for _, k := range extras {
			row = append(row, p.Attributes[k])
		}
		rows = append(rows, row)
	}
	return header, rows
}
