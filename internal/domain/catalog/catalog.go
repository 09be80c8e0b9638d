// Package catalog contiene las consultas de solo lectura sobre el catálogo:
// búsqueda de texto, filtros combinados y opciones de los selectores.
// Ninguna función modifica la tabla recibida; siempre devuelven una copia.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/mala-inventario/internal/domain/entity"
)

// All es la opción de los selectores que no restringe el filtro.
const All = "Todos"

// PriceRange rango de precio inclusivo [Min, Max]. Un extremo nulo no restringe.
type PriceRange struct {
	Min decimal.NullDecimal
	Max decimal.NullDecimal
}

// Contains indica si price cae dentro del rango.
func (r PriceRange) Contains(price decimal.Decimal) bool {
	if r.Min.Valid && price.LessThan(r.Min.Decimal) {
		return false
	}
	if r.Max.Valid && price.GreaterThan(r.Max.Decimal) {
		return false
	}
	return true
}

// Filter criterios opcionales; se combinan con AND.
type Filter struct {
	Family string
	Color  string
	Size   string
	Price  PriceRange
}

// Search busca query (sin distinguir mayúsculas) como subcadena de CODIGO,
// Familia, Color o Talla. Una consulta vacía devuelve todo el catálogo; los espacios
// cuentan como parte de la consulta.
func Search(products []entity.Product, query string) []entity.Product {
	if query == "" {
		return entity.CloneProducts(products)
	}
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		for _, field := range []string{p.Code, p.Family, p.Color, p.Size} {
			if strings.Contains(fold.String(field), needle) {
				out = append(out, p.Clone())
				break
			}
		}
	}
	return out
}

// FilterBy aplica los filtros de Familia, Color, Talla y rango de precio.
func FilterBy(products []entity.Product, f Filter) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !matches(f.Family, p.Family) || !matches(f.Color, p.Color) || !matches(f.Size, p.Size) {
			continue
		}
		if !f.Price.Contains(p.Price) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

func matches(want, got string) bool {
	return want == "" || want == All || want == got
}

// Options valores disponibles para los selectores de las vistas.
type Options struct {
	Families []string
	Colors   []string
	Sizes    []string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
}

// BuildOptions devuelve los valores distintos en orden de aparición y los
// extremos de precio del catálogo.
func BuildOptions(products []entity.Product) Options {
	var o Options
	seen := map[string]map[string]bool{"f": {}, "c": {}, "s": {}}
	add := func(kind, v string, dst *[]string) {
		if !seen[kind][v] {
			seen[kind][v] = true
			*dst = append(*dst, v)
		}
	}
	for i, p := range products {
		add("f", p.Family, &o.Families)
		add("c", p.Color, &o.Colors)
		add("s", p.Size, &o.Sizes)
		if i == 0 || p.Price.LessThan(o.MinPrice) {
			o.MinPrice = p.Price
		}
		if i == 0 || p.Price.GreaterThan(o.MaxPrice) {
			o.MaxPrice = p.Price
		}
	}
	return o
}
