package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mala-inventario/internal/domain"
)

// Product representa una fila del catálogo (base_datos_productos).
// Code (CODIGO) identifica el producto de forma única; Inventory nunca es negativo.
type Product struct {
	Code      string          // CODIGO
	Family    string          // Familia
	Color     string          // Color
	Size      string          // Talla
	Price     decimal.Decimal // Precio de venta
	Cost      decimal.Decimal // costo
	Inventory int             // Inventario disponible
	Sales     int             // Ventas acumuladas (unidades)

	// Attributes conserva columnas adicionales de la hoja para que sobrevivan al guardado.
	Attributes map[string]string
}

// NewProduct construye un producto validado.
func NewProduct(code, family, color, size string, price, cost decimal.Decimal, inventory, sales int) (Product, error) {
	p := Product{
		Code:      strings.TrimSpace(code),
		Family:    family,
		Color:     color,
		Size:      size,
		Price:     price,
		Cost:      cost,
		Inventory: inventory,
		Sales:     sales,
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Validate verifica los invariantes de la fila.
func (p Product) Validate() error {
	switch {
	case p.Code == "":
		return fmt.Errorf("%w: CODIGO vacío", domain.ErrInvalidInput)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: Precio negativo en %s", domain.ErrInvalidInput, p.Code)
	case p.Cost.IsNegative():
		return fmt.Errorf("%w: costo negativo en %s", domain.ErrInvalidInput, p.Code)
	case p.Inventory < 0:
		return fmt.Errorf("%w: Inventario negativo en %s", domain.ErrInvalidInput, p.Code)
	case p.Sales < 0:
		return fmt.Errorf("%w: Ventas negativas en %s", domain.ErrInvalidInput, p.Code)
	}
	return nil
}

// UnitProfit devuelve Precio - costo.
func (p Product) UnitProfit() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}

// Clone copia el producto, incluido el mapa de atributos.
func (p Product) Clone() Product {
	if p.Attributes != nil {
		attrs := make(map[string]string, len(p.Attributes))
		for k, v := range p.Attributes {
			attrs[k] = v
		}
		p.Attributes = attrs
	}
	return p
}

// CloneProducts copia una tabla completa de productos.
func CloneProducts(in []Product) []Product {
	out := make([]Product, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

// IndexOf devuelve la posición del producto con ese código, o -1.
func IndexOf(products []Product, code string) int {
	for i, p := range products {
		if p.Code == code {
			return i
		}
	}
	return -1
}
