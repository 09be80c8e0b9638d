package dto

import "github.com/shopspring/decimal"

// CatalogQuery parámetros de búsqueda y filtro del catálogo (GET /api/products).
// Familia/Color/Talla vacíos o "Todos" no restringen; el rango de precio es inclusivo.
type CatalogQuery struct {
	Query    string `query:"q"`
	Family   string `query:"familia"`
	Color    string `query:"color"`
	Size     string `query:"talla"`
	MinPrice string `query:"precio_min"`
	MaxPrice string `query:"precio_max"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	Code       string            `json:"codigo"`
	Family     string            `json:"familia"`
	Color      string            `json:"color"`
	Size       string            `json:"talla"`
	Price      decimal.Decimal   `json:"precio"`
	Cost       decimal.Decimal   `json:"costo"`
	Inventory  int               `json:"inventario"`
	Sales      int               `json:"ventas"`
	Attributes map[string]string `json:"atributos,omitempty"`
}

// ProductListResponse resultado de una búsqueda.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CatalogOptionsResponse valores para los selectores de las vistas.
type CatalogOptionsResponse struct {
	Families []string        `json:"familias"`
	Colors   []string        `json:"colores"`
	Sizes    []string        `json:"tallas"`
	MinPrice decimal.Decimal `json:"precio_min"`
	MaxPrice decimal.Decimal `json:"precio_max"`
	Channels []string        `json:"canales"`
}
