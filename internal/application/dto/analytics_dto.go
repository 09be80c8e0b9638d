package dto

import "github.com/shopspring/decimal"

// StatisticsDTO respuesta de GET /api/statistics.
// Con el registro vacío HasData es false y el resto de campos va en cero.
type StatisticsDTO struct {
	HasData       bool             `json:"has_data"`
	TotalUnits    int              `json:"total_units"`              // piezas vendidas
	Revenue       decimal.Decimal  `json:"revenue"`                  // Σ Precio * Cantidad
	TotalProfit   decimal.Decimal  `json:"total_profit"`             // Σ (Precio - costo) * Cantidad
	MarginPct     *decimal.Decimal `json:"margin_pct"`               // nil = no disponible (ingresos cero)
	UnpricedUnits int              `json:"unpriced_units,omitempty"` // piezas de productos fuera del catálogo
	TopSeller     *SellerDTO       `json:"top_seller"`
	TopSellers    []SellerDTO      `json:"top_sellers"` // top 10 para el gráfico
	Channels      []ChannelDTO     `json:"channels"`
}

// SellerDTO unidades vendidas por código.
type SellerDTO struct {
	Rank  int    `json:"rank"`
	Code  string `json:"codigo"`
	Units int    `json:"units"`
}

// ChannelDTO participación de un canal; Percent redondeado a un decimal.
type ChannelDTO struct {
	Channel string          `json:"canal"`
	Units   int             `json:"units"`
	Percent decimal.Decimal `json:"percent"`
}
