package dto

import "time"

// RecordSaleRequest body para POST /api/sales.
type RecordSaleRequest struct {
	Code     string `json:"codigo" form:"codigo"`
	Quantity int    `json:"cantidad" form:"cantidad"`
	Channel  string `json:"canal" form:"canal"`
}

// SaleResponse una fila del registro de ventas.
type SaleResponse struct {
	Date     time.Time `json:"fecha"`
	Code     string    `json:"codigo"`
	Quantity int       `json:"cantidad"`
	Channel  string    `json:"canal"`
}

// RecordSaleResponse resultado de registrar una venta.
type RecordSaleResponse struct {
	OperationID string       `json:"operation_id"`
	Sale        SaleResponse `json:"venta"`
	Inventory   int          `json:"inventario_actual"`
	Sales       int          `json:"ventas_acumuladas"`
}
