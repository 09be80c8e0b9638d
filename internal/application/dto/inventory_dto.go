package dto

// AdjustStockRequest body para POST /api/inventory/adjustments.
type AdjustStockRequest struct {
	Code      string `json:"codigo" form:"codigo"`
	Quantity  int    `json:"cantidad" form:"cantidad"`
	Operation string `json:"operacion" form:"operacion"` // Añadir | Quitar
}

// MovementResponse resultado de un ajuste de inventario.
type MovementResponse struct {
	OperationID     string `json:"operation_id"`
	Code            string `json:"codigo"`
	Operation       string `json:"operacion"`
	Quantity        int    `json:"cantidad"`
	InventoryBefore int    `json:"inventario_anterior"`
	InventoryAfter  int    `json:"inventario_actual"`
}
