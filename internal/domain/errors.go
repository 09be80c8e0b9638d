package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrFileNotFound       = errors.New("archivo no encontrado")
	ErrPermissionOrLock   = errors.New("no se pudo guardar el archivo: verifica que no esté abierto o revisa los permisos")
	ErrProductNotFound    = errors.New("el producto seleccionado no existe en la base de datos")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrUndefinedMetric    = errors.New("métrica no disponible")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidChannel     = errors.New("canal de venta inválido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrLedgerNotPersisted = errors.New("la venta no se pudo guardar en el registro de ventas")
)
