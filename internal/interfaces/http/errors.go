package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mala-inventario/internal/application/dto"
	"github.com/jhoicas/mala-inventario/internal/domain"
)

// errorStatus traduce un error de dominio al status HTTP, código y mensaje visible.
func errorStatus(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrInvalidChannel):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_CHANNEL", Message: "canal de venta inválido"}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrProductNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "El producto seleccionado no existe en la base de datos."}
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "No hay suficiente inventario para esta operación."}
	case errors.Is(err, domain.ErrLedgerNotPersisted):
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "LEDGER_NOT_SAVED", Message: "El inventario se actualizó pero no se pudo guardar la venta: " + err.Error()}
	case errors.Is(err, domain.ErrPermissionOrLock):
		return fiber.StatusLocked, dto.ErrorResponse{Code: "FILE_LOCKED", Message: "No se pudo guardar el archivo. Verifica que no esté abierto o revisa los permisos."}
	case errors.Is(err, domain.ErrFileNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "FILE_NOT_FOUND", Message: "El archivo de base de datos no fue encontrado."}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "Ocurrió un error al guardar el archivo: " + err.Error()}
}

// jsonError responde el error en JSON.
func jsonError(c *fiber.Ctx, err error) error {
	status, body := errorStatus(err)
	return c.Status(status).JSON(body)
}
