package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mala-inventario/internal/application/analytics"
	"github.com/jhoicas/mala-inventario/internal/application/dto"
)

// AnalyticsHandler vista "Estadísticas", su reporte PDF y el endpoint JSON.
type AnalyticsHandler struct {
	uc    *analytics.StatisticsUseCase
	views *Views
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.StatisticsUseCase, views *Views) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, views: views}
}

type statisticsPage struct {
	Page
	Stats    *dto.StatisticsDTO
	MaxUnits int // unidades del primer puesto; escala de las barras del top 10
}

// Page GET /estadisticas
func (h *AnalyticsHandler) Page(c *fiber.Ctx) error {
	data := statisticsPage{
		Page:  h.views.page("Estadísticas", "estadisticas"),
		Stats: h.uc.GetStatistics(),
	}
	if len(data.Stats.TopSellers) > 0 {
		data.MaxUnits = data.Stats.TopSellers[0].Units
	}
	return h.views.Render(c, "statistics", data)
}

// GetStatistics godoc
// @Summary      Resumen de ventas
// @Description  Piezas vendidas, utilidad, margen (null si los ingresos son cero), distribución
// @Description  por canal y top 10 de productos. Con el registro vacío has_data es false.
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  dto.StatisticsDTO
// @Router       /api/statistics [get]
func (h *AnalyticsHandler) GetStatistics(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetStatistics())
}

// ReportPDF godoc
// @Summary      Reporte de estadísticas en PDF
// @Tags         statistics
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /estadisticas/reporte.pdf [get]
func (h *AnalyticsHandler) ReportPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ReportPDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REPORT_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="estadisticas_%s.pdf"`, time.Now().Format("20060102")))
	return c.Send(doc)
}
