// Package analytics contiene los casos de uso de la vista de Estadísticas:
// resumen de ventas, distribución por canal, ranking de productos y reporte PDF.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/mala-inventario/internal/application/dto"
	"github.com/jhoicas/mala-inventario/internal/application/session"
	"github.com/jhoicas/mala-inventario/internal/domain/stats"
)

// ReportGenerator puerto del generador del reporte de estadísticas.
type ReportGenerator interface {
	GenerateStatisticsPDF(ctx context.Context, s *dto.StatisticsDTO, generatedAt time.Time) ([]byte, error)
}

// StatisticsUseCase deriva las métricas del registro de ventas unido al catálogo actual.
//
// Nota: utilidad y margen usan el Precio y costo vigentes del catálogo, no los del
// momento de la venta.
type StatisticsUseCase struct {
	state  *session.State
	report ReportGenerator
	now    func() time.Time
}

// NewStatisticsUseCase construye el caso de uso. report puede ser nil si no se expone el PDF.
func NewStatisticsUseCase(state *session.State, report ReportGenerator) *StatisticsUseCase {
	return &StatisticsUseCase{state: state, report: report, now: time.Now}
}

// GetStatistics calcula el resumen. Con el registro vacío devuelve HasData=false.
func (uc *StatisticsUseCase) GetStatistics() *dto.StatisticsDTO {
	snap := uc.state.Snapshot()
	return toStatisticsDTO(stats.Compute(snap.Sales, snap.Products))
}

// ReportPDF genera el reporte de estadísticas en PDF.
func (uc *StatisticsUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("estadísticas: generador de reportes no configurado")
	}
	doc, err := uc.report.GenerateStatisticsPDF(ctx, uc.GetStatistics(), uc.now())
	if err != nil {
		return nil, fmt.Errorf("estadísticas: reporte: %w", err)
	}
	return doc, nil
}

func toStatisticsDTO(s stats.Summary) *dto.StatisticsDTO {
	out := &dto.StatisticsDTO{
		HasData:       s.HasData,
		TotalUnits:    s.TotalUnits,
		Revenue:       s.Revenue.Round(2),
		TotalProfit:   s.TotalProfit.Round(2),
		UnpricedUnits: s.UnpricedUnits,
		TopSellers:    []dto.SellerDTO{},
		Channels:      []dto.ChannelDTO{},
	}
	if s.Margin.Valid {
		m := s.Margin.Decimal.Round(2)
		out.MarginPct = &m
	}
	if s.TopSeller != nil {
		out.TopSeller = &dto.SellerDTO{Rank: 1, Code: s.TopSeller.Code, Units: s.TopSeller.Units}
	}
	for i, r := range stats.TopN(s.Ranking, stats.ChartTopN) {
		out.TopSellers = append(out.TopSellers, dto.SellerDTO{Rank: i + 1, Code: r.Code, Units: r.Units})
	}
	// Cada porción se redondea por separado; la suma puede no dar exactamente 100.0.
	for _, c := range s.Channels {
		out.Channels = append(out.Channels, dto.ChannelDTO{
			Channel: string(c.Channel),
			Units:   c.Units,
			Percent: c.Percent.Round(1),
		})
	}
	return out
}
