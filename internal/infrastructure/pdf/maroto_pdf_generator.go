// Package pdf genera el reporte de estadísticas de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: MALA + título          │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Piezas | Utilidad | Margen                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CANALES: Canal | Piezas | %                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOP 10: # | Código | Cantidad vendida                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mala-inventario/internal/application/analytics"
	"github.com/jhoicas/mala-inventario/internal/application/dto"
)

// ── Paleta de colores (grises, como los gráficos de la vista) ─────────────────

var (
	colorPrimary = &props.Color{Red: 51, Green: 51, Blue: 51}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.ReportGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	brand string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(brand string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{brand: brand}
}

// GenerateStatisticsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStatisticsPDF(_ context.Context, s *dto.StatisticsDTO, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estadísticas de ventas", true).
		WithAuthor(g.brand, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.brand, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if !s.HasData {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No se han registrado ventas todavía.", props.Text{
				Size: 10, Top: 4, Align: align.Center, Color: colorGray,
			}),
		)))
	} else {
		m.AddRows(summaryRow(s))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

		m.AddRows(sectionRow("DISTRIBUCIÓN POR CANAL"))
		m.AddRows(tableHeaderRow([]string{"Canal", "Piezas", "Porcentaje"}, []int{6, 3, 3}))
		for _, c := range s.Channels {
			m.AddRows(tableRow([]string{c.Channel, strconv.Itoa(c.Units), c.Percent.StringFixed(1) + "%"}, []int{6, 3, 3}))
		}

		m.AddRows(line.NewRow(3))
		m.AddRows(sectionRow("TOP 10 PRODUCTOS MÁS VENDIDOS"))
		m.AddRows(tableHeaderRow([]string{"#", "Código de producto", "Cantidad vendida"}, []int{1, 7, 4}))
		for _, r := range s.TopSellers {
			m.AddRows(tableRow([]string{strconv.Itoa(r.Rank), r.Code, strconv.Itoa(r.Units)}, []int{1, 7, 4}))
		}
		if s.TopSeller != nil {
			m.AddRows(row.New(10).Add(col.New(12).Add(
				text.New(fmt.Sprintf("Producto más vendido: %s con %d unidades.", s.TopSeller.Code, s.TopSeller.Units), props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 4,
				}),
			)))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(brand string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(brand, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New("Estadísticas de ventas", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// summaryRow: tres métricas principales.
func summaryRow(s *dto.StatisticsDTO) core.Row {
	margin := "No disponible"
	if s.MarginPct != nil {
		margin = s.MarginPct.StringFixed(2) + "%"
	}
	metric := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 13, Align: align.Center, Top: 8}),
		)
	}
	return row.New(20).Add(
		metric("Piezas vendidas", strconv.Itoa(s.TotalUnits)),
		metric("Utilidad total", "$"+FormatMoney(s.TotalProfit)),
		metric("Margen de utilidad", margin),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, len(labels))
	for i, l := range labels {
		cols[i] = col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 2, Left: 1,
		}))
	}
	return row.New(7).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, len(values))
	for i, v := range values {
		cols[i] = col.New(sizes[i]).Add(text.New(v, props.Text{Size: 8, Top: 1, Left: 1}))
	}
	return row.New(6).Add(cols...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// FormatMoney formatea con separador de miles y dos decimales.
// Ej: 1234567.5 → "1,234,567.50", -80 → "-80.00"
func FormatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "." + frac
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}
