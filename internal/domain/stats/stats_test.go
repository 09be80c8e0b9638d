package stats_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
	"github.com/jhoicas/mala-inventario/internal/domain/stats"
)

var saleDate = time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)

func sale(code string, qty int, ch entity.Channel) entity.SaleRecord {
	return entity.SaleRecord{Date: saleDate, Code: code, Quantity: qty, Channel: ch}
}

func product(t *testing.T, code string, price, cost int64) entity.Product {
	t.Helper()
	p, err := entity.NewProduct(code, "Blusa", "Negro", "M", decimal.NewFromInt(price), decimal.NewFromInt(cost), 10, 0)
	require.NoError(t, err)
	return p
}

// Registro de referencia: 3 + 2 piezas de codeA y 10 de codeB.
func referenceLedger() []entity.SaleRecord {
	return []entity.SaleRecord{
		sale("codeA", 3, entity.ChannelWhatsapp),
		sale("codeA", 2, entity.ChannelInstagram),
		sale("codeB", 10, entity.ChannelShowroom),
	}
}

func TestTotalUnits(t *testing.T) {
	assert.Equal(t, 15, stats.TotalUnits(referenceLedger()))
}

func TestRankSellers_OrdenDescendente(t *testing.T) {
	ranking := stats.RankSellers(referenceLedger())

	require.Len(t, ranking, 2)
	assert.Equal(t, stats.SellerRank{Code: "codeB", Units: 10}, ranking[0])
	assert.Equal(t, stats.SellerRank{Code: "codeA", Units: 5}, ranking[1])
}

func TestRankSellers_EmpateGanaCodigoMenor(t *testing.T) {
	ranking := stats.RankSellers([]entity.SaleRecord{
		sale("Z-01", 4, entity.ChannelShopify),
		sale("A-01", 4, entity.ChannelShopify),
		sale("M-01", 6, entity.ChannelShopify),
	})
	require.Len(t, ranking, 3)
	assert.Equal(t, "M-01", ranking[0].Code)
	assert.Equal(t, "A-01", ranking[1].Code)
	assert.Equal(t, "Z-01", ranking[2].Code)
}

func TestCompute_EmpateTopSellerCodigoMenor(t *testing.T) {
	s := stats.Compute([]entity.SaleRecord{
		sale("Z-01", 4, entity.ChannelShopify),
		sale("A-01", 4, entity.ChannelShopify),
	}, nil)
	require.NotNil(t, s.TopSeller)
	assert.Equal(t, "A-01", s.TopSeller.Code)
	assert.Equal(t, 4, s.TopSeller.Units)
}

func TestTopN(t *testing.T) {
	ranking := stats.RankSellers(referenceLedger())
	assert.Len(t, stats.TopN(ranking, stats.ChartTopN), 2)
	assert.Len(t, stats.TopN(ranking, stats.CalloutTopN), 1)
	assert.Empty(t, stats.TopN(ranking, 0))
}

func TestChannelDistribution_Porcentajes(t *testing.T) {
	shares := stats.ChannelDistribution(referenceLedger())

	got := make(map[entity.Channel]string, len(shares))
	for _, s := range shares {
		got[s.Channel] = s.Percent.Round(1).StringFixed(1)
	}
	assert.Equal(t, map[entity.Channel]string{
		entity.ChannelWhatsapp:  "20.0",
		entity.ChannelInstagram: "13.3",
		entity.ChannelShowroom:  "66.7",
	}, got)
	assert.Equal(t, entity.ChannelInstagram, shares[0].Channel, "ordenados por nombre")
}

func TestProfitability_UtilidadYMargen(t *testing.T) {
	products := []entity.Product{product(t, "A", 100, 60)}
	joined := stats.Join([]entity.SaleRecord{sale("A", 2, entity.ChannelShopify)}, products)

	revenue, profit := stats.Profitability(joined)
	assert.True(t, revenue.Equal(decimal.NewFromInt(200)))
	assert.True(t, profit.Equal(decimal.NewFromInt(80)))

	margin, err := stats.ProfitMargin(profit, revenue)
	require.NoError(t, err)
	assert.Equal(t, "40.0", margin.StringFixed(1))
}

func TestProfitMargin_IngresosCeroNoDisponible(t *testing.T) {
	_, err := stats.ProfitMargin(decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrUndefinedMetric)
}

func TestCompute_RegistroVacio(t *testing.T) {
	s := stats.Compute(nil, []entity.Product{product(t, "A", 100, 60)})

	assert.False(t, s.HasData)
	assert.Nil(t, s.TopSeller)
	assert.False(t, s.Margin.Valid)
}

func TestCompute_ResumenCompleto(t *testing.T) {
	products := []entity.Product{product(t, "codeA", 100, 60), product(t, "codeB", 50, 40)}

	s := stats.Compute(referenceLedger(), products)

	require.True(t, s.HasData)
	assert.Equal(t, 15, s.TotalUnits)
	require.NotNil(t, s.TopSeller)
	assert.Equal(t, "codeB", s.TopSeller.Code)
	assert.Equal(t, 10, s.TopSeller.Units)
	// 5*(100-60) + 10*(50-40) = 300 sobre 5*100 + 10*50 = 1000
	assert.True(t, s.TotalProfit.Equal(decimal.NewFromInt(300)))
	require.True(t, s.Margin.Valid)
	assert.Equal(t, "30.00", s.Margin.Decimal.StringFixed(2))
	assert.Zero(t, s.UnpricedUnits)
}

func TestCompute_VentasDeProductosFueraDelCatalogo(t *testing.T) {
	products := []entity.Product{product(t, "codeA", 100, 60)}

	s := stats.Compute(referenceLedger(), products)

	assert.Equal(t, 15, s.TotalUnits, "las piezas se cuentan igual")
	assert.Equal(t, 10, s.UnpricedUnits)
	assert.True(t, s.TotalProfit.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "40.00", s.Margin.Decimal.StringFixed(2))
}

func TestCompute_IngresosCeroSinMargen(t *testing.T) {
	products := []entity.Product{product(t, "codeA", 0, 0)}

	s := stats.Compute([]entity.SaleRecord{sale("codeA", 2, entity.ChannelShopify)}, products)

	assert.True(t, s.HasData)
	assert.False(t, s.Margin.Valid)
}
