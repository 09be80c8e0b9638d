// Package stats implementa el motor de estadísticas de ventas (servicio de dominio).
//
// Todas las métricas se derivan del registro de ventas unido (left join por CODIGO)
// con el catálogo actual:
//
//	utilidad_unitaria = Precio - costo
//	utilidad_total    = Σ utilidad_unitaria * Cantidad
//	margen_%          = utilidad_total / Σ (Precio * Cantidad) * 100
//
// Las ventas de productos que ya no están en el catálogo no tienen precio ni costo:
// cuentan como piezas vendidas pero quedan fuera de utilidad e ingresos.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
)

const (
	ChartTopN   = 10 // barras del gráfico de más vendidos
	CalloutTopN = 1  // mención del producto más vendido
)

var hundred = decimal.NewFromInt(100)

// JoinedSale venta con el precio y costo actuales del producto (nulos si ya no existe).
type JoinedSale struct {
	entity.SaleRecord
	Price decimal.NullDecimal
	Cost  decimal.NullDecimal
}

// Priced indica si la venta encontró su producto en el catálogo.
func (j JoinedSale) Priced() bool {
	return j.Price.Valid && j.Cost.Valid
}

// SellerRank unidades vendidas acumuladas por código.
type SellerRank struct {
	Code  string
	Units int
}

// ChannelShare participación de un canal en las unidades vendidas.
type ChannelShare struct {
	Channel entity.Channel
	Units   int
	Percent decimal.Decimal // sin redondear; la vista redondea cada porción
}

// Summary resultado del motor de estadísticas.
type Summary struct {
	HasData       bool
	TotalUnits    int
	Revenue       decimal.Decimal
	TotalProfit   decimal.Decimal
	Margin        decimal.NullDecimal // inválido cuando los ingresos son cero
	UnpricedUnits int                 // piezas vendidas de productos fuera del catálogo
	TopSeller     *SellerRank
	Ranking       []SellerRank
	Channels      []ChannelShare
}

// Join une cada venta con el producto del mismo código (left join).
func Join(sales []entity.SaleRecord, products []entity.Product) []JoinedSale {
	byCode := make(map[string]entity.Product, len(products))
	for _, p := range products {
		if _, ok := byCode[p.Code]; !ok {
			byCode[p.Code] = p
		}
	}
	out := make([]JoinedSale, 0, len(sales))
	for _, s := range sales {
		j := JoinedSale{SaleRecord: s}
		if p, ok := byCode[s.Code]; ok {
			j.Price = decimal.NewNullDecimal(p.Price)
			j.Cost = decimal.NewNullDecimal(p.Cost)
		}
		out = append(out, j)
	}
	return out
}

// TotalUnits suma Cantidad sobre todo el registro.
func TotalUnits(sales []entity.SaleRecord) int {
	total := 0
	for _, s := range sales {
		total += s.Quantity
	}
	return total
}

// Profitability devuelve ingresos y utilidad total de las ventas con precio conocido.
func Profitability(joined []JoinedSale) (revenue, profit decimal.Decimal) {
	for _, j := range joined {
		if !j.Priced() {
			continue
		}
		qty := decimal.NewFromInt(int64(j.Quantity))
		revenue = revenue.Add(j.Price.Decimal.Mul(qty))
		profit = profit.Add(j.Price.Decimal.Sub(j.Cost.Decimal).Mul(qty))
	}
	return revenue, profit
}

// ProfitMargin calcula utilidad / ingresos * 100. Con ingresos cero la métrica
// no está definida y devuelve domain.ErrUndefinedMetric.
func ProfitMargin(profit, revenue decimal.Decimal) (decimal.Decimal, error) {
	if revenue.IsZero() {
		return decimal.Zero, domain.ErrUndefinedMetric
	}
	return profit.Div(revenue).Mul(hundred), nil
}

// RankSellers agrupa por CODIGO y ordena por unidades descendente. Los grupos salen
// ordenados por CODIGO ascendente, así que en un empate gana el código menor.
func RankSellers(sales []entity.SaleRecord) []SellerRank {
	index := make(map[string]int)
	var ranking []SellerRank
	for _, s := range sales {
		i, ok := index[s.Code]
		if !ok {
			i = len(ranking)
			index[s.Code] = i
			ranking = append(ranking, SellerRank{Code: s.Code})
		}
		ranking[i].Units += s.Quantity
	}
	sort.Slice(ranking, func(a, b int) bool { return ranking[a].Code < ranking[b].Code })
	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Units > ranking[b].Units
	})
	return ranking
}

// TopN recorta el ranking a los primeros n.
func TopN(ranking []SellerRank, n int) []SellerRank {
	if n < 0 {
		n = 0
	}
	if n > len(ranking) {
		n = len(ranking)
	}
	out := make([]SellerRank, n)
	copy(out, ranking[:n])
	return out
}

// ChannelDistribution suma Cantidad por canal y la expresa como porcentaje del total.
// Los canales se ordenan por nombre.
func ChannelDistribution(sales []entity.SaleRecord) []ChannelShare {
	units := make(map[entity.Channel]int)
	total := 0
	for _, s := range sales {
		units[s.Channel] += s.Quantity
		total += s.Quantity
	}
	out := make([]ChannelShare, 0, len(units))
	for ch, u := range units {
		share := ChannelShare{Channel: ch, Units: u}
		if total > 0 {
			share.Percent = decimal.NewFromInt(int64(u)).Div(decimal.NewFromInt(int64(total))).Mul(hundred)
		}
		out = append(out, share)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Channel < out[b].Channel })
	return out
}

// Compute calcula todas las métricas. Un registro vacío devuelve HasData=false.
func Compute(sales []entity.SaleRecord, products []entity.Product) Summary {
	if len(sales) == 0 {
		return Summary{}
	}
	joined := Join(sales, products)
	revenue, profit := Profitability(joined)

	s := Summary{
		HasData:     true,
		TotalUnits:  TotalUnits(sales),
		Revenue:     revenue,
		TotalProfit: profit,
		Ranking:     RankSellers(sales),
		Channels:    ChannelDistribution(sales),
	}
	if m, err := ProfitMargin(profit, revenue); err == nil {
		s.Margin = decimal.NewNullDecimal(m)
	}
	for _, j := range joined {
		if !j.Priced() {
			s.UnpricedUnits += j.Quantity
		}
	}
	if top := TopN(s.Ranking, CalloutTopN); len(top) == 1 {
		s.TopSeller = &top[0]
	}
	return s
}
