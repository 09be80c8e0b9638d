package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
)

func newProduct(t *testing.T, code string, inventory int) entity.Product {
	t.Helper()
	p, err := entity.NewProduct(code, "Blusa", "Negro", "M", decimal.NewFromInt(100), decimal.NewFromInt(60), inventory, 0)
	require.NoError(t, err)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Product
// ──────────────────────────────────────────────────────────────────────────────

func TestNewProduct_Valido(t *testing.T) {
	p := newProduct(t, "  BL-001 ", 4)
	assert.Equal(t, "BL-001", p.Code, "el CODIGO se guarda sin espacios")
	assert.True(t, p.UnitProfit().Equal(decimal.NewFromInt(40)))
}

func TestNewProduct_Invalido(t *testing.T) {
	cases := []struct {
		name      string
		code      string
		price     decimal.Decimal
		inventory int
	}{
		{"codigo vacío", " ", decimal.NewFromInt(1), 0},
		{"precio negativo", "X", decimal.NewFromInt(-1), 0},
		{"inventario negativo", "X", decimal.NewFromInt(1), -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.NewProduct(tc.code, "", "", "", tc.price, decimal.Zero, tc.inventory, 0)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestClone_CopiaAtributos(t *testing.T) {
	p := newProduct(t, "A", 1)
	p.Attributes = map[string]string{"Temporada": "Verano"}

	c := p.Clone()
	c.Attributes["Temporada"] = "Invierno"

	assert.Equal(t, "Verano", p.Attributes["Temporada"], "el original no debe cambiar")
}

func TestIndexOf(t *testing.T) {
	products := []entity.Product{newProduct(t, "A", 1), newProduct(t, "B", 1)}
	assert.Equal(t, 1, entity.IndexOf(products, "B"))
	assert.Equal(t, -1, entity.IndexOf(products, "C"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_AnadirYQuitarRestauraInventario(t *testing.T) {
	p := newProduct(t, "A", 7)

	require.NoError(t, entity.ApplyMovement(&p, entity.StockAdd, 5))
	assert.Equal(t, 12, p.Inventory)
	require.NoError(t, entity.ApplyMovement(&p, entity.StockRemove, 5))
	assert.Equal(t, 7, p.Inventory)
}

func TestApplyMovement_QuitarMasQueDisponible(t *testing.T) {
	p := newProduct(t, "A", 3)

	err := entity.ApplyMovement(&p, entity.StockRemove, 4)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, p.Inventory, "no hay efecto parcial")
}

func TestApplyMovement_CantidadNoPositiva(t *testing.T) {
	p := newProduct(t, "A", 3)
	assert.ErrorIs(t, entity.ApplyMovement(&p, entity.StockAdd, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, entity.ApplyMovement(&p, entity.StockRemove, -2), domain.ErrInvalidInput)
	assert.Equal(t, 3, p.Inventory)
}

func TestParseStockDirection(t *testing.T) {
	d, err := entity.ParseStockDirection(" Añadir ")
	require.NoError(t, err)
	assert.Equal(t, entity.StockAdd, d)

	d, err = entity.ParseStockDirection("quitar")
	require.NoError(t, err)
	assert.Equal(t, entity.StockRemove, d)

	_, err = entity.ParseStockDirection("transferir")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestParseChannel(t *testing.T) {
	for in, want := range map[string]entity.Channel{
		"Whatsapp":         entity.ChannelWhatsapp,
		"instagram":        entity.ChannelInstagram,
		"  SHOWROOM ":      entity.ChannelShowroom,
		"Puntos de Venta":  entity.ChannelPuntosDeVenta,
		"PuntosDeVenta":    entity.ChannelPuntosDeVenta,
		"puntos  de venta": entity.ChannelPuntosDeVenta,
	} {
		got, err := entity.ParseChannel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := entity.ParseChannel("Mercado Libre")
	assert.ErrorIs(t, err, domain.ErrInvalidChannel)
}

func TestNewSaleRecord(t *testing.T) {
	at := time.Date(2024, 3, 5, 10, 20, 30, 999_000_000, time.Local)

	s, err := entity.NewSaleRecord(at, " A ", 2, "Shopify")

	require.NoError(t, err)
	assert.Equal(t, "A", s.Code)
	assert.Equal(t, entity.ChannelShopify, s.Channel)
	assert.Equal(t, 0, s.Date.Nanosecond(), "la fecha se trunca a segundos")
}

func TestNewSaleRecord_Invalida(t *testing.T) {
	_, err := entity.NewSaleRecord(time.Now(), "A", 0, "Shopify")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewSaleRecord(time.Now(), "", 1, "Shopify")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewSaleRecord(time.Now(), "A", 1, "Fax")
	assert.ErrorIs(t, err, domain.ErrInvalidChannel)
}
