package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mala-inventario/internal/application/dto"
	"github.com/jhoicas/mala-inventario/internal/application/session"
	"github.com/jhoicas/mala-inventario/internal/application/usecase"
	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/infrastructure/spreadsheet"
)

const catalogCSV = "CODIGO,Familia,Color,Talla,Precio,costo,Inventario,Ventas,Temporada\n" +
	"BL-001,Blusa,Negro,S,350,180,7,1,Verano\n" +
	"BL-002,Blusa,Blanco,M,420,200,3,0,Verano\n" +
	"PA-001,Pantalón,Negro,M,690,300,0,4,Invierno\n"

func newCatalogUseCase(t *testing.T, content string) *usecase.CatalogUseCase {
	t.Helper()
	dir := t.TempDir()
	catPath := filepath.Join(dir, "catalogo.csv")
	if content != "" {
		require.NoError(t, os.WriteFile(catPath, []byte(content), 0o644))
	}
	catRepo, err := spreadsheet.NewCatalogRepository(catPath)
	require.NoError(t, err)
	ledRepo, err := spreadsheet.NewLedgerRepository(filepath.Join(dir, "ventas.csv"))
	require.NoError(t, err)
	state := session.New(catRepo, ledRepo)
	_ = state.Load(context.Background())
	return usecase.NewCatalogUseCase(state)
}

func TestSearch_TextoYFiltros(t *testing.T) {
	uc := newCatalogUseCase(t, catalogCSV)

	out, err := uc.Search(dto.CatalogQuery{Query: "negro", Family: "Todos", MinPrice: "300", MaxPrice: "400"})

	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "BL-001", out.Items[0].Code)
	assert.Equal(t, "Verano", out.Items[0].Attributes["Temporada"])
}

func TestSearch_SinResultados(t *testing.T) {
	uc := newCatalogUseCase(t, catalogCSV)

	out, err := uc.Search(dto.CatalogQuery{Query: "zapato"})

	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.NotNil(t, out.Items)
}

func TestSearch_PrecioInvalido(t *testing.T) {
	uc := newCatalogUseCase(t, catalogCSV)

	_, err := uc.Search(dto.CatalogQuery{MinPrice: "barato"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByCode(t *testing.T) {
	uc := newCatalogUseCase(t, catalogCSV)

	p, err := uc.GetByCode(" PA-001 ")
	require.NoError(t, err)
	assert.Equal(t, "Pantalón", p.Family)

	_, err = uc.GetByCode("XX")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestOptions(t *testing.T) {
	uc := newCatalogUseCase(t, catalogCSV)

	o := uc.Options()

	assert.Equal(t, []string{"Blusa", "Pantalón"}, o.Families)
	assert.Equal(t, []string{"Negro", "Blanco"}, o.Colors)
	assert.Equal(t, "350", o.MinPrice.String())
	assert.Equal(t, "690", o.MaxPrice.String())
	assert.Equal(t, []string{"Whatsapp", "Instagram", "Showroom", "Shopify", "Puntos de Venta"}, o.Channels)
	assert.False(t, uc.IsEmpty())
}

func TestCatalogoInexistente(t *testing.T) {
	uc := newCatalogUseCase(t, "")

	assert.True(t, uc.IsEmpty())
	o := uc.Options()
	assert.NotNil(t, o.Families)
	assert.Empty(t, o.Families)
}
