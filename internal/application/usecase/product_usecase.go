package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mala-inventario/internal/application/dto"
	"github.com/jhoicas/mala-inventario/internal/application/session"
	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/domain/catalog"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
)

// CatalogUseCase consultas de solo lectura sobre el catálogo. Stock y ventas se manejan
// en los casos de uso de inventario y ventas.
type CatalogUseCase struct {
	state *session.State
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(state *session.State) *CatalogUseCase {
	return &CatalogUseCase{state: state}
}

// Search aplica la búsqueda de texto y después los filtros (AND).
func (uc *CatalogUseCase) Search(q dto.CatalogQuery) (*dto.ProductListResponse, error) {
	f, err := toFilter(q)
	if err != nil {
		return nil, err
	}
	products := uc.state.Snapshot().Products
	found := catalog.FilterBy(catalog.Search(products, q.Query), f)
	items := make([]dto.ProductResponse, 0, len(found))
	for _, p := range found {
		items = append(items, ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// GetByCode devuelve el producto o domain.ErrProductNotFound.
func (uc *CatalogUseCase) GetByCode(code string) (*dto.ProductResponse, error) {
	products := uc.state.Snapshot().Products
	i := entity.IndexOf(products, strings.TrimSpace(code))
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}
	out := ToProductResponse(products[i])
	return &out, nil
}

// Options devuelve los valores de los selectores y los canales de venta.
func (uc *CatalogUseCase) Options() *dto.CatalogOptionsResponse {
	o := catalog.BuildOptions(uc.state.Snapshot().Products)
	channels := make([]string, 0, len(entity.Channels))
	for _, c := range entity.Channels {
		channels = append(channels, string(c))
	}
	return &dto.CatalogOptionsResponse{
		Families: nonNil(o.Families),
		Colors:   nonNil(o.Colors),
		Sizes:    nonNil(o.Sizes),
		MinPrice: o.MinPrice,
		MaxPrice: o.MaxPrice,
		Channels: channels,
	}
}

// IsEmpty indica si el catálogo no tiene productos.
func (uc *CatalogUseCase) IsEmpty() bool {
	return len(uc.state.Snapshot().Products) == 0
}

func toFilter(q dto.CatalogQuery) (catalog.Filter, error) {
	f := catalog.Filter{Family: q.Family, Color: q.Color, Size: q.Size}
	var err error
	if f.Price.Min, err = parseBound(q.MinPrice); err != nil {
		return f, err
	}
	if f.Price.Max, err = parseBound(q.MaxPrice); err != nil {
		return f, err
	}
	return f, nil
}

func parseBound(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, s)
	}
	return decimal.NewNullDecimal(d), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ToProductResponse convierte la entidad en DTO.
func ToProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		Code:       p.Code,
		Family:     p.Family,
		Color:      p.Color,
		Size:       p.Size,
		Price:      p.Price,
		Cost:       p.Cost,
		Inventory:  p.Inventory,
		Sales:      p.Sales,
		Attributes: p.Attributes,
	}
}
