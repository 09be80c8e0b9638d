// Package session mantiene el estado de la aplicación: el catálogo y el registro
// de ventas cargados en memoria. Cada acción del usuario se ejecuta completa bajo
// exclusión mutua y toda mutación se guarda en disco y se verifica releyendo.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
	"github.com/jhoicas/mala-inventario/internal/domain/repository"
)

// Snapshot copia de solo lectura del estado.
type Snapshot struct {
	Products []entity.Product
	Sales    []entity.SaleRecord
}

// Working copias de trabajo que recibe una mutación. Solo las tablas marcadas se guardan.
type Working struct {
	Products []entity.Product
	Sales    []entity.SaleRecord

	catalogDirty bool
	ledgerDirty  bool
}

// TouchCatalog marca el catálogo para guardarlo al confirmar.
func (w *Working) TouchCatalog() { w.catalogDirty = true }

// TouchLedger marca el registro de ventas para guardarlo al confirmar.
func (w *Working) TouchLedger() { w.ledgerDirty = true }

// State estado compartido por todas las vistas.
type State struct {
	mu          sync.Mutex
	catalogRepo repository.CatalogRepository
	ledgerRepo  repository.LedgerRepository

	products    []entity.Product
	sales       []entity.SaleRecord
	loadWarning error
}

// New construye el estado vacío; llamar a Load para leer los archivos.
func New(catalogRepo repository.CatalogRepository, ledgerRepo repository.LedgerRepository) *State {
	return &State{
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
		products:    []entity.Product{},
		sales:       []entity.SaleRecord{},
	}
}

// Load lee catálogo y ventas. Un catálogo inexistente no es fatal: el estado queda
// con un catálogo vacío y el error se devuelve (y se conserva) como advertencia.
func (s *State) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.catalogRepo.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		s.products = []entity.Product{}
		s.loadWarning = err
	case err != nil:
		return err
	default:
		s.products = products
		s.loadWarning = nil
	}

	sales, lerr := s.ledgerRepo.Load(ctx)
	if lerr != nil {
		return lerr
	}
	s.sales = sales
	return s.loadWarning
}

// Warning devuelve la advertencia de la última carga (catálogo no encontrado), si la hay.
func (s *State) Warning() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadWarning
}

// Snapshot devuelve una copia del estado actual.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *State) snapshot() Snapshot {
	return Snapshot{
		Products: entity.CloneProducts(s.products),
		Sales:    entity.CloneSales(s.sales),
	}
}

// Mutate ejecuta fn sobre copias de trabajo y confirma el resultado:
//
//  1. Si fn falla no se guarda nada y el estado no cambia.
//  2. Catálogo marcado: se escribe, se relee y la tabla releída reemplaza la de memoria.
//     Si la escritura o la relectura fallan, el estado anterior se conserva y no se
//     continúa con el registro de ventas.
//  3. Registro marcado: se adopta en memoria y se escribe. Si la escritura falla,
//     la memoria sigue siendo la referencia de la sesión y se devuelve ErrLedgerNotPersisted.
func (s *State) Mutate(ctx context.Context, fn func(w *Working) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := &Working{
		Products: entity.CloneProducts(s.products),
		Sales:    entity.CloneSales(s.sales),
	}
	if err := fn(w); err != nil {
		return s.snapshot(), err
	}

	if w.catalogDirty {
		reloaded, err := s.catalogRepo.SaveAndReload(ctx, w.Products)
		if err != nil {
			return s.snapshot(), err
		}
		s.products = reloaded
		s.loadWarning = nil
	}
	if w.ledgerDirty {
		s.sales = w.Sales
		if err := s.ledgerRepo.Save(ctx, w.Sales); err != nil {
			return s.snapshot(), fmt.Errorf("%w: %w", domain.ErrLedgerNotPersisted, err)
		}
	}
	return s.snapshot(), nil
}
