package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marblecraft/internal/domain/catalog"
	"marblecraft/internal/domain/entities"
	"marblecraft/internal/domain/pricing"
	"marblecraft/internal/usecase/interfaces"

	"github.com/samber/lo"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrDesignNotFound   = errors.New("design not found")
	ErrInvalidServiceID = errors.New("invalid service id")
	ErrInvalidDesignID  = errors.New("invalid design id")
	ErrInvalidCategory  = errors.New("invalid service category")
	ErrInvalidPriceBand = errors.New("invalid price band")
)

// DesignFacets lists the distinct values the design gallery can filter on.
type DesignFacets struct {
	Colors   []string
	Origins  []string
	Patterns []string
}

// ICatalogUseCase exposes read-only catalog browsing.
//
// Lookups by id turn the store's "not found" into ErrServiceNotFound /
// ErrDesignNotFound so the HTTP layer can answer 404; list operations never
// fail for lack of matches.
type ICatalogUseCase interface {
	ListServices(category, query string) ([]entities.Service, error)
	FeaturedServices() []entities.Service
	GetService(id string) (entities.Service, error)
	ListDesigns(filter catalog.DesignFilter) ([]entities.MarbleDesign, error)
	BudgetDesigns() []entities.MarbleDesign
	PremiumDesigns() []entities.MarbleDesign
	PopularDesigns() []entities.MarbleDesign
	RecommendedDesigns(category string) []entities.MarbleDesign
	GetDesign(id string) (entities.MarbleDesign, error)
	Facets() DesignFacets
	Extras() []entities.PriceExtra
}

type CatalogUseCase struct {
	store *catalog.Store
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(store *catalog.Store) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

// LoadCatalog reads every record from src and freezes them into a Store.
func LoadCatalog(ctx context.Context, src interfaces.ICatalogSource) (*catalog.Store, error) {
	services, err := src.LoadServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	designs, err := src.LoadDesigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("load designs: %w", err)
	}
	return catalog.New(services, designs)
}

func (u *CatalogUseCase) ListServices(category, query string) ([]entities.Service, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	matches := u.store.SearchServices(strings.TrimSpace(query))
	if category == "" {
		return matches, nil
	}

	c := entities.ServiceCategory(category)
	if !c.IsValid() {
		return nil, ErrInvalidCategory
	}
	return lo.Filter(matches, func(s entities.Service, _ int) bool { return s.Category == c }), nil
}

func (u *CatalogUseCase) FeaturedServices() []entities.Service {
	return u.store.FeaturedServices()
}

func (u *CatalogUseCase) GetService(id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, ok := u.store.ServiceByID(id)
	if !ok {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *CatalogUseCase) ListDesigns(filter catalog.DesignFilter) ([]entities.MarbleDesign, error) {
	filter.PriceBand = catalog.PriceBand(strings.ToLower(strings.TrimSpace(string(filter.PriceBand))))
	if filter.PriceBand != "" && !filter.PriceBand.IsValid() {
		return nil, ErrInvalidPriceBand
	}
	return u.store.FilterDesigns(filter), nil
}

func (u *CatalogUseCase) BudgetDesigns() []entities.MarbleDesign {
	return u.store.BudgetDesigns()
}

func (u *CatalogUseCase) PremiumDesigns() []entities.MarbleDesign {
	return u.store.PremiumDesigns()
}

func (u *CatalogUseCase) PopularDesigns() []entities.MarbleDesign {
	return u.store.PopularDesigns()
}

func (u *CatalogUseCase) RecommendedDesigns(category string) []entities.MarbleDesign {
	return u.store.RecommendedDesigns(strings.TrimSpace(category))
}

func (u *CatalogUseCase) GetDesign(id string) (entities.MarbleDesign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MarbleDesign{}, ErrInvalidDesignID
	}
	d, ok := u.store.DesignByID(id)
	if !ok {
		return entities.MarbleDesign{}, ErrDesignNotFound
	}
	return d, nil
}

func (u *CatalogUseCase) Facets() DesignFacets {
	return DesignFacets{
		Colors:   u.store.AllColors(),
		Origins:  u.store.AllOrigins(),
		Patterns: u.store.AllPatterns(),
	}
}

func (u *CatalogUseCase) Extras() []entities.PriceExtra {
	return pricing.StandardExtras()
}
