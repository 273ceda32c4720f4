package repository

import (
	"context"

	"marblecraft/internal/domain/catalog"
	"marblecraft/internal/domain/entities"
	"marblecraft/internal/usecase/interfaces"
)

// StaticCatalogSource serves the source-embedded catalog.
type StaticCatalogSource struct{}

var _ interfaces.ICatalogSource = StaticCatalogSource{}

func NewStaticCatalogSource() StaticCatalogSource {
	return StaticCatalogSource{}
}

func (StaticCatalogSource) LoadServices(_ context.Context) ([]entities.Service, error) {
	return catalog.EmbeddedServices(), nil
}

func (StaticCatalogSource) LoadDesigns(_ context.Context) ([]entities.MarbleDesign, error) {
	return catalog.EmbeddedDesigns(), nil
}
