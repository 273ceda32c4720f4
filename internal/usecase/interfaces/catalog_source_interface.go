package interfaces

import (
	"context"
	"marblecraft/internal/domain/entities"
)

// ICatalogSource loads the catalog reference data once at process start.
//
// Records come back unvalidated; catalog.New is responsible for rejecting
// anything that breaks the catalog invariants.
type ICatalogSource interface {
	LoadServices(ctx context.Context) ([]entities.Service, error)
	LoadDesigns(ctx context.Context) ([]entities.MarbleDesign, error)
}
