// Package catalog holds the immutable service and design reference data and the
// pure query functions over it.
//
// A Store is built once at process start by New (or Default for the embedded
// records). It is never mutated afterwards and every accessor hands out copies,
// so a Store can be shared by any number of goroutines without locking.
package catalog

import (
	"fmt"
	"slices"
	"sync"

	"marblecraft/internal/domain/entities"

	"github.com/samber/lo"
)

type Store struct {
	services []entities.Service
	designs  []entities.MarbleDesign

	serviceIndex map[string]int
	designIndex  map[string]int
}

// New validates the records and builds a Store from private copies of them.
// Any invalid or duplicated record is a data-integrity bug and fails the build.
func New(services []entities.Service, designs []entities.MarbleDesign) (*Store, error) {
	s := &Store{
		services:     lo.Map(services, func(svc entities.Service, _ int) entities.Service { return cloneService(svc) }),
		designs:      cloneDesigns(designs),
		serviceIndex: make(map[string]int, len(services)),
		designIndex:  make(map[string]int, len(designs)),
	}

	for i, svc := range s.services {
		if err := svc.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: service #%d: %w", i, err)
		}
		if _, dup := s.serviceIndex[svc.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate service id %q", svc.ID)
		}
		s.serviceIndex[svc.ID] = i
	}

	for i, d := range s.designs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: design #%d: %w", i, err)
		}
		if _, dup := s.designIndex[d.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate design id %q", d.ID)
		}
		s.designIndex[d.ID] = i
	}

	return s, nil
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the Store built from the embedded records.
func Default() *Store {
	defaultOnce.Do(func() {
		st, err := New(EmbeddedServices(), EmbeddedDesigns())
		if err != nil {
			panic(err)
		}
		defaultStore = st
	})
	return defaultStore
}

// Services returns every service in declaration order.
func (s *Store) Services() []entities.Service {
	return cloneServices(s.services)
}

// Designs returns every design in declaration order.
func (s *Store) Designs() []entities.MarbleDesign {
	return cloneDesigns(s.designs)
}

func cloneService(svc entities.Service) entities.Service {
	svc.Features = slices.Clone(svc.Features)
	return svc
}

func cloneServices(in []entities.Service) []entities.Service {
	out := make([]entities.Service, 0, len(in))
	for _, svc := range in {
		out = append(out, cloneService(svc))
	}
	return out
}

func cloneDesigns(in []entities.MarbleDesign) []entities.MarbleDesign {
	return append(make([]entities.MarbleDesign, 0, len(in)), in...)
}
