package catalog

import (
	"strings"

	"marblecraft/internal/domain/entities"

	"github.com/samber/lo"
)

const featuredServiceCount = 3

// ServiceByID reports false when no service has the id.
func (s *Store) ServiceByID(id string) (entities.Service, bool) {
	i, ok := s.serviceIndex[id]
	if !ok {
		return entities.Service{}, false
	}
	return cloneService(s.services[i]), true
}

func (s *Store) ServicesByCategory(category entities.ServiceCategory) []entities.Service {
	return s.filterServices(func(svc entities.Service) bool {
		return svc.Category == category
	})
}

// FeaturedServices returns the first services of the catalog.
func (s *Store) FeaturedServices() []entities.Service {
	n := min(featuredServiceCount, len(s.services))
	return cloneServices(s.services[:n])
}

// SearchServices matches name, description and features, case-insensitively.
// An empty query matches everything.
func (s *Store) SearchServices(query string) []entities.Service {
	q := strings.ToLower(query)
	return s.filterServices(func(svc entities.Service) bool {
		return containsFold(svc.Name, q) ||
			containsFold(svc.Description, q) ||
			lo.SomeBy(svc.Features, func(f string) bool { return containsFold(f, q) })
	})
}

func (s *Store) filterServices(keep func(entities.Service) bool) []entities.Service {
	matched := lo.Filter(s.services, func(svc entities.Service, _ int) bool { return keep(svc) })
	return cloneServices(matched)
}

// containsFold expects lowerNeedle to be lower-cased already.
func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
