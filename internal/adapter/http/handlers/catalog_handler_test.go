package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	request "marblecraft/internal/adapter/http/dto/request"
	response "marblecraft/internal/adapter/http/dto/response"
	"marblecraft/internal/adapter/http/handlers/mocks"
	"marblecraft/internal/domain/catalog"
	"marblecraft/internal/domain/entities"
	"marblecraft/internal/domain/pricing"
	"marblecraft/internal/infrastructure/logging"
	"marblecraft/internal/usecase"
	"marblecraft/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newCatalogRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc, logging.NewNop())

	r := gin.New()
	r.GET("/v1/services", h.ListServices)
	r.GET("/v1/services/featured", h.FeaturedServices)
	r.GET("/v1/services/:id", h.GetService)
	r.GET("/v1/designs", h.ListDesigns)
	r.GET("/v1/designs/budget", h.BudgetDesigns)
	r.GET("/v1/designs/premium", h.PremiumDesigns)
	r.GET("/v1/designs/popular", h.PopularDesigns)
	r.GET("/v1/designs/facets", h.Facets)
	r.GET("/v1/designs/recommended/:category", h.RecommendedDesigns)
	r.GET("/v1/designs/:id", h.GetDesign)
	r.GET("/v1/extras", h.Extras)
	return r, uc
}

func serve(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestCatalogHandler_ListServices(t *testing.T) {
	t.Run("invalid category", func(t *testing.T) {
		r, _ := newCatalogRouter(t)

		w := serve(r, http.MethodGet, "/v1/services?category=roofing")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().ListServices("walls", "").Return(nil, errors.New("boom"))

		w := serve(r, http.MethodGet, "/v1/services?category=walls")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		svcs := catalog.Default().ServicesByCategory(entities.CategoryStairs)
		uc.EXPECT().ListServices("stairs", "marble").Return(svcs, nil)

		w := serve(r, http.MethodGet, "/v1/services?category=stairs&q=marble")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.ServiceResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0].ID != "marble_stairs" || body[0].Complexity != "Complex" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestCatalogHandler_GetService(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().GetService("marble_roof").Return(entities.Service{}, usecase.ErrServiceNotFound)

		w := serve(r, http.MethodGet, "/v1/services/marble_roof")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "SERVICE_NOT_FOUND" {
			t.Fatalf("unexpected error code %q", body.Code)
		}
	})

	t.Run("featured is not an id", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().FeaturedServices().Return(catalog.Default().FeaturedServices())

		w := serve(r, http.MethodGet, "/v1/services/featured")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		s, _ := catalog.Default().ServiceByID("marble_flooring")
		uc.EXPECT().GetService("marble_flooring").Return(s, nil)

		w := serve(r, http.MethodGet, "/v1/services/marble_flooring")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_Designs(t *testing.T) {
	t.Run("invalid band", func(t *testing.T) {
		r, _ := newCatalogRouter(t)

		w := serve(r, http.MethodGet, "/v1/designs?price=cheap")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filter is forwarded", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		want := catalog.DesignFilter{Color: "white", Origin: "Italy", PriceBand: catalog.PriceBandStandard, Limit: 2}
		uc.EXPECT().ListDesigns(want).Return(catalog.Default().FilterDesigns(want), nil)

		w := serve(r, http.MethodGet, "/v1/designs?color=white&origin=Italy&price=Standard&limit=2")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("design not found", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().GetDesign("granite").Return(entities.MarbleDesign{}, usecase.ErrDesignNotFound)

		w := serve(r, http.MethodGet, "/v1/designs/granite")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("static routes", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		st := catalog.Default()
		uc.EXPECT().BudgetDesigns().Return(st.BudgetDesigns())
		uc.EXPECT().PremiumDesigns().Return(st.PremiumDesigns())
		uc.EXPECT().PopularDesigns().Return(st.PopularDesigns())
		uc.EXPECT().RecommendedDesigns("walls").Return(st.RecommendedDesigns("walls"))
		uc.EXPECT().Facets().Return(usecase.DesignFacets{Colors: st.AllColors(), Origins: st.AllOrigins(), Patterns: st.AllPatterns()})
		uc.EXPECT().Extras().Return(pricing.StandardExtras())

		for _, path := range []string{
			"/v1/designs/budget",
			"/v1/designs/premium",
			"/v1/designs/popular",
			"/v1/designs/recommended/walls",
			"/v1/designs/facets",
			"/v1/extras",
		} {
			if w := serve(r, http.MethodGet, path); w.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, w.Code)
			}
		}
	})
}

func TestMapCatalogError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidCategory, http.StatusBadRequest},
		{usecase.ErrInvalidPriceBand, http.StatusBadRequest},
		{usecase.ErrInvalidDesignID, http.StatusBadRequest},
		{usecase.ErrServiceNotFound, http.StatusNotFound},
		{usecase.ErrDesignNotFound, http.StatusNotFound},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := mapCatalogError(tt.err); got.HTTPStatus != tt.status {
			t.Fatalf("%v: expected %d, got %d", tt.err, tt.status, got.HTTPStatus)
		}
	}
}
