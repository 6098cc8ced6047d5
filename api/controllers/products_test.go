package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	productsvc "github.com/orderbuddy/orderbuddy-backend/internal/products"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"github.com/orderbuddy/orderbuddy-backend/pkg/logger"
)

type stubProductService struct {
	created   *productsvc.ProductDTO
	listed    []productsvc.ProductDTO
	gotSearch productsvc.SearchProductsInput
	gotShopID uuid.UUID
	err       error
}

func (s *stubProductService) CreateProduct(ctx context.Context, ownerID, shopID uuid.UUID, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	s.gotShopID = shopID
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubProductService) ListShopProducts(ctx context.Context, shopID uuid.UUID) ([]productsvc.ProductDTO, error) {
	s.gotShopID = shopID
	if s.err != nil {
		return nil, s.err
	}
	return s.listed, nil
}

func (s *stubProductService) SearchProducts(ctx context.Context, input productsvc.SearchProductsInput) ([]productsvc.ProductDTO, error) {
	s.gotSearch = input
	if s.err != nil {
		return nil, s.err
	}
	return s.listed, nil
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func TestCreateProductSuccess(t *testing.T) {
	shopID := uuid.New()
	svc := &stubProductService{created: &productsvc.ProductDTO{ID: uuid.New(), Name: "Idli Batter"}}
	handler := CreateProduct(svc, nil)

	body := `{"name":"Idli Batter","price":45,"category":"groceries","stock_quantity":10}`
	req := authedRequest(http.MethodPost, "/api/shops/"+shopID.String()+"/products", body, enums.UserRoleShopOwner)
	req = withURLParam(req, "shopID", shopID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotShopID != shopID {
		t.Fatalf("expected shop id %s got %s", shopID, svc.gotShopID)
	}
}

func TestCreateProductRejectsBadShopID(t *testing.T) {
	handler := CreateProduct(&stubProductService{}, nil)

	req := authedRequest(http.MethodPost, "/api/shops/nope/products", `{"name":"x","price":1,"category":"c"}`, enums.UserRoleShopOwner)
	req = withURLParam(req, "shopID", "nope")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCreateProductForeignShopNotFound(t *testing.T) {
	shopID := uuid.New()
	svc := &stubProductService{err: pkgerrors.New(pkgerrors.CodeNotFound, "shop not found or not owned by user")}
	handler := CreateProduct(svc, nil)

	body := `{"name":"Idli Batter","price":45,"category":"groceries"}`
	req := authedRequest(http.MethodPost, "/api/shops/"+shopID.String()+"/products", body, enums.UserRoleShopOwner)
	req = withURLParam(req, "shopID", shopID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestListShopProducts(t *testing.T) {
	shopID := uuid.New()
	svc := &stubProductService{listed: []productsvc.ProductDTO{{ID: uuid.New()}}}
	handler := ListShopProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/shops/"+shopID.String()+"/products", nil)
	req = withURLParam(req, "shopID", shopID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotShopID != shopID {
		t.Fatalf("expected shop id forwarded")
	}
}

func TestSearchProductsForwardsQuery(t *testing.T) {
	svc := &stubProductService{listed: []productsvc.ProductDTO{}}
	handler := SearchProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/search?query=rice&district=Madurai&taluk=Melur&category=groceries", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	want := productsvc.SearchProductsInput{Query: "rice", District: "Madurai", Taluk: "Melur", Category: "groceries", Limit: 50}
	if svc.gotSearch != want {
		t.Fatalf("unexpected search input: %+v", svc.gotSearch)
	}
}

func TestSearchProductsCustomLimit(t *testing.T) {
	svc := &stubProductService{listed: []productsvc.ProductDTO{}}
	handler := SearchProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/search?query=rice&limit=10", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotSearch.Limit != 10 {
		t.Fatalf("limit not forwarded: %d", svc.gotSearch.Limit)
	}
}

func TestSearchProductsRejectsBadLimit(t *testing.T) {
	handler := SearchProducts(&stubProductService{}, nil)

	for _, raw := range []string{"abc", "0", "9999"} {
		req := httptest.NewRequest(http.MethodGet, "/api/products/search?limit="+raw, nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("limit %q: expected 400 got %d", raw, rec.Code)
		}
	}
}

func TestSearchProductsEmptyParams(t *testing.T) {
	svc := &stubProductService{listed: []productsvc.ProductDTO{}}
	handler := SearchProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/search", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty data array, got %s", rec.Body.String())
	}
}

func TestCreateProductLogsShopID(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test-products", Output: &buf})

	shopID := uuid.New()
	svc := &stubProductService{err: pkgerrors.New(pkgerrors.CodeInternal, "boom")}
	handler := CreateProduct(svc, logg)

	body := `{"name":"Idli Batter","price":45,"category":"groceries","stock_quantity":10}`
	req := authedRequest(http.MethodPost, "/api/shops/"+shopID.String()+"/products", body, enums.UserRoleShopOwner)
	req = withURLParam(req, "shopID", shopID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), `"shop_id":"`+shopID.String()+`"`) {
		t.Fatalf("expected shop_id in log output, got %s", buf.String())
	}
}
