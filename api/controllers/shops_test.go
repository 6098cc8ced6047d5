package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/orderbuddy/orderbuddy-backend/api/middleware"
	shopsvc "github.com/orderbuddy/orderbuddy-backend/internal/shops"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
)

type stubShopService struct {
	created    *shopsvc.ShopDTO
	listed     []shopsvc.ShopDTO
	gotFilter  shopsvc.ListShopsFilter
	gotRole    enums.UserRole
	err        error
	listHits   int
	createHits int
}

func (s *stubShopService) CreateShop(ctx context.Context, ownerID uuid.UUID, role enums.UserRole, input shopsvc.CreateShopInput) (*shopsvc.ShopDTO, error) {
	s.createHits++
	s.gotRole = role
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubShopService) ListShops(ctx context.Context, filter shopsvc.ListShopsFilter) ([]shopsvc.ShopDTO, error) {
	s.listHits++
	s.gotFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.listed, nil
}

func (s *stubShopService) ListMyShops(ctx context.Context, ownerID uuid.UUID, role enums.UserRole) ([]shopsvc.ShopDTO, error) {
	s.gotRole = role
	if s.err != nil {
		return nil, s.err
	}
	return s.listed, nil
}

func authedRequest(method, target string, body string, role enums.UserRole) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := middleware.WithUserID(req.Context(), uuid.NewString())
	ctx = middleware.WithRole(ctx, string(role))
	return req.WithContext(ctx)
}

func TestCreateShopSuccess(t *testing.T) {
	svc := &stubShopService{created: &shopsvc.ShopDTO{ID: uuid.New(), Name: "Kumar Stores"}}
	handler := CreateShop(svc, nil)

	body := `{"name":"Kumar Stores","district":"Chennai","taluk":"Chennai South","village_city":"Adyar"}`
	req := authedRequest(http.MethodPost, "/api/shops", body, enums.UserRoleShopOwner)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotRole != enums.UserRoleShopOwner {
		t.Fatalf("expected role forwarded, got %s", svc.gotRole)
	}
}

func TestCreateShopRequiresAuthContext(t *testing.T) {
	handler := CreateShop(&stubShopService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/shops", strings.NewReader(`{"name":"x","district":"Chennai","taluk":"t","village_city":"v"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestCreateShopForwardsForbidden(t *testing.T) {
	svc := &stubShopService{err: pkgerrors.New(pkgerrors.CodeForbidden, "only shop owners can create shops")}
	handler := CreateShop(svc, nil)

	body := `{"name":"Kumar Stores","district":"Chennai","taluk":"Chennai South","village_city":"Adyar"}`
	req := authedRequest(http.MethodPost, "/api/shops", body, enums.UserRoleCustomer)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}

func TestListShopsAppliesLocationFilter(t *testing.T) {
	svc := &stubShopService{listed: []shopsvc.ShopDTO{{ID: uuid.New()}}}
	handler := ListShops(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/shops?district=Chennai&taluk=Chennai+South&village_city=Adyar", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotFilter.District != "Chennai" || svc.gotFilter.Taluk != "Chennai South" || svc.gotFilter.VillageCity != "Adyar" {
		t.Fatalf("unexpected filter: %+v", svc.gotFilter)
	}

	var envelope struct {
		Data []shopsvc.ShopDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("expected one shop, got %d", len(envelope.Data))
	}
}

func TestListMyShopsForwardsRole(t *testing.T) {
	svc := &stubShopService{listed: []shopsvc.ShopDTO{}}
	handler := ListMyShops(svc, nil)

	req := authedRequest(http.MethodGet, "/api/shops/my", "", enums.UserRoleShopOwner)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotRole != enums.UserRoleShopOwner {
		t.Fatalf("expected role forwarded, got %s", svc.gotRole)
	}
}
