package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	dashboardsvc "github.com/orderbuddy/orderbuddy-backend/internal/dashboard"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
)

type stubDashboardService struct {
	stats   *dashboardsvc.Stats
	gotRole enums.UserRole
	err     error
}

func (s *stubDashboardService) GetStats(ctx context.Context, userID uuid.UUID, role enums.UserRole) (*dashboardsvc.Stats, error) {
	s.gotRole = role
	if s.err != nil {
		return nil, s.err
	}
	return s.stats, nil
}

func TestDashboardStatsCustomer(t *testing.T) {
	orders := int64(3)
	cartItems := int64(2)
	svc := &stubDashboardService{stats: &dashboardsvc.Stats{
		UserType:    enums.UserRoleCustomer,
		TotalOrders: &orders,
		CartItems:   &cartItems,
	}}
	handler := DashboardStats(svc, nil)

	req := authedRequest(http.MethodGet, "/api/dashboard/stats", "", enums.UserRoleCustomer)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotRole != enums.UserRoleCustomer {
		t.Fatalf("expected role forwarded, got %s", svc.gotRole)
	}

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data["user_type"] != "customer" {
		t.Fatalf("expected user_type customer, got %v", envelope.Data["user_type"])
	}
	if _, present := envelope.Data["total_revenue"]; present {
		t.Fatalf("expected shop owner fields omitted for customers")
	}
}

func TestDashboardStatsUnknownRole(t *testing.T) {
	svc := &stubDashboardService{err: pkgerrors.New(pkgerrors.CodeForbidden, "unsupported user type")}
	handler := DashboardStats(svc, nil)

	req := authedRequest(http.MethodGet, "/api/dashboard/stats", "", enums.UserRole("intruder"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}
