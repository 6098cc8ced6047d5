package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	ordersvc "github.com/orderbuddy/orderbuddy-backend/internal/orders"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
)

type stubOrderService struct {
	createResp *ordersvc.MutationResult
	listed     []ordersvc.OrderDTO
	updateResp *ordersvc.MutationResult
	gotOrderID uuid.UUID
	gotStatus  string
	err        error
}

func (s *stubOrderService) CreateOrder(ctx context.Context, customerID uuid.UUID, role enums.UserRole, input ordersvc.CreateOrderInput) (*ordersvc.MutationResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.createResp, nil
}

func (s *stubOrderService) ListOrders(ctx context.Context, userID uuid.UUID, role enums.UserRole) ([]ordersvc.OrderDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.listed, nil
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, userID uuid.UUID, role enums.UserRole, orderID uuid.UUID, input ordersvc.UpdateStatusInput) (*ordersvc.MutationResult, error) {
	s.gotOrderID = orderID
	s.gotStatus = input.Status
	if s.err != nil {
		return nil, s.err
	}
	return s.updateResp, nil
}

func TestCreateOrderSuccess(t *testing.T) {
	svc := &stubOrderService{createResp: &ordersvc.MutationResult{
		Message: "Order placed successfully",
		Order:   &ordersvc.OrderDTO{ID: uuid.New(), OTP: "1234"},
	}}
	handler := CreateOrder(svc, nil)

	body := `{
		"shop_id": "` + uuid.NewString() + `",
		"items": [{"product_id":"` + uuid.NewString() + `","quantity":2,"price":45,"name":"Idli Batter"}],
		"total_amount": 90,
		"delivery_address": "12 Beach Road, Adyar"
	}`
	req := authedRequest(http.MethodPost, "/api/orders", body, enums.UserRoleCustomer)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data ordersvc.MutationResult `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Order == nil || envelope.Data.Order.OTP != "1234" {
		t.Fatalf("expected order with otp in response")
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	handler := CreateOrder(&stubOrderService{}, nil)

	body := `{"shop_id":"` + uuid.NewString() + `","items":[],"total_amount":0,"delivery_address":"addr"}`
	req := authedRequest(http.MethodPost, "/api/orders", body, enums.UserRoleCustomer)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestListOrdersSuccess(t *testing.T) {
	svc := &stubOrderService{listed: []ordersvc.OrderDTO{{ID: uuid.New()}, {ID: uuid.New()}}}
	handler := ListOrders(svc, nil)

	req := authedRequest(http.MethodGet, "/api/orders", "", enums.UserRoleShopOwner)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data []ordersvc.OrderDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected two orders, got %d", len(envelope.Data))
	}
}

func TestUpdateOrderStatusForwardsInput(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrderService{updateResp: &ordersvc.MutationResult{Message: "Order status updated successfully"}}
	handler := UpdateOrderStatus(svc, nil)

	req := authedRequest(http.MethodPatch, "/api/orders/"+orderID.String()+"/status", `{"status":"packed"}`, enums.UserRoleShopOwner)
	req = withURLParam(req, "orderID", orderID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotOrderID != orderID {
		t.Fatalf("expected order id forwarded")
	}
	if svc.gotStatus != "packed" {
		t.Fatalf("expected status packed, got %s", svc.gotStatus)
	}
}

func TestUpdateOrderStatusUnauthorizedActor(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to update this order")}
	handler := UpdateOrderStatus(svc, nil)

	req := authedRequest(http.MethodPatch, "/api/orders/"+orderID.String()+"/status", `{"status":"packed"}`, enums.UserRoleCustomer)
	req = withURLParam(req, "orderID", orderID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}
