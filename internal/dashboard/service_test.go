package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
)

type stubShopCounter struct {
	shopIDs []uuid.UUID
}

func (s *stubShopCounter) ListIDsByOwner(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return s.shopIDs, nil
}

type stubProductCounter struct {
	count int64
}

func (s *stubProductCounter) CountByShops(_ context.Context, shopIDs []uuid.UUID) (int64, error) {
	if len(shopIDs) == 0 {
		return 0, nil
	}
	return s.count, nil
}

type stubOrderCounter struct {
	byCustomer  int64
	byShops     int64
	byDriverAll int64
	byDriverSub int64
	totals      []float64
}

func (s *stubOrderCounter) CountByCustomer(_ context.Context, _ uuid.UUID) (int64, error) {
	return s.byCustomer, nil
}

func (s *stubOrderCounter) CountByShops(_ context.Context, _ []uuid.UUID) (int64, error) {
	return s.byShops, nil
}

func (s *stubOrderCounter) CountByDeliveryPerson(_ context.Context, _ uuid.UUID, statuses ...enums.OrderStatus) (int64, error) {
	if len(statuses) > 0 {
		return s.byDriverSub, nil
	}
	return s.byDriverAll, nil
}

func (s *stubOrderCounter) SumTotalsByShops(_ context.Context, _ []uuid.UUID) ([]float64, error) {
	return s.totals, nil
}

type stubCartCounter struct {
	count int64
}

func (s *stubCartCounter) CountByCustomer(_ context.Context, _ uuid.UUID) (int64, error) {
	return s.count, nil
}

func buildService(t *testing.T, shops *stubShopCounter, products *stubProductCounter, orders *stubOrderCounter, cart *stubCartCounter) Service {
	t.Helper()
	svc, err := NewService(shops, products, orders, cart)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestShopOwnerStatsSumsRevenueExactly(t *testing.T) {
	svc := buildService(t,
		&stubShopCounter{shopIDs: []uuid.UUID{uuid.New(), uuid.New()}},
		&stubProductCounter{count: 14},
		&stubOrderCounter{byShops: 3, totals: []float64{0.1, 0.2, 99.95}},
		&stubCartCounter{},
	)

	stats, err := svc.GetStats(context.Background(), uuid.New(), enums.UserRoleShopOwner)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.UserType != enums.UserRoleShopOwner {
		t.Fatalf("unexpected user type %s", stats.UserType)
	}
	if *stats.TotalShops != 2 || *stats.TotalProducts != 14 || *stats.TotalOrders != 3 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	// 0.1 + 0.2 must not come out as 0.30000000000000004.
	if *stats.TotalRevenue != "100.25" {
		t.Fatalf("expected revenue 100.25, got %s", *stats.TotalRevenue)
	}
	if stats.CartItems != nil || stats.TotalDeliveries != nil {
		t.Fatal("shop owner stats must not include other role fields")
	}
}

func TestCustomerStats(t *testing.T) {
	svc := buildService(t,
		&stubShopCounter{},
		&stubProductCounter{},
		&stubOrderCounter{byCustomer: 5},
		&stubCartCounter{count: 3},
	)

	stats, err := svc.GetStats(context.Background(), uuid.New(), enums.UserRoleCustomer)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if *stats.TotalOrders != 5 || *stats.CartItems != 3 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalShops != nil || stats.TotalRevenue != nil {
		t.Fatal("customer stats must not include shop owner fields")
	}
}

func TestDeliveryPersonStats(t *testing.T) {
	svc := buildService(t,
		&stubShopCounter{},
		&stubProductCounter{},
		&stubOrderCounter{byDriverAll: 12, byDriverSub: 4},
		&stubCartCounter{},
	)

	stats, err := svc.GetStats(context.Background(), uuid.New(), enums.UserRoleDeliveryPerson)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if *stats.TotalDeliveries != 12 || *stats.PendingDeliveries != 4 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
}

func TestStatsRejectsUnknownRole(t *testing.T) {
	svc := buildService(t, &stubShopCounter{}, &stubProductCounter{}, &stubOrderCounter{}, &stubCartCounter{})

	_, err := svc.GetStats(context.Background(), uuid.New(), enums.UserRole("admin"))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
