package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubCartRepo struct {
	lines   map[uuid.UUID]*models.CartItem // productID -> line
	deleted int64
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{lines: map[uuid.UUID]*models.CartItem{}}
}

func (s *stubCartRepo) Upsert(_ context.Context, item *models.CartItem) (bool, error) {
	if existing, ok := s.lines[item.ProductID]; ok {
		existing.Quantity += item.Quantity
		return true, nil
	}
	item.ID = uuid.New()
	s.lines[item.ProductID] = item
	return true, nil
}

func (s *stubCartRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, line := range s.lines {
		if line.CustomerID == customerID {
			out = append(out, *line)
		}
	}
	return out, nil
}

func (s *stubCartRepo) DeleteByIDAndCustomer(_ context.Context, itemID, customerID uuid.UUID) (int64, error) {
	for productID, line := range s.lines {
		if line.ID == itemID && line.CustomerID == customerID {
			delete(s.lines, productID)
			s.deleted++
			return 1, nil
		}
	}
	return 0, nil
}

type stubProductReader struct {
	products map[uuid.UUID]*models.Product
}

func (s *stubProductReader) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func buildCartService(t *testing.T, repo *stubCartRepo, products *stubProductReader) Service {
	t.Helper()
	svc, err := NewService(repo, products)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestAddItemRequiresCustomerRole(t *testing.T) {
	svc := buildCartService(t, newStubCartRepo(), &stubProductReader{})

	_, err := svc.AddItem(context.Background(), uuid.New(), enums.UserRoleShopOwner, AddItemInput{
		ProductID: uuid.New(),
		Quantity:  1,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc := buildCartService(t, newStubCartRepo(), &stubProductReader{})

	for _, quantity := range []int{0, -3} {
		_, err := svc.AddItem(context.Background(), uuid.New(), enums.UserRoleCustomer, AddItemInput{
			ProductID: uuid.New(),
			Quantity:  quantity,
		})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for quantity %d, got %v", quantity, err)
		}
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := buildCartService(t, newStubCartRepo(), &stubProductReader{products: map[uuid.UUID]*models.Product{}})

	_, err := svc.AddItem(context.Background(), uuid.New(), enums.UserRoleCustomer, AddItemInput{
		ProductID: uuid.New(),
		Quantity:  2,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddItemMergesQuantities(t *testing.T) {
	customerID := uuid.New()
	productID := uuid.New()
	repo := newStubCartRepo()
	svc := buildCartService(t, repo, &stubProductReader{
		products: map[uuid.UUID]*models.Product{
			productID: {ID: productID, Name: "Rice", IsActive: true},
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := svc.AddItem(context.Background(), customerID, enums.UserRoleCustomer, AddItemInput{
			ProductID: productID,
			Quantity:  3,
		}); err != nil {
			t.Fatalf("add item: %v", err)
		}
	}

	if len(repo.lines) != 1 {
		t.Fatalf("expected single merged line, got %d", len(repo.lines))
	}
	if repo.lines[productID].Quantity != 6 {
		t.Fatalf("expected merged quantity 6, got %d", repo.lines[productID].Quantity)
	}
}

func TestGetCartDropsOrphanedLines(t *testing.T) {
	customerID := uuid.New()
	liveProduct := uuid.New()
	goneProduct := uuid.New()

	repo := newStubCartRepo()
	repo.lines[liveProduct] = &models.CartItem{ID: uuid.New(), CustomerID: customerID, ProductID: liveProduct, Quantity: 2}
	repo.lines[goneProduct] = &models.CartItem{ID: uuid.New(), CustomerID: customerID, ProductID: goneProduct, Quantity: 1}

	svc := buildCartService(t, repo, &stubProductReader{
		products: map[uuid.UUID]*models.Product{
			liveProduct: {ID: liveProduct, Name: "Rice"},
		},
	})

	out, err := svc.GetCart(context.Background(), customerID, enums.UserRoleCustomer)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected orphaned line to be dropped, got %d lines", len(out))
	}
	if out[0].Product == nil || out[0].Product.Name != "Rice" {
		t.Fatalf("expected enriched product, got %+v", out[0].Product)
	}
}

func TestGetCartRequiresCustomerRole(t *testing.T) {
	svc := buildCartService(t, newStubCartRepo(), &stubProductReader{})

	_, err := svc.GetCart(context.Background(), uuid.New(), enums.UserRoleDeliveryPerson)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestRemoveItemScopedToOwner(t *testing.T) {
	customerID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()

	repo := newStubCartRepo()
	repo.lines[productID] = &models.CartItem{ID: itemID, CustomerID: customerID, ProductID: productID, Quantity: 1}

	svc := buildCartService(t, repo, &stubProductReader{})

	// Someone else's delete must not remove the line.
	_, err := svc.RemoveItem(context.Background(), uuid.New(), itemID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign delete, got %v", err)
	}
	if repo.deleted != 0 {
		t.Fatal("foreign delete must not remove rows")
	}

	res, err := svc.RemoveItem(context.Background(), customerID, itemID)
	if err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if res.Message == "" {
		t.Fatal("expected confirmation message")
	}
}
