package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/internal/shops"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubProductRepo struct {
	created      *models.Product
	items        []models.Product
	lastShopIDs  []uuid.UUID
	lastCategory string
	lastQuery    string
	lastLimit    int
}

func (s *stubProductRepo) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	product.ID = uuid.New()
	s.created = product
	return product, nil
}

func (s *stubProductRepo) ListActiveByShop(_ context.Context, shopID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, item := range s.items {
		if item.ShopID == shopID && item.IsActive {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubProductRepo) SearchActive(_ context.Context, shopIDs []uuid.UUID, category, query string, limit int) ([]models.Product, error) {
	s.lastShopIDs = shopIDs
	s.lastCategory = category
	s.lastQuery = query
	s.lastLimit = limit
	return s.items, nil
}

type stubShopReader struct {
	owned map[uuid.UUID]uuid.UUID // shopID -> ownerID
	area  []models.Shop
}

func (s *stubShopReader) FindByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*models.Shop, error) {
	if owner, ok := s.owned[id]; ok && owner == ownerID {
		return &models.Shop{ID: id, OwnerID: ownerID}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubShopReader) List(_ context.Context, _ shops.ListShopsFilter) ([]models.Shop, error) {
	return s.area, nil
}

func TestCreateProductRejectsForeignShop(t *testing.T) {
	shopID := uuid.New()
	repo := &stubProductRepo{}
	svc, err := NewService(repo, &stubShopReader{owned: map[uuid.UUID]uuid.UUID{shopID: uuid.New()}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.CreateProduct(context.Background(), uuid.New(), shopID, CreateProductInput{Name: "Rice"})
	if err == nil {
		t.Fatal("expected not found")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("product must not be created for foreign shop")
	}
}

func TestCreateProductSuccess(t *testing.T) {
	ownerID := uuid.New()
	shopID := uuid.New()
	repo := &stubProductRepo{}
	svc, err := NewService(repo, &stubShopReader{owned: map[uuid.UUID]uuid.UUID{shopID: ownerID}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.CreateProduct(context.Background(), ownerID, shopID, CreateProductInput{
		Name:          "  Ponni Rice  ",
		Price:         68.5,
		Category:      "groceries",
		StockQuantity: 40,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if dto.Name != "Ponni Rice" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if dto.ShopID != shopID {
		t.Fatal("shop id not recorded")
	}
	if !dto.IsActive {
		t.Fatal("new products should start active")
	}
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	ownerID := uuid.New()
	shopID := uuid.New()
	svc, err := NewService(&stubProductRepo{}, &stubShopReader{owned: map[uuid.UUID]uuid.UUID{shopID: ownerID}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.CreateProduct(context.Background(), ownerID, shopID, CreateProductInput{Name: "Rice", Price: -1})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListShopProductsFiltersInactive(t *testing.T) {
	shopID := uuid.New()
	repo := &stubProductRepo{
		items: []models.Product{
			{ID: uuid.New(), ShopID: shopID, Name: "Active", IsActive: true},
			{ID: uuid.New(), ShopID: shopID, Name: "Hidden", IsActive: false},
			{ID: uuid.New(), ShopID: uuid.New(), Name: "Other shop", IsActive: true},
		},
	}
	svc, err := NewService(repo, &stubShopReader{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	out, err := svc.ListShopProducts(context.Background(), shopID)
	if err != nil {
		t.Fatalf("list shop products: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Active" {
		t.Fatalf("expected only the active product, got %+v", out)
	}
}

func TestSearchProductsResolvesAreaShopsFirst(t *testing.T) {
	shopA := uuid.New()
	shopB := uuid.New()
	repo := &stubProductRepo{}
	svc, err := NewService(repo, &stubShopReader{
		area: []models.Shop{{ID: shopA}, {ID: shopB}},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.SearchProducts(context.Background(), SearchProductsInput{
		Query:    "rice",
		District: "Chennai",
		Category: "groceries",
		Limit:    25,
	})
	if err != nil {
		t.Fatalf("search products: %v", err)
	}
	if len(repo.lastShopIDs) != 2 {
		t.Fatalf("expected 2 shop ids, got %d", len(repo.lastShopIDs))
	}
	if repo.lastCategory != "groceries" || repo.lastQuery != "rice" {
		t.Fatalf("filters not forwarded: %q %q", repo.lastCategory, repo.lastQuery)
	}
	if repo.lastLimit != 25 {
		t.Fatalf("limit not forwarded: %d", repo.lastLimit)
	}
}

func TestSearchProductsEmptyAreaReturnsEmpty(t *testing.T) {
	repo := &stubProductRepo{items: []models.Product{{ID: uuid.New()}}}
	svc, err := NewService(repo, &stubShopReader{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	out, err := svc.SearchProducts(context.Background(), SearchProductsInput{District: "Chennai"})
	if err != nil {
		t.Fatalf("search products: %v", err)
	}
	if len(repo.lastShopIDs) != 0 {
		t.Fatalf("expected no shop ids, got %d", len(repo.lastShopIDs))
	}
	_ = out
}
