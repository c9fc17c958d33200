package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewServiceSeedIsValid(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("seed catalog should be valid: %v", err)
	}

	products := svc.ListProducts(context.Background(), "")
	if len(products) != 12 {
		t.Fatalf("expected 12 seeded products, got %d", len(products))
	}
	categories := svc.ListCategories(context.Background())
	if len(categories) != 8 {
		t.Fatalf("expected 8 seeded categories, got %d", len(categories))
	}
	if offers := svc.ListOffers(context.Background()); len(offers) != 3 {
		t.Fatalf("expected 3 seeded offers, got %d", len(offers))
	}
}

func TestNewServiceRejectsBadSeed(t *testing.T) {
	bad := []Product{
		{ID: "1", Name: "A", Price: decimal.NewFromInt(-1), CategoryID: "1"},
		{ID: "1", Name: "B", Price: decimal.NewFromInt(5), CategoryID: "nope"},
	}
	if _, err := newService(bad, []Category{{ID: "1", Name: "C"}}, nil, nil); err == nil {
		t.Fatal("expected invalid seed to be rejected")
	}
}

func TestGetProduct(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	p, err := svc.GetProduct(context.Background(), "1")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if p.Name != "Fresh Bananas" {
		t.Fatalf("unexpected product %q", p.Name)
	}
	if !p.Price.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("unexpected price %s", p.Price)
	}

	if _, err := svc.GetProduct(context.Background(), "999"); err == nil {
		t.Fatal("expected not-found for unknown id")
	}
}

func TestListProductsByCategory(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dairy := svc.ListProducts(context.Background(), "2")
	if len(dairy) != 2 {
		t.Fatalf("expected 2 dairy products, got %d", len(dairy))
	}
	for _, p := range dairy {
		if p.CategoryID != "2" {
			t.Fatalf("product %s has category %s", p.ID, p.CategoryID)
		}
	}
}

func TestSearchMatchesNameAndDescription(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	byName := svc.Search(context.Background(), "banana")
	if len(byName) != 1 || byName[0].ID != "1" {
		t.Fatalf("expected bananas, got %+v", byName)
	}

	byDescription := svc.Search(context.Background(), "potassium")
	if len(byDescription) != 1 || byDescription[0].ID != "1" {
		t.Fatalf("expected description match, got %+v", byDescription)
	}

	if res := svc.Search(context.Background(), "  "); res != nil {
		t.Fatalf("blank query should return nothing, got %+v", res)
	}
}
