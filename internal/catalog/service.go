package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	pkgerrors "github.com/quickkart/quickkart-backend/pkg/errors"
)

// Service exposes read-only access to the storefront catalog.
type Service interface {
	ListProducts(ctx context.Context, categoryID string) []Product
	GetProduct(ctx context.Context, id string) (Product, error)
	ListCategories(ctx context.Context) []Category
	ListOffers(ctx context.Context) []Offer
	Search(ctx context.Context, query string) []Product
	RecentSearches(ctx context.Context) []string
}

type service struct {
	products   []Product
	byID       map[string]Product
	categories []Category
	offers     []Offer
	recent     []string
}

// NewService builds the catalog from the built-in seed data.
func NewService() (Service, error) {
	return newService(seedProducts(), seedCategories(), seedOffers(), seedRecentSearches())
}

func newService(products []Product, categories []Category, offers []Offer, recent []string) (Service, error) {
	categoryIDs := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		categoryIDs[c.ID] = struct{}{}
	}

	byID := make(map[string]Product, len(products))
	var problems error
	for _, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			problems = multierr.Append(problems, fmt.Errorf("product %q: missing id", p.Name))
			continue
		}
		if _, seen := byID[p.ID]; seen {
			problems = multierr.Append(problems, fmt.Errorf("product %q: duplicate id %s", p.Name, p.ID))
		}
		if p.Price.IsNegative() {
			problems = multierr.Append(problems, fmt.Errorf("product %q: negative price", p.Name))
		}
		if _, ok := categoryIDs[p.CategoryID]; !ok {
			problems = multierr.Append(problems, fmt.Errorf("product %q: unknown category %s", p.Name, p.CategoryID))
		}
		byID[p.ID] = p
	}
	if problems != nil {
		return nil, fmt.Errorf("catalog seed invalid: %w", problems)
	}

	return &service{
		products:   products,
		byID:       byID,
		categories: categories,
		offers:     offers,
		recent:     recent,
	}, nil
}

func (s *service) ListProducts(_ context.Context, categoryID string) []Product {
	if categoryID == "" {
		return append([]Product(nil), s.products...)
	}
	var out []Product
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) GetProduct(_ context.Context, id string) (Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

func (s *service) ListCategories(_ context.Context) []Category {
	return append([]Category(nil), s.categories...)
}

func (s *service) ListOffers(_ context.Context) []Offer {
	return append([]Offer(nil), s.offers...)
}

func (s *service) Search(_ context.Context, query string) []Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}
	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) RecentSearches(_ context.Context) []string {
	return append([]string(nil), s.recent...)
}
