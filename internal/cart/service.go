package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/quickkart/quickkart-backend/internal/catalog"
)

// Line is one cart entry: a product plus how many of it the buyer wants.
// Identity is the product id; a line never exists with quantity below 1.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Summary holds the derived cart aggregates. Both values are recomputed from
// the line set on every read so they cannot drift from it.
type Summary struct {
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Service owns the session cart and keeps one line per product id.
type Service interface {
	Add(product catalog.Product)
	Remove(productID string)
	Delete(productID string)
	Clear()
	Quantity(productID string) int
	Items() []Line
	Summary() Summary
	TotalItems() int
	TotalPrice() decimal.Decimal
	Snapshot() ([]Line, Summary)
	TakeAll() ([]Line, Summary)
}

type service struct {
	mu    sync.Mutex
	lines []Line
}

// NewService returns an empty cart.
func NewService() Service {
	return &service{}
}

// Add inserts a new line with quantity 1 or increments the existing line in
// place, preserving first-add order.
func (s *service) Add(product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == product.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{Product: product, Quantity: 1})
}

// Remove decrements the line for the product id. A line at quantity 1 is
// deleted rather than kept at 0; an absent id is a no-op.
func (s *service) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID != productID {
			continue
		}
		if s.lines[i].Quantity <= 1 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity--
		}
		return
	}
}

// Delete removes the line regardless of quantity. Absent ids are a no-op.
func (s *service) Delete(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Quantity returns the line's quantity, or 0 when the product is not carted.
func (s *service) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == productID {
			return s.lines[i].Quantity
		}
	}
	return 0
}

// Items returns a snapshot of the lines in insertion order.
func (s *service) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.lines...)
}

// Summary recomputes the aggregates from the current line set.
func (s *service) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.lines)
}

// Snapshot returns the lines and their aggregates from a single locked read,
// so the totals always describe exactly the returned lines.
func (s *service) Snapshot() ([]Line, Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.lines...), summarize(s.lines)
}

// TakeAll empties the cart and returns what it held, under one lock. A
// mutation from another request lands either wholly before the take, and is
// part of the result, or wholly after, and stays in the cart.
func (s *service) TakeAll() ([]Line, Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.lines
	s.lines = nil
	return lines, summarize(lines)
}

// TotalItems is the summed quantity across every line.
func (s *service) TotalItems() int {
	return s.Summary().TotalItems
}

// TotalPrice is the exact price times quantity sum across every line.
func (s *service) TotalPrice() decimal.Decimal {
	return s.Summary().TotalPrice
}

func summarize(lines []Line) Summary {
	total := decimal.Zero
	items := 0
	for _, line := range lines {
		items += line.Quantity
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return Summary{TotalItems: items, TotalPrice: total}
}
