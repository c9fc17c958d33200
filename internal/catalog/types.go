package catalog

import "github.com/shopspring/decimal"

// Product is an immutable catalog entry. The catalog owns these; the cart and
// order services only ever read them.
type Product struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	DiscountPercent *int             `json:"discount_percent,omitempty"`
	Image           string           `json:"image"`
	Unit            string           `json:"unit"`
	CategoryID      string           `json:"category_id"`
	Description     string           `json:"description"`
	InStock         bool             `json:"in_stock"`
}

// Category groups products on the storefront.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Offer is a promotional banner shown on the home screen.
type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Color       string `json:"color"`
}
