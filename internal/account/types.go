package account

import (
	"github.com/google/uuid"

	"github.com/quickkart/quickkart-backend/pkg/enums"
)

// Address is one entry in a user's address book. Within a book at most one
// entry carries IsDefault, and a non-empty book normally has exactly one.
type Address struct {
	ID        string            `json:"id"`
	Type      enums.AddressType `json:"type"`
	Address   string            `json:"address"`
	Landmark  string            `json:"landmark,omitempty"`
	IsDefault bool              `json:"is_default"`
}

// User is the authenticated identity and the owner of its address book.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Addresses []Address `json:"addresses"`
}

// AddressInput carries the caller-supplied fields for a new address; the
// service assigns the id.
type AddressInput struct {
	Type      enums.AddressType
	Address   string
	Landmark  string
	IsDefault bool
}
