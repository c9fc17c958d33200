package account

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	pkgerrors "github.com/quickkart/quickkart-backend/pkg/errors"
)

// Service owns the current session identity and its address book, and
// enforces the single-default-address invariant across every address
// mutation.
type Service interface {
	Login(ctx context.Context, email, password string) (User, error)
	Signup(ctx context.Context, name, email, phone, password string) (User, error)
	Logout()
	CurrentUser() (User, bool)
	IsAuthenticated() bool

	Addresses() ([]Address, error)
	AddAddress(input AddressInput) (Address, error)
	UpdateAddress(addr Address) (Address, error)
	DeleteAddress(id string) error
	SetDefaultAddress(id string) error
	DefaultAddress() (Address, bool)
}

type service struct {
	provider Provider

	mu   sync.Mutex
	user *User
	// books retains address books by email so a later login restores them.
	books map[string][]Address
}

// NewService builds the account store on top of the given identity provider.
func NewService(provider Provider) (Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("identity provider required")
	}
	return &service{
		provider: provider,
		books:    make(map[string][]Address),
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (User, error) {
	profile, err := s.provider.Login(ctx, email, password)
	if err != nil {
		return User{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve login")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	addresses := profile.SeedAddresses
	if known, ok := s.books[bookKey(profile.Email)]; ok {
		addresses = known
	}

	s.user = &User{
		ID:        profile.ID,
		Name:      profile.Name,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Addresses: append([]Address(nil), addresses...),
	}
	return *s.user, nil
}

func (s *service) Signup(ctx context.Context, name, email, phone, password string) (User, error) {
	profile, err := s.provider.Signup(ctx, name, email, phone, password)
	if err != nil {
		return User{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve signup")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &User{
		ID:    profile.ID,
		Name:  profile.Name,
		Email: profile.Email,
		Phone: profile.Phone,
	}
	return *s.user, nil
}

func (s *service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.books[bookKey(s.user.Email)] = append([]Address(nil), s.user.Addresses...)
	}
	s.user = nil
}

func (s *service) CurrentUser() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, false
	}
	return s.snapshotLocked(), true
}

func (s *service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *service) Addresses() ([]Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, errNoCurrentUser()
	}
	return append([]Address(nil), s.user.Addresses...), nil
}

// AddAddress appends a new address under a fresh id. A new default, or any
// addition to an empty book, displaces every existing default.
func (s *service) AddAddress(input AddressInput) (Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return Address{}, errNoCurrentUser()
	}
	if !input.Type.IsValid() {
		return Address{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid address type")
	}

	addr := Address{
		ID:        uuid.NewString(),
		Type:      input.Type,
		Address:   input.Address,
		Landmark:  input.Landmark,
		IsDefault: input.IsDefault,
	}

	if input.IsDefault || len(s.user.Addresses) == 0 {
		for i := range s.user.Addresses {
			s.user.Addresses[i].IsDefault = false
		}
		addr.IsDefault = true
	}

	s.user.Addresses = append(s.user.Addresses, addr)
	return addr, nil
}

// UpdateAddress replaces the stored address with the matching id. An incoming
// default forces every other entry off default. An incoming non-default only
// touches its own record, which can leave the book with no default at all;
// that state is kept as-is rather than repaired.
func (s *service) UpdateAddress(addr Address) (Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return Address{}, errNoCurrentUser()
	}
	if !addr.Type.IsValid() {
		return Address{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid address type")
	}

	idx := -1
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == addr.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Address{}, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}

	if addr.IsDefault {
		for i := range s.user.Addresses {
			s.user.Addresses[i].IsDefault = false
		}
	}
	s.user.Addresses[idx] = addr
	return addr, nil
}

// DeleteAddress removes the address. Deleting the default promotes the first
// remaining address, in existing order, to default.
func (s *service) DeleteAddress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return errNoCurrentUser()
	}

	idx := -1
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	wasDefault := s.user.Addresses[idx].IsDefault
	s.user.Addresses = append(s.user.Addresses[:idx], s.user.Addresses[idx+1:]...)
	if wasDefault && len(s.user.Addresses) > 0 {
		s.user.Addresses[0].IsDefault = true
	}
	return nil
}

// SetDefaultAddress makes exactly the matching address the default.
func (s *service) SetDefaultAddress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return errNoCurrentUser()
	}

	found := false
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == id {
			found = true
		}
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}

	for i := range s.user.Addresses {
		s.user.Addresses[i].IsDefault = s.user.Addresses[i].ID == id
	}
	return nil
}

func (s *service) DefaultAddress() (Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return Address{}, false
	}
	for _, addr := range s.user.Addresses {
		if addr.IsDefault {
			return addr, true
		}
	}
	return Address{}, false
}

func (s *service) snapshotLocked() User {
	u := *s.user
	u.Addresses = append([]Address(nil), s.user.Addresses...)
	return u
}

func errNoCurrentUser() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "no current user")
}

func bookKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
