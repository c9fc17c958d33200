package account

import (
	"context"
	"testing"

	pkgerrors "github.com/quickkart/quickkart-backend/pkg/errors"
	"github.com/quickkart/quickkart-backend/pkg/enums"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(MockProvider{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func newAuthedService(t *testing.T) Service {
	t.Helper()
	svc := newTestService(t)
	user, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "+111", "pw")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if len(user.Addresses) != 0 {
		t.Fatalf("signup must start with an empty address book, got %d", len(user.Addresses))
	}
	return svc
}

func assertSingleDefault(t *testing.T, svc Service, wantID string) {
	t.Helper()
	addrs, err := svc.Addresses()
	if err != nil {
		t.Fatalf("addresses: %v", err)
	}
	defaults := 0
	for _, a := range addrs {
		if a.IsDefault {
			defaults++
			if a.ID != wantID {
				t.Fatalf("expected default %s, got %s", wantID, a.ID)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
}

func TestLoginPopulatesSeedBook(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Login(context.Background(), "john@example.com", "whatever")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "john@example.com" {
		t.Fatalf("unexpected email %q", user.Email)
	}
	if len(user.Addresses) != 2 {
		t.Fatalf("expected seeded address book, got %d entries", len(user.Addresses))
	}
	if !svc.IsAuthenticated() {
		t.Fatal("expected authenticated state after login")
	}
	if _, ok := svc.DefaultAddress(); !ok {
		t.Fatal("seeded book must have a default")
	}
}

func TestLogoutDiscardsUserAndLoginRestoresBook(t *testing.T) {
	svc := newAuthedService(t)

	added, err := svc.AddAddress(AddressInput{Type: enums.AddressTypeHome, Address: "A"})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}

	svc.Logout()
	if svc.IsAuthenticated() {
		t.Fatal("expected unauthenticated state after logout")
	}
	if _, ok := svc.CurrentUser(); ok {
		t.Fatal("expected no current user after logout")
	}

	user, err := svc.Login(context.Background(), "jane@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if len(user.Addresses) != 1 || user.Addresses[0].ID != added.ID {
		t.Fatalf("expected previously known book to be restored, got %+v", user.Addresses)
	}
}

func TestAddAddressFirstEntryBecomesDefault(t *testing.T) {
	svc := newAuthedService(t)

	home, err := svc.AddAddress(AddressInput{Type: enums.AddressTypeHome, Address: "A", IsDefault: false})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}
	if !home.IsDefault {
		t.Fatal("first address of an empty book must become default")
	}

	work, err := svc.AddAddress(AddressInput{Type: enums.AddressTypeWork, Address: "B", IsDefault: false})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}
	if work.IsDefault {
		t.Fatal("non-default addition to a non-empty book must not take the default")
	}
	assertSingleDefault(t, svc, home.ID)

	if err := svc.SetDefaultAddress(work.ID); err != nil {
		t.Fatalf("set default: %v", err)
	}
	assertSingleDefault(t, svc, work.ID)
}

func TestAddAddressMarkedDefaultDisplacesExisting(t *testing.T) {
	svc := newAuthedService(t)

	first, err := svc.AddAddress(AddressInput{Type: enums.AddressTypeHome, Address: "A"})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}
	second, err := svc.AddAddress(AddressInput{Type: enums.AddressTypeOther, Address: "B", IsDefault: true})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}
	_ = first
	assertSingleDefault(t, svc, second.ID)
}

func TestDeleteDefaultPromotesFirstRemaining(t *testing.T) {
	svc := newAuthedService(t)

	home, _ := svc.AddAddress(AddressInput{Type: enums.AddressTypeHome, Address: "A"})
	work, _ := svc.AddAddress(AddressInput{Type: enums.AddressTypeWork, Address: "B"})

	if err := svc.DeleteAddress(home.ID); err != nil {
		t.Fatalf("delete address: %v", err)
	}
	assertSingleDefault(t, svc, work.ID)
}

func TestDeleteLastAddressLeavesEmptyBook(t *testing.T) {
	svc := newAuthedService(t)

	only, _ := svc.AddAddress(AddressInput{Type: enums.AddressTypeHome, Address: "A"})
	if err := svc.DeleteAddress(only.ID); err != nil {
		t.Fatalf("delete address: %v", err)
	}

	addrs, err := svc.Addresses()
	if err != nil {
		t.Fatalf("addresses: %v", err)
	}
	if len(addrs) != 0 {
		t.Fatalf("expected empty book, got %d", len(addrs))
	}
	if _, ok := svc.DefaultAddress(); ok {
		t.Fatal("empty book must have no default")
	}

	// absent id is a no-op
	if err := svc.DeleteAddress("missing"); err != nil {
		t.Fatalf("delete of absent id must not fail: %v", err)
	}
}

func TestUpdateAddressDefaultTrueForcesOthersOff(t *testing.T) {
	svc := newAuthedService(t)

	home, _ := svc.AddAddress(AddressInput{Type: enums.AddressTypeHome, Address: "A"})
	work, _ := svc.AddAddress(AddressInput{Type: enums.AddressTypeWork, Address: "B"})
	_ = home

	updated := work
	updated.IsDefault = true
	if _, err := svc.UpdateAddress(updated); err != nil {
		t.Fatalf("update address: %v", err)
	}
	assertSingleDefault(t, svc, work.ID)
}

func TestUpdateAddressDefaultFalseCanLeaveZeroDefaults(t *testing.T) {
	svc := newAuthedService(t)

	home, _ := svc.AddAddress(AddressInput{Type: enums.AddressTypeHome, Address: "A"})
	svc.AddAddress(AddressInput{Type: enums.AddressTypeWork, Address: "B"})

	// Flipping the current default off is kept as observed behavior: the
	// book is legally defaultless afterwards.
	updated := home
	updated.IsDefault = false
	if _, err := svc.UpdateAddress(updated); err != nil {
		t.Fatalf("update address: %v", err)
	}
	if _, ok := svc.DefaultAddress(); ok {
		t.Fatal("expected zero defaults after unsetting the only default")
	}
}

func TestUpdateAddressUnknownIDSignalsNotFound(t *testing.T) {
	svc := newAuthedService(t)

	_, err := svc.UpdateAddress(Address{ID: "missing", Type: enums.AddressTypeHome})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}

	if err := svc.SetDefaultAddress("missing"); pkgerrors.As(err) == nil {
		t.Fatalf("expected not-found from set default, got %v", err)
	}
}

func TestAddressOpsRequireAuthentication(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddAddress(AddressInput{Type: enums.AddressTypeHome, Address: "A"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	if _, err := svc.Addresses(); pkgerrors.As(err) == nil {
		t.Fatalf("expected unauthorized from list, got %v", err)
	}
	if err := svc.DeleteAddress("x"); pkgerrors.As(err) == nil {
		t.Fatalf("expected unauthorized from delete, got %v", err)
	}
	if err := svc.SetDefaultAddress("x"); pkgerrors.As(err) == nil {
		t.Fatalf("expected unauthorized from set default, got %v", err)
	}
	if _, ok := svc.DefaultAddress(); ok {
		t.Fatal("unauthenticated default lookup must be absent")
	}
}
