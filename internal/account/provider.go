package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/quickkart/quickkart-backend/pkg/enums"
)

// Profile is what an identity provider resolves a login or signup to.
type Profile struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	SeedAddresses []Address
}

// Provider resolves credentials into a profile. The store's contract does not
// depend on which implementation is behind it; a production deployment would
// plug in a network-backed provider here.
type Provider interface {
	Login(ctx context.Context, email, password string) (Profile, error)
	Signup(ctx context.Context, name, email, phone, password string) (Profile, error)
}

// MockProvider resolves every request after a fixed delay without checking
// credentials. It stands in for a real identity service.
type MockProvider struct {
	Delay time.Duration
}

func (p MockProvider) Login(ctx context.Context, email, _ string) (Profile, error) {
	if err := p.wait(ctx); err != nil {
		return Profile{}, err
	}
	return Profile{
		ID:            uuid.New(),
		Name:          "John Doe",
		Email:         email,
		Phone:         "+1234567890",
		SeedAddresses: seedAddresses(),
	}, nil
}

func (p MockProvider) Signup(ctx context.Context, name, email, phone, _ string) (Profile, error) {
	if err := p.wait(ctx); err != nil {
		return Profile{}, err
	}
	return Profile{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Phone: phone,
	}, nil
}

func (p MockProvider) wait(ctx context.Context) error {
	if p.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func seedAddresses() []Address {
	return []Address{
		{
			ID:        uuid.NewString(),
			Type:      enums.AddressTypeHome,
			Address:   "123 Main St, Apt 4B, New York, NY 10001",
			Landmark:  "Near Central Park",
			IsDefault: true,
		},
		{
			ID:        uuid.NewString(),
			Type:      enums.AddressTypeWork,
			Address:   "456 Office Ave, Suite 200, New York, NY 10002",
			Landmark:  "Glass building with blue facade",
			IsDefault: false,
		},
	}
}
