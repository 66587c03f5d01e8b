// Package principal describes the authenticated business on whose behalf a
// request runs. Principals are resolved by the transport layer from a token
// issued elsewhere; this package never authenticates anybody.
package principal

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is an immutable value: the business id, its role, and the admin
// and verified flags.
type Principal struct {
	businessID kernel.UUID
	role       Role
	admin      bool
	verified   bool

	guard guard.ConstructorGuard
}

func NewPrincipal(businessID kernel.UUID, role Role, admin, verified bool) (Principal, error) {
	if err := errors.Join(businessID.Validate(), role.Validate()); err != nil {
		return Principal{}, err
	}

	return Principal{
		businessID: businessID,
		role:       role,
		admin:      admin,
		verified:   verified,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

func (p Principal) BusinessID() kernel.UUID {
	return p.businessID
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) IsAdmin() bool {
	return p.admin
}

func (p Principal) IsVerified() bool {
	return p.verified
}
