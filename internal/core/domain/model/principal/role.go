package principal

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the business type of an acting principal. Codes match the business
// type ids issued by the auth service.
type Role int

const (
	// Unknown is the zero value and is never valid.
	Unknown Role = iota
	Consumer
	Producer
	Distributor
)

var roleNames = map[Role]string{
	Consumer:    "Consumer",
	Producer:    "Producer",
	Distributor: "Distributor",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid business type", r))
	}
	return nil
}

// ParseRole maps a role name to its Role.
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid business type", name))
}
