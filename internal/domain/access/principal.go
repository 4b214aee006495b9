package access

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole    = errors.New("invalid role")
	ErrMissingActor   = errors.New("actor id is required")
	ErrMissingScope   = errors.New("merchant scope is required")
	ErrOutsideOfScope = errors.New("principal is not scoped to this merchant")
)

type Role string

const (
	// RoleService is an integration (channel manager, POS) submitting requests and performance.
	RoleService Role = "service"
	// RoleManager resolves requests and edits the merchant's booking policy.
	RoleManager Role = "manager"
	// RoleAdmin operates across merchants.
	RoleAdmin Role = "admin"
)

var roleRank = map[Role]int{
	RoleService: 1,
	RoleManager: 2,
	RoleAdmin:   3,
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	want, wantOK := roleRank[min]
	return ok && wantOK && have >= want
}

// Principal is the authenticated caller. ActorID is what decidedBy records for manual actions.
type Principal struct {
	ActorID    string
	MerchantID uuid.UUID
	Role       Role
}

func NewPrincipal(actorID string, merchantID uuid.UUID, role Role) (Principal, error) {
	if actorID == "" {
		return Principal{}, ErrMissingActor
	}
	if !role.IsValid() {
		return Principal{}, ErrInvalidRole
	}
	if role != RoleAdmin && merchantID == uuid.Nil {
		return Principal{}, ErrMissingScope
	}
	return Principal{ActorID: actorID, MerchantID: merchantID, Role: role}, nil
}

// Authorize checks that the principal may act on the merchant's data.
func (p Principal) Authorize(merchantID uuid.UUID) error {
	if p.Role == RoleAdmin || p.MerchantID == merchantID {
		return nil
	}
	return ErrOutsideOfScope
}
