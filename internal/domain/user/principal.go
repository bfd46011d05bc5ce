package user

import "github.com/google/uuid"

// Principal is the already-authenticated identity handed to every core
// operation. It carries no hidden state; authorization decisions are pure
// functions of this value and the resource being touched.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func NewPrincipal(id uuid.UUID, role Role) Principal {
	return Principal{ID: id, Role: role}
}

func (p Principal) IsAdmin() bool    { return p.Role == RoleAdmin }
func (p Principal) IsOperator() bool { return p.Role == RoleOperator }
func (p Principal) IsDiner() bool    { return p.Role == RoleDiner }
