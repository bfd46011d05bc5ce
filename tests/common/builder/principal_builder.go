//go:build unit || e2e

package builder

import (
	"tablebook/internal/domain/user"

	"github.com/google/uuid"
)

func AdminPrincipal() user.Principal {
	return user.NewPrincipal(uuid.New(), user.RoleAdmin)
}

func OperatorPrincipal() user.Principal {
	return user.NewPrincipal(uuid.New(), user.RoleOperator)
}

func DinerPrincipal() user.Principal {
	return user.NewPrincipal(uuid.New(), user.RoleDiner)
}

func PrincipalWithID(id uuid.UUID, role user.Role) user.Principal {
	return user.NewPrincipal(id, role)
}
