package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Role scopes what an authenticated host may do against the adapter API.
type Role string

const (
	// RoleReader may read records and status.
	RoleReader Role = "reader"
	// RoleOperator may additionally create records and trigger probes.
	RoleOperator Role = "operator"
)

// Allows reports whether the role satisfies the required one. Operator
// subsumes reader.
func (r Role) Allows(required Role) bool {
	if r == RoleOperator {
		return true
	}
	return r == required
}

// RequireRole ensures the authenticated principal carries a sufficient role.
func RequireRole(required Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if !principal.Role.Allows(required) {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}
