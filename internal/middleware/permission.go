package middleware

import (
	"emporium/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// WriteAction is the tagged variant a write route resolves to, once, at the
// transport boundary. Permission evaluation is a lookup over this tag plus
// the caller's claims; no request type inspection happens downstream.
type WriteAction int

const (
	ProductWrite WriteAction = iota
	VariationWrite
	BrandWrite
	CategoryWrite
	StockWrite
	PriceWrite
)

// String returns the action name used in permission claims.
func (a WriteAction) String() string {
	switch a {
	case ProductWrite:
		return "write:products"
	case VariationWrite:
		return "write:variations"
	case BrandWrite:
		return "write:brands"
	case CategoryWrite:
		return "write:categories"
	case StockWrite:
		return "write:stock"
	case PriceWrite:
		return "write:price"
	default:
		return "unknown"
	}
}

// writeGrants maps each action to the roles allowed to perform it.
var writeGrants = map[WriteAction][]string{
	ProductWrite:   {"admin", "catalog_manager"},
	VariationWrite: {"admin", "catalog_manager"},
	BrandWrite:     {"admin", "catalog_manager"},
	CategoryWrite:  {"admin", "catalog_manager"},
	StockWrite:     {"admin", "catalog_manager", "inventory_manager"},
	PriceWrite:     {"admin", "catalog_manager", "inventory_manager"},
}

// Allowed is the pure permission decision: a caller may perform an action if
// one of their roles is granted it, or if they hold the matching permission
// claim directly.
func Allowed(roles, permissions []string, action WriteAction) bool {
	for _, granted := range writeGrants[action] {
		for _, role := range roles {
			if role == granted {
				return true
			}
		}
	}
	required := action.String()
	for _, permission := range permissions {
		if permission == required {
			return true
		}
	}
	return false
}

// RequireWrite is a Fiber middleware enforcing the permission decision for a
// single write action. It expects AuthRequired to have run first.
func RequireWrite(action WriteAction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, _ := c.Locals(LocalRoles).([]string)
		permissions, _ := c.Locals(LocalPermissions).([]string)
		if !Allowed(roles, permissions, action) {
			return apperrors.Forbidden("Access denied.")
		}
		return c.Next()
	}
}
