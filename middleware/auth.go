package middleware

import (
	"strings"

	"restaurant-pos/constants"
	"restaurant-pos/logger"
	"restaurant-pos/types"
	"restaurant-pos/utils"

	"github.com/gofiber/fiber/v2"
)

// Auth verifies HS256 access tokens signed with Secret.
type Auth struct {
	Secret string
}

func NewAuth(secret string) *Auth {
	return &Auth{Secret: secret}
}

// RequirePermissions allows the request when the token carries any of the
// listed permissions.
func (a *Auth) RequirePermissions(permissions ...string) fiber.Handler {
	return a.IsAuthenticated(permissions)
}

// RequireAnyPermission is RequirePermissions that also admits any valid token
// when no permissions are listed.
func (a *Auth) RequireAnyPermission(permissions ...string) fiber.Handler {
	if len(permissions) == 0 {
		return a.RequireAuthentication()
	}
	return a.IsAuthenticated(permissions)
}

// RequireAuthentication only requires a valid token.
func (a *Auth) RequireAuthentication() fiber.Handler {
	return a.IsAuthenticated([]string{constants.PermAny})
}

// IsAuthenticated reads the token from the Authorization header, falling back
// to the access cookie, and stores the claims under "user".
func (a *Auth) IsAuthenticated(requiredPermissions []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		if authHeader := c.Get("Authorization"); authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
					Message: "Invalid authorization header format",
					Status:  fiber.StatusUnauthorized,
				})
			}
			token = tokenParts[1]
		} else {
			token = c.Cookies("access")
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Authorization token missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := utils.ParseToken(a.Secret, token)
		if err != nil {
			logger.Debug("Rejected token: " + err.Error())
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Session expired. Login again.",
				Status:  fiber.StatusUnauthorized,
			})
		}
		if !hasPermission(claims.Permissions, requiredPermissions) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("user", claims)
		c.Locals("permissions", permissionSet(claims.Permissions))
		return c.Next()
	}
}

// CurrentUser returns the claims stored by IsAuthenticated.
func CurrentUser(c *fiber.Ctx) *utils.TokenClaims {
	claims, _ := c.Locals("user").(*utils.TokenClaims)
	return claims
}

// CheckPermissionInController reports whether the caller holds permission.
func CheckPermissionInController(c *fiber.Ctx, requiredPermission string) bool {
	perms, ok := c.Locals("permissions").(map[string]bool)
	if !ok {
		return false
	}
	return perms[requiredPermission]
}

func hasPermission(granted, required []string) bool {
	set := permissionSet(granted)
	for _, p := range required {
		if p == constants.PermAny || set[p] {
			return true
		}
	}
	return false
}

func permissionSet(perms []string) map[string]bool {
	set := make(map[string]bool, len(perms))
	for _, p := range perms {
		set[p] = true
	}
	return set
}
