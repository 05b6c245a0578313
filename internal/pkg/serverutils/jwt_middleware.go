package serverutils

import (
	"context"
	"fmt"
	"time"

	"brand-dashboard-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	localUserID         = "user_id"
	localOrganizationID = "organization_id"
	localRole           = "role"
)

// Principal is the authenticated caller resolved from the bearer token.
type Principal struct {
	UserId         uuid.UUID
	OrganizationId uuid.UUID
	Role           entity.UserRole
}

// PrincipalResolver re-checks a token's principal against the current account
// and returns the principal to act as.
type PrincipalResolver func(ctx context.Context, p Principal) (Principal, error)

// IssueToken signs an HS256 token carrying the principal.
func IssueToken(secret string, p Principal, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := jwt.MapClaims{
		"user_id":         p.UserId.String(),
		"organization_id": p.OrganizationId.String(),
		"role":            string(p.Role),
		"exp":             expiresAt.Unix(),
		"iat":             time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken validates the signature and expiry and returns the principal.
func ParseToken(secret, tokenStr string) (*Principal, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	userStr, _ := claims["user_id"].(string)
	orgStr, _ := claims["organization_id"].(string)
	role, _ := claims["role"].(string)

	userId, err := uuid.Parse(userStr)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}
	orgId, err := uuid.Parse(orgStr)
	if err != nil {
		return nil, fmt.Errorf("invalid organization id in token")
	}

	return &Principal{UserId: userId, OrganizationId: orgId, Role: entity.UserRole(role)}, nil
}

// NewJwtMiddleware protects a route group with a bearer token. A non-nil
// resolve runs on every request, so removed members lose access before their
// token expires.
func NewJwtMiddleware(secret string, resolve PrincipalResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return Unauthorized("Missing token")
		}

		principal, err := ParseToken(secret, authHeader[7:])
		if err != nil {
			return Unauthorized("Invalid token")
		}
		if resolve != nil {
			current, err := resolve(ctx.UserContext(), *principal)
			if err != nil {
				return err
			}
			principal = &current
		}

		ctx.Locals(localUserID, principal.UserId.String())
		ctx.Locals(localOrganizationID, principal.OrganizationId.String())
		ctx.Locals(localRole, string(principal.Role))
		return ctx.Next()
	}
}

// CurrentPrincipal reads the caller stored by the JWT middleware.
func CurrentPrincipal(ctx *fiber.Ctx) (Principal, error) {
	userStr, _ := ctx.Locals(localUserID).(string)
	orgStr, _ := ctx.Locals(localOrganizationID).(string)
	role, _ := ctx.Locals(localRole).(string)

	userId, err := uuid.Parse(userStr)
	if err != nil {
		return Principal{}, Unauthorized("Unauthorized")
	}
	orgId, err := uuid.Parse(orgStr)
	if err != nil {
		return Principal{}, Unauthorized("Unauthorized")
	}
	return Principal{UserId: userId, OrganizationId: orgId, Role: entity.UserRole(role)}, nil
}

// RequireRole rejects callers whose role is not listed.
func RequireRole(roles ...entity.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := entity.UserRole(fmt.Sprint(ctx.Locals(localRole)))
		for _, r := range roles {
			if r == role {
				return ctx.Next()
			}
		}
		return Forbidden(MsgForbidden)
	}
}
