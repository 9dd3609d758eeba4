package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// DefaultAdminToken is the static bearer token issued by a successful
// login. It is process-wide and never rotates.
const DefaultAdminToken = "simple-admin-token"

// TokenVerifier checks a bearer token presented on mutating endpoints.
type TokenVerifier interface {
	VerifyToken(token string) bool
}

// StaticTokenVerifier accepts exactly one fixed token. This is a binary
// gate: no per-user scoping, no expiry, no revocation.
type StaticTokenVerifier struct {
	Token string
}

// VerifyToken reports whether the presented token matches the static token.
func (v StaticTokenVerifier) VerifyToken(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(v.Token)) == 1
}

// RequireToken creates Fiber middleware gating mutating endpoints on
// the Authorization header. The header must be exactly
// "Bearer <token>"; on failure the request is rejected with 401 before
// any query executes.
func RequireToken(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)

		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix ||
			!verifier.VerifyToken(header[len(prefix):]) {
			log.Warn().Str("path", c.Path()).Str("method", c.Method()).
				Msg("rejected request with missing or invalid bearer token")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		return c.Next()
	}
}
