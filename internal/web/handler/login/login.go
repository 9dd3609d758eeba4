// Package login provides the admin login check endpoint.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/auth"
	"github.com/inkwell-cms/inkwell/internal/config"
	"github.com/inkwell-cms/inkwell/internal/web/handler"
)

const (
	// Path is the path to the login endpoint below the API base path.
	Path = "/login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	verifier auth.CredentialVerifier
}

// Handler is the login handler.
var Handler = Service{}

// request is the expected login body.
type request struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Init initializes the login handler.
func (s *Service) Init(api fiber.Router, cfg *config.Config, db *gorm.DB, _ fiber.Handler) error {
	if api == nil || cfg == nil {
		return errors.New("api or cfg is nil")
	}

	s.cfg = cfg
	s.verifier = auth.NewService(db)

	api.Post(Path, s.Post)

	return nil
}

// Post handles the credential check. A successful login returns the
// static admin token; there is no per-user session.
func (s *Service) Post(c *fiber.Ctx) error {
	body := new(request)

	if err := c.BodyParser(body); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := s.verifier.Verify(body.Username, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Info().Str("username", body.Username).Msg("login rejected")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid credentials",
			})
		}

		log.Error().Err(err).Msg("login failed against the datastore")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	log.Info().Str("username", user.Username).Msg("admin login")

	return c.JSON(fiber.Map{
		"success": true,
		"token":   s.cfg.Auth.AdminToken,
	})
}
