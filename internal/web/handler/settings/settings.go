// Package settings provides the site settings endpoints.
package settings

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/config"
	controller "github.com/inkwell-cms/inkwell/internal/db/controller/setting"
	"github.com/inkwell-cms/inkwell/internal/web/handler"
)

const (
	// Path is the path to the settings endpoint below the API base path.
	Path = "/settings"
)

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(api fiber.Router, cfg *config.Config, db *gorm.DB, gate fiber.Handler) error {
	if api == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	api.Get(Path, s.Get)
	api.Post(Path, gate, s.Post)

	return nil
}

// Get returns all settings folded into a single flat key/value object.
func (s *Service) Get(c *fiber.Ctx) error {
	values, err := controller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(values)
}

// Post accepts an arbitrary flat JSON object and upserts every key as
// an independent write. Non-string scalar values are coerced to their
// string form before storage.
func (s *Service) Post(c *fiber.Ctx) error {
	body := make(map[string]interface{})

	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	values := make(map[string]string, len(body))
	for key, value := range body {
		values[key] = coerce(value)
	}

	if err := controller.SetAll(s.db, values); err != nil {
		log.Error().Err(err).Msg("failed to save settings")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	log.Info().Int("keys", len(values)).Msg("settings saved")

	return c.JSON(fiber.Map{"success": true})
}

// coerce turns a decoded JSON value into its stored string form.
func coerce(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", value)
}
