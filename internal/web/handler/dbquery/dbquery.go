// Package dbquery provides the raw SQL admin console endpoint.
//
// This endpoint executes whatever SQL string the caller supplies, with
// no parameterization and no statement-type restriction. That is its
// purpose: it is an unrestricted administrative console behind the
// bearer-token gate, not a safe query API.
package dbquery

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/config"
	"github.com/inkwell-cms/inkwell/internal/db/controller/rawsql"
	"github.com/inkwell-cms/inkwell/internal/web/handler"
)

const (
	// Path is the path to the raw query endpoint below the API base path.
	Path = "/db/query"
)

// Service is the raw query handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the raw query handler.
var Handler = Service{}

// request is the expected query body.
type request struct {
	Query string `json:"query"`
}

// Init initializes the raw query handler.
func (s *Service) Init(api fiber.Router, cfg *config.Config, db *gorm.DB, gate fiber.Handler) error {
	if api == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	api.Post(Path, gate, s.Post)

	return nil
}

// Post executes the supplied SQL verbatim. Caller-supplied SQL is
// expected to sometimes be invalid, so execution faults come back as
// 400 with the underlying datastore error message.
func (s *Service) Post(c *fiber.Ctx) error {
	body := new(request)

	if err := c.BodyParser(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.Warn().Str("query", body.Query).Msg("executing raw admin SQL")

	results, err := rawsql.Execute(s.db, body.Query)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"results": results})
}
