package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/config"
)

// Service is the interface for an API handler service. Handlers
// register their own routes on the API router; gate is the bearer-token
// middleware applied to mutating routes.
type Service interface {
	Init(api fiber.Router, cfg *config.Config, db *gorm.DB, gate fiber.Handler) error
}
