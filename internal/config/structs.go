package config

import (
	"github.com/inkwell-cms/inkwell/internal/logger"
)

// Auth holds the admin authentication settings.
type Auth struct {
	// AdminToken is the static bearer token accepted on mutating API
	// endpoints. It stands in for real per-user sessions.
	AdminToken string `toml:"adminToken"`

	// SeedUser and SeedPassword are used to create the initial admin
	// account when the users table is empty.
	SeedUser     string `toml:"seedUser"`
	SeedPassword string `toml:"seedPassword"`
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Auth      Auth
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}
