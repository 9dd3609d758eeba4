package config

// DB holds the database configuration settings.
type DB struct {
	// Engine selects the gorm driver: sqlite, mysql or postgres.
	Engine string `toml:"engine"`

	// File is the database file path for the sqlite engine.
	File string `toml:"file"`

	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}
