package config

import (
	"errors"
)

// ServerConfiguration contains the server settings
type ServerConfiguration struct {
	Port    int
	Address string
	// APIKey is the shared secret expected in the X-API-Key header,
	// an empty value disables the gate entirely
	APIKey string `mapstructure:"api-key" json:"-"`
}

// DatabaseConfiguration contains the settings required to connect to a database
type DatabaseConfiguration struct {
	Type string
	DSN  string `json:"-"`
}

// Configuration habours the entire tokenmint configuration
type Configuration struct {
	Server   *ServerConfiguration   `mapstructure:"server"`
	Database *DatabaseConfiguration `mapstructure:"database"`
}

// Validate does some basic validation of the config file and tries to be helpful on missconfiguration
func (c *Configuration) Validate() error {
	if c.Database == nil {
		return errors.New("no database configuration found")
	}
	switch c.Database.Type {
	case "sqlite", "mysql", "pg":
	default:
		return errors.New("database.type needs to be one of sqlite, mysql, pg")
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn may not be empty")
	}
	if c.Server == nil {
		return errors.New("no server configuration found")
	}
	return nil
}
