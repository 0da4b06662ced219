// internal/config/config.go
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"trackhub/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort  string   `envconfig:"SERVER_PORT" default:"8080"`
	JWTSecret   string   `envconfig:"JWT_SECRET" default:"dev-secret"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"user"`
		Password string `envconfig:"DB_PASSWORD" default:"password"`
		Name     string `envconfig:"DB_NAME" default:"trackhub"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// DBConfig returns the database connection settings in pkg/db form.
func (c *AppConfig) DBConfig() db.Config {
	return db.Config{
		Host:     c.DB.Host,
		Port:     c.DB.Port,
		User:     c.DB.User,
		Password: c.DB.Password,
		DBName:   c.DB.Name,
		SSLMode:  c.DB.SSLMode,
	}
}
