package app

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/faganglass/inventory-auth/internal/auth/service"
)

// Config is the full runtime configuration. The reserved admin
// credentials default to the values existing deployments were seeded
// with; override them per environment rather than editing code.
type Config struct {
	DatabaseFile string `env:"AUTH_DATABASE_FILE" envDefault:"fagan_inventory.db"`

	// ListenAddr defaults to loopback only: the desktop shell is the one
	// caller and nothing else should reach this service.
	ListenAddr string `env:"AUTH_LISTEN_ADDR" envDefault:"127.0.0.1:8815"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	Admin1Username string `env:"AUTH_ADMIN1_USERNAME" envDefault:"fagan@admin_1"`
	Admin1Password string `env:"AUTH_ADMIN1_PASSWORD" envDefault:"fagan_glass"`
	Admin2Username string `env:"AUTH_ADMIN2_USERNAME" envDefault:"fagan@admin_2"`
	Admin2Password string `env:"AUTH_ADMIN2_PASSWORD" envDefault:"fagan_aluminum"`
}

func LoadConfig() (Config, error) {
	return env.ParseAs[Config]()
}

// ReservedAdmins returns the configured reserved admin credential pairs.
func (c Config) ReservedAdmins() []service.ReservedAdmin {
	return []service.ReservedAdmin{
		{Username: c.Admin1Username, Password: c.Admin1Password},
		{Username: c.Admin2Username, Password: c.Admin2Password},
	}
}
