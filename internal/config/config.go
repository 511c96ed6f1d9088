package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvProduction is the environment name that switches the service to
// production behavior (JSON logs, no colored output).
const EnvProduction = "production"

type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
}

type Database struct {
	Host              string `envconfig:"DB_HOST"`
	Port              string `envconfig:"DB_PORT" default:"5432"`
	Name              string `envconfig:"DB_NAME"`
	User              string `envconfig:"DB_USER"`
	Password          string `envconfig:"DB_PASSWORD"`
	ConnectTimeoutSec int    `envconfig:"DB_CONNECT_TIMEOUT_SEC" default:"5"`
}

type Webhooks struct {
	CampaignTriggerURL string `envconfig:"CAMPAIGN_TRIGGER_WEBHOOK"`
	UserActivityURL    string `envconfig:"USER_ACTIVITY_WEBHOOK"`
	ActivityTimeoutSec int    `envconfig:"WEBHOOK_ACTIVITY_TIMEOUT_SEC" default:"8"`
	CampaignTimeoutSec int    `envconfig:"WEBHOOK_CAMPAIGN_TIMEOUT_SEC" default:"10"`
}

type Config struct {
	Service  Service
	Database Database
	Webhooks Webhooks
}

// Configured reports whether enough connection parameters are present to
// attempt a live database connection. A missing host or password means the
// dashboard serves demo data for the whole session.
func (d *Database) Configured() bool {
	return d.Host != "" && d.Password != ""
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
