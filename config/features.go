package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Features struct {
	LeadEmailEnabled bool `env:"LEAD_EMAIL_ENABLED" envDefault:"false"`
	LeadSlackEnabled bool `env:"LEAD_SLACK_ENABLED" envDefault:"false"`
	StrictCatalog    bool `env:"STRICT_CATALOG" envDefault:"true"`
	JSONAPIEnabled   bool `env:"JSON_API_ENABLED" envDefault:"true"`
}

// LoadFeatures reads the feature flags. Lead delivery is opt-in; catalog
// validation and the JSON API are on unless switched off.
func LoadFeatures() (Features, error) {
	var f Features
	if err := env.Parse(&f); err != nil {
		return Features{}, fmt.Errorf("parsing feature flags: %w", err)
	}
	return f, nil
}
