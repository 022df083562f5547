package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"streammax/models"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// catalogFile mirrors the override file. Empty sections fall back to the
// built-in tables.
type catalogFile struct {
	Brand    string           `mapstructure:"brand"`
	Plans    []models.Plan    `mapstructure:"plans"`
	Features []models.Feature `mapstructure:"features"`
	Nav      []models.NavItem `mapstructure:"nav"`
	Sections []string         `mapstructure:"sections"`
	Contact  *ContactInfo     `mapstructure:"contact"`
	Perks    []string         `mapstructure:"perks"`
}

// Load builds the catalog. With an empty path the built-in content is used;
// otherwise the file (YAML, JSON or TOML, picked by extension) overrides
// whichever tables it defines.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var f catalogFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}

	if f.Brand != "" {
		c.brand = f.Brand
	}
	if len(f.Plans) > 0 {
		c.plans = f.Plans
	}
	if len(f.Features) > 0 {
		c.features = f.Features
	}
	if len(f.Nav) > 0 {
		c.nav = f.Nav
	}
	if len(f.Sections) > 0 {
		c.sections = f.Sections
	}
	if f.Contact != nil {
		c.contact = *f.Contact
	}
	if len(f.Perks) > 0 {
		c.perks = f.Perks
	}
	return c, nil
}

// Validate reports every consistency problem in the catalog: plan names must
// be present and unique, at most one plan may be marked popular, variants
// must be known, and every nav item must point at an existing section.
func Validate(c *Catalog) error {
	var errs []error

	seen := make(map[string]bool)
	popular := 0
	for i, p := range c.plans {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("plan %d has no name", i))
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("duplicate plan name %q", p.Name))
		}
		seen[key] = true
		if p.Popular {
			popular++
		}
		if !p.Variant.Valid() {
			errs = append(errs, fmt.Errorf("plan %q has unknown variant %q", p.Name, p.Variant))
		}
	}
	if popular > 1 {
		errs = append(errs, fmt.Errorf("%d plans marked popular, at most one allowed", popular))
	}

	sections := make(map[string]bool)
	for _, id := range c.sections {
		if id == "" {
			errs = append(errs, errors.New("empty section id"))
			continue
		}
		if sections[id] {
			errs = append(errs, fmt.Errorf("duplicate section id %q", id))
		}
		sections[id] = true
	}
	for _, item := range c.nav {
		if !sections[item.ID] {
			errs = append(errs, fmt.Errorf("nav item %q points at unknown section %q", item.Name, item.ID))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
}
