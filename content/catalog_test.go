package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streammax/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.NoError(t, Validate(c))

	plans := c.Plans()
	require.Len(t, plans, 3)
	assert.Equal(t, "Basic", plans[0].Name)
	assert.Equal(t, "$19.99", plans[1].Price)
	assert.True(t, plans[1].Popular)
	assert.Equal(t, models.VariantHero, plans[2].Variant)
	assert.Len(t, plans[2].Features, 10)

	assert.Len(t, c.Features(), 6)
	assert.Equal(t, []string{"home", "features", "pricing", "contact"}, c.Sections())
	assert.Len(t, c.NavItems(), 4)
	assert.Len(t, c.Perks(), 5)
	assert.Equal(t, "StreamMax IPTV", c.Brand())
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	c := Default()

	plans := c.Plans()
	plans[0].Name = "Changed"
	plans[0].Features[0] = "Changed"

	again := c.Plans()
	assert.Equal(t, "Basic", again[0].Name)
	assert.Equal(t, "1,000+ Live Channels", again[0].Features[0])

	info := c.Contact()
	info.AddressLines[0] = "elsewhere"
	assert.Equal(t, "123 Streaming Avenue", c.Contact().AddressLines[0])
}

func TestCatalogPlanLookup(t *testing.T) {
	c := Default()

	p, ok := c.Plan("premium")
	require.True(t, ok)
	assert.Equal(t, "Premium", p.Name)

	_, ok = c.Plan("Platinum")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(c *Catalog) {},
		},
		{
			name:    "duplicate plan names",
			mutate:  func(c *Catalog) { c.plans[2].Name = "basic" },
			wantErr: `duplicate plan name "basic"`,
		},
		{
			name:    "two popular plans",
			mutate:  func(c *Catalog) { c.plans[0].Popular = true },
			wantErr: "2 plans marked popular",
		},
		{
			name:    "empty plan name",
			mutate:  func(c *Catalog) { c.plans[0].Name = " " },
			wantErr: "plan 0 has no name",
		},
		{
			name:    "unknown variant",
			mutate:  func(c *Catalog) { c.plans[0].Variant = "neon" },
			wantErr: `unknown variant "neon"`,
		},
		{
			name:    "nav points nowhere",
			mutate:  func(c *Catalog) { c.nav = append(c.nav, models.NavItem{Name: "Blog", ID: "blog"}) },
			wantErr: `unknown section "blog"`,
		},
		{
			name:    "duplicate section",
			mutate:  func(c *Catalog) { c.sections = append(c.sections, "home") },
			wantErr: `duplicate section id "home"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)

			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Default(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Plans(), c.Plans())
}

func TestLoad_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := `brand: StreamMax Test
plans:
  - name: Starter
    price: "$4.99"
    period: /month
    description: Just the basics
    features: ["100 Channels"]
    variant: glass
  - name: Family
    price: "$14.99"
    period: /month
    description: For the household
    features: ["2,000 Channels", "4 Devices"]
    popular: true
    variant: premium
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Validate(c))

	assert.Equal(t, "StreamMax Test", c.Brand())
	plans := c.Plans()
	require.Len(t, plans, 2)
	assert.Equal(t, "Family", plans[1].Name)
	assert.True(t, plans[1].Popular)
	assert.Equal(t, models.VariantPremium, plans[1].Variant)
	assert.Equal(t, []string{"2,000 Channels", "4 Devices"}, plans[1].Features)

	// tables absent from the file keep their defaults
	assert.Len(t, c.Features(), 6)
	assert.Len(t, c.NavItems(), 4)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
