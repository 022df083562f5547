// Package content holds the static tables the landing page is built from.
// A Catalog is built once at startup and never changes afterwards; every
// accessor hands out copies.
package content

import (
	"strings"

	"streammax/models"
)

const (
	SectionHome     = "home"
	SectionFeatures = "features"
	SectionPricing  = "pricing"
	SectionContact  = "contact"
)

type ContactInfo struct {
	Email        string   `json:"email" mapstructure:"email"`
	EmailNote    string   `json:"email_note" mapstructure:"email_note"`
	Phone        string   `json:"phone" mapstructure:"phone"`
	PhoneNote    string   `json:"phone_note" mapstructure:"phone_note"`
	AddressLines []string `json:"address_lines" mapstructure:"address_lines"`
}

type Catalog struct {
	brand    string
	plans    []models.Plan
	features []models.Feature
	nav      []models.NavItem
	sections []string
	contact  ContactInfo
	perks    []string
}

func (c *Catalog) Brand() string { return c.brand }

func (c *Catalog) Plans() []models.Plan {
	out := make([]models.Plan, len(c.plans))
	for i, p := range c.plans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

func (c *Catalog) Features() []models.Feature {
	return append([]models.Feature(nil), c.features...)
}

func (c *Catalog) NavItems() []models.NavItem {
	return append([]models.NavItem(nil), c.nav...)
}

// Sections lists the anchor ids of the page, top to bottom.
func (c *Catalog) Sections() []string {
	return append([]string(nil), c.sections...)
}

func (c *Catalog) Contact() ContactInfo {
	info := c.contact
	info.AddressLines = append([]string(nil), c.contact.AddressLines...)
	return info
}

func (c *Catalog) Perks() []string {
	return append([]string(nil), c.perks...)
}

// Plan finds a plan by name, ignoring case.
func (c *Catalog) Plan(name string) (models.Plan, bool) {
	for _, p := range c.plans {
		if strings.EqualFold(p.Name, name) {
			p.Features = append([]string(nil), p.Features...)
			return p, true
		}
	}
	return models.Plan{}, false
}

// Default returns the built-in StreamMax catalog.
func Default() *Catalog {
	return &Catalog{
		brand: "StreamMax IPTV",
		plans: []models.Plan{
			{
				Name:        "Basic",
				Price:       "$9.99",
				Period:      "/month",
				Description: "Perfect for casual viewers",
				Features: []string{
					"1,000+ Live Channels",
					"HD Quality Streaming",
					"1 Device Connection",
					"Basic Support",
					"7-Day Catch Up",
					"Mobile App Access",
				},
				Variant: models.VariantGlass,
			},
			{
				Name:        "Premium",
				Price:       "$19.99",
				Period:      "/month",
				Description: "Best value for families",
				Features: []string{
					"3,000+ Live Channels",
					"4K Ultra HD Quality",
					"3 Device Connections",
					"Priority Support",
					"14-Day Catch Up",
					"All Device Access",
					"VOD Library (5,000+)",
					"PPV Events Included",
				},
				Popular: true,
				Variant: models.VariantPremium,
			},
			{
				Name:        "Ultimate",
				Price:       "$29.99",
				Period:      "/month",
				Description: "For the ultimate experience",
				Features: []string{
					"5,000+ Live Channels",
					"8K & 4K Ultra HD",
					"Unlimited Devices",
					"24/7 VIP Support",
					"30-Day Catch Up",
					"All Platform Access",
					"Premium VOD Library",
					"Exclusive Content",
					"Multi-Screen Viewing",
					"Cloud DVR (500GB)",
				},
				Variant: models.VariantHero,
			},
		},
		features: []models.Feature{
			{Icon: "tv", Title: "Premium Channels", Description: "Access to thousands of premium channels from around the world"},
			{Icon: "globe", Title: "Global Content", Description: "International channels and content in multiple languages"},
			{Icon: "zap", Title: "Ultra Fast", Description: "Lightning-fast streaming with minimal buffering"},
			{Icon: "shield", Title: "Secure & Reliable", Description: "Encrypted streaming with 99.9% uptime guarantee"},
			{Icon: "users", Title: "Multi-Device", Description: "Watch on any device - TV, mobile, tablet, or computer"},
			{Icon: "headphones", Title: "24/7 Support", Description: "Round-the-clock customer support whenever you need help"},
		},
		nav: []models.NavItem{
			{Name: "Home", ID: SectionHome},
			{Name: "Features", ID: SectionFeatures},
			{Name: "Pricing", ID: SectionPricing},
			{Name: "Contact", ID: SectionContact},
		},
		sections: []string{SectionHome, SectionFeatures, SectionPricing, SectionContact},
		contact: ContactInfo{
			Email:        "support@streammaxiptv.com",
			EmailNote:    "Response within 1 hour",
			Phone:        "+1 (555) 123-IPTV",
			PhoneNote:    "24/7 Available",
			AddressLines: []string{"123 Streaming Avenue", "Tech City, TC 12345"},
		},
		perks: []string{
			"Full access to all channels for 24 hours",
			"Test on all your devices",
			"No credit card required",
			"Personal setup assistance",
			"No obligation to continue",
		},
	}
}
