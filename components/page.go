package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"streammax/content"
	"streammax/models"
)

type sectionRenderer func(c *content.Catalog, state models.ViewState) g.Node

// sectionRenderers are the anchored sections, keyed by anchor id.
var sectionRenderers = map[string]sectionRenderer{
	content.SectionHome: func(c *content.Catalog, _ models.ViewState) g.Node {
		return Hero(c.Brand())
	},
	content.SectionFeatures: func(c *content.Catalog, _ models.ViewState) g.Node {
		return Features(c.Brand(), c.Features())
	},
	content.SectionPricing: func(c *content.Catalog, state models.ViewState) g.Node {
		return g.Group([]g.Node{Pricing(c.Plans(), state.SelectedPlan), CTA()})
	},
	content.SectionContact: Contact,
}

// LandingPage renders the whole page for one visitor's state. Sections come
// in catalog order; ids without a renderer are skipped.
func LandingPage(c *content.Catalog, state models.ViewState) g.Node {
	sections := make([]g.Node, 0, len(c.Sections()))
	for _, id := range c.Sections() {
		if render, ok := sectionRenderers[id]; ok {
			sections = append(sections, render(c, state))
		}
	}

	return Layout(
		PageConfig{Title: c.Brand() + " - Premium Live TV Streaming"},
		Topbar(c.Brand(), c.NavItems(), state.MobileMenuOpen),
		Main(g.Group(sections)),
		PageFooter(c.Brand(), time.Now().Year()),
	)
}
