package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"streammax/models"
)

func navButton(item models.NavItem, extra string) g.Node {
	return PostButton("/nav/"+item.ID, "nav-link "+extra, nil, g.Text(item.Name))
}

func Topbar(brand string, nav []models.NavItem, menuOpen bool) g.Node {
	toggleIcon, toggleLabel := "menu", "Open menu"
	if menuOpen {
		toggleIcon, toggleLabel = "x", "Close menu"
	}

	return Header(
		Class("fixed top-0 left-0 right-0 z-50 topbar"),
		Nav(
			Class("max-w-7xl mx-auto px-4 py-4"),
			Div(
				Class("flex items-center justify-between"),
				Logo(brand, "text-xl"),

				Div(
					Class("hidden md:flex items-center space-x-8"),
					g.Group(g.Map(nav, func(item models.NavItem) g.Node {
						return navButton(item, "")
					})),
					LinkButton("#pricing", models.VariantHero, "sm", g.Text("Get Started")),
				),

				PostButton("/menu/toggle", "md:hidden menu-toggle", nil,
					Span(Class("sr-only"), g.Text(toggleLabel)),
					Icon(toggleIcon, "h-6 w-6"),
				),
			),

			g.If(menuOpen, Div(
				ID("mobile-menu"),
				Class("md:hidden mt-4 py-4 border-t"),
				Div(
					Class("flex flex-col space-y-4"),
					g.Group(g.Map(nav, func(item models.NavItem) g.Node {
						return navButton(item, "text-left")
					})),
					LinkButton("#pricing", models.VariantHero, "sm", g.Text("Get Started")),
				),
			)),
		),
	)
}
