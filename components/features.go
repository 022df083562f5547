package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"streammax/content"
	"streammax/models"
)

func Features(brand string, features []models.Feature) g.Node {
	return Section(
		ID(content.SectionFeatures),
		Class("py-20 px-4"),
		Div(
			Class("max-w-7xl mx-auto"),
			SectionHeading(
				"Why Choose "+brand+"?",
				"Discover the features that make us the leading IPTV service provider",
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(features, func(f models.Feature) g.Node {
					return Card(
						"feature-card",
						Div(
							Class("card-header"),
							Icon(f.Icon, "h-12 w-12 mb-4"),
							H3(Class("card-title text-xl"), g.Text(f.Title)),
						),
						Div(
							Class("card-content"),
							P(Class("card-description text-base"), g.Text(f.Description)),
						),
					)
				})),
			),
		),
	)
}
