package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"streammax/content"
	"streammax/models"
)

func Hero(brand string) g.Node {
	return Section(
		ID(content.SectionHome),
		Class("relative py-32 px-4 text-center overflow-hidden"),
		Div(
			Class("relative z-10 max-w-4xl mx-auto"),
			Div(
				Class("flex items-center justify-center mb-6"),
				Icon("play", "h-12 w-12 mr-4"),
				H1(Class("text-5xl md:text-7xl font-bold text-gradient"), g.Text(brand)),
			),
			P(
				Class("text-xl md:text-2xl text-muted mb-8 max-w-2xl mx-auto"),
				g.Text("Experience the future of television with our premium IPTV service. Thousands of channels, unlimited entertainment, anywhere you go."),
			),
			Div(
				Class("flex flex-col sm:flex-row gap-4 justify-center"),
				LinkButton("#contact", models.VariantHero, "xl", g.Text("Start Free Trial")),
				LinkButton("#features", models.VariantGlass, "xl", g.Text("Watch Demo")),
			),
		),
	)
}
