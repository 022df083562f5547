package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"streammax/models"
)

func CTA() g.Node {
	return Section(
		Class("py-20 px-4 bg-cta"),
		Div(
			Class("max-w-4xl mx-auto text-center"),
			H2(Class("text-4xl font-bold mb-4"), g.Text("Ready to Transform Your TV Experience?")),
			P(Class("text-xl text-muted mb-8"), g.Text("Join thousands of satisfied customers and start your journey today")),
			Div(
				Class("flex flex-col sm:flex-row gap-4 justify-center"),
				LinkButton("#contact", models.VariantHero, "xl", g.Text("Start 7-Day Free Trial")),
				LinkButton("#contact", models.VariantGlass, "xl", g.Text("Contact Sales")),
			),
			P(Class("text-sm text-muted mt-4"), g.Text("No credit card required • Cancel anytime • 30-day money-back guarantee")),
		),
	)
}
