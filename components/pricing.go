package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"streammax/content"
	"streammax/landing"
	"streammax/models"
)

func PlanCard(plan models.Plan, selected string) g.Node {
	class := "plan-card relative"
	if plan.Popular {
		class += " plan-popular"
	}
	label := landing.PlanLabel(plan, selected)

	return Card(
		class,
		g.Attr("data-plan", plan.Name),
		g.If(plan.Popular, Div(Class("badge-anchor"), Badge("Most Popular"))),
		Div(
			Class("card-header text-center pb-8"),
			H3(Class("card-title text-2xl"), g.Text(plan.Name)),
			P(Class("card-description text-base"), g.Text(plan.Description)),
			Div(
				Class("mt-4"),
				Span(Class("text-4xl font-bold"), g.Text(plan.Price)),
				Span(Class("text-muted"), g.Text(plan.Period)),
			),
		),
		Div(
			Class("card-content space-y-4"),
			Ul(
				Class("space-y-3"),
				g.Group(g.Map(plan.Features, CheckItem)),
			),
			PostButton("/plans/select", buttonClass(plan.Variant, "lg")+" w-full mt-6",
				map[string]string{"plan": plan.Name},
				g.Text(label),
			),
		),
	)
}

func Pricing(plans []models.Plan, selected string) g.Node {
	return Section(
		ID(content.SectionPricing),
		Class("py-20 px-4"),
		Div(
			Class("max-w-7xl mx-auto"),
			SectionHeading("Choose Your Perfect Plan", "Flexible pricing options to suit every need and budget"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(plans, func(p models.Plan) g.Node {
					return PlanCard(p, selected)
				})),
			),
		),
	)
}
