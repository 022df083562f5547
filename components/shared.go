package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"streammax/models"
)

// Icon renders a lucide glyph through iconify.
func Icon(name, sizeClasses string) g.Node {
	classes := "iconify inline-block text-primary"
	if sizeClasses != "" {
		classes = fmt.Sprintf("%s %s", classes, sizeClasses)
	}
	return Span(
		Class(classes),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

func Logo(brand, size string) g.Node {
	return Div(
		Class("flex items-center"),
		Icon("play", "h-8 w-8 mr-2"),
		Span(Class(size+" font-bold"), g.Text(brand)),
	)
}

// buttonClass maps a plan variant onto the stylesheet's button flavours.
func buttonClass(v models.Variant, size string) string {
	flavour := "btn-hero"
	switch v {
	case models.VariantGlass:
		flavour = "btn-glass"
	case models.VariantPremium:
		flavour = "btn-premium"
	}
	return fmt.Sprintf("btn %s btn-%s", flavour, size)
}

func LinkButton(href string, v models.Variant, size string, children ...g.Node) g.Node {
	return A(Href(href), Class(buttonClass(v, size)), g.Group(children))
}

// PostButton is a one-button form: the server-side equivalent of a click
// handler.
func PostButton(action, class string, hidden map[string]string, children ...g.Node) g.Node {
	fields := make([]g.Node, 0, len(hidden))
	for name, value := range hidden {
		fields = append(fields, Input(Type("hidden"), Name(name), Value(value)))
	}
	return Form(
		Method("post"),
		Action(action),
		Class("contents"),
		g.Group(fields),
		Button(Type("submit"), Class(class), g.Group(children)),
	)
}

func Card(class string, children ...g.Node) g.Node {
	return Div(Class("card bg-gradient-card "+class), g.Group(children))
}

func CardHeader(title, description string, titleClass string) g.Node {
	return Div(
		Class("card-header"),
		H3(Class("card-title "+titleClass), g.Text(title)),
		g.If(description != "", P(Class("card-description"), g.Text(description))),
	)
}

func Badge(text string) g.Node {
	return Span(Class("badge"), g.Text(text))
}

func CheckItem(text string) g.Node {
	return Li(
		Class("flex items-center"),
		Icon("check", "h-5 w-5 mr-3 flex-shrink-0"),
		Span(Class("text-sm"), g.Text(text)),
	)
}

func SectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-16"),
		H2(Class("text-4xl font-bold mb-4"), g.Text(title)),
		P(Class("text-xl text-muted max-w-2xl mx-auto"), g.Text(subtitle)),
	)
}
