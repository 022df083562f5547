package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(brand string, year int) g.Node {
	return Footer(
		Class("py-12 px-4 border-t"),
		Div(
			Class("max-w-7xl mx-auto text-center"),
			Div(Class("flex justify-center mb-6"), Logo(brand, "text-2xl")),
			P(
				Class("text-muted"),
				g.Text(fmt.Sprintf("© %d %s. All rights reserved. | Privacy Policy | Terms of Service", year, brand)),
			),
		),
	)
}
