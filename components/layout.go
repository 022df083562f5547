package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "StreamMax IPTV - Premium Live TV Streaming"
	}

	if config.Description == "" {
		config.Description = "Thousands of live channels in up to 8K. Pick a plan or request a free 24-hour test."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("min-h-screen bg-gradient-hero text-foreground"),
				g.Group(content),
			),
		),
	})
}
