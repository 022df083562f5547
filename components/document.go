package components

import (
	"streammax/content"
)

// Document is the set of section anchors the rendered page contains. It
// satisfies landing.Viewport: scrolling records the anchor so the response
// can point the browser at it.
type Document struct {
	sections map[string]bool
	target   string
}

// NewDocument lists the catalog sections the page knows how to render.
func NewDocument(c *content.Catalog) *Document {
	d := &Document{sections: make(map[string]bool)}
	for _, id := range c.Sections() {
		if _, ok := sectionRenderers[id]; ok {
			d.sections[id] = true
		}
	}
	return d
}

func (d *Document) HasSection(id string) bool {
	return d.sections[id]
}

func (d *Document) ScrollIntoView(id string) {
	d.target = id
}

// Target is the anchor of the last ScrollIntoView, or "".
func (d *Document) Target() string {
	return d.target
}
