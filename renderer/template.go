package renderer

// PageConfig fixes the page geometry in PDF points (A4 portrait).
type PageConfig struct {
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	// TableEdge is the tighter left edge used by pipe-table rows.
	TableEdge float64
}

// Typography fixes font sizes and vertical spacing. Sizes are in points.
type Typography struct {
	FontFamily  string
	NameSize    float64
	SectionSize float64
	CompanySize float64
	BodySize    float64
	LineHeight  float64
	SectionGap  float64
	// BulletIndent is both the bullet glyph offset and the hanging indent
	// for wrapped bullet text.
	BulletIndent float64
}

// RGB color for clickable contact links.
type LinkColor struct {
	R, G, B int
}

// Template bundles the fixed typographic constants. There is exactly one
// template; the renderer has no per-request styling.
type Template struct {
	Page  PageConfig
	Type  Typography
	Links LinkColor
}

// DefaultTemplate is the single layout the renderer targets.
func DefaultTemplate() Template {
	return Template{
		Page: PageConfig{
			Width:        595.28,
			Height:       841.89,
			MarginLeft:   48,
			MarginRight:  48,
			MarginTop:    54,
			MarginBottom: 54,
			TableEdge:    40,
		},
		Type: Typography{
			FontFamily:   "Helvetica",
			NameSize:     20,
			SectionSize:  12,
			CompanySize:  10.5,
			BodySize:     10,
			LineHeight:   14,
			SectionGap:   18,
			BulletIndent: 14,
		},
		Links: LinkColor{R: 0, G: 102, B: 204},
	}
}

// ContentWidth returns the usable horizontal span between the margins.
func (t Template) ContentWidth() float64 {
	return t.Page.Width - t.Page.MarginLeft - t.Page.MarginRight
}

// RightEdge returns the x coordinate of the right margin.
func (t Template) RightEdge() float64 {
	return t.Page.Width - t.Page.MarginRight
}
