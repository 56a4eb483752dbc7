package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"resumelift/utils"
)

// PDFRenderer walks a canonical text document line by line, classifies each
// line and draws it according to the fixed template. Overflow starts a new
// page: truncating a resume silently would lose content, so the renderer
// always emits everything it is given.
type PDFRenderer struct {
	tpl    Template
	logger *utils.Logger
}

func NewPDFRenderer(tpl Template, logger *utils.Logger) *PDFRenderer {
	return &PDFRenderer{tpl: tpl, logger: logger}
}

// drawState carries the mutable drawing cursor alongside the classification
// context.
type drawState struct {
	pdf  *gofpdf.Fpdf
	tr   func(string) string
	y    float64
	ctx  *Context
	skip map[int]bool
}

// Render produces the PDF bytes for a canonical document. The only
// user-visible failure in the whole pipeline originates here.
func (r *PDFRenderer) Render(doc string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Resume", true)
	pdf.AddPage()

	st := &drawState{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		y:    r.tpl.Page.MarginTop,
		ctx:  NewContext(),
		skip: map[int]bool{},
	}

	lines := strings.Split(doc, "\n")
	for i, raw := range lines {
		if st.skip[i] {
			// Consumed by a look-ahead; still advance the automaton so the
			// following lines classify against the right state.
			Advance(st.ctx, LineDate, raw)
			continue
		}
		line := strings.TrimSpace(raw)
		kind := Classify(line, st.ctx)

		switch kind {
		case LineBlank:
			st.y += r.tpl.Type.LineHeight * 0.5
		case LineName:
			r.drawName(st, line)
		case LineContact:
			r.drawContact(st, line)
		case LineSectionHeader:
			r.drawSectionHeader(st, line)
		case LineTableRow:
			r.drawTableRow(st, line)
		case LineCompany:
			r.drawCompany(st, line, lines, i)
		case LineTwoPart:
			r.drawTwoPart(st, line)
		case LineBullet:
			r.drawBullet(st, line)
		case LineDate:
			r.drawDate(st, line)
		default:
			r.drawParagraph(st, line)
		}

		Advance(st.ctx, kind, line)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("pdf generation failed: %v", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %v", err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("pdf generation produced an empty document")
	}

	r.logger.Info("pdf rendered", map[string]interface{}{
		"pages": pdf.PageCount(),
		"bytes": buf.Len(),
	})
	return buf.Bytes(), nil
}

// ensureSpace starts a new page when the cursor would cross the bottom
// margin.
func (r *PDFRenderer) ensureSpace(st *drawState, needed float64) {
	if st.y+needed > r.tpl.Page.Height-r.tpl.Page.MarginBottom {
		st.pdf.AddPage()
		st.y = r.tpl.Page.MarginTop
	}
}

func (r *PDFRenderer) drawName(st *drawState, line string) {
	t := r.tpl.Type
	r.ensureSpace(st, t.NameSize+t.LineHeight)
	st.pdf.SetFont(t.FontFamily, "B", t.NameSize)
	text := strings.ToUpper(line)
	w := st.pdf.GetStringWidth(st.tr(text))
	st.y += t.NameSize
	st.pdf.Text((r.tpl.Page.Width-w)/2, st.y, st.tr(text))
	st.y += t.LineHeight * 0.6
}

// drawContact centers the visible contact parts and registers clickable
// link annotations for parts with a known URL.
func (r *PDFRenderer) drawContact(st *drawState, line string) {
	t := r.tpl.Type
	visible, urls := parseContactLine(line)
	if visible == "" {
		return
	}
	r.ensureSpace(st, t.LineHeight)
	st.pdf.SetFont(t.FontFamily, "", t.BodySize)

	parts := strings.Split(visible, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	const sep = "  |  "
	sepW := st.pdf.GetStringWidth(sep)

	total := 0.0
	for i, p := range parts {
		total += st.pdf.GetStringWidth(st.tr(p))
		if i < len(parts)-1 {
			total += sepW
		}
	}

	x := (r.tpl.Page.Width - total) / 2
	st.y += t.LineHeight
	for i, p := range parts {
		w := st.pdf.GetStringWidth(st.tr(p))
		if url, ok := urls[p]; ok {
			st.pdf.SetTextColor(r.tpl.Links.R, r.tpl.Links.G, r.tpl.Links.B)
			st.pdf.Text(x, st.y, st.tr(p))
			st.pdf.LinkString(x, st.y-t.BodySize, w, t.BodySize+2, url)
			st.pdf.SetTextColor(0, 0, 0)
		} else {
			st.pdf.Text(x, st.y, st.tr(p))
		}
		x += w
		if i < len(parts)-1 {
			st.pdf.Text(x, st.y, sep)
			x += sepW
		}
	}
}

func (r *PDFRenderer) drawSectionHeader(st *drawState, line string) {
	t := r.tpl.Type
	st.y += t.SectionGap
	r.ensureSpace(st, t.SectionSize+t.LineHeight)
	st.pdf.SetFont(t.FontFamily, "B", t.SectionSize)
	st.y += t.SectionSize
	st.pdf.Text(r.tpl.Page.MarginLeft, st.y, st.tr(canonicalKey(line)))
	st.y += t.LineHeight * 0.4
}

// drawTableRow draws the left cell at the tighter table edge and the last
// cell right-aligned.
func (r *PDFRenderer) drawTableRow(st *drawState, line string) {
	t := r.tpl.Type
	cells := splitTableCells(line)
	if len(cells) == 0 {
		return
	}
	r.ensureSpace(st, t.LineHeight)
	st.y += t.LineHeight

	st.pdf.SetFont(t.FontFamily, "B", t.CompanySize)
	st.pdf.Text(r.tpl.Page.TableEdge, st.y, st.tr(cells[0]))

	if len(cells) > 1 {
		st.pdf.SetFont(t.FontFamily, "", t.BodySize)
		right := cells[len(cells)-1]
		w := st.pdf.GetStringWidth(st.tr(right))
		st.pdf.Text(r.tpl.RightEdge()-w, st.y, st.tr(right))
	}
}

// drawCompany renders a company (upper-case bold) or university name, and
// looks ahead up to 4 lines for a date/location line to right-align on the
// same visual row, consuming it when found.
func (r *PDFRenderer) drawCompany(st *drawState, line string, lines []string, idx int) {
	t := r.tpl.Type
	r.ensureSpace(st, t.LineHeight)
	st.y += t.LineHeight

	text := line
	if st.ctx.Section == "WORK EXPERIENCE" {
		text = strings.ToUpper(line)
	}
	st.pdf.SetFont(t.FontFamily, "B", t.CompanySize)
	st.pdf.Text(r.tpl.Page.MarginLeft, st.y, st.tr(text))

	for j := idx + 1; j <= idx+4 && j < len(lines); j++ {
		candidate := strings.TrimSpace(lines[j])
		if candidate == "" || candidate == line {
			continue
		}
		if isBullet(candidate) || isSectionHeader(candidate) {
			break
		}
		if isDateLine(candidate) {
			st.pdf.SetFont(t.FontFamily, "", t.BodySize)
			w := st.pdf.GetStringWidth(st.tr(candidate))
			st.pdf.Text(r.tpl.RightEdge()-w, st.y, st.tr(candidate))
			st.skip[j] = true
			break
		}
	}
}

// drawTwoPart renders "<left> — <right>": left segment bold, right segment
// (the date range) flush against the right margin.
func (r *PDFRenderer) drawTwoPart(st *drawState, line string) {
	t := r.tpl.Type
	left, right := splitDashParts(line)
	r.ensureSpace(st, t.LineHeight)
	st.y += t.LineHeight

	st.pdf.SetFont(t.FontFamily, "B", t.CompanySize)
	st.pdf.Text(r.tpl.Page.MarginLeft, st.y, st.tr(left))

	if right != "" {
		st.pdf.SetFont(t.FontFamily, "", t.BodySize)
		w := st.pdf.GetStringWidth(st.tr(right))
		st.pdf.Text(r.tpl.RightEdge()-w, st.y, st.tr(right))
	}
}

func (r *PDFRenderer) drawBullet(st *drawState, line string) {
	t := r.tpl.Type
	text := strings.TrimSpace(strings.TrimPrefix(line, "•"))
	st.pdf.SetFont(t.FontFamily, "", t.BodySize)

	indent := r.tpl.Page.MarginLeft + t.BulletIndent
	wrapped := r.wrapText(st, text, r.tpl.ContentWidth()-t.BulletIndent)

	for i, wline := range wrapped {
		r.ensureSpace(st, t.LineHeight)
		st.y += t.LineHeight
		if i == 0 {
			st.pdf.Text(r.tpl.Page.MarginLeft, st.y, st.tr("•"))
		}
		st.pdf.Text(indent, st.y, st.tr(wline))
	}
}

func (r *PDFRenderer) drawDate(st *drawState, line string) {
	t := r.tpl.Type
	r.ensureSpace(st, t.LineHeight)
	st.y += t.LineHeight
	st.pdf.SetFont(t.FontFamily, "", t.BodySize)
	if st.ctx.Wait != waitIdle {
		w := st.pdf.GetStringWidth(st.tr(line))
		st.pdf.Text(r.tpl.RightEdge()-w, st.y, st.tr(line))
	} else {
		st.pdf.Text(r.tpl.Page.MarginLeft, st.y, st.tr(line))
	}
}

// drawParagraph word-wraps plain text; summary paragraphs are additionally
// full-justified, except for the final wrapped line.
func (r *PDFRenderer) drawParagraph(st *drawState, line string) {
	t := r.tpl.Type
	st.pdf.SetFont(t.FontFamily, "", t.BodySize)
	wrapped := r.wrapText(st, line, r.tpl.ContentWidth())
	justify := st.ctx.Section == "PROFESSIONAL SUMMARY"

	for i, wline := range wrapped {
		r.ensureSpace(st, t.LineHeight)
		st.y += t.LineHeight
		if justify && i < len(wrapped)-1 {
			r.drawJustified(st, wline)
		} else {
			st.pdf.Text(r.tpl.Page.MarginLeft, st.y, st.tr(wline))
		}
	}
}

// drawJustified distributes the residual width evenly between words so the
// line exactly fills the content width.
func (r *PDFRenderer) drawJustified(st *drawState, line string) {
	words := strings.Fields(line)
	if len(words) < 2 {
		st.pdf.Text(r.tpl.Page.MarginLeft, st.y, st.tr(line))
		return
	}
	spaceW := st.pdf.GetStringWidth(" ")
	natural := float64(len(words)-1) * spaceW
	for _, w := range words {
		natural += st.pdf.GetStringWidth(st.tr(w))
	}
	extra := (r.tpl.ContentWidth() - natural) / float64(len(words)-1)
	if extra < 0 {
		extra = 0
	}

	x := r.tpl.Page.MarginLeft
	for i, w := range words {
		st.pdf.Text(x, st.y, st.tr(w))
		x += st.pdf.GetStringWidth(st.tr(w))
		if i < len(words)-1 {
			x += spaceW + extra
		}
	}
}

// wrapText greedily wraps text to the given width using measured string
// widths at the currently selected font.
func (r *PDFRenderer) wrapText(st *drawState, text string, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if st.pdf.GetStringWidth(st.tr(candidate)) > width {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}

// parseContactLine splits the visible contact text from the embedded
// "||URLS:Label::url||Label2::url2" suffix and falls back to regex-extracted
// URLs for bare linkedin/github/portfolio mentions.
func parseContactLine(line string) (string, map[string]string) {
	urls := map[string]string{}
	visible := line

	if idx := strings.Index(line, "||URLS:"); idx >= 0 {
		visible = strings.TrimSpace(line[:idx])
		for _, pair := range strings.Split(line[idx+len("||URLS:"):], "||") {
			if sep := strings.Index(pair, "::"); sep > 0 {
				label := strings.TrimSpace(pair[:sep])
				url := strings.TrimSpace(pair[sep+2:])
				if label != "" && url != "" {
					urls[label] = url
				}
			}
		}
		return visible, urls
	}

	// No explicit map: derive targets from recognizable URLs in the text.
	for _, part := range strings.Split(visible, "|") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		switch {
		case strings.Contains(lower, "linkedin.com"):
			urls[part] = ensureScheme(part)
		case strings.Contains(lower, "github.com"):
			urls[part] = ensureScheme(part)
		case strings.HasPrefix(lower, "http"):
			urls[part] = part
		}
	}
	return visible, urls
}

func ensureScheme(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}

func splitTableCells(line string) []string {
	var cells []string
	for _, cell := range strings.Split(strings.Trim(line, "|"), "|") {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}
