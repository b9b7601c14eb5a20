// Package xhtml writes composed call sheet preview as a single self contained
// XHTML document suitable for printing.
package xhtml

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"csheet/callsheet"
	"csheet/common"
	"csheet/css"
	"csheet/layout"
	"csheet/preview"
)

// hides images which could not be loaded by the viewer
const hideOnError = "this.style.display='none'"

type Writer struct {
	css []byte
	log *zap.Logger
}

// New creates writer. Stylesheet is embedded into every produced document
// after theme variables.
func New(style []byte, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{css: style, log: log}
}

// Generate writes preview to outputPath.
func (w *Writer) Generate(ctx context.Context, p *preview.Preview, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := w.Document(p)
	doc.Indent(2)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return f.Close()
}

// Document builds XHTML tree for the preview.
func (w *Writer) Document(p *preview.Preview) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")

	head := html.CreateElement("head")

	meta := head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "text/html; charset=utf-8")

	titleElem := head.CreateElement("title")
	titleElem.SetText(p.Title)

	style := head.CreateElement("style")
	style.CreateAttr("type", "text/css")
	style.SetText(themeCSS(p.Theme) + string(w.css))

	body := html.CreateElement("body")
	body.CreateAttr("class", "callsheet layout-"+p.Mode.String())
	if p.ID != "" {
		body.CreateAttr("id", p.ID)
	}

	for _, page := range p.Pages {
		div := body.CreateElement("div")
		div.CreateAttr("class", "page")
		div.CreateAttr("id", "page-"+strconv.Itoa(page.Number))
		for _, b := range page.Blocks {
			w.writeBlock(div, b, p.Theme)
		}
	}

	w.log.Debug("XHTML document prepared", zap.String("id", p.ID), zap.Int("pages", len(p.Pages)))
	return doc
}

func themeCSS(t preview.Theme) string {
	var b strings.Builder
	b.WriteString(":root {")
	for _, v := range []struct{ name, value string }{
		{"--primary", t.Primary},
		{"--accent", t.Accent},
		{"--text", t.Text},
		{"--background", t.Background},
	} {
		if v.value != "" {
			fmt.Fprintf(&b, " %s: %s;", v.name, v.value)
		}
	}
	zoom := t.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	fmt.Fprintf(&b, " --zoom: %s; }\n", strconv.FormatFloat(zoom, 'f', -1, 64))
	return b.String()
}

func section(parent *etree.Element, b preview.Block, title string) *etree.Element {
	div := parent.CreateElement("div")
	div.CreateAttr("class", "section "+b.Kind().String())
	if title != "" {
		div.CreateElement("h2").SetText(title)
	}
	return div
}

func (w *Writer) writeBlock(parent *etree.Element, b preview.Block, theme preview.Theme) {
	switch b := b.(type) {
	case *preview.Header:
		writeHeader(parent, b)
	case *preview.InfoGrid:
		div := section(parent, b, b.Title)
		dl := div.CreateElement("dl")
		for _, f := range b.Fields {
			item := dl.CreateElement("div")
			item.CreateAttr("class", "field "+f.Key)
			item.CreateElement("dt").SetText(f.Label)
			item.CreateElement("dd").SetText(f.Value)
		}
	case *preview.ScheduleTable:
		div := section(parent, b, b.Title)
		writeSchedule(div, b.Rows, b.ShowNotes)
	case *preview.TrackedSchedule:
		div := section(parent, b, b.Title)
		for _, t := range b.Tracks {
			track := div.CreateElement("div")
			track.CreateAttr("class", "track")
			if t.Name != "" {
				track.CreateElement("h3").SetText(t.Name)
			}
			writeSchedule(track, t.Rows, true)
		}
	case *preview.TalentRoster:
		div := section(parent, b, b.Title)
		cols := []string{"Name", "Role", "Call", "Notes"}
		if b.ShowWardrobe {
			cols = []string{"Name", "Role", "Call", "Wardrobe", "Notes"}
		}
		tbody := table(div, cols)
		for _, t := range b.Rows {
			cells := []string{t.Name, t.Role, t.CallTime, t.Notes}
			if b.ShowWardrobe {
				cells = []string{t.Name, t.Role, t.CallTime, t.Wardrobe, t.Notes}
			}
			row(tbody, cells)
		}
	case *preview.CrewRoster:
		div := section(parent, b, b.Title)
		for _, d := range b.Departments {
			dep := div.CreateElement("div")
			dep.CreateAttr("class", "department")
			dep.CreateElement("h3").SetText(d.Name)
			tbody := table(dep, []string{"Name", "Position", "Call", "Phone", "Email"})
			for _, m := range d.Members {
				row(tbody, []string{m.Name, m.Position, m.CallTime, m.Phone, m.Email})
			}
		}
	case *preview.Reminders:
		div := section(parent, b, b.Title)
		ul := div.CreateElement("ul")
		for _, r := range b.Items {
			ul.CreateElement("li").SetText(r)
		}
	case *preview.Notes:
		div := section(parent, b, b.Title)
		if b.Rich != nil {
			writeRich(div.CreateElement("div"), b.Rich.Nodes)
		} else {
			writeParagraphs(div, b.Text)
		}
	case *preview.Banner:
		div := parent.CreateElement("div")
		div.CreateAttr("class", "section "+b.Kind().String())
		var style []string
		if c, ok := css.Color(b.Color); ok {
			style = append(style, "color: "+c)
		}
		if c, ok := css.Color(b.Background); ok {
			style = append(style, "background: "+c)
		}
		if len(style) > 0 {
			div.CreateAttr("style", strings.Join(style, "; "))
		}
		div.CreateElement("p").SetText(b.Text)
	case *preview.Extras:
		div := section(parent, b, b.Title)
		tbody := table(div, []string{"Description", "Count", "Call", "Notes"})
		for _, e := range b.Rows {
			row(tbody, []string{e.Description, strconv.Itoa(e.Count), e.CallTime, e.Notes})
		}
	case *preview.Quote:
		div := section(parent, b, "")
		bq := div.CreateElement("blockquote")
		writeParagraphs(bq, b.Text)
		if b.Author != "" {
			p := bq.CreateElement("p")
			p.CreateAttr("class", "author")
			p.SetText(b.Author)
		}
	case *preview.Contacts:
		div := section(parent, b, b.Title)
		writeParagraphs(div, b.Notes)
		if len(b.Contacts) > 0 {
			tbody := table(div, []string{"Name", "Role", "Phone", "Email"})
			for _, c := range b.Contacts {
				row(tbody, []string{c.Name, c.Role, c.Phone, c.Email})
			}
		}
	default:
		w.log.Debug("Skipping block of unknown kind", zap.String("type", fmt.Sprintf("%T", b)))
	}
}

func writeHeader(parent *etree.Element, h *preview.Header) {
	div := parent.CreateElement("div")
	class := "header"
	if h.Compact {
		class += " compact"
	}
	div.CreateAttr("class", class)

	writeZone(div, common.HeaderZoneLeft, h.Zones.Left)

	center := writeZone(div, common.HeaderZoneCenter, h.Zones.Center)
	if h.Title != "" {
		center.CreateElement("h1").SetText(h.Title)
	}
	if h.Subtitle != "" {
		p := center.CreateElement("p")
		p.CreateAttr("class", "subtitle")
		p.SetText(h.Subtitle)
	}
	if h.CrewCall != "" && h.Shape != common.CenterShapeNone {
		badge := center.CreateElement("div")
		badge.CreateAttr("class", "badge "+h.Shape.String())
		label := badge.CreateElement("span")
		label.CreateAttr("class", "label")
		label.SetText("Crew Call")
		value := badge.CreateElement("span")
		value.CreateAttr("class", "value")
		value.SetText(h.CrewCall)
	}

	writeZone(div, common.HeaderZoneRight, h.Zones.Right)
}

// writeZone always creates zone container so that header columns keep their
// positions when some zones are empty.
func writeZone(parent *etree.Element, pos common.HeaderZone, z *layout.Zone) *etree.Element {
	div := parent.CreateElement("div")
	div.CreateAttr("class", "zone "+pos.String())
	if z == nil {
		return div
	}
	for _, item := range z.Items {
		writeItem(div, &item)
	}
	return div
}

func writeItem(parent *etree.Element, item *layout.Item) {
	var elem *etree.Element
	switch item.Type {
	case common.HeaderItemTypeImage:
		elem = parent.CreateElement("img")
		elem.CreateAttr("class", "item image")
		if item.Image != nil {
			elem.CreateAttr("src", item.Image.DataURI())
		} else {
			elem.CreateAttr("src", item.Src)
			elem.CreateAttr("onerror", hideOnError)
		}
		elem.CreateAttr("alt", "")
	case common.HeaderItemTypeVariable:
		elem = parent.CreateElement("div")
		class := "item variable"
		if item.Unresolved {
			class += " unresolved"
		}
		elem.CreateAttr("class", class)
		elem.SetText(item.Text)
	default:
		elem = parent.CreateElement("div")
		elem.CreateAttr("class", "item text")
		if item.Rich != nil {
			writeRich(elem, item.Rich.Nodes)
		} else {
			elem.SetText(item.Text)
		}
	}
	if style := itemStyle(item.Style); style != "" {
		elem.CreateAttr("style", style)
	}
}

func itemStyle(s callsheet.ItemStyle) string {
	var parts []string
	px := func(name string, v float64) {
		if v > 0 {
			parts = append(parts, name+": "+strconv.FormatFloat(v, 'f', -1, 64)+"px")
		}
	}
	px("font-size", s.FontSize)
	if c, ok := css.Color(s.Color); ok {
		parts = append(parts, "color: "+c)
	}
	switch s.Align {
	case "left", "center", "right":
		parts = append(parts, "text-align: "+s.Align)
	}
	if s.Bold {
		parts = append(parts, "font-weight: bold")
	}
	px("margin-top", s.MarginTop)
	px("margin-bottom", s.MarginBottom)
	if s.NoWrap {
		parts = append(parts, "white-space: nowrap")
	}
	return strings.Join(parts, "; ")
}

func writeRich(parent *etree.Element, nodes []*layout.RichNode) {
	for _, n := range nodes {
		if n.Tag == "" {
			parent.CreateText(n.Text)
			continue
		}
		elem := parent.CreateElement(n.Tag)
		if n.Href != "" {
			elem.CreateAttr("href", n.Href)
		}
		writeRich(elem, n.Children)
	}
}

func writeParagraphs(parent *etree.Element, text string) {
	for line := range strings.SplitSeq(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parent.CreateElement("p").SetText(line)
		}
	}
}

func writeSchedule(parent *etree.Element, rows []preview.ScheduleRow, notes bool) {
	cols := []string{"Time", "Duration", "Scene", "Location", "Talent"}
	if notes {
		cols = append(cols, "Notes")
	}
	tbody := table(parent, cols)
	for _, r := range rows {
		scene := r.Title
		if r.Description != "" {
			scene = joinLines(r.Title, r.Description)
		}
		cells := []string{r.Time, r.Duration, scene, r.Location, strings.Join(r.Talent, ", ")}
		if notes {
			cells = append(cells, r.Notes)
		}
		row(tbody, cells)
	}
}

func joinLines(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n" + b
}

func table(parent *etree.Element, cols []string) *etree.Element {
	t := parent.CreateElement("table")
	tr := t.CreateElement("thead").CreateElement("tr")
	for _, c := range cols {
		tr.CreateElement("th").SetText(c)
	}
	return t.CreateElement("tbody")
}

func row(tbody *etree.Element, cells []string) {
	tr := tbody.CreateElement("tr")
	for _, c := range cells {
		td := tr.CreateElement("td")
		lines := strings.Split(c, "\n")
		for i, l := range lines {
			if i > 0 {
				td.CreateElement("br")
			}
			td.CreateText(l)
		}
	}
}
