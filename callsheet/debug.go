package callsheet

import (
	"maps"
	"slices"
	"strconv"

	"github.com/maruel/natural"

	"csheet/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the decoded document. It exists solely
// for manual inspection during debugging.
func (doc *Document) String() string {
	if doc == nil {
		return "<nil Document>"
	}
	return treeWriter{debug.NewTreeWriter()}.document(doc).String()
}

func (tw treeWriter) document(doc *Document) treeWriter {
	tw.Line(0, "CallSheet id=%q", doc.ID)
	tw.TextBlock(1, "Title", doc.Title)
	p := &doc.Project
	tw.Line(1, "Project name=%q client=%q producer=%q director=%q", p.Name, p.Client, p.Producer, p.Director)
	tw.day(1, &doc.Day)

	for i, e := range doc.Schedule {
		tw.Line(1, "Schedule[%d] time=%q duration=%q track=%q", i, e.Time, e.Duration, e.Track)
		tw.TextBlock(2, "Title", e.Title)
		if len(e.Talent) > 0 {
			tw.Line(2, "Talent=%q", e.Talent)
		}
	}
	for i, c := range doc.Talent {
		tw.Line(1, "Talent[%d] name=%q role=%q call=%q", i, c.Name, c.Role, c.CallTime)
	}
	for i, c := range doc.Crew {
		tw.Line(1, "Crew[%d] name=%q department=%q position=%q call=%q", i, c.Name, c.Department, c.Position, c.CallTime)
	}
	for i, e := range doc.Extras {
		tw.Line(1, "Extras[%d] count=%d call=%q", i, e.Count, e.CallTime)
		tw.TextBlock(2, "Description", e.Description)
	}
	for i, r := range doc.Reminders {
		tw.TextBlock(1, "Reminder["+strconv.Itoa(i)+"]", r)
	}
	if len(doc.Notes) > 0 {
		tw.TextBlock(1, "Notes", doc.Notes)
	}
	for i, c := range doc.Contacts {
		tw.Line(1, "Contact[%d] name=%q role=%q", i, c.Name, c.Role)
	}

	tw.header(1, &doc.Header)

	if len(doc.Variables) > 0 {
		tw.Line(1, "Variables: %d", len(doc.Variables))
		keys := slices.SortedFunc(maps.Keys(doc.Variables), func(a, b string) int {
			switch {
			case a == b:
				return 0
			case natural.Less(a, b):
				return -1
			}
			return 1
		})
		for _, k := range keys {
			tw.TextBlock(2, k, doc.Variables[k])
		}
	}

	tw.Line(1, "Sections: %d", len(doc.Sections))
	for i, s := range doc.Sections {
		tw.section(2, i, s)
	}
	return tw
}

func (tw treeWriter) day(depth int, d *DayDetails) {
	tw.Line(depth, "Day date=%q day=%d/%d", d.Date, d.DayNumber, d.TotalDays)
	tw.Line(depth+1, "crewCall=%q shootingCall=%q breakfast=%q lunch=%q wrap=%q", d.CrewCall, d.ShootingCall, d.Breakfast, d.Lunch, d.Wrap)
	tw.Line(depth+1, "sunrise=%q sunset=%q weather=%q high=%q low=%q", d.Sunrise, d.Sunset, d.Weather.Summary, d.Weather.High, d.Weather.Low)
	for _, l := range []struct {
		label string
		loc   *Location
	}{{"Location", &d.Location}, {"Basecamp", &d.Basecamp}, {"Hospital", &d.Hospital}} {
		if len(l.loc.Name) > 0 || len(l.loc.Address) > 0 {
			tw.Line(depth+1, "%s name=%q address=%q", l.label, l.loc.Name, l.loc.Address)
		}
	}
}

func (tw treeWriter) header(depth int, h *HeaderLayout) {
	if h.Empty() {
		return
	}
	tw.Line(depth, "Header")
	for _, z := range []struct {
		name  string
		items []HeaderItem
	}{{"Left", h.Left}, {"Center", h.Center}, {"Right", h.Right}} {
		for i, it := range z.items {
			tw.Line(depth+1, "%s[%d] type=%q enabled=%t value=%q rich=%t", z.name, i, it.Type, it.Enabled, it.Value, len(it.Rich) > 0)
		}
	}
}

func (tw treeWriter) section(depth, index int, s *Section) {
	if s == nil {
		tw.Line(depth, "Section[%d] <nil>", index)
		return
	}
	order := "<none>"
	if s.Order != nil {
		order = strconv.FormatFloat(*s.Order, 'g', -1, 64)
	}
	visible := "<unset>"
	if s.Visible != nil {
		visible = strconv.FormatBool(*s.Visible)
	}
	tw.Line(depth, "Section[%d] id=%q type=%q order=%s visible=%s", index, s.ID, s.Type, order, visible)
	if s.Config != nil {
		tw.Line(depth+1, "Config %T %+v", s.Config, s.Config)
	}
}
