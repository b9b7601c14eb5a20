// Package preview assembles call sheet documents into paged previews ready to
// be written by output formatters.
package preview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"csheet/callsheet"
	"csheet/common"
	"csheet/layout"
)

// Options controls composition.
type Options struct {
	Mode  common.LayoutMode
	Theme Theme
	// Deprecated tokens in addition to the always suppressed one.
	Deprecated []string
	// Loader prepares header images, nil keeps them as references.
	Loader layout.ImageLoader
	// Language is used to title-case department and track names.
	Language language.Tag
}

// Composer turns call sheet documents into previews. It is not safe for
// concurrent use.
type Composer struct {
	opts  Options
	title cases.Caser
	log   *zap.Logger
}

func NewComposer(opts Options, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Language == language.Und {
		opts.Language = language.English
	}
	if opts.Theme.Zoom <= 0 {
		opts.Theme.Zoom = 1
	}
	return &Composer{
		opts:  opts,
		title: cases.Title(opts.Language, cases.NoLower),
		log:   log,
	}
}

// composition state for a single document
type composition struct {
	*Composer
	doc      *callsheet.Document
	resolver *layout.Resolver
	header   *layout.HeaderRenderer
}

// Compose produces preview for the document. Data problems never fail
// composition, they are returned as diagnostics.
func (c *Composer) Compose(doc *callsheet.Document) (*Preview, callsheet.Diagnostics) {
	cs := c.begin(doc)

	p := &Preview{
		ID:    doc.ID,
		Title: cs.documentTitle(),
		Mode:  c.mode(doc),
		Theme: c.opts.Theme,
	}

	var diags callsheet.Diagnostics
	switch p.Mode {
	case common.LayoutModeSections:
		p.Pages, diags = cs.sections()
	default:
		p.Pages = cs.classic()
	}

	c.log.Debug("Call sheet composed",
		zap.String("id", doc.ID),
		zap.Stringer("mode", p.Mode),
		zap.Int("pages", len(p.Pages)),
		zap.Int("problems", len(diags)))
	return p, diags
}

func (c *Composer) begin(doc *callsheet.Document) *composition {
	resolver := layout.NewResolver(callsheet.VariableContext(doc), c.opts.Deprecated...)
	return &composition{
		Composer: c,
		doc:      doc,
		resolver: resolver,
		header:   layout.NewHeaderRenderer(resolver, c.opts.Loader, c.log),
	}
}

// mode resolves auto layout: sections when document has any well-formed
// section, classic two page layout otherwise.
func (c *Composer) mode(doc *callsheet.Document) common.LayoutMode {
	if c.opts.Mode != common.LayoutModeAuto {
		return c.opts.Mode
	}
	for _, s := range doc.Sections {
		if s.WellFormed() {
			return common.LayoutModeSections
		}
	}
	return common.LayoutModeClassic
}

func (cs *composition) documentTitle() string {
	for _, t := range []string{cs.doc.Title, cs.doc.Project.Name} {
		if t = strings.TrimSpace(t); len(t) > 0 {
			return t
		}
	}
	return "Call Sheet"
}

func (cs *composition) classic() []*Page {
	main := &Page{Number: 1}
	main.Blocks = append(main.Blocks,
		cs.headerBlock(cs.doc.Header, false),
		cs.infoGrid(&callsheet.DayDetailsConfig{}),
		cs.schedule(&callsheet.ScheduleConfig{}),
		cs.talent(&callsheet.TalentConfig{}),
	)
	pages := []*Page{main}

	if len(cs.doc.Crew) > 0 {
		pages = append(pages, &Page{
			Number: 2,
			Blocks: []Block{
				cs.headerBlock(cs.doc.Header, true),
				cs.crew(&callsheet.CrewConfig{}),
			},
		})
	}
	return pages
}

func (cs *composition) sections() ([]*Page, callsheet.Diagnostics) {
	paged, diags := layout.PaginateWithDiagnostics(cs.doc.Sections)

	pages := make([]*Page, 0, len(paged))
	for i, sections := range paged {
		page := &Page{Number: i + 1}
		for _, s := range sections {
			if b := cs.block(s); b != nil {
				page.Blocks = append(page.Blocks, b)
			}
		}
		pages = append(pages, page)
	}
	return pages, diags
}

func (cs *composition) block(s *callsheet.Section) Block {
	switch cfg := s.Config.(type) {
	case *callsheet.HeaderConfig:
		h := cs.doc.Header
		if !cfg.Layout.Empty() {
			h = cfg.Layout
		}
		return cs.headerBlock(h, false)
	case *callsheet.DayDetailsConfig:
		return cs.infoGrid(cfg)
	case *callsheet.ScheduleConfig:
		return cs.schedule(cfg)
	case *callsheet.TalentConfig:
		return cs.talent(cfg)
	case *callsheet.CrewConfig:
		return cs.crew(cfg)
	case *callsheet.RemindersConfig:
		return cs.reminders(cfg)
	case *callsheet.NotesConfig:
		return cs.notes(cfg)
	case *callsheet.CustomBannerConfig:
		return cs.banner(cfg)
	case *callsheet.ExtrasConfig:
		return cs.extras(cfg)
	case *callsheet.AdvancedScheduleConfig:
		return cs.trackedSchedule(cfg)
	case *callsheet.QuoteConfig:
		return cs.quote(cfg)
	case *callsheet.NotesContactsConfig:
		return cs.contacts(cfg)
	}
	cs.log.Debug("Section is not rendered", zap.String("id", s.ID), zap.String("type", string(s.Type)))
	return nil
}

func (cs *composition) headerBlock(h callsheet.HeaderLayout, compact bool) *Header {
	return &Header{
		Compact:  compact,
		Title:    cs.documentTitle(),
		Subtitle: cs.subtitle(),
		Zones:    cs.header.Render(h),
		CrewCall: strings.TrimSpace(cs.doc.Day.CrewCall),
		Shape:    cs.opts.Theme.CenterShape,
	}
}

func (cs *composition) subtitle() string {
	d := &cs.doc.Day
	var parts []string
	if len(d.Date) > 0 {
		parts = append(parts, d.Date)
	}
	if d.DayNumber > 0 && d.TotalDays > 0 {
		parts = append(parts, fmt.Sprintf("Day %d of %d", d.DayNumber, d.TotalDays))
	} else if d.DayNumber > 0 {
		parts = append(parts, fmt.Sprintf("Day %d", d.DayNumber))
	}
	return strings.Join(parts, " | ")
}

// InfoFields lists info grid field keys in display order.
var InfoFields = []string{
	"date", "crewCall", "shootingCall", "breakfast", "lunch", "estimatedWrap",
	"location", "basecamp", "parking", "nearestHospital", "weather", "sunrise", "sunset",
}

var infoLabels = map[string]string{
	"date":            "Date",
	"crewCall":        "Crew Call",
	"shootingCall":    "Shooting Call",
	"breakfast":       "Breakfast",
	"lunch":           "Lunch",
	"estimatedWrap":   "Estimated Wrap",
	"location":        "Location",
	"basecamp":        "Basecamp",
	"parking":         "Parking",
	"nearestHospital": "Nearest Hospital",
	"weather":         "Weather",
	"sunrise":         "Sunrise",
	"sunset":          "Sunset",
}

func (cs *composition) infoValue(key string) string {
	d := &cs.doc.Day
	switch key {
	case "date":
		return d.Date
	case "crewCall":
		return d.CrewCall
	case "shootingCall":
		return d.ShootingCall
	case "breakfast":
		return d.Breakfast
	case "lunch":
		return d.Lunch
	case "estimatedWrap":
		return d.Wrap
	case "location":
		return joinNonEmpty(", ", d.Location.Name, d.Location.Address)
	case "basecamp":
		return joinNonEmpty(", ", d.Basecamp.Name, d.Basecamp.Address)
	case "parking":
		return d.Parking
	case "nearestHospital":
		return joinNonEmpty(", ", d.Hospital.Name, d.Hospital.Address)
	case "weather":
		w := d.Weather
		temps := joinNonEmpty(" / ", w.High, w.Low)
		return joinNonEmpty(", ", w.Summary, temps)
	case "sunrise":
		return d.Sunrise
	case "sunset":
		return d.Sunset
	}
	return ""
}

// infoGrid always has the same fixed fields (or requested subset of them),
// empty values included so the grid shape does not change between days.
func (cs *composition) infoGrid(cfg *callsheet.DayDetailsConfig) *InfoGrid {
	keys := InfoFields
	if len(cfg.Fields) > 0 {
		keys = slices.DeleteFunc(slices.Clone(cfg.Fields), func(k string) bool {
			_, ok := infoLabels[k]
			return !ok
		})
	}
	g := &InfoGrid{Title: titleOr(cfg.Title, "Day Details")}
	for _, k := range keys {
		g.Fields = append(g.Fields, Field{Key: k, Label: infoLabels[k], Value: strings.TrimSpace(cs.infoValue(k))})
	}
	return g
}

func (cs *composition) row(e *callsheet.ScheduleEntry) ScheduleRow {
	return ScheduleRow{
		Time:        e.Time,
		Duration:    e.Duration,
		Title:       cs.resolver.Expand(e.Title),
		Description: cs.resolver.Expand(e.Description),
		Location:    e.Location,
		Talent:      e.Talent,
		Notes:       cs.resolver.Expand(e.Notes),
	}
}

func (cs *composition) schedule(cfg *callsheet.ScheduleConfig) *ScheduleTable {
	t := &ScheduleTable{Title: titleOr(cfg.Title, "Schedule"), ShowNotes: cfg.ShowNotes}
	for i := range cs.doc.Schedule {
		t.Rows = append(t.Rows, cs.row(&cs.doc.Schedule[i]))
	}
	return t
}

// trackedSchedule groups schedule by track. Requested tracks come first in
// requested order, the rest in natural order, main track (no name) leads.
func (cs *composition) trackedSchedule(cfg *callsheet.AdvancedScheduleConfig) *TrackedSchedule {
	groups := make(map[string][]ScheduleRow)
	var names []string
	for i := range cs.doc.Schedule {
		e := &cs.doc.Schedule[i]
		name := cs.canonical(e.Track)
		if _, ok := groups[name]; !ok {
			names = append(names, name)
		}
		groups[name] = append(groups[name], cs.row(e))
	}

	ordered := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, t := range cfg.Tracks {
		name := cs.canonical(t)
		if _, ok := groups[name]; ok && !seen[name] {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}
	rest := slices.DeleteFunc(names, func(n string) bool { return seen[n] })
	slices.SortStableFunc(rest, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case len(a) == 0:
			return -1
		case len(b) == 0:
			return 1
		case natural.Less(a, b):
			return -1
		}
		return 1
	})
	ordered = append(ordered, rest...)

	ts := &TrackedSchedule{Title: titleOr(cfg.Title, "Schedule")}
	for _, name := range ordered {
		ts.Tracks = append(ts.Tracks, ScheduleTrack{Name: name, Rows: groups[name]})
	}
	return ts
}

func (cs *composition) talent(cfg *callsheet.TalentConfig) *TalentRoster {
	return &TalentRoster{
		Title:        titleOr(cfg.Title, "Talent"),
		ShowWardrobe: cfg.ShowWardrobe,
		Rows:         cs.doc.Talent,
	}
}

// crew groups members by department. Departments are in natural order unless
// config restricts them to a list, in which case list order is used.
func (cs *composition) crew(cfg *callsheet.CrewConfig) *CrewRoster {
	groups := make(map[string][]callsheet.CrewCall)
	var names []string
	for _, m := range cs.doc.Crew {
		name := cs.canonical(m.Department)
		if len(name) == 0 {
			name = "General"
		}
		if _, ok := groups[name]; !ok {
			names = append(names, name)
		}
		groups[name] = append(groups[name], m)
	}

	if len(cfg.Departments) > 0 {
		var requested []string
		for _, d := range cfg.Departments {
			name := cs.canonical(d)
			if _, ok := groups[name]; ok && !slices.Contains(requested, name) {
				requested = append(requested, name)
			}
		}
		names = requested
	} else {
		slices.SortFunc(names, func(a, b string) int {
			switch {
			case a == b:
				return 0
			case natural.Less(a, b):
				return -1
			}
			return 1
		})
	}

	r := &CrewRoster{Title: titleOr(cfg.Title, "Crew")}
	for _, name := range names {
		r.Departments = append(r.Departments, CrewDepartment{Name: name, Members: groups[name]})
	}
	return r
}

func (cs *composition) reminders(cfg *callsheet.RemindersConfig) *Reminders {
	src := cfg.Items
	if len(src) == 0 {
		src = cs.doc.Reminders
	}
	r := &Reminders{Title: titleOr(cfg.Title, "Reminders")}
	for _, item := range src {
		if item = strings.TrimSpace(cs.resolver.Expand(item)); len(item) > 0 {
			r.Items = append(r.Items, item)
		}
	}
	return r
}

func (cs *composition) notes(cfg *callsheet.NotesConfig) *Notes {
	n := &Notes{Title: titleOr(cfg.Title, "Notes")}
	if rich := layout.ParseRichText(cfg.Rich); rich != nil {
		rich.Map(cs.resolver.Expand)
		n.Rich = rich
		n.Text = rich.PlainText()
		return n
	}
	text := cfg.Text
	if len(strings.TrimSpace(text)) == 0 {
		text = cs.doc.Notes
	}
	n.Text = cs.resolver.Expand(text)
	return n
}

func (cs *composition) banner(cfg *callsheet.CustomBannerConfig) *Banner {
	return &Banner{
		Text:       cs.resolver.Expand(cfg.Text),
		Color:      cfg.Color,
		Background: cfg.Background,
	}
}

func (cs *composition) extras(cfg *callsheet.ExtrasConfig) *Extras {
	return &Extras{Title: titleOr(cfg.Title, "Extras"), Rows: cs.doc.Extras}
}

func (cs *composition) quote(cfg *callsheet.QuoteConfig) *Quote {
	return &Quote{Text: cs.resolver.Expand(cfg.Text), Author: cfg.Author}
}

func (cs *composition) contacts(cfg *callsheet.NotesContactsConfig) *Contacts {
	list := cfg.Contacts
	if len(list) == 0 {
		list = cs.doc.Contacts
	}
	return &Contacts{
		Title:    titleOr(cfg.Title, "Notes & Contacts"),
		Notes:    cs.resolver.Expand(cfg.Notes),
		Contacts: list,
	}
}

// canonical normalizes department and track names so that "camera" and
// "Camera " end up in the same group.
func (cs *composition) canonical(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if len(name) == 0 {
		return ""
	}
	return cs.title.String(name)
}

func titleOr(title, def string) string {
	if t := strings.TrimSpace(title); len(t) > 0 {
		return t
	}
	return def
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); len(v) > 0 {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
