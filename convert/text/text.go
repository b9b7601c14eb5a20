// Package text writes composed call sheet preview as plain text, handy for
// terminals and diffs.
package text

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"csheet/common"
	"csheet/layout"
	"csheet/preview"
	"csheet/utils/debug"
)

const width = 72

var zoneLabels = map[common.HeaderZone]string{
	common.HeaderZoneLeft:   "Left",
	common.HeaderZoneCenter: "Center",
	common.HeaderZoneRight:  "Right",
}

type Writer struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{log: log}
}

// Generate writes preview to outputPath.
func (w *Writer) Generate(ctx context.Context, p *preview.Preview, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(w.Render(p)), 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return nil
}

// Render returns text rendition of the preview.
func (w *Writer) Render(p *preview.Preview) string {
	tw := debug.NewTreeWriter()

	tw.Rule(0, '=', width)
	tw.Line(0, "%s", strings.ToUpper(p.Title))
	tw.Rule(0, '=', width)

	for _, page := range p.Pages {
		tw.Blank()
		tw.Line(0, "Page %d of %d", page.Number, len(p.Pages))
		tw.Rule(0, '-', width)
		for _, b := range page.Blocks {
			tw.Blank()
			w.writeBlock(tw, b)
		}
	}
	return tw.String()
}

func heading(tw *debug.TreeWriter, title string) {
	if title != "" {
		tw.Line(0, "%s", strings.ToUpper(title))
	}
}

func (w *Writer) writeBlock(tw *debug.TreeWriter, b preview.Block) {
	switch b := b.(type) {
	case *preview.Header:
		writeHeader(tw, b)
	case *preview.InfoGrid:
		heading(tw, b.Title)
		for _, f := range b.Fields {
			tw.Field(1, f.Label, f.Value)
		}
	case *preview.ScheduleTable:
		heading(tw, b.Title)
		writeSchedule(tw, 1, b.Rows, b.ShowNotes)
	case *preview.TrackedSchedule:
		heading(tw, b.Title)
		for _, t := range b.Tracks {
			depth := 1
			if t.Name != "" {
				tw.Line(1, "[%s]", t.Name)
				depth = 2
			}
			writeSchedule(tw, depth, t.Rows, true)
		}
	case *preview.TalentRoster:
		heading(tw, b.Title)
		for _, t := range b.Rows {
			tw.Line(1, "%s", joinNonEmpty(" - ", t.Name, t.Role))
			tw.Field(2, "Call", t.CallTime)
			if b.ShowWardrobe {
				tw.Field(2, "Wardrobe", t.Wardrobe)
			}
			tw.Field(2, "Notes", t.Notes)
		}
	case *preview.CrewRoster:
		heading(tw, b.Title)
		for _, d := range b.Departments {
			tw.Line(1, "[%s]", d.Name)
			for _, m := range d.Members {
				tw.Line(2, "%s", joinNonEmpty(" - ", m.Name, m.Position))
				tw.Field(3, "Call", m.CallTime)
				tw.Field(3, "Phone", m.Phone)
				tw.Field(3, "Email", m.Email)
			}
		}
	case *preview.Reminders:
		heading(tw, b.Title)
		for _, r := range b.Items {
			tw.Line(1, "* %s", r)
		}
	case *preview.Notes:
		heading(tw, b.Title)
		text := b.Text
		if b.Rich != nil {
			text = b.Rich.PlainText()
		}
		tw.Text(1, text)
	case *preview.Banner:
		tw.Rule(0, '*', width)
		tw.Line(0, "%s", center(b.Text))
		tw.Rule(0, '*', width)
	case *preview.Extras:
		heading(tw, b.Title)
		for _, e := range b.Rows {
			tw.Line(1, "%s x%d", e.Description, e.Count)
			tw.Field(2, "Call", e.CallTime)
			tw.Field(2, "Notes", e.Notes)
		}
	case *preview.Quote:
		tw.Text(1, "\""+b.Text+"\"")
		if b.Author != "" {
			tw.Line(2, "- %s", b.Author)
		}
	case *preview.Contacts:
		heading(tw, b.Title)
		tw.Text(1, b.Notes)
		for _, c := range b.Contacts {
			tw.Line(1, "%s", joinNonEmpty(" - ", c.Name, c.Role))
			tw.Field(2, "Phone", c.Phone)
			tw.Field(2, "Email", c.Email)
		}
	default:
		w.log.Debug("Skipping block of unknown kind", zap.String("type", fmt.Sprintf("%T", b)))
	}
}

func writeHeader(tw *debug.TreeWriter, h *preview.Header) {
	if h.Title != "" {
		tw.Line(0, "%s", center(h.Title))
	}
	if h.Subtitle != "" {
		tw.Line(0, "%s", center(h.Subtitle))
	}
	if h.CrewCall != "" && !h.Compact {
		tw.Line(0, "%s", center("CREW CALL "+h.CrewCall))
	}
	for _, z := range []*layout.Zone{h.Zones.Left, h.Zones.Center, h.Zones.Right} {
		if z == nil {
			continue
		}
		items := make([]string, 0, len(z.Items))
		for _, item := range z.Items {
			items = append(items, itemText(&item))
		}
		tw.Field(1, zoneLabels[z.Position], strings.Join(items, " | "))
	}
}

func itemText(item *layout.Item) string {
	switch item.Type {
	case common.HeaderItemTypeImage:
		return "[image " + item.Src + "]"
	default:
		return strings.Join(strings.Fields(item.Text), " ")
	}
}

func writeSchedule(tw *debug.TreeWriter, depth int, rows []preview.ScheduleRow, notes bool) {
	for _, r := range rows {
		tw.Line(depth, "%s", joinNonEmpty("  ", r.Time, r.Title))
		tw.Field(depth+1, "Duration", r.Duration)
		tw.Text(depth+1, r.Description)
		tw.Field(depth+1, "Location", r.Location)
		tw.Field(depth+1, "Talent", strings.Join(r.Talent, ", "))
		if notes {
			tw.Field(depth+1, "Notes", r.Notes)
		}
	}
}

func center(s string) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func joinNonEmpty(sep string, values ...string) string {
	parts := values[:0:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, sep)
}
