// The only reason this package exists is that both configuration and call
// sheet model need the same enums and config must not depend on the model.
package common

// Type of call sheet building block.
// ENUM(header, day-details, reminders, schedule, talent, crew, notes, custom-banner, extras, advanced-schedule, quote, notes-contacts, page-break)
type SectionType string

// Kind of content placed into a header zone.
// ENUM(text, variable, image)
type HeaderItemType string

// Header zone.
// ENUM(left, center, right)
type HeaderZone string

// Shape of the crew call badge container.
// ENUM(circle, rectangle, none)
type CenterShape string

// Specification of page layout selection.
// ENUM(auto, sections, classic)
type LayoutMode int

// Specification of requested output type.
// ENUM(xhtml, text)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtXhtml:
		return ".xhtml"
	case OutputFmtText:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
