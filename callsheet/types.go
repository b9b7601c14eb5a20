// Package callsheet defines the persisted call sheet document and its tolerant
// loading from document store snapshots (YAML or JSON).
package callsheet

import (
	"csheet/common"
)

// Document is a plain snapshot of a call sheet taken at render time.
type Document struct {
	ID        string            `yaml:"id"`
	Title     string            `yaml:"title"`
	Project   Project           `yaml:"project"`
	Day       DayDetails        `yaml:"dayDetails"`
	Schedule  []ScheduleEntry   `yaml:"schedule"`
	Talent    []TalentCall      `yaml:"talent"`
	Crew      []CrewCall        `yaml:"crew"`
	Extras    []ExtrasCall      `yaml:"extras"`
	Reminders []string          `yaml:"reminders"`
	Notes     string            `yaml:"notes"`
	Contacts  []Contact         `yaml:"contacts"`
	Header    HeaderLayout      `yaml:"header"`
	Variables map[string]string `yaml:"variables"`

	// Sections are decoded separately, see Parse. Entries may be nil or
	// malformed, paginator takes care of it.
	Sections []*Section `yaml:"-"`
}

type Project struct {
	Name     string `yaml:"name"`
	Client   string `yaml:"client"`
	Producer string `yaml:"producer"`
	Director string `yaml:"director"`
	// Company is kept for old documents only and is never rendered.
	Company string `yaml:"company"`
}

type Location struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Notes   string `yaml:"notes"`
}

type Weather struct {
	Summary string `yaml:"summary"`
	High    string `yaml:"high"`
	Low     string `yaml:"low"`
}

type DayDetails struct {
	Date         string   `yaml:"date"`
	DayNumber    int      `yaml:"dayNumber"`
	TotalDays    int      `yaml:"totalDays"`
	CrewCall     string   `yaml:"crewCall"`
	ShootingCall string   `yaml:"shootingCall"`
	Breakfast    string   `yaml:"breakfast"`
	Lunch        string   `yaml:"lunch"`
	Wrap         string   `yaml:"estimatedWrap"`
	Sunrise      string   `yaml:"sunrise"`
	Sunset       string   `yaml:"sunset"`
	Weather      Weather  `yaml:"weather"`
	Location     Location `yaml:"location"`
	Basecamp     Location `yaml:"basecamp"`
	Parking      string   `yaml:"parking"`
	Hospital     Location `yaml:"nearestHospital"`
}

type ScheduleEntry struct {
	Time        string   `yaml:"time"`
	Duration    string   `yaml:"duration"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Location    string   `yaml:"location"`
	Talent      []string `yaml:"talent"`
	Notes       string   `yaml:"notes"`
	// Track groups entries for advanced schedule, empty means main track.
	Track string `yaml:"track"`
}

type TalentCall struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	CallTime string `yaml:"callTime"`
	Wardrobe string `yaml:"wardrobe"`
	Notes    string `yaml:"notes"`
}

type CrewCall struct {
	Name       string `yaml:"name"`
	Department string `yaml:"department"`
	Position   string `yaml:"position"`
	CallTime   string `yaml:"callTime"`
	Phone      string `yaml:"phone"`
	Email      string `yaml:"email"`
}

type ExtrasCall struct {
	Description string `yaml:"description"`
	Count       int    `yaml:"count"`
	CallTime    string `yaml:"callTime"`
	Notes       string `yaml:"notes"`
}

type Contact struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
}

// ItemStyle is purely cosmetic and carries no business meaning.
type ItemStyle struct {
	FontSize     float64 `yaml:"fontSize,omitempty"`
	Color        string  `yaml:"color,omitempty"`
	Align        string  `yaml:"align,omitempty"`
	Bold         bool    `yaml:"bold,omitempty"`
	MarginTop    float64 `yaml:"marginTop,omitempty"`
	MarginBottom float64 `yaml:"marginBottom,omitempty"`
	NoWrap       bool    `yaml:"noWrap,omitempty"`
}

// HeaderItem is a small typed content unit placed in one of header zones.
// Type is not validated on load, unknown types are skipped when rendering.
type HeaderItem struct {
	Type    common.HeaderItemType `yaml:"type"`
	Value   string                `yaml:"value"`
	Rich    string                `yaml:"richText,omitempty"`
	Enabled bool                  `yaml:"enabled"`
	Style   ItemStyle             `yaml:"style,omitempty"`
}

type HeaderLayout struct {
	Left   []HeaderItem `yaml:"left"`
	Center []HeaderItem `yaml:"center"`
	Right  []HeaderItem `yaml:"right"`
}

// Empty reports whether layout has no items at all (enabled or not).
func (h HeaderLayout) Empty() bool {
	return len(h.Left) == 0 && len(h.Center) == 0 && len(h.Right) == 0
}

// Zone returns items of requested header zone.
func (h HeaderLayout) Zone(z common.HeaderZone) []HeaderItem {
	switch z {
	case common.HeaderZoneLeft:
		return h.Left
	case common.HeaderZoneCenter:
		return h.Center
	case common.HeaderZoneRight:
		return h.Right
	}
	return nil
}

// Section is one building block of a call sheet.
type Section struct {
	ID    string
	Type  common.SectionType
	Order *float64
	// Visible is nil when absent, only explicit false hides section.
	Visible *bool
	Config  SectionConfig
}

// WellFormed reports whether section has minimal shape required for layout.
func (s *Section) WellFormed() bool {
	return s != nil && len(s.ID) > 0 && len(s.Type) > 0
}

// Hidden reports explicit request to hide section.
func (s *Section) Hidden() bool {
	return s.Visible != nil && !*s.Visible
}
