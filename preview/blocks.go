package preview

import (
	"csheet/callsheet"
	"csheet/common"
	"csheet/layout"
)

// Block is a renderable piece of a preview page.
type Block interface {
	Kind() common.SectionType
}

// Header block. Compact variant is used on the crew page.
type Header struct {
	Compact  bool
	Title    string
	Subtitle string
	Zones    layout.Zones
	// CrewCall is shown in a badge, Shape defines its container.
	CrewCall string
	Shape    common.CenterShape
}

type Field struct {
	Key   string
	Label string
	Value string
}

type InfoGrid struct {
	Title  string
	Fields []Field
}

type ScheduleRow struct {
	Time        string
	Duration    string
	Title       string
	Description string
	Location    string
	Talent      []string
	Notes       string
}

type ScheduleTable struct {
	Title     string
	ShowNotes bool
	Rows      []ScheduleRow
}

type ScheduleTrack struct {
	Name string
	Rows []ScheduleRow
}

type TrackedSchedule struct {
	Title  string
	Tracks []ScheduleTrack
}

type TalentRoster struct {
	Title        string
	ShowWardrobe bool
	Rows         []callsheet.TalentCall
}

type CrewDepartment struct {
	Name    string
	Members []callsheet.CrewCall
}

type CrewRoster struct {
	Title       string
	Departments []CrewDepartment
}

type Reminders struct {
	Title string
	Items []string
}

type Notes struct {
	Title string
	Text  string
	Rich  *layout.RichText
}

type Banner struct {
	Text       string
	Color      string
	Background string
}

type Extras struct {
	Title string
	Rows  []callsheet.ExtrasCall
}

type Quote struct {
	Text   string
	Author string
}

type Contacts struct {
	Title    string
	Notes    string
	Contacts []callsheet.Contact
}

func (*Header) Kind() common.SectionType          { return common.SectionTypeHeader }
func (*InfoGrid) Kind() common.SectionType        { return common.SectionTypeDayDetails }
func (*ScheduleTable) Kind() common.SectionType   { return common.SectionTypeSchedule }
func (*TrackedSchedule) Kind() common.SectionType { return common.SectionTypeAdvancedSchedule }
func (*TalentRoster) Kind() common.SectionType    { return common.SectionTypeTalent }
func (*CrewRoster) Kind() common.SectionType      { return common.SectionTypeCrew }
func (*Reminders) Kind() common.SectionType       { return common.SectionTypeReminders }
func (*Notes) Kind() common.SectionType           { return common.SectionTypeNotes }
func (*Banner) Kind() common.SectionType          { return common.SectionTypeCustomBanner }
func (*Extras) Kind() common.SectionType          { return common.SectionTypeExtras }
func (*Quote) Kind() common.SectionType           { return common.SectionTypeQuote }
func (*Contacts) Kind() common.SectionType        { return common.SectionTypeNotesContacts }

// Page of the preview document.
type Page struct {
	Number int
	Blocks []Block
}

// Theme is cosmetic configuration carried to writers unchanged.
type Theme struct {
	Primary     string
	Accent      string
	Text        string
	Background  string
	CenterShape common.CenterShape
	Zoom        float64
}

// Preview is a composed call sheet document.
type Preview struct {
	ID    string
	Title string
	// Mode is the layout actually used, never auto.
	Mode  common.LayoutMode
	Theme Theme
	Pages []*Page
}
