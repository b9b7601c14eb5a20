package callsheet

import (
	"csheet/common"
)

// SectionConfig is per-type section configuration. Every section type has its
// own variant carrying only fields relevant to it.
type SectionConfig interface {
	SectionType() common.SectionType
}

type HeaderConfig struct {
	// Layout overrides document header when not empty.
	Layout HeaderLayout `yaml:"layout"`
}

// DayDetailsConfig lists info grid fields to show, all when empty.
type DayDetailsConfig struct {
	Title  string   `yaml:"title"`
	Fields []string `yaml:"fields"`
}

type RemindersConfig struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type ScheduleConfig struct {
	Title     string `yaml:"title"`
	ShowNotes bool   `yaml:"showNotes"`
}

type TalentConfig struct {
	Title        string `yaml:"title"`
	ShowWardrobe bool   `yaml:"showWardrobe"`
}

type CrewConfig struct {
	Title       string   `yaml:"title"`
	Departments []string `yaml:"departments"`
}

type NotesConfig struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Rich  string `yaml:"richText"`
}

type CustomBannerConfig struct {
	Text       string `yaml:"text"`
	Color      string `yaml:"color"`
	Background string `yaml:"background"`
}

type ExtrasConfig struct {
	Title string `yaml:"title"`
}

type AdvancedScheduleConfig struct {
	Title  string   `yaml:"title"`
	Tracks []string `yaml:"tracks"`
}

type QuoteConfig struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

type NotesContactsConfig struct {
	Title    string    `yaml:"title"`
	Notes    string    `yaml:"notes"`
	Contacts []Contact `yaml:"contacts"`
}

type PageBreakConfig struct{}

func (HeaderConfig) SectionType() common.SectionType       { return common.SectionTypeHeader }
func (DayDetailsConfig) SectionType() common.SectionType   { return common.SectionTypeDayDetails }
func (RemindersConfig) SectionType() common.SectionType    { return common.SectionTypeReminders }
func (ScheduleConfig) SectionType() common.SectionType     { return common.SectionTypeSchedule }
func (TalentConfig) SectionType() common.SectionType       { return common.SectionTypeTalent }
func (CrewConfig) SectionType() common.SectionType         { return common.SectionTypeCrew }
func (NotesConfig) SectionType() common.SectionType        { return common.SectionTypeNotes }
func (CustomBannerConfig) SectionType() common.SectionType { return common.SectionTypeCustomBanner }
func (ExtrasConfig) SectionType() common.SectionType       { return common.SectionTypeExtras }
func (AdvancedScheduleConfig) SectionType() common.SectionType {
	return common.SectionTypeAdvancedSchedule
}
func (QuoteConfig) SectionType() common.SectionType         { return common.SectionTypeQuote }
func (NotesContactsConfig) SectionType() common.SectionType { return common.SectionTypeNotesContacts }
func (PageBreakConfig) SectionType() common.SectionType     { return common.SectionTypePageBreak }

// newSectionConfig returns empty config variant for known section type or nil.
func newSectionConfig(t common.SectionType) SectionConfig {
	switch t {
	case common.SectionTypeHeader:
		return &HeaderConfig{}
	case common.SectionTypeDayDetails:
		return &DayDetailsConfig{}
	case common.SectionTypeReminders:
		return &RemindersConfig{}
	case common.SectionTypeSchedule:
		return &ScheduleConfig{}
	case common.SectionTypeTalent:
		return &TalentConfig{}
	case common.SectionTypeCrew:
		return &CrewConfig{}
	case common.SectionTypeNotes:
		return &NotesConfig{}
	case common.SectionTypeCustomBanner:
		return &CustomBannerConfig{}
	case common.SectionTypeExtras:
		return &ExtrasConfig{}
	case common.SectionTypeAdvancedSchedule:
		return &AdvancedScheduleConfig{}
	case common.SectionTypeQuote:
		return &QuoteConfig{}
	case common.SectionTypeNotesContacts:
		return &NotesContactsConfig{}
	case common.SectionTypePageBreak:
		return &PageBreakConfig{}
	}
	return nil
}
