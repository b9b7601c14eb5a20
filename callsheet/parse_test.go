package callsheet

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"csheet/common"
)

func loadSample(t *testing.T) (*Document, Diagnostics) {
	t.Helper()
	f, err := os.Open("testdata/sample.yaml")
	if err != nil {
		t.Fatalf("open sample: %v", err)
	}
	defer f.Close()

	doc, diags, err := Parse(f, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc, diags
}

func TestParseSample(t *testing.T) {
	doc, _ := loadSample(t)

	if doc.ID != "cs-0001" {
		t.Errorf("ID = %q", doc.ID)
	}
	if doc.Project.Name != "Spring Campaign" || doc.Project.Company != "Old Agency Inc" {
		t.Errorf("Project = %+v", doc.Project)
	}
	if doc.Day.DayNumber != 2 || doc.Day.TotalDays != 3 || doc.Day.Wrap != "18:00" {
		t.Errorf("Day = %+v", doc.Day)
	}
	if doc.Day.Hospital.Name != "St. Mary's" {
		t.Errorf("Hospital = %+v", doc.Day.Hospital)
	}
	if len(doc.Schedule) != 3 || len(doc.Talent) != 1 || len(doc.Crew) != 3 || len(doc.Extras) != 1 {
		t.Errorf("unexpected list sizes: schedule=%d talent=%d crew=%d extras=%d",
			len(doc.Schedule), len(doc.Talent), len(doc.Crew), len(doc.Extras))
	}

	if len(doc.Header.Center) != 3 {
		t.Fatalf("Header.Center = %+v", doc.Header.Center)
	}
	hi := doc.Header.Center[0]
	if hi.Type != common.HeaderItemTypeVariable || hi.Value != "@projectName" || !hi.Enabled || !hi.Style.Bold || hi.Style.FontSize != 18 {
		t.Errorf("Header.Center[0] = %+v", hi)
	}
	if doc.Header.Center[2].Enabled {
		t.Errorf("Header.Center[2] must be disabled")
	}
	// unknown item types survive decoding
	if doc.Header.Right[1].Type != common.HeaderItemType("hologram") {
		t.Errorf("Header.Right[1] = %+v", doc.Header.Right[1])
	}
}

func TestParseSections(t *testing.T) {
	doc, diags := loadSample(t)

	if len(doc.Sections) != 11 {
		t.Fatalf("len(Sections) = %d, want 11", len(doc.Sections))
	}

	s := doc.Sections[1]
	if s.ID != "details" || s.Type != common.SectionTypeDayDetails || s.Order == nil || *s.Order != 1 {
		t.Errorf("Sections[1] = %+v", s)
	}
	dd, ok := s.Config.(*DayDetailsConfig)
	if !ok {
		t.Fatalf("Sections[1].Config = %T", s.Config)
	}
	if diff := cmp.Diff(&DayDetailsConfig{Title: "Logistics", Fields: []string{"date", "crewCall", "location"}}, dd); diff != "" {
		t.Errorf("day details config mismatch (-want +got):\n%s", diff)
	}

	if _, ok := doc.Sections[0].Config.(*HeaderConfig); !ok {
		t.Errorf("header section without config must get default config, got %T", doc.Sections[0].Config)
	}
	if !doc.Sections[5].Hidden() {
		t.Errorf("quote section must be hidden")
	}
	if doc.Sections[4].Visible != nil {
		t.Errorf("absent visibility must stay unset")
	}
	if doc.Sections[6] != nil {
		t.Errorf("scalar record must decode to nil, got %+v", doc.Sections[6])
	}
	if doc.Sections[7].WellFormed() {
		t.Errorf("record with numeric id must be malformed")
	}
	if doc.Sections[8].Config != nil {
		t.Errorf("unknown type must have no config")
	}
	if _, ok := doc.Sections[9].Config.(*CustomBannerConfig); !ok {
		t.Errorf("bad config must fall back to defaults, got %T", doc.Sections[9].Config)
	}
	if doc.Sections[10].Order != nil {
		t.Errorf("absent order must stay unset before normalization")
	}

	// malformed records (6, 7) are reported by the paginator
	want := []int{8, 9}
	var got []int
	for _, d := range diags {
		got = append(got, d.Index)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostic indexes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON(t *testing.T) {
	src := `{"id":"j1","title":"JSON sheet","sections":[{"id":"a","type":"notes","order":2.5,"isVisible":true,"config":{"text":"hi"}},{"id":"b","type":"page-break","isVisible":"no"}]}`

	doc, diags, err := Parse(strings.NewReader(src), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if doc.Title != "JSON sheet" || len(doc.Sections) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	a := doc.Sections[0]
	if *a.Order != 2.5 || a.Visible == nil || !*a.Visible {
		t.Errorf("Sections[0] = %+v", a)
	}
	if n, ok := a.Config.(*NotesConfig); !ok || n.Text != "hi" {
		t.Errorf("Sections[0].Config = %+v", a.Config)
	}
	// non boolean visibility is ignored
	if doc.Sections[1].Visible != nil {
		t.Errorf("Sections[1].Visible = %v", *doc.Sections[1].Visible)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "empty", src: "", want: "empty call sheet document"},
		{name: "not an object", src: "- 1\n- 2\n", want: "unable to decode call sheet document"},
		{name: "broken yaml", src: "id: [\n", want: "unable to decode call sheet document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(tt.src), zaptest.NewLogger(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDiagnosticString(t *testing.T) {
	if got := (Diagnostic{Index: 3, Reason: "bad"}).String(); got != "section #3: bad" {
		t.Errorf("String() = %q", got)
	}
	if got := (Diagnostic{Index: 1, ID: "x", Reason: "bad"}).String(); got != "section #1 (x): bad" {
		t.Errorf("String() = %q", got)
	}
}

func TestDocumentString(t *testing.T) {
	doc, _ := loadSample(t)
	dump := doc.String()
	for _, want := range []string{
		`CallSheet id="cs-0001"`,
		`Section[6] <nil>`,
		`Section[10] id="notes" type="notes" order=<none> visible=<unset>`,
		`weatherNote`,
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump does not contain %q:\n%s", want, dump)
		}
	}

	var nilDoc *Document
	if nilDoc.String() != "<nil Document>" {
		t.Errorf("nil dump = %q", nilDoc.String())
	}
}
