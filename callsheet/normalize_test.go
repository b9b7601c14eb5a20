package callsheet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"csheet/common"
)

func TestNormalizeAssignsOrder(t *testing.T) {
	doc, _ := loadSample(t)
	if err := doc.Normalize(zaptest.NewLogger(t)); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	for i, s := range doc.Sections {
		if !s.WellFormed() {
			continue
		}
		if s.Order == nil {
			t.Errorf("Sections[%d] has no order after normalization", i)
		}
	}
	if got := *doc.Sections[10].Order; got != 10 {
		t.Errorf("Sections[10].Order = %v, want 10", got)
	}
	// explicit order is never touched
	if got := *doc.Sections[4].Order; got != 4 {
		t.Errorf("Sections[4].Order = %v, want 4", got)
	}
	if doc.Sections[7].Order != nil {
		t.Errorf("malformed section must be left alone")
	}
	if doc.ID != "cs-0001" {
		t.Errorf("existing ID replaced: %q", doc.ID)
	}
}

func TestNormalizeAssignsID(t *testing.T) {
	doc := &Document{Sections: []*Section{{ID: "a", Type: common.SectionTypeNotes}, nil}}
	if err := doc.Normalize(zaptest.NewLogger(t)); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		t.Fatalf("generated ID %q is not UUID: %v", doc.ID, err)
	}
	if id.Version() != 7 {
		t.Errorf("UUID version = %d, want 7", id.Version())
	}
	if *doc.Sections[0].Order != 0 {
		t.Errorf("Order = %v", *doc.Sections[0].Order)
	}
}

func TestVariableContext(t *testing.T) {
	doc, _ := loadSample(t)
	vars := VariableContext(doc)

	want := map[string]string{
		"projectName":     "Spring Campaign",
		"clientName":      "Bloom Cosmetics",
		"producer":        "Dana Reyes",
		"director":        "Sam Okafor",
		"callSheetTitle":  "Spring Campaign - Day 2",
		"date":            "2024-03-12",
		"dayNumber":       "2",
		"totalDays":       "3",
		"dayOfDays":       "Day 2 of 3",
		"crewCall":        "06:30",
		"shootingCall":    "08:00",
		"breakfast":       "06:00",
		"lunch":           "12:30",
		"estimatedWrap":   "18:00",
		"sunrise":         "06:58",
		"sunset":          "18:41",
		"weather":         "Partly cloudy",
		"locationName":    "Stage 4",
		"locationAddress": "100 Studio Way",
		"weatherNote":     "Bring rain gear",
	}
	if diff := cmp.Diff(want, vars); diff != "" {
		t.Errorf("VariableContext() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := vars["companyName"]; ok {
		t.Error("company name must never be in the context")
	}
}

func TestVariableContextOverrides(t *testing.T) {
	doc := &Document{
		Project:   Project{Name: "Derived"},
		Variables: map[string]string{"projectName": "Custom", "@blank": "  "},
	}
	vars := VariableContext(doc)
	if diff := cmp.Diff(map[string]string{"projectName": "Custom"}, vars); diff != "" {
		t.Errorf("VariableContext() mismatch (-want +got):\n%s", diff)
	}
}
