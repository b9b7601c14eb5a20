package convert

import (
	"testing"

	"csheet/callsheet"
	"csheet/common"
	"csheet/config"
)

func testDocument() *callsheet.Document {
	return &callsheet.Document{
		ID:      "cs-0001",
		Title:   "Spring Campaign - Day 2",
		Project: callsheet.Project{Name: "Spring Campaign", Client: "Acme"},
		Day:     callsheet.DayDetails{Date: "2025-04-02", DayNumber: 2, TotalDays: 3},
	}
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		src      string
		format   common.OutputFmt
		want     string
	}{
		{"simple text", "simple-text", "", common.OutputFmtXhtml, "simple-text"},
		{"project and day", "{{ .Project }} day {{ .Day }} of {{ .TotalDays }}", "", common.OutputFmtXhtml, "Spring Campaign day 2 of 3"},
		{"id and date", "{{ .Date }}-{{ .ID }}", "", common.OutputFmtXhtml, "2025-04-02-cs-0001"},
		{"format", "{{ .Format }}", "", common.OutputFmtText, "text"},
		{"source file", "{{ .SourceFile }}", "sheets/day2.yaml", common.OutputFmtXhtml, "day2"},
		{"sprig functions", "{{ .Client | upper }}/{{ .Project | lower | replace \" \" \"_\" }}", "", common.OutputFmtXhtml, "ACME/spring_campaign"},
		{"printf padding", "day{{ printf \"%02d\" .Day }}", "", common.OutputFmtXhtml, "day02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandTemplate(testDocument(), tt.src, config.OutputNameTemplateFieldName, tt.template, tt.format)
			if err != nil {
				t.Fatalf("expandTemplate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTemplate_Context(t *testing.T) {
	got, err := expandTemplate(testDocument(), "", config.OutputNameTemplateFieldName, "{{ .Context }}", common.OutputFmtXhtml)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if got != string(config.OutputNameTemplateFieldName) {
		t.Errorf("expandTemplate() = %q", got)
	}
}

func TestExpandTemplate_InvalidTemplate(t *testing.T) {
	if _, err := expandTemplate(testDocument(), "", config.OutputNameTemplateFieldName, "{{ .Title", common.OutputFmtXhtml); err == nil {
		t.Error("expandTemplate() expected error for invalid template, got nil")
	}
}

func TestExpandTemplate_InvalidField(t *testing.T) {
	if _, err := expandTemplate(testDocument(), "", config.OutputNameTemplateFieldName, "{{ .NonExistentField }}", common.OutputFmtXhtml); err == nil {
		t.Error("expandTemplate() expected error for invalid field, got nil")
	}
}
