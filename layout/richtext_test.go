package layout

import (
	"strings"
	"testing"
)

func TestParseRichText(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
		isNil   bool
	}{
		{name: "empty", payload: "", isNil: true},
		{name: "blank markup", payload: "<p> </p><br>", isNil: true},
		{name: "plain text", payload: "Call at 7", want: "Call at 7"},
		{name: "paragraphs", payload: "<p>One</p><p>Two</p>", want: "One\nTwo\n"},
		{name: "line break", payload: "a<br>b", want: "a\nb"},
		{name: "script dropped", payload: "<b>ok</b><script>alert(1)</script>", want: "ok"},
		{name: "unknown unwrapped", payload: "<font color=red>red</font>", want: "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := ParseRichText(tt.payload)
			if tt.isNil {
				if rt != nil {
					t.Fatalf("ParseRichText(%q) = %q, want nil", tt.payload, rt.PlainText())
				}
				return
			}
			if rt == nil {
				t.Fatalf("ParseRichText(%q) = nil", tt.payload)
			}
			if got := rt.PlainText(); got != tt.want {
				t.Errorf("PlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRichTextStructure(t *testing.T) {
	rt := ParseRichText(`<p>See <a href="https://example.com/map">map</a> and <a href="javascript:alert(1)">this</a></p>`)
	if rt == nil || len(rt.Nodes) != 1 {
		t.Fatalf("expected single paragraph, got %+v", rt)
	}
	p := rt.Nodes[0]
	if p.Tag != "p" {
		t.Fatalf("Tag = %q, want p", p.Tag)
	}

	var links []*RichNode
	for _, c := range p.Children {
		if c.Tag == "a" {
			links = append(links, c)
		}
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Href != "https://example.com/map" {
		t.Errorf("Href = %q", links[0].Href)
	}
	if links[1].Href != "" {
		t.Errorf("unsafe href kept: %q", links[1].Href)
	}
}

func TestRichTextMap(t *testing.T) {
	rt := ParseRichText("<p><b>loud</b> quiet</p>")
	rt.Map(strings.ToUpper)
	if got := rt.PlainText(); got != "LOUD QUIET\n" {
		t.Errorf("PlainText() = %q", got)
	}

	var nilRT *RichText
	nilRT.Map(strings.ToUpper)
	if nilRT.PlainText() != "" {
		t.Error("nil rich text must be empty")
	}
}
