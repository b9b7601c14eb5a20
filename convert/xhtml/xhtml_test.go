package xhtml

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap/zaptest"

	"csheet/callsheet"
	"csheet/common"
	"csheet/layout"
	"csheet/preview"
	"csheet/utils/images"
)

func samplePreview() *preview.Preview {
	return &preview.Preview{
		ID:    "cs-1",
		Title: "Day 2",
		Mode:  common.LayoutModeSections,
		Theme: preview.Theme{Primary: "#1f3a5f", Zoom: 1.25, CenterShape: common.CenterShapeCircle},
		Pages: []*preview.Page{
			{Number: 1, Blocks: []preview.Block{
				&preview.Header{
					Title:    "Spring Campaign",
					Subtitle: "2025-04-02 | Day 2 of 3",
					CrewCall: "06:30",
					Shape:    common.CenterShapeCircle,
					Zones: layout.Zones{
						Left: &layout.Zone{Position: common.HeaderZoneLeft, Items: []layout.Item{
							{Type: common.HeaderItemTypeImage, Src: "https://example.com/logo.png"},
							{Type: common.HeaderItemTypeImage, Src: "logo.png", Image: &images.Resource{MimeType: "image/png", Data: []byte{1, 2, 3}}},
						}},
						Right: &layout.Zone{Position: common.HeaderZoneRight, Items: []layout.Item{
							{Type: common.HeaderItemTypeVariable, Text: "@unknown", Unresolved: true},
							{Type: common.HeaderItemTypeText, Text: "Bold", Style: callsheet.ItemStyle{FontSize: 18, Bold: true}},
						}},
					},
				},
				&preview.ScheduleTable{Title: "Schedule", ShowNotes: true, Rows: []preview.ScheduleRow{
					{Time: "07:00", Title: "Scene 1", Description: "Exterior", Talent: []string{"Ann", "Bob"}, Notes: "rain cover"},
				}},
			}},
			{Number: 2, Blocks: []preview.Block{
				&preview.CrewRoster{Title: "Crew", Departments: []preview.CrewDepartment{
					{Name: "Camera", Members: []callsheet.CrewCall{{Name: "Cam Op", Position: "Operator"}}},
				}},
				&preview.Notes{Title: "Notes", Rich: layout.ParseRichText("<p>Bring <b>boots</b></p>")},
				&preview.Banner{Text: "Closed set", Color: "#fff", Background: "#c00"},
			}},
		},
	}
}

func TestDocument_Structure(t *testing.T) {
	doc := New([]byte(".page { margin: 0; }"), zaptest.NewLogger(t)).Document(samplePreview())

	pages := doc.FindElements("//div[@class='page']")
	if len(pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(pages))
	}
	if pages[0].SelectAttrValue("id", "") != "page-1" {
		t.Errorf("first page id = %q", pages[0].SelectAttrValue("id", ""))
	}

	style := doc.FindElement("//head/style")
	if style == nil {
		t.Fatal("no stylesheet")
	}
	for _, want := range []string{"--primary: #1f3a5f;", "--zoom: 1.25;", ".page { margin: 0; }"} {
		if !strings.Contains(style.Text(), want) {
			t.Errorf("stylesheet does not contain %q: %s", want, style.Text())
		}
	}

	// empty center zone is still present to keep header columns
	zones := pages[0].FindElements("./div[@class='header']/div")
	if len(zones) != 3 {
		t.Fatalf("header zones = %d, want 3", len(zones))
	}
	if h1 := zones[1].SelectElement("h1"); h1 == nil || h1.Text() != "Spring Campaign" {
		t.Errorf("header title missing")
	}
	if badge := zones[1].FindElement("./div[@class='badge circle']/span[@class='value']"); badge == nil || badge.Text() != "06:30" {
		t.Errorf("crew call badge missing")
	}
}

func TestDocument_HeaderItems(t *testing.T) {
	doc := New(nil, zaptest.NewLogger(t)).Document(samplePreview())

	imgs := doc.FindElements("//img")
	if len(imgs) != 2 {
		t.Fatalf("images = %d, want 2", len(imgs))
	}
	if imgs[0].SelectAttrValue("onerror", "") != hideOnError {
		t.Errorf("remote image must hide itself on error")
	}
	if src := imgs[1].SelectAttrValue("src", ""); !strings.HasPrefix(src, "data:image/png;base64,") {
		t.Errorf("embedded image src = %q", src)
	}
	if imgs[1].SelectAttr("onerror") != nil {
		t.Errorf("embedded image should not have onerror")
	}

	unresolved := doc.FindElement("//div[@class='item variable unresolved']")
	if unresolved == nil || unresolved.Text() != "@unknown" {
		t.Errorf("unresolved variable must be shown as raw token")
	}
	bold := doc.FindElement("//div[@class='item text']")
	if bold == nil {
		t.Fatal("text item missing")
	}
	if style := bold.SelectAttrValue("style", ""); style != "font-size: 18px; font-weight: bold" {
		t.Errorf("text item style = %q", style)
	}
}

func TestDocument_Blocks(t *testing.T) {
	doc := New(nil, zaptest.NewLogger(t)).Document(samplePreview())

	heads := doc.FindElements("//div[@class='section schedule']//th")
	if len(heads) != 6 || heads[5].Text() != "Notes" {
		t.Errorf("schedule columns = %d", len(heads))
	}
	cells := doc.FindElements("//div[@class='section schedule']//tbody/tr/td")
	if len(cells) != 6 || cells[4].Text() != "Ann, Bob" {
		t.Errorf("schedule row cells = %d", len(cells))
	}
	if br := cells[2].SelectElement("br"); br == nil {
		t.Error("scene title and description should be separated by line break")
	}

	if dep := doc.FindElement("//div[@class='department']/h3"); dep == nil || dep.Text() != "Camera" {
		t.Error("crew department heading missing")
	}
	if b := doc.FindElement("//div[@class='section notes']//b"); b == nil || b.Text() != "boots" {
		t.Error("rich notes not rendered")
	}
	banner := doc.FindElement("//div[@class='section custom-banner']")
	if banner == nil || banner.SelectAttrValue("style", "") != "color: #fff; background: #c00" {
		t.Error("banner colors missing")
	}
}

func TestDocument_NoBadgeForNoneShape(t *testing.T) {
	p := samplePreview()
	p.Pages[0].Blocks[0].(*preview.Header).Shape = common.CenterShapeNone
	doc := New(nil, zaptest.NewLogger(t)).Document(p)
	if doc.FindElement("//div[@class='badge none']") != nil {
		t.Error("badge should not be rendered for shape none")
	}
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sheet.xhtml")
	if err := New(nil, zaptest.NewLogger(t)).Generate(context.Background(), samplePreview(), out); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte(`<?xml version="1.0" encoding="UTF-8"?>`)) {
		t.Errorf("unexpected document start: %.60s", data)
	}
	// output must be well formed
	if err := etree.NewDocument().ReadFromBytes(data); err != nil {
		t.Errorf("output is not well formed: %v", err)
	}
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := filepath.Join(t.TempDir(), "sheet.xhtml")
	if err := New(nil, nil).Generate(ctx, samplePreview(), out); err == nil {
		t.Error("expected error for canceled context")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no output should be produced for canceled context")
	}
}

func TestDocument_UnsafeColors(t *testing.T) {
	const tracker = "url(https://tracker.example/p.gif)"
	p := &preview.Preview{
		ID:   "cs-2",
		Mode: common.LayoutModeSections,
		Pages: []*preview.Page{{Number: 1, Blocks: []preview.Block{
			&preview.Banner{Text: "Closed set", Color: "red; background-image: " + tracker, Background: "rgb(200, 0, 0)"},
			&preview.Header{Zones: layout.Zones{
				Left: &layout.Zone{Position: common.HeaderZoneLeft, Items: []layout.Item{
					{Type: common.HeaderItemTypeText, Text: "Styled", Style: callsheet.ItemStyle{Color: "#123 " + tracker, Bold: true}},
				}},
			}},
		}}},
	}

	doc := New(nil, zaptest.NewLogger(t)).Document(p)
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "tracker.example") {
		t.Fatalf("external reference reached output:\n%s", buf.String())
	}

	banner := doc.FindElement("//div[@class='section custom-banner']")
	if banner == nil {
		t.Fatal("no banner")
	}
	if style := banner.SelectAttrValue("style", ""); style != "background: rgb(200, 0, 0)" {
		t.Errorf("banner style = %q", style)
	}
	item := doc.FindElement("//div[@class='item text']")
	if item == nil {
		t.Fatal("no text item")
	}
	if style := item.SelectAttrValue("style", ""); style != "font-weight: bold" {
		t.Errorf("text item style = %q", style)
	}
}
