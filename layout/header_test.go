package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"csheet/callsheet"
	"csheet/common"
	"csheet/utils/images"
)

type fakeLoader struct {
	res   map[string]*images.Resource
	calls []string
}

func (f *fakeLoader) Load(ref string) (*images.Resource, error) {
	f.calls = append(f.calls, ref)
	if images.IsRemote(ref) {
		return nil, nil
	}
	if r, ok := f.res[ref]; ok {
		return r, nil
	}
	return nil, errors.New("no such image")
}

func text(v string) callsheet.HeaderItem {
	return callsheet.HeaderItem{Type: common.HeaderItemTypeText, Value: v, Enabled: true}
}

func variable(v string) callsheet.HeaderItem {
	return callsheet.HeaderItem{Type: common.HeaderItemTypeVariable, Value: v, Enabled: true}
}

func image(v string) callsheet.HeaderItem {
	return callsheet.HeaderItem{Type: common.HeaderItemTypeImage, Value: v, Enabled: true}
}

func disabled(hi callsheet.HeaderItem) callsheet.HeaderItem {
	hi.Enabled = false
	return hi
}

func texts(z *Zone) []string {
	if z == nil {
		return nil
	}
	var out []string
	for _, it := range z.Items {
		if it.Type == common.HeaderItemTypeImage {
			out = append(out, "img:"+it.Src)
			continue
		}
		out = append(out, it.Text)
	}
	return out
}

func newTestRenderer(t *testing.T, loader ImageLoader, deprecated ...string) *HeaderRenderer {
	t.Helper()
	vars := map[string]string{
		"projectName": "Spring Campaign",
		"companyName": "Acme Corp",
		"date":        "2024-03-01",
		"tagline":     "Presented by " + CompanyNameToken,
		"sponsor":     " " + CompanyNameToken + " ",
	}
	return NewHeaderRenderer(NewResolver(vars, deprecated...), loader, zaptest.NewLogger(t))
}

func TestRenderZoneOrderAndFiltering(t *testing.T) {
	hr := newTestRenderer(t, nil)

	z := hr.RenderZone(common.HeaderZoneCenter, []callsheet.HeaderItem{
		text("CALL SHEET"),
		disabled(text("hidden")),
		variable("@projectName"),
		variable("@unknownVar"),
		{Type: common.HeaderItemType("video"), Value: "clip.mp4", Enabled: true},
		text("   "),
		variable("@date"),
	})

	want := []string{"CALL SHEET", "Spring Campaign", "@unknownVar", "2024-03-01"}
	if diff := cmp.Diff(want, texts(z)); diff != "" {
		t.Errorf("zone mismatch (-want +got):\n%s", diff)
	}
	if z.Position != common.HeaderZoneCenter {
		t.Errorf("Position = %v", z.Position)
	}
	if !z.Items[2].Unresolved || z.Items[1].Unresolved {
		t.Errorf("unexpected Unresolved flags: %+v", z.Items)
	}
}

func TestRenderZoneEmpty(t *testing.T) {
	hr := newTestRenderer(t, nil)

	if z := hr.RenderZone(common.HeaderZoneLeft, nil); z != nil {
		t.Errorf("expected nil zone, got %+v", z)
	}
	if z := hr.RenderZone(common.HeaderZoneLeft, []callsheet.HeaderItem{disabled(text("x")), disabled(variable("@date"))}); z != nil {
		t.Errorf("expected nil zone for disabled items, got %+v", z)
	}
}

func TestCompanyNameNeverRendered(t *testing.T) {
	hr := newTestRenderer(t, nil)

	items := []callsheet.HeaderItem{
		variable(CompanyNameToken),
		disabled(variable(CompanyNameToken)),
		text(CompanyNameToken),
		disabled(text(CompanyNameToken)),
		image(CompanyNameToken),
		{Type: common.HeaderItemTypeText, Value: "by " + CompanyNameToken, Rich: "<p>" + CompanyNameToken + " presents</p>", Enabled: true},
		// bound values are checked as well
		variable("@tagline"),
		variable("@sponsor"),
	}

	zones := hr.Render(callsheet.HeaderLayout{Left: items, Center: items, Right: items})
	for _, z := range []*Zone{zones.Left, zones.Center, zones.Right} {
		for _, it := range z.Items {
			for _, s := range []string{it.Text, it.Src, it.Rich.PlainText()} {
				if s == CompanyNameToken || s == "Acme Corp" || containsToken(s) {
					t.Errorf("deprecated token rendered: %+v", it)
				}
			}
		}
		if diff := cmp.Diff([]string{" presents\n", "Presented by "}, texts(z)); diff != "" {
			t.Errorf("zone mismatch (-want +got):\n%s", diff)
		}
	}
}

func containsToken(s string) bool {
	return len(s) >= len(CompanyNameToken) && tokenRe.FindString(s) == CompanyNameToken
}

func TestConfiguredDeprecatedToken(t *testing.T) {
	hr := newTestRenderer(t, nil, "date")

	z := hr.RenderZone(common.HeaderZoneRight, []callsheet.HeaderItem{variable("@date"), variable("@projectName")})
	if diff := cmp.Diff([]string{"Spring Campaign"}, texts(z)); diff != "" {
		t.Errorf("zone mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTextPrefersRich(t *testing.T) {
	hr := newTestRenderer(t, nil)

	z := hr.RenderZone(common.HeaderZoneLeft, []callsheet.HeaderItem{
		{Type: common.HeaderItemTypeText, Value: "plain", Rich: "<b>bold</b>", Enabled: true},
		{Type: common.HeaderItemTypeText, Value: "fallback", Rich: "<p></p>", Enabled: true},
	})
	if z == nil || len(z.Items) != 2 {
		t.Fatalf("unexpected zone: %+v", z)
	}
	if z.Items[0].Rich == nil || z.Items[0].Text != "bold" {
		t.Errorf("rich payload not used: %+v", z.Items[0])
	}
	if z.Items[1].Rich != nil || z.Items[1].Text != "fallback" {
		t.Errorf("plain fallback not used: %+v", z.Items[1])
	}
}

func TestRenderImages(t *testing.T) {
	logo := &images.Resource{MimeType: "image/png", Data: []byte{1}, Width: 1, Height: 1}
	loader := &fakeLoader{res: map[string]*images.Resource{"logo.png": logo}}
	hr := newTestRenderer(t, loader)

	z := hr.RenderZone(common.HeaderZoneLeft, []callsheet.HeaderItem{
		image("logo.png"),
		image("missing.png"),
		image("https://cdn.example.com/logo.png"),
		image(" "),
		disabled(image("logo.png")),
	})

	want := []string{"img:logo.png", "img:https://cdn.example.com/logo.png"}
	if diff := cmp.Diff(want, texts(z)); diff != "" {
		t.Errorf("zone mismatch (-want +got):\n%s", diff)
	}
	if z.Items[0].Image != logo {
		t.Errorf("local image not embedded")
	}
	if z.Items[1].Image != nil {
		t.Errorf("remote image must stay a reference")
	}
	if diff := cmp.Diff([]string{"logo.png", "missing.png", "https://cdn.example.com/logo.png"}, loader.calls); diff != "" {
		t.Errorf("loader calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderImagesWithoutLoader(t *testing.T) {
	hr := newTestRenderer(t, nil)

	z := hr.RenderZone(common.HeaderZoneLeft, []callsheet.HeaderItem{image("logo.png")})
	if diff := cmp.Diff([]string{"img:logo.png"}, texts(z)); diff != "" {
		t.Errorf("zone mismatch (-want +got):\n%s", diff)
	}
}
