package layout

import (
	"strings"

	"go.uber.org/zap"

	"csheet/callsheet"
	"csheet/common"
	"csheet/utils/images"
)

// ImageLoader prepares image resources. Nil resource without error means
// reference should be kept as is (remote resource).
type ImageLoader interface {
	Load(ref string) (*images.Resource, error)
}

// Item is a header item ready to be rendered.
type Item struct {
	Type common.HeaderItemType
	// Text is literal text, resolved variable value or raw variable token.
	Text string
	// Rich is set for text items with non-trivial rich payload.
	Rich *RichText
	// Unresolved is set for variables displayed as raw tokens.
	Unresolved bool
	// Src is image reference, Image is set when resource was embedded.
	Src   string
	Image *images.Resource
	Style callsheet.ItemStyle
}

// Zone is a rendered header zone, never empty.
type Zone struct {
	Position common.HeaderZone
	Items    []Item
}

// Zones holds rendered header zones, nil for zones without items.
type Zones struct {
	Left   *Zone
	Center *Zone
	Right  *Zone
}

func (z Zones) Empty() bool {
	return z.Left == nil && z.Center == nil && z.Right == nil
}

// HeaderRenderer renders header items of all three zones.
type HeaderRenderer struct {
	resolver *Resolver
	loader   ImageLoader
	log      *zap.Logger
}

// NewHeaderRenderer creates renderer. When loader is nil image items are kept
// as references.
func NewHeaderRenderer(resolver *Resolver, loader ImageLoader, log *zap.Logger) *HeaderRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &HeaderRenderer{resolver: resolver, loader: loader, log: log}
}

// Render renders every zone of the layout.
func (hr *HeaderRenderer) Render(h callsheet.HeaderLayout) Zones {
	return Zones{
		Left:   hr.RenderZone(common.HeaderZoneLeft, h.Left),
		Center: hr.RenderZone(common.HeaderZoneCenter, h.Center),
		Right:  hr.RenderZone(common.HeaderZoneRight, h.Right),
	}
}

// RenderZone renders items in array order. Returns nil when nothing is left
// to render.
func (hr *HeaderRenderer) RenderZone(pos common.HeaderZone, items []callsheet.HeaderItem) *Zone {
	var out []Item
	for i := range items {
		if item, ok := hr.renderItem(&items[i]); ok {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return &Zone{Position: pos, Items: out}
}

func (hr *HeaderRenderer) renderItem(hi *callsheet.HeaderItem) (Item, bool) {
	// deprecated values are skipped before anything else, enabled or not
	if hr.resolver.Deprecated(hi.Value) {
		hr.log.Debug("Skipping deprecated header item", zap.String("value", hi.Value))
		return Item{}, false
	}
	if !hi.Enabled {
		return Item{}, false
	}

	item := Item{Type: hi.Type, Style: hi.Style}

	switch hi.Type {
	case common.HeaderItemTypeVariable:
		token := strings.TrimSpace(hi.Value)
		if len(token) == 0 {
			return Item{}, false
		}
		item.Text = hr.resolver.Resolve(token)
		item.Unresolved = item.Text == token
		if !item.Unresolved {
			// bound values may carry deprecated tokens too
			item.Text = hr.resolver.Suppress(item.Text)
			if len(strings.TrimSpace(item.Text)) == 0 {
				return Item{}, false
			}
		}

	case common.HeaderItemTypeText:
		if rich := ParseRichText(hi.Rich); rich != nil {
			rich.Map(hr.resolver.Suppress)
			if len(strings.TrimSpace(rich.PlainText())) > 0 {
				item.Rich = rich
				item.Text = rich.PlainText()
				break
			}
		}
		item.Text = hr.resolver.Suppress(hi.Value)
		if len(strings.TrimSpace(item.Text)) == 0 {
			return Item{}, false
		}

	case common.HeaderItemTypeImage:
		item.Src = strings.TrimSpace(hi.Value)
		if len(item.Src) == 0 {
			return Item{}, false
		}
		if hr.loader == nil {
			break
		}
		res, err := hr.loader.Load(item.Src)
		if err != nil {
			// broken images are hidden, never shown
			hr.log.Debug("Hiding header image", zap.String("src", item.Src), zap.Error(err))
			return Item{}, false
		}
		item.Image = res

	default:
		hr.log.Debug("Skipping header item of unknown type", zap.String("type", string(hi.Type)))
		return Item{}, false
	}
	return item, true
}
