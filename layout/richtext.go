package layout

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RichNode is a sanitized piece of rich text. Text nodes have empty Tag.
type RichNode struct {
	Tag      string
	Text     string
	Href     string
	Children []*RichNode
}

// RichText is a sanitized rich text fragment produced by the editor.
type RichText struct {
	Nodes []*RichNode
}

// elements we keep, everything else is unwrapped
var allowedTags = map[atom.Atom]bool{
	atom.P: true, atom.Br: true, atom.Span: true, atom.Div: true,
	atom.B: true, atom.Strong: true, atom.I: true, atom.Em: true,
	atom.U: true, atom.S: true, atom.Sub: true, atom.Sup: true,
	atom.A: true, atom.Ul: true, atom.Ol: true, atom.Li: true,
}

// elements dropped with their content
var droppedTags = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Iframe: true, atom.Object: true,
	atom.Embed: true, atom.Img: true, atom.Svg: true, atom.Template: true,
}

// ParseRichText parses editor payload. Returns nil when payload cannot be
// parsed or has no visible text, so that caller falls back to plain value.
func ParseRichText(payload string) *RichText {
	if len(strings.TrimSpace(payload)) == 0 {
		return nil
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(payload), body)
	if err != nil {
		return nil
	}

	rt := &RichText{}
	for _, n := range nodes {
		rt.Nodes = append(rt.Nodes, sanitizeNode(n)...)
	}
	if len(strings.TrimSpace(rt.PlainText())) == 0 {
		return nil
	}
	return rt
}

func sanitizeNode(n *html.Node) []*RichNode {
	switch n.Type {
	case html.TextNode:
		if len(n.Data) == 0 {
			return nil
		}
		return []*RichNode{{Text: n.Data}}
	case html.ElementNode:
		if droppedTags[n.DataAtom] {
			return nil
		}
		var children []*RichNode
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			children = append(children, sanitizeNode(c)...)
		}
		if !allowedTags[n.DataAtom] {
			return children
		}
		rn := &RichNode{Tag: n.DataAtom.String(), Children: children}
		if n.DataAtom == atom.A {
			for _, a := range n.Attr {
				if a.Key == "href" && safeHref(a.Val) {
					rn.Href = a.Val
				}
			}
		}
		return []*RichNode{rn}
	case html.DocumentNode:
		var children []*RichNode
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			children = append(children, sanitizeNode(c)...)
		}
		return children
	}
	return nil
}

func safeHref(href string) bool {
	h := strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(h, "http://") || strings.HasPrefix(h, "https://") || strings.HasPrefix(h, "mailto:") || strings.HasPrefix(h, "tel:")
}

// PlainText returns text content of the fragment.
func (rt *RichText) PlainText() string {
	if rt == nil {
		return ""
	}
	var b strings.Builder
	for _, n := range rt.Nodes {
		n.plainText(&b)
	}
	return b.String()
}

func (n *RichNode) plainText(b *strings.Builder) {
	if len(n.Tag) == 0 {
		b.WriteString(n.Text)
		return
	}
	if n.Tag == "br" {
		b.WriteByte('\n')
		return
	}
	for _, c := range n.Children {
		c.plainText(b)
	}
	switch n.Tag {
	case "p", "div", "li":
		b.WriteByte('\n')
	}
}

// Map applies fn to every text node in place.
func (rt *RichText) Map(fn func(string) string) {
	if rt == nil {
		return
	}
	var walk func(nodes []*RichNode)
	walk = func(nodes []*RichNode) {
		for _, n := range nodes {
			if len(n.Tag) == 0 {
				n.Text = fn(n.Text)
				continue
			}
			walk(n.Children)
		}
	}
	walk(rt.Nodes)
}
