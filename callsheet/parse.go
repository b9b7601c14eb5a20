package callsheet

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"csheet/common"
)

// Diagnostic describes data quality problem found in a document. It never
// prevents rendering.
type Diagnostic struct {
	Index  int
	ID     string
	Reason string
}

func (d Diagnostic) String() string {
	if len(d.ID) == 0 {
		return fmt.Sprintf("section #%d: %s", d.Index, d.Reason)
	}
	return fmt.Sprintf("section #%d (%s): %s", d.Index, d.ID, d.Reason)
}

type Diagnostics []Diagnostic

// Log reports diagnostics as warnings.
func (ds Diagnostics) Log(log *zap.Logger) {
	for _, d := range ds {
		log.Warn("Call sheet data problem", zap.Int("index", d.Index), zap.String("id", d.ID), zap.String("reason", d.Reason))
	}
}

// wireDocument is document as it comes from the store. Sections are kept as
// raw nodes so that a single bad record does not fail the whole document.
type wireDocument struct {
	Document `yaml:",inline"`
	Sections []yaml.Node `yaml:"sections"`
}

// Parse decodes document snapshot. JSON is accepted as well since it is a
// subset of YAML. Only structural problems of the document itself are
// reported as errors, bad section records end up in diagnostics.
func Parse(r io.Reader, log *zap.Logger) (*Document, Diagnostics, error) {
	var wd wireDocument

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&wd); err != nil {
		if err == io.EOF {
			return nil, nil, fmt.Errorf("empty call sheet document")
		}
		return nil, nil, fmt.Errorf("unable to decode call sheet document: %w", err)
	}

	doc := wd.Document
	var diags Diagnostics

	doc.Sections = make([]*Section, 0, len(wd.Sections))
	for i := range wd.Sections {
		s, d := decodeSection(i, &wd.Sections[i])
		diags = append(diags, d...)
		doc.Sections = append(doc.Sections, s)
	}

	log.Debug("Call sheet decoded",
		zap.String("id", doc.ID),
		zap.Int("sections", len(doc.Sections)),
		zap.Int("schedule", len(doc.Schedule)),
		zap.Int("talent", len(doc.Talent)),
		zap.Int("crew", len(doc.Crew)))

	return &doc, diags, nil
}

// decodeSection never fails. Returns nil for records which are not objects
// and section with empty ID or type for records without proper string keys.
// Such records are left for the paginator to report, diagnostics here cover
// type and config problems only.
func decodeSection(index int, node *yaml.Node) (*Section, Diagnostics) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, nil
	}

	var (
		s       = &Section{}
		diags   Diagnostics
		cfgNode *yaml.Node
	)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "id":
			if isString(val) {
				s.ID = val.Value
			}
		case "type":
			if isString(val) {
				s.Type = common.SectionType(val.Value)
			}
		case "order":
			if val.Kind == yaml.ScalarNode && (val.Tag == "!!int" || val.Tag == "!!float") {
				var f float64
				if err := val.Decode(&f); err == nil {
					s.Order = &f
				}
			}
		case "isVisible":
			if val.Kind == yaml.ScalarNode && val.Tag == "!!bool" {
				var b bool
				if err := val.Decode(&b); err == nil {
					s.Visible = &b
				}
			}
		case "config":
			cfgNode = val
		}
	}

	if !s.WellFormed() {
		return s, nil
	}

	cfg := newSectionConfig(s.Type)
	if cfg == nil {
		diags = append(diags, Diagnostic{Index: index, ID: s.ID, Reason: fmt.Sprintf("unknown section type %q", s.Type)})
		return s, diags
	}
	if cfgNode != nil && cfgNode.Kind != 0 && cfgNode.Tag != "!!null" {
		if err := cfgNode.Decode(cfg); err != nil {
			diags = append(diags, Diagnostic{Index: index, ID: s.ID, Reason: fmt.Sprintf("bad section config, using defaults: %v", err)})
			cfg = newSectionConfig(s.Type)
		}
	}
	s.Config = cfg
	return s, diags
}

func isString(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!str"
}

// UnmarshalYAML decodes header item without rejecting unknown item types.
func (hi *HeaderItem) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Type    string    `yaml:"type"`
		Value   string    `yaml:"value"`
		Rich    string    `yaml:"richText"`
		Enabled bool      `yaml:"enabled"`
		Style   ItemStyle `yaml:"style"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*hi = HeaderItem{
		Type:    common.HeaderItemType(raw.Type),
		Value:   raw.Value,
		Rich:    raw.Rich,
		Enabled: raw.Enabled,
		Style:   raw.Style,
	}
	return nil
}
