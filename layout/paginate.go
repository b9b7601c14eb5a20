// Package layout turns call sheet sections and header items into renderable
// structures: pages, header zones and resolved variables. Everything here is
// pure and never fails - bad input degrades to a deterministic fallback.
package layout

import (
	"cmp"
	"math"
	"slices"

	"csheet/callsheet"
	"csheet/common"
)

// Page is an ordered list of sections between page breaks. Page break
// markers themselves never end up on a page.
type Page []*callsheet.Section

// Paginate partitions sections into pages, see PaginateWithDiagnostics.
func Paginate(sections []*callsheet.Section) []Page {
	pages, _ := PaginateWithDiagnostics(sections)
	return pages
}

type sortEntry struct {
	section *callsheet.Section
	index   int
	key     float64
}

// PaginateWithDiagnostics drops malformed records (reporting them), orders
// the rest by their order value (original position when order is absent or
// not finite, original position again to break ties), removes explicitly
// hidden sections and splits result at page breaks. Consecutive, leading and
// trailing page breaks never produce empty pages, yet result always has at
// least one (possibly empty) page.
func PaginateWithDiagnostics(sections []*callsheet.Section) ([]Page, callsheet.Diagnostics) {
	var diags callsheet.Diagnostics

	entries := make([]sortEntry, 0, len(sections))
	for i, s := range sections {
		if !s.WellFormed() {
			d := callsheet.Diagnostic{Index: i, Reason: "malformed section dropped"}
			if s != nil {
				d.ID = s.ID
			}
			diags = append(diags, d)
			continue
		}
		key := float64(i)
		if s.Order != nil && !math.IsNaN(*s.Order) && !math.IsInf(*s.Order, 0) {
			key = *s.Order
		}
		entries = append(entries, sortEntry{section: s, index: i, key: key})
	}

	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})

	var (
		pages   []Page
		current Page
	)
	for _, e := range entries {
		if e.section.Hidden() {
			continue
		}
		if e.section.Type == common.SectionTypePageBreak {
			if len(current) > 0 {
				pages = append(pages, current)
				current = nil
			}
			continue
		}
		current = append(current, e.section)
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}

	if len(pages) == 0 {
		return []Page{{}}, diags
	}
	return pages, diags
}
