// Package debug produces indented human readable trees. It backs document
// dumps as well as plain text call sheet output.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return NewTreeWriterIndent("  ")
}

// NewTreeWriterIndent uses indent for every level of depth.
func NewTreeWriterIndent(indent string) *TreeWriter {
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: indent,
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes quoted value, so control characters remain visible.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Field writes "label: value" as is. Empty values are skipped.
func (tw *TreeWriter) Field(depth int, label, value string) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return
	}
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(value)
	tw.w.WriteByte('\n')
}

// Text writes multi-line text, every line indented to depth. Trailing empty
// lines are dropped.
func (tw *TreeWriter) Text(depth int, text string) {
	text = strings.TrimRight(text, " \t\r\n")
	if len(text) == 0 {
		return
	}
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if len(line) > 0 {
			tw.pad(depth)
			tw.w.WriteString(line)
		}
		tw.w.WriteByte('\n')
	}
}

// Blank writes empty separator line, never two in a row and never at the
// very beginning.
func (tw *TreeWriter) Blank() {
	s := tw.w.String()
	if len(s) == 0 || strings.HasSuffix(s, "\n\n") {
		return
	}
	tw.w.WriteByte('\n')
}

// Rule writes horizontal line of width characters.
func (tw *TreeWriter) Rule(depth int, ch rune, width int) {
	tw.pad(depth)
	tw.w.WriteString(strings.Repeat(string(ch), width))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
