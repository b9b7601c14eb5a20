// Package css prepares user stylesheets for embedding into generated call
// sheet previews.
package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Problem describes part of the stylesheet which was dropped.
type Problem struct {
	Rule   string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Rule, p.Reason)
}

// Sanitizer rewrites stylesheets so they could be appended to the built-in
// one inside single <style> element.
type Sanitizer struct {
	log *zap.Logger
}

func NewSanitizer(log *zap.Logger) *Sanitizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sanitizer{log: log.Named("css")}
}

// Sanitize drops at-rules which are only valid at the top of a separate
// stylesheet (@import, @charset, @namespace) and declarations referencing
// external resources. Everything else is written back unchanged. The
// source argument is used for logging only.
func (s *Sanitizer) Sanitize(data []byte, source string) ([]byte, []Problem, error) {
	var (
		out      strings.Builder
		problems []Problem
		selector string
	)

	p := css.NewParser(parse.NewInputBytes(data), false)
	for {
		gt, _, text := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, problems, fmt.Errorf("unable to parse stylesheet %s: %w", source, err)
			}
			s.log.Debug("Stylesheet prepared", zap.String("source", source), zap.Int("bytes", out.Len()), zap.Int("dropped", len(problems)))
			return []byte(out.String()), problems, nil

		case css.AtRuleGrammar:
			rule := strings.ToLower(string(text))
			switch rule {
			case "@import", "@charset", "@namespace":
				pr := Problem{Rule: rule + " " + strings.TrimSpace(joinTokens(p.Values())), Reason: "not allowed in embedded stylesheet"}
				s.log.Warn("Dropping stylesheet rule", zap.String("source", source), zap.Stringer("rule", pr))
				problems = append(problems, pr)
				continue
			}
			out.WriteString(atRulePrelude(text, p.Values()))
			out.WriteString(";\n")

		case css.BeginAtRuleGrammar:
			selector = atRulePrelude(text, p.Values())
			out.WriteString(selector)
			out.WriteString(" {\n")

		case css.BeginRulesetGrammar:
			selector = string(text) + joinTokens(p.Values())
			out.WriteString(selector)
			out.WriteString(" {\n")

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			values := p.Values()
			if ref, ok := externalRef(values); ok {
				pr := Problem{Rule: strings.TrimSpace(selector) + " " + string(text), Reason: "external resource " + ref}
				s.log.Warn("Dropping stylesheet declaration", zap.String("source", source), zap.Stringer("rule", pr))
				problems = append(problems, pr)
				continue
			}
			out.WriteString("  ")
			out.Write(text)
			out.WriteString(": ")
			out.WriteString(strings.TrimSpace(joinTokens(values)))
			out.WriteString(";\n")

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			out.WriteString("}\n")

		case css.CommentGrammar:
			// comments are not carried over

		default:
			out.Write(text)
			out.WriteString(joinTokens(p.Values()))
		}
	}
}

func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return sb.String()
}

func atRulePrelude(name []byte, values []css.Token) string {
	rest := strings.TrimSpace(joinTokens(values))
	if len(rest) == 0 {
		return string(name)
	}
	return string(name) + " " + rest
}

// externalRef reports url() values pointing outside of the document. Data
// URIs and fragment references are fine.
func externalRef(tokens []css.Token) (string, bool) {
	for _, t := range tokens {
		if t.TokenType != css.URLToken {
			continue
		}
		ref := strings.TrimSpace(string(t.Data))
		ref = strings.TrimSuffix(strings.TrimPrefix(ref, "url("), ")")
		ref = strings.Trim(strings.TrimSpace(ref), `"'`)
		if strings.HasPrefix(ref, "data:") || strings.HasPrefix(ref, "#") {
			continue
		}
		return ref, true
	}
	return "", false
}
