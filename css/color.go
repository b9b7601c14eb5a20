package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var colorFuncs = map[string]bool{"rgb(": true, "rgba(": true, "hsl(": true, "hsla(": true}

// Color checks that value is a single CSS color (hex, named or one of
// rgb/rgba/hsl/hsla functions) and returns it in normalized form. Anything
// else, including additional declarations smuggled in, is rejected.
func Color(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return "", false
	}

	p := css.NewParser(parse.NewInputString("color:"+value), true)
	gt, _, data := p.Next()
	if gt != css.DeclarationGrammar || !strings.EqualFold(string(data), "color") {
		return "", false
	}
	var tokens []css.Token
	for _, t := range p.Values() {
		if t.TokenType != css.WhitespaceToken {
			tokens = append(tokens, t)
		}
	}
	// exactly one declaration
	if gt, _, _ := p.Next(); gt != css.ErrorGrammar {
		return "", false
	}
	if len(tokens) == 0 {
		return "", false
	}

	first := tokens[0]
	switch first.TokenType {
	case css.HashToken:
		if len(tokens) == 1 && isHexColor(string(first.Data)) {
			return strings.ToLower(string(first.Data)), true
		}
	case css.IdentToken:
		if len(tokens) == 1 && isLetters(string(first.Data)) {
			return strings.ToLower(string(first.Data)), true
		}
	case css.FunctionToken:
		name := strings.ToLower(string(first.Data))
		if !colorFuncs[name] || len(tokens) < 3 || tokens[len(tokens)-1].TokenType != css.RightParenthesisToken {
			return "", false
		}
		var sb strings.Builder
		sb.WriteString(name)
		for i, t := range tokens[1 : len(tokens)-1] {
			switch t.TokenType {
			case css.NumberToken, css.PercentageToken, css.DimensionToken:
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.Write(t.Data)
			case css.CommaToken:
				sb.WriteByte(',')
				continue
			case css.DelimToken:
				if string(t.Data) != "/" {
					return "", false
				}
				sb.WriteString(" /")
			default:
				return "", false
			}
		}
		sb.WriteByte(')')
		return sb.String(), true
	}
	return "", false
}

func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	return strings.Trim(strings.ToLower(s), "0123456789abcdef") == ""
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
