package layout

import (
	"regexp"
	"strings"
)

// CompanyNameToken is no longer supported and is suppressed everywhere.
const CompanyNameToken = "@companyName"

var (
	tokenRe     = regexp.MustCompile(`@[A-Za-z_][A-Za-z0-9_]*`)
	fullTokenRe = regexp.MustCompile(`^@[A-Za-z_][A-Za-z0-9_]*$`)
)

// Resolver maps variable tokens to values.
type Resolver struct {
	vars       map[string]string
	deprecated map[string]struct{}
}

// NewResolver creates resolver for the given context. Context keys are
// variable names without "@". CompanyNameToken is always deprecated, more
// deprecated tokens could be added.
func NewResolver(vars map[string]string, deprecated ...string) *Resolver {
	r := &Resolver{
		vars:       vars,
		deprecated: map[string]struct{}{CompanyNameToken: {}},
	}
	for _, t := range deprecated {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		if !strings.HasPrefix(t, "@") {
			t = "@" + t
		}
		r.deprecated[t] = struct{}{}
	}
	return r
}

// Resolve is a shortcut for NewResolver(vars).Resolve(token).
func Resolve(token string, vars map[string]string) string {
	return NewResolver(vars).Resolve(token)
}

// Deprecated reports whether token is on the deny list.
func (r *Resolver) Deprecated(token string) bool {
	_, ok := r.deprecated[strings.TrimSpace(token)]
	return ok
}

// Resolve returns value bound to the token or token itself when it is not a
// variable token, is not bound or is deprecated.
func (r *Resolver) Resolve(token string) string {
	if !fullTokenRe.MatchString(token) || r.Deprecated(token) {
		return token
	}
	if v, ok := r.vars[token[1:]]; ok {
		return v
	}
	return token
}

// Expand substitutes all bound tokens in free text and removes deprecated
// ones. Unbound tokens are left as is so they could be spotted.
func (r *Resolver) Expand(text string) string {
	if !strings.Contains(text, "@") {
		return text
	}
	return tokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		if r.Deprecated(tok) {
			return ""
		}
		return r.Suppress(r.Resolve(tok))
	})
}

// Suppress removes deprecated tokens from literal text.
func (r *Resolver) Suppress(text string) string {
	if !strings.Contains(text, "@") {
		return text
	}
	return tokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		if r.Deprecated(tok) {
			return ""
		}
		return tok
	})
}
