package keys

import (
	"regexp"
	"strings"
)

// Matcher decides whether a key path is covered by an ignore/require
// pattern list. A pattern containing '*' is compiled to an anchored
// regular expression with '*' meaning "any characters"; a literal
// pattern matches the key exactly or any dot-separated descendant.
type Matcher struct {
	exact    map[string]struct{}
	prefixes []string
	regexps  []*regexp.Regexp
}

// NewMatcher compiles the pattern list. Patterns that fail to compile
// are skipped: a malformed ignore pattern must not abort a run.
func NewMatcher(patterns []string) *Matcher {
	m := &Matcher{exact: make(map[string]struct{}, len(patterns))}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if strings.Contains(p, "*") {
			if re, err := CompileWildcard(p); err == nil {
				m.regexps = append(m.regexps, re)
			}
			continue
		}
		m.exact[p] = struct{}{}
		m.prefixes = append(m.prefixes, p+".")
	}
	return m
}

// Matches reports whether the key is covered by any pattern.
func (m *Matcher) Matches(key string) bool {
	if _, ok := m.exact[key]; ok {
		return true
	}
	for _, p := range m.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	for _, re := range m.regexps {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}

// CompileWildcard converts a '*'-style glob into an anchored regexp.
// All other regexp metacharacters are treated literally.
func CompileWildcard(pattern string) (*regexp.Regexp, error) {
	escaped := regexp.QuoteMeta(pattern)
	escaped = strings.ReplaceAll(escaped, `\*`, ".*")
	return regexp.Compile("^" + escaped + "$")
}
