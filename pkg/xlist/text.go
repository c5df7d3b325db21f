package xlist

import (
	"fmt"
	"regexp"

	"github.com/rivo/uniseg"
)

// DefaultTokenPattern separates tokens on runs of whitespace.
const DefaultTokenPattern = `\s+`

var defaultTokenRe = regexp.MustCompile(DefaultTokenPattern)

// TokensOf splits text on runs of whitespace.
func TokensOf(text string) *List[string] {
	return tokens(text, defaultTokenRe)
}

// TokensOfPattern splits text around matches of the regular expression
// pattern. A match at the start of text yields a leading empty token;
// trailing empty tokens are dropped.
func TokensOfPattern(text, pattern string) (*List[string], error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("xlist: token pattern %q: %w", pattern, err)
	}
	return tokens(text, re), nil
}

func tokens(text string, re *regexp.Regexp) *List[string] {
	if text == "" {
		return New[string]()
	}

	parts := re.Split(text, -1)
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return Of(parts[:end]...)
}

// CharsOf splits text into user-perceived characters, so a letter and its
// combining marks stay together.
func CharsOf(text string) *List[string] {
	out := New[string]()
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out.Append(g.Str())
	}
	return out
}
