package grammarian

import (
	"github.com/coregx/coregex"
)

// Regex delegates to a third-party regexp-compatible engine, anchored at
// pos. The pattern's semantics are a standard Perl-compatible regular
// expression (the same contract spec.md assumes of the host's regex
// library); Kleene star, alternation, character classes and anchors are
// all supported by the backing coregex engine.
//
// Regex panics if pattern fails to compile. Compiling an invalid pattern
// is a construction-time mistake, not a runtime NoMatch.
func Regex(pattern string) Scanner {
	re := coregex.MustCompile(`\A(?:` + pattern + `)`)
	return Scanner{&regexNode{pattern: pattern, re: re}}
}

type regexNode struct {
	base
	pattern string
	re      *coregex.Regex
}

// scanAt returns the rune offset (relative to pos) the anchored pattern
// consumes, or NOMATCH. The regex engine works over byte-addressed Go
// strings, so the rune slice from pos onward is re-stringified once per
// call; the returned byte length is translated back to a rune count by
// re-decoding only the matched prefix.
func (n *regexNode) scanAt(s []rune, pos int) int {
	if pos > len(s) {
		return NOMATCH
	}
	tail := string(s[pos:])
	loc := n.re.FindStringIndex(tail)
	if loc == nil || loc[0] != 0 {
		return NOMATCH
	}
	return len([]rune(tail[:loc[1]]))
}

func (n *regexNode) scan(s []rune, pos int) int {
	runes := n.scanAt(s, pos)
	if runes == NOMATCH {
		return NOMATCH
	}
	return pos + runes
}

func (n *regexNode) match(s []rune, pos int) (int, interface{}, bool) {
	return runScan(n, s, pos)
}

func (n *regexNode) String() string { return "/" + n.pattern + "/" }
