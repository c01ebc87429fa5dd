package grammarian

import (
	"fmt"
	"strings"
)

// Sequence succeeds iff every child matches in order, each starting where
// the previous ended. If any child captures, the value is an ordered list
// built by extending with a capturing child's value when that child's
// value is already a list and it carries no action of its own, or
// appending it otherwise; if no child captures, the value is the raw
// consumed substring.
func Sequence(scanners ...Scanner) Scanner {
	return Scanner{&sequenceNode{ms: toMatchers(scanners), base: base{capture: anyCapturing(scanners)}}}
}

type sequenceNode struct {
	base
	ms []matcher
}

func (n *sequenceNode) scan(s []rune, pos int) int {
	end := pos
	for _, m := range n.ms {
		end = m.scan(s, end)
		if end == NOMATCH {
			return NOMATCH
		}
	}
	return end
}

func (n *sequenceNode) match(s []rune, pos int) (int, interface{}, bool) {
	var items []interface{}
	end := pos
	for _, m := range n.ms {
		if m.capturing() {
			e, v, ok := m.match(s, end)
			if !ok {
				return 0, nil, false
			}
			end = e
			if lst, isList := v.([]interface{}); isList && m.action() == nil {
				items = append(items, lst...)
			} else {
				items = append(items, v)
			}
		} else {
			e := m.scan(s, end)
			if e == NOMATCH {
				return 0, nil, false
			}
			end = e
		}
	}

	var value interface{}
	if n.capture {
		value = items
	} else {
		value = string(s[pos:end])
	}
	if a := n.act; a != nil {
		value = a(value)
	}
	return end, value, true
}

func (n *sequenceNode) String() string {
	parts := make([]string, len(n.ms))
	for i, m := range n.ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Choice returns the first alternative that matches, in order; once one
// succeeds there is no backtracking across alternatives (PEG semantics).
// The value is the selected alternative's own value, forwarded unchanged:
// the raw substring for a plain primitive, or whatever structured value
// the alternative built (for example through a Nonterminal whose rule has
// an action), whether or not any alternative captures.
func Choice(scanners ...Scanner) Scanner {
	return Scanner{&choiceNode{ms: toMatchers(scanners), base: base{capture: anyCapturing(scanners)}}}
}

type choiceNode struct {
	base
	ms []matcher
}

func (n *choiceNode) scan(s []rune, pos int) int {
	for _, m := range n.ms {
		if end := m.scan(s, pos); end != NOMATCH {
			return end
		}
	}
	return NOMATCH
}

func (n *choiceNode) match(s []rune, pos int) (int, interface{}, bool) {
	for _, m := range n.ms {
		end, value, ok := m.match(s, pos)
		if !ok {
			continue
		}
		// Whichever alternative matched already built the value its own
		// capturing rule calls for (raw substring if it doesn't capture,
		// structured otherwise); Choice forwards it unchanged and only
		// applies its own action, never re-deriving a raw substring from
		// its own (possibly different) capturing flag.
		if a := n.act; a != nil {
			value = a(value)
		}
		return end, value, true
	}
	return 0, nil, false
}

func (n *choiceNode) String() string {
	parts := make([]string, len(n.ms))
	for i, m := range n.ms {
		parts[i] = m.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// Repeat matches scanner greedily between min and max times (max == -1
// means unbounded), optionally separated by delimiter. A trailing,
// unmatched delimiter is never consumed: with comma := Literal(","), under
// Repeat(Literal("a"), 0, -1, &comma), "a," ends after "a". Capturing follows scanner or
// delimiter: if either captures, the value is the accumulated list (using
// the Sequence extend/append rule for each captured element); otherwise
// it is the raw substring.
func Repeat(scanner Scanner, min, max int, delimiter *Scanner) Scanner {
	n := &repeatNode{scanner: scanner.m, min: min, max: max}
	capture := scanner.m.capturing()
	if delimiter != nil {
		n.delimiter = delimiter.m
		capture = capture || delimiter.m.capturing()
	}
	n.capture = capture
	return Scanner{n}
}

type repeatNode struct {
	base
	scanner   matcher
	delimiter matcher
	min, max  int
}

func (n *repeatNode) scan(s []rune, pos int) int {
	count := 0
	end := pos
	next := n.scanner.scan(s, pos)
	for next != NOMATCH && count != n.max {
		end = next
		count++
		if n.delimiter != nil {
			d := n.delimiter.scan(s, end)
			if d == NOMATCH {
				break
			}
			next = n.scanner.scan(s, d)
		} else {
			next = n.scanner.scan(s, end)
		}
	}
	if count >= n.min {
		return end
	}
	return NOMATCH
}

func (n *repeatNode) match(s []rune, pos int) (int, interface{}, bool) {
	scannerCaptures := n.scanner.capturing()
	delimCaptures := n.delimiter != nil && n.delimiter.capturing()

	var items []interface{}
	count := 0
	end := pos

	appendValue := func(m matcher, v interface{}) {
		if lst, isList := v.([]interface{}); isList && m.action() == nil {
			items = append(items, lst...)
		} else {
			items = append(items, v)
		}
	}

	e, v, ok := n.scanner.match(s, pos)
	for ok && count != n.max {
		end = e
		count++
		if scannerCaptures {
			appendValue(n.scanner, v)
		}

		var nextStart int
		if n.delimiter != nil {
			if delimCaptures {
				de, dv, dok := n.delimiter.match(s, end)
				if !dok {
					break
				}
				appendValue(n.delimiter, dv)
				nextStart = de
			} else {
				ds := n.delimiter.scan(s, end)
				if ds == NOMATCH {
					break
				}
				nextStart = ds
			}
		} else {
			nextStart = end
		}
		e, v, ok = n.scanner.match(s, nextStart)
	}

	if count < n.min {
		return 0, nil, false
	}

	var value interface{}
	if n.capture {
		value = items
	} else {
		value = string(s[pos:end])
	}
	if a := n.act; a != nil {
		value = a(value)
	}
	return end, value, true
}

func (n *repeatNode) String() string {
	delim := ""
	if n.delimiter != nil {
		delim = ":" + n.delimiter.String()
	}
	return fmt.Sprintf("%s{%d,%d%s}", n.scanner.String(), n.min, n.max, delim)
}

// Bounded matches left, then body, then right; the value is exactly
// body's match value, and left/right are never captured regardless of
// whether they themselves capture.
func Bounded(left, body, right Scanner) Scanner {
	return Scanner{&boundedNode{left: left.m, body: body.m, right: right.m}}
}

type boundedNode struct {
	base
	left, body, right matcher
}

func (n *boundedNode) scan(s []rune, pos int) int {
	end := n.left.scan(s, pos)
	if end == NOMATCH {
		return NOMATCH
	}
	end = n.body.scan(s, end)
	if end == NOMATCH {
		return NOMATCH
	}
	return n.right.scan(s, end)
}

func (n *boundedNode) match(s []rune, pos int) (int, interface{}, bool) {
	end := n.left.scan(s, pos)
	if end == NOMATCH {
		return 0, nil, false
	}
	bodyEnd, value, ok := n.body.match(s, end)
	if !ok {
		return 0, nil, false
	}
	end = n.right.scan(s, bodyEnd)
	if end == NOMATCH {
		return 0, nil, false
	}
	if a := n.act; a != nil {
		value = a(value)
	}
	return end, value, true
}

// capturing is always false, independent of body: like Nonterminal, a
// bare Bounded term inside a Sequence or Choice is scanned past rather
// than captured. Wrap it in Group at the call site to pull its value
// into a parent's accumulated list.
func (n *boundedNode) capturing() bool { return false }

func (n *boundedNode) String() string {
	return fmt.Sprintf("%s %s %s", n.left, n.body, n.right)
}

// UseZeroValueDefault is a sentinel for Optional's def parameter: pass it
// to ask Optional to compute its own default (an empty list if scanner
// captures, an empty string otherwise) rather than supplying one. This
// stands in for the source library's default=... (Ellipsis) sentinel,
// needed because plain nil is itself a meaningful default value (e.g. "no
// delimiter") that must stay distinguishable from "no default given".
var UseZeroValueDefault interface{} = new(struct{})

// Optional always succeeds: if scanner matches, Optional returns its
// match; otherwise it returns a zero-width match at pos carrying def
// (or, if def is UseZeroValueDefault, a computed default).
func Optional(scanner Scanner, def interface{}) Scanner {
	n := &optionalNode{scanner: scanner.m, def: def}
	n.capture = scanner.m.capturing()
	if def == UseZeroValueDefault {
		if n.capture {
			n.def = []interface{}{}
		} else {
			n.def = ""
		}
	}
	return Scanner{n}
}

type optionalNode struct {
	base
	scanner matcher
	def     interface{}
}

func (n *optionalNode) scan(s []rune, pos int) int {
	end := n.scanner.scan(s, pos)
	if end == NOMATCH {
		return pos
	}
	return end
}

func (n *optionalNode) match(s []rune, pos int) (int, interface{}, bool) {
	end, value, ok := n.scanner.match(s, pos)
	if !ok {
		end, value = pos, n.def
	}
	if a := n.act; a != nil {
		value = a(value)
	}
	return end, value, true
}

func (n *optionalNode) String() string { return n.scanner.String() + "?" }

// Lookahead is a zero-width positive assertion; it never captures.
func Lookahead(scanner Scanner) Scanner {
	return Scanner{&lookaheadNode{scanner: scanner.m}}
}

type lookaheadNode struct {
	base
	scanner matcher
}

func (n *lookaheadNode) scan(s []rune, pos int) int {
	if n.scanner.scan(s, pos) == NOMATCH {
		return NOMATCH
	}
	return pos
}

func (n *lookaheadNode) match(s []rune, pos int) (int, interface{}, bool) {
	return runScan(n, s, pos)
}

func (n *lookaheadNode) String() string { return "&" + n.scanner.String() }

// NegativeLookahead is a zero-width negative assertion; it never captures.
func NegativeLookahead(scanner Scanner) Scanner {
	return Scanner{&negativeLookaheadNode{scanner: scanner.m}}
}

type negativeLookaheadNode struct {
	base
	scanner matcher
}

func (n *negativeLookaheadNode) scan(s []rune, pos int) int {
	if n.scanner.scan(s, pos) == NOMATCH {
		return pos
	}
	return NOMATCH
}

func (n *negativeLookaheadNode) match(s []rune, pos int) (int, interface{}, bool) {
	return runScan(n, s, pos)
}

func (n *negativeLookaheadNode) String() string { return "!" + n.scanner.String() }

func toMatchers(scanners []Scanner) []matcher {
	ms := make([]matcher, len(scanners))
	for i, sc := range scanners {
		ms[i] = sc.m
	}
	return ms
}

func anyCapturing(scanners []Scanner) bool {
	for _, sc := range scanners {
		if sc.m.capturing() {
			return true
		}
	}
	return false
}
