package grammarian

// Dot matches exactly one code point; it fails at end of input.
func Dot() Scanner {
	return Scanner{&dotNode{}}
}

type dotNode struct{ base }

func (n *dotNode) scan(s []rune, pos int) int {
	if pos >= len(s) {
		return NOMATCH
	}
	return pos + 1
}

func (n *dotNode) match(s []rune, pos int) (int, interface{}, bool) {
	return runScan(n, s, pos)
}

func (n *dotNode) String() string { return "." }

// Literal matches iff the input at pos begins with x exactly.
func Literal(x string) Scanner {
	return Scanner{&literalNode{x: []rune(x)}}
}

type literalNode struct {
	base
	x []rune
}

func (n *literalNode) scan(s []rune, pos int) int {
	end := pos + len(n.x)
	if end > len(s) {
		return NOMATCH
	}
	for i, r := range n.x {
		if s[pos+i] != r {
			return NOMATCH
		}
	}
	return end
}

func (n *literalNode) match(s []rune, pos int) (int, interface{}, bool) {
	return runScan(n, s, pos)
}

func (n *literalNode) String() string { return `"` + string(n.x) + `"` }

// CharacterClass matches one code point drawn from spec, a sequence of
// literal code points and a-b ranges. Parsing spec: scanned left to right;
// if position i+1 holds '-' and position i+2 exists (it may be the final
// index, as in "0-9"), the triple spec[i], '-', spec[i+2] forms a range and the scan advances by 3;
// otherwise spec[i] is a single member and the scan advances by 1.
// Trailing 1-2 characters can never form a range.
func CharacterClass(spec string) Scanner {
	return Scanner{newCharacterClassNode(spec)}
}

type characterClassNode struct {
	base
	spec   string
	chars  map[rune]bool
	ranges [][2]rune
}

func newCharacterClassNode(spec string) *characterClassNode {
	n := &characterClassNode{spec: spec, chars: make(map[rune]bool)}
	rs := []rune(spec)
	i := 0
	for i < len(rs)-2 {
		if rs[i+1] == '-' {
			n.ranges = append(n.ranges, [2]rune{rs[i], rs[i+2]})
			i += 3
		} else {
			n.chars[rs[i]] = true
			i++
		}
	}
	for ; i < len(rs); i++ {
		n.chars[rs[i]] = true
	}
	return n
}

func (n *characterClassNode) scan(s []rune, pos int) int {
	if pos >= len(s) {
		return NOMATCH
	}
	c := s[pos]
	if n.chars[c] {
		return pos + 1
	}
	for _, r := range n.ranges {
		if r[0] <= c && c <= r[1] {
			return pos + 1
		}
	}
	return NOMATCH
}

func (n *characterClassNode) match(s []rune, pos int) (int, interface{}, bool) {
	return runScan(n, s, pos)
}

func (n *characterClassNode) String() string { return "[" + n.spec + "]" }

// Spacing consumes zero or more characters drawn from ws; it always
// succeeds. The default whitespace set is " \t\n\r\f\v".
func Spacing(ws ...string) Scanner {
	chars := " \t\n\r\f\v"
	if len(ws) > 0 {
		chars = ws[0]
	}
	set := make(map[rune]bool, len(chars))
	for _, r := range chars {
		set[r] = true
	}
	return Scanner{&spacingNode{ws: chars, set: set}}
}

type spacingNode struct {
	base
	ws  string
	set map[rune]bool
}

func (n *spacingNode) scan(s []rune, pos int) int {
	for pos < len(s) && n.set[s[pos]] {
		pos++
	}
	return pos
}

func (n *spacingNode) match(s []rune, pos int) (int, interface{}, bool) {
	return runScan(n, s, pos)
}

func (n *spacingNode) String() string { return "Spacing" }

// Integer matches [-+]?\d+; a lone sign is not an integer.
func Integer() Scanner {
	return Scanner{&integerNode{}}
}

type integerNode struct{ base }

func (n *integerNode) scan(s []rune, pos int) int {
	p := pos
	if p < len(s) && (s[p] == '-' || s[p] == '+') {
		p++
	}
	digits := scanDigits(s, p)
	if digits == 0 {
		return NOMATCH
	}
	return p + digits
}

func (n *integerNode) match(s []rune, pos int) (int, interface{}, bool) {
	return runScan(n, s, pos)
}

func (n *integerNode) String() string { return "Integer" }

// Float matches one of three disjoint shapes, tested in order:
//
//	[-+]? \.\d+ ([eE][-+]?\d+)?
//	[-+]? \d+ \. \d* ([eE][-+]?\d+)?
//	[-+]? \d+ [eE][-+]?\d+
//
// Bare integers (no fraction, no exponent) do not match.
func Float() Scanner {
	return Scanner{&floatNode{}}
}

type floatNode struct{ base }

func (n *floatNode) scan(s []rune, pos int) int {
	p := pos
	if p < len(s) && (s[p] == '-' || s[p] == '+') {
		p++
	}

	if p < len(s) && s[p] == '.' {
		digits := scanDigits(s, p+1)
		if digits == 0 {
			return NOMATCH
		}
		p += digits + 1
		p += scanExponent(s, p)
		return p
	}

	digits := scanDigits(s, p)
	if digits == 0 {
		return NOMATCH
	}
	p += digits

	if p < len(s) && s[p] == '.' {
		p++
		p += scanDigits(s, p)
		p += scanExponent(s, p)
		return p
	}

	exp := scanExponent(s, p)
	if exp == 0 {
		return NOMATCH
	}
	return p + exp
}

func (n *floatNode) match(s []rune, pos int) (int, interface{}, bool) {
	return runScan(n, s, pos)
}

func (n *floatNode) String() string { return "Float" }

// BoundedString matches open, then consumes until an unescaped close; a
// backslash escapes the next single code point. The match includes both
// open and close.
func BoundedString(open, close string) Scanner {
	return Scanner{&boundedStringNode{open: []rune(open), close: []rune(close)}}
}

type boundedStringNode struct {
	base
	open, close []rune
}

func (n *boundedStringNode) scan(s []rune, pos int) int {
	if !hasRunePrefix(s, pos, n.open) {
		return NOMATCH
	}
	p := pos + len(n.open)
	for !hasRunePrefix(s, p, n.close) {
		if p >= len(s) {
			return NOMATCH
		}
		if s[p] == '\\' {
			p += 2
		} else {
			p++
		}
	}
	return p + len(n.close)
}

func (n *boundedStringNode) match(s []rune, pos int) (int, interface{}, bool) {
	return runScan(n, s, pos)
}

func (n *boundedStringNode) String() string { return "BoundedString" }

func hasRunePrefix(s []rune, pos int, prefix []rune) bool {
	if pos+len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[pos+i] != r {
			return false
		}
	}
	return true
}

func scanDigits(s []rune, pos int) int {
	i := 0
	for pos+i < len(s) && s[pos+i] >= '0' && s[pos+i] <= '9' {
		i++
	}
	return i
}

func scanExponent(s []rune, pos int) int {
	if pos >= len(s) || (s[pos] != 'e' && s[pos] != 'E') {
		return 0
	}
	p := pos + 1
	if p < len(s) && (s[p] == '-' || s[p] == '+') {
		p++
	}
	digits := scanDigits(s, p)
	if digits == 0 {
		return 0
	}
	return p + digits - pos
}
