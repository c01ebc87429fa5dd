package grammarian

// NOMATCH is the sentinel endpos returned by Scan on recognition failure.
const NOMATCH = -1

// Action transforms a scanner's captured Value into the value that
// replaces it. A scanner with no action yields its intrinsic value
// unchanged (the raw substring, or the accumulated list of its capturing
// operands' values). A panic from inside an Action is a host failure and
// propagates unchanged out of the enclosing Match call.
type Action func(value interface{}) interface{}

// Match is the result of a successful Scanner.Match: the consumed span
// [pos, endpos) of the input and the Value the scanner produced for it.
type Match struct {
	s      string
	pos    int
	endpos int
	value  interface{}
}

// Start returns the rune index where the match began.
func (m *Match) Start() int { return m.pos }

// End returns the rune index immediately after the match.
func (m *Match) End() int { return m.endpos }

// Span returns the [start, end) rune index pair of the match.
func (m *Match) Span() (int, int) { return m.pos, m.endpos }

// Group returns the raw substring the match consumed.
func (m *Match) Group() string {
	return string([]rune(m.s)[m.pos:m.endpos])
}

// Value returns the value the scanner produced for this match: a string,
// a []interface{} of child values, or whatever an action returned.
func (m *Match) Value() interface{} { return m.value }

// matcher is the closed set of scanner node kinds. Its methods are
// unexported so that only this package may add a new kind (spec design
// note: "encode as a tagged variant rather than an open inheritance
// hierarchy"); scan/match dispatch on the concrete type the way a switch
// over a tagged union would.
type matcher interface {
	// scan recognizes only; it never builds a value.
	scan(s []rune, pos int) int

	// match recognizes and builds a Value per this node's capture rule.
	match(s []rune, pos int) (endpos int, value interface{}, ok bool)

	// capturing reports whether this node's value propagates to its
	// parent, or is absorbed as raw text.
	capturing() bool

	// action returns this node's attached Action, or nil.
	action() Action

	// setAction rebinds this node's Action (WithAction, and through it
	// UpdateActions, need this).
	setAction(a Action)

	String() string
}

// base carries the fields every concrete node needs: whether it
// captures (computed once at construction and never mutated) and its
// optional action (mutable, since actions may be rebound after construction).
type base struct {
	capture bool
	act     Action
}

func (b *base) capturing() bool  { return b.capture }
func (b *base) action() Action   { return b.act }
func (b *base) setAction(a Action) { b.act = a }

// Scanner is the public handle to a node in the scanner algebra. Every
// constructor in this package (Dot, Literal, Sequence, Group, ...) returns
// a Scanner; Scanner itself carries no exported fields; all behavior comes
// through Scan and Match.
type Scanner struct {
	m matcher
}

// Scan recognizes, without building a value, starting at the rune index
// pos. It returns the rune index immediately past the match, or NOMATCH.
func (sc Scanner) Scan(s string, pos int) int {
	return sc.m.scan([]rune(s), pos)
}

// Match recognizes and builds this scanner's Value, starting at the rune
// index pos. It returns nil on recognition failure.
func (sc Scanner) Match(s string, pos int) *Match {
	rs := []rune(s)
	endpos, value, ok := sc.m.match(rs, pos)
	if !ok {
		return nil
	}
	return &Match{s: s, pos: pos, endpos: endpos, value: value}
}

// Capturing reports whether this scanner's value propagates to its parent.
func (sc Scanner) Capturing() bool { return sc.m.capturing() }

// WithAction returns a Scanner identical to sc but with its action
// rebound. Because every concrete node shares the same underlying
// pointer, this mutates the node sc wraps (matching the source library's
// "actions may be rebound after construction" lifecycle) and returns sc
// for chaining convenience.
func (sc Scanner) WithAction(a Action) Scanner {
	sc.m.setAction(a)
	return sc
}

func (sc Scanner) String() string {
	return sc.m.String()
}

// runScan is the shared scan-then-default-value helper for non-capturing
// nodes: match calls scan and defaults the value to the consumed
// substring (spec §4.1), passed through the node's action when one is
// attached.
func runScan(m matcher, s []rune, pos int) (endpos int, value interface{}, ok bool) {
	end := m.scan(s, pos)
	if end == NOMATCH {
		return 0, nil, false
	}
	if a := m.action(); a != nil {
		return end, a(string(s[pos:end])), true
	}
	return end, string(s[pos:end]), true
}
