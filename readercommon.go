package grammarian

import "strconv"

// Package-level building blocks shared between the extended and the
// strict-PEG grammar-definition readers, mirroring how
// grammarian/io.py's DotReader, CommentReader, and friends are
// module-level objects reused by both textpy/io.py's extended-syntax and
// PEG-syntax reader grammars (PrimaryReader and PEGPrimaryReader both
// reference the very same DotReader).
var (
	readerWS  = buildReaderWS()
	readerID  = Regex(`[-a-zA-Z_][-a-zA-Z0-9_]*`)
	readerInt = Group(Integer()).WithAction(func(v interface{}) interface{} {
		n, err := strconv.Atoi(v.(string))
		if err != nil {
			panic(structuralErrorf("not an integer: %s", v))
		}
		return n
	})

	dotReader = Group(Literal(".")).WithAction(func(interface{}) interface{} {
		return leaf("Dot", "")
	})
	dqLiteralReader = Group(BoundedString(`"`, `"`)).WithAction(func(v interface{}) interface{} {
		s := v.(string)
		return leaf("Literal", s[1:len(s)-1])
	})
	sqLiteralReader = Group(BoundedString("'", "'")).WithAction(func(v interface{}) interface{} {
		s := v.(string)
		return leaf("Literal", s[1:len(s)-1])
	})
	characterClassReader = Group(BoundedString("[", "]")).WithAction(func(v interface{}) interface{} {
		s := v.(string)
		return leaf("CharacterClass", s[1:len(s)-1])
	})
	regexReader = Group(BoundedString("/", "/")).WithAction(func(v interface{}) interface{} {
		s := v.(string)
		return leaf("Regex", s[1:len(s)-1])
	})

	lookaheadReader = Group(Literal("&")).WithAction(func(interface{}) interface{} {
		return leaf("Lookahead", "")
	})
	negativeLookaheadReader = Group(Literal("!")).WithAction(func(interface{}) interface{} {
		return leaf("NegativeLookahead", "")
	})
	zeroOrMoreReader = Group(Literal("*")).WithAction(func(interface{}) interface{} {
		return leaf("ZeroOrMore", "")
	})
	oneOrMoreReader = Group(Literal("+")).WithAction(func(interface{}) interface{} {
		return leaf("OneOrMore", "")
	})
	optionalSuffixReader = Group(Literal("?")).WithAction(func(interface{}) interface{} {
		return leaf("Optional", "")
	})

	prefixReader = Choice(lookaheadReader, negativeLookaheadReader)
)

// buildReaderWS is the comment-aware whitespace delimiter both reader
// grammars use between tokens: runs of plain whitespace interleaved with
// "#" to end-of-line comments, wiring up what grammarian/io.py's
// CommentReader only declared.
func buildReaderWS() Scanner {
	wsRun := Repeat(CharacterClass(" \t\n\r\f\v"), 1, -1, nil)
	commentRun := Sequence(Literal("#"), Repeat(Sequence(NegativeLookahead(Literal("\n")), Dot()), 0, -1, nil))
	return Repeat(Choice(wsRun, commentRun), 0, -1, nil)
}

func asNode(v interface{}) *node { return v.(*node) }

// wrapAffix folds a prefix ("Lookahead"/"NegativeLookahead") or suffix
// ("ZeroOrMore"/"OneOrMore"/"Optional"/"Repeat") marker node around term.
func wrapAffix(marker *node, term *node) *node {
	if marker.tag == "Repeat" {
		return &node{tag: "Repeat", child: term, min: marker.min, max: marker.max, delimiter: marker.delimiter}
	}
	return unary(marker.tag, term)
}

// makeTerm implements both readers' shared TermReader action: fold an
// optional prefix marker and an optional suffix marker around a primary
// expression node.
func makeTerm(v interface{}) interface{} {
	xs := v.([]interface{})
	term := asNode(xs[1])
	if xs[2] != nil {
		term = wrapAffix(asNode(xs[2]), term)
	}
	if xs[0] != nil {
		term = wrapAffix(asNode(xs[0]), term)
	}
	return term
}

func toNodes(v interface{}) []*node {
	items := v.([]interface{})
	out := make([]*node, len(items))
	for i, it := range items {
		out[i] = asNode(it)
	}
	return out
}

// ruleNode is a transient carrier between a RuleReader and its
// GrammarReader's action; it never appears in a compiled IR tree.
type ruleNode struct {
	name string
	expr *node
}

func makeGrammar(v interface{}) interface{} {
	items := v.([]interface{})
	rules := make(map[string]*node, len(items))
	for _, item := range items {
		r := item.(*ruleNode)
		rules[r.name] = r.expr
	}
	return rules
}
