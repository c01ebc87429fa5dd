package grammarian

// pegGrammarReader parses the strict PEG surface syntax: rule separator
// "<-", ordered choice "/", both "'...'" and "\"...\"" literals, ~'...'
// and ~"..." regex literals, no "{}" repeat syntax and no "|" choice
// separator, into a map from rule name to IR node, grounded in
// textpy/io.py's PEGReader family. Reuses the primitive readers shared
// with the extended syntax (dotReader, literal/class/regex readers,
// prefix markers), duplicating only what genuinely differs (rule/choice
// separators, the regex spellings, and the narrower suffix set, no
// Repeat).
var pegGrammarReader = buildPEGReader()

var pegSQRegexReader = Group(BoundedString("~'", "'")).WithAction(func(v interface{}) interface{} {
	s := v.(string)
	return leaf("Regex", s[2:len(s)-1])
})

var pegDQRegexReader = Group(BoundedString(`~"`, `"`)).WithAction(func(v interface{}) interface{} {
	s := v.(string)
	return leaf("Regex", s[2:len(s)-1])
})

func buildPEGReader() Scanner {
	bootstrap := &Grammar{rules: make(map[string]Scanner)}

	primaryReader := Choice(
		dotReader,
		sqLiteralReader,
		dqLiteralReader,
		characterClassReader,
		pegSQRegexReader,
		pegDQRegexReader,
		bootstrap.Nonterminal("Group"),
		Group(Sequence(
			Group(readerID),
			NegativeLookahead(Sequence(readerWS, Literal("<-"))),
		)).WithAction(func(v interface{}) interface{} {
			xs := v.([]interface{})
			return leaf("Nonterminal", xs[0].(string))
		}),
	)

	suffixReader := Choice(zeroOrMoreReader, oneOrMoreReader, optionalSuffixReader)

	termReader := Sequence(
		Group(Optional(prefixReader, nil)),
		Group(primaryReader),
		Group(Optional(suffixReader, nil)),
	).WithAction(makeTerm)

	sequenceDelim := readerWS
	sequenceReader := Repeat(Group(termReader), 1, -1, &sequenceDelim).
		WithAction(func(v interface{}) interface{} { return list("Sequence", toNodes(v)) })

	choiceDelim := Sequence(readerWS, Literal("/"), readerWS)
	choiceReader := Repeat(Group(sequenceReader), 1, -1, &choiceDelim).
		WithAction(func(v interface{}) interface{} { return list("Choice", toNodes(v)) })

	groupReader := Bounded(
		Sequence(Literal("("), readerWS),
		choiceReader,
		Sequence(readerWS, Literal(")")),
	).WithAction(func(v interface{}) interface{} {
		return unary("Group", asNode(v))
	})
	bootstrap.Set("Group", groupReader)

	ruleReader := Sequence(
		readerWS, Group(readerID), readerWS, Literal("<-"), readerWS, Group(choiceReader),
	).WithAction(func(v interface{}) interface{} {
		xs := v.([]interface{})
		return &ruleNode{name: xs[0].(string), expr: asNode(xs[1])}
	})

	grammarDelim := readerWS
	return Repeat(Group(ruleReader), 1, -1, &grammarDelim).WithAction(makeGrammar)
}
