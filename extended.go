package grammarian

// extendedGrammarReader parses the extended grammar-definition syntax:
// space for sequence, "|" for ordered choice, "(...)" for grouping,
// "{m,n:delim}" for the general repeat form, prefix "&"/"!" and suffix
// "*"/"+"/"?", into a map from rule name to IR node, the same
// convention as grammarian/io.py's GrammarReader. It is itself built
// entirely from this package's own primitives and combinators: the one
// forward reference (a parenthesized group is itself built from the full
// choice grammar) is closed through a throwaway bootstrap Grammar and
// Nonterminal, exactly mirroring io.py's module-level patterns dict.
var extendedGrammarReader = buildExtendedReader()

func buildExtendedReader() Scanner {
	bootstrap := &Grammar{rules: make(map[string]Scanner)}

	primaryReader := Choice(
		dotReader,
		dqLiteralReader,
		characterClassReader,
		regexReader,
		bootstrap.Nonterminal("Group"),
		Group(Sequence(
			Group(readerID),
			NegativeLookahead(Sequence(readerWS, Literal("="))),
		)).WithAction(func(v interface{}) interface{} {
			xs := v.([]interface{})
			return leaf("Nonterminal", xs[0].(string))
		}),
	)

	repeatReader := Bounded(
		Literal("{"),
		Sequence(
			Optional(Group(readerInt), 0),
			Optional(Sequence(Literal(","), Optional(Group(readerInt), -1)), -1),
			Optional(Sequence(Literal(":"), Group(primaryReader)), nil),
		),
		Literal("}"),
	).WithAction(func(v interface{}) interface{} {
		xs := v.([]interface{})
		var delim *node
		if xs[2] != nil {
			delim = asNode(xs[2])
		}
		return &node{tag: "Repeat", min: xs[0].(int), max: xs[1].(int), delimiter: delim}
	})

	suffixReader := Choice(zeroOrMoreReader, oneOrMoreReader, optionalSuffixReader, repeatReader)

	termReader := Sequence(
		Group(Optional(prefixReader, nil)),
		Group(primaryReader),
		Group(Optional(suffixReader, nil)),
	).WithAction(makeTerm)

	sequenceDelim := readerWS
	sequenceReader := Repeat(Group(termReader), 1, -1, &sequenceDelim).
		WithAction(func(v interface{}) interface{} { return list("Sequence", toNodes(v)) })

	choiceDelim := Sequence(readerWS, Literal("|"), readerWS)
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
		readerWS, Group(readerID), readerWS, Literal("="), readerWS, Group(choiceReader),
	).WithAction(func(v interface{}) interface{} {
		xs := v.([]interface{})
		return &ruleNode{name: xs[0].(string), expr: asNode(xs[1])}
	})

	grammarDelim := readerWS
	return Repeat(Group(ruleReader), 1, -1, &grammarDelim).WithAction(makeGrammar)
}
