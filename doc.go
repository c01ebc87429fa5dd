// Package grammarian recognizes and structurally decomposes text according
// to user-defined grammars.
//
// It provides two equivalent surfaces for describing what to recognize: a
// combinator algebra of composable Scanners (Dot, Literal, CharacterClass,
// Regex, Spacing, Integer, Float, BoundedString, and the combinators
// Sequence, Choice, Repeat, Bounded, Optional, Lookahead, NegativeLookahead,
// Group, Nonterminal), and a textual grammar-definition language whose
// expressions compile into the same algebra (see Grammar and NewPEG).
//
// Unlike a generic parser-generator, grammarian does not build a parse
// tree. Actions, plain functions from a matched Value to anything, are
// attached to selected scanners and fold into arbitrary Go values (a JSON
// decoder, an AST, a boolean) as matching proceeds.
//
// # Positions
//
// Input is addressed by code-point (rune) position, not byte position.
// Every Scan and Match call takes and returns rune indices into the input
// string, converting from UTF-8 bytes exactly once at the point of call.
//
// # Capturing
//
// A Scanner either "captures" (its value is propagated to its parent) or
// doesn't (its matched text is absorbed as a raw substring). Group always
// captures; Sequence, Choice, and Repeat capture iff any operand does;
// Optional inherits its operand's capturing; everything else does not
// capture unless wrapped in Group. See Match.Value for the shape each
// case produces.
//
// # Grammars
//
// A Grammar is a named, possibly-recursive mapping from rule name to
// Scanner, compiled either by hand (Set) or from text (Read, in one of two
// surface syntaxes, see the NewGrammar and NewPEG documentation). Nonterminal
// holds a weak, name-keyed reference into a Grammar resolved at match time,
// so forward references and mutual recursion work without cycles in
// ownership.
//
// # Errors
//
// Three kinds of failure exist, and they are never confused with each
// other: an ordinary recognition failure is the NOMATCH sentinel from Scan
// or a nil *Match from Match, never an error; an invalid grammar
// (unparsable definition, unresolvable IR, a non-callable action or an
// unknown rule name) is a *StructuralError, returned by the
// construction-time APIs (Read, UpdateActions), while a Nonterminal whose
// name is unbound panics with a *StructuralError when a Scan or Match
// reaches it; and a panic from inside a
// user action, or from the regex engine, is a host failure propagated
// unchanged. This package never recovers one.
package grammarian
