package grammarian

import "fmt"

// StructuralError reports an invalid grammar: an unknown IR tag, an empty
// sequence or choice, an unbound Nonterminal, or a non-callable action.
// Unlike a NoMatch (signalled by the -1 sentinel or a nil *Match) this is
// always a construction or configuration mistake the caller must fix.
type StructuralError struct {
	msg string
}

func (err *StructuralError) Error() string {
	return "grammarian: " + err.msg
}

func structuralErrorf(format string, v ...interface{}) *StructuralError {
	return &StructuralError{fmt.Sprintf(format, v...)}
}

func errUnboundNonterminal(name string) *StructuralError {
	return structuralErrorf("nonterminal %q is not associated with a grammar", name)
}

func errUnknownTag(tag string) *StructuralError {
	return structuralErrorf("invalid scanner type: %s", tag)
}

func errEmptySequence() *StructuralError {
	return structuralErrorf("sequence requires at least one term")
}

func errEmptyChoice() *StructuralError {
	return structuralErrorf("choice requires at least one term")
}

func errActionNotCallable(name string) *StructuralError {
	return structuralErrorf("action for %q is not callable", name)
}

func errInvalidDefinition(definition string) *StructuralError {
	return structuralErrorf("not a valid grammar definition: %s", definition)
}

func errUnknownRule(name string) *StructuralError {
	return structuralErrorf("no such rule: %q", name)
}

func errRunawayEscape() *StructuralError {
	return structuralErrorf("runaway escape sequence")
}
