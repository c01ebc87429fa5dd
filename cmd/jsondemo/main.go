// Command jsondemo decodes JSON text three ways: hand-composed scanners
// wired directly together, an extended grammar-definition string with
// actions attached after the fact, and a strict-PEG grammar string used
// purely as a fast recognizer. All three are built from the same handful
// of rules — Object, Array, and the JSON scalar types — so the program
// doubles as a demonstration that the three construction styles agree.
package main

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/hucsmn/grammarian"
)

// buildComposed wires JSON decoding directly out of scanner values, the
// way a caller would before reaching for a grammar-definition string at
// all: a bare *grammarian.Grammar stands in only to close the Object/
// Array/Value recursion through Nonterminal, and every rule's action
// runs as soon as that rule matches.
func buildComposed() *grammarian.Grammar {
	g, err := grammarian.NewGrammar("", nil, "Start")
	if err != nil {
		panic(err)
	}

	ws := grammarian.Spacing()
	comma := grammarian.Sequence(ws, grammarian.Literal(","), ws)
	value := g.Nonterminal("Value")

	str := grammarian.Group(grammarian.BoundedString(`"`, `"`)).WithAction(func(v interface{}) interface{} {
		s := v.(string)
		return s[1 : len(s)-1]
	})
	flt := grammarian.Group(grammarian.Float()).WithAction(func(v interface{}) interface{} {
		f, err := strconv.ParseFloat(v.(string), 64)
		if err != nil {
			panic(err)
		}
		return f
	})
	integer := grammarian.Group(grammarian.Integer()).WithAction(func(v interface{}) interface{} {
		n, err := strconv.Atoi(v.(string))
		if err != nil {
			panic(err)
		}
		return n
	})
	tru := grammarian.Group(grammarian.Literal("true")).WithAction(grammarian.Const(true))
	fls := grammarian.Group(grammarian.Literal("false")).WithAction(grammarian.Const(false))
	nul := grammarian.Group(grammarian.Literal("null")).WithAction(grammarian.Const(nil))

	keyval := grammarian.Group(grammarian.Sequence(
		ws, str, ws, grammarian.Literal(":"), ws, grammarian.Group(value), ws,
	))
	object := grammarian.Group(grammarian.Bounded(
		grammarian.Literal("{"),
		grammarian.Repeat(keyval, 0, -1, &comma),
		grammarian.Literal("}"),
	)).WithAction(func(v interface{}) interface{} {
		return pairsToMap(v.([]interface{}))
	})

	array := grammarian.Group(grammarian.Bounded(
		grammarian.Sequence(grammarian.Literal("["), ws),
		grammarian.Repeat(grammarian.Group(value), 0, -1, &comma),
		grammarian.Sequence(ws, grammarian.Literal("]")),
	)).WithAction(func(v interface{}) interface{} {
		return v
	})

	g.Set("Str", str)
	g.Set("Float", flt)
	g.Set("Integer", integer)
	g.Set("True", tru)
	g.Set("False", fls)
	g.Set("Null", nul)
	g.Set("Object", object)
	g.Set("Array", array)
	g.Set("Value", grammarian.Choice(object, array, str, tru, fls, nul, flt, integer))
	g.Set("Start", grammarian.Choice(object, array))
	return g
}

func pairsToMap(pairs []interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(pairs))
	for _, p := range pairs {
		pair := p.([]interface{})
		m[pair[0].(string)] = pair[1]
	}
	return m
}

// buildExtended parses the same grammar from its extended-syntax text
// form, then attaches every scalar/structural action with a single
// UpdateActions call — the grammar-definition-string equivalent of
// buildComposed, grounded the same way grammar text is normally written
// against this package: terms needing to contribute a value are wrapped
// in parentheses explicitly ("(Value)", "(DQString)").
func buildExtended() *grammarian.Grammar {
	const def = `
		Start    = Object | Array
		Object   = "{" Spacing
		           ((DQString) Spacing ":" Spacing (Value)){:Comma}
		           Spacing "}"
		Array    = "[" Spacing
		           (Value){:Comma}
		           Spacing "]"
		Value    = Object | Array | DQString
		         | TrueVal | FalseVal | NullVal | Float | Integer
		TrueVal  = "true"
		FalseVal = "false"
		NullVal  = "null"
		Comma    = Spacing "," Spacing
	`
	actions := map[string]interface{}{
		"Object": grammarian.Action(func(v interface{}) interface{} {
			return pairsToMap(v.([]interface{}))
		}),
		"Array": grammarian.Action(func(v interface{}) interface{} { return v }),
		"DQString": grammarian.Action(func(v interface{}) interface{} {
			s := v.(string)
			return s[1 : len(s)-1]
		}),
		"TrueVal":  grammarian.Const(true),
		"FalseVal": grammarian.Const(false),
		"NullVal":  grammarian.Const(nil),
		"Float": grammarian.Action(func(v interface{}) interface{} {
			f, err := strconv.ParseFloat(v.(string), 64)
			if err != nil {
				panic(err)
			}
			return f
		}),
		"Integer": grammarian.Action(func(v interface{}) interface{} {
			n, err := strconv.Atoi(v.(string))
			if err != nil {
				panic(err)
			}
			return n
		}),
	}
	g, err := grammarian.NewGrammar(def, actions, "Start")
	if err != nil {
		panic(err)
	}
	return g
}

// buildPEGRecognizer parses a strict-PEG rendering of the same grammar.
// It carries no actions at all, only the plain recognizer shape: the PEG
// surface syntax has no "{}" repeat form, so a comma-delimited sequence
// has to be spelled out as an optional head term followed by a starred
// "more" term, the way textpy/io.py's PEG examples do it.
func buildPEGRecognizer() *grammarian.Grammar {
	const def = `
		Start    <- Object / Array
		Object   <- "{" Spacing (Mapping (Spacing "," Spacing Mapping)*)? Spacing "}"
		Mapping  <- DQString Spacing ":" Spacing Value
		Array    <- "[" Spacing (Value (Spacing "," Spacing Value)*)? Spacing "]"
		Value    <- Object / Array / DQString / TrueVal / FalseVal / NullVal / Float / Integer
		TrueVal  <- "true"
		FalseVal <- "false"
		NullVal  <- "null"
		DQString <- ~"\"[^\"\\]*(?:\\.[^\"\\]*)*\""
		Float    <- ~"[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?"
		Integer  <- ~"[-+]?\d+"
	`
	g, err := grammarian.NewPEG(def, nil, "Start")
	if err != nil {
		panic(err)
	}
	return g
}

const sample = `{
	"bool": [
		true,
		false
	],
	"number": {
		"float": -0.14e3,
		"int": 1
	},
	"other": {
		"string": "string",
		"unicode": "あ",
		"null": null
	}
}`

func main() {
	composed := buildComposed()
	cm := composed.Match(sample, 0)
	if cm == nil {
		panic("composed grammar did not match sample")
	}

	extended := buildExtended()
	em := extended.Match(sample, 0)
	if em == nil {
		panic("extended grammar did not match sample")
	}

	if !reflect.DeepEqual(cm.Value(), em.Value()) {
		panic("composed and extended decoders disagree")
	}
	fmt.Printf("decoded: %#v\n", cm.Value())

	peg := buildPEGRecognizer()
	end := peg.Scan(sample, 0)
	fmt.Printf("peg recognizer consumed %d of %d runes\n", end, len([]rune(sample)))
}
