package main

import (
	"reflect"
	"testing"
)

func wantDecoded() map[string]interface{} {
	return map[string]interface{}{
		"bool": []interface{}{true, false},
		"number": map[string]interface{}{
			"float": -140.0,
			"int":   1,
		},
		"other": map[string]interface{}{
			"string":  "string",
			"unicode": "あ",
			"null":    nil,
		},
	}
}

func TestComposedGrammarDecodesSample(t *testing.T) {
	g := buildComposed()
	m := g.Match(sample, 0)
	if m == nil {
		t.Fatal("composed grammar did not match sample")
	}
	if got, want := m.Value(), wantDecoded(); !reflect.DeepEqual(got, want) {
		t.Errorf("decoded = %#v, want %#v", got, want)
	}
}

func TestExtendedGrammarDecodesSample(t *testing.T) {
	g := buildExtended()
	m := g.Match(sample, 0)
	if m == nil {
		t.Fatal("extended grammar did not match sample")
	}
	if got, want := m.Value(), wantDecoded(); !reflect.DeepEqual(got, want) {
		t.Errorf("decoded = %#v, want %#v", got, want)
	}
}

func TestComposedAndExtendedAgree(t *testing.T) {
	cm := buildComposed().Match(sample, 0)
	em := buildExtended().Match(sample, 0)
	if cm == nil || em == nil {
		t.Fatal("expected both grammars to match sample")
	}
	if !reflect.DeepEqual(cm.Value(), em.Value()) {
		t.Errorf("composed and extended decoders disagree: %#v vs %#v", cm.Value(), em.Value())
	}
}

func TestPEGRecognizerConsumesWholeSample(t *testing.T) {
	g := buildPEGRecognizer()
	end := g.Scan(sample, 0)
	want := len([]rune(sample))
	if end != want {
		t.Errorf("Scan consumed %d runes, want %d (the whole sample)", end, want)
	}
}
