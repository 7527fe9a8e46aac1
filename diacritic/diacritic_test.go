package diacritic

import (
	"reflect"
	"testing"
)

func TestFreshConsonantNoVirama(t *testing.T) {
	e := NewEngine()
	rec := e.Translate('k')
	if rec.DeleteCount != 0 || !reflect.DeepEqual(rec.Insert, []rune{'k'}) {
		t.Fatalf("fresh 'k' = %+v, want bare k with no virama", rec)
	}
}

func TestAspirateDigraphExpansion(t *testing.T) {
	e := NewEngine()
	e.Translate('k')
	rec := e.Translate('h')
	if rec.DeleteCount != 1 || !reflect.DeepEqual(rec.Insert, []rune{'k', 'h'}) {
		t.Fatalf("'k','h' = %+v, want delete 1 insert kh", rec)
	}
}

func TestInherentVowelHasNoVisibleMark(t *testing.T) {
	e := NewEngine()
	e.Translate('k')
	e.Translate('h')
	rec := e.Translate('a')
	if rec.DeleteCount != 0 || len(rec.Insert) != 0 {
		t.Fatalf("inherent 'a' after consonant = %+v, want no-op (schwa implied)", rec)
	}
}

func TestIndependentVowelFresh(t *testing.T) {
	e := NewEngine()
	rec := e.Translate('e')
	if rec.DeleteCount != 0 || !reflect.DeepEqual(rec.Insert, []rune{'e'}) {
		t.Fatalf("fresh 'e' = %+v, want bare e", rec)
	}
}

func TestReset(t *testing.T) {
	e := NewEngine()
	e.Translate('k')
	e.Reset()
	rec := e.Translate('h')
	if !reflect.DeepEqual(rec.Insert, []rune{'h'}) {
		t.Fatalf("'h' after reset = %+v, want fresh bare h, not a continuation of 'k'", rec)
	}
}
