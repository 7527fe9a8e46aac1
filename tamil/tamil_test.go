package tamil

import (
	"reflect"
	"testing"

	"github.com/murasu/sangamkb/script"
	"github.com/murasu/sangamkb/tables"
)

func TestAnjalPassthrough(t *testing.T) {
	e := NewEngine(script.Anjal)
	rec := e.Translate('k')
	if rec.DeleteCount != 0 || !reflect.DeepEqual(rec.Insert, []rune{0x0B95, 0x0BCD}) {
		t.Fatalf("Anjal 'k' = %+v, want fresh க்", rec)
	}
	rec = e.Translate('a')
	if rec.DeleteCount != 1 || len(rec.Insert) != 0 {
		t.Fatalf("Anjal 'k','a' second edit = %+v, want delete 1 (the pulli) and an empty insert", rec)
	}
}

func TestMylaiLeftHalfReorder(t *testing.T) {
	e := NewEngine(script.Mylai)

	first := e.Translate('e')
	if first.DeleteCount != 0 || !reflect.DeepEqual(first.Insert, []rune{zwsp, 0x0BC6}) {
		t.Fatalf("Mylai left-half e = %+v, want ZWSP + left-e sign", first)
	}

	second := e.Translate('k')
	if second.DeleteCount != 2 {
		t.Fatalf("Mylai k after left-half e: delete = %d, want 2", second.DeleteCount)
	}
	if !reflect.DeepEqual(second.Insert, []rune{0x0B95, 0x0BC6}) {
		t.Fatalf("Mylai k after left-half e: insert = %+v, want க + left-e sign", second)
	}
}

func TestMylaiUkaraPrecomposedKey(t *testing.T) {
	// Mylai's "Q" key is a single precomposed consonant+u key: consonant
	// canonical key 'L' (ள) + vowel canonical key 'u'.
	e := NewEngine(script.Mylai)
	rec := e.Translate('Q')
	if rec.DeleteCount != 0 {
		t.Fatalf("precomposed ukara key delete = %d, want 0 (fresh)", rec.DeleteCount)
	}
	if len(rec.Insert) == 0 {
		t.Fatalf("precomposed ukara key produced no insert")
	}
}

func TestTamil99AutoPulliResolvesPrevKsLength(t *testing.T) {
	// spec.md §8 scenario 3: 'b' (the "ng" key) is canonical row-letter 'g',
	// which TamilCanon resolves to ங (U+0B99) — not க் (U+0B95), a mistake
	// that would follow from resolving canonical keys against TamilAnjal
	// instead. 'h' after it auto-pulli-retracts to ங் then composes fresh
	// க் (canonical 'k').
	e := NewEngine(script.Tamil99)
	e.Session.AutoPulliEnabled = true

	first := e.Translate('b')
	want := []rune{0x0B99, 0x0BCD}
	if first.DeleteCount != 0 || !reflect.DeepEqual(first.Insert, want) {
		t.Fatalf("Tamil99 'b' = %+v, want fresh %+v (ங், not க்)", first, want)
	}

	second := e.Translate('h')
	if second.DeleteCount != len(first.Insert) {
		t.Fatalf("Tamil99 auto-pulli delete = %d, want %d (length of previous insert)", second.DeleteCount, len(first.Insert))
	}
	wantSecond := []rune{0x0B99, tables.TamilCanon.Virama, 0x0B95, 0x0BCD}
	if !reflect.DeepEqual(second.Insert, wantSecond) {
		t.Fatalf("Tamil99 auto-pulli insert = %+v, want %+v (ங்+க்)", second.Insert, wantSecond)
	}
}

func TestTamil99EscapePrefix(t *testing.T) {
	e := NewEngine(script.Tamil99)
	rec := e.Translate('^')
	if !reflect.DeepEqual(rec.Insert, []rune{'^'}) {
		t.Fatalf("escape prefix key = %+v, want literal caret", rec)
	}
	rec = e.Translate(tables.T99EscapesKey[0])
	if !reflect.DeepEqual(rec.Insert, []rune{tables.T99EscapesChar[0]}) {
		t.Fatalf("escape sequence result = %+v, want %+v", rec.Insert, []rune{tables.T99EscapesChar[0]})
	}
}

func TestIsMappedTerminatesOnUnknownKey(t *testing.T) {
	e := NewEngine(script.Anjal)
	if !e.IsMapped('k', false) {
		t.Fatal("'k' should be mapped in Anjal")
	}
	if e.IsMapped('Z', false) {
		t.Fatal("'Z' should not be mapped in Anjal")
	}
}

func TestReclassifyAfterDeleteToConsonant(t *testing.T) {
	e := NewEngine(script.Anjal)
	e.Translate('k')
	e.Translate('a')
	ReclassifyAfterDelete(e.Session, 0x0B95) // host reports the tail is now க (no pulli)
	if e.Session.PrevCharClass != script.ConsonantChar {
		t.Fatalf("PrevCharClass after reclassify = %v, want ConsonantChar", e.Session.PrevCharClass)
	}
	if e.Session.CurrentBaseChar != 0x0B95 {
		t.Fatalf("CurrentBaseChar after reclassify = %U, want க", e.Session.CurrentBaseChar)
	}
}
