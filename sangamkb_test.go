package sangamkb

import (
	"errors"
	"reflect"
	"testing"

	"github.com/murasu/sangamkb/script"
)

func TestTranslateKeyWireFraming(t *testing.T) {
	e, err := New(script.Tamil, script.Anjal)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]rune, minOutBufferLen)

	n, err := e.TranslateKey('k', out)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out[:n], []rune{0x0B95, 0x0BCD}) {
		t.Fatalf("first frame = %+v, want bare க்", out[:n])
	}

	n, err = e.TranslateKey('a', out)
	if err != nil {
		t.Fatal(err)
	}
	want := []rune{DelCode, '1'}
	if !reflect.DeepEqual(out[:n], want) {
		t.Fatalf("second frame = %+v, want %+v", out[:n], want)
	}
}

func TestTranslateKeyRejectsSmallBuffer(t *testing.T) {
	e, err := New(script.Tamil, script.Anjal)
	if err != nil {
		t.Fatal(err)
	}
	_, err = e.TranslateKey('k', make([]rune, 2))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestApplyEditRoundTrip(t *testing.T) {
	e, err := New(script.Tamil, script.Anjal)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]rune, minOutBufferLen)
	var doc []rune

	n, _ := e.TranslateKey('k', out)
	doc = ApplyEdit(doc, out[:n])
	n, _ = e.TranslateKey('a', out)
	doc = ApplyEdit(doc, out[:n])

	if !reflect.DeepEqual(doc, []rune{0x0B95}) {
		t.Fatalf("document after k,a = %q, want க", string(doc))
	}
}

func TestSetLayoutRequiresTamil(t *testing.T) {
	e, err := New(script.Devanagari, script.Anjal)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.SetLayout(script.Tamil99); !errors.Is(err, ErrUnsupportedCombination) {
		t.Fatalf("err = %v, want ErrUnsupportedCombination", err)
	}
}

func TestSetScriptUnknown(t *testing.T) {
	e, _ := New(script.Tamil, script.Anjal)
	if err := e.SetScript(script.Script(99)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestGetSupportedLayouts(t *testing.T) {
	if got := GetSupportedLayouts(script.Devanagari); len(got) != 1 || got[0] != script.Anjal {
		t.Fatalf("Devanagari layouts = %+v, want [Anjal]", got)
	}
	if got := GetSupportedLayouts(script.Tamil); len(got) != 10 {
		t.Fatalf("Tamil layouts = %+v, want 10 entries", got)
	}
}
