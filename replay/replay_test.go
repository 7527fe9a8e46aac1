package replay

import (
	"testing"

	"golang.org/x/text/transform"

	"github.com/murasu/sangamkb"
	"github.com/murasu/sangamkb/script"
)

func TestTransformerComposesFullString(t *testing.T) {
	e, err := sangamkb.New(script.Tamil, script.Anjal)
	if err != nil {
		t.Fatal(err)
	}
	tr := New(e)

	got, _, err := transform.String(tr, "ka")
	if err != nil {
		t.Fatal(err)
	}
	want := string([]rune{0x0B95})
	if got != want {
		t.Fatalf("transform.String(%q) = %q, want %q", "ka", got, want)
	}
}

func TestTransformerResetClearsDocument(t *testing.T) {
	e, err := sangamkb.New(script.Tamil, script.Anjal)
	if err != nil {
		t.Fatal(err)
	}
	tr := New(e)

	if _, _, err := transform.String(tr, "k"); err != nil {
		t.Fatal(err)
	}
	tr.Reset()
	got, _, err := transform.String(tr, "a")
	if err != nil {
		t.Fatal(err)
	}
	want := string([]rune{0x0B85})
	if got != want {
		t.Fatalf("transform.String(%q) after Reset = %q, want fresh vowel %q", "a", got, want)
	}
}
