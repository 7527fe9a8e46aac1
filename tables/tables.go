// Package tables holds the static parallel-array lookup tables that drive
// the transducers in sangamkb/indic, sangamkb/tamil and sangamkb/diacritic.
// Every table is plain package-level data; none of it has behaviour of its
// own (§4.1).
package tables

import "github.com/murasu/sangamkb/script"

// NoMatch is the wildcard value used throughout the *Keys arrays: a
// position whose key is NoMatch can never be the result of a lookup, even
// if the caller's query key happens to be NoMatch itself.
const NoMatch = '*'

// NoChar marks a slot in a *Char array that has no value at this position
// (e.g. a consonant row with no third-consonant form). U+0B00 is an
// unassigned code point in every Brahmic block this package serves.
const NoChar = rune(0x0B00)

// ScriptTable is the generic per-script lookup table described in spec.md
// §4.1: three rounds of consonant lookup (fresh, second, third member of a
// conjunct) and three rounds of vowel lookup (independent vowel, matra,
// rare third-stage matra), plus the handful of per-script constants the
// generic transducer in sangamkb/indic needs.
type ScriptTable struct {
	Script script.Script

	// Virama/halant code point. AutoVirama selects whether the generic
	// transducer appends it automatically after a fresh consonant
	// (Malayalam/Kannada/Telugu/Tamil-Anjal) or leaves the consonant bare
	// until a vowel or second consonant arrives (Devanagari/Gurmukhi).
	Virama     rune
	AutoVirama bool

	// Consonant rounds. C1 is the first member of a (possible) conjunct,
	// C2 the second, C3 the third. Each *Char entry pairs positionally
	// with the corresponding *Keys entry.
	C1Keys, C2Keys, C3Keys []rune
	C1Char, C2Char, C3Char []rune

	// Vowel rounds: V1/V2/V3 are independent-vowel keys (start a fresh
	// syllable), VS1/VS2/VS3 are the dependent vowel signs produced when
	// the same key follows a consonant.
	V1Keys, V2Keys, V3Keys    []rune
	V1Char, V2Char, V3Char    []rune
	VS1Char, VS2Char, VS3Char []rune

	// Digit row, keyed '0'-'9'.
	DigitKeys []rune
	DigitChar []rune

	// Nukta fusion table (filled for Devanagari only; Gurmukhi keys its
	// nukta letters directly and leaves it empty): NuktaBase[i] + a
	// following nukta key ('q','q' in Devanagari, per SPEC_FULL.md)
	// produces NuktaForm[i] instead of appending U+093C literally.
	NuktaBase, NuktaForm []rune

	// Avagraha key and code point; 0 if the script has none mapped.
	AvagrahaKey  rune
	AvagrahaChar rune

	// Danda support (§4.3 preamble): '|' emits DandaChar, '||' replaces it
	// (delete 1) with DoubleDandaChar. Zero values mean the script has
	// none (Tamil, Diacritic).
	HasDanda        bool
	DandaChar       rune
	DoubleDandaChar rune

	// BareC2Key is the second-consonant key that selects a virama-less
	// form (Malayalam's chillu marker 'w'); 0 if the script has none.
	BareC2Key rune

	// Placeholders substitutes a full ligature expansion whenever a C1/C2/C3
	// lookup would otherwise yield this code point, instead of appending it
	// (plus virama) literally. Tamil-Anjal uses two private sentinel values
	// (U+0B01, U+0B02) this way, for க்ஷ் and ஸ்ரீ.
	Placeholders map[rune][]rune

	// C2Expansion/C3Expansion override the default "char + virama" (or bare
	// char, for scripts without auto-virama) rendering of a C2/C3 hit at
	// the given row index with an arbitrary multi-rune sequence. Used by
	// Diacritic for aspirate digraphs ("kh", "gh", ...), which have no
	// single precomposed Unicode code point.
	C2Expansion, C3Expansion map[int][]rune

	// Digraphs are fixed, fully-formed substitutions that short-circuit the
	// generic lookup while continuing a first consonant (prevKeyClass ==
	// script.FirstConsonant); SecondDigraphs do the same while continuing a
	// second consonant (script.SecondConsonant). Both are checked before
	// the generic C2/C3 table lookup, per §4.5.
	Digraphs       []Digraph
	SecondDigraphs []Digraph
}

// Digraph is one fixed prevKey+currKey substitution (§4.5), e.g. Tamil's
// "tr" -> ற்ற். RequireFirstConso, if non-zero, additionally restricts the
// match to sessions whose first consonant of the cluster was that key
// (Tamil's "ndr"/"njj", which only fire when the cluster started with 'n'
// or 'W').
type Digraph struct {
	PrevKey           rune
	CurrKey           rune
	RequireFirstConso rune
	DeleteCount       int
	Insert            []rune

	// StayInFirstConso keeps the session in script.FirstConsonant instead
	// of the usual advance to script.SecondConsonant. Tamil-Anjal's "Ll"
	// (a doubled 'l' folding into ள்) repeats this way: a third 'l' must
	// still be read as continuing a first consonant, not a second one.
	StayInFirstConso bool
}
