package script

// blockRange is a contiguous Unicode block, inclusive.
type blockRange struct{ lo, hi rune }

func (b blockRange) contains(r rune) bool { return r >= b.lo && r <= b.hi }

// ranges holds, per Script, the handful of sub-ranges needed to answer the
// classification helpers below. All seven scripts lay out their Brahmic
// block the same way relative to their base (independent vowels, then
// consonants, then dependent vowel signs, then virama), so one struct shape
// serves all of them; Diacritic carries no ranges since it composes plain
// Latin letters, not a dedicated Brahmic block.
type ranges struct {
	block        blockRange
	independent  blockRange // independent vowels (standalone, no consonant)
	consonant    blockRange
	consonantExt blockRange // secondary consonant range (chillus, nukta forms); zero value if unused
	vowelSign    blockRange // dependent vowel signs (matras)
	virama       rune
}

var scriptRanges = map[Script]ranges{
	Tamil: {
		block:       blockRange{0x0B80, 0x0BFF},
		independent: blockRange{0x0B85, 0x0B94},
		consonant:   blockRange{0x0B95, 0x0BB9},
		vowelSign:   blockRange{0x0BBE, 0x0BCC},
		virama:      0x0BCD,
	},
	Devanagari: {
		block:        blockRange{0x0900, 0x097F},
		independent:  blockRange{0x0904, 0x0914},
		consonant:    blockRange{0x0915, 0x0939},
		consonantExt: blockRange{0x0958, 0x095F},
		vowelSign:    blockRange{0x093E, 0x094C},
		virama:       0x094D,
	},
	Malayalam: {
		block:        blockRange{0x0D00, 0x0D7F},
		independent:  blockRange{0x0D05, 0x0D14},
		consonant:    blockRange{0x0D15, 0x0D39},
		consonantExt: blockRange{0x0D7A, 0x0D7F}, // chillus
		vowelSign:    blockRange{0x0D3E, 0x0D4C},
		virama:       0x0D4D,
	},
	Kannada: {
		block:       blockRange{0x0C80, 0x0CFF},
		independent: blockRange{0x0C85, 0x0C94},
		consonant:   blockRange{0x0C95, 0x0CB9},
		vowelSign:   blockRange{0x0CBE, 0x0CCC},
		virama:      0x0CCD,
	},
	Telugu: {
		block:       blockRange{0x0C00, 0x0C7F},
		independent: blockRange{0x0C05, 0x0C14},
		consonant:   blockRange{0x0C15, 0x0C39},
		vowelSign:   blockRange{0x0C3E, 0x0C4C},
		virama:      0x0C4D,
	},
	Gurmukhi: {
		block:       blockRange{0x0A00, 0x0A7F},
		independent: blockRange{0x0A05, 0x0A14},
		consonant:   blockRange{0x0A15, 0x0A39},
		vowelSign:   blockRange{0x0A3E, 0x0A4C},
		virama:      0x0A4D,
	},
}

// twoPartVowelSign maps a composed two-part dependent vowel sign (o, oo, au)
// to the left-half sign that a WYTIWYG layout types before the consonant.
// Only Tamil, Malayalam and Kannada compose these signs from two parts;
// Devanagari, Telugu and Gurmukhi use a single precomposed code point.
var twoPartVowelSign = map[Script]map[rune]rune{
	Tamil: {
		0x0BCA: 0x0BC6, // o  = left e  + aa
		0x0BCB: 0x0BC7, // oo = left ee + aa
		0x0BCC: 0x0BC6, // au = left e  + length mark
	},
	Malayalam: {
		0x0D4A: 0x0D46,
		0x0D4B: 0x0D47,
		0x0D4C: 0x0D46,
	},
	Kannada: {
		0x0CCA: 0x0CC6,
		0x0CCB: 0x0CC7,
	},
}

// leftHalfVowelSign is the set of dependent vowel signs that a WYTIWYG
// layout positions before the base consonant glyph (whether or not they are
// also half of a two-part sign).
var leftHalfVowelSign = map[Script]map[rune]bool{
	Tamil:     {0x0BC6: true, 0x0BC7: true, 0x0BC8: true},
	Malayalam: {0x0D46: true, 0x0D47: true, 0x0D48: true},
	Kannada:   {0x0CC6: true, 0x0CC7: true, 0x0CC8: true},
}

// IsConsonant reports whether r is a consonant letter of s.
func IsConsonant(s Script, r rune) bool {
	rg, ok := scriptRanges[s]
	if !ok {
		return false
	}
	return rg.consonant.contains(r) || rg.consonantExt.contains(r)
}

// IsIndependentVowel reports whether r is a standalone (non-matra) vowel
// letter of s.
func IsIndependentVowel(s Script, r rune) bool {
	rg, ok := scriptRanges[s]
	return ok && rg.independent.contains(r)
}

// IsDependantVowel reports whether r is a dependent vowel sign (matra) of s.
func IsDependantVowel(s Script, r rune) bool {
	rg, ok := scriptRanges[s]
	return ok && rg.vowelSign.contains(r)
}

// IsVowelSign is an alias of IsDependantVowel kept for parity with the
// original engine's naming.
func IsVowelSign(s Script, r rune) bool { return IsDependantVowel(s, r) }

// IsBaseChar reports whether r can anchor a new composition: a consonant or
// an independent vowel.
func IsBaseChar(s Script, r rune) bool {
	return IsConsonant(s, r) || IsIndependentVowel(s, r)
}

// IsLeftVowelSign reports whether r is a dependent vowel sign that a
// WYTIWYG layout types (and therefore buffers) before the base consonant.
func IsLeftVowelSign(s Script, r rune) bool {
	return leftHalfVowelSign[s][r]
}

// IsTwoPartVowelSign reports whether r is composed of a left-half sign
// followed by a length mark or second component.
func IsTwoPartVowelSign(s Script, r rune) bool {
	_, ok := twoPartVowelSign[s][r]
	return ok
}

// LeftVowelSignFor returns the left-half sign a WYTIWYG layout buffers for
// the two-part vowel sign r, or 0 if r has no left half.
func LeftVowelSignFor(s Script, r rune) rune {
	return twoPartVowelSign[s][r]
}

// IsVirama reports whether r is the script's virama/halant sign.
func IsVirama(s Script, r rune) bool {
	rg, ok := scriptRanges[s]
	return ok && rg.virama == r
}

// Virama returns the script's virama/halant code point, or 0 for scripts
// that have none (Diacritic).
func Virama(s Script) rune {
	return scriptRanges[s].virama
}

// CharClassOf classifies a single committed code point for §4.8's
// post-backspace reclassification.
func CharClassOf(s Script, r rune) CharClass {
	switch {
	case IsConsonant(s, r):
		return ConsonantChar
	case IsIndependentVowel(s, r), IsDependantVowel(s, r):
		return VowelChar
	default:
		return NonIndicChar
	}
}
