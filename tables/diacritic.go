package tables

import "github.com/murasu/sangamkb/script"

// Diacritic has no dedicated source file in original_source/; it is built
// by the same method as the other six scripts (an ISO-15919-style roman
// transliteration layout: a second keystroke lengthens a vowel, 'h' after a
// stop keys its aspirate, retroflex/palatal letters are keyed
// by their plain Latin letter since there is no separate Unicode block to
// draw a second code point from). It carries no virama: Latin script has no
// halant, so a fresh consonant is emitted bare, an 'a' after a consonant
// emits nothing, and any other vowel after a consonant is appended.
var Diacritic = ScriptTable{
	Script:     script.Diacritic,
	Virama:     0,
	AutoVirama: false,

	V1Keys: []rune{'a', 'i', 'u', 'e', 'o', 'R', 'L', 'M', 'H'},
	V2Keys: []rune{'a', 'i', 'u', NoMatch, NoMatch, 'R', 'L', NoMatch, NoMatch},
	V3Keys: []rune{NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch},

	V1Char: []rune{'a', 'i', 'u', 'e', 'o', 0x1E5B, 0x1E37, 0x1E43, 0x1E25},
	V2Char: []rune{0x0101, 0x012B, 0x016B, NoChar, NoChar, 0x1E5D, 0x1E39, NoChar, NoChar},
	V3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar},

	VS1Char: []rune{0x0008, 'i', 'u', 'e', 'o', 0x1E5B, 0x1E37, 0x1E43, 0x1E25},
	VS2Char: []rune{0x0101, 0x012B, 0x016B, NoChar, NoChar, 0x1E5D, 0x1E39, NoChar, NoChar},
	VS3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar},

	C1Keys: []rune{
		'k', 'g', 'c', 'j', 'T', 'D', 'N', 't', 'd', 'n',
		'p', 'b', 'm', 'y', 'r', 'l', 'v', 's', 'S', 'h', 'L', 'Y',
	},
	C2Keys: []rune{
		'h', 'h', 'h', 'h', 'h', 'h', NoMatch, 'h', 'h', NoMatch,
		'h', 'h', NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
	},
	C3Keys: []rune{
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
	},

	C1Char: []rune{
		'k', 'g', 'c', 'j', 0x1E6D, 0x1E0D, 0x1E47, 't', 'd', 'n',
		'p', 'b', 'm', 'y', 'r', 'l', 'v', 's', 0x1E63, 'h', 0x1E37, 0x00F1,
	},
	// C2Char is unused for the aspirate rows (they have no single
	// precomposed code point); C2Expansion below supplies the two-rune
	// "consonant + h" sequence instead.
	C2Char: []rune{
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
	},
	C3Char: []rune{
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
	},

	C2Expansion: map[int][]rune{
		0: {'k', 'h'},
		1: {'g', 'h'},
		2: {'c', 'h'},
		3: {'j', 'h'},
		4: {0x1E6D, 'h'},
		5: {0x1E0D, 'h'},
		7: {'t', 'h'},
		8: {'d', 'h'},
		10: {'p', 'h'},
		11: {'b', 'h'},
	},
}
