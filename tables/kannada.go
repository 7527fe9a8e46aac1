package tables

import "github.com/murasu/sangamkb/script"

// Kannada is grounded on IndicKannadaKeymap.c's KanUV*/KanUC* arrays.
var Kannada = ScriptTable{
	Script:     script.Kannada,
	Virama:     0x0CCD,
	AutoVirama: true,

	V1Keys: []rune{'a', 'i', 'u', 'H', 'H', 'H', 'H', 'e', 'a', 'o', 'a', 'q', 'M', 'H'},
	V2Keys: []rune{'a', 'i', 'u', 'r', 'R', 'l', 'L', 'e', 'i', 'o', 'u', 'q', 'M', 'H'},
	V3Keys: []rune{NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'M', 'H'},

	V1Char: []rune{0x0C85, 0x0C87, 0x0C89, 0x0C83, 0x0C83, 0x0C83, 0x0C83, 0x0C8E, 0x0C90, 0x0C92, 0x0C94, 0x0CCD, 0x0C82, 0x0C83},
	V2Char: []rune{0x0C86, 0x0C88, 0x0C8A, 0x0C8B, 0x0CE0, 0x0C8C, 0x0CE1, 0x0C8F, 0x0C90, 0x0C93, 0x0C94, NoChar, NoChar, 0x0C83},
	V3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0C83},

	VS1Char: []rune{0x0008, 0x0CBF, 0x0CC1, 0x0C83, 0x0C83, 0x0C83, 0x0C83, 0x0CC6, 0x0CC8, 0x0CCA, 0x0CCC, 0x0CCD, 0x0C82, 0x0C83},
	VS2Char: []rune{0x0CBE, 0x0CC0, 0x0CC2, 0x0CC3, 0x0CC4, 0x0CE2, 0x0CE3, 0x0CC7, 0x0CC8, 0x0CCB, 0x0CCC, NoChar, NoChar, 0x0C83},
	VS3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0C83},

	C1Keys: []rune{
		'k', 'g', 'n', 'c', 'j', 'n', 'T', 'D', 'N', 't', 'd',
		'n', 'p', 'b', 'm', 'y', 'r', 'R', 'l', 'L', 'v', 'S', 's', 'h', 'f',
	},
	C2Keys: []rune{
		'h', 'h', 'g', 'h', 'h', 'j', 'h', 'h', NoMatch, 'h', 'h',
		NoMatch, 'h', 'h', NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'h', NoMatch, NoMatch,
	},
	C3Keys: []rune{
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
	},

	C1Char: []rune{
		0x0C95, 0x0C97, 0x0CA8, 0x0C9A, 0x0C9C, 0x0C9E, 0x0C9F, 0x0CA1, 0x0CA3, 0x0CA4, 0x0CA6,
		0x0CA8, 0x0CAA, 0x0CAC, 0x0CAE, 0x0CAF, 0x0CB0, 0x0CB1, 0x0CB2, 0x0CB3, 0x0CB5, 0x0CB6, 0x0CB8, 0x0CB9, 0x0CDE,
	},
	C2Char: []rune{
		0x0C96, 0x0C98, 0x0C99, 0x0C9B, 0x0C9D, 0x0C9E, 0x0CA0, 0x0CA2, NoChar, 0x0CA5, 0x0CA7,
		NoChar, 0x0CAB, 0x0CAD, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0CB7, NoChar, NoChar,
	},
	C3Char: []rune{
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
	},

	DigitKeys: []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	DigitChar: []rune{0x0CE6, 0x0CE7, 0x0CE8, 0x0CE9, 0x0CEA, 0x0CEB, 0x0CEC, 0x0CED, 0x0CEE, 0x0CEF},

	HasDanda:        true,
	DandaChar:       0x0964,
	DoubleDandaChar: 0x0965,
}
