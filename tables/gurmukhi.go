package tables

import "github.com/murasu/sangamkb/script"

// Gurmukhi is grounded on IndicGurmukhiKeymap.c's GrmkUV*/GrmkUC* arrays.
// Unlike Devanagari, Gurmukhi's nukta letters (khha, ghha, za, rra, fa,
// yakash) are directly keyed in C1 ('K','G','z','R','f','Y') rather than
// composed with a qq fusion, so NuktaBase/NuktaForm are left empty.
var Gurmukhi = ScriptTable{
	Script:     script.Gurmukhi,
	Virama:     0x0A4D,
	AutoVirama: false,

	V1Keys: []rune{'a', 'i', 'u', 'e', 'a', 'o', 'a', 'x', 'M', 'H', 'q', 'Q', 'o', 'a'},
	V2Keys: []rune{'a', 'i', 'u', NoMatch, 'i', NoMatch, 'u', NoMatch, 'm', NoMatch, 'q', 'q', 'n', 'd'},
	V3Keys: []rune{NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'q', NoMatch, 'k', NoMatch},

	V1Char: []rune{0x0A05, 0x0A07, 0x0A09, 0x0A0F, 0x0A05, 0x0A13, 0x0A05, 0x0A71, 0x0A02, 0x0A03, 0x0A4D, 0x0A01, 0x0A13, 0x0A05},
	V2Char: []rune{0x0A06, 0x0A08, 0x0A0A, NoChar, 0x0A10, NoChar, 0x0A14, NoChar, 0x0A70, NoChar, 0x0A3C, 0x0A51, 0x0A74, 0x262C},
	V3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0A51, NoChar, 0x0A74, 0x262C},

	VS1Char: []rune{0x0008, 0x0A3F, 0x0A41, 0x0A47, 0x0008, 0x0A4B, 0x0008, 0x0A71, 0x0A02, 0x0A03, 0x0A4D, 0x0A01, 0x0A4B, 0x0008},
	VS2Char: []rune{0x0A3E, 0x0A40, 0x0A42, NoChar, 0x0A48, NoChar, 0x0A4C, NoChar, 0x0A70, NoChar, 0x0A3C, 0x0A51, 0x0A74, 0x262C},
	VS3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0A51, NoChar, 0x0A74, 0x262C},

	C1Keys: []rune{
		'k', 'g', 'n', 'c', 'j', 'T', 'D', 'n', 'N', 't', 'd',
		'n', 'p', 'b', 'm', 'y', 'r', 'l', 'L', 'v', 's', 'h',
		'K', 'G', 'z', 'R', 'f', 'Y',
	},
	C2Keys: []rune{
		'h', 'h', 'g', 'h', 'h', 'h', 'h', 'y', NoMatch, 'h', 'h',
		NoMatch, 'h', 'h', NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'h', NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
	},
	C3Keys: []rune{
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
	},

	C1Char: []rune{
		0x0A15, 0x0A17, 0x0A28, 0x0A1A, 0x0A1C, 0x0A1F, 0x0A21, 0x0A28, 0x0A23, 0x0A24, 0x0A26,
		0x0A28, 0x0A2A, 0x0A2C, 0x0A2E, 0x0A2F, 0x0A30, 0x0A32, 0x0A33, 0x0A35, 0x0A38, 0x0A39,
		0x0A59, 0x0A5A, 0x0A5B, 0x0A5C, 0x0A5E, 0x0A75,
	},
	C2Char: []rune{
		0x0A16, 0x0A18, 0x0A19, 0x0A1B, 0x0A1D, 0x0A20, 0x0A22, 0x0A1E, NoChar, 0x0A25, 0x0A27,
		NoChar, 0x0A2B, 0x0A2D, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0A36, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
	},
	C3Char: []rune{
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
	},

	DigitKeys: []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	DigitChar: []rune{0x0A66, 0x0A67, 0x0A68, 0x0A69, 0x0A6A, 0x0A6B, 0x0A6C, 0x0A6D, 0x0A6E, 0x0A6F},

	HasDanda:        true,
	DandaChar:       0x0964,
	DoubleDandaChar: 0x0965,
}
