package tables

import "github.com/murasu/sangamkb/script"

// Malayalam is grounded on IndicMalayalamKeymap.c's MalUV*/MalUC* arrays.
// The last seven consonant-row entries are the chillu letters: they are
// reached via a 'w' second key (C2) rather than an aspirate, and the
// transducer emits them bare (no trailing virama) per SPEC_FULL.md's
// chillu-marker clarification.
var Malayalam = ScriptTable{
	Script:     script.Malayalam,
	Virama:     0x0D4D,
	AutoVirama: true,

	V1Keys: []rune{'a', 'i', 'u', 'H', 'H', 'H', 'H', 'e', 'a', 'o', 'a', 'q', 'M', 'H'},
	V2Keys: []rune{'a', 'i', 'u', 'r', 'R', 'l', 'L', 'e', 'i', 'o', 'u', 'q', 'M', 'H'},
	V3Keys: []rune{NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'M', 'H'},

	V1Char: []rune{0x0D05, 0x0D07, 0x0D09, 0x0D03, 0x0D03, 0x0D03, 0x0D03, 0x0D0E, 0x0D10, 0x0D12, 0x0D14, 0x0D4D, 0x0D02, 0x0D03},
	V2Char: []rune{0x0D06, 0x0D08, 0x0D0A, 0x0D0B, 0x0D60, 0x0D0C, 0x0D61, 0x0D0F, 0x0D10, 0x0D13, 0x0D14, NoChar, NoChar, 0x0D03},
	V3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0D03},

	VS1Char: []rune{0x0008, 0x0D3F, 0x0D41, 0x0D03, 0x0D03, 0x0D03, 0x0D03, 0x0D46, 0x0D48, 0x0D4A, 0x0D4C, 0x0D4D, 0x0D02, 0x0D03},
	VS2Char: []rune{0x0D3E, 0x0D40, 0x0D42, 0x0D43, 0x0D44, 0x0D62, 0x0D63, 0x0D47, 0x0D48, 0x0D4B, 0x0D4C, NoChar, NoChar, 0x0D03},
	VS3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0D03},

	C1Keys: []rune{
		'k', 'g', 'n', 'c', 'j', 'n', 'T', 'D', 'N', 't', 'd',
		'n', 'p', 'b', 'm', 'y', 'r', 'R', 'l',
		'L', 'z', 'v', 'S', 's', 'h', 'N', 'n', 'R', 'r', 'l', 'L', 'k',
	},
	C2Keys: []rune{
		'h', 'h', 'g', 'h', 'h', 'j', 'h', 'h', NoMatch, 'h', 'h',
		NoMatch, 'h', 'h', NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, 'h', NoMatch, 'w', 'w', 'w', 'w', 'w', 'w', 'w',
	},
	C3Keys: make32Stars(),

	// Chillu letters (rows 25-31) are reached via a 'w' second key and
	// emitted bare, with no trailing chandrakkala.
	BareC2Key: 'w',

	C1Char: []rune{
		0x0D15, 0x0D17, 0x0D28, 0x0D1A, 0x0D1C, 0x0D1E, 0x0D1F, 0x0D21, 0x0D23, 0x0D24, 0x0D26,
		0x0D28, 0x0D2A, 0x0D2C, 0x0D2E, 0x0D2F, 0x0D30, 0x0D31, 0x0D32,
		0x0D33, 0x0D34, 0x0D35, 0x0D36, 0x0D38, 0x0D39, 0x0D7A, 0x0D7B, 0x0D7C, 0x0D7C, 0x0D7D, 0x0D7E, 0x0D7F,
	},
	C2Char: []rune{
		0x0D16, 0x0D18, 0x0D19, 0x0D1B, 0x0D1D, 0x0D1E, 0x0D20, 0x0D22, NoChar, 0x0D25, 0x0D27,
		NoChar, 0x0D2B, 0x0D2D, NoChar, NoChar, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, 0x0D37, NoChar, 0x0D7A, 0x0D7B, 0x0D7C, 0x0D7C, 0x0D7D, 0x0D7E, 0x0D7F,
	},
	C3Char: make32NoChars(),

	DigitKeys: []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	DigitChar: []rune{0x0D66, 0x0D67, 0x0D68, 0x0D69, 0x0D6A, 0x0D6B, 0x0D6C, 0x0D6D, 0x0D6E, 0x0D6F},

	HasDanda:        true,
	DandaChar:       0x0964,
	DoubleDandaChar: 0x0965,

	// rr -> റ്റ + chandrakkala, short-circuiting the normal C2 lookup.
	Digraphs: []Digraph{
		{PrevKey: 'r', CurrKey: 'r', DeleteCount: 2, Insert: []rune{0x0D31, 0x0D4D, 0x0D31, 0x0D4D}},
	},
}

func make32Stars() []rune {
	out := make([]rune, 32)
	for i := range out {
		out[i] = NoMatch
	}
	return out
}

func make32NoChars() []rune {
	out := make([]rune, 32)
	for i := range out {
		out[i] = NoChar
	}
	return out
}
