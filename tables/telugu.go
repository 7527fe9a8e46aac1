package tables

import "github.com/murasu/sangamkb/script"

// Telugu is grounded on IndicTeluguKeymap.c's TelUV*/TelUC* arrays.
var Telugu = ScriptTable{
	Script:     script.Telugu,
	Virama:     0x0C4D,
	AutoVirama: true,

	V1Keys: []rune{'a', 'i', 'u', 'H', 'H', 'H', 'H', 'e', 'a', 'o', 'a', 'q', 'M', 'H', 'Q'},
	V2Keys: []rune{'a', 'i', 'u', 'r', 'R', 'l', 'L', 'e', 'i', 'o', 'u', 'q', 'M', 'H', NoMatch},
	V3Keys: []rune{NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'M', 'H', NoMatch},

	V1Char: []rune{0x0C05, 0x0C07, 0x0C09, 0x0C03, 0x0C03, 0x0C03, 0x0C03, 0x0C0E, 0x0C10, 0x0C12, 0x0C14, 0x0C4D, 0x0C02, 0x0C03, 0x0C01},
	V2Char: []rune{0x0C06, 0x0C08, 0x0C0A, 0x0C0B, 0x0C60, 0x0C0C, 0x0C61, 0x0C0F, 0x0C10, 0x0C13, 0x0C14, NoChar, NoChar, 0x0C03, NoChar},
	V3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0C03, NoChar},

	VS1Char: []rune{0x0008, 0x0C3F, 0x0C41, 0x0C03, 0x0C03, 0x0C03, 0x0C03, 0x0C46, 0x0C48, 0x0C4A, 0x0C4C, 0x0C4D, 0x0C02, 0x0C03, 0x0C50},
	VS2Char: []rune{0x0C3E, 0x0C40, 0x0C42, 0x0C43, 0x0C44, 0x0C62, 0x0C63, 0x0C47, 0x0C48, 0x0C4B, 0x0C4C, NoChar, NoChar, 0x0C03, 0x0C50},
	VS3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0C03, 0x0C50},

	C1Keys: []rune{
		'k', 'g', 'n', 'c', 'j', 'n', 'T', 'D', 'N', 't', 'd',
		'n', 'p', 'b', 'm', 'y', 'r', 'R', 'l', 'L', 'z', 'v', 'S', 's', 'h',
	},
	C2Keys: []rune{
		'h', 'h', 'g', 'h', 'h', 'j', 'h', 'h', NoMatch, 'h', 'h',
		NoMatch, 'h', 'h', NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'h', NoMatch,
	},
	C3Keys: []rune{
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
	},

	C1Char: []rune{
		0x0C15, 0x0C17, 0x0C28, 0x0C1A, 0x0C1C, 0x0C1E, 0x0C1F, 0x0C21, 0x0C23, 0x0C24, 0x0C26,
		0x0C28, 0x0C2A, 0x0C2C, 0x0C2E, 0x0C2F, 0x0C30, 0x0C31, 0x0C32, 0x0C33, 0x0C34, 0x0C35, 0x0C36, 0x0C38, 0x0C39,
	},
	C2Char: []rune{
		0x0C16, 0x0C18, 0x0C19, 0x0C1B, 0x0C1D, 0x0C1E, 0x0C20, 0x0C22, NoChar, 0x0C25, 0x0C27,
		NoChar, 0x0C2B, 0x0C2D, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0C37, NoChar,
	},
	C3Char: []rune{
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
	},

	DigitKeys: []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	DigitChar: []rune{0x0C66, 0x0C67, 0x0C68, 0x0C69, 0x0C6A, 0x0C6B, 0x0C6C, 0x0C6D, 0x0C6E, 0x0C6F},

	HasDanda:        true,
	DandaChar:       0x0964,
	DoubleDandaChar: 0x0965,
}
