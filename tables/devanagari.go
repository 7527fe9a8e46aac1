package tables

import "github.com/murasu/sangamkb/script"

// Devanagari is grounded on IndicDevanagariKeymap.c's DevaUV*/DevaUC*/DevaUN*
// arrays (Anjal-pattern keying: roman consonant + 'h' for aspirates, roman
// vowel digraphs for the long/compound vowels).
var Devanagari = ScriptTable{
	Script:     script.Devanagari,
	Virama:     0x094D,
	AutoVirama: false,

	V1Keys: []rune{'a', 'i', 'u', 'e', 'a', 'o', 'a', 'R', 'L', 'A', 'I', 'U', 'M', 'H', 'q', 'Q', 'O', 'E'},
	V2Keys: []rune{'a', 'i', 'u', 'e', 'i', 'o', 'u', 'r', 'l', NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'q', NoMatch, 'M', NoMatch},
	V3Keys: []rune{NoMatch, NoMatch, NoMatch, 'e', NoMatch, 'o', NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'q', NoMatch, NoMatch, NoMatch},

	V1Char: []rune{0x0905, 0x0907, 0x0909, 0x090F, 0x0905, 0x0913, 0x0905, 0x090B, 0x090C, 0x0906, 0x0908, 0x090A, 0x0902, 0x0903, 0x094D, 0x0901, 0x0912, 0x090E},
	V2Char: []rune{0x0906, 0x0908, 0x090A, 0x090D, 0x0910, 0x0911, 0x0914, 0x0960, 0x0961, NoChar, NoChar, NoChar, NoChar, NoChar, 0x093C, NoChar, 0x0950, NoChar},
	V3Char: []rune{NoChar, NoChar, NoChar, 0x090E, NoChar, 0x0912, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0901, NoChar, NoChar, NoChar},

	VS1Char: []rune{0x0008, 0x093F, 0x0941, 0x0947, 0x0008, 0x094B, 0x0008, 0x0943, 0x0962, 0x093E, 0x0940, 0x0942, 0x0902, 0x0903, 0x094D, 0x0901, 0x094A, 0x0946},
	VS2Char: []rune{0x093E, 0x0940, 0x0942, 0x0945, 0x0948, 0x0949, 0x094C, 0x0944, 0x0963, NoChar, NoChar, NoChar, NoChar, NoChar, 0x093C, NoChar, 0x0950, NoChar},
	VS3Char: []rune{NoChar, NoChar, NoChar, 0x0946, NoChar, 0x094A, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0901, NoChar, NoChar, NoChar},

	C1Keys: []rune{'k', 'g', 'n', 'c', 'j', 'T', 'D', 'n', 'N', 't', 'd', 'n', 'p', 'b', 'm', 'y', 'r', 'l', 'z', 'v', 's', 'S', 'h'},
	C2Keys: []rune{'h', 'h', 'g', 'h', 'h', 'h', 'h', 'y', NoMatch, 'h', 'h', 'n', 'h', 'h', NoMatch, NoMatch, 'r', 'l', 'h', NoMatch, 'h', NoMatch, NoMatch},
	C3Keys: []rune{NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'l', NoMatch, NoMatch, NoMatch, NoMatch, NoMatch},

	C1Char: []rune{0x0915, 0x0917, 0x0928, 0x091A, 0x091C, 0x091F, 0x0921, 0x0928, 0x0923, 0x0924, 0x0926, 0x0928, 0x092A, 0x092C, 0x092E, 0x092F, 0x0930, 0x0932, 0x0936, 0x0935, 0x0938, 0x0937, 0x0939},
	C2Char: []rune{0x0916, 0x0918, 0x0919, 0x091B, 0x091D, 0x0920, 0x0922, 0x091E, NoChar, 0x0925, 0x0927, 0x0929, 0x092B, 0x092D, NoChar, NoChar, 0x0931, 0x0933, 0x0936, NoChar, NoChar, NoChar, NoChar},
	C3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0934, NoChar, NoChar, NoChar, NoChar, NoChar},

	DigitKeys: []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	DigitChar: []rune{0x0966, 0x0967, 0x0968, 0x0969, 0x096A, 0x096B, 0x096C, 0x096D, 0x096E, 0x096F},

	NuktaBase: []rune{0x0915, 0x0916, 0x0917, 0x091C, 0x0921, 0x0922, 0x092B, 0x092F},
	NuktaForm: []rune{0x0958, 0x0959, 0x095A, 0x095B, 0x095C, 0x095D, 0x095E, 0x095F},

	AvagrahaKey:  '#',
	AvagrahaChar: 0x093D,

	HasDanda:        true,
	DandaChar:       0x0964,
	DoubleDandaChar: 0x0965,
}
