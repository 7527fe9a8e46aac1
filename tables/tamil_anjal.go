package tables

import "github.com/murasu/sangamkb/script"

// TamilAnjal is grounded on IndicTamilAnjalKeymap.c's AnjalUC1Keys/
// AnjalUC1Char family — IndicNotesIMEngine's standalone, single-layout
// native Anjal transducer. It is the table native script.Anjal keystrokes
// are translated against (see tamil.go's Translate and keyInAnjal); it is
// NOT used to resolve the canonical keys the Tamil99/TamilNet97/Murasu6/
// AnjalIndic/WYTIWYG remap tables produce — those index into TamilCanon
// (tamil_canon.go), which is grounded on the separate, multi-layout
// RowSequence/ColumnSequence/encTable matrix in AnjalKeyMapLookup.h and
// src/tamil/AnjalKeyMap.c. The two tables are independently self-consistent
// but disagree on what some single-letter keys mean (e.g. 'g' is ங in
// TamilCanon, a duplicate spelling of 'k' here); do not reuse one
// in place of the other. Confirmed auto-virama true: startNewSessionTamilAnjal
// always appends pulli after a fresh consonant, matching spec.md §8's worked
// k,a scenario.
var TamilAnjal = ScriptTable{
	Script:     script.Tamil,
	Virama:     0x0BCD,
	AutoVirama: true,

	V1Keys: []rune{'a', 'i', 'u', 'e', 'a', 'o', 'a', 'q', 'A', 'I', 'U', 'E', 'O'},
	V2Keys: []rune{'a', 'i', 'u', 'e', 'i', 'o', 'u', 'q', NoMatch, NoMatch, NoMatch, NoMatch, 'M'},
	V3Keys: []rune{NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch},

	V1Char: []rune{0x0B85, 0x0B87, 0x0B89, 0x0B8E, 0x0B90, 0x0B92, 0x0B94, 0x0B83, 0x0B86, 0x0B88, 0x0B8A, 0x0B8F, 0x0B93},
	V2Char: []rune{0x0B86, 0x0B88, 0x0B8A, 0x0B8F, 0x0B90, 0x0B93, 0x0B94, NoChar, NoChar, NoChar, NoChar, NoChar, 0x0BD0},
	V3Char: []rune{NoChar, NoChar, NoChar, 0x0B0B, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar},

	VS1Char: []rune{0x0008, 0x0BBF, 0x0BC1, 0x0BC6, 0x0BC8, 0x0BCA, 0x0BCC, 0x0BCD, 0x0BBE, 0x0BC0, 0x0BC2, 0x0BC7, 0x0BCB},
	VS2Char: []rune{0x0BBE, 0x0BC0, 0x0BC2, 0x0BC7, 0x0BC8, 0x0BCB, 0x0BCC, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar},
	VS3Char: []rune{NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar},

	C1Keys: []rune{
		'k', 'g', 'c', 'd', 't', 'p', 'b', 'R',
		'y', 'r', 'l', 'v', 'z', 'L',
		'n', 'n', 'N', 'w', 'm', 'n',
		'j', 's', 'S', 'h', 'x', 's',
		'n', 'W',
	},
	C2Keys: []rune{
		NoMatch, NoMatch, 'h', NoMatch, 'h', NoMatch, NoMatch, NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
		'g', 'j', NoMatch, '-', NoMatch, '-',
		NoMatch, 'h', NoMatch, NoMatch, NoMatch, 'r',
		'=', NoMatch,
	},
	C3Keys: []rune{
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, NoMatch,
		NoMatch, NoMatch, NoMatch, NoMatch, NoMatch, 'i',
		NoMatch, NoMatch,
	},

	C1Char: []rune{
		0x0B95, 0x0B95, 0x0B9A, 0x0B9F, 0x0BA4, 0x0BAA, 0x0BAA, 0x0BB1,
		0x0BAF, 0x0BB0, 0x0BB2, 0x0BB5, 0x0BB4, 0x0BB3,
		0x0BA9, 0x0BA9, 0x0BA3, 0x0BA8, 0x0BAE, 0x0BA9,
		0x0B9C, 0x0B9A, 0x0BB8, 0x0BB9, 0x0B01, 0x0B9A,
		0x0BA9, 0x0BA9,
	},
	C2Char: []rune{
		NoChar, NoChar, 0x0B9A, NoChar, 0x0BA4, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
		0x0B99, 0x0B9E, NoChar, 0x0BA9, NoChar, 0x0BA8,
		NoChar, 0x0BB7, NoChar, NoChar, NoChar, 0x0B02,
		0x0BA9, 0x0BA9,
	},
	C3Char: []rune{
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, NoChar,
		NoChar, NoChar, NoChar, NoChar, NoChar, 0x0B02,
		NoChar, NoChar,
	},

	DigitKeys: []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	DigitChar: []rune{0x0BE6, 0x0BE7, 0x0BE8, 0x0BE9, 0x0BEA, 0x0BEB, 0x0BEC, 0x0BED, 0x0BEE, 0x0BEF},

	// The OM ligature ('O' then 'M') needs no special case: 'O' is already
	// a fresh independent-vowel key (V1) producing ஓ, and the V2 table
	// above maps a following 'M' to the OM symbol directly (delete 1).

	AvagrahaKey:  '#',
	AvagrahaChar: 0x093D,

	Placeholders: map[rune][]rune{
		0x0B01: {0x0B95, 0x0BCD, 0x0BB7, 0x0BCD}, // க்ஷ் (ksha cluster)
		0x0B02: {0x0BB8, 0x0BCD, 0x0BB0, 0x0BC0}, // ஸ்ரீ (sri)
	},

	// First-consonant continuations (§4.5).
	Digraphs: []Digraph{
		{PrevKey: 't', CurrKey: 'r', DeleteCount: 2, Insert: []rune{0x0BB1, 0x0BCD, 0x0BB1, 0x0BCD}}, // tr -> ற்ற்
		{PrevKey: 'n', CurrKey: 't', DeleteCount: 2, Insert: []rune{0x0BA8, 0x0BCD, 0x0BA4, 0x0BCD}}, // nt -> ந்த்
		{PrevKey: 'n', CurrKey: 'd', DeleteCount: 2, Insert: []rune{0x0BA3, 0x0BCD, 0x0B9F, 0x0BCD}}, // nd -> ண்ட்
		{PrevKey: 'L', CurrKey: 'l', DeleteCount: 0, Insert: []rune{0x0BB3, 0x0BCD}, StayInFirstConso: true}, // Ll -> ள், stays first-consonant so the next key is read as following a first consonant
		{PrevKey: 'k', CurrKey: 's', DeleteCount: 0, Insert: []rune{0x0B9A, 0x0BCD}},                 // ks -> ச் (continues to ksh)
	},

	// Second-consonant continuations, gated on the cluster's first key.
	SecondDigraphs: []Digraph{
		{PrevKey: 'd', CurrKey: 'r', RequireFirstConso: 'n', DeleteCount: 4, Insert: []rune{0x0BA9, 0x0BCD, 0x0BB1, 0x0BCD}}, // ndr -> ன்ற்
		{PrevKey: 'd', CurrKey: 'r', RequireFirstConso: 'W', DeleteCount: 4, Insert: []rune{0x0BA9, 0x0BCD, 0x0BB1, 0x0BCD}},
		{PrevKey: 'j', CurrKey: 'j', RequireFirstConso: 'n', DeleteCount: 0, Insert: []rune{0x0B9A, 0x0BCD}}, // njj -> ஞ்ச்... collapses to ச்
		{PrevKey: 'j', CurrKey: 'j', RequireFirstConso: 'W', DeleteCount: 0, Insert: []rune{0x0B9A, 0x0BCD}},
		{PrevKey: 's', CurrKey: 'h', RequireFirstConso: 'k', DeleteCount: 2, Insert: []rune{0x200C, 0x0BB7, 0x0BCD}}, // ksh -> ZWNJ+ஷ்
	},
}
