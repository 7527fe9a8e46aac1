package tables

import "github.com/murasu/sangamkb/script"

// TamilCanon is the canonical-key resolution table shared by Tamil99,
// TamilNet97, Murasu6, AnjalIndic and the WYTIWYG layouts: translateRemap
// maps a layout's physical key to its "Anjal-canonical key" via ConsoAnjalKey
// / VowelAnjalKey (tamil_layouts.go, tamil_wytiwyg.go — both transcribed from
// AnjalKeyMapLookup.h's kbdTable rows), then looks that canonical key up
// here.
//
// It is grounded on AnjalKeyMapLookup.h's RowSequence/ColumnSequence/encTable
// matrix and the GetCompoundString/GetCharStringForKey engine in
// src/tamil/AnjalKeyMap.c, per the Open Question resolution recorded in
// SPEC_FULL.md §9 — NOT on IndicTamilAnjalKeymap.c's AnjalUC1Keys/AnjalUC1Char
// (that file, consumed directly by getKeyStringUnicodeTamilAnjal, implements
// a separate, standalone single-layout Anjal engine used for raw native
// keystrokes, kept unchanged as TamilAnjal below). The two tables disagree on
// what some single-letter canonical keys mean — e.g. row-letter 'g' is ங
// (RowSequence index 13, encTable row 13) here, but a duplicate spelling of
// 'k' (க்) in IndicTamilAnjalKeymap.c — because they are different keyboards'
// alphabets that happen to reuse the same letters.
//
// Row letters row1..row25 of RowSequence ("kcdtpRyrlvzLgGNwmnjsShxWH") give
// the 25 ordinary single-press consonants; ColumnSequence ("aAiIuUeEXoOQq")
// gives the vowel-sign columns, with encTable row 0 (the independent-vowel
// row) doubling as V1Char since Tamil99-family keyboards dedicate one key
// per vowel form — unlike native Anjal's length/diphthong digraphs, there is
// no V2 stage here.
var TamilCanon = ScriptTable{
	Script:     script.Tamil,
	Virama:     0x0BCD,
	AutoVirama: true,

	V1Keys: []rune{'a', 'A', 'i', 'I', 'u', 'U', 'e', 'E', 'X', 'o', 'O', 'Q', 'q'},
	V1Char: []rune{0x0B85, 0x0B86, 0x0B87, 0x0B88, 0x0B89, 0x0B8A, 0x0B8E, 0x0B8F, 0x0B90, 0x0B92, 0x0B93, 0x0B94, 0x0B83},

	VS1Char: []rune{0x0008, 0x0BBE, 0x0BBF, 0x0BC0, 0x0BC1, 0x0BC2, 0x0BC6, 0x0BC7, 0x0BC8, 0x0BCA, 0x0BCB, 0x0BCC, 0x0BCD},

	C1Keys: []rune{
		'k', 'c', 'd', 't', 'p', 'R', 'y', 'r', 'l', 'v', 'z', 'L',
		'g', 'G', 'N', 'w', 'm', 'n', 'j', 's', 'S', 'h', 'x', 'W', 'H',
	},
	C1Char: []rune{
		0x0B95, 0x0B9A, 0x0B9F, 0x0BA4, 0x0BAA, 0x0BB1, 0x0BAF, 0x0BB0, 0x0BB2, 0x0BB5, 0x0BB4, 0x0BB3,
		0x0B99, 0x0B9E, 0x0BA3, 0x0BA8, 0x0BAE, 0x0BA9, 0x0B9C, 0x0BB7, 0x0BB8, 0x0BB9, 0x0B01, 0x0B02, 0x0BB6,
	},

	DigitKeys: []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	DigitChar: []rune{0x0BE6, 0x0BE7, 0x0BE8, 0x0BE9, 0x0BEA, 0x0BEB, 0x0BEC, 0x0BED, 0x0BEE, 0x0BEF},

	Placeholders: map[rune][]rune{
		0x0B01: {0x0B95, 0x0BCD, 0x0BB7, 0x0BCD}, // க்ஷ் (encTable row 'x', col 'q')
		0x0B02: {0x0BB8, 0x0BCD, 0x0BB0, 0x0BC0}, // ஸ்ரீ (encTable row 'W'; col0 == col 'q')
	},

	// The nine "Special sequence processing" rows of encTable (RowSequence's
	// digit letters '1'-'9'), each only populated at the pulli column: two
	// ordinary row-letter keystrokes collapse into one precomposed geminate
	// or conjunct cluster instead of stacking as a second consonant. The
	// phonetic pairing (which two row letters trigger each row) follows
	// AnjalKeyMapLookup.h's naming comment ("tr-1, nth-2, nd-3, ndr-4, tt-5,
	// tth-6, njj-7") and the two 2022-02-28 dated additions (kc, k+zwnj+sh);
	// the literal per-keyboard trigger-pair table itself (kbdTable's
	// Conso2ndKeys) was not in the retrieved corpus, so this is the
	// DESIGN.md-recorded reconstruction from that naming scheme.
	Digraphs: []Digraph{
		{PrevKey: 'R', CurrKey: 'R', DeleteCount: 2, Insert: []rune{0x0BB1, 0x0BCD, 0x0BB1, 0x0BCD}}, // tr  -> ற்ற்
		{PrevKey: 'w', CurrKey: 't', DeleteCount: 2, Insert: []rune{0x0BA8, 0x0BCD, 0x0BA4, 0x0BCD}}, // nth -> ந்த்
		{PrevKey: 'N', CurrKey: 'd', DeleteCount: 2, Insert: []rune{0x0BA3, 0x0BCD, 0x0B9F, 0x0BCD}}, // nd  -> ண்ட்
		{PrevKey: 'n', CurrKey: 'R', DeleteCount: 2, Insert: []rune{0x0BA9, 0x0BCD, 0x0BB1, 0x0BCD}}, // ndr -> ன்ற்
		{PrevKey: 'd', CurrKey: 'd', DeleteCount: 2, Insert: []rune{0x0B9F, 0x0BCD, 0x0B9F, 0x0BCD}}, // tt  -> ட்ட்
		{PrevKey: 't', CurrKey: 't', DeleteCount: 2, Insert: []rune{0x0BA4, 0x0BCD, 0x0BA4, 0x0BCD}}, // tth -> த்த்
		{PrevKey: 'G', CurrKey: 'c', DeleteCount: 2, Insert: []rune{0x0B9E, 0x0BCD, 0x0B9A, 0x0BCD}}, // njj -> ஞ்ச்
		{PrevKey: 'k', CurrKey: 'c', DeleteCount: 2, Insert: []rune{0x0B95, 0x0BCD, 0x0B9A, 0x0BCD}}, // kc  -> க்ச்
		{PrevKey: 'k', CurrKey: 's', DeleteCount: 2, Insert: []rune{0x0B95, 0x0BCD, 0x200C, 0x0BB7, 0x0BCD}}, // k+zwnj+sh -> க்‌ஷ்
	},
}
