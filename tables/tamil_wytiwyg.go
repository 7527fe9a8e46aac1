package tables

// WytiwygTable holds the per-layout key tables for Tamil's WYTIWYG
// keyboards (§4.6): Mylai, Typewriter-New, Typewriter-Old, Bamini and
// TN-Typewriter. As in AnjalKeyMapLookup.h, every *AnjalKey field holds not
// a Unicode code point but the single-letter RowSequence/ColumnSequence
// canonical key the physical key stands for — composition re-uses
// TamilCanon's C1Keys/C1Char and V1Keys/VS1Char tables (not TamilAnjal's;
// see tamil_canon.go) to turn a canonical key into the actual code point,
// exactly as the original's WYTIWYG branch reuses its own encTable.
type WytiwygTable struct {
	// Base consonant row: physical key -> canonical C1 consonant key.
	ConsoKeys, ConsoAnjalKey []rune

	// Non-modifier independent vowels: physical key -> canonical V1 key.
	UyirKeys, UyirAnjalKey []rune

	// Precomposed u/uu consonant+vowel keys (typewriter-style single keys
	// for e.g. "து"): physical key -> canonical consonant key, canonical
	// vowel key.
	UkaraKeys, UkaraConsoKey, UkaraVowelKey []rune

	// WYTIWYG modifiers: the first three entries are left-half vowel signs
	// (ai/e/ee-style kombu, typed before their base); the rest are the kaal
	// and other vowel-sign keys typed after the base (u/uu, and on Bamini
	// also i/ii and pulli). physical key -> canonical V1 key.
	ModiKeys, ModiAnjalKey []rune

	// Ordinary (non-left-half) modifying-modifier keys: physical key ->
	// canonical V1 key, applied to the last composed base consonant.
	MModiKeys, MModiAnjalKey []rune

	// Out-of-matrix keys: physical key -> literal output code point. No
	// entry here triggers the au length mark; that is a ModiKeys entry.
	OMKeys []rune
	OMChar []rune

	IsDeadKeyLayout      bool // TypewriterOld, TNTypewriter: MModi is a dead key
	IsBamini             bool
	IsTNTypewriter       bool
	IsOldOrNewTypewriter bool // backtick -> '/" conversion
}

// Mylai is grounded on AnjalKeyMapLookup.h's Mylai kbdTable entry.
var Mylai = WytiwygTable{
	ConsoKeys:     []rune("!qwrtyp[]sdghjklzxXcvbnm"),
	ConsoAnjalKey: []rune("WLGrtyphjSdgNnklzsxcvRwm"),

	UyirKeys:     []rune("`~;:uU'\"_oO$#"),
	UyirAnjalKey: []rune("aAiIuUeEXoOQq"),

	UkaraKeys:     []rune("QWRTPDFGHJKLZCVBNM"),
	UkaraConsoKey: []rune("LGrtkdddNnklzccRwm"),
	UkaraVowelKey: []rune("uuuuUuiIuuuuuuUuuu"),

	ModiKeys:     []rune("AeEa{}"),
	ModiAnjalKey: []rune("XeEAuU"),

	MModiKeys:     []rune("iI<>fY\\"),
	MModiAnjalKey: []rune("iIuUqUU"),

	OMKeys: []rune("S|@^"),
	OMChar: []rune("S!\"^"),
}

// TypewriterNew is grounded on AnjalKeyMapLookup.h's "Typewriter - New"
// kbdTable entry.
var TypewriterNew = WytiwygTable{
	ConsoKeys:     []rune("|$&_+wertyuasdfgjkl'H\"z#"),
	ConsoAnjalKey: []rune("SjsWhRwcvlryLnkptmdgzGNx"),

	UyirKeys:     []rune("mM/<cCvVIxX~"),
	UyirAnjalKey: []rune("aAiIuUeEXoOq"),

	UkaraKeys:     []rune("qoWERTYUOSDFGJKLN"),
	UkaraConsoKey: []rune("NdRwcklrdLnkztmdc"),
	UkaraVowelKey: []rune("uiuuuUuuIuuuuuuuU"),

	ModiKeys:     []rune("ibnh"),
	ModiAnjalKey: []rune("XeEA"),

	MModiKeys:     []rune("%^p[]P{};:"),
	MModiAnjalKey: []rune("uUiuXIUUqU"),

	OMKeys: []rune("`>-#*:"),
	OMChar: []rune("`-/%'\""),

	IsOldOrNewTypewriter: true,
}

// TypewriterOld is grounded on AnjalKeyMapLookup.h's "Typewriter - Old"
// kbdTable entry ("same as tw new" per the source comment, differing only
// in treating MModi as a dead key).
var TypewriterOld = WytiwygTable{
	ConsoKeys:     []rune("|$&_+wertyuasdfgjkl'H\"z#"),
	ConsoAnjalKey: []rune("SjsWhRwcvlryLnkptmdgzGNx"),

	UyirKeys:     []rune("mM/<cCvVIxX~"),
	UyirAnjalKey: []rune("aAiIuUeEXoOq"),

	UkaraKeys:     []rune("qoWERTYUOSDFGJKLN"),
	UkaraConsoKey: []rune("NdRwcklrdLnkztmdc"),
	UkaraVowelKey: []rune("uiuuuUuuIuuuuuuuU"),

	ModiKeys:     []rune("ibnh"),
	ModiAnjalKey: []rune("XeEA"),

	MModiKeys:     []rune("%^p[]P{};:"),
	MModiAnjalKey: []rune("uUiuXIUUqU"),

	OMKeys: []rune("`>-#*:"),
	OMChar: []rune("`-/%'\""),

	IsDeadKeyLayout:      true,
	IsOldOrNewTypewriter: true,
}

// Bamini is grounded on AnjalKeyMapLookup.h's Bamini kbdTable entry
// (reference: https://help.keyman.com/keyboard/thamizha%20bamini/2.0/).
// Its OMChar row is the original's "UVWXYZ" special-cased remap
// (ZJEGKAUYTCSWD kaal-elongation keys, and Z/U/V/W/X/Y mapping to
// ர்/சூ/கூ/மூ/டூ/ரூ respectively) handled directly in tamil/wytiwyg.go
// rather than in this table, since they need multi-rune output.
var Bamini = WytiwygTable{
	ConsoKeys:     []rune("][\\=`wertyuasdfgjklqoQz~"),
	ConsoAnjalKey: []rune("SjsWhRwcvlryLnkptmdgzGNx"),

	UyirKeys:     []rune("mM,<cCvVIxX/"),
	UyirAnjalKey: []rune("aAiIuUeEXoOq"),

	UkaraKeys:     []rune("bB#$%^&WERTYUOASDFGJKLZ"),
	UkaraConsoKey: []rune("ddckmdrRwcvlrzyLnkptmdN"),
	UkaraVowelKey: []rune("iIUUUUUuuuuuuuuuuuuuuuu"),

	ModiKeys:     []rune("inNhpP;_+"),
	ModiAnjalKey: []rune("XeEAiIqUU"),

	MModiKeys:     []rune("%^p[]P{};:"),
	MModiAnjalKey: []rune("uUiuXIuUqU"),

	// UVWXYZ map specially: see tamil/wytiwyg.go's Bamini OM handling.
	OMKeys: []rune("|>@#$%^&H"),
	OMChar: []rune("|,;UVWXYZ"),

	IsBamini: true,
}

// TNTypewriter is grounded on AnjalKeyMapLookup.h's "Typewriter - TN"
// kbdTable entry (current Tamil Nadu government typewriter layout, with
// vowel-I and Grantha letters remapped relative to TypewriterNew/Old).
var TNTypewriter = WytiwygTable{
	ConsoKeys:     []rune("!$Z_]wertyuasdfgjkl'H\"zB"),
	ConsoAnjalKey: []rune("SjsWhRwcvlryLnkptmdgzGNx"),

	UyirKeys:     []rune("mM,<cCvVIxX`"),
	UyirAnjalKey: []rune("aAiIuUeEXoOq"),

	UkaraKeys:     []rune("qoWERTYUOSDFGJKLN"),
	UkaraConsoKey: []rune("NdRwcklrdLnkztmdc"),
	UkaraVowelKey: []rune("uiuuuUuuIuuuuuuuU"),

	ModiKeys:     []rune("ibnh"),
	ModiAnjalKey: []rune("XeEA"),

	MModiKeys:     []rune("%^p[]P{};:"),
	MModiAnjalKey: []rune("uUiuXIUUqU"),

	OMKeys: []rune("`~*-@#>./?"),
	OMChar: []rune("`*'/\"%?,.-"),

	IsDeadKeyLayout: true,
	IsTNTypewriter:  true,
}
