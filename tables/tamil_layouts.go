package tables

// KeyRemap is a physical-key -> canonical-row-letter substitution table
// (§4.6: "TamilNet97, Murasu6 — pure table substitutions over the Anjal
// transducer"). Tamil99 is keyed the same way ("identical key-to-phoneme
// mapping shape as Anjal but with different key tables"). Every entry here
// is transcribed verbatim from AnjalKeyMapLookup.h's kbdTable rows for the
// given keyboard: conso1stKey/conso1stChar and vowel1stKey/vowel1stChar,
// where *Char there holds not a Unicode code point but the single
// RowSequence/ColumnSequence letter the physical key stands for — i.e. the
// original already implements these keyboards as
// key-remap-then-reuse-the-matrix-engine, which is the design this package
// mirrors directly (resolving against TamilCanon, see tamil_canon.go).
type KeyRemap struct {
	ConsoKeys, ConsoAnjalKey []rune
	VowelKeys, VowelAnjalKey []rune
	OMKeys, OMChar           []rune
}

// Tamil99 is the Tamil99 keyboard's remap table (AnjalKeyMapLookup.h's
// second kbdTable entry). T99EscapesKey/T99EscapesChar below are separate,
// keyed off the literal '^' escape prefix per §4.6.
var Tamil99 = KeyRemap{
	ConsoKeys:     []rune("QWERTYyuiop[]hjkl;'vbnm/^"),
	ConsoAnjalKey: []rune("SsjhxWLRndNcGkpmtwyvglrz^"),
	VowelKeys:     []rune("qwertasdfFgzxc"),
	VowelAnjalKey: []rune("AIUXEaiuqqeQOo"),
	OMKeys:        []rune("OPKL:\"M"),
	OMChar:        []rune("[]\":;'/"),
}

// TamilNet97 is the TamilNet97 keyboard's remap table (per
// http://www.tamilnation.org/digital/tamilnet97/standardisation.htm, as
// cited in AnjalKeyMapLookup.h).
var TamilNet97 = KeyRemap{
	ConsoKeys:     []rune("tunop[bijkhl;m'y/]IOUPY{"),
	ConsoAnjalKey: []rune("RvlnyNztkmpdwrLcgGSsjhWx"),
	VowelKeys:     []rune("csdxeqgravwzfF"),
	VowelAnjalKey: []rune("aAiIuUeEXoOQqq"),
	OMKeys:        []rune("QWERKLZX<>"),
	OMChar:        []rune("()()\"'<>;/"),
}

// Murasu6 is the Murasu-6 (Kaniyan) keyboard's remap table, available only
// when the Murasu Compatibility Pack is present in the original; this port
// carries it unconditionally since there is no separate-pack concept here.
var Murasu6 = KeyRemap{
	ConsoKeys:     []rune("YIOPLUmyo;[/Kjlkh'puJin]"),
	ConsoAnjalKey: []rune("SsjhxWLRndNcGkpmtwyvglrz"),
	VowelKeys:     []rune("sewatvdfgzrxcb"),
	VowelAnjalKey: []rune("AIUXEoiuqqeQOa"),
	OMKeys:        []rune("`~"),
	OMChar:        []rune(";'"),
}

// T99EscapesKey/T99EscapesChar implement Tamil99's '^'-prefixed escape
// table (§SUPPLEMENT in SPEC_FULL.md): the original declares
// T99EscapesKey/T99EscapesChar but leaves the char side as a literal TODO
// ("replace with actual values"). This reconstructs it with the Tamil
// digits ௭ ௮ ௯ ௦ on keys 7, 8, 9, 0, the rupee sign ௹ on 'c', the day sign
// ௳ on 'S', and '.' and '^' as themselves.
var (
	T99EscapesKey  = []rune(".c7890S^")
	T99EscapesChar = []rune{'.', 0x0BF9, 0x0BED, 0x0BEE, 0x0BEF, 0x0BE6, 0x0BF3, '^'}
)

// ShiftedKey implements the SUPPLEMENT'd GetKeyFromShift: most layouts
// leave shifted keys unmapped (the caller's shift state only matters for
// Tamil99's K/L/;// row, per §4.7's composition-termination exception).
func ShiftedKey(layout string, key rune) rune {
	if layout != "Tamil99" {
		return key
	}
	switch key {
	case 'k':
		return 'K'
	case 'l':
		return 'L'
	case ';':
		return ':'
	case '/':
		return '?'
	default:
		return key
	}
}
