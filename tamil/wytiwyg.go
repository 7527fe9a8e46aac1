package tamil

import (
	"unicode"

	"github.com/murasu/sangamkb/indic"
	"github.com/murasu/sangamkb/script"
	"github.com/murasu/sangamkb/tables"
)

// wytiwygState holds the extra per-session state the WYTIWYG routine needs
// beyond *indic.Session (§4.6): a pending dead-key modifier
// (TypewriterOld/TNTypewriter), the canonical Anjal key of the last
// committed base consonant (TN-Typewriter's uu-kaal rule), and the raw
// previous physical key (Bamini's doubled-key elongation).
type wytiwygState struct {
	deadModifier   rune
	lastConsoAnjal rune
	rawPrevKey     rune
}

func wytiwygTableFor(layout script.TamilLayout) *tables.WytiwygTable {
	switch layout {
	case script.Mylai:
		return &tables.Mylai
	case script.TypewriterNew:
		return &tables.TypewriterNew
	case script.TypewriterOld:
		return &tables.TypewriterOld
	case script.Bamini:
		return &tables.Bamini
	case script.TNTypewriter:
		return &tables.TNTypewriter
	default:
		panic("exhaustive switch")
	}
}

// anjalConsoChar resolves a canonical row-letter consonant key to its base
// code point via TamilCanon's C1 table, the same table the Tamil99-family
// substitution layouts compose through.
func anjalConsoChar(anjalKey rune) (rune, bool) {
	t := &tables.TamilCanon
	if i := indic.Position(anjalKey, t.C1Keys, tables.NoMatch, nil, tables.NoMatch, nil); i >= 0 {
		return t.C1Char[i], true
	}
	return 0, false
}

// anjalVowelSign resolves a canonical Anjal vowel key to its dependent
// vowel-sign code point (VS1Char), the form a left-half or dead-key
// modifier buffers before its base consonant is known.
func anjalVowelSign(anjalKey rune) rune {
	t := &tables.TamilCanon
	if i := indic.Position(anjalKey, t.V1Keys, tables.NoMatch, nil, tables.NoMatch, nil); i >= 0 {
		return t.VS1Char[i]
	}
	return 0
}

// composedTwoPart synthesises the two-part o/oo/au vowel sign once a
// left-half sign already committed onto its consonant is followed by a
// kaal (long=false) or au-mark (long=true) modifier key (§4.6).
func composedTwoPart(left rune, long bool) rune {
	switch left {
	case 0x0BC6: // left e
		if long {
			return 0x0BCC // au
		}
		return 0x0BCA // o
	case 0x0BC7: // left ee
		return 0x0BCB // oo
	default:
		return 0
	}
}

// baminiSpecialOM is Bamini's U/V/W/X/Y/Z OM-row remap: these keys don't
// emit a literal character, they emit a fixed consonant+long-u ligature
// (or, for 'Z', a bare ர்), per AnjalKeyMapLookup.h's Bamini kbdTable.
var baminiSpecialOM = map[rune][]rune{
	'Z': {0x0BB0, 0x0BCD},
	'U': {0x0B9A, 0x0BC2},
	'V': {0x0B95, 0x0BC2},
	'W': {0x0BAE, 0x0BC2},
	'X': {0x0B9F, 0x0BC2},
	'Y': {0x0BB0, 0x0BC2},
}

// mergeSequential folds two edits applied back-to-back by the underlying
// Anjal transducer (e.g. a precomposed ukara key's consonant-then-vowel
// pair) into the single equivalent edit against the document as it stood
// before the first one.
func mergeSequential(first, second indic.EditRecord) indic.EditRecord {
	insert := append([]rune(nil), first.Insert...)
	d := second.DeleteCount
	if d <= len(insert) {
		insert = insert[:len(insert)-d]
	} else {
		first.DeleteCount += d - len(insert)
		insert = insert[:0]
	}
	insert = append(insert, second.Insert...)
	return indic.EditRecord{DeleteCount: first.DeleteCount, Insert: insert, FixPrevious: true}
}

func (e *Engine) commitLiteral(ch rune) indic.EditRecord {
	sess := e.Session
	sess.PrevKey = 0
	sess.PrevKeyClass = script.NonIndic
	sess.PrevCharClass = script.NonIndicChar
	return indic.EditRecord{DeleteCount: 0, Insert: []rune{ch}, FixPrevious: true}
}

func (e *Engine) commitOM(t *tables.WytiwygTable, ch rune) indic.EditRecord {
	if t.IsBamini {
		if lig, ok := baminiSpecialOM[ch]; ok {
			sess := e.Session
			sess.PrevKey = 0
			sess.PrevKeyClass = script.NonIndic
			sess.PrevCharClass = script.NonIndicChar
			return indic.EditRecord{DeleteCount: 0, Insert: append([]rune(nil), lig...), FixPrevious: true}
		}
	}
	return e.commitLiteral(ch)
}

// commitConsonantWithLeftHalf reorders a buffered left-half vowel sign
// (§4.6, spec.md §8 scenario 6): the base consonant just typed is emitted
// before the sign that visually preceded it, deleting the 2-code-point
// zero-width-space+sign placeholder.
func (e *Engine) commitConsonantWithLeftHalf(anjalConso rune) indic.EditRecord {
	sess := e.Session
	sign := sess.WytiwygLeftHalf
	sess.WytiwygLeftHalf = 0

	base, ok := anjalConsoChar(anjalConso)
	if !ok {
		return e.commitLiteral(base)
	}
	sess.CurrentBaseChar = base
	sess.LastConsoChar = anjalConso
	e.wyti.lastConsoAnjal = anjalConso
	sess.PrevKey = anjalConso
	sess.PrevKeyClass = script.FirstVowelSign
	sess.PrevCharClass = script.ConsonantChar
	sess.VowelChar = sign
	return indic.EditRecord{DeleteCount: 2, Insert: []rune{base, sign}, FixPrevious: true}
}

// commitDeadKeyConsonant resolves a TypewriterOld/TNTypewriter dead-key
// modifier against the base consonant that follows it, in the same
// swap-and-delete-2 shape as a WYTIWYG left-half sign (§4.6).
func (e *Engine) commitDeadKeyConsonant(anjalConso rune) indic.EditRecord {
	sess := e.Session
	mod := e.wyti.deadModifier
	e.wyti.deadModifier = 0

	base, ok := anjalConsoChar(anjalConso)
	if !ok {
		return e.commitLiteral(base)
	}
	sess.CurrentBaseChar = base
	sess.LastConsoChar = anjalConso
	e.wyti.lastConsoAnjal = anjalConso
	sess.PrevKey = anjalConso
	sess.PrevKeyClass = script.FirstVowelSign
	sess.PrevCharClass = script.ConsonantChar
	sess.VowelChar = mod
	return indic.EditRecord{DeleteCount: 2, Insert: []rune{base, mod}, FixPrevious: true}
}

// baminiElongateVowel promotes the just-committed short independent vowel
// to its long counterpart on a doubled key (`mm`→ஆ, `cc`→ஊ, …): Bamini's
// long-vowel keys are the upper-case form of the short key throughout
// TamilCanon's V1 table.
func (e *Engine) baminiElongateVowel() indic.EditRecord {
	sess := e.Session
	longKey := unicode.ToUpper(sess.PrevKey)
	sess.PrevKeyClass = script.Fresh
	sess.PrevCharClass = script.NonIndicChar
	rec := indic.Translate(&tables.TamilCanon, sess, longKey)
	rec.DeleteCount = indic.PrevKsLength
	return rec
}

// translateWytiwyg implements §4.6's dedicated WYTIWYG routine for Mylai,
// Typewriter-New, Typewriter-Old, Bamini and TN-Typewriter.
func (e *Engine) translateWytiwyg(key rune) indic.EditRecord {
	t := wytiwygTableFor(e.Session.Layout)
	sess := e.Session
	prevRaw := e.wyti.rawPrevKey
	e.wyti.rawPrevKey = key

	if t.IsOldOrNewTypewriter && key == '`' {
		if prevRaw == '`' {
			// A second backtick turns the ' just emitted into ".
			e.wyti.rawPrevKey = 0
			rec := e.commitLiteral('"')
			rec.DeleteCount = 1
			return rec
		}
		return e.commitLiteral('\'')
	}

	if t.IsDeadKeyLayout && sess.PrevKeyClass == script.DeadKey {
		if i := indexRune(t.ConsoKeys, key); i >= 0 {
			return e.commitDeadKeyConsonant(t.ConsoAnjalKey[i])
		}
		e.wyti.deadModifier = 0
	}

	if i := indexRune(t.ModiKeys, key); i >= 0 {
		anjalKey := t.ModiAnjalKey[i]
		if i < 3 {
			sign := anjalVowelSign(anjalKey)
			sess.WytiwygLeftHalf = sign
			sess.VowelChar = sign
			sess.PrevKeyClass = script.LeftHalfVowel
			sess.PrevCharClass = script.VowelChar
			return indic.EditRecord{DeleteCount: 0, Insert: []rune{zwsp, sign}, FixPrevious: true}
		}
		if sess.PrevKeyClass == script.FirstVowelSign && sess.VowelChar != 0 {
			if composed := composedTwoPart(sess.VowelChar, i >= 4); composed != 0 {
				sess.VowelChar = composed
				sess.PrevKeyClass = script.SecondVowelSign
				return indic.EditRecord{DeleteCount: 1, Insert: []rune{composed}, FixPrevious: true}
			}
		}
		return indic.Translate(&tables.TamilCanon, sess, anjalKey)
	}

	if i := indexRune(t.ConsoKeys, key); i >= 0 {
		anjalConso := t.ConsoAnjalKey[i]
		if sess.WytiwygLeftHalf != 0 {
			return e.commitConsonantWithLeftHalf(anjalConso)
		}
		rec := indic.Translate(&tables.TamilCanon, sess, anjalConso)
		e.wyti.lastConsoAnjal = anjalConso
		return rec
	}

	if i := indexRune(t.UkaraKeys, key); i >= 0 {
		consoKey, vowelKey := t.UkaraConsoKey[i], t.UkaraVowelKey[i]
		if t.IsTNTypewriter && vowelKey == 'U' && e.wyti.lastConsoAnjal == consoKey &&
			sess.PrevKeyClass == script.FirstVowelSign {
			return indic.Translate(&tables.TamilCanon, sess, 'U')
		}
		first := indic.Translate(&tables.TamilCanon, sess, consoKey)
		e.wyti.lastConsoAnjal = consoKey
		second := indic.Translate(&tables.TamilCanon, sess, vowelKey)
		return mergeSequential(first, second)
	}

	if i := indexRune(t.UyirKeys, key); i >= 0 {
		if t.IsBamini && key == prevRaw && sess.PrevKeyClass == script.FirstVowel {
			return e.baminiElongateVowel()
		}
		return indic.Translate(&tables.TamilCanon, sess, t.UyirAnjalKey[i])
	}

	if i := indexRune(t.MModiKeys, key); i >= 0 {
		anjalKey := t.MModiAnjalKey[i]
		if t.IsDeadKeyLayout {
			sign := anjalVowelSign(anjalKey)
			e.wyti.deadModifier = sign
			sess.PrevKeyClass = script.DeadKey
			sess.PrevCharClass = script.VowelChar
			return indic.EditRecord{DeleteCount: 0, Insert: []rune{zwsp, sign}, FixPrevious: true}
		}
		if sess.PrevKeyClass == script.FirstVowelSign && sess.WytiwygLeftHalf == 0 && sess.VowelChar != 0 {
			if composed := composedTwoPart(sess.VowelChar, false); composed != 0 {
				sess.VowelChar = composed
				sess.PrevKeyClass = script.SecondVowelSign
				return indic.EditRecord{DeleteCount: 1, Insert: []rune{composed}, FixPrevious: true}
			}
		}
		return indic.Translate(&tables.TamilCanon, sess, anjalKey)
	}

	if i := indexRune(t.OMKeys, key); i >= 0 {
		return e.commitOM(t, t.OMChar[i])
	}

	return e.commitLiteral(key)
}
