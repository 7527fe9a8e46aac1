// Package tamil implements the ten-layout Tamil dispatcher (§4.6): the
// plain Anjal transducer, the four key-substitution layouts that
// reuse it (Tamil99 with auto-pulli, TamilNet97, Murasu6, AnjalIndic), and
// the five WYTIWYG layouts whose visual-order keystrokes require a
// dedicated reordering routine (wytiwyg.go). It also implements §4.7
// composition termination and §4.8 post-backspace reclassification, which
// apply uniformly across all ten layouts.
package tamil

import (
	"github.com/murasu/sangamkb/indic"
	"github.com/murasu/sangamkb/internal/dbg"
	"github.com/murasu/sangamkb/script"
	"github.com/murasu/sangamkb/tables"
)

// zwsp is the zero-width-space placeholder a WYTIWYG layout emits ahead of
// a buffered left-half vowel sign (§4.6); spec.md §9.1 leaves whether the
// host or the engine consumes it as an Open Question. This port keeps it
// in the emitted stream: a host text field renders it invisibly and it is
// deleted along with the sign once the base consonant commits.
const zwsp = 0x200B

// Engine drives one Tamil composition session across any of the ten
// layouts. It wraps an *indic.Session with the extra state the
// substitution and WYTIWYG routines need that doesn't belong on the
// generic Session (§3 only specifies fields shared by all seven scripts).
type Engine struct {
	Session *indic.Session

	escapePending bool // Tamil99: '^' seen, awaiting its escape-table key
	t99PrevKey    rune // Tamil99: raw physical key of the last ordinary keystroke, for auto-pulli pairing
	wyti          wytiwygState
}

// NewEngine returns a fresh Tamil engine for the given layout.
func NewEngine(layout script.TamilLayout) *Engine {
	return &Engine{Session: indic.NewSession(script.Tamil, layout)}
}

// SetLayout switches the active layout and resets composition state, since
// a layout change mid-composition has no coherent meaning (§6's
// set_layout is specified to take effect on the next translate, and every
// caller in practice calls reset_session around it).
func (e *Engine) SetLayout(layout script.TamilLayout) {
	e.Session.Layout = layout
	e.Reset()
}

// Reset returns the engine to its initial state (§6 reset_session).
func (e *Engine) Reset() {
	e.Session.Reset()
	e.escapePending = false
	e.t99PrevKey = 0
	e.wyti = wytiwygState{}
}

// Translate runs one keystroke through the active layout's routine and
// resolves any PrevKsLength delete-count sentinel before returning.
func (e *Engine) Translate(key rune) indic.EditRecord {
	var rec indic.EditRecord
	switch e.Session.Layout {
	case script.Anjal:
		rec = indic.Translate(&tables.TamilAnjal, e.Session, key)
	case script.Tamil99:
		rec = e.translateTamil99(key)
	case script.TamilNet97:
		rec = e.translateRemap(&tables.TamilNet97, key)
	case script.AnjalIndic:
		// AnjalIndic's own key tables are absent from the retrieved
		// corpus (see DESIGN.md); it is treated as a TamilNet97-shaped
		// substitution layout, the closest documented relative.
		rec = e.translateRemap(&tables.TamilNet97, key)
	case script.Murasu6:
		rec = e.translateRemap(&tables.Murasu6, key)
	case script.Mylai, script.TypewriterNew, script.TypewriterOld, script.Bamini, script.TNTypewriter:
		rec = e.translateWytiwyg(key)
	default:
		panic("exhaustive switch")
	}
	return e.Session.ResolveDelete(rec)
}

func indexRune(haystack []rune, r rune) int {
	for i, h := range haystack {
		if h == r {
			return i
		}
	}
	return -1
}

// emitLiteral resets the session to a fresh/non-Indic state and emits ch
// verbatim, the shape every "out of matrix" key (digits aside) resolves to
// across the substitution and WYTIWYG layouts.
func emitLiteral(sess *indic.Session, ch rune) indic.EditRecord {
	sess.PrevKey = 0
	sess.PrevKeyClass = script.NonIndic
	sess.PrevCharClass = script.NonIndicChar
	return indic.EditRecord{DeleteCount: 0, Insert: []rune{ch}, FixPrevious: true}
}

// translateRemap implements the pure substitution layouts (§4.6):
// TamilNet97, Murasu6 and (by decision, see DESIGN.md) AnjalIndic. Every
// physical key is mapped to its row-letter canonical key before the
// generic transducer ever sees it, so the full TamilCanon digraph/conjunct
// machinery keeps working unmodified. The canonical key is resolved against
// TamilCanon, not TamilAnjal: these remap tables were transcribed against
// AnjalKeyMapLookup.h's RowSequence/ColumnSequence letters, and TamilCanon
// (not TamilAnjal) is what those letters index into.
func (e *Engine) translateRemap(r *tables.KeyRemap, key rune) indic.EditRecord {
	if i := indexRune(r.ConsoKeys, key); i >= 0 {
		return indic.Translate(&tables.TamilCanon, e.Session, r.ConsoAnjalKey[i])
	}
	if i := indexRune(r.VowelKeys, key); i >= 0 {
		return indic.Translate(&tables.TamilCanon, e.Session, r.VowelAnjalKey[i])
	}
	if i := indexRune(r.OMKeys, key); i >= 0 {
		return emitLiteral(e.Session, r.OMChar[i])
	}
	return indic.Translate(&tables.TamilCanon, e.Session, key)
}

// translateTamil99 adds auto-pulli and the '^' escape prefix on top of the
// substitution mechanism (§4.6).
func (e *Engine) translateTamil99(key rune) indic.EditRecord {
	prevRaw := e.t99PrevKey
	e.t99PrevKey = key

	if e.escapePending {
		e.escapePending = false
		if i := indexRune(tables.T99EscapesKey, key); i >= 0 {
			dbg.Printf("tamil99: escape %q -> %q", key, tables.T99EscapesChar[i])
			return emitLiteral(e.Session, tables.T99EscapesChar[i])
		}
		// Unrecognised escape: the '^' itself already committed below on
		// the keystroke that set escapePending, so just process key fresh.
	}
	if key == '^' {
		e.escapePending = true
		dbg.Printf("tamil99: escape prefix seen")
		return emitLiteral(e.Session, '^')
	}
	if key == 'F' {
		// Aytham (ஃ), called out explicitly in §4.6 rather than folding
		// into the generic vowel table.
		return indic.Translate(&tables.TamilCanon, e.Session, 'q')
	}

	// isAutoPulliPair matches the *raw* physical keys the host sent, so it
	// must compare against the previous raw key, not e.Session.PrevKey
	// (which after translateRemap holds the Anjal-canonical key the raw key
	// was remapped to).
	if e.Session.AutoPulliEnabled && e.isAutoPulliPair(prevRaw, key) {
		return e.applyAutoPulli(key)
	}

	return e.translateRemap(&tables.Tamil99, key)
}

// isAutoPulliPair reports whether (prevKey, key) is one of the fixed pairs
// or a consonant-key repetition that triggers Tamil99's retroactive pulli
// insertion (§4.6).
func (e *Engine) isAutoPulliPair(prevKey, key rune) bool {
	if e.Session.PrevCharClass != script.ConsonantChar || key == 'Y' {
		return false
	}
	switch [2]rune{prevKey, key} {
	case [2]rune{'b', 'h'}, [2]rune{']', '['}, [2]rune{';', 'l'},
		[2]rune{'p', 'o'}, [2]rune{'k', 'j'}, [2]rune{'i', 'u'}:
		return true
	}
	return prevKey == key && indexRune(tables.Tamil99.ConsoKeys, key) >= 0
}

// applyAutoPulli retroactively inserts a pulli on the previous consonant
// (deleting and re-emitting it with a virama) before composing key fresh,
// per the worked example in spec.md §8 scenario 3: delete = previous
// insert length, insert = <prev consonant>+virama+<new edit>.
func (e *Engine) applyAutoPulli(key rune) indic.EditRecord {
	prevBase := e.Session.CurrentBaseChar
	dbg.Printf("tamil99: auto-pulli retroactive pulli on %q before %q", prevBase, key)
	next := e.translateRemap(&tables.Tamil99, key)
	insert := make([]rune, 0, len(next.Insert)+2)
	insert = append(insert, prevBase, tables.TamilCanon.Virama)
	insert = append(insert, next.Insert...)
	return indic.EditRecord{DeleteCount: indic.PrevKsLength, Insert: insert, FixPrevious: true}
}

// IsMapped reports whether key participates in the active layout's key
// alphabet, the predicate §4.7 uses to decide composition termination: any
// key outside this set terminates the active composition. shifted governs
// Tamil99's KL;/ exception.
func (e *Engine) IsMapped(key rune, shifted bool) bool {
	layout := e.Session.Layout
	if layout == script.Tamil99 && shifted && indexRune([]rune("KL;/"), key) >= 0 {
		return true
	}
	switch layout {
	case script.Anjal:
		return keyInAnjal(key)
	case script.Tamil99:
		return key == '^' || key == 'F' ||
			indexRune(tables.Tamil99.ConsoKeys, key) >= 0 ||
			indexRune(tables.Tamil99.VowelKeys, key) >= 0 ||
			indexRune(tables.Tamil99.OMKeys, key) >= 0
	case script.TamilNet97, script.AnjalIndic:
		return keyInRemap(&tables.TamilNet97, key)
	case script.Murasu6:
		return keyInRemap(&tables.Murasu6, key)
	default:
		return keyInWytiwyg(wytiwygTableFor(layout), key)
	}
}

func keyInAnjal(key rune) bool {
	t := &tables.TamilAnjal
	return indexRune(t.C1Keys, key) >= 0 || indexRune(t.V1Keys, key) >= 0 ||
		indexRune(t.DigitKeys, key) >= 0 || key == '|' || key == t.AvagrahaKey
}

func keyInRemap(r *tables.KeyRemap, key rune) bool {
	return indexRune(r.ConsoKeys, key) >= 0 || indexRune(r.VowelKeys, key) >= 0 ||
		indexRune(r.OMKeys, key) >= 0
}

func keyInWytiwyg(t *tables.WytiwygTable, key rune) bool {
	return indexRune(t.ConsoKeys, key) >= 0 || indexRune(t.UyirKeys, key) >= 0 ||
		indexRune(t.UkaraKeys, key) >= 0 || indexRune(t.ModiKeys, key) >= 0 ||
		indexRune(t.MModiKeys, key) >= 0 || indexRune(t.OMKeys, key) >= 0
}

// ReclassifyAfterDelete implements §4.8: after a host-reported backspace
// whose new tail character is known, fold prev_key_class back to a
// coherent starting point so composition can resume.
func ReclassifyAfterDelete(sess *indic.Session, tail rune) {
	sess.PrevKey = 0
	sess.CurrentBaseChar = 0
	switch {
	case tail == 0:
		sess.PrevKeyClass = script.CharacterEnd
		sess.PrevCharClass = script.NonIndicChar
	case script.IsIndependentVowel(script.Tamil, tail):
		sess.PrevKeyClass = script.FirstVowel
		sess.PrevCharClass = script.VowelChar
	case script.IsConsonant(script.Tamil, tail):
		sess.PrevKeyClass = script.FirstConsonant
		sess.PrevCharClass = script.ConsonantChar
		sess.CurrentBaseChar = tail
	case script.IsLeftVowelSign(script.Tamil, tail):
		sess.PrevKeyClass = script.LeftHalfVowel
		sess.PrevCharClass = script.VowelChar
		sess.WytiwygLeftHalf = tail
	case script.IsDependantVowel(script.Tamil, tail):
		sess.PrevKeyClass = script.FirstVowel
		sess.PrevCharClass = script.VowelChar
	default:
		sess.PrevKeyClass = script.Fresh
		sess.PrevCharClass = script.NonIndicChar
	}
}
