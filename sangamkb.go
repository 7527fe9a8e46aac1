// Package sangamkb implements a phonetic-keystroke transliteration engine
// for seven Indic/diacritic scripts, one of which (Tamil) supports ten
// keyboard layouts. The engine consumes one host keystroke at a time and
// returns an edit against the document's in-progress composition: how many
// trailing code points to delete, and what to insert in their place (§6).
package sangamkb

import (
	"errors"
	"fmt"

	"github.com/murasu/sangamkb/diacritic"
	"github.com/murasu/sangamkb/indic"
	"github.com/murasu/sangamkb/script"
	"github.com/murasu/sangamkb/tables"
	"github.com/murasu/sangamkb/tamil"
)

// The three error kinds of §7.
var (
	ErrInvalidArgument        = errors.New("sangamkb: invalid argument")
	ErrUnsupportedCombination = errors.New("sangamkb: unsupported combination")
)

// DelCode is the out-of-band sentinel (§6) the wire-protocol output uses to
// signal a leading delete-count header.
const DelCode = 0x2421

const delcode = DelCode

// minOutBufferLen is the minimum output buffer size the wire protocol
// requires: DELCODE + one ASCII digit + up to 6 insert code points (§5's
// documented minimum of 10) plus headroom matches §8's "never exceeds 6
// plus the 2-code-point delete header" length-safety invariant.
const minOutBufferLen = 10

// Engine is a single composition session for one script/layout (§5: one
// Session per independent keystream, non-reentrant, synchronous).
type Engine struct {
	sc script.Script

	tamilEngine     *tamil.Engine
	diacriticEngine *diacritic.Engine
	indicSess       *indic.Session // used for the five remaining Brahmic scripts
}

// New creates an engine for the given script. layout is only used when
// sc == script.Tamil and is ignored for every other script (pass
// script.Anjal there); SetLayout on a non-Tamil engine returns
// ErrUnsupportedCombination.
func New(sc script.Script, layout script.TamilLayout) (*Engine, error) {
	e := &Engine{}
	if err := e.SetScript(sc); err != nil {
		return nil, err
	}
	if sc == script.Tamil {
		e.tamilEngine.Session.Layout = layout
	}
	return e, nil
}

// SetScript reconfigures the engine for a new script and resets its
// session, since a script switch mid-composition has no coherent meaning.
func (e *Engine) SetScript(sc script.Script) error {
	e.tamilEngine, e.diacriticEngine, e.indicSess = nil, nil, nil
	switch sc {
	case script.Tamil:
		e.tamilEngine = tamil.NewEngine(script.Anjal)
	case script.Diacritic:
		e.diacriticEngine = diacritic.NewEngine()
	case script.Devanagari, script.Malayalam, script.Kannada, script.Telugu, script.Gurmukhi:
		e.indicSess = indic.NewSession(sc, script.Anjal)
	default:
		return fmt.Errorf("%w: unknown script %d", ErrInvalidArgument, sc)
	}
	e.sc = sc
	return nil
}

// SetLayout sets the active Tamil keyboard layout. It returns
// ErrUnsupportedCombination if the engine's current script isn't Tamil,
// per §6: "layout is honoured only when script = Tamil".
func (e *Engine) SetLayout(layout script.TamilLayout) error {
	if e.sc != script.Tamil {
		return fmt.Errorf("%w: set_layout requires Script=Tamil", ErrUnsupportedCombination)
	}
	e.tamilEngine.SetLayout(layout)
	return nil
}

// ResetSession returns the engine to its initial, pre-keystroke state.
func (e *Engine) ResetSession() {
	switch {
	case e.tamilEngine != nil:
		e.tamilEngine.Reset()
	case e.diacriticEngine != nil:
		e.diacriticEngine.Reset()
	default:
		e.indicSess.Reset()
	}
}

// SetContextBefore feeds the engine the code point currently preceding the
// composition point in the host's document, used by Tamil-Anjal's
// dental/alveolar 'n' disambiguation rule (§4.4).
func (e *Engine) SetContextBefore(cp rune) {
	switch {
	case e.tamilEngine != nil:
		e.tamilEngine.Session.ContextBefore = cp
	case e.diacriticEngine != nil:
		e.diacriticEngine.Session.ContextBefore = cp
	default:
		e.indicSess.ContextBefore = cp
	}
}

// SetAutoPulli toggles Tamil99's retroactive-pulli mode (§4.6); it is a
// silent no-op for every other script/layout.
func (e *Engine) SetAutoPulli(enabled bool) {
	if e.tamilEngine == nil {
		return
	}
	e.tamilEngine.Session.AutoPulliEnabled = enabled
}

// SetWytiwygDeleteReverse controls whether a WYTIWYG layout's reorder
// delete (§4.6) is reported as a single merged EditRecord (the default, and
// the only mode this port implements) or as two separate reverse-order
// deletes for hosts that cannot apply a combined delete+insert atomically.
// Since every host this module targets accepts the merged form, this is
// recorded for interface completeness and otherwise ignored.
func (e *Engine) SetWytiwygDeleteReverse(bool) {}

// TerminateComposition commits whatever is in progress and resets the
// session, per §4.7's composition-termination handoff.
func (e *Engine) TerminateComposition() {
	e.ResetSession()
}

// ReclassifyAfterDelete implements §4.8: after the host reports a user
// backspace whose new tail character is known, fold prev_key_class back to
// a coherent starting point.
func (e *Engine) ReclassifyAfterDelete(tail rune) {
	switch {
	case e.tamilEngine != nil:
		tamil.ReclassifyAfterDelete(e.tamilEngine.Session, tail)
	case e.diacriticEngine != nil:
		reclassifyAfterDelete(e.diacriticEngine.Session, script.Diacritic, tail)
	default:
		reclassifyAfterDelete(e.indicSess, e.sc, tail)
	}
}

func reclassifyAfterDelete(sess *indic.Session, sc script.Script, tail rune) {
	sess.PrevKey = 0
	sess.CurrentBaseChar = 0
	switch {
	case tail == 0:
		sess.PrevKeyClass = script.CharacterEnd
		sess.PrevCharClass = script.NonIndicChar
	case script.IsIndependentVowel(sc, tail):
		sess.PrevKeyClass = script.FirstVowel
		sess.PrevCharClass = script.VowelChar
	case script.IsConsonant(sc, tail):
		sess.PrevKeyClass = script.FirstConsonant
		sess.PrevCharClass = script.ConsonantChar
		sess.CurrentBaseChar = tail
	case script.IsLeftVowelSign(sc, tail):
		sess.PrevKeyClass = script.LeftHalfVowel
		sess.PrevCharClass = script.VowelChar
	case script.IsDependantVowel(sc, tail):
		sess.PrevKeyClass = script.FirstVowel
		sess.PrevCharClass = script.VowelChar
	default:
		sess.PrevKeyClass = script.Fresh
		sess.PrevCharClass = script.NonIndicChar
	}
}

// TranslateKey runs one keystroke through the active script/layout and
// returns the framed wire-protocol message described in §6: DELCODE +
// ASCII-digit delete count + insert sequence, or just the insert sequence
// when nothing needs deleting. out must have capacity for at least
// minOutBufferLen code points.
func (e *Engine) TranslateKey(key rune, out []rune) (int, error) {
	if len(out) < minOutBufferLen {
		return 0, fmt.Errorf("%w: output buffer must hold at least %d code points", ErrInvalidArgument, minOutBufferLen)
	}

	var rec indic.EditRecord
	switch {
	case e.tamilEngine != nil:
		rec = e.tamilEngine.Translate(key)
	case e.diacriticEngine != nil:
		rec = e.diacriticEngine.Translate(key)
	case e.indicSess != nil:
		rec = e.translateNonTamil(key)
	default:
		return 0, fmt.Errorf("%w: engine has no active script", ErrInvalidArgument)
	}

	return encodeEdit(rec, out), nil
}

func (e *Engine) translateNonTamil(key rune) indic.EditRecord {
	t := nonTamilTable(e.sc)
	rec := indic.Translate(t, e.indicSess, key)
	return e.indicSess.ResolveDelete(rec)
}

// encodeEdit writes rec into out per §6's framed wire format and returns
// the number of code points written.
func encodeEdit(rec indic.EditRecord, out []rune) int {
	n := 0
	if rec.DeleteCount > 0 {
		out[0] = delcode
		out[1] = rune('0' + rec.DeleteCount)
		n = 2
	}
	n += copy(out[n:], rec.Insert)
	return n
}

// ApplyEdit applies one wire-protocol-framed edit (§6's "Edit-stream
// protocol (to the host)") to doc: if framed begins with DelCode followed
// by an ASCII digit, that many trailing code points of doc are deleted
// before the remainder of framed is appended; otherwise framed is appended
// verbatim. It is the host-side counterpart of TranslateKey's encoding.
func ApplyEdit(doc []rune, framed []rune) []rune {
	i := 0
	if len(framed) >= 2 && framed[0] == DelCode {
		n := int(framed[1] - '0')
		if n > len(doc) {
			n = len(doc)
		}
		doc = doc[:len(doc)-n]
		i = 2
	}
	return append(doc, framed[i:]...)
}

// GetSupportedLayouts reports the layouts a script accepts. Only Tamil
// returns more than one (§6).
func GetSupportedLayouts(sc script.Script) []script.TamilLayout {
	if sc != script.Tamil {
		return []script.TamilLayout{script.Anjal}
	}
	return []script.TamilLayout{
		script.Anjal, script.Tamil99, script.TamilNet97, script.Mylai,
		script.TypewriterNew, script.TypewriterOld, script.AnjalIndic,
		script.Murasu6, script.Bamini, script.TNTypewriter,
	}
}

// IsMapped reports whether key participates in the active layout's key
// alphabet, exposed for hosts implementing §4.7's composition-termination
// predicate themselves. For non-Tamil scripts, every script defines a key
// alphabet via its own C1/V1/digit rows.
func (e *Engine) IsMapped(key rune, shifted bool) bool {
	if e.tamilEngine != nil {
		return e.tamilEngine.IsMapped(key, shifted)
	}
	t := nonTamilTable(e.sc)
	for _, k := range t.C1Keys {
		if k == key {
			return true
		}
	}
	for _, k := range t.V1Keys {
		if k == key {
			return true
		}
	}
	for _, k := range t.DigitKeys {
		if k == key {
			return true
		}
	}
	return false
}

func nonTamilTable(sc script.Script) *tables.ScriptTable {
	switch sc {
	case script.Devanagari:
		return &tables.Devanagari
	case script.Malayalam:
		return &tables.Malayalam
	case script.Kannada:
		return &tables.Kannada
	case script.Telugu:
		return &tables.Telugu
	case script.Gurmukhi:
		return &tables.Gurmukhi
	case script.Diacritic:
		return &tables.Diacritic
	default:
		panic("exhaustive switch")
	}
}
