// Package indic implements the shared Anjal-pattern transducer used by all
// seven scripts (Tamil's nine non-Anjal layouts reach it through
// sangamkb/tamil, which remaps their keys first): the generic
// lookup primitive (§4.2), the per-keystroke state dispatch (§4.3), fresh-
// session handling (§4.4) and the per-script digraph table (§4.5).
package indic

import (
	"github.com/murasu/sangamkb/script"
)

// PrevKsLength is the delete-count sentinel meaning "delete as many code
// points as the previous emission inserted" rather than a fixed count —
// used by Tamil99's auto-pulli retroactive virama insertion. The host-
// facing Engine resolves it against its own record of the previous
// insert's length before handing an EditRecord to the caller.
const PrevKsLength = -1

// EditRecord is the result of one TranslateKey call: how many trailing
// code points of the in-progress composition to delete, and what to insert
// in their place.
type EditRecord struct {
	DeleteCount int
	Insert      []rune
	FixPrevious bool
}

// Session holds all per-stream composition state (§3). It is not safe for
// concurrent use; callers serialise one keystroke at a time, same as the
// engine it is embedded in.
type Session struct {
	Script script.Script
	Layout script.TamilLayout

	PrevKey        rune
	PrevKeyClass   script.KeyClass
	PrevCharClass  script.CharClass
	FirstVowelKey  rune
	FirstConsoKey  rune
	CurrentBaseChar rune
	ContextBefore  rune
	VowelChar      rune
	LastConsoChar  rune

	// WytiwygLeftHalf buffers a left-half vowel sign typed before its base
	// consonant on a WYTIWYG layout, to be committed once the consonant
	// itself is known (§4.6). Zero means nothing is buffered.
	WytiwygLeftHalf rune

	AutoPulliEnabled bool

	// lastInsertLen lets the engine resolve PrevKsLength against the
	// length of the previous call's Insert slice.
	lastInsertLen int
}

// NewSession returns a freshly reset Session for the given script/layout.
func NewSession(sc script.Script, layout script.TamilLayout) *Session {
	s := &Session{Script: sc, Layout: layout, AutoPulliEnabled: true}
	s.Reset()
	return s
}

// Reset returns the session to its initial, pre-keystroke state (§4.7,
// and the explicit reset_session lifecycle call in §6).
func (s *Session) Reset() {
	s.PrevKey = 0
	s.PrevKeyClass = script.CharacterEnd
	s.PrevCharClass = script.NonIndicChar
	s.FirstVowelKey = 0
	s.FirstConsoKey = 0
	s.CurrentBaseChar = 0
	s.VowelChar = 0
	s.LastConsoChar = 0
	s.WytiwygLeftHalf = 0
	s.lastInsertLen = 0
}

// ResolveDelete turns a DeleteCount of PrevKsLength into the length of the
// previous emission's insert sequence; any other value passes through
// unchanged. It must be called once per keystroke, after Translate and
// before the record reaches the host.
func (s *Session) ResolveDelete(rec EditRecord) EditRecord {
	if rec.DeleteCount == PrevKsLength {
		rec.DeleteCount = s.lastInsertLen
	}
	s.lastInsertLen = len(rec.Insert)
	return rec
}
