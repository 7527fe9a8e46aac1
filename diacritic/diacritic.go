// Package diacritic implements the seventh script: an ISO-15919-style
// roman-diacritic transliteration transducer (§4.3's generic Anjal-pattern
// state machine, simplest in practice since diacritic has no conjunct
// digraphs beyond the generic C2 aspirate mechanism and no virama to
// manage).
package diacritic

import (
	"github.com/murasu/sangamkb/indic"
	"github.com/murasu/sangamkb/script"
	"github.com/murasu/sangamkb/tables"
)

// Engine drives one diacritic composition session.
type Engine struct {
	Session *indic.Session
}

// NewEngine returns a fresh diacritic engine.
func NewEngine() *Engine {
	return &Engine{Session: indic.NewSession(script.Diacritic, script.Anjal)}
}

// Reset returns the engine to its initial state.
func (e *Engine) Reset() { e.Session.Reset() }

// Translate runs one keystroke through the diacritic table.
func (e *Engine) Translate(key rune) indic.EditRecord {
	rec := indic.Translate(&tables.Diacritic, e.Session, key)
	return e.Session.ResolveDelete(rec)
}
