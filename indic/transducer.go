package indic

import (
	"github.com/murasu/sangamkb/script"
	"github.com/murasu/sangamkb/tables"
)

// Translate runs one keystroke through the generic Anjal-pattern transducer
// (§4.3-4.5) and returns the edit it produces. It mutates sess in place to
// reflect the new composition state; callers still owe it a call to
// sess.ResolveDelete before the record reaches the host.
//
// Translate is shared by Devanagari, Malayalam, Kannada, Telugu, Gurmukhi,
// Diacritic and Tamil's Anjal layout. Tamil's other nine layouts are
// dispatched by sangamkb/tamil, which remaps their keys and then calls this
// function against tables.TamilCanon, adding its own auto-pulli and
// WYTIWYG handling around it.
func Translate(t *tables.ScriptTable, sess *Session, currKey rune) EditRecord {
	switch sess.PrevKeyClass {
	case script.FirstVowel, script.FirstVowelSign:
		return continueFirstVowel(t, sess, currKey)
	case script.SecondVowel, script.SecondVowelSign:
		return continueSecondVowel(t, sess, currKey)
	case script.FirstConsonant:
		return continueFirstConsonant(t, sess, currKey)
	case script.SecondConsonant:
		return continueSecondConsonant(t, sess, currKey)
	case script.ThirdConsonant:
		return continueThirdConsonant(t, sess, currKey)
	default:
		return startNewSession(t, sess, currKey)
	}
}

// startNewSession handles a keystroke with no live composition behind it
// (§4.4): the digit/danda/avagraha preamble, a fresh consonant (C1), a
// fresh independent vowel (V1), or — failing both — a non-Indic keystroke
// passed through unmodified.
func startNewSession(t *tables.ScriptTable, sess *Session, currKey rune) EditRecord {
	if rec, ok := preamble(t, sess, currKey); ok {
		return rec
	}

	if vpos := Position(currKey, t.C1Keys, tables.NoMatch, nil, tables.NoMatch, nil); vpos >= 0 {
		base := t.C1Char[vpos]
		// Tamil-Anjal: an 'n' that starts a word (no previous key, or a
		// space/CR/tab before it) is the dental ந, unless the host reports a
		// vowel sign or pulli (U+0B83-U+0BCD) just before the cursor.
		if t == &tables.TamilAnjal && currKey == 'n' &&
			(sess.PrevKey == ' ' || sess.PrevKey == '\r' || sess.PrevKey == '\t' ||
				(sess.PrevKey == 0 && (sess.PrevKeyClass == script.CharacterEnd || sess.PrevKeyClass == script.Fresh))) &&
			!(sess.ContextBefore >= 0x0B83 && sess.ContextBefore <= 0x0BCD) {
			base = 0x0BA8
		}
		insert := composeFreshConsonant(t, base)

		sess.CurrentBaseChar = base
		sess.FirstConsoKey = currKey
		sess.LastConsoChar = currKey
		sess.PrevKey = currKey
		sess.PrevKeyClass = script.FirstConsonant
		sess.PrevCharClass = script.ConsonantChar
		return EditRecord{DeleteCount: 0, Insert: insert, FixPrevious: true}
	}

	if vpos := Position(currKey, t.V1Keys, tables.NoMatch, nil, tables.NoMatch, nil); vpos >= 0 {
		sess.FirstVowelKey = currKey
		sess.PrevKey = currKey
		sess.PrevKeyClass = script.FirstVowel
		sess.PrevCharClass = script.VowelChar
		return EditRecord{DeleteCount: 0, Insert: []rune{t.V1Char[vpos]}, FixPrevious: true}
	}

	return passThrough(sess, currKey)
}

// preamble handles the three keystrokes that never depend on composition
// state: digits, danda/double-danda, and avagraha.
func preamble(t *tables.ScriptTable, sess *Session, currKey rune) (EditRecord, bool) {
	if vpos := Position(currKey, t.DigitKeys, tables.NoMatch, nil, tables.NoMatch, nil); vpos >= 0 {
		sess.PrevKey = currKey
		sess.PrevKeyClass = script.CharacterEnd
		sess.PrevCharClass = script.NonIndicChar
		return EditRecord{DeleteCount: 0, Insert: []rune{t.DigitChar[vpos]}, FixPrevious: true}, true
	}
	if t.HasDanda && currKey == '|' {
		deleteCount := 0
		insert := []rune{t.DandaChar}
		if sess.PrevKey == '|' && sess.PrevKeyClass == script.CharacterEnd {
			deleteCount = 1
			insert = []rune{t.DoubleDandaChar}
		}
		sess.PrevKey = currKey
		sess.PrevKeyClass = script.CharacterEnd
		sess.PrevCharClass = script.NonIndicChar
		return EditRecord{DeleteCount: deleteCount, Insert: insert, FixPrevious: true}, true
	}
	if t.AvagrahaKey != 0 && currKey == t.AvagrahaKey {
		sess.PrevKey = currKey
		sess.PrevKeyClass = script.CharacterEnd
		sess.PrevCharClass = script.NonIndicChar
		return EditRecord{DeleteCount: 0, Insert: []rune{t.AvagrahaChar}, FixPrevious: true}, true
	}
	return EditRecord{}, false
}

// composeFreshConsonant renders a C1/C2/C3 hit's base code point into the
// insert sequence for a brand-new consonant: a placeholder ligature if one
// is registered for this code point, otherwise the bare consonant plus an
// automatic virama for the auto-virama scripts.
func composeFreshConsonant(t *tables.ScriptTable, base rune) []rune {
	if expansion, ok := t.Placeholders[base]; ok {
		return append([]rune(nil), expansion...)
	}
	if t.AutoVirama {
		return []rune{base, t.Virama}
	}
	return []rune{base}
}

// passThrough is reached when currKey matched none of a script's tables:
// it is forwarded as plain text and terminates any composition in flight.
func passThrough(sess *Session, currKey rune) EditRecord {
	sess.PrevKey = currKey
	sess.PrevKeyClass = script.NonIndic
	sess.PrevCharClass = script.NonIndicChar
	return EditRecord{DeleteCount: 0, Insert: []rune{currKey}, FixPrevious: true}
}

// continueFirstVowel handles a keystroke following a first vowel or first
// vowel sign (§4.3): the Devanagari/Gurmukhi nukta qq fusion, the V2/VS2
// lookup, a same-state independent-vowel overwrite, or a fresh session.
func continueFirstVowel(t *tables.ScriptTable, sess *Session, currKey rune) EditRecord {
	if len(t.NuktaBase) > 0 && sess.PrevKey == 'q' && currKey == 'q' {
		for i, base := range t.NuktaBase {
			if sess.CurrentBaseChar == base {
				sess.PrevKey = currKey
				sess.PrevKeyClass = script.SecondVowel
				sess.PrevCharClass = script.ConsonantChar
				return EditRecord{DeleteCount: 2, Insert: []rune{t.NuktaForm[i]}, FixPrevious: true}
			}
		}
	}

	if vpos := Position(currKey, t.V2Keys, sess.PrevKey, t.V1Keys, tables.NoMatch, nil); vpos >= 0 {
		isVowelSign := sess.PrevKeyClass == script.FirstVowelSign
		var ch rune
		if isVowelSign {
			ch = t.VS2Char[vpos]
		} else {
			ch = t.V2Char[vpos]
		}

		deleteCount := 1
		// An 'a' typed after a consonant emitted no visible sign, so a
		// second 'a' there (the aa sign) has nothing trailing to delete.
		// An 'i' or 'u' after any 'a' key (the ai/au forms) also deletes
		// nothing, whether that 'a' was a sign or an independent vowel.
		if currKey == 'a' && isVowelSign {
			deleteCount = 0
		}
		if sess.PrevKey == 'a' && (currKey == 'i' || currKey == 'u') {
			deleteCount = 0
		}

		cls := script.SecondVowel
		if isVowelSign {
			cls = script.SecondVowelSign
		}
		sess.PrevKey = currKey
		sess.PrevKeyClass = cls
		sess.PrevCharClass = script.VowelChar

		insert := []rune{ch}
		if ch == 0x0008 {
			insert = nil
		}
		return EditRecord{DeleteCount: deleteCount, Insert: insert, FixPrevious: true}
	}

	// A second independent-vowel key (not a vowel sign continuation)
	// overwrites the vowel just emitted instead of starting fresh.
	if sess.PrevKeyClass == script.FirstVowel {
		if vpos := Position(currKey, t.V1Keys, tables.NoMatch, nil, tables.NoMatch, nil); vpos >= 0 {
			sess.FirstVowelKey = currKey
			sess.PrevKey = currKey
			sess.PrevKeyClass = script.FirstVowel
			sess.PrevCharClass = script.VowelChar
			return EditRecord{DeleteCount: 1, Insert: []rune{t.V1Char[vpos]}, FixPrevious: true}
		}
	}

	return startNewSession(t, sess, currKey)
}

// continueSecondVowel handles the rare third vowel-sign stage (§4.3), e.g.
// Devanagari's "e,e,e" and "o,o,o" producing the short ऎ/ऒ forms, or
// "q,q,q" producing the chandrabindu.
func continueSecondVowel(t *tables.ScriptTable, sess *Session, currKey rune) EditRecord {
	if vpos := Position(currKey, t.V3Keys, sess.PrevKey, t.V2Keys, sess.FirstVowelKey, t.V1Keys); vpos >= 0 {
		isVowelSign := sess.PrevKeyClass == script.SecondVowelSign
		var ch rune
		if isVowelSign {
			ch = t.VS3Char[vpos]
		} else {
			ch = t.V3Char[vpos]
		}

		cls := script.CharacterEnd
		sess.PrevKey = currKey
		sess.PrevKeyClass = cls
		sess.PrevCharClass = script.VowelChar

		insert := []rune{ch}
		if ch == 0x0008 {
			insert = nil
		}
		return EditRecord{DeleteCount: 1, Insert: insert, FixPrevious: true}
	}

	return startNewSession(t, sess, currKey)
}

// continueFirstConsonant handles a keystroke following a bare (or, for
// auto-virama scripts, auto-virama-terminated) first consonant: digraphs,
// a second consonant (C2), or a vowel sign that resolves the pending
// consonant into a full akshara.
func continueFirstConsonant(t *tables.ScriptTable, sess *Session, currKey rune) EditRecord {
	for _, d := range t.Digraphs {
		if d.PrevKey != sess.PrevKey || d.CurrKey != currKey {
			continue
		}
		sess.PrevKey = currKey
		sess.PrevCharClass = script.ConsonantChar
		if d.StayInFirstConso {
			sess.PrevKeyClass = script.FirstConsonant
		} else {
			sess.PrevKeyClass = script.SecondConsonant
		}
		return EditRecord{DeleteCount: d.DeleteCount, Insert: append([]rune(nil), d.Insert...), FixPrevious: true}
	}

	if vpos := Position(currKey, t.C2Keys, sess.PrevKey, t.C1Keys, tables.NoMatch, nil); vpos >= 0 {
		base := t.C2Char[vpos]
		deleteCount := 1
		if t.AutoVirama {
			deleteCount = 2
		}

		expansion, isPlaceholder := t.Placeholders[base]
		var insert []rune
		switch {
		case t.C2Expansion != nil && t.C2Expansion[vpos] != nil:
			insert = append([]rune(nil), t.C2Expansion[vpos]...)
		case isPlaceholder:
			insert = append([]rune(nil), expansion...)
		case t.BareC2Key != 0 && currKey == t.BareC2Key:
			insert = []rune{base}
		case t.AutoVirama:
			insert = []rune{base, t.Virama}
		default:
			insert = []rune{base}
		}

		sess.CurrentBaseChar = base
		sess.LastConsoChar = currKey
		sess.PrevKey = currKey
		sess.PrevKeyClass = script.SecondConsonant
		sess.PrevCharClass = script.ConsonantChar
		return EditRecord{DeleteCount: deleteCount, Insert: insert, FixPrevious: true}
	}

	if vpos := Position(currKey, t.V1Keys, tables.NoMatch, nil, tables.NoMatch, nil); vpos >= 0 {
		return resolveConsonantVowelSign(t, sess, currKey, vpos, t.VS1Char[vpos], script.FirstVowelSign)
	}

	return startNewSession(t, sess, currKey)
}

// continueSecondConsonant mirrors continueFirstConsonant one stage deeper
// (§4.3): second-consonant digraphs gated on the cluster's first key, a
// third consonant (C3), or the vowel sign that resolves the cluster.
func continueSecondConsonant(t *tables.ScriptTable, sess *Session, currKey rune) EditRecord {
	for _, d := range t.SecondDigraphs {
		if d.PrevKey != sess.PrevKey || d.CurrKey != currKey {
			continue
		}
		if d.RequireFirstConso != 0 && d.RequireFirstConso != sess.FirstConsoKey {
			continue
		}
		sess.PrevKey = currKey
		sess.PrevKeyClass = script.SecondConsonant
		sess.PrevCharClass = script.ConsonantChar
		return EditRecord{DeleteCount: d.DeleteCount, Insert: append([]rune(nil), d.Insert...), FixPrevious: true}
	}

	if vpos := Position(currKey, t.C3Keys, sess.PrevKey, t.C2Keys, sess.FirstConsoKey, t.C1Keys); vpos >= 0 {
		base := t.C3Char[vpos]
		deleteCount := 1
		if t.AutoVirama {
			deleteCount = 2
		}

		expansion, isPlaceholder := t.Placeholders[base]
		var insert []rune
		switch {
		case t.C3Expansion != nil && t.C3Expansion[vpos] != nil:
			insert = append([]rune(nil), t.C3Expansion[vpos]...)
		case isPlaceholder:
			insert = append([]rune(nil), expansion...)
		case t.AutoVirama:
			insert = []rune{base, t.Virama}
		default:
			insert = []rune{base}
		}

		sess.CurrentBaseChar = base
		sess.LastConsoChar = currKey
		sess.PrevKey = currKey
		sess.PrevKeyClass = script.ThirdConsonant
		sess.PrevCharClass = script.ConsonantChar
		return EditRecord{DeleteCount: deleteCount, Insert: insert, FixPrevious: true}
	}

	if vpos := Position(currKey, t.V1Keys, tables.NoMatch, nil, tables.NoMatch, nil); vpos >= 0 {
		return resolveConsonantVowelSign(t, sess, currKey, vpos, t.VS1Char[vpos], script.FirstVowelSign)
	}

	return startNewSession(t, sess, currKey)
}

// continueThirdConsonant handles the one further keystroke a cluster of
// three consonants can take: the vowel sign that finally resolves it. No
// script in this table has a fourth consonant stage.
func continueThirdConsonant(t *tables.ScriptTable, sess *Session, currKey rune) EditRecord {
	if vpos := Position(currKey, t.V1Keys, tables.NoMatch, nil, tables.NoMatch, nil); vpos >= 0 {
		return resolveConsonantVowelSign(t, sess, currKey, vpos, t.VS1Char[vpos], script.FirstVowelSign)
	}
	return startNewSession(t, sess, currKey)
}

// resolveConsonantVowelSign implements the shared "vowel key following any
// pending consonant" rule (§4.3, confirmed against IndicTamilAnjalKeymap.c's
// FIRST_CONSO_KEYTYPE branch): it deletes the auto-virama if the script
// appends one, and inserts the vowel sign unless it is the bare 'a'/akaram
// row (VS1Char's sentinel 0x0008), which needs no visible mark at all.
func resolveConsonantVowelSign(t *tables.ScriptTable, sess *Session, currKey rune, vpos int, sign rune, cls script.KeyClass) EditRecord {
	deleteCount := 0
	if t.AutoVirama {
		deleteCount = 1
	}

	var insert []rune
	if sign != 0x0008 {
		insert = []rune{sign}
	}

	sess.PrevKey = currKey
	sess.PrevKeyClass = cls
	sess.PrevCharClass = script.VowelChar
	return EditRecord{DeleteCount: deleteCount, Insert: insert, FixPrevious: true}
}
