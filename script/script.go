// Package script defines the closed set of scripts, Tamil keyboard layouts,
// and per-keystroke/per-character classifications shared by the rest of
// sangamkb.
package script

// Script identifies the writing system a Session is composing for.
type Script int

const (
	Tamil Script = iota
	Devanagari
	Malayalam
	Kannada
	Telugu
	Gurmukhi
	Diacritic
)

func (s Script) String() string {
	switch s {
	case Tamil:
		return "Tamil"
	case Devanagari:
		return "Devanagari"
	case Malayalam:
		return "Malayalam"
	case Kannada:
		return "Kannada"
	case Telugu:
		return "Telugu"
	case Gurmukhi:
		return "Gurmukhi"
	case Diacritic:
		return "Diacritic"
	default:
		panic("exhaustive switch")
	}
}

// TamilLayout identifies one of the ten Tamil keyboard layouts. It is
// meaningless for any Script other than Tamil.
type TamilLayout int

const (
	Anjal TamilLayout = iota
	Tamil99
	TamilNet97
	Mylai
	TypewriterNew
	TypewriterOld
	AnjalIndic
	Murasu6
	Bamini
	TNTypewriter
)

func (l TamilLayout) String() string {
	switch l {
	case Anjal:
		return "Anjal"
	case Tamil99:
		return "Tamil99"
	case TamilNet97:
		return "TamilNet97"
	case Mylai:
		return "Mylai"
	case TypewriterNew:
		return "TypewriterNew"
	case TypewriterOld:
		return "TypewriterOld"
	case AnjalIndic:
		return "AnjalIndic"
	case Murasu6:
		return "Murasu6"
	case Bamini:
		return "Bamini"
	case TNTypewriter:
		return "TNTypewriter"
	default:
		panic("exhaustive switch")
	}
}

// IsWytiwyg reports whether a left-half vowel sign is typed before the base
// consonant but must be committed after it (§4.6).
func (l TamilLayout) IsWytiwyg() bool {
	switch l {
	case Mylai, TypewriterNew, TypewriterOld, Bamini, TNTypewriter:
		return true
	default:
		return false
	}
}

// KeyClass is the role the previous keystroke played in the composition,
// carried in Session.PrevKeyClass between calls.
type KeyClass int

const (
	Fresh KeyClass = iota
	FirstVowel
	SecondVowel
	FirstConsonant
	SecondConsonant
	ThirdConsonant
	FirstVowelSign
	SecondVowelSign
	ThirdVowelSign
	DeadKey
	LeftHalfVowel
	PrecomposedConsonant
	WhiteSpace
	CharacterEnd
	NonIndic
)

// CharClass is the coarse character type of the most recently committed
// output, read by Tamil99's auto-pulli check and set by post-backspace
// reclassification (§4.8).
type CharClass int

const (
	NonIndicChar CharClass = iota
	ConsonantChar
	VowelChar
)
