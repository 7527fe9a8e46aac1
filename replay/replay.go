// Package replay adapts an Engine to golang.org/x/text/transform, letting a
// full keystroke string be replayed through a session in one call — useful
// for batch re-composition (e.g. replaying a saved phonetic-input log) and
// for composing with the rest of the x/text pipeline (normalisation,
// encoding conversion).
package replay

import (
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/murasu/sangamkb"
)

// Transformer replays each rune of its input through an *sangamkb.Engine as
// a keystroke and writes the resulting composed document to its output.
//
// Because a single keystroke's edit can delete code points already
// produced by an earlier one, Transform cannot commit output
// incrementally; it buffers the running document internally and only
// writes to dst once the full input has been seen (atEOF), using
// transform.ErrShortSrc to ask its caller for the rest in the meantime —
// the same pattern golang.org/x/text/transform's own composing
// transformers use when a later rune can change an earlier one.
type Transformer struct {
	engine *sangamkb.Engine
	doc    []rune
}

// New returns a Transformer that drives engine. The caller owns engine's
// script/layout configuration; New does not reset it.
func New(engine *sangamkb.Engine) *Transformer {
	return &Transformer{engine: engine}
}

// Reset implements transform.Transformer.
func (t *Transformer) Reset() {
	t.engine.ResetSession()
	t.doc = t.doc[:0]
}

// Transform implements transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	out := make([]rune, 10)
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			nSrc += size
			continue
		}
		n, tErr := t.engine.TranslateKey(r, out)
		if tErr != nil {
			return nDst, nSrc, tErr
		}
		t.doc = sangamkb.ApplyEdit(t.doc, out[:n])
		nSrc += size
	}
	if !atEOF {
		return nDst, nSrc, transform.ErrShortSrc
	}

	buf := make([]byte, utf8.UTFMax)
	for _, r := range t.doc {
		sz := utf8.EncodeRune(buf, r)
		if nDst+sz > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], buf[:sz])
		nDst += sz
	}
	t.doc = t.doc[:0]
	return nDst, nSrc, nil
}
