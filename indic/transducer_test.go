package indic

import (
	"reflect"
	"testing"

	"github.com/murasu/sangamkb/tables"
)

func replay(t *testing.T, table *tables.ScriptTable, sess *Session, keys []rune) []EditRecord {
	t.Helper()
	recs := make([]EditRecord, len(keys))
	for i, k := range keys {
		recs[i] = sess.ResolveDelete(Translate(table, sess, k))
	}
	return recs
}

func document(recs []EditRecord) []rune {
	var doc []rune
	for _, r := range recs {
		n := r.DeleteCount
		if n > len(doc) {
			n = len(doc)
		}
		doc = doc[:len(doc)-n]
		doc = append(doc, r.Insert...)
	}
	return doc
}

func TestTamilAnjalKA(t *testing.T) {
	sess := NewSession(tables.TamilAnjal.Script, 0)
	recs := replay(t, &tables.TamilAnjal, sess, []rune{'k', 'a'})

	if recs[0].DeleteCount != 0 || !reflect.DeepEqual(recs[0].Insert, []rune{0x0B95, 0x0BCD}) {
		t.Fatalf("first edit = %+v", recs[0])
	}
	if recs[1].DeleteCount != 1 || len(recs[1].Insert) != 0 {
		t.Fatalf("second edit = %+v, want delete 1 (the pulli) and an empty insert", recs[1])
	}
	if got := document(recs); !reflect.DeepEqual(got, []rune{0x0B95}) {
		t.Fatalf("final document = %q, want க", string(got))
	}
}

func TestTamilAnjalNDDigraph(t *testing.T) {
	sess := NewSession(tables.TamilAnjal.Script, 0)
	recs := replay(t, &tables.TamilAnjal, sess, []rune{'n', 'd'})

	if recs[0].DeleteCount != 0 || !reflect.DeepEqual(recs[0].Insert, []rune{0x0BA8, 0x0BCD}) {
		t.Fatalf("first edit = %+v, want fresh dental-n", recs[0])
	}
	if recs[1].DeleteCount != 2 || !reflect.DeepEqual(recs[1].Insert, []rune{0x0BA3, 0x0BCD, 0x0B9F, 0x0BCD}) {
		t.Fatalf("second edit (nd digraph) = %+v", recs[1])
	}
}

func TestDevanagariNuktaFusion(t *testing.T) {
	sess := NewSession(tables.Devanagari.Script, 0)
	recs := replay(t, &tables.Devanagari, sess, []rune{'k', 'q', 'q'})

	if len(recs) != 3 {
		t.Fatalf("got %d edits, want 3", len(recs))
	}
	if !reflect.DeepEqual(recs[2].Insert, []rune{0x0958}) {
		t.Fatalf("qq fusion = %+v, want क़ (U+0958)", recs[2])
	}
	if recs[2].DeleteCount != 2 {
		t.Fatalf("qq fusion delete = %d, want 2", recs[2].DeleteCount)
	}
}

func TestMalayalamRRSpecial(t *testing.T) {
	sess := NewSession(tables.Malayalam.Script, 0)
	recs := replay(t, &tables.Malayalam, sess, []rune{'r', 'r'})

	if !reflect.DeepEqual(recs[0].Insert, []rune{0x0D30, 0x0D4D}) {
		t.Fatalf("first edit = %+v, want ര்", recs[0])
	}
	if recs[1].DeleteCount != 2 || !reflect.DeepEqual(recs[1].Insert, []rune{0x0D31, 0x0D4D, 0x0D31, 0x0D4D}) {
		t.Fatalf("rr special = %+v, want delete 2 insert റ்റ்", recs[1])
	}
}

func TestResolveDeletePrevKsLength(t *testing.T) {
	sess := NewSession(tables.TamilAnjal.Script, 0)
	rec := sess.ResolveDelete(EditRecord{DeleteCount: 0, Insert: []rune{'a', 'b', 'c'}})
	if rec.DeleteCount != 0 {
		t.Fatalf("first call delete = %d, want 0", rec.DeleteCount)
	}
	rec = sess.ResolveDelete(EditRecord{DeleteCount: PrevKsLength, Insert: []rune{'x'}})
	if rec.DeleteCount != 3 {
		t.Fatalf("PrevKsLength resolved to %d, want 3 (length of previous insert)", rec.DeleteCount)
	}
}
