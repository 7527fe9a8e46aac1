package indic

import (
	"testing"

	"github.com/murasu/sangamkb/tables"
)

func TestPositionPlainLookup(t *testing.T) {
	table := []rune{'a', 'b', 'c'}
	if got := Position('b', table, tables.NoMatch, nil, tables.NoMatch, nil); got != 1 {
		t.Fatalf("Position('b') = %d, want 1", got)
	}
	if got := Position('z', table, tables.NoMatch, nil, tables.NoMatch, nil); got != NotFound {
		t.Fatalf("Position('z') = %d, want NotFound", got)
	}
}

func TestPositionWildcardNeverMatches(t *testing.T) {
	table := []rune{'a', tables.NoMatch, 'c'}
	if got := Position(tables.NoMatch, table, tables.NoMatch, nil, tables.NoMatch, nil); got != NotFound {
		t.Fatalf("Position('*') = %d, want NotFound even against a '*' row", got)
	}
}

func TestPositionConstrainedByPrevTable(t *testing.T) {
	table := []rune{'x', 'x', 'x'}
	prevTable := []rune{'a', 'b', 'c'}
	if got := Position('x', table, 'b', prevTable, tables.NoMatch, nil); got != 1 {
		t.Fatalf("Position with prevKey 'b' = %d, want row 1", got)
	}
	if got := Position('x', table, 'z', prevTable, tables.NoMatch, nil); got != NotFound {
		t.Fatalf("Position with unmatched prevKey = %d, want NotFound", got)
	}
}
