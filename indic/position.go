package indic

import "github.com/murasu/sangamkb/tables"

// NotFound is returned by Position when key has no matching row.
const NotFound = -1

// Position implements the generic lookup primitive of §4.2: find the row
// in table whose key equals key, optionally constrained to rows whose
// parallel prevTable/firstTable entry matches prevKey/firstKey. A '*'
// entry in any table is a wildcard that never participates in a match,
// even when the query key is itself '*'. Ties are broken by the lowest
// matching row index.
func Position(key rune, table []rune, prevKey rune, prevTable []rune, firstKey rune, firstTable []rune) int {
	if key == tables.NoMatch {
		return NotFound
	}
	for i, k := range table {
		if k == tables.NoMatch || k != key {
			continue
		}
		if prevTable != nil {
			if i >= len(prevTable) || prevTable[i] == tables.NoMatch || prevTable[i] != prevKey {
				continue
			}
		}
		if firstTable != nil {
			if i >= len(firstTable) || firstTable[i] == tables.NoMatch || firstTable[i] != firstKey {
				continue
			}
		}
		return i
	}
	return NotFound
}
