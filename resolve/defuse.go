/*
File    : pico8ls-core/resolve/defuse.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package resolve

import (
	"sort"

	"github.com/akashmaji946/pico8ls-core/lexer"
)

// DefinitionsUsages is the union of a single Definition's declaration bounds
// and every usage site recorded for it, returned by DefUseIndex.Lookup.
type DefinitionsUsages struct {
	Definitions []lexer.Bounds
	Usages      []lexer.Bounds
}

type indexEntry struct {
	bounds lexer.Bounds
	defID  int
}

// DefUseIndex is a positional lookup from (line, column) to the complete
// set of declaration and usage bounds for whatever name occupies that
// position. Entries are kept sorted by starting line/column and looked up
// by binary search; it does not hold Definition pointers, only their arena
// IDs, so it never owns a reference into the scope tree.
type DefUseIndex struct {
	byID    map[int]*DefinitionsUsages
	entries []indexEntry
	sorted  bool
}

func newDefUseIndex() *DefUseIndex {
	return &DefUseIndex{byID: make(map[int]*DefinitionsUsages)}
}

func (idx *DefUseIndex) entryFor(def *Definition) *DefinitionsUsages {
	du, ok := idx.byID[def.ID]
	if !ok {
		du = &DefinitionsUsages{}
		idx.byID[def.ID] = du
	}
	return du
}

func (idx *DefUseIndex) recordDecl(def *Definition) {
	du := idx.entryFor(def)
	du.Definitions = append(du.Definitions, def.Bounds)
	idx.entries = append(idx.entries, indexEntry{bounds: def.Bounds, defID: def.ID})
	idx.sorted = false
}

func (idx *DefUseIndex) recordUse(def *Definition, bounds lexer.Bounds) {
	du := idx.entryFor(def)
	du.Usages = append(du.Usages, bounds)
	idx.entries = append(idx.entries, indexEntry{bounds: bounds, defID: def.ID})
	idx.sorted = false
}

func (idx *DefUseIndex) ensureSorted() {
	if idx.sorted {
		return
	}
	sort.Slice(idx.entries, func(i, j int) bool {
		return lineColLess(idx.entries[i].bounds.Start, idx.entries[j].bounds.Start)
	})
	idx.sorted = true
}

func lineColLess(a, b lexer.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// Lookup returns the DefinitionsUsages for whatever name's declaration or
// usage bounds contain (line, column), or nil if no entry matches. Entries
// are kept sorted by start position so a binary search finds the first
// candidate whose start is at or before pos; since bounds never overlap
// across distinct names, a short backward scan from there is enough to find
// the (at most one) entry actually containing it.
func (idx *DefUseIndex) Lookup(line, column int) *DefinitionsUsages {
	idx.ensureSorted()
	pos := lexer.Position{Line: line, Column: column}
	i := sort.Search(len(idx.entries), func(i int) bool {
		return lineColLess(pos, idx.entries[i].bounds.Start)
	})
	for j := i - 1; j >= 0; j-- {
		if containsLineCol(idx.entries[j].bounds, line, column) {
			return idx.byID[idx.entries[j].defID]
		}
	}
	return nil
}

func containsLineCol(b lexer.Bounds, line, column int) bool {
	pos := lexer.Position{Line: line, Column: column}
	if lineColLess(pos, b.Start) {
		return false
	}
	return lineColLess(pos, b.End)
}
