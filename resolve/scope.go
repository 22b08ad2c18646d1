/*
File    : pico8ls-core/resolve/scope.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/

// Package resolve builds the scope tree and definition-usage index: a
// second AST walk, after symbol extraction, that assigns every identifier
// use a Definition, creating an implicit global on first write, and records
// a bidirectional index from source position back to a name's declaration
// and every usage.
package resolve

import "github.com/akashmaji946/pico8ls-core/lexer"

// DefinitionKind distinguishes how a name came to be bound.
type DefinitionKind string

const (
	DefLocal     DefinitionKind = "Local"
	DefParameter DefinitionKind = "Parameter"
	DefSelf      DefinitionKind = "Self"
	DefFunction  DefinitionKind = "Function"
	DefGlobal    DefinitionKind = "Global"
)

// Definition is the binding site of a name. ID is a stable, arena-style
// handle: the scope tree owns the Definition itself, while the DefUseIndex
// only ever refers to it by ID, so neither structure holds an owning
// pointer into the other.
type Definition struct {
	ID      int
	Name    string
	Kind    DefinitionKind
	Bounds  lexer.Bounds
	ScopeID int
}

// Scope is one lexical region of the scope tree: a chunk, a function body,
// a do block, an if/elseif/else clause body, or a while/repeat/for body.
// Its bounds are those of the syntactic construct that opened it, and it
// strictly contains the bounds of every child scope.
type Scope struct {
	ID       int
	Bounds   lexer.Bounds
	Parent   *Scope
	Locals   map[string]*Definition
	Children []*Scope
}

func newScope(id int, bounds lexer.Bounds, parent *Scope) *Scope {
	s := &Scope{ID: id, Bounds: bounds, Parent: parent, Locals: make(map[string]*Definition)}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}
	return s
}

// LookUp searches this scope and its ancestors for a binding named name,
// walking outward the same way lexical lookup does at runtime: the nearest
// enclosing declaration wins.
func (s *Scope) LookUp(name string) (*Definition, *Scope) {
	if def, ok := s.Locals[name]; ok {
		return def, s
	}
	if s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return nil, nil
}

// Bind introduces def as a local of this scope only, shadowing (rather than
// replacing) any binding of the same name in an ancestor scope.
func (s *Scope) Bind(def *Definition) {
	def.ScopeID = s.ID
	s.Locals[def.Name] = def
}

// Contains reports whether pos falls within this scope's bounds.
func (s *Scope) Contains(pos lexer.Position) bool {
	return s.Bounds.Contains(pos)
}

// LookupScopeFor returns the innermost scope in this scope's subtree whose
// bounds contain pos, defaulting to this scope itself if no child matches.
func (s *Scope) LookupScopeFor(pos lexer.Position) *Scope {
	for _, child := range s.Children {
		if child.Contains(pos) {
			return child.LookupScopeFor(pos)
		}
	}
	return s
}

// AllSymbols returns every Definition visible from this scope: its own
// locals plus everything visible in its ancestors, innermost first. This is
// the set an identifier-completion host would offer at this scope.
func (s *Scope) AllSymbols() []*Definition {
	var out []*Definition
	seen := make(map[string]bool)
	for sc := s; sc != nil; sc = sc.Parent {
		for name, def := range sc.Locals {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, def)
		}
	}
	return out
}
