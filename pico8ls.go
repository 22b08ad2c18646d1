/*
File    : pico8ls-core/pico8ls.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/

// Package pico8ls is the module's single exported entry point: Parse wires
// the lexer, parser, symbol extractor, and scope/definition-usage resolver
// in dependency order and returns a complete, owned ParseResult. It is a
// pure function of its input text, holds no package-level mutable state,
// and may be called concurrently for independent documents.
package pico8ls

import (
	"github.com/akashmaji946/pico8ls-core/ast"
	"github.com/akashmaji946/pico8ls-core/diag"
	"github.com/akashmaji946/pico8ls-core/parser"
	"github.com/akashmaji946/pico8ls-core/resolve"
	"github.com/akashmaji946/pico8ls-core/symbols"
)

// ParseResult is everything one Parse call produces: the AST, every error
// and warning accumulated along the way, the document outline, the
// definition-usage index, and the root of the scope tree.
type ParseResult struct {
	AST      *ast.Chunk
	Errors   []diag.ParseError
	Warnings []diag.Warning
	Symbols  []*symbols.CodeSymbol
	Index    *resolve.DefUseIndex
	Scopes   *resolve.Scope
}

// Parse runs the full pipeline over text: lex, parse, extract the outline,
// then resolve scopes and definitions/usages. Syntax errors never abort the
// pipeline; a document with ParseErrors still yields a best-effort AST and
// downstream symbols, index, and scope tree built from whatever the parser
// managed to recover.
func Parse(text string) *ParseResult {
	p := parser.New(text)
	chunk := p.Parse()

	outline := symbols.Extract(chunk)
	resolved := resolve.Resolve(chunk)

	return &ParseResult{
		AST:      chunk,
		Errors:   p.Errors,
		Warnings: resolved.Warnings,
		Symbols:  outline,
		Index:    resolved.Index,
		Scopes:   resolved.Root,
	}
}
