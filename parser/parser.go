/*
File    : pico8ls-core/parser/parser.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/

// Package parser implements a recursive-descent parser, with Pratt-style
// (precedence-climbing) expression parsing, for the PICO-8 dialect. It
// consumes tokens from the lexer and emits an *ast.Chunk, collecting
// diag.ParseErrors along the way instead of aborting on the first one: the
// parser synchronizes at the next statement boundary and keeps going so the
// caller always gets a best-effort tree.
package parser

import (
	"github.com/akashmaji946/pico8ls-core/ast"
	"github.com/akashmaji946/pico8ls-core/diag"
	"github.com/akashmaji946/pico8ls-core/lexer"
)

// Parser holds the current token and accumulated diagnostics for a single
// parse of one document. It keeps one token of its own lookahead (curr);
// anywhere it needs a second token of lookahead it asks the lexer's own
// non-destructive Peek directly, rather than buffering a second token itself.
// That matters around the PICO-8 one-line if/while forms: the decision to
// enter one-line mode toggles lexer.NewlineSignificant mid-statement, and a
// second parser-buffered token would already have been scanned under the
// stale setting.
type Parser struct {
	lex *lexer.Lexer

	curr lexer.Token

	Errors []diag.ParseError
}

// New creates a Parser over src and primes its lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.advance()
	return p
}

// Parse runs the full recursive-descent parse and returns the resulting
// Chunk. Errors accumulated during lexing are merged into p.Errors.
func (p *Parser) Parse() *ast.Chunk {
	start := p.curr.Bounds.Start
	body := p.parseStatementList(isChunkEnd)
	end := p.curr.Bounds.Start
	p.Errors = append(p.Errors, p.lex.Errors...)
	return &ast.Chunk{Body: body, Base: ast.NewBase(lexer.Bounds{Start: start, End: end})}
}

func (p *Parser) advance() {
	p.curr = p.lex.Next()
}

func (p *Parser) addError(kind diag.Kind, msg string, bounds lexer.Bounds) {
	p.Errors = append(p.Errors, diag.ParseError{Kind: kind, Message: msg, Bounds: bounds})
}

// expect asserts the current token is a keyword/punctuator with the given
// literal value and advances past it, recording a ParseError and NOT
// advancing otherwise. It returns whether the expectation held.
func (p *Parser) expect(value string) bool {
	if p.curr.Is(value) {
		p.advance()
		return true
	}
	p.addError(diag.KindUnexpectedToken, "expected '"+value+"', got '"+p.curr.Value+"'", p.curr.Bounds)
	return false
}

func isChunkEnd(t lexer.Token) bool {
	return t.Kind == lexer.TokenEOF
}

// isBlockEnd reports whether t closes the statement list of a
// do/if/while/for/function body without being consumed by it.
func isBlockEnd(t lexer.Token) bool {
	if t.Kind == lexer.TokenEOF {
		return true
	}
	switch t.Value {
	case "end", "else", "elseif", "until":
		return t.Kind == lexer.TokenKeyword
	}
	return false
}

// parseStatementList parses statements until the stop predicate matches the
// current token, skipping stray newlines and semicolons between them.
func (p *Parser) parseStatementList(stop func(lexer.Token) bool) []ast.Statement {
	var stmts []ast.Statement
	for !stop(p.curr) {
		if p.curr.Kind == lexer.TokenNewline || p.curr.Is(";") {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// synchronize discards tokens after a parse error until a statement
// boundary is reached: a newline, a block terminator, or a statement-
// starting keyword. This is the parser's sole recovery strategy.
func (p *Parser) synchronize() {
	sig := p.lex.NewlineSignificant
	p.lex.NewlineSignificant = true
	defer func() { p.lex.NewlineSignificant = sig }()
	for {
		if p.curr.Kind == lexer.TokenEOF {
			return
		}
		if p.curr.Kind == lexer.TokenNewline || p.curr.Is(";") {
			p.advance()
			return
		}
		if isBlockEnd(p.curr) {
			return
		}
		if p.curr.Kind == lexer.TokenKeyword && isStatementStart(p.curr.Value) {
			return
		}
		p.advance()
	}
}

func isStatementStart(kw string) bool {
	switch kw {
	case "local", "if", "while", "repeat", "for", "function", "return",
		"break", "goto", "do":
		return true
	}
	return false
}
