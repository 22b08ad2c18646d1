/*
File    : pico8ls-core/parser/parser_pico8.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/

// This file holds the PICO-8-specific one-line if/while shorthand: `if (cond)
// stmt [else stmt]` and `while (cond) stmt`, neither of which uses an `end`
// keyword. Both forms are recognized only after their condition has already
// been parsed by parseIfStatement/parseWhileStatement, by checking whether
// the expected `then`/`do` keyword follows on the same source line as the
// condition. If it doesn't, the rest of that line is the statement's body.
package parser

import (
	"github.com/akashmaji946/pico8ls-core/ast"
	"github.com/akashmaji946/pico8ls-core/lexer"
)

// thenFollowsOnSameLine reports whether the current token is `then` and
// starts on the same line condStart was parsed from. A `then` on a later
// line is not accepted: the statement is then parsed as the PICO-8 one-line
// form, so a parenthesized condition with `then` on the next line does not
// parse as a standard multi-line if.
func (p *Parser) thenFollowsOnSameLine(condStart lexer.Position) bool {
	return p.curr.Is("then") && p.curr.Bounds.Start.Line == condStart.Line
}

func (p *Parser) doFollowsOnSameLine(condStart lexer.Position) bool {
	return p.curr.Is("do") && p.curr.Bounds.Start.Line == condStart.Line
}

// parseOneLineIf parses the body (and optional same-line `else`) of a
// PICO-8 one-line if, given that its condition has already been parsed and
// found not to be followed by `then` on the same line.
//
// NewlineSignificant is set for the duration of the body so the first
// newline terminates it cleanly: without this, a statement like a bare
// `return` would otherwise read past the line break and swallow the next
// source line as if it were part of the same statement.
func (p *Parser) parseOneLineIf(start lexer.Position, cond ast.Expression) ast.Statement {
	clauseStart := start
	var clauses []ast.Clause

	p.lex.NewlineSignificant = true
	defer func() { p.lex.NewlineSignificant = false }()

	body := p.parseStatementList(isOneLineBodyEnd)
	clauseEnd := p.curr.Bounds.Start
	clauses = append(clauses, ast.Clause{Kind: ast.IfClauseKind, Condition: cond, Body: body, Bounds: lexer.Bounds{Start: clauseStart, End: clauseEnd}})

	end := clauseEnd
	if p.curr.Is("else") {
		elseStart := p.curr.Bounds.Start
		p.advance()
		elseBody := p.parseStatementList(isOneLineBodyEnd)
		end = p.curr.Bounds.Start
		clauses = append(clauses, ast.Clause{Kind: ast.ElseClauseKind, Body: elseBody, Bounds: lexer.Bounds{Start: elseStart, End: end}})
	}
	if len(body) > 0 {
		end = body[len(body)-1].Bounds().End
	}
	if len(clauses) > 1 && len(clauses[1].Body) > 0 {
		end = clauses[1].Body[len(clauses[1].Body)-1].Bounds().End
	}

	return &ast.IfStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Clauses: clauses, OneLine: true}
}

// parseOneLineWhile parses the body of a PICO-8 one-line while, following
// the same newline-termination rule as parseOneLineIf.
func (p *Parser) parseOneLineWhile(start lexer.Position, cond ast.Expression) ast.Statement {
	p.lex.NewlineSignificant = true
	defer func() { p.lex.NewlineSignificant = false }()

	body := p.parseStatementList(isOneLineBodyEnd)
	end := p.curr.Bounds.Start
	if len(body) > 0 {
		end = body[len(body)-1].Bounds().End
	}
	return &ast.WhileStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Condition: cond, Body: body, OneLine: true}
}

// isOneLineBodyEnd stops a one-line if/while body at the first significant
// newline, end of input, or `else` (which parseOneLineIf handles itself).
func isOneLineBodyEnd(t lexer.Token) bool {
	if t.Kind == lexer.TokenEOF || t.Kind == lexer.TokenNewline {
		return true
	}
	return t.Kind == lexer.TokenKeyword && t.Value == "else"
}
