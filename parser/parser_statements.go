/*
File    : pico8ls-core/parser/parser_statements.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/pico8ls-core/ast"
	"github.com/akashmaji946/pico8ls-core/diag"
	"github.com/akashmaji946/pico8ls-core/lexer"
)

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "\\=": true,
	"%=": true, "^=": true, "..=": true, "&=": true, "|=": true, "^^=": true,
	"<<=": true, ">>=": true, ">>>=": true, "<<>=": true, ">><=": true,
}

// parseStatement dispatches on the current token to the statement form it
// starts, per the grammar in the specification. It returns nil when the
// tokens do not form a statement: the error is recorded and the tokens are
// skipped via synchronize (see parseExpressionStatement).
func (p *Parser) parseStatement() ast.Statement {
	tok := p.curr
	switch {
	case tok.Is("local"):
		return p.parseLocalOrLocalFunction()
	case tok.Is("if"):
		return p.parseIfStatement()
	case tok.Is("while"):
		return p.parseWhileStatement()
	case tok.Is("repeat"):
		return p.parseRepeatStatement()
	case tok.Is("for"):
		return p.parseForStatement()
	case tok.Is("function"):
		return p.parseFunctionDeclaration(false)
	case tok.Is("return"):
		return p.parseReturnStatement()
	case tok.Is("break"):
		p.advance()
		return &ast.BreakStatement{Base: ast.NewBase(tok.Bounds)}
	case tok.Is("goto"):
		p.advance()
		label := p.parseIdentifierName()
		return &ast.GotoStatement{Base: ast.NewBase(tok.Bounds.Union(label.Bounds())), Label: label.Name}
	case tok.Is("::"):
		return p.parseLabelStatement()
	case tok.Is("do"):
		return p.parseDoStatement()
	case tok.Is("#") && p.lex.Peek().Kind == lexer.TokenIdentifier && p.lex.Peek().Value == "include":
		return p.parseIncludeStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLabelStatement() ast.Statement {
	start := p.curr.Bounds.Start
	p.advance() // '::'
	name := p.parseIdentifierName()
	end := p.curr.Bounds.End
	p.expect("::")
	return &ast.LabelStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Name: name.Name}
}

func (p *Parser) parseDoStatement() ast.Statement {
	start := p.curr.Bounds.Start
	p.advance() // 'do'
	body := p.parseStatementList(isBlockEnd)
	end := p.curr.Bounds.End
	p.expect("end")
	return &ast.DoStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Body: body}
}

// parseIncludeStatement records a PICO-8 `#include path` directive. The
// path is the rest of the line, rebuilt from its tokens' text (whitespace
// between tokens is dropped), since it is typically an unquoted filename.
func (p *Parser) parseIncludeStatement() ast.Statement {
	start := p.curr.Bounds.Start
	sig := p.lex.NewlineSignificant
	p.lex.NewlineSignificant = true
	defer func() { p.lex.NewlineSignificant = sig }()
	p.advance() // '#'
	p.advance() // 'include'
	var parts []string
	for p.curr.Kind != lexer.TokenNewline && p.curr.Kind != lexer.TokenEOF {
		parts = append(parts, p.curr.Value)
		p.advance()
	}
	end := p.curr.Bounds.Start
	return &ast.IncludeStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Path: strings.Join(parts, "")}
}

func (p *Parser) parseLocalOrLocalFunction() ast.Statement {
	start := p.curr.Bounds.Start
	p.advance() // 'local'
	if p.curr.Is("function") {
		decl := p.parseFunctionDeclaration(true)
		if fd, ok := decl.(*ast.FunctionDeclaration); ok {
			fd.Span.Start = start
		}
		return decl
	}
	errCount := len(p.Errors)
	names := p.parseNameList()
	var init []ast.Expression
	if len(p.Errors) > errCount {
		p.synchronize()
	} else if p.curr.Is("=") {
		p.advance()
		init = p.parseExpressionList()
	}
	end := start
	if len(names) > 0 {
		end = names[len(names)-1].Bounds().End
	}
	if len(init) > 0 {
		end = init[len(init)-1].Bounds().End
	}
	return &ast.LocalStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Names: names, Init: init}
}

func (p *Parser) parseNameList() []*ast.Identifier {
	var names []*ast.Identifier
	names = append(names, p.parseIdentifierName())
	for p.curr.Is(",") {
		p.advance()
		names = append(names, p.parseIdentifierName())
	}
	return names
}

// parseIfStatement implements both the standard multi-line `if ... then ...
// end` form and the PICO-8 one-line `if (cond) stmt [else stmt]` shorthand.
//
// Both forms start identically: `if` followed by a condition expression (the
// one-line form always parenthesizes its condition, but a parenthesized
// condition parses the same way as any other expression). The two forms are
// told apart only after the condition: if `then` follows on the same source
// line, this is the standard form; otherwise it is the PICO-8 shorthand and
// parseOneLineIf takes over. See parser_pico8.go.
func (p *Parser) parseIfStatement() ast.Statement {
	start := p.curr.Bounds.Start
	p.advance() // 'if'

	parenForm := p.curr.Is("(")
	condStart := p.curr.Bounds.Start
	cond := p.parseExpression()

	if parenForm && !p.thenFollowsOnSameLine(condStart) {
		return p.parseOneLineIf(start, cond)
	}

	var clauses []ast.Clause
	clauseStart := start
	p.expect("then")
	body := p.parseStatementList(isBlockEnd)
	clauses = append(clauses, ast.Clause{Kind: ast.IfClauseKind, Condition: cond, Body: body, Bounds: lexer.Bounds{Start: clauseStart, End: p.curr.Bounds.Start}})

	for p.curr.Is("elseif") {
		cs := p.curr.Bounds.Start
		p.advance()
		c := p.parseExpression()
		p.expect("then")
		b := p.parseStatementList(isBlockEnd)
		clauses = append(clauses, ast.Clause{Kind: ast.ElseifClauseKind, Condition: c, Body: b, Bounds: lexer.Bounds{Start: cs, End: p.curr.Bounds.Start}})
	}
	if p.curr.Is("else") {
		cs := p.curr.Bounds.Start
		p.advance()
		b := p.parseStatementList(isBlockEnd)
		clauses = append(clauses, ast.Clause{Kind: ast.ElseClauseKind, Body: b, Bounds: lexer.Bounds{Start: cs, End: p.curr.Bounds.Start}})
	}
	end := p.curr.Bounds.End
	p.expect("end")
	return &ast.IfStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Clauses: clauses}
}

// parseWhileStatement implements both `while cond do ... end` and the
// PICO-8 one-line `while (cond) stmt` shorthand. See the comment on
// parseIfStatement: the two forms are disambiguated only after the
// condition, by whether `do` follows on the same source line.
func (p *Parser) parseWhileStatement() ast.Statement {
	start := p.curr.Bounds.Start
	p.advance() // 'while'

	parenForm := p.curr.Is("(")
	condStart := p.curr.Bounds.Start
	cond := p.parseExpression()

	if parenForm && !p.doFollowsOnSameLine(condStart) {
		return p.parseOneLineWhile(start, cond)
	}

	p.expect("do")
	body := p.parseStatementList(isBlockEnd)
	end := p.curr.Bounds.End
	p.expect("end")
	return &ast.WhileStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Condition: cond, Body: body}
}

func (p *Parser) parseRepeatStatement() ast.Statement {
	start := p.curr.Bounds.Start
	p.advance() // 'repeat'
	body := p.parseStatementList(isBlockEnd)
	p.expect("until")
	cond := p.parseExpression()
	return &ast.RepeatStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: cond.Bounds().End}), Body: body, Condition: cond}
}

// parseForStatement disambiguates numeric vs generic `for` by looking for
// `=` vs `,`/`in` after the first identifier.
func (p *Parser) parseForStatement() ast.Statement {
	start := p.curr.Bounds.Start
	p.advance() // 'for'
	first := p.parseIdentifierName()

	if p.curr.Is("=") {
		p.advance()
		from := p.parseExpression()
		p.expect(",")
		to := p.parseExpression()
		var step ast.Expression
		if p.curr.Is(",") {
			p.advance()
			step = p.parseExpression()
		}
		p.expect("do")
		body := p.parseStatementList(isBlockEnd)
		end := p.curr.Bounds.End
		p.expect("end")
		return &ast.ForNumericStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Variable: first, Start: from, End: to, Step: step, Body: body}
	}

	names := []*ast.Identifier{first}
	for p.curr.Is(",") {
		p.advance()
		names = append(names, p.parseIdentifierName())
	}
	p.expect("in")
	iterators := p.parseExpressionList()
	p.expect("do")
	body := p.parseStatementList(isBlockEnd)
	end := p.curr.Bounds.End
	p.expect("end")
	return &ast.ForGenericStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Variables: names, Iterators: iterators, Body: body}
}

// parseFunctionDeclaration parses `function <target>(...) ... end`. The
// target may be a dotted chain (`a.b.c`) with an optional trailing method
// segment (`:m`), which implicitly prepends a `self` parameter.
func (p *Parser) parseFunctionDeclaration(isLocal bool) ast.Statement {
	start := p.curr.Bounds.Start
	p.advance() // 'function'

	var target ast.Expression
	isMethod := false
	if isLocal {
		target = p.parseIdentifierName()
	} else {
		id := p.parseIdentifierName()
		target = id
		for p.curr.Is(".") {
			p.advance()
			member := p.parseIdentifierName()
			target = &ast.MemberExpression{Base: ast.NewBase(target.Bounds().Union(member.Bounds())), Target: target, Indexer: ".", Identifier: member}
		}
		if p.curr.Is(":") {
			p.advance()
			member := p.parseIdentifierName()
			target = &ast.MemberExpression{Base: ast.NewBase(target.Bounds().Union(member.Bounds())), Target: target, Indexer: ":", Identifier: member}
			isMethod = true
		}
	}

	params, varargs := p.parseParameterList()
	if isMethod {
		self := &ast.Identifier{Base: ast.NewBase(target.Bounds()), Name: "self"}
		params = append([]*ast.Identifier{self}, params...)
	}
	body := p.parseStatementList(isBlockEnd)
	end := p.curr.Bounds.End
	p.expect("end")

	return &ast.FunctionDeclaration{
		Base:       ast.NewBase(lexer.Bounds{Start: start, End: end}),
		Identifier: target,
		IsLocal:    isLocal,
		IsMethod:   isMethod,
		Parameters: params,
		Body:       body,
		HasVarargs: varargs,
	}
}

func (p *Parser) parseFunctionExpression() ast.Expression {
	start := p.curr.Bounds.Start
	p.advance() // 'function'
	params, varargs := p.parseParameterList()
	body := p.parseStatementList(isBlockEnd)
	end := p.curr.Bounds.End
	p.expect("end")
	return &ast.FunctionExpression{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Parameters: params, Body: body, HasVarargs: varargs}
}

func (p *Parser) parseParameterList() ([]*ast.Identifier, bool) {
	p.expect("(")
	var params []*ast.Identifier
	varargs := false
	for !p.curr.Is(")") && p.curr.Kind != lexer.TokenEOF {
		if p.curr.Is("...") {
			varargs = true
			p.advance()
			break
		}
		params = append(params, p.parseIdentifierName())
		if p.curr.Is(",") {
			p.advance()
			continue
		}
		break
	}
	p.expect(")")
	return params, varargs
}

func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.curr.Bounds.Start
	p.advance() // 'return'
	var args []ast.Expression
	if !isBlockEnd(p.curr) && !p.curr.Is(";") && p.curr.Kind != lexer.TokenNewline {
		args = p.parseExpressionList()
	}
	end := start
	if len(args) > 0 {
		end = args[len(args)-1].Bounds().End
	}
	return &ast.ReturnStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Arguments: args}
}

// parseExpressionStatement parses a statement starting with a prefix
// expression: either an AssignmentStatement (if followed by an assignment
// operator) or a CallStatement (if the expression is a call). Anything else
// is a malformed statement, recorded as an error and skipped via
// synchronize.
func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.curr.Bounds.Start
	first := p.parseSuffixed()

	if (p.curr.Kind == lexer.TokenPunctuator) && assignmentOperators[p.curr.Value] {
		return p.finishAssignment(start, first)
	}
	if p.curr.Is(",") {
		// Could be a multi-target assignment: a, b = 1, 2
		vars := []ast.Expression{first}
		for p.curr.Is(",") {
			p.advance()
			vars = append(vars, p.parseSuffixed())
		}
		if assignmentOperators[p.curr.Value] {
			return p.finishAssignmentMulti(start, vars)
		}
		p.addError(diag.KindMalformedStatement, "expected assignment after expression list", p.curr.Bounds)
		p.synchronize()
		return nil
	}

	switch first.(type) {
	case *ast.CallExpression, *ast.TableCallExpression, *ast.StringCallExpression:
		return &ast.CallStatement{Base: ast.NewBase(first.Bounds()), Expression: first}
	}

	p.addError(diag.KindMalformedStatement, "expected statement", first.Bounds())
	p.synchronize()
	return nil
}

func (p *Parser) finishAssignment(start lexer.Position, first ast.Expression) ast.Statement {
	return p.finishAssignmentMulti(start, []ast.Expression{first})
}

func (p *Parser) finishAssignmentMulti(start lexer.Position, vars []ast.Expression) ast.Statement {
	for _, v := range vars {
		if !isAssignable(v) {
			p.addError(diag.KindInvalidAssignmentTarget, "invalid assignment target", v.Bounds())
		}
	}
	op := p.curr.Value
	p.advance()
	init := p.parseExpressionList()
	end := start
	if len(init) > 0 {
		end = init[len(init)-1].Bounds().End
	} else if len(vars) > 0 {
		end = vars[len(vars)-1].Bounds().End
	}
	return &ast.AssignmentStatement{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Variables: vars, Operator: op, Init: init}
}

func isAssignable(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.IndexExpression, *ast.MemberExpression:
		return true
	}
	return false
}
