/*
File    : pico8ls-core/parser/parser_expressions.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package parser

import (
	"github.com/akashmaji946/pico8ls-core/ast"
	"github.com/akashmaji946/pico8ls-core/diag"
	"github.com/akashmaji946/pico8ls-core/lexer"
)

// Operator precedence, lowest to highest, per the specification's table.
const (
	precOr = iota + 1
	precAnd
	precCompare
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precConcat // right-associative
	precAdd
	precMul
	precUnary
	precPow // right-associative
)

var binaryPrecedence = map[string]int{
	"or": precOr,
	"and": precAnd,
	"<": precCompare, ">": precCompare, "<=": precCompare, ">=": precCompare,
	"==": precCompare, "~=": precCompare,
	"|":  precBitOr,
	"^^": precBitXor,
	"&":  precBitAnd,
	"<<": precShift, ">>": precShift, ">>>": precShift, "<<>": precShift, ">><": precShift,
	"..": precConcat,
	"+":  precAdd, "-": precAdd,
	"*": precMul, "/": precMul, "\\": precMul, "%": precMul,
	"^": precPow,
}

var rightAssociative = map[string]bool{"..": true, "^": true}

var unaryOperators = map[string]bool{
	"not": true, "#": true, "-": true, "~": true, "@": true, "%": true, "$": true,
}

// parseExpression is the entry point for parsing a full expression.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseBinary(precOr)
}

func (p *Parser) parseBinary(minPrec int) ast.Expression {
	left := p.parseUnary()
	for {
		op := p.curr.Value
		prec, ok := binaryPrecedence[op]
		if !ok || (p.curr.Kind != lexer.TokenPunctuator && p.curr.Kind != lexer.TokenKeyword) || prec < minPrec {
			break
		}
		p.advance()
		nextMin := prec + 1
		if rightAssociative[op] {
			nextMin = prec
		}
		right := p.parseBinary(nextMin)
		bounds := left.Bounds().Union(right.Bounds())
		if op == "and" || op == "or" {
			left = &ast.LogicalExpression{Base: ast.NewBase(bounds), Operator: op, Left: left, Right: right}
		} else {
			left = &ast.BinaryExpression{Base: ast.NewBase(bounds), Operator: op, Left: left, Right: right}
		}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if (p.curr.Kind == lexer.TokenPunctuator || p.curr.Kind == lexer.TokenKeyword) && unaryOperators[p.curr.Value] {
		op := p.curr.Value
		start := p.curr.Bounds.Start
		p.advance()
		operand := p.parseBinary(precUnary)
		bounds := lexer.Bounds{Start: start, End: operand.Bounds().End}
		return &ast.UnaryExpression{Base: ast.NewBase(bounds), Operator: op, Argument: operand}
	}
	return p.parseSuffixed()
}

// parseSuffixed parses a primary expression followed by any chain of
// index/member/call suffixes.
func (p *Parser) parseSuffixed() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch {
		case p.curr.Is("."):
			p.advance()
			id := p.parseIdentifierName()
			bounds := expr.Bounds().Union(id.Bounds())
			expr = &ast.MemberExpression{Base: ast.NewBase(bounds), Target: expr, Indexer: ".", Identifier: id}
		case p.curr.Is(":"):
			p.advance()
			id := p.parseIdentifierName()
			bounds := expr.Bounds().Union(id.Bounds())
			member := &ast.MemberExpression{Base: ast.NewBase(bounds), Target: expr, Indexer: ":", Identifier: id}
			expr = p.parseCallSuffix(member, true)
		case p.curr.Is("["):
			p.advance()
			idx := p.parseExpression()
			end := p.curr.Bounds.End
			p.expect("]")
			expr = &ast.IndexExpression{Base: ast.NewBase(lexer.Bounds{Start: expr.Bounds().Start, End: end}), Target: expr, Index: idx}
		case p.curr.Is("(") || p.curr.Kind == lexer.TokenStringLiteral || p.curr.Is("{"):
			expr = p.parseCallSuffix(expr, false)
		default:
			return expr
		}
	}
}

// parseCallSuffix parses the argument form following a call target: a
// parenthesized argument list, a single string literal (StringCallExpression)
// or a single table constructor (TableCallExpression). requireCall is set
// after a method-syntax `:name` segment, where a call is mandatory.
func (p *Parser) parseCallSuffix(target ast.Expression, requireCall bool) ast.Expression {
	switch {
	case p.curr.Is("("):
		start := p.curr.Bounds.Start
		p.advance()
		var args []ast.Expression
		for !p.curr.Is(")") && p.curr.Kind != lexer.TokenEOF {
			args = append(args, p.parseExpression())
			if p.curr.Is(",") {
				p.advance()
				continue
			}
			break
		}
		end := p.curr.Bounds.End
		p.expect(")")
		return &ast.CallExpression{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Target: target, Arguments: args}
	case p.curr.Kind == lexer.TokenStringLiteral:
		s := &ast.StringLiteral{Base: ast.NewBase(p.curr.Bounds), Value: p.curr.Value}
		p.advance()
		return &ast.StringCallExpression{Base: ast.NewBase(target.Bounds().Union(s.Bounds())), Target: target, Argument: s}
	case p.curr.Is("{"):
		tbl := p.parseTableConstructor()
		return &ast.TableCallExpression{Base: ast.NewBase(target.Bounds().Union(tbl.Bounds())), Target: target, Argument: tbl}
	default:
		if requireCall {
			p.addError(diag.KindUnexpectedToken, "method syntax must be called", p.curr.Bounds)
		}
		return target
	}
}

func (p *Parser) parseIdentifierName() *ast.Identifier {
	if p.curr.Kind != lexer.TokenIdentifier {
		p.addError(diag.KindUnexpectedToken, "expected identifier, got '"+p.curr.Value+"'", p.curr.Bounds)
		id := &ast.Identifier{Base: ast.NewBase(p.curr.Bounds), Name: ""}
		return id
	}
	id := &ast.Identifier{Base: ast.NewBase(p.curr.Bounds), Name: p.curr.Value}
	p.advance()
	return id
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.curr
	switch {
	case tok.Kind == lexer.TokenNumericLiteral:
		p.advance()
		return &ast.NumericLiteral{Base: ast.NewBase(tok.Bounds), Value: tok.Number, Raw: tok.Value}
	case tok.Kind == lexer.TokenStringLiteral:
		p.advance()
		return &ast.StringLiteral{Base: ast.NewBase(tok.Bounds), Value: tok.Value}
	case tok.Is("true"):
		p.advance()
		return &ast.BooleanLiteral{Base: ast.NewBase(tok.Bounds), Value: true}
	case tok.Is("false"):
		p.advance()
		return &ast.BooleanLiteral{Base: ast.NewBase(tok.Bounds), Value: false}
	case tok.Is("nil"):
		p.advance()
		return &ast.NilLiteral{Base: ast.NewBase(tok.Bounds)}
	case tok.Is("..."):
		p.advance()
		return &ast.VarargLiteral{Base: ast.NewBase(tok.Bounds)}
	case tok.Kind == lexer.TokenIdentifier:
		p.advance()
		return &ast.Identifier{Base: ast.NewBase(tok.Bounds), Name: tok.Value}
	case tok.Is("("):
		p.advance()
		inner := p.parseExpression()
		end := p.curr.Bounds.End
		p.expect(")")
		// Parenthesizing truncates a call's multiple results to one; we keep
		// the inner node as-is since the core performs no evaluation.
		return withBounds(inner, lexer.Bounds{Start: tok.Bounds.Start, End: end})
	case tok.Is("{"):
		return p.parseTableConstructor()
	case tok.Is("function"):
		return p.parseFunctionExpression()
	default:
		p.addError(diag.KindUnexpectedToken, "unexpected token '"+tok.Value+"' in expression", tok.Bounds)
		p.advance()
		return &ast.NilLiteral{Base: ast.NewBase(tok.Bounds)}
	}
}

// withBounds re-wraps inner with the given bounds, used to extend a
// parenthesized expression's span to include its parentheses without
// introducing a dedicated ParenExpression node.
func withBounds(inner ast.Expression, bounds lexer.Bounds) ast.Expression {
	switch n := inner.(type) {
	case *ast.Identifier:
		n.Span = bounds
		return n
	case *ast.NumericLiteral:
		n.Span = bounds
		return n
	case *ast.StringLiteral:
		n.Span = bounds
		return n
	case *ast.BooleanLiteral:
		n.Span = bounds
		return n
	case *ast.NilLiteral:
		n.Span = bounds
		return n
	case *ast.VarargLiteral:
		n.Span = bounds
		return n
	case *ast.BinaryExpression:
		n.Span = bounds
		return n
	case *ast.LogicalExpression:
		n.Span = bounds
		return n
	case *ast.UnaryExpression:
		n.Span = bounds
		return n
	case *ast.IndexExpression:
		n.Span = bounds
		return n
	case *ast.MemberExpression:
		n.Span = bounds
		return n
	case *ast.CallExpression:
		n.Span = bounds
		return n
	case *ast.TableCallExpression:
		n.Span = bounds
		return n
	case *ast.StringCallExpression:
		n.Span = bounds
		return n
	case *ast.TableConstructorExpression:
		n.Span = bounds
		return n
	case *ast.FunctionExpression:
		n.Span = bounds
		return n
	default:
		return inner
	}
}

func (p *Parser) parseTableConstructor() *ast.TableConstructorExpression {
	start := p.curr.Bounds.Start
	p.expect("{")
	var fields []ast.Field
	for !p.curr.Is("}") && p.curr.Kind != lexer.TokenEOF {
		fields = append(fields, p.parseTableField())
		if p.curr.Is(",") || p.curr.Is(";") {
			p.advance()
			continue
		}
		break
	}
	end := p.curr.Bounds.End
	p.expect("}")
	return &ast.TableConstructorExpression{Base: ast.NewBase(lexer.Bounds{Start: start, End: end}), Fields: fields}
}

func (p *Parser) parseTableField() ast.Field {
	if p.curr.Is("[") {
		p.advance()
		key := p.parseExpression()
		p.expect("]")
		p.expect("=")
		val := p.parseExpression()
		return ast.Field{Kind: ast.FieldKeyed, Key: key, Value: val}
	}
	if p.curr.Kind == lexer.TokenIdentifier && p.lex.Peek().Is("=") {
		key := p.parseIdentifierName()
		p.advance() // '='
		val := p.parseExpression()
		return ast.Field{Kind: ast.FieldNamed, Key: key, Value: val}
	}
	val := p.parseExpression()
	return ast.Field{Kind: ast.FieldList, Value: val}
}

// parseExpressionList parses a comma-separated list of expressions. It is
// used for assignment and local init lists, return arguments, and
// generic-for iterator lists.
func (p *Parser) parseExpressionList() []ast.Expression {
	var list []ast.Expression
	list = append(list, p.parseExpression())
	for p.curr.Is(",") {
		p.advance()
		list = append(list, p.parseExpression())
	}
	return list
}
