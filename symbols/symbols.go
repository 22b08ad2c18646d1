/*
File    : pico8ls-core/symbols/symbols.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/

// Package symbols builds the document outline: a tree of CodeSymbols for
// functions, local variables and promoted globals, produced by a single
// pre-order walk of the AST.
package symbols

import (
	"strings"

	"github.com/akashmaji946/pico8ls-core/ast"
	"github.com/akashmaji946/pico8ls-core/lexer"
)

// Kind classifies a CodeSymbol.
type Kind string

const (
	KindFunction       Kind = "Function"
	KindLocalVariable  Kind = "LocalVariable"
	KindGlobalVariable Kind = "GlobalVariable"
)

// CodeSymbol is one entry of the document outline. Loc is the entire
// declaration's bounds; SelectionLoc is just the identifier token's bounds,
// the span a host highlights when the user selects the symbol.
type CodeSymbol struct {
	Name         string
	Detail       string
	Kind         Kind
	Loc          lexer.Bounds
	SelectionLoc lexer.Bounds
	Children     []*CodeSymbol
}

// Extract walks chunk and returns the top-level outline. Locals nest under
// the enclosing FunctionDeclaration's symbol (or the top level, for a chunk
// with no enclosing function); promoted globals always land at the top
// level regardless of how deeply their assignment is nested.
func Extract(chunk *ast.Chunk) []*CodeSymbol {
	e := &extractor{
		locals: []map[string]bool{make(map[string]bool)},
		seen:   make(map[string]bool),
	}
	chunk.Accept(e)
	return e.top
}

// extractor implements ast.Visitor. It is total over the node variant set
// per the core's walker convention: identifier and literal kinds do nothing,
// and every other expression kind walks its sub-expressions.
type extractor struct {
	top       []*CodeSymbol
	container *CodeSymbol   // current enclosing Function symbol, nil at top level
	locals    []map[string]bool // one frame per open function; used only to tell local writes from global promotions
	seen      map[string]bool   // names already promoted to a GlobalVariable symbol
}

func (e *extractor) addChild(sym *CodeSymbol) {
	if e.container != nil {
		e.container.Children = append(e.container.Children, sym)
		return
	}
	e.top = append(e.top, sym)
}

func (e *extractor) declareLocal(name string) {
	e.locals[len(e.locals)-1][name] = true
}

func (e *extractor) isKnownLocal(name string) bool {
	for i := len(e.locals) - 1; i >= 0; i-- {
		if e.locals[i][name] {
			return true
		}
	}
	return false
}

func (e *extractor) VisitChunk(n *ast.Chunk) {
	for _, stmt := range n.Body {
		stmt.Accept(e)
	}
}

func (e *extractor) VisitLocalStatement(n *ast.LocalStatement) {
	for _, name := range n.Names {
		e.addChild(&CodeSymbol{
			Name:         name.Name,
			Kind:         KindLocalVariable,
			Loc:          n.Bounds(),
			SelectionLoc: name.Bounds(),
		})
		e.declareLocal(name.Name)
	}
	for _, init := range n.Init {
		e.visitExpr(init)
	}
}

func (e *extractor) VisitAssignmentStatement(n *ast.AssignmentStatement) {
	for _, v := range n.Variables {
		id, ok := v.(*ast.Identifier)
		if !ok {
			continue
		}
		if e.isKnownLocal(id.Name) || e.seen[id.Name] {
			continue
		}
		e.seen[id.Name] = true
		e.top = append(e.top, &CodeSymbol{
			Name:         id.Name,
			Kind:         KindGlobalVariable,
			Loc:          n.Bounds(),
			SelectionLoc: id.Bounds(),
		})
	}
	for _, init := range n.Init {
		e.visitExpr(init)
	}
}

func (e *extractor) VisitCallStatement(n *ast.CallStatement) {
	e.visitExpr(n.Expression)
}

// visitExpr walks into any non-nil expression, so a FunctionExpression
// tucked inside `local f = function() ... end` or a call argument (and the
// declarations or global promotions in its body) is not silently skipped.
func (e *extractor) visitExpr(expr ast.Expression) {
	if expr == nil {
		return
	}
	expr.Accept(e)
}

func (e *extractor) VisitIfStatement(n *ast.IfStatement) {
	for _, c := range n.Clauses {
		for _, stmt := range c.Body {
			stmt.Accept(e)
		}
	}
}

func (e *extractor) VisitWhileStatement(n *ast.WhileStatement) {
	for _, stmt := range n.Body {
		stmt.Accept(e)
	}
}

func (e *extractor) VisitRepeatStatement(n *ast.RepeatStatement) {
	for _, stmt := range n.Body {
		stmt.Accept(e)
	}
}

func (e *extractor) VisitForNumericStatement(n *ast.ForNumericStatement) {
	e.declareLocal(n.Variable.Name)
	for _, stmt := range n.Body {
		stmt.Accept(e)
	}
}

func (e *extractor) VisitForGenericStatement(n *ast.ForGenericStatement) {
	for _, v := range n.Variables {
		e.declareLocal(v.Name)
	}
	for _, stmt := range n.Body {
		stmt.Accept(e)
	}
}

func (e *extractor) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	name, selection := functionTargetName(n.Identifier)
	displayParams := n.Parameters
	if n.IsMethod && len(displayParams) > 0 {
		displayParams = displayParams[1:] // omit the implicit `self`
	}
	sym := &CodeSymbol{
		Name:         name,
		Detail:       name + signature(displayParams, n.HasVarargs),
		Kind:         KindFunction,
		Loc:          n.Bounds(),
		SelectionLoc: selection,
	}
	e.addChild(sym)
	if n.IsLocal {
		e.declareLocal(name)
	}

	outer := e.container
	e.container = sym
	e.locals = append(e.locals, make(map[string]bool))
	for _, p := range n.Parameters {
		e.declareLocal(p.Name)
	}
	for _, stmt := range n.Body {
		stmt.Accept(e)
	}
	e.locals = e.locals[:len(e.locals)-1]
	e.container = outer
}

func (e *extractor) VisitReturnStatement(n *ast.ReturnStatement) {
	for _, arg := range n.Arguments {
		e.visitExpr(arg)
	}
}
func (e *extractor) VisitBreakStatement(n *ast.BreakStatement) {}
func (e *extractor) VisitGotoStatement(n *ast.GotoStatement)     {}
func (e *extractor) VisitLabelStatement(n *ast.LabelStatement)   {}

func (e *extractor) VisitDoStatement(n *ast.DoStatement) {
	for _, stmt := range n.Body {
		stmt.Accept(e)
	}
}

func (e *extractor) VisitIncludeStatement(n *ast.IncludeStatement) {}

func (e *extractor) VisitIdentifier(n *ast.Identifier)         {}
func (e *extractor) VisitNumericLiteral(n *ast.NumericLiteral) {}
func (e *extractor) VisitStringLiteral(n *ast.StringLiteral)   {}
func (e *extractor) VisitBooleanLiteral(n *ast.BooleanLiteral) {}
func (e *extractor) VisitNilLiteral(n *ast.NilLiteral)         {}
func (e *extractor) VisitVarargLiteral(n *ast.VarargLiteral)   {}

func (e *extractor) VisitBinaryExpression(n *ast.BinaryExpression) {
	e.visitExpr(n.Left)
	e.visitExpr(n.Right)
}

func (e *extractor) VisitLogicalExpression(n *ast.LogicalExpression) {
	e.visitExpr(n.Left)
	e.visitExpr(n.Right)
}

func (e *extractor) VisitUnaryExpression(n *ast.UnaryExpression) {
	e.visitExpr(n.Argument)
}

func (e *extractor) VisitIndexExpression(n *ast.IndexExpression) {
	e.visitExpr(n.Target)
	e.visitExpr(n.Index)
}

func (e *extractor) VisitMemberExpression(n *ast.MemberExpression) {
	e.visitExpr(n.Target)
}

func (e *extractor) VisitCallExpression(n *ast.CallExpression) {
	e.visitExpr(n.Target)
	for _, arg := range n.Arguments {
		e.visitExpr(arg)
	}
}

func (e *extractor) VisitTableCallExpression(n *ast.TableCallExpression) {
	e.visitExpr(n.Target)
	e.visitExpr(n.Argument)
}

func (e *extractor) VisitStringCallExpression(n *ast.StringCallExpression) {
	e.visitExpr(n.Target)
}

func (e *extractor) VisitTableConstructorExpression(n *ast.TableConstructorExpression) {
	for _, f := range n.Fields {
		if f.Kind == ast.FieldKeyed {
			e.visitExpr(f.Key)
		}
		e.visitExpr(f.Value)
	}
}

// VisitFunctionExpression walks an anonymous function's body for nested
// declarations without opening its own symbol, since the specification only
// promotes named FunctionDeclarations to outline entries.
func (e *extractor) VisitFunctionExpression(n *ast.FunctionExpression) {
	e.locals = append(e.locals, make(map[string]bool))
	for _, p := range n.Parameters {
		e.declareLocal(p.Name)
	}
	for _, stmt := range n.Body {
		stmt.Accept(e)
	}
	e.locals = e.locals[:len(e.locals)-1]
}

// functionTargetName renders a FunctionDeclaration's target as a display
// name and returns the bounds of the segment a host should highlight on
// selection (the final identifier in a dotted or method chain).
func functionTargetName(target ast.Expression) (string, lexer.Bounds) {
	switch t := target.(type) {
	case *ast.Identifier:
		return t.Name, t.Bounds()
	case *ast.MemberExpression:
		base, _ := functionTargetName(t.Target)
		return base + t.Indexer + t.Identifier.Name, t.Identifier.Bounds()
	default:
		return "", target.Bounds()
	}
}

func signature(params []*ast.Identifier, varargs bool) string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}
	if varargs {
		names = append(names, "...")
	}
	return "(" + strings.Join(names, ", ") + ")"
}
