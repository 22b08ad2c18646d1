/*
File    : pico8ls-core/ast/ast.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/

// Package ast defines the abstract syntax tree produced by the parser: an
// exhaustive sum type with one Go struct per node kind, each implementing
// Node and carrying a Bounds. Downstream walkers (symbol extraction, scope
// resolution) are total over the variant set via the Visitor interface.
package ast

import "github.com/akashmaji946/pico8ls-core/lexer"

// Node is the common interface every AST node satisfies.
type Node interface {
	Bounds() lexer.Bounds
	Accept(v Visitor)
}

// Statement is any node that can appear in a Chunk or block body.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Base carries the bounds shared by every node and provides the Bounds()
// accessor; each concrete node embeds it.
type Base struct {
	Span lexer.Bounds
}

func (b Base) Bounds() lexer.Bounds { return b.Span }

// NewBase is a convenience constructor for Base used by the parser.
func NewBase(bounds lexer.Bounds) Base { return Base{Span: bounds} }

// Visitor is total over the AST node variant set. Each traversal in the
// core (symbol extraction, scope resolution) implements it.
type Visitor interface {
	VisitChunk(n *Chunk)

	VisitAssignmentStatement(n *AssignmentStatement)
	VisitLocalStatement(n *LocalStatement)
	VisitCallStatement(n *CallStatement)
	VisitIfStatement(n *IfStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitRepeatStatement(n *RepeatStatement)
	VisitForNumericStatement(n *ForNumericStatement)
	VisitForGenericStatement(n *ForGenericStatement)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitReturnStatement(n *ReturnStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitGotoStatement(n *GotoStatement)
	VisitLabelStatement(n *LabelStatement)
	VisitDoStatement(n *DoStatement)
	VisitIncludeStatement(n *IncludeStatement)

	VisitIdentifier(n *Identifier)
	VisitNumericLiteral(n *NumericLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitNilLiteral(n *NilLiteral)
	VisitVarargLiteral(n *VarargLiteral)
	VisitBinaryExpression(n *BinaryExpression)
	VisitLogicalExpression(n *LogicalExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitIndexExpression(n *IndexExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitCallExpression(n *CallExpression)
	VisitTableCallExpression(n *TableCallExpression)
	VisitStringCallExpression(n *StringCallExpression)
	VisitTableConstructorExpression(n *TableConstructorExpression)
	VisitFunctionExpression(n *FunctionExpression)
}

// Chunk is the top-level node for a single source document.
type Chunk struct {
	Base
	Body []Statement
}

func (n *Chunk) Accept(v Visitor) { v.VisitChunk(n) }
