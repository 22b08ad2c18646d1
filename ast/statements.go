/*
File    : pico8ls-core/ast/statements.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package ast

import "github.com/akashmaji946/pico8ls-core/lexer"

func (*AssignmentStatement) statementNode()  {}
func (*LocalStatement) statementNode()       {}
func (*CallStatement) statementNode()        {}
func (*IfStatement) statementNode()          {}
func (*WhileStatement) statementNode()       {}
func (*RepeatStatement) statementNode()      {}
func (*ForNumericStatement) statementNode()  {}
func (*ForGenericStatement) statementNode()  {}
func (*FunctionDeclaration) statementNode()  {}
func (*ReturnStatement) statementNode()      {}
func (*BreakStatement) statementNode()       {}
func (*GotoStatement) statementNode()        {}
func (*LabelStatement) statementNode()       {}
func (*DoStatement) statementNode()          {}
func (*IncludeStatement) statementNode()     {}

// AssignmentStatement covers `=` and every PICO-8 compound-assignment
// operator listed in the specification (+=, -=, ..=, <<>=, and so on).
type AssignmentStatement struct {
	Base
	Variables []Expression // Identifier | IndexExpression | MemberExpression
	Operator  string
	Init      []Expression
}

func (n *AssignmentStatement) Accept(v Visitor) { v.VisitAssignmentStatement(n) }

// LocalStatement is `local a, b = 1, 2`. Init may be shorter than Names;
// the remaining names default to nil at runtime, not a parse error.
type LocalStatement struct {
	Base
	Names []*Identifier
	Init  []Expression
}

func (n *LocalStatement) Accept(v Visitor) { v.VisitLocalStatement(n) }

// CallStatement wraps a call expression used as a standalone statement.
type CallStatement struct {
	Base
	Expression Expression
}

func (n *CallStatement) Accept(v Visitor) { v.VisitCallStatement(n) }

// ClauseKind distinguishes the three kinds of IfStatement clause.
type ClauseKind string

const (
	IfClauseKind     ClauseKind = "IfClause"
	ElseifClauseKind ClauseKind = "ElseifClause"
	ElseClauseKind   ClauseKind = "ElseClause"
)

// Clause is one arm of an IfStatement. Condition is nil for ElseClause.
type Clause struct {
	Kind      ClauseKind
	Condition Expression
	Body      []Statement
	Bounds    lexer.Bounds
}

// IfStatement always begins with exactly one IfClause, may have any number
// of ElseifClauses, and may end with one ElseClause.
//
// OneLine records whether this if was written using the PICO-8 one-line
// shorthand `if (cond) stmt`, which has no `end` and whose body is
// terminated by the first significant newline.
type IfStatement struct {
	Base
	Clauses []Clause
	OneLine bool
}

func (n *IfStatement) Accept(v Visitor) { v.VisitIfStatement(n) }

// WhileStatement covers both `while cond do ... end` and the PICO-8
// one-line `while (cond) stmt` shorthand (OneLine true).
type WhileStatement struct {
	Base
	Condition Expression
	Body      []Statement
	OneLine   bool
}

func (n *WhileStatement) Accept(v Visitor) { v.VisitWhileStatement(n) }

// RepeatStatement is `repeat ... until cond`; Condition is resolved in the
// body's scope (it may reference locals declared in Body).
type RepeatStatement struct {
	Base
	Body      []Statement
	Condition Expression
}

func (n *RepeatStatement) Accept(v Visitor) { v.VisitRepeatStatement(n) }

// ForNumericStatement is `for i = start, end[, step] do ... end`.
type ForNumericStatement struct {
	Base
	Variable *Identifier
	Start    Expression
	End      Expression
	Step     Expression // nil when no step clause is present
	Body     []Statement
}

func (n *ForNumericStatement) Accept(v Visitor) { v.VisitForNumericStatement(n) }

// ForGenericStatement is `for a, b in iter1, iter2 do ... end`.
type ForGenericStatement struct {
	Base
	Variables []*Identifier
	Iterators []Expression
	Body      []Statement
}

func (n *ForGenericStatement) Accept(v Visitor) { v.VisitForGenericStatement(n) }

// FunctionDeclaration covers `function f(...) end`, `local function f(...) end`,
// `function t.a.b.c(...) end` and the method form `function t:m(...) end`
// (which implicitly prepends a `self` parameter).
type FunctionDeclaration struct {
	Base
	Identifier  Expression // Identifier or dotted/method chain target
	IsLocal     bool
	IsMethod    bool
	Parameters  []*Identifier
	Body        []Statement
	HasVarargs  bool
}

func (n *FunctionDeclaration) Accept(v Visitor) { v.VisitFunctionDeclaration(n) }

// ReturnStatement's Arguments is empty both for a bare `return` and for one
// terminated early by a significant newline inside a PICO-8 one-line body.
type ReturnStatement struct {
	Base
	Arguments []Expression
}

func (n *ReturnStatement) Accept(v Visitor) { v.VisitReturnStatement(n) }

type BreakStatement struct{ Base }

func (n *BreakStatement) Accept(v Visitor) { v.VisitBreakStatement(n) }

type GotoStatement struct {
	Base
	Label string
}

func (n *GotoStatement) Accept(v Visitor) { v.VisitGotoStatement(n) }

type LabelStatement struct {
	Base
	Name string
}

func (n *LabelStatement) Accept(v Visitor) { v.VisitLabelStatement(n) }

type DoStatement struct {
	Base
	Body []Statement
}

func (n *DoStatement) Accept(v Visitor) { v.VisitDoStatement(n) }

// IncludeStatement records a PICO-8 `#include path` directive. Cross-file
// resolution is out of scope; only the path text is recorded.
type IncludeStatement struct {
	Base
	Path string
}

func (n *IncludeStatement) Accept(v Visitor) { v.VisitIncludeStatement(n) }
