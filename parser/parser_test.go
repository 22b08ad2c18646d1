/*
File    : pico8ls-core/parser/parser_test.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/pico8ls-core/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: `i = 1`
func TestParse_SimpleAssignment(t *testing.T) {
	p := New("i = 1")
	chunk := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, chunk.Body, 1)

	assign, ok := chunk.Body[0].(*ast.AssignmentStatement)
	require.True(t, ok)
	assert.Equal(t, "=", assign.Operator)
	require.Len(t, assign.Variables, 1)
	id, ok := assign.Variables[0].(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "i", id.Name)
	require.Len(t, assign.Init, 1)
	num, ok := assign.Init[0].(*ast.NumericLiteral)
	require.True(t, ok)
	assert.Equal(t, float64(1), num.Value)
}

// Scenario 2: function declaration with a return expression
func TestParse_FunctionDeclaration(t *testing.T) {
	p := New("function f(x)\nreturn x + 1\nend")
	chunk := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, chunk.Body, 1)

	fn, ok := chunk.Body[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.False(t, fn.IsLocal)
	id, ok := fn.Identifier.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "f", id.Name)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "x", fn.Parameters[0].Name)
	require.Len(t, fn.Body, 1)

	ret, ok := fn.Body[0].(*ast.ReturnStatement)
	require.True(t, ok)
	require.Len(t, ret.Arguments, 1)
	bin, ok := ret.Arguments[0].(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Operator)
}

// Scenario 3: a bare call statement
func TestParse_CallStatement(t *testing.T) {
	p := New(`print("hi")`)
	chunk := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, chunk.Body, 1)

	call, ok := chunk.Body[0].(*ast.CallStatement)
	require.True(t, ok)
	expr, ok := call.Expression.(*ast.CallExpression)
	require.True(t, ok)
	base, ok := expr.Target.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "print", base.Name)
	require.Len(t, expr.Arguments, 1)
	str, ok := expr.Arguments[0].(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hi", str.Value)
}

// Scenario 4: if/elseif/else with three clauses
func TestParse_IfElseifElse(t *testing.T) {
	src := `if false then print("hi") elseif false then print("hi") else print("hi") end`
	p := New(src)
	chunk := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, chunk.Body, 1)

	ifStmt, ok := chunk.Body[0].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, ifStmt.Clauses, 3)
	assert.Equal(t, ast.IfClauseKind, ifStmt.Clauses[0].Kind)
	assert.Equal(t, ast.ElseifClauseKind, ifStmt.Clauses[1].Kind)
	assert.Equal(t, ast.ElseClauseKind, ifStmt.Clauses[2].Kind)
	assert.Nil(t, ifStmt.Clauses[2].Condition)
	for _, c := range ifStmt.Clauses {
		require.Len(t, c.Body, 1)
	}
}

// Scenario 5: one-line if does not swallow the following statement.
func TestParse_OneLineIf_DoesNotSwallowNextLine(t *testing.T) {
	src := "if (false) print(\"hi\")\ni = 1"
	p := New(src)
	chunk := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, chunk.Body, 2)

	ifStmt, ok := chunk.Body[0].(*ast.IfStatement)
	require.True(t, ok)
	assert.True(t, ifStmt.OneLine)
	require.Len(t, ifStmt.Clauses, 1)
	require.Len(t, ifStmt.Clauses[0].Body, 1)

	assign, ok := chunk.Body[1].(*ast.AssignmentStatement)
	require.True(t, ok)
	assert.Equal(t, "=", assign.Operator)
}

// Scenario 6: a bare `return` inside a one-line if must not swallow the
// next line's identifier.
func TestParse_OneLineIf_BareReturnDoesNotSwallowNextLine(t *testing.T) {
	src := "if (false) return\ni += 1"
	p := New(src)
	chunk := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, chunk.Body, 2)

	ifStmt, ok := chunk.Body[0].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, ifStmt.Clauses[0].Body, 1)
	ret, ok := ifStmt.Clauses[0].Body[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.Empty(t, ret.Arguments)

	assign, ok := chunk.Body[1].(*ast.AssignmentStatement)
	require.True(t, ok)
	assert.Equal(t, "+=", assign.Operator)
}

func TestParse_OneLineWhile(t *testing.T) {
	src := "while (i < 10) i += 1\nprint(i)"
	p := New(src)
	chunk := p.Parse()
	require.Empty(t, p.Errors)
	require.Len(t, chunk.Body, 2)

	wh, ok := chunk.Body[0].(*ast.WhileStatement)
	require.True(t, ok)
	assert.True(t, wh.OneLine)
	require.Len(t, wh.Body, 1)

	_, ok = chunk.Body[1].(*ast.CallStatement)
	require.True(t, ok)
}

func TestParse_NumericLiteralValues(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"x = 0x1.8", 1.5},
		{"x = 0b1010", 10},
		{"x = 1e-3", 0.001},
	}
	for _, test := range tests {
		p := New(test.src)
		chunk := p.Parse()
		require.Empty(t, p.Errors, test.src)
		assign, ok := chunk.Body[0].(*ast.AssignmentStatement)
		require.True(t, ok, test.src)
		num, ok := assign.Init[0].(*ast.NumericLiteral)
		require.True(t, ok, test.src)
		assert.InDelta(t, test.want, num.Value, 1e-9, test.src)
	}
}

func TestParse_LocalXEqualsXBindsOuterX(t *testing.T) {
	// Parser doesn't resolve scope itself; it just needs to produce the
	// Init expression referencing a plain Identifier('x') distinct from the
	// newly declared local. Binding semantics are verified in resolve_test.go.
	p := New("local x = x")
	chunk := p.Parse()
	require.Empty(t, p.Errors)
	local, ok := chunk.Body[0].(*ast.LocalStatement)
	require.True(t, ok)
	require.Len(t, local.Names, 1)
	assert.Equal(t, "x", local.Names[0].Name)
	require.Len(t, local.Init, 1)
	id, ok := local.Init[0].(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "x", id.Name)
}

func TestParse_MethodDeclarationPrependsSelf(t *testing.T) {
	p := New("function t:m(a) end")
	chunk := p.Parse()
	require.Empty(t, p.Errors)
	fn, ok := chunk.Body[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.True(t, fn.IsMethod)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "self", fn.Parameters[0].Name)
	assert.Equal(t, "a", fn.Parameters[1].Name)
}

func TestParse_CompoundAssignmentOperators(t *testing.T) {
	ops := []string{"+=", "-=", "*=", "/=", "%=", "^=", "..=", "&=", "|=", "^^=", "<<=", ">>=", ">>>=", "<<>=", ">><="}
	for _, op := range ops {
		src := "x " + op + " 1"
		p := New(src)
		chunk := p.Parse()
		require.Empty(t, p.Errors, src)
		assign, ok := chunk.Body[0].(*ast.AssignmentStatement)
		require.True(t, ok, src)
		assert.Equal(t, op, assign.Operator, src)
	}
}

func TestParse_NotEqualsNormalizedToTilde(t *testing.T) {
	p := New("x = a != b")
	chunk := p.Parse()
	require.Empty(t, p.Errors)
	assign := chunk.Body[0].(*ast.AssignmentStatement)
	bin := assign.Init[0].(*ast.BinaryExpression)
	assert.Equal(t, "~=", bin.Operator)
}

func TestParse_UnexpectedTokenRecoversAndContinues(t *testing.T) {
	p := New("local = \ni = 1")
	chunk := p.Parse()
	require.NotEmpty(t, p.Errors)
	// recovery should still find the second statement
	found := false
	for _, s := range chunk.Body {
		if a, ok := s.(*ast.AssignmentStatement); ok && a.Operator == "=" {
			found = true
		}
	}
	assert.True(t, found, "parser should recover and still parse the trailing assignment")
}
