/*
File    : pico8ls-core/resolve/resolve_test.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package resolve

import (
	"testing"

	"github.com/akashmaji946/pico8ls-core/ast"
	"github.com/akashmaji946/pico8ls-core/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSrc(t *testing.T, src string) (*ast.Chunk, *Result) {
	t.Helper()
	p := parser.New(src)
	chunk := p.Parse()
	require.Empty(t, p.Errors, src)
	return chunk, Resolve(chunk)
}

func TestResolve_LocalXEqualsXBindsOuterScope(t *testing.T) {
	chunk, result := resolveSrc(t, "x = 1\nlocal x = x")
	require.Len(t, chunk.Body, 2)

	local := chunk.Body[1].(*ast.LocalStatement)
	initID := local.Init[0].(*ast.Identifier)
	assert.False(t, initID.IsLocal, "the init's x must resolve to the pre-existing global, not the new local")

	newLocalDef, _ := result.Root.LookUp("x")
	assert.Equal(t, DefLocal, newLocalDef.Kind, "after the statement, x in this scope refers to the new local")
}

func TestResolve_SelfRegisteredAsFirstParameter(t *testing.T) {
	chunk, _ := resolveSrc(t, "function t:m(a)\n return a\nend")
	fn := chunk.Body[0].(*ast.FunctionDeclaration)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "self", fn.Parameters[0].Name)
}

func TestResolve_UndeclaredTopLevelWriteCreatesGlobalFoundInIndex(t *testing.T) {
	_, result := resolveSrc(t, "score = 0")
	du := result.Index.Lookup(1, 0)
	require.NotNil(t, du)
	require.Len(t, du.Definitions, 1)
	assert.Equal(t, 0, du.Definitions[0].Start.Column)
}

func TestResolve_UndefinedReadProducesWarning(t *testing.T) {
	_, result := resolveSrc(t, "local x = never_declared")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "never_declared")
}

func TestResolve_RepeatUntilResolvesInBodyScope(t *testing.T) {
	_, result := resolveSrc(t, "repeat\n local done = true\nuntil done")
	assert.Empty(t, result.Warnings, "`until done` should resolve against the body-declared local, not warn as undefined")
}

func TestResolve_LocalFunctionCanCallItselfRecursively(t *testing.T) {
	_, result := resolveSrc(t, "local function fact(n)\n if n == 0 then return 1 end\n return n * fact(n - 1)\nend")
	assert.Empty(t, result.Warnings, "a local function must be able to reference its own name for recursion")
}

func TestResolve_ForLoopVariableScopedToBody(t *testing.T) {
	_, result := resolveSrc(t, "for i = 1, 10 do\n x = i\nend\ny = i")
	// i is a local inside the loop body but undeclared after it, so the
	// trailing `y = i` should produce exactly one undefined-identifier warning.
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "i")
}

func TestResolve_ParametersAreLocalToFunctionBody(t *testing.T) {
	_, result := resolveSrc(t, "function f(x)\n return x + 1\nend")
	assert.Empty(t, result.Warnings)
}

func TestResolve_ShadowingInnerScopeWinsOverOuterLocal(t *testing.T) {
	chunk, result := resolveSrc(t, "local x = 1\nif true then\n local x = 2\n local z = x\nend")
	ifStmt := chunk.Body[1].(*ast.IfStatement)
	local := ifStmt.Clauses[0].Body[1].(*ast.LocalStatement)
	arg := local.Init[0].(*ast.Identifier)
	assert.True(t, arg.IsLocal)
	assert.Empty(t, result.Warnings)
}

func TestResolve_NonLocalFunctionDeclarationIsGlobal(t *testing.T) {
	_, result := resolveSrc(t, "function f()\nend\nf()")
	assert.Empty(t, result.Warnings, "calling a previously-declared global function must not warn")
}

func TestResolve_MemberChainResolvesOnlyBase(t *testing.T) {
	_, result := resolveSrc(t, "local t = {}\nlocal z = t.a.b")
	assert.Empty(t, result.Warnings, "only the base `t` of a member chain is a real identifier reference")
}

func TestResolve_MemberChainRecordsEachMemberNamePosition(t *testing.T) {
	chunk, result := resolveSrc(t, "local t = {}\nlocal z = t.a.b")
	local := chunk.Body[1].(*ast.LocalStatement)
	chain := local.Init[0].(*ast.MemberExpression) // t.a.b
	inner := chain.Target.(*ast.MemberExpression)   // t.a

	duOuter := result.Index.Lookup(chain.Identifier.Bounds().Start.Line, chain.Identifier.Bounds().Start.Column)
	require.NotNil(t, duOuter, "hovering `.b` should find the base's definition, not nil")
	duInner := result.Index.Lookup(inner.Identifier.Bounds().Start.Line, inner.Identifier.Bounds().Start.Column)
	require.NotNil(t, duInner, "hovering `.a` should find the base's definition, not nil")

	baseDef, _ := result.Root.LookUp("t")
	require.NotNil(t, baseDef)
	baseDu := result.Index.Lookup(baseDef.Bounds.Start.Line, baseDef.Bounds.Start.Column)
	require.NotNil(t, baseDu)
	assert.Same(t, baseDu, duOuter, "`.b`'s entry is the same DefinitionsUsages as the base `t`'s")
	assert.Same(t, baseDu, duInner, "`.a`'s entry is the same DefinitionsUsages as the base `t`'s")
}

func TestResolve_ScopeLookupScopeForFindsInnermostContainingScope(t *testing.T) {
	chunk, result := resolveSrc(t, "if true then\n local x = 1\nend")
	ifStmt := chunk.Body[0].(*ast.IfStatement)
	innerPos := ifStmt.Clauses[0].Body[0].Bounds().Start
	scope := result.Root.LookupScopeFor(innerPos)
	assert.NotEqual(t, result.Root.ID, scope.ID)
}
