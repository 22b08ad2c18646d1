/*
File    : pico8ls-core/symbols/symbols_test.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package symbols

import (
	"testing"

	"github.com/akashmaji946/pico8ls-core/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []*CodeSymbol {
	t.Helper()
	p := parser.New(src)
	chunk := p.Parse()
	require.Empty(t, p.Errors, src)
	return Extract(chunk)
}

func TestExtract_TopLevelFunction(t *testing.T) {
	syms := parse(t, "function f(x, y)\nend")
	require.Len(t, syms, 1)
	assert.Equal(t, KindFunction, syms[0].Kind)
	assert.Equal(t, "f", syms[0].Name)
	assert.Equal(t, "f(x, y)", syms[0].Detail)
}

func TestExtract_LocalNestsUnderEnclosingFunction(t *testing.T) {
	syms := parse(t, "function f()\n local x = 1\nend")
	require.Len(t, syms, 1)
	require.Len(t, syms[0].Children, 1)
	assert.Equal(t, KindLocalVariable, syms[0].Children[0].Kind)
	assert.Equal(t, "x", syms[0].Children[0].Name)
}

func TestExtract_TopLevelLocalHasNoParent(t *testing.T) {
	syms := parse(t, "local y = 1")
	require.Len(t, syms, 1)
	assert.Equal(t, KindLocalVariable, syms[0].Kind)
	assert.Equal(t, "y", syms[0].Name)
}

func TestExtract_GlobalPromotedToTopLevelRegardlessOfNesting(t *testing.T) {
	syms := parse(t, "function f()\n if true then\n  g = 1\n end\nend")
	require.Len(t, syms, 2)

	var global *CodeSymbol
	for _, s := range syms {
		if s.Kind == KindGlobalVariable {
			global = s
		}
	}
	require.NotNil(t, global)
	assert.Equal(t, "g", global.Name)
}

func TestExtract_LocalWriteIsNotPromotedToGlobal(t *testing.T) {
	syms := parse(t, "function f()\n local x = 1\n x = 2\nend")
	require.Len(t, syms, 1)
	require.Len(t, syms[0].Children, 1)
	assert.Equal(t, KindLocalVariable, syms[0].Children[0].Kind)
}

func TestExtract_GlobalDedupedOnRepeatedWrite(t *testing.T) {
	syms := parse(t, "g = 1\ng = 2")
	require.Len(t, syms, 1)
	assert.Equal(t, KindGlobalVariable, syms[0].Kind)
}

func TestExtract_MethodDeclarationOmitsSelfFromSignature(t *testing.T) {
	syms := parse(t, "function t:m(a)\nend")
	require.Len(t, syms, 1)
	assert.Equal(t, "t:m", syms[0].Name)
	assert.Equal(t, "t:m(a)", syms[0].Detail)
}

// An anonymous function assigned to a local never gets its own Function
// symbol (only named FunctionDeclarations do), but its body is still walked:
// a nested local falls back to the chunk level, the nearest container that
// actually has a symbol to attach to.
func TestExtract_AnonymousFunctionExpressionBodyIsStillWalked(t *testing.T) {
	syms := parse(t, "local f = function(x)\n local y = 1\nend")
	require.Len(t, syms, 2)
	assert.Equal(t, KindLocalVariable, syms[0].Kind)
	assert.Equal(t, "f", syms[0].Name)
	assert.Empty(t, syms[0].Children)
	assert.Equal(t, KindLocalVariable, syms[1].Kind)
	assert.Equal(t, "y", syms[1].Name)
}

func TestExtract_GlobalInsideAnonymousClosureStillPromoted(t *testing.T) {
	syms := parse(t, "local t = function()\n g = 1\nend")
	require.Len(t, syms, 2)
	var global *CodeSymbol
	for _, s := range syms {
		if s.Kind == KindGlobalVariable {
			global = s
		}
	}
	require.NotNil(t, global)
	assert.Equal(t, "g", global.Name)
}
