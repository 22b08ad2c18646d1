/*
File    : pico8ls-core/pico8ls_test.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package pico8ls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_WiresAllFourStagesTogether(t *testing.T) {
	src := "score = 0\nfunction update()\n score = score + 1\nend"
	result := Parse(src)

	require.Empty(t, result.Errors)
	require.NotNil(t, result.AST)
	require.Len(t, result.AST.Body, 2)

	require.Len(t, result.Symbols, 2, "update() and the promoted global score")
	var fn, global bool
	for _, s := range result.Symbols {
		switch s.Name {
		case "update":
			fn = true
		case "score":
			global = true
		}
	}
	assert.True(t, fn)
	assert.True(t, global)

	require.NotNil(t, result.Scopes)
	require.NotNil(t, result.Index)
	assert.Empty(t, result.Warnings, "score is read and written, both via implicit globals, so nothing is undefined")
}

func TestParse_SyntaxErrorsStillYieldBestEffortResult(t *testing.T) {
	result := Parse("local = \ni = 1")
	require.NotEmpty(t, result.Errors)
	require.NotNil(t, result.AST, "a malformed document still produces a best-effort AST")
	assert.NotNil(t, result.Scopes)
	assert.NotNil(t, result.Index)
}

func TestParse_UndefinedReadSurfacesAsWarning(t *testing.T) {
	result := Parse("local x = never_declared")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "never_declared")
}
