package cmake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_SimpleStatement(t *testing.T) {
	stmts := Scan(`set(PROJECT_VERSION 1.3.1)`)

	require.Len(t, stmts, 1)
	assert.Equal(t, "set", stmts[0].Command)
	assert.Equal(t, []string{"PROJECT_VERSION", "1.3.1"}, stmts[0].Args)
}

func TestScan_LowercasesCommand(t *testing.T) {
	stmts := Scan(`FetchContent_MakeAvailable(fmt)`)

	require.Len(t, stmts, 1)
	assert.Equal(t, "fetchcontent_makeavailable", stmts[0].Command)
}

func TestScan_MultilineArguments(t *testing.T) {
	src := `FetchContent_Declare(
    googletest
    GIT_REPOSITORY https://github.com/google/googletest.git
    GIT_TAG v1.14.0
)`

	stmts := Scan(src)

	require.Len(t, stmts, 1)
	assert.Equal(t, []string{
		"googletest",
		"GIT_REPOSITORY", "https://github.com/google/googletest.git",
		"GIT_TAG", "v1.14.0",
	}, stmts[0].Args)
}

func TestScan_SkipsComments(t *testing.T) {
	src := `# set(PROJECT_VERSION 9.9.9)
set(PROJECT_VERSION 1.0.0) # trailing comment
set(OTHER # inline comment inside args
    value)`

	stmts := Scan(src)

	require.Len(t, stmts, 2)
	assert.Equal(t, []string{"PROJECT_VERSION", "1.0.0"}, stmts[0].Args)
	assert.Equal(t, []string{"OTHER", "value"}, stmts[1].Args)
}

func TestScan_QuotedArguments(t *testing.T) {
	stmts := Scan(`set(DESC "a quoted value with spaces")`)

	require.Len(t, stmts, 1)
	assert.Equal(t, []string{"DESC", "a quoted value with spaces"}, stmts[0].Args)
}

func TestScan_NestedParens(t *testing.T) {
	stmts := Scan(`if(NOT (A AND B))`)

	require.Len(t, stmts, 1)
	assert.Equal(t, "if", stmts[0].Command)
	assert.Equal(t, []string{"NOT", "(A", "AND", "B)"}, stmts[0].Args)
}

func TestScan_WhitespaceBetweenCommandAndParen(t *testing.T) {
	stmts := Scan("set   (\n  PROJECT_VERSION\n  2.1.0\n)")

	require.Len(t, stmts, 1)
	assert.Equal(t, []string{"PROJECT_VERSION", "2.1.0"}, stmts[0].Args)
}

func TestScan_IgnoresNonStatements(t *testing.T) {
	src := `this is just prose, not a statement
also_no_parens
set(OK 1)`

	stmts := Scan(src)

	require.Len(t, stmts, 1)
	assert.Equal(t, []string{"OK", "1"}, stmts[0].Args)
}

func TestScan_UnterminatedArgumentList(t *testing.T) {
	stmts := Scan(`set(A 1)
set(BROKEN never closes`)

	require.Len(t, stmts, 1)
	assert.Equal(t, []string{"A", "1"}, stmts[0].Args)
}

func TestScan_EmptyInput(t *testing.T) {
	assert.Empty(t, Scan(""))
}
