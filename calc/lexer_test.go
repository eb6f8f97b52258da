package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// A test helper function that just aggregates tokens into a slice for easier
// assertions.
func getTokens(expr string, lastResult float64) ([]token, error) {
	tokens := []token{}
	err := lex(expr, lastResult, func(tok token) {
		tokens = append(tokens, tok)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func requireNumber(t *testing.T, actual token, value float64, col int) {
	t.Helper()
	require.Equal(t, tokenTypeNumber, actual.tokType, "token type")
	require.Equal(t, value, actual.value, "token value")
	require.Equal(t, col, actual.col, "token col")
}

func requireOperator(t *testing.T, actual token, op byte, col int) {
	t.Helper()
	require.Equal(t, tokenTypeOperator, actual.tokType, "token type")
	require.Equal(t, op, actual.op, "token op")
	require.Equal(t, col, actual.col, "token col")
}

func TestLexerSingleNumber(t *testing.T) {
	tokens, err := getTokens("42", 0)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	requireNumber(t, tokens[0], 42, 1)
}

func TestLexerDecimal(t *testing.T) {
	tokens, err := getTokens("3.25", 0)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	requireNumber(t, tokens[0], 3.25, 1)
}

func TestLexerLeadingDot(t *testing.T) {
	tokens, err := getTokens(".5", 0)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	requireNumber(t, tokens[0], 0.5, 1)
}

func TestLexerBareDot(t *testing.T) {
	_, err := getTokens(". + 1", 0)
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestLexerTwoDecimalPoints(t *testing.T) {
	_, err := getTokens("1.2.3", 0)
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestLexerExpression(t *testing.T) {
	tokens, err := getTokens("3 + 4 * 2", 0)
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	requireNumber(t, tokens[0], 3, 1)
	requireOperator(t, tokens[1], '+', 3)
	requireNumber(t, tokens[2], 4, 5)
	requireOperator(t, tokens[3], '*', 7)
	requireNumber(t, tokens[4], 2, 9)
}

func TestLexerParens(t *testing.T) {
	tokens, err := getTokens("(1)", 0)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.Equal(t, tokenTypeLParen, tokens[0].tokType)
	requireNumber(t, tokens[1], 1, 2)
	require.Equal(t, tokenTypeRParen, tokens[2].tokType)
}

func TestLexerAllOperators(t *testing.T) {
	tokens, err := getTokens("1+2-3*4/5%6^7", 0)
	require.NoError(t, err)
	require.Len(t, tokens, 13)
	for i, op := range []byte{'+', '-', '*', '/', '%', '^'} {
		requireOperator(t, tokens[i*2+1], op, (i+1)*2)
	}
}

func TestLexerAnsSubstitution(t *testing.T) {
	tokens, err := getTokens("Ans + 1", 10)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	requireNumber(t, tokens[0], 10, 1)
	requireOperator(t, tokens[1], '+', 5)
	requireNumber(t, tokens[2], 1, 7)
}

func TestLexerFunctionName(t *testing.T) {
	tokens, err := getTokens("sqrt(16)", 0)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	require.Equal(t, tokenTypeFunction, tokens[0].tokType)
	require.Equal(t, "sqrt", tokens[0].name)
	require.Equal(t, tokenTypeLParen, tokens[1].tokType)
	requireNumber(t, tokens[2], 16, 6)
	require.Equal(t, tokenTypeRParen, tokens[3].tokType)
}

// Unknown names are not the lexer's problem: validation happens at
// evaluation time.
func TestLexerUnknownFunctionNameAccepted(t *testing.T) {
	tokens, err := getTokens("foo(3)", 0)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	require.Equal(t, tokenTypeFunction, tokens[0].tokType)
	require.Equal(t, "foo", tokens[0].name)
}

func TestLexerInvalidCharacter(t *testing.T) {
	_, err := getTokens("3 + #", 0)
	require.ErrorIs(t, err, ErrInvalidCharacter)
	require.Contains(t, err.Error(), "column 5")
}

func TestLexerTooManyTokens(t *testing.T) {
	expr := strings.TrimSpace(strings.Repeat("1 ", maxTokens+1))
	_, err := getTokens(expr, 0)
	require.ErrorIs(t, err, ErrTooManyTokens)
}

func TestLexerExactlyMaxTokens(t *testing.T) {
	expr := strings.TrimSpace(strings.Repeat("1 ", maxTokens))
	tokens, err := getTokens(expr, 0)
	require.NoError(t, err)
	require.Len(t, tokens, maxTokens)
}

func TestLexerWhitespaceOnly(t *testing.T) {
	tokens, err := getTokens(" \t\r\n", 0)
	require.NoError(t, err)
	require.Len(t, tokens, 0)
}
