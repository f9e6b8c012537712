package syntax

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanner_ScanTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Token{},
		},
		{
			name:  "multi digit number",
			input: "1234",
			want:  []Token{NewToken(TOKEN_NUMBER, "1234", 0)},
		},
		{
			name:  "every operator",
			input: "1+2-3*4/(5)",
			want: []Token{
				NewToken(TOKEN_NUMBER, "1", 0),
				NewToken(TOKEN_ADD, "+", 1),
				NewToken(TOKEN_NUMBER, "2", 2),
				NewToken(TOKEN_SUB, "-", 3),
				NewToken(TOKEN_NUMBER, "3", 4),
				NewToken(TOKEN_MUL, "*", 5),
				NewToken(TOKEN_NUMBER, "4", 6),
				NewToken(TOKEN_DIV, "/", 7),
				NewToken(TOKEN_LPAREN, "(", 8),
				NewToken(TOKEN_NUMBER, "5", 9),
				NewToken(TOKEN_RPAREN, ")", 10),
			},
		},
		{
			name:  "numbers are captured greedily",
			input: "12*345",
			want: []Token{
				NewToken(TOKEN_NUMBER, "12", 0),
				NewToken(TOKEN_MUL, "*", 2),
				NewToken(TOKEN_NUMBER, "345", 3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewScanner(tt.input).ScanTokens()
			require.NoError(t, err)
			require.Equal(t, tt.want, tokens)
		})
	}
}

func TestScanner_LexError(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		pos       int
		remainder string
	}{
		{"space between tokens", "1 + 2", 1, " + 2"},
		{"leading space", " 1", 0, " 1"},
		{"trailing newline", "1+2\n", 3, "\n"},
		{"decimal point", "1.5", 1, ".5"},
		{"identifier", "x*2", 0, "x*2"},
		{"unsupported operator", "2^3", 1, "^3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewScanner(tt.input).ScanTokens()
			require.Nil(t, tokens)
			require.ErrorIs(t, err, ErrLex)

			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr))
			require.Equal(t, tt.pos, lexErr.Pos)
			require.Equal(t, tt.remainder, lexErr.Remainder)
		})
	}
}

func TestLexError_Message(t *testing.T) {
	err := &LexError{Pos: 1, Remainder: " + 2"}
	require.Equal(t, "[col 2] Error at ' + 2': found unparseable token", err.Error())

	long := &LexError{Pos: 0, Remainder: strings.Repeat("x", 40)}
	require.Contains(t, long.Error(), strings.Repeat("x", 16)+"...")
}

func TestScanner_AlphabetNeverFails(t *testing.T) {
	const alphabet = "0123456789+-*/()"
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		var sb strings.Builder
		for n := rng.Intn(30); n > 0; n-- {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		input := sb.String()

		tokens, err := NewScanner(input).ScanTokens()
		require.NoError(t, err, input)

		var joined strings.Builder
		for _, tok := range tokens {
			require.Equal(t, joined.Len(), tok.Pos, input)
			joined.WriteString(tok.Lexeme)
		}
		require.Equal(t, input, joined.String())
	}
}

func TestScanner_ForeignByteAlwaysFails(t *testing.T) {
	for _, c := range []string{" ", "\t", "a", ".", "%", "=", "[", "é"} {
		_, err := NewScanner("1+" + c + "2").ScanTokens()
		require.ErrorIs(t, err, ErrLex, "byte %q", c)
	}
}
