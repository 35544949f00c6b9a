package tokenise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/tokenise"
)

func TestMapElide(t *testing.T) {
	def := tokenise.New()
	tokens := def.Map(def.Tokenise("a b c"), tokenise.Elide(tokenise.Space))
	require.Equal(t, []tokenise.Token{
		tok(tokenise.Identifier, "a", 1, 1),
		tok(tokenise.Identifier, "b", 1, 3),
		tok(tokenise.Identifier, "c", 1, 5),
	}, tokens)
}

func TestMapUnquote(t *testing.T) {
	def := tokenise.New()
	tokens := def.Map(def.Tokenise(`"a \"b\" c"`), tokenise.Unquote())
	require.Len(t, tokens, 1)
	require.Equal(t, `a "b" c`, tokens[0].Value)
	require.Equal(t, tokenise.Hash(`a "b" c`), tokens[0].UID, "UID must follow the mapped value")
}

func TestMapUnquoteLeavesMalformedStrings(t *testing.T) {
	def := tokenise.New()
	tokens := def.Map(def.Tokenise(`"unterminated`), tokenise.Unquote())
	require.Len(t, tokens, 1)
	require.Equal(t, `"unterminated`, tokens[0].Value)
}

func TestMapUpper(t *testing.T) {
	def := tokenise.New(tokenise.MatchInstruction(tokenise.Keywords("select")))
	tokens := def.Map(def.Tokenise(`select "x" from`), tokenise.Upper())
	require.Equal(t, "SELECT", tokens[0].Value)
	require.Equal(t, `"x"`, tokens[2].Value, "strings are not upper-cased by default")
	require.Equal(t, "FROM", tokens[4].Value)
}

func TestMapChains(t *testing.T) {
	def := tokenise.New()
	tokens := def.Map(def.Tokenise(`a "b" c`),
		tokenise.Elide(tokenise.Space),
		tokenise.Unquote(),
		tokenise.Upper(),
	)
	require.Equal(t, []string{"A", "b", "C"}, values(tokens))
}

func values(tokens []tokenise.Token) []string {
	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[i] = token.Value
	}
	return out
}
