package tokenise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/tokenise"
)

func TestUpgrade(t *testing.T) {
	plex := tokenise.Upgrade(tokenise.Default.Lex("hello world"), tokenise.Space)
	hello := tok(tokenise.Identifier, "hello", 1, 1)
	space := tok(tokenise.Space, " ", 1, 6)
	world := tok(tokenise.Identifier, "world", 1, 7)

	require.Equal(t, hello, plex.Peek(0))
	require.Equal(t, hello, plex.Peek(0), "peeking must not consume")
	require.Equal(t, []tokenise.Token{hello, space, world}, plex.Range(0, 3))

	require.Equal(t, hello, plex.Next())
	require.Equal(t, world, plex.Peek(0), "should have skipped whitespace")
	require.Equal(t, space, plex.RawPeek(0), "raw peek should see whitespace")
	require.Equal(t, 1, plex.Cursor())
	require.Equal(t, tokenise.RawCursor(1), plex.RawCursor())

	require.Equal(t, world, plex.Next())
	require.True(t, plex.Next().EOF())
	require.True(t, plex.Peek(0).EOF())
}

func TestPeekingLexerClone(t *testing.T) {
	plex := tokenise.Upgrade(tokenise.Default.Lex("a b c"), tokenise.Space)
	require.Equal(t, "a", plex.Next().Value)

	clone := plex.Clone()
	require.Equal(t, "b", clone.Next().Value)
	require.Equal(t, "c", clone.Next().Value)

	// Original is unaffected by the clone's progress.
	require.Equal(t, "b", plex.Next().Value)
}

func TestPeekBeyondEnd(t *testing.T) {
	plex := tokenise.Upgrade(tokenise.Default.Lex("x"))
	require.True(t, plex.Peek(5).EOF())
	require.True(t, plex.RawPeek(5).EOF())
}
