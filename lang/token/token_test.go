package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindStringCoversEveryKind(t *testing.T) {
	for k := ILLEGAL; k < maxKind; k++ {
		require.NotEmpty(t, k.String(), "kind %d has no string representation", k)
	}
}

func TestGoStringQuotesPunctuationAndKeywords(t *testing.T) {
	require.Equal(t, "identifier", IDENT.GoString())
	require.Equal(t, "'+'", PLUS.GoString())
	require.Equal(t, "'class'", CLASS.GoString())
}

func TestKeywordsMapsEveryReservedWord(t *testing.T) {
	for word, kind := range Keywords {
		require.Equal(t, word, kindNames[kind])
	}
}

func TestTokenStringIsKindAndLexeme(t *testing.T) {
	tok := Token{Kind: NUMBER, Lexeme: "3.5", Number: 3.5, Line: 1}
	require.Equal(t, "number literal 3.5", tok.String())
}
