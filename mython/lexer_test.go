package mython

import (
	"strings"
	"testing"
)

func tokenTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	lx, err := newLexer(strings.NewReader(src))
	if err != nil {
		t.Fatalf("newLexer: %v", err)
	}
	var types []TokenType
	for {
		tok := lx.Current()
		types = append(types, tok.Type)
		if tok.Type == tokenEOF {
			break
		}
		lx.Next()
	}
	return types
}

func TestLexerSimplePrint(t *testing.T) {
	got := tokenTypes(t, `print "hello", 1 + 2`)
	want := []TokenType{
		tokenPrint, tokenString, tokenChar, tokenNumber, tokenChar, tokenNumber, tokenNewline, tokenEOF,
	}
	assertTokenTypes(t, got, want)
}

func TestLexerIndentDedent(t *testing.T) {
	src := "if True:\n  print 1\nprint 2\n"
	got := tokenTypes(t, src)
	want := []TokenType{
		tokenIf, tokenTrue, tokenChar, tokenNewline,
		tokenIndent, tokenPrint, tokenNumber, tokenNewline,
		tokenDedent, tokenPrint, tokenNumber, tokenNewline,
		tokenEOF,
	}
	assertTokenTypes(t, got, want)
}

func TestLexerOddIndentIsRejected(t *testing.T) {
	_, err := newLexer(strings.NewReader("if True:\n   print 1\n"))
	if err == nil {
		t.Fatal("expected an error for odd indentation, got nil")
	}
	lexErr, ok := err.(*LexError)
	if !ok || lexErr.Kind != "BadIndent" {
		t.Fatalf("expected BadIndent LexError, got %#v", err)
	}
}

func TestLexerCommentLineIgnored(t *testing.T) {
	got := tokenTypes(t, "# a full-line comment\nprint 1\n")
	want := []TokenType{tokenPrint, tokenNumber, tokenNewline, tokenEOF}
	assertTokenTypes(t, got, want)
}

func TestLexerStringEscapes(t *testing.T) {
	lx, err := newLexer(strings.NewReader(`print "a\nb\t\"c\""` + "\n"))
	if err != nil {
		t.Fatalf("newLexer: %v", err)
	}
	lx.Next() // print
	tok := lx.Current()
	if tok.Type != tokenString {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if want := "a\nb\t\"c\""; tok.Str != want {
		t.Fatalf("got %q, want %q", tok.Str, want)
	}
}

func assertTokenTypes(t *testing.T, got, want []TokenType) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (full: got %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}
