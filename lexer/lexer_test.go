package lexer

import (
	"errors"
	"io"
	"testing"

	"github.com/skx/armjit/compilerrors"
	"github.com/skx/armjit/token"
)

func mustTokens(t *testing.T, input string) []token.Token {
	t.Helper()

	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) returned an unexpected error: %s", input, err)
	}
	return toks
}

func TestParseNumbers(t *testing.T) {
	toks := mustTokens(t, "3 43 239")

	want := []int32{3, 43, 239}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Kind() != token.Number {
			t.Fatalf("token %d: kind = %s, want Number", i, tok.Kind())
		}
		if tok.Value() != want[i] {
			t.Errorf("token %d: value = %d, want %d", i, tok.Value(), want[i])
		}
	}
}

func TestParseOperators(t *testing.T) {
	toks := mustTokens(t, "+ - * ( ) ,")

	want := []token.Op{token.PLUS, token.MINUS, token.MULTIPLY, token.OpenBracket, token.CloseBracket, token.Comma}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Kind() != token.Operation {
			t.Fatalf("token %d: kind = %s, want Operation", i, tok.Kind())
		}
		if tok.Op() != want[i] {
			t.Errorf("token %d: op = %q, want %q", i, tok.Op(), want[i])
		}
	}
}

func TestVariableVsFunction(t *testing.T) {
	toks := mustTokens(t, "a f(1)")

	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5: %v", len(toks), toks)
	}
	if toks[0].Kind() != token.Variable || toks[0].Name() != "a" {
		t.Errorf("token 0 = %v, want Variable(a)", toks[0])
	}
	if toks[1].Kind() != token.Function || toks[1].Name() != "f" || toks[1].Arity() != 1 {
		t.Errorf("token 1 = %v, want Function(f, arity=1)", toks[1])
	}
	// the "(" must still be tokenized normally after the arity scan.
	if toks[2].Kind() != token.Operation || toks[2].Op() != token.OpenBracket {
		t.Errorf("token 2 = %v, want Operation(()", toks[2])
	}
}

func TestIdentifiersMayContainDigits(t *testing.T) {
	toks := mustTokens(t, "a1b2")

	if len(toks) != 1 || toks[0].Kind() != token.Variable || toks[0].Name() != "a1b2" {
		t.Fatalf("got %v, want a single Variable(a1b2)", toks)
	}
}

func TestLeadingDigitIsNotPartOfIdentifier(t *testing.T) {
	// "3a" must lex as Number(3) then Variable(a), not one identifier.
	toks := mustTokens(t, "3a")

	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(toks), toks)
	}
	if toks[0].Kind() != token.Number || toks[0].Value() != 3 {
		t.Errorf("token 0 = %v, want Number(3)", toks[0])
	}
	if toks[1].Kind() != token.Variable || toks[1].Name() != "a" {
		t.Errorf("token 1 = %v, want Variable(a)", toks[1])
	}
}

func TestFunctionArity(t *testing.T) {
	tests := []struct {
		input string
		arity int
	}{
		{"f()", 0},
		{"f(  )", 0},
		{"f(1)", 1},
		{"f(1,2)", 2},
		{"f(1, 2, 3)", 3},
		{"f((1+2)*3, 4)", 2},
		{"f(g(1,2), 3)", 2},
	}

	for _, test := range tests {
		toks := mustTokens(t, test.input)
		if len(toks) == 0 || toks[0].Kind() != token.Function {
			t.Fatalf("%q: expected first token to be a Function, got %v", test.input, toks)
		}
		if got := toks[0].Arity(); got != test.arity {
			t.Errorf("%q: arity = %d, want %d", test.input, got, test.arity)
		}
	}
}

func TestUnknownSymbol(t *testing.T) {
	_, err := Tokenize("3 $ 5")

	var unknown *compilerrors.UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected an UnknownSymbolError, got %v", err)
	}
	if unknown.Ch != '$' {
		t.Errorf("UnknownSymbolError.Ch = %q, want %q", unknown.Ch, '$')
	}
}

func TestMissingCloseBracketDuringArityScan(t *testing.T) {
	_, err := Tokenize("f(1, 2")

	if !errors.Is(err, compilerrors.ErrMissingCloseBracket) {
		t.Fatalf("expected ErrMissingCloseBracket, got %v", err)
	}
}

func TestNextReturnsEOF(t *testing.T) {
	l := New("")

	_, err := l.Next()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF on empty input, got %v", err)
	}
}
