package lexers

import (
	"testing"

	"github.com/reusee/unasm/diags"
	"github.com/reusee/unasm/tokens"
)

func TestLexer(t *testing.T) {
	type TokenInfo struct {
		Kind tokens.Kind
		Text string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "42;",
			tokens: []TokenInfo{
				{tokens.KindInteger, "42"},
				{tokens.KindSemicolon, ";"},
			},
		},
		{
			input: "-123; ~5; !0;",
			tokens: []TokenInfo{
				{tokens.KindNeg, "-"},
				{tokens.KindInteger, "123"},
				{tokens.KindSemicolon, ";"},
				{tokens.KindBitNot, "~"},
				{tokens.KindInteger, "5"},
				{tokens.KindSemicolon, ";"},
				{tokens.KindLogNot, "!"},
				{tokens.KindInteger, "0"},
				{tokens.KindSemicolon, ";"},
			},
		},
		{
			input: "007 99999999999999999999999999",
			tokens: []TokenInfo{
				{tokens.KindInteger, "007"},
				{tokens.KindInteger, "99999999999999999999999999"},
			},
		},
		{
			input: "~-2;",
			tokens: []TokenInfo{
				{tokens.KindBitNot, "~"},
				{tokens.KindNeg, "-"},
				{tokens.KindInteger, "2"},
				{tokens.KindSemicolon, ";"},
			},
		},
		{
			input: "abc;",
			tokens: []TokenInfo{
				{tokens.KindUnknown, "a"},
				{tokens.KindUnknown, "b"},
				{tokens.KindUnknown, "c"},
				{tokens.KindSemicolon, ";"},
			},
		},
		{
			input: "12ab",
			tokens: []TokenInfo{
				{tokens.KindInteger, "12"},
				{tokens.KindUnknown, "a"},
				{tokens.KindUnknown, "b"},
			},
		},
		{
			input: "+1",
			tokens: []TokenInfo{
				{tokens.KindUnknown, "+"},
				{tokens.KindInteger, "1"},
			},
		},
		{
			input: "世;",
			tokens: []TokenInfo{
				{tokens.KindUnknown, "世"},
				{tokens.KindSemicolon, ";"},
			},
		},
		{
			input: "\xff1",
			tokens: []TokenInfo{
				{tokens.KindUnknown, "\xff"},
				{tokens.KindInteger, "1"},
			},
		},
	}

	for _, test := range tests {
		toks := New(test.input, nil).All()
		if len(toks) != len(test.tokens)+1 {
			t.Fatalf("input %q: expected %d tokens, got %d: %v", test.input, len(test.tokens)+1, len(toks), toks)
		}
		for i, expected := range test.tokens {
			if toks[i].Kind != expected.Kind || toks[i].Text != expected.Text {
				t.Fatalf("input %q: token %d: expected %v %q, got %v %q",
					test.input, i, expected.Kind, expected.Text, toks[i].Kind, toks[i].Text)
			}
		}
		if last := toks[len(toks)-1]; last.Kind != tokens.KindEOF || last.Text != "" {
			t.Fatalf("input %q: got %v", test.input, last)
		}
	}
}

func TestPositions(t *testing.T) {
	toks := New("1\n -2;", nil).All()
	expected := []tokens.Token{
		{Kind: tokens.KindInteger, Text: "1", Pos: tokens.Pos{Line: 1, Column: 1}},
		{Kind: tokens.KindNeg, Text: "-", Pos: tokens.Pos{Line: 2, Column: 2}},
		{Kind: tokens.KindInteger, Text: "2", Pos: tokens.Pos{Line: 2, Column: 3}},
		{Kind: tokens.KindSemicolon, Text: ";", Pos: tokens.Pos{Line: 2, Column: 4}},
		{Kind: tokens.KindEOF, Pos: tokens.Pos{Line: 2, Column: 5}},
	}
	if len(toks) != len(expected) {
		t.Fatalf("got %v", toks)
	}
	for i, tok := range toks {
		if tok != expected[i] {
			t.Fatalf("token %d: got %v, expected %v", i, tok, expected[i])
		}
	}
}

func TestIntegerColumn(t *testing.T) {
	toks := New("\t\t 123;\r\n  -45;", nil).All()
	if toks[0].Pos != (tokens.Pos{Line: 1, Column: 4}) {
		t.Fatalf("got %v", toks[0].Pos)
	}
	if toks[1].Pos != (tokens.Pos{Line: 1, Column: 7}) {
		t.Fatalf("got %v", toks[1].Pos)
	}
	if toks[2].Pos != (tokens.Pos{Line: 2, Column: 3}) {
		t.Fatalf("got %v", toks[2].Pos)
	}
	if toks[3].Pos != (tokens.Pos{Line: 2, Column: 4}) {
		t.Fatalf("got %v", toks[3].Pos)
	}
}

func TestWhitespaceOnly(t *testing.T) {
	for _, input := range []string{
		"",
		" ",
		"\n\n\n",
		"\t \r\n ",
	} {
		toks := New(input, nil).All()
		if len(toks) != 1 {
			t.Fatalf("input %q: got %v", input, toks)
		}
		if toks[0].Kind != tokens.KindEOF {
			t.Fatalf("input %q: got %v", input, toks[0])
		}
	}
}

func TestEOFIdempotent(t *testing.T) {
	lexer := New("7;\n", nil)
	lexer.Next()
	lexer.Next()
	first := lexer.Next()
	if first.Kind != tokens.KindEOF {
		t.Fatalf("got %v", first)
	}
	for range 10 {
		tok := lexer.Next()
		if tok != first {
			t.Fatalf("got %v", tok)
		}
	}
	if toks := lexer.All(); len(toks) != 1 || toks[0] != first {
		t.Fatalf("got %v", toks)
	}
}

func TestUnknownCharWarnings(t *testing.T) {
	c := new(diags.Collector)
	toks := New("1 $\n #;", c).All()
	if len(toks) != 5 {
		t.Fatalf("got %v", toks)
	}
	ds := c.Diagnostics()
	if len(ds) != 2 {
		t.Fatalf("got %v", ds)
	}
	if ds[0].Severity != diags.Warning || ds[0].Code != diags.CodeUnknownChar {
		t.Fatalf("got %v", ds[0])
	}
	if ds[0].Pos != (tokens.Pos{Line: 1, Column: 3}) {
		t.Fatalf("got %v", ds[0].Pos)
	}
	if ds[1].Pos != (tokens.Pos{Line: 2, Column: 2}) {
		t.Fatalf("got %v", ds[1].Pos)
	}
	if ds[1].Message != "unknown character '#'" {
		t.Fatalf("got %v", ds[1].Message)
	}
}

func TestTokensIteratorStop(t *testing.T) {
	lexer := New("1;2;", nil)
	var n int
	for range lexer.Tokens() {
		n++
		if n == 2 {
			break
		}
	}
	if tok := lexer.Next(); tok.Kind != tokens.KindInteger || tok.Text != "2" {
		t.Fatalf("got %v", tok)
	}
}

func FuzzTokenize(f *testing.F) {
	for _, seed := range []string{
		"",
		"42;",
		"~-2;",
		"abc; 7;",
		"\n\t 1\r\n",
		"世界!;",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		toks := Tokenize(input, nil)
		if !tokens.Terminated(toks) {
			t.Fatalf("input %q: got %v", input, toks)
		}
		for _, tok := range toks {
			if tok.Pos.Line < 1 || tok.Pos.Column < 1 {
				t.Fatalf("input %q: bad position %v", input, tok)
			}
		}
	})
}
