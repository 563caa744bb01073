package lexer

import "testing"

func TestNextTokenBasicForm(t *testing.T) {
	input := `(+ १ २) ; जोड गर्नुहोस्
'(क ख ग)
"नमस्ते"`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "+"},
		{TOKEN_NUMBER, "१"},
		{TOKEN_NUMBER, "२"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_QUOTE, "'"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "क"},
		{TOKEN_IDENT, "ख"},
		{TOKEN_IDENT, "ग"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_STRING, "नमस्ते"},
		{TOKEN_EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenSignedNumbers(t *testing.T) {
	input := `+ +२ -५`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_IDENT, "+"},
		{TOKEN_NUMBER, "+२"},
		{TOKEN_NUMBER, "-५"},
		{TOKEN_EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType || tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - got=%s %q, want=%s %q", i, tok.Type, tok.Literal, tt.expectedType, tt.expectedLiteral)
		}
	}
}

func TestNextTokenReservedOperatorGlyphsLexAsIdent(t *testing.T) {
	input := `यदि आयात नामक ल्याम्बडा ==`

	l := New(input)
	for i := 0; i < 5; i++ {
		tok := l.NextToken()
		if tok.Type != TOKEN_IDENT {
			t.Fatalf("token %d: expected IDENT, got %s", i, tok.Type)
		}
	}
}

func TestNextTokenIllegalBareDelimiterNeverOccurs(t *testing.T) {
	l := New(`()`)
	if tok := l.NextToken(); tok.Type != TOKEN_LPAREN {
		t.Fatalf("expected LPAREN, got %s", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != TOKEN_RPAREN {
		t.Fatalf("expected RPAREN, got %s", tok.Type)
	}
}
