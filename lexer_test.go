package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func lexInput(inputStr string) *Lexer {
	l := NewLexer([]byte(inputStr))
	l.NextToken()
	return l
}

func TestFloatLiteral(t *testing.T) {
	l := lexInput("12.5")
	be.Equal(t, l.CurrTokenType, FLOAT)
	be.Equal(t, l.CurrLiteral, "12.5")
	be.Equal(t, l.CurrFloat, 12.5)
}

func TestFloatLiteralWithoutFraction(t *testing.T) {
	l := lexInput("42")
	be.Equal(t, l.CurrTokenType, FLOAT)
	be.Equal(t, l.CurrLiteral, "42")
	be.Equal(t, l.CurrFloat, 42.0)
}

func TestIdentifier(t *testing.T) {
	l := lexInput("foobar")
	be.Equal(t, l.CurrTokenType, IDENT)
	be.Equal(t, l.CurrLiteral, "foobar")
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"=", ASSIGN},
		{"+", PLUS},
		{"-", MINUS},
		{"*", ASTERISK},
		{"/", SLASH},
		{"%", PERCENT},
		{"&", AMP},
		{"==", EQ},
		{"!=", NOT_EQ},
		{"<", LT},
		{">", GT},
		{"<=", LE},
		{">=", GE},
		{"+=", PLUS_ASSIGN},
		{"-=", MINUS_ASSIGN},
		{"*=", ASTERISK_ASSIGN},
		{"/=", SLASH_ASSIGN},
		{"->", ARROW},
	}

	for _, tt := range tests {
		l := lexInput(tt.input)
		be.Equal(t, l.CurrTokenType, tt.expected)
	}
}

func TestDelimiters(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"(", LPAREN},
		{")", RPAREN},
		{"{", LBRACE},
		{"}", RBRACE},
		{",", COMMA},
		{";", SEMICOLON},
	}

	for _, tt := range tests {
		l := lexInput(tt.input)
		be.Equal(t, l.CurrTokenType, tt.typ)
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"fn", FN},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"true", TRUE},
		{"false", FALSE},
	}

	for _, tt := range tests {
		l := lexInput(tt.input)
		be.Equal(t, l.CurrTokenType, tt.typ)
	}
}

func TestKeywordPrefixIsIdentifier(t *testing.T) {
	l := lexInput("iffy")
	be.Equal(t, l.CurrTokenType, IDENT)
	be.Equal(t, l.CurrLiteral, "iffy")
}

func TestTokenSequence(t *testing.T) {
	l := lexInput("a, b = pair(1.5)")

	expected := []struct {
		typ     TokenType
		literal string
	}{
		{IDENT, "a"},
		{COMMA, ","},
		{IDENT, "b"},
		{ASSIGN, "="},
		{IDENT, "pair"},
		{LPAREN, "("},
		{FLOAT, "1.5"},
		{RPAREN, ")"},
		{EOF, ""},
	}

	for _, exp := range expected {
		be.Equal(t, l.CurrTokenType, exp.typ)
		be.Equal(t, l.CurrLiteral, exp.literal)
		l.NextToken()
	}
}

func TestLineComment(t *testing.T) {
	l := lexInput("// a comment\n1.5")
	be.Equal(t, l.CurrTokenType, FLOAT)
	be.Equal(t, l.CurrFloat, 1.5)
}

func TestBlockComment(t *testing.T) {
	l := lexInput("/* a\ncomment */ x")
	be.Equal(t, l.CurrTokenType, IDENT)
	be.Equal(t, l.CurrLiteral, "x")
}

func TestArrowVersusMinus(t *testing.T) {
	l := lexInput("- ->")
	be.Equal(t, l.CurrTokenType, MINUS)
	l.NextToken()
	be.Equal(t, l.CurrTokenType, ARROW)
}

func TestPeekToken(t *testing.T) {
	l := lexInput("a =")
	be.Equal(t, l.PeekToken(), ASSIGN)
	// Peek must not advance.
	be.Equal(t, l.CurrTokenType, IDENT)
	be.Equal(t, l.CurrLiteral, "a")
}

func TestIllegalCharacter(t *testing.T) {
	l := lexInput("@")
	be.Equal(t, l.CurrTokenType, ILLEGAL)
	be.True(t, l.Errors.HasErrors())
}

func TestSkipTokenMismatchRecordsError(t *testing.T) {
	l := lexInput("1.5")
	l.SkipToken(IDENT)
	be.True(t, l.Errors.HasErrors())
	be.Equal(t, l.Errors.String(), "expected token IDENT but got FLOAT")
}

func TestEmptyInput(t *testing.T) {
	l := lexInput("")
	be.Equal(t, l.CurrTokenType, EOF)
}
