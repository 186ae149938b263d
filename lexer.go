package main

import "strconv"

// TokenType is the type of token (identifier, operator, literal, etc.).
type TokenType string

// Definition of token types
const (
	// Special tokens
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT = "IDENT" // foo, _bar
	FLOAT = "FLOAT" // 1, 2.5

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"
	AMP      = "&"

	EQ     = "=="
	NOT_EQ = "!="
	LT     = "<"
	GT     = ">"
	LE     = "<="
	GE     = ">="

	PLUS_ASSIGN     = "+="
	MINUS_ASSIGN    = "-="
	ASTERISK_ASSIGN = "*="
	SLASH_ASSIGN    = "/="

	ARROW = "->"

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	LPAREN    = "("
	RPAREN    = ")"
	LBRACE    = "{"
	RBRACE    = "}"

	// Keywords
	FN    = "FN"
	IF    = "IF"
	ELSE  = "ELSE"
	WHILE = "WHILE"
	TRUE  = "TRUE"
	FALSE = "FALSE"
)

// Lexer scans a null-terminated input buffer one byte at a time. The current
// token lives in the Curr* fields; NextToken advances them.
type Lexer struct {
	input []byte
	pos   int // current reading position in input

	CurrTokenType TokenType
	CurrLiteral   string
	CurrFloat     float64 // only meaningful when CurrTokenType == FLOAT

	Errors ErrorList
}

// NewLexer creates a lexer over input. A terminating 0 byte is appended if
// the caller did not provide one.
func NewLexer(input []byte) *Lexer {
	if len(input) == 0 || input[len(input)-1] != 0 {
		input = append(input, 0)
	}
	return &Lexer{input: input}
}

// NextToken scans the next token into the Curr* fields.
// Call repeatedly until CurrTokenType == EOF.
func (l *Lexer) NextToken() {
	l.skipWhitespace()

	c := l.input[l.pos]
	l.CurrFloat = 0 // reset for non-FLOAT tokens

	switch c {
	case 0:
		l.CurrTokenType = EOF
		l.CurrLiteral = ""

	case '=':
		if l.input[l.pos+1] == '=' {
			l.setToken(EQ, "==", 2)
		} else {
			l.setToken(ASSIGN, "=", 1)
		}

	case '!':
		if l.input[l.pos+1] == '=' {
			l.setToken(NOT_EQ, "!=", 2)
		} else {
			l.Errors.Add("unexpected character '!'")
			l.setToken(ILLEGAL, "!", 1)
		}

	case '+':
		if l.input[l.pos+1] == '=' {
			l.setToken(PLUS_ASSIGN, "+=", 2)
		} else {
			l.setToken(PLUS, "+", 1)
		}

	case '-':
		if l.input[l.pos+1] == '>' {
			l.setToken(ARROW, "->", 2)
		} else if l.input[l.pos+1] == '=' {
			l.setToken(MINUS_ASSIGN, "-=", 2)
		} else {
			l.setToken(MINUS, "-", 1)
		}

	case '*':
		if l.input[l.pos+1] == '=' {
			l.setToken(ASTERISK_ASSIGN, "*=", 2)
		} else {
			l.setToken(ASTERISK, "*", 1)
		}

	case '/':
		if l.input[l.pos+1] == '/' {
			l.skipLineComment()
			l.NextToken()
			return
		} else if l.input[l.pos+1] == '*' {
			l.skipBlockComment()
			l.NextToken()
			return
		} else if l.input[l.pos+1] == '=' {
			l.setToken(SLASH_ASSIGN, "/=", 2)
		} else {
			l.setToken(SLASH, "/", 1)
		}

	case '%':
		l.setToken(PERCENT, "%", 1)

	case '&':
		l.setToken(AMP, "&", 1)

	case '<':
		if l.input[l.pos+1] == '=' {
			l.setToken(LE, "<=", 2)
		} else {
			l.setToken(LT, "<", 1)
		}

	case '>':
		if l.input[l.pos+1] == '=' {
			l.setToken(GE, ">=", 2)
		} else {
			l.setToken(GT, ">", 1)
		}

	case ',':
		l.setToken(COMMA, ",", 1)
	case ';':
		l.setToken(SEMICOLON, ";", 1)
	case '(':
		l.setToken(LPAREN, "(", 1)
	case ')':
		l.setToken(RPAREN, ")", 1)
	case '{':
		l.setToken(LBRACE, "{", 1)
	case '}':
		l.setToken(RBRACE, "}", 1)

	default:
		if isLetter(c) {
			lit := l.readIdentifier()
			l.CurrTokenType = lookupKeyword(lit)
			l.CurrLiteral = lit
		} else if isDigit(c) {
			lit := l.readNumber()
			val, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				l.Errors.Add("invalid number literal %q", lit)
			}
			l.CurrTokenType = FLOAT
			l.CurrLiteral = lit
			l.CurrFloat = val
		} else {
			l.Errors.Add("unexpected character '%c'", c)
			l.setToken(ILLEGAL, string(c), 1)
		}
	}
}

// PeekToken returns the next token type without advancing the lexer.
// Useful for lookahead parsing decisions.
func (l *Lexer) PeekToken() TokenType {
	savedPos := l.pos
	savedTokenType := l.CurrTokenType
	savedLiteral := l.CurrLiteral
	savedFloat := l.CurrFloat
	savedErrors := l.Errors.Count()

	l.NextToken()
	nextType := l.CurrTokenType

	// Restore state
	l.pos = savedPos
	l.CurrTokenType = savedTokenType
	l.CurrLiteral = savedLiteral
	l.CurrFloat = savedFloat
	l.Errors.errors = l.Errors.errors[:savedErrors]

	return nextType
}

// SkipToken advances past the current token. A mismatch against the expected
// type is recorded in the error list; the lexer still advances so the parser
// cannot loop forever on bad input.
func (l *Lexer) SkipToken(expectedType TokenType) {
	if l.CurrTokenType != expectedType {
		l.Errors.Add("expected token %s but got %s", string(expectedType), string(l.CurrTokenType))
	}
	if l.CurrTokenType != EOF {
		l.NextToken()
	}
}

func (l *Lexer) setToken(tokenType TokenType, literal string, width int) {
	l.CurrTokenType = tokenType
	l.CurrLiteral = literal
	l.pos += width
}

func (l *Lexer) skipWhitespace() {
	for {
		c := l.input[l.pos]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return
		}
		l.pos++
	}
}

func (l *Lexer) skipLineComment() {
	for l.input[l.pos] != '\n' && l.input[l.pos] != 0 {
		l.pos++
	}
	if l.input[l.pos] == '\n' {
		l.pos++
	}
}

func (l *Lexer) skipBlockComment() {
	l.pos += 2 // skip /*
	for l.input[l.pos] != 0 && !(l.input[l.pos] == '*' && l.input[l.pos+1] == '/') {
		l.pos++
	}
	if l.input[l.pos] == '*' && l.input[l.pos+1] == '/' {
		l.pos += 2 // skip */
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.input[l.pos]) || isDigit(l.input[l.pos]) {
		l.pos++
	}
	return string(l.input[start:l.pos])
}

// readNumber scans digits with an optional fractional part.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.input[l.pos] == '.' && isDigit(l.input[l.pos+1]) {
		l.pos++
		for isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	return string(l.input[start:l.pos])
}

func lookupKeyword(lit string) TokenType {
	switch lit {
	case "fn":
		return FN
	case "if":
		return IF
	case "else":
		return ELSE
	case "while":
		return WHILE
	case "true":
		return TRUE
	case "false":
		return FALSE
	default:
		return IDENT
	}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
