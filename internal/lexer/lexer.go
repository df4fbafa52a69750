// Package lexer converts Lox source text into a token stream. It never
// aborts on a bad character: unexpected bytes and unterminated strings
// become lex-error tokens, regular elements of the stream that the parser
// can observe and report, and scanning continues to the end of input.
package lexer

import (
	"strconv"

	"github.com/akashmaji946/loxo/internal/diagnostics"
	"github.com/akashmaji946/loxo/internal/token"
)

// Lexer holds the scanning state for one source buffer: a read cursor
// (Position/Current), the token-start cursor implicit in each Next call,
// and line/column bookkeeping for diagnostics.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int

	cfg   Config
	diags diagnostics.List
}

// New creates a Lexer over src using the default Config.
func New(src string) *Lexer {
	return NewWithConfig(src, DefaultConfig())
}

// NewWithConfig creates a Lexer over src using an explicit Config.
func NewWithConfig(src string, cfg Config) *Lexer {
	var current byte
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
		cfg:       cfg,
	}
}

// Diagnostics returns every lex-stage diagnostic recorded so far.
func (l *Lexer) Diagnostics() diagnostics.List { return l.diags }

// Peek looks at the next byte without consuming it, or 0 at end of source.
func (l *Lexer) Peek() byte {
	if l.Position+1 >= l.SrcLength {
		return 0
	}
	return l.Src[l.Position+1]
}

// Advance moves the cursor one byte forward, updating Current and Column.
func (l *Lexer) Advance() {
	l.Position++
	l.Column++
	if l.Position >= l.SrcLength {
		l.Current = 0
		l.Position = l.SrcLength
	} else {
		l.Current = l.Src[l.Position]
	}
}

// atEnd reports whether the cursor has run off the end of the source.
func (l *Lexer) atEnd() bool {
	return l.Position >= l.SrcLength
}

// ScanTokens tokenizes the entire source, returning every emitted token
// (including LexError tokens) followed by exactly one EOF token.
func (l *Lexer) ScanTokens() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// NextToken scans and returns the next token in the stream, skipping
// leading whitespace and comments first.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line := l.Line
	if l.atEnd() {
		return token.New(token.EOF, "", line)
	}

	c := l.Current

	switch {
	case c == '(':
		l.Advance()
		return token.New(token.LeftParen, "(", line)
	case c == ')':
		l.Advance()
		return token.New(token.RightParen, ")", line)
	case c == '{':
		l.Advance()
		return token.New(token.LeftBrace, "{", line)
	case c == '}':
		l.Advance()
		return token.New(token.RightBrace, "}", line)
	case c == ',':
		l.Advance()
		return token.New(token.Comma, ",", line)
	case c == '.':
		l.Advance()
		return token.New(token.Dot, ".", line)
	case c == ';':
		l.Advance()
		return token.New(token.Semicolon, ";", line)
	case c == '-':
		l.Advance()
		return token.New(token.Minus, "-", line)
	case c == '+':
		l.Advance()
		return token.New(token.Plus, "+", line)
	case c == '*':
		l.Advance()
		return token.New(token.Star, "*", line)
	case c == '/':
		l.Advance()
		return token.New(token.Slash, "/", line)
	case c == '!':
		l.Advance()
		if l.Current == '=' {
			l.Advance()
			return token.New(token.BangEqual, "!=", line)
		}
		return token.New(token.Bang, "!", line)
	case c == '=':
		l.Advance()
		if l.Current == '=' {
			l.Advance()
			return token.New(token.EqualEqual, "==", line)
		}
		return token.New(token.Equal, "=", line)
	case c == '<':
		l.Advance()
		if l.Current == '=' {
			l.Advance()
			return token.New(token.LessEqual, "<=", line)
		}
		return token.New(token.Less, "<", line)
	case c == '>':
		l.Advance()
		if l.Current == '=' {
			l.Advance()
			return token.New(token.GreaterEq, ">=", line)
		}
		return token.New(token.Greater, ">", line)
	case c == '"':
		return l.readString()
	case isDigit(c):
		return l.readNumber()
	case isAlpha(c) || c == '_' || l.cfg.isExtraIdentChar(c):
		return l.readIdentifier()
	default:
		l.Advance()
		l.diags.Add(diagnostics.Lex, diagnostics.UnexpectedCharacter, line,
			"Unexpected character: %s", string(c))
		return token.WithLiteral(token.LexError, string(c), token.UnexpectedCharacter, line)
	}
}

// skipWhitespaceAndComments advances past spaces, tabs, CR, newlines, and
// // line comments. Per spec, '\n', '\v', and '\f' all increment the line
// counter; only '\n' resets the column.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.Current == ' ' || l.Current == '\t' || l.Current == '\r':
			l.Advance()
		case l.Current == '\n':
			l.Line++
			l.Column = 1
			l.Advance()
		case l.Current == '\v' || l.Current == '\f':
			l.Line++
			l.Advance()
		case l.Current == '/' && l.Peek() == '/':
			for l.Current != '\n' && !l.atEnd() {
				l.Advance()
			}
		default:
			return
		}
	}
}

// readString scans a "..." literal. On an unterminated string (EOF before
// the closing quote) it emits a LexError instead of a String token.
func (l *Lexer) readString() token.Token {
	startLine := l.Line
	var lexeme []byte
	lexeme = append(lexeme, '"')
	l.Advance() // consume opening quote

	var content []byte
	for l.Current != '"' && !l.atEnd() {
		if l.Current == '\n' {
			l.Line++
		}
		content = append(content, l.Current)
		l.Advance()
	}

	if l.atEnd() {
		l.diags.Add(diagnostics.Lex, diagnostics.UnterminatedString, startLine, "Unterminated string.")
		return token.WithLiteral(token.LexError, string(append(lexeme, content...)), token.UnterminatedString, startLine)
	}

	l.Advance() // consume closing quote
	lexeme = append(lexeme, content...)
	lexeme = append(lexeme, '"')
	return token.WithLiteral(token.String, string(lexeme), string(content), startLine)
}

// readNumber scans an integer or float literal: a run of digits, optionally
// followed by '.' and another run of digits (only if a digit follows the
// dot — a trailing bare dot is not consumed here).
func (l *Lexer) readNumber() token.Token {
	line := l.Line
	start := l.Position
	for isDigit(l.Current) {
		l.Advance()
	}
	if l.Current == '.' && isDigit(l.Peek()) {
		l.Advance() // consume '.'
		for isDigit(l.Current) {
			l.Advance()
		}
	}
	lexeme := l.Src[start:l.Position]
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// Unreachable for a well-formed digit run, but keep the lexer
		// total rather than panicking on a malformed literal.
		v = 0
	}
	return token.WithLiteral(token.Number, lexeme, v, line)
}

// readIdentifier scans an identifier or keyword: a letter, underscore, or
// Config.ExtraIdentChars byte, followed by letters, digits, underscores,
// backticks (both are identifier-continuation characters per the
// language's tie-break rules), or any Config.ExtraIdentChars.
func (l *Lexer) readIdentifier() token.Token {
	line := l.Line
	start := l.Position
	for isAlphaNumeric(l.Current) || l.Current == '_' || l.Current == '`' || l.cfg.isExtraIdentChar(l.Current) {
		l.Advance()
	}
	lexeme := l.Src[start:l.Position]
	if kind, ok := token.Keywords[lexeme]; ok {
		return token.New(kind, lexeme, line)
	}
	return token.New(token.Identifier, lexeme, line)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
