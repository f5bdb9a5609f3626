package zenlang

import (
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer turns a Source into tokens, one at a time. It never reads a character
// twice and never copies the input.
type Lexer struct {
	source  *Source
	input   string
	pos     int
	line    int
	column  int
	current *Token
	done    bool

	// LogicalOperators enables '&', '|', '&&' and '||'.
	LogicalOperators bool
}

var _ TokenStream = new(Lexer)

func NewLexer(source *Source) *Lexer {
	return &Lexer{
		source:           source,
		input:            source.Content,
		line:             1,
		column:           1,
		LogicalOperators: true,
	}
}

// Current returns the pending token. After the single TokenEOF has been
// consumed it returns io.EOF.
func (l *Lexer) Current() (*Token, error) {
	if l.current == nil {
		if l.done {
			return nil, io.EOF
		}
		tok, err := l.scan()
		if err != nil {
			return nil, err
		}
		l.current = tok
	}
	return l.current, nil
}

func (l *Lexer) Consume() {
	l.current = nil
}

func (l *Lexer) Next() (*Token, error) {
	tok, err := l.Current()
	if err != nil {
		return nil, err
	}
	l.Consume()
	return tok, nil
}

// All yields every token including the final TokenEOF. A lexical error is
// yielded once and ends the sequence.
func (l *Lexer) All() iter.Seq2[*Token, error] {
	return func(yield func(*Token, error) bool) {
		for {
			tok, err := l.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

func (l *Lexer) here() Pos {
	return Pos{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r, true
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) startsWith(s string) bool {
	return strings.HasPrefix(l.input[l.pos:], s)
}

// readWhile consumes runes matching test and returns the text and rune count.
func (l *Lexer) readWhile(test func(rune) bool) (string, int) {
	start := l.pos
	n := 0
	for {
		r, ok := l.peek()
		if !ok || !test(r) {
			break
		}
		l.advance()
		n++
	}
	return l.input[start:l.pos], n
}

func (l *Lexer) fail(err error, pos Pos, char rune) error {
	return WithPos(&LexError{
		Err:    err,
		Char:   char,
		Offset: pos.Offset,
	}, l.source, pos)
}

func (l *Lexer) punct(kind TokenKind, text string) *Token {
	tok := &Token{
		Kind: kind,
		Text: text,
		Pos:  l.here(),
	}
	for range len(text) {
		l.advance()
	}
	return tok
}

func (l *Lexer) scan() (*Token, error) {
	start := l.here()

	if text, n := l.readWhile(isNewline); n > 0 {
		return &Token{Kind: TokenNewline, Text: text, Len: n, Pos: start}, nil
	}
	if text, n := l.readWhile(isWhiteSpace); n > 0 {
		return &Token{Kind: TokenWhiteSpace, Text: text, Len: n, Pos: start}, nil
	}

	r, ok := l.peek()
	if !ok {
		l.done = true
		return &Token{Kind: TokenEOF, Pos: start}, nil
	}

	switch r {
	case '{':
		return l.punct(TokenCurlyOpen, "{"), nil
	case '}':
		return l.punct(TokenCurlyClose, "}"), nil
	case '(':
		return l.punct(TokenParenOpen, "("), nil
	case ')':
		return l.punct(TokenParenClose, ")"), nil
	case ':':
		return l.punct(TokenColon, ":"), nil
	case ',':
		return l.punct(TokenComma, ","), nil
	case '.':
		// spread is written `..` or `...`
		if l.startsWith("...") {
			return l.punct(TokenSpread, "..."), nil
		}
		if l.startsWith("..") {
			return l.punct(TokenSpread, ".."), nil
		}
		return l.punct(TokenDot, "."), nil
	case '&':
		if !l.LogicalOperators {
			return nil, l.fail(ErrUnexpectedCharacter, start, r)
		}
		if l.startsWith("&&") {
			return l.punct(TokenAnd, "&&"), nil
		}
		return l.punct(TokenBitwiseAnd, "&"), nil
	case '|':
		if !l.LogicalOperators {
			return nil, l.fail(ErrUnexpectedCharacter, start, r)
		}
		if l.startsWith("||") {
			return l.punct(TokenOr, "||"), nil
		}
		return l.punct(TokenBitwiseOr, "|"), nil
	case '"':
		return l.readString(start)
	case '\'':
		return l.readChar(start)
	case '/':
		if l.startsWith("//") {
			return l.readComment(start), nil
		}
		return nil, l.fail(ErrUnexpectedCharacter, start, r)
	}

	switch {
	case isDigit(r):
		return l.readNumber(start)
	case unicode.IsLetter(r):
		return l.readIdentifier(start), nil
	}

	return nil, l.fail(ErrUnexpectedCharacter, start, r)
}

func (l *Lexer) readString(start Pos) (*Token, error) {
	l.advance() // opening quote
	text, _ := l.readWhile(func(r rune) bool {
		return r != '"'
	})
	if _, ok := l.peek(); !ok {
		return nil, l.fail(ErrUnterminatedString, start, '"')
	}
	l.advance() // closing quote
	return &Token{
		Kind: TokenString,
		Text: text,
		Pos:  start,
	}, nil
}

func (l *Lexer) readChar(start Pos) (*Token, error) {
	l.advance() // opening quote
	text, _ := l.readWhile(func(r rune) bool {
		return r != '\'' && r != '\n'
	})
	if r, ok := l.peek(); !ok || r != '\'' {
		return nil, l.fail(ErrUnterminatedChar, start, '\'')
	}
	l.advance() // closing quote
	if text == "" {
		return nil, l.fail(ErrEmptyChar, start, '\'')
	}
	r, _ := utf8.DecodeRuneInString(text)
	return &Token{
		Kind: TokenChar,
		Text: string(r),
		Pos:  start,
	}, nil
}

func (l *Lexer) readComment(start Pos) *Token {
	l.advance()
	l.advance()
	text, _ := l.readWhile(func(r rune) bool {
		return r != '\n'
	})
	return &Token{
		Kind: TokenComment,
		Text: strings.TrimSuffix(text, "\r"),
		Pos:  start,
	}
}

func (l *Lexer) readIdentifier(start Pos) *Token {
	text, _ := l.readWhile(isIdentifierRune)
	kind := TokenIdentifier
	if text == "true" || text == "false" {
		kind = TokenBool
	}
	return &Token{
		Kind: kind,
		Text: text,
		Pos:  start,
	}
}

// readNumber keeps the raw text; radix and exponent are interpreted by the parser.
// A number with a fraction or exponent must be followed by a terminator.
func (l *Lexer) readNumber(start Pos) (*Token, error) {
	begin := l.pos

	if l.hasRadixPrefix() {
		l.advance()
		l.advance()
		l.readWhile(isIdentifierRune)
		return &Token{
			Kind: TokenNumber,
			Text: l.input[begin:l.pos],
			Pos:  start,
		}, nil
	}

	l.readWhile(isDigitOrUnderscore)

	shaped := false
	if l.startsWith(".") && !l.startsWith("..") {
		shaped = true
		l.advance()
		if _, n := l.readWhile(isDigitOrUnderscore); n == 0 {
			r, ok := l.peek()
			if !ok {
				r = -1
			}
			return nil, l.fail(ErrMalformedNumber, l.here(), r)
		}
	}

	if l.hasExponent() {
		shaped = true
		l.advance()
		if r, _ := l.peek(); r == '+' || r == '-' {
			l.advance()
		}
		l.readWhile(isDigit)
	}

	if shaped {
		if r, ok := l.peek(); ok && !isNumberTerminator(r) {
			return nil, l.fail(ErrMalformedNumber, l.here(), r)
		}
	}

	return &Token{
		Kind: TokenNumber,
		Text: l.input[begin:l.pos],
		Pos:  start,
	}, nil
}

func (l *Lexer) hasRadixPrefix() bool {
	rest := l.input[l.pos:]
	if len(rest) < 2 || rest[0] != '0' {
		return false
	}
	switch rest[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

// hasExponent reports an 'e' or 'E' followed by an optionally signed digit.
func (l *Lexer) hasExponent() bool {
	rest := l.input[l.pos:]
	if len(rest) < 2 || (rest[0] != 'e' && rest[0] != 'E') {
		return false
	}
	rest = rest[1:]
	if rest[0] == '+' || rest[0] == '-' {
		rest = rest[1:]
	}
	return len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9'
}

func isNewline(r rune) bool {
	return r == '\r' || r == '\n' || r == '\u00a0'
}

func isWhiteSpace(r rune) bool {
	return unicode.IsSpace(r) && !isNewline(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDigitOrUnderscore(r rune) bool {
	return isDigit(r) || r == '_'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isNumberTerminator(r rune) bool {
	return unicode.IsSpace(r) || r == '}' || r == ')' || r == ','
}
