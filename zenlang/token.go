package zenlang

import "fmt"

// Token is one lexical unit. Len is the run length of WhiteSpace and Newline
// tokens and zero for everything else.
type Token struct {
	Kind TokenKind
	Text string
	Len  int
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota

	// literals
	TokenString
	TokenNumber
	TokenChar
	TokenBool
	TokenIdentifier

	// punctuation
	TokenCurlyOpen
	TokenCurlyClose
	TokenParenOpen
	TokenParenClose
	TokenColon
	TokenDot
	TokenComma
	TokenSpread

	// logical and bitwise
	TokenAnd
	TokenOr
	TokenBitwiseAnd
	TokenBitwiseOr

	// formatting
	TokenComment
	TokenWhiteSpace
	TokenNewline

	TokenEOF
)

var tokenKindNames = [...]string{
	TokenInvalid:    "invalid",
	TokenString:     "string",
	TokenNumber:     "number",
	TokenChar:       "char",
	TokenBool:       "bool",
	TokenIdentifier: "identifier",
	TokenCurlyOpen:  "'{'",
	TokenCurlyClose: "'}'",
	TokenParenOpen:  "'('",
	TokenParenClose: "')'",
	TokenColon:      "':'",
	TokenDot:        "'.'",
	TokenComma:      "','",
	TokenSpread:     "'...'",
	TokenAnd:        "'&&'",
	TokenOr:         "'||'",
	TokenBitwiseAnd: "'&'",
	TokenBitwiseOr:  "'|'",
	TokenComment:    "comment",
	TokenWhiteSpace: "whitespace",
	TokenNewline:    "newline",
	TokenEOF:        "end of file",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// IsFormatting reports whether tokens of this kind carry no grammatical meaning.
func (k TokenKind) IsFormatting() bool {
	switch k {
	case TokenComment, TokenComma, TokenWhiteSpace, TokenNewline:
		return true
	}
	return false
}

func (k TokenKind) IsLiteral() bool {
	switch k {
	case TokenString, TokenNumber, TokenChar, TokenBool:
		return true
	}
	return false
}

func (t *Token) String() string {
	switch t.Kind {
	case TokenString, TokenChar, TokenIdentifier, TokenNumber, TokenBool, TokenComment:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	case TokenWhiteSpace, TokenNewline:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Len)
	}
	return t.Kind.String()
}
