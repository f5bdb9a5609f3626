package zenlang

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrMalformedNumber     = errors.New("malformed number literal")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnterminatedChar    = errors.New("unterminated char literal")
	ErrEmptyChar           = errors.New("empty char literal")
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEOF   = errors.New("unexpected end of file")
	ErrUnimplemented   = errors.New("unimplemented")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrTooDeep         = errors.New("nesting too deep")
)

// LexError reports the character the lexer could not handle.
type LexError struct {
	Err    error
	Char   rune
	Offset int
}

func (e *LexError) Error() string {
	if e.Char < 0 {
		return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Offset)
	}
	return fmt.Sprintf("%s %q at offset %d", e.Err.Error(), e.Char, e.Offset)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// ParseError reports the token that did not fit the grammar. Context names the
// construct being parsed.
type ParseError struct {
	Err     error
	Token   *Token
	Context string
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	if e.Context != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Context)
	}
	if e.Token != nil {
		sb.WriteString(", got ")
		sb.WriteString(e.Token.String())
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type PosError struct {
	Err    error
	Pos    Pos
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil {
		return fmt.Sprintf("%s at %s", p.Err.Error(), p.Pos)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, p.Pos.Line, p.Pos.Column))

	lines := p.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := strings.TrimSuffix(lines[idx], "\r")
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, source *Source, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
