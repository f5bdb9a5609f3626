package zenlang

import "io"

type TokenStream interface {
	Current() (*Token, error)
	Consume()
}

type SliceTokenStream struct {
	tokens []*Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() (*Token, error) {
	if s.idx >= len(s.tokens) {
		return &Token{Kind: TokenEOF}, nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}

type formattingSkipper struct {
	upstream TokenStream
	eof      *Token
}

// SkipFormatting wraps a stream so that comments, commas, whitespace and
// newlines are never observed. Once TokenEOF is reached it is returned forever.
func SkipFormatting(upstream TokenStream) TokenStream {
	if s, ok := upstream.(*formattingSkipper); ok {
		return s
	}
	return &formattingSkipper{
		upstream: upstream,
	}
}

func (s *formattingSkipper) Current() (*Token, error) {
	if s.eof != nil {
		return s.eof, nil
	}
	for {
		tok, err := s.upstream.Current()
		if err == io.EOF {
			s.eof = &Token{Kind: TokenEOF}
			return s.eof, nil
		}
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			s.eof = tok
			return tok, nil
		}
		if !tok.Kind.IsFormatting() {
			return tok, nil
		}
		s.upstream.Consume()
	}
}

func (s *formattingSkipper) Consume() {
	if s.eof != nil {
		return
	}
	s.upstream.Consume()
}
