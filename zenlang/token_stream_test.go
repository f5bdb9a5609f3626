package zenlang

import (
	"testing"
)

func TestSkipFormatting(t *testing.T) {
	source := NewSource("test", "a, // c\n  b\n")
	stream := SkipFormatting(NewLexer(source))

	var kinds []TokenKind
	for range 5 {
		tok, err := stream.Current()
		if err != nil {
			t.Fatal(err)
		}
		kinds = append(kinds, tok.Kind)
		stream.Consume()
	}
	expected := []TokenKind{
		TokenIdentifier,
		TokenIdentifier,
		TokenEOF,
		TokenEOF,
		TokenEOF,
	}
	for i, kind := range expected {
		if kinds[i] != kind {
			t.Fatalf("step %d: got %v", i, kinds[i])
		}
	}
}

func TestSkipFormattingIdempotentWrap(t *testing.T) {
	stream := SkipFormatting(NewLexer(NewSource("test", "a")))
	if SkipFormatting(stream) != stream {
		t.Fatal("should not wrap twice")
	}
}

func TestSliceTokenStream(t *testing.T) {
	stream := SkipFormatting(NewSliceTokenStream([]*Token{
		{Kind: TokenIdentifier, Text: "a"},
		{Kind: TokenWhiteSpace, Text: " ", Len: 1},
		{Kind: TokenColon, Text: ":"},
		{Kind: TokenComment, Text: "x"},
		{Kind: TokenNumber, Text: "1"},
	}))
	parser := NewTokenParser(nil, stream, DefaultOptions())
	root, err := parser.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if str := Dump(root); str != "(statements (assign (identifier a) (int 1)))" {
		t.Fatalf("got %s", str)
	}
}
