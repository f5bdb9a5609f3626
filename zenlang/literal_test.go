package zenlang

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		text     string
		expected Literal
	}{
		{"42", &IntLiteral{Value: 42}},
		{"1_000", &IntLiteral{Value: 1000}},
		{"1.5", &FloatLiteral{Value: 1.5}},
		{"2e3", &FloatLiteral{Value: 2000}},
		{"2.5E-1", &FloatLiteral{Value: 0.25}},
		{"0x1F", &HexLiteral{Value: 31}},
		{"0XfF", &HexLiteral{Value: 255}},
		{"0o17", &OctalLiteral{Value: 15}},
		{"0b101", &BinaryLiteral{Value: 5}},
		{"0b_1010", &BinaryLiteral{Value: 10}},
		{"0", &IntLiteral{Value: 0}},
		{"007", &IntLiteral{Value: 7}},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			lit, err := ParseNumber(test.text)
			if err != nil {
				t.Fatal(err)
			}
			if got, expected := Dump(lit), Dump(test.expected); got != expected {
				t.Fatalf("expected %s, got %s", expected, got)
			}
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	for _, text := range []string{
		"0xZZ",
		"0b102",
		"0o8",
		"0x",
		"99999999999999999999",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseNumber(text)
			if !errors.Is(err, ErrInvalidNumber) {
				t.Fatalf("got %v", err)
			}
		})
	}
}
