package zenlang

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber interprets the raw text of a TokenNumber. Underscores are digit
// separators. 0x, 0o and 0b prefixes give unsigned literals; a fraction or an
// exponent gives a FloatLiteral; anything else is an IntLiteral.
func ParseNumber(text string) (Literal, error) {
	return parseNumber(text, Pos{})
}

func parseNumber(text string, pos Pos) (Literal, error) {
	digits := strings.ReplaceAll(text, "_", "")

	if len(digits) >= 2 && digits[0] == '0' {
		base := 0
		switch digits[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			v, err := strconv.ParseUint(digits[2:], base, 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrInvalidNumber, text, err)
			}
			switch base {
			case 16:
				return &HexLiteral{Value: v, Pos: pos}, nil
			case 8:
				return &OctalLiteral{Value: v, Pos: pos}, nil
			default:
				return &BinaryLiteral{Value: v, Pos: pos}, nil
			}
		}
	}

	if strings.ContainsAny(digits, ".eE") {
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidNumber, text, err)
		}
		return &FloatLiteral{Value: v, Pos: pos}, nil
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidNumber, text, err)
	}
	return &IntLiteral{Value: v, Pos: pos}, nil
}
