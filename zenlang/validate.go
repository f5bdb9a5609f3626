package zenlang

import (
	"errors"
	"fmt"
)

var ErrInvalidTree = errors.New("invalid tree")

// Validate checks the shape guarantees of a parsed tree: no nil children,
// known operators, and group kinds that agree with where the group sits and
// what it holds.
func Validate(expr Expr) error {
	return validate(expr, "root")
}

func invalid(expr Expr, format string, args ...any) error {
	pos := Pos{}
	if expr != nil {
		pos = expr.Start()
	}
	return fmt.Errorf("%w: %s at %s", ErrInvalidTree, fmt.Sprintf(format, args...), pos)
}

func validate(expr Expr, where string) error {
	switch expr := expr.(type) {

	case nil:
		return invalid(expr, "nil %s", where)

	case *Identifier:
		if expr.Name == "" {
			return invalid(expr, "empty identifier")
		}

	case *IntLiteral, *FloatLiteral, *HexLiteral, *OctalLiteral, *BinaryLiteral,
		*StringLiteral, *CharLiteral, *BoolLiteral, *EndOfFile, *BadExpr:

	case *Unary:
		if expr.Op != UnarySpread {
			return invalid(expr, "unknown unary op %v", expr.Op)
		}
		return validate(expr.Expr, "spread operand")

	case *Binary:
		if expr.Op != Assignment && expr.Op != Accessor {
			return invalid(expr, "unknown binary op %v", expr.Op)
		}
		if _, ok := expr.Left.(*Identifier); !ok {
			return invalid(expr, "%v left side is %T", expr.Op, expr.Left)
		}
		if err := validate(expr.Left, "left side"); err != nil {
			return err
		}
		return validate(expr.Right, "right side")

	case *Group:
		if expr == nil {
			return invalid(nil, "nil group in %s", where)
		}
		return validateGroup(expr)

	case *TypeDef:
		if err := validate(expr.Name, "type name"); err != nil {
			return err
		}
		if expr.Fields == nil {
			return invalid(expr, "type without fields")
		}
		if !isFieldsKind(expr.Fields.Op) {
			return invalid(expr, "type fields are %v", expr.Fields.Op)
		}
		return validateGroup(expr.Fields)

	case *FuncCall:
		if err := validate(expr.Name, "call name"); err != nil {
			return err
		}
		if expr.Args == nil || expr.Args.Op != ParamBlock {
			return invalid(expr, "call arguments are not a param block")
		}
		if err := validateGroup(expr.Args); err != nil {
			return err
		}
		if expr.Fields != nil && expr.Body != nil {
			return invalid(expr, "call with both fields and body")
		}
		if expr.Fields != nil {
			if !isFieldsKind(expr.Fields.Op) {
				return invalid(expr, "call fields are %v", expr.Fields.Op)
			}
			return validateGroup(expr.Fields)
		}
		if expr.Body != nil {
			if expr.Body.Op != StatementBlock {
				return invalid(expr, "call body is %v", expr.Body.Op)
			}
			return validateGroup(expr.Body)
		}

	default:
		return invalid(expr, "unknown node %T", expr)
	}

	return nil
}

func isFieldsKind(kind GroupKind) bool {
	return kind == AnonymousType || kind == AssignmentBlock
}

func validateGroup(group *Group) error {
	switch group.Op {
	case AssignmentBlock, StatementBlock, ParamBlock, AnonymousType:
	default:
		return invalid(group, "unknown group kind %v", group.Op)
	}
	for _, child := range group.Exprs {
		if err := validate(child, group.Op.String()+" member"); err != nil {
			return err
		}
		if group.Op == AnonymousType && isStatement(child) {
			return invalid(child, "statement in %v", group.Op)
		}
	}
	return nil
}
