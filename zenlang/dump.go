package zenlang

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dump renders an Expr as a one-line s-expression, e.g.
// (assign (identifier a) (int 10)). Positions are omitted.
func Dump(expr Expr) string {
	var sb strings.Builder
	toSexpr(expr).flat(&sb)
	return sb.String()
}

// DumpIndent is Dump with one child per line, indented by two spaces.
func DumpIndent(expr Expr) string {
	var sb strings.Builder
	toSexpr(expr).indent(&sb, 0)
	return sb.String()
}

var groupTags = map[GroupKind]string{
	AssignmentBlock: "assignments",
	StatementBlock:  "statements",
	ParamBlock:      "params",
	AnonymousType:   "type",
}

type sexpr struct {
	head     string
	children []sexpr
}

func toSexpr(expr Expr) sexpr {
	switch expr := expr.(type) {

	case *Identifier:
		return sexpr{head: "identifier " + expr.Name}
	case *IntLiteral:
		return sexpr{head: "int " + strconv.FormatInt(expr.Value, 10)}
	case *FloatLiteral:
		return sexpr{head: "float " + strconv.FormatFloat(expr.Value, 'g', -1, 64)}
	case *HexLiteral:
		return sexpr{head: "hex " + strconv.FormatUint(expr.Value, 10)}
	case *OctalLiteral:
		return sexpr{head: "octal " + strconv.FormatUint(expr.Value, 10)}
	case *BinaryLiteral:
		return sexpr{head: "binary " + strconv.FormatUint(expr.Value, 10)}
	case *StringLiteral:
		return sexpr{head: "string " + strconv.Quote(expr.Value)}
	case *CharLiteral:
		return sexpr{head: "char " + strconv.QuoteRune(expr.Value)}
	case *BoolLiteral:
		return sexpr{head: "bool " + strconv.FormatBool(expr.Value)}
	case *EndOfFile:
		return sexpr{head: "end"}
	case *BadExpr:
		return sexpr{head: "bad " + strconv.Quote(shortError(expr.Err))}

	case *Unary:
		return sexpr{
			head:     "spread",
			children: []sexpr{toSexpr(expr.Expr)},
		}

	case *Binary:
		head := "assign"
		if expr.Op == Accessor {
			head = "access"
		}
		return sexpr{
			head:     head,
			children: []sexpr{toSexpr(expr.Left), toSexpr(expr.Right)},
		}

	case *Group:
		if expr == nil {
			return sexpr{head: "nil"}
		}
		head, ok := groupTags[expr.Op]
		if !ok {
			head = expr.Op.String()
		}
		ret := sexpr{head: head}
		for _, child := range expr.Exprs {
			ret.children = append(ret.children, toSexpr(child))
		}
		return ret

	case *TypeDef:
		return sexpr{
			head:     "typedef",
			children: []sexpr{toSexpr(expr.Name), toSexpr(expr.Fields)},
		}

	case *FuncCall:
		ret := sexpr{
			head:     "call",
			children: []sexpr{toSexpr(expr.Name), toSexpr(expr.Args)},
		}
		if expr.Fields != nil {
			ret.children = append(ret.children, sexpr{
				head:     "fields",
				children: []sexpr{toSexpr(expr.Fields)},
			})
		}
		if expr.Body != nil {
			ret.children = append(ret.children, sexpr{
				head:     "body",
				children: []sexpr{toSexpr(expr.Body)},
			})
		}
		return ret

	case nil:
		return sexpr{head: "nil"}
	}

	return sexpr{head: fmt.Sprintf("unknown %T", expr)}
}

func (s sexpr) flat(sb *strings.Builder) {
	sb.WriteString("(")
	sb.WriteString(s.head)
	for _, child := range s.children {
		sb.WriteString(" ")
		child.flat(sb)
	}
	sb.WriteString(")")
}

func (s sexpr) indent(sb *strings.Builder, level int) {
	sb.WriteString("(")
	sb.WriteString(s.head)
	for _, child := range s.children {
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("  ", level+1))
		child.indent(sb, level+1)
	}
	sb.WriteString(")")
}

func shortError(err error) string {
	if err == nil {
		return ""
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return fmt.Sprintf("%s at %s", posErr.Err.Error(), posErr.Pos)
	}
	return err.Error()
}
