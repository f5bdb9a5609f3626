package zenlang

import (
	"encoding/json"
	"fmt"
)

var _ json.Marshaler = UnaryOp(0)

func (o UnaryOp) MarshalJSON() ([]byte, error) {
	switch o {
	case UnarySpread:
		return []byte(`"spread"`), nil
	}
	return nil, fmt.Errorf("invalid unary op: %v", o)
}

var _ json.Marshaler = BinaryOp(0)

func (o BinaryOp) MarshalJSON() ([]byte, error) {
	switch o {
	case Assignment:
		return []byte(`"assignment"`), nil
	case Accessor:
		return []byte(`"accessor"`), nil
	}
	return nil, fmt.Errorf("invalid binary op: %v", o)
}

var _ json.Marshaler = GroupKind(0)

func (k GroupKind) MarshalJSON() ([]byte, error) {
	switch k {
	case AssignmentBlock:
		return []byte(`"assignment_block"`), nil
	case StatementBlock:
		return []byte(`"statement_block"`), nil
	case ParamBlock:
		return []byte(`"param_block"`), nil
	case AnonymousType:
		return []byte(`"anonymous_type"`), nil
	}
	return nil, fmt.Errorf("invalid group kind: %v", k)
}

type jsonNode struct {
	Type string `json:"type"`
	Pos  Pos    `json:"pos"`
}

func (e *Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Name string `json:"name"`
	}{jsonNode{"identifier", e.Pos}, e.Name})
}

func (e *IntLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Value int64 `json:"value"`
	}{jsonNode{"int", e.Pos}, e.Value})
}

func (e *FloatLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Value float64 `json:"value"`
	}{jsonNode{"float", e.Pos}, e.Value})
}

func (e *HexLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Value uint64 `json:"value"`
	}{jsonNode{"hex", e.Pos}, e.Value})
}

func (e *OctalLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Value uint64 `json:"value"`
	}{jsonNode{"octal", e.Pos}, e.Value})
}

func (e *BinaryLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Value uint64 `json:"value"`
	}{jsonNode{"binary", e.Pos}, e.Value})
}

func (e *StringLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Value string `json:"value"`
	}{jsonNode{"string", e.Pos}, e.Value})
}

func (e *CharLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Value string `json:"value"`
	}{jsonNode{"char", e.Pos}, string(e.Value)})
}

func (e *BoolLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Value bool `json:"value"`
	}{jsonNode{"bool", e.Pos}, e.Value})
}

func (e *EndOfFile) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNode{"end_of_file", e.Pos})
}

func (e *Unary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Op   UnaryOp `json:"op"`
		Expr Expr    `json:"expr"`
	}{jsonNode{"unary", e.Pos}, e.Op, e.Expr})
}

func (e *Binary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Op    BinaryOp `json:"op"`
		Left  Expr     `json:"left"`
		Right Expr     `json:"right"`
	}{jsonNode{"binary", e.Pos}, e.Op, e.Left, e.Right})
}

func (e *Group) MarshalJSON() ([]byte, error) {
	exprs := e.Exprs
	if exprs == nil {
		exprs = []Expr{}
	}
	return json.Marshal(struct {
		jsonNode
		Op    GroupKind `json:"op"`
		Exprs []Expr    `json:"exprs"`
	}{jsonNode{"group", e.Pos}, e.Op, exprs})
}

func (e *TypeDef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Name   Expr   `json:"name"`
		Fields *Group `json:"fields"`
	}{jsonNode{"typedef", e.Pos}, e.Name, e.Fields})
}

func (e *FuncCall) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Name   Expr   `json:"name"`
		Args   *Group `json:"args"`
		Fields *Group `json:"fields,omitempty"`
		Body   *Group `json:"body,omitempty"`
	}{jsonNode{"call", e.Pos}, e.Name, e.Args, e.Fields, e.Body})
}

func (e *BadExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonNode
		Error string `json:"error"`
	}{jsonNode{"bad", e.Pos}, shortError(e.Err)})
}
