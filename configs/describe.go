package configs

import (
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
)

func describe(value Configurable) string {
	v := cuecontext.New().Encode(value)
	node := v.Syntax()
	bs, err := format.Node(node)
	if err != nil {
		return value.ConfigExpr() + ": _|_"
	}
	return value.ConfigExpr() + ": " + string(bs)
}
