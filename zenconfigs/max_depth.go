package zenconfigs

import (
	"github.com/reusee/zen/cmds"
	"github.com/reusee/zen/configs"
	"github.com/reusee/zen/vars"
	"github.com/xyproto/env/v2"
)

// MaxDepth bounds parser nesting. Zero means the parser default.
type MaxDepth int

var _ configs.Configurable = MaxDepth(0)

func (m MaxDepth) ConfigExpr() string {
	return "max_depth"
}

var maxDepthFlag = cmds.Var[int]("-max-depth")

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(max(0, vars.FirstNonZero(
		*maxDepthFlag,
		env.Int("ZEN_MAX_DEPTH", 0),
		configs.First[int](loader, "max_depth"),
	)))
}
