package zenconfigs

import (
	"github.com/reusee/zen/configs"
	"github.com/reusee/zen/vars"
)

// LogicalOperators enables lexing of & | && ||.
type LogicalOperators bool

var _ configs.Configurable = LogicalOperators(false)

func (l LogicalOperators) ConfigExpr() string {
	return "logical_operators"
}

var logicalOperatorsFlag = toggle("logical-operators", "lex logical and bitwise operators")

func (Module) LogicalOperators(
	loader configs.Loader,
) LogicalOperators {
	enabled := true
	return LogicalOperators(*vars.FirstNonZero(
		logicalOperatorsFlag(),
		envBool("ZEN_LOGICAL_OPERATORS"),
		configs.First[*bool](loader, "logical_operators"),
		&enabled,
	))
}
