package zenconfigs

import (
	"github.com/reusee/zen/configs"
	"github.com/reusee/zen/vars"
)

// Recover makes the parser collect errors and keep going.
type Recover bool

var _ configs.Configurable = Recover(false)

func (r Recover) ConfigExpr() string {
	return "recover"
}

var recoverFlag = toggle("recover", "recover from parse errors")

func (Module) Recover(
	loader configs.Loader,
) Recover {
	return Recover(vars.DerefOrZero(vars.FirstNonZero(
		recoverFlag(),
		envBool("ZEN_RECOVER"),
		configs.First[*bool](loader, "recover"),
	)))
}
