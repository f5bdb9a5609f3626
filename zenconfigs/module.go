package zenconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/zen/configs"
	"github.com/reusee/zen/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
