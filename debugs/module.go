package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/zen/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
