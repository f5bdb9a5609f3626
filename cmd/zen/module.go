package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/zen/debugs"
	"github.com/reusee/zen/zenlang"
)

type Module struct {
	dscope.Module
	Zenlang zenlang.Module
	Debugs  debugs.Module
}
