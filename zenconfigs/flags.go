package zenconfigs

import (
	"github.com/reusee/zen/cmds"
	"github.com/reusee/zen/vars"
	"github.com/xyproto/env/v2"
)

// toggle defines -name and -no-name. The returned func reports nil until
// one of them is given.
func toggle(name string, desc string) func() *bool {
	var value *bool
	set := func(v bool) func() {
		return func() {
			value = &v
		}
	}
	cmds.Define("-"+name, cmds.Func(set(true)).Desc(desc))
	cmds.Define("-no-"+name, cmds.Func(set(false)).Desc("do not "+desc))
	return func() *bool {
		return value
	}
}

func envBool(name string) *bool {
	if !env.Has(name) {
		return nil
	}
	v := vars.StrToBool(env.Str(name))
	return &v
}
