package zenconfigs

import (
	"fmt"

	"github.com/reusee/zen/configs"
)

// Layers lists every setting each config file provides, highest precedence
// first, as cue fields.
func Layers(loader configs.Loader) ([]string, error) {
	var ret []string
	add := func(lines []string, err error) error {
		ret = append(ret, lines...)
		return err
	}
	if err := add(layer[int](loader, MaxDepth(0))); err != nil {
		return nil, err
	}
	if err := add(layer[bool](loader, Recover(false))); err != nil {
		return nil, err
	}
	if err := add(layer[bool](loader, LogicalOperators(false))); err != nil {
		return nil, err
	}
	return ret, nil
}

func layer[T any](loader configs.Loader, setting configs.Configurable) ([]string, error) {
	var ret []string
	for value, err := range configs.All[T](loader, setting.ConfigExpr()) {
		if err != nil {
			return nil, err
		}
		ret = append(ret, fmt.Sprintf("%s: %v", setting.ConfigExpr(), value))
	}
	return ret, nil
}
