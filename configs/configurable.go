package configs

// Configurable is a setting that can be read from config files. ConfigExpr
// is the cue path it is read from.
type Configurable interface {
	ConfigExpr() string
}

// Describe renders settings as cue fields.
func Describe(values ...Configurable) []string {
	ret := make([]string, 0, len(values))
	for _, value := range values {
		ret = append(ret, describe(value))
	}
	return ret
}
