package zenconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/zen/configs"
	"github.com/reusee/zen/logs"
	"github.com/xyproto/env/v2"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"zen.cue",
	".zen.cue",
}

// ConfigsLoader reads, in order of precedence, $ZEN_CONFIG, then zen.cue and
// .zen.cue from the working directory, the user config dir and /etc.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	if path := env.Str("ZEN_CONFIG"); path != "" {
		paths = append(paths, path)
	}

	dirs := []string{}
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
