package unaconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/unasm/cmds"
	"github.com/reusee/unasm/configs"
	"github.com/reusee/unasm/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config", "load a config file, may repeat")

var filenames = []string{
	"unasm.cue",
	".unasm.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	paths := append([]string(nil), *configFlag...)
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		paths = append(paths, existing(configDir)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	return configs.NewLoader(paths, schema)
}

func existing(dir string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}

// lookup reads a setting, logging and ignoring malformed configuration.
func lookup[T any](logger logs.Logger, loader configs.Loader, path string) (T, bool) {
	value, ok, err := configs.Lookup[T](loader, path)
	if err != nil {
		logger.Warn("bad config value", "path", path, "error", err)
		var zero T
		return zero, false
	}
	return value, ok
}
