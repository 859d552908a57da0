package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lhaugan/modviz/pkg/render"
)

// configFileName is looked up in the working directory when --config is not
// given. Its absence is not an error; flags and defaults still apply.
const configFileName = ".modviz.toml"

// loadConfig reads the render configuration from a TOML file. An empty path
// means "use .modviz.toml if present, otherwise defaults".
func loadConfig(path string) (render.Config, error) {
	if path == "" {
		if _, err := os.Stat(configFileName); err != nil {
			return render.Config{}, nil
		}
		path = configFileName
	}

	var cfg render.Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return render.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
