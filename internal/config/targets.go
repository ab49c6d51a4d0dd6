package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// LoadTargets reads the ordered mirror target list from a config file. When
// path is empty, $HOME/.librarymirror.yaml is searched. The file holds a
// `targets:` list of name/source/dest entries; order is preserved as the
// session's processing and report order.
func LoadTargets(path string) ([]Target, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not find home directory: %w", err)
		}

		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".librarymirror")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read targets config: %w", err)
	}

	var targets []Target
	if err := v.UnmarshalKey("targets", &targets); err != nil {
		return nil, fmt.Errorf("could not parse targets config: %w", err)
	}

	return targets, nil
}
