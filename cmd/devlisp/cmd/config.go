package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

var configPath string

// replConfig holds the REPL's cosmetic overrides, loaded from an
// optional .devlisprc.yaml. Every field has a sensible zero-value
// default so a missing or partial file is never an error.
type replConfig struct {
	Banner      string `yaml:"banner"`
	Prompt      string `yaml:"prompt"`
	HistoryPath string `yaml:"history_path"`
}

func defaultReplConfig() replConfig {
	return replConfig{
		Banner: "देवलिस्प रिप्ल — बाहिर निस्कन :बाहिर टाइप गर्नुहोस्",
		Prompt: ">> ",
	}
}

// loadReplConfig reads path (or ".devlisprc.yaml" in the current
// directory if path is empty) and overlays it onto the defaults. A
// missing file is not an error — the defaults apply as-is.
func loadReplConfig(path string) (replConfig, error) {
	cfg := defaultReplConfig()

	if path == "" {
		path = ".devlisprc.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
