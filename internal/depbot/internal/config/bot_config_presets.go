package config

import (
	"encoding/json"
	"fmt"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/botconfig"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
	"github.com/ghodss/yaml"
	"github.com/spf13/pflag"
)

// BotConfigPresetsConfig holds the built-in preset catalog. Presets are
// declared in yaml but carry the json field names of the bot configuration
// document, so the file is decoded through the yaml-to-json bridge.
type BotConfigPresetsConfig struct {
	PresetsConfigFile string
	Presets           map[string]*botconfig.BotConfig
}

func NewBotConfigPresetsConfig() *BotConfigPresetsConfig {
	return &BotConfigPresetsConfig{
		PresetsConfigFile: "config/bot-config-presets.yaml",
	}
}

func (c *BotConfigPresetsConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.PresetsConfigFile, "bot-config-presets-file", c.PresetsConfigFile, "File containing the built-in bot configuration presets")
}

func (c *BotConfigPresetsConfig) ReadFiles() error {
	fileContents, err := shared.ReadFile(c.PresetsConfigFile)
	if err != nil {
		return err
	}
	return yaml.Unmarshal([]byte(fileContents), &c.Presets)
}

func (c *BotConfigPresetsConfig) Validate() error {
	for name, preset := range c.Presets {
		doc, err := json.Marshal(preset)
		if err != nil {
			return fmt.Errorf("preset %q: %v", name, err)
		}
		if serviceErr := botconfig.Validate(doc); serviceErr != nil {
			return fmt.Errorf("preset %q is not a valid bot configuration: %v", name, serviceErr)
		}
	}
	return nil
}
