package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/aelpxy/atlassnap/pkg/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"

	DefaultTimeFormat = "2006-01-02 15:04"
)

type ConfigManager struct {
	configPath string
	config     *models.GlobalConfig
}

func DefaultConfig() *models.GlobalConfig {
	return &models.GlobalConfig{
		Log: models.LogConfig{
			Level: "info",
		},
		Output: models.OutputConfig{
			Format:     FormatTable,
			TimeFormat: DefaultTimeFormat,
		},
	}
}

// NewConfigManager loads the config at configPath, or ~/.atlassnap/config.toml
// when configPath is empty. A missing file yields the defaults.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get home directory")
		}
		configPath = filepath.Join(homeDir, ".atlassnap", "config.toml")
	}

	cm := &ConfigManager{
		configPath: configPath,
	}

	if err := cm.Load(); err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			cm.config = DefaultConfig()
			return cm, nil
		}
		return nil, err
	}

	return cm, nil
}

func (cm *ConfigManager) Path() string { return cm.configPath }

func (cm *ConfigManager) Load() error {
	if _, err := os.Stat(cm.configPath); err != nil {
		return err
	}

	config := DefaultConfig()
	if _, err := toml.DecodeFile(cm.configPath, config); err != nil {
		return errors.Wrap(err, "failed to decode config")
	}

	cm.config = config
	return nil
}

func (cm *ConfigManager) Save() error {
	dir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	f, err := os.Create(cm.configPath)
	if err != nil {
		return errors.Wrap(err, "failed to create config file")
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cm.config); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}

	return nil
}

func (cm *ConfigManager) GetConfig() *models.GlobalConfig {
	return cm.config
}

func (cm *ConfigManager) Validate() error {
	if err := validateFormat(cm.config.Output.Format); err != nil {
		return err
	}
	return validateLevel(cm.config.Log.Level)
}

func validateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return errors.Errorf("unknown output format %q", format)
}

func validateLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := logrus.ParseLevel(level); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	return nil
}

// Set updates one setting by its dotted TOML key. Only the new value is
// checked, so a broken file can be repaired one key at a time.
func (cm *ConfigManager) Set(key, value string) error {
	switch key {
	case "log.level":
		if err := validateLevel(value); err != nil {
			return err
		}
		cm.config.Log.Level = value
	case "catalog.path":
		cm.config.Catalog.Path = value
	case "output.format":
		if err := validateFormat(value); err != nil {
			return err
		}
		cm.config.Output.Format = value
	case "output.time_format":
		cm.config.Output.TimeFormat = value
	case "parse.lenient_enums":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "invalid value for %s", key)
		}
		cm.config.Parse.LenientEnums = b
	default:
		return errors.Errorf("unknown config key %q", key)
	}
	return nil
}
