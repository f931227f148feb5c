package config

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/daedaleanai/multibuild/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Color policies.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	// Generator is the executable invoked once per configuration.
	Generator string `mapstructure:"generator" yaml:"generator"`
	// Color is one of "auto", "always" or "never".
	Color string `mapstructure:"color" yaml:"color"`
}

const configFileName = "config"
const configFileType = "yaml"
const envPrefix = "MULTIBUILD"

func getConfigDir() (string, error) {
	if configDir, ok := os.LookupEnv("MULTIBUILD_CONFIG_DIR"); ok {
		return configDir, nil
	}

	if xdgConfigHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		return path.Join(xdgConfigHome, "multibuild"), nil
	}

	homeDir, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("unable to locate the configuration directory: %w", err)
	}
	return path.Join(homeDir, ".config", "multibuild"), nil
}

// Load reads the configuration file (if any) and applies environment overrides.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("generator", "cmake")
	v.SetDefault("color", ColorAuto)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	configDir, err := getConfigDir()
	if err != nil {
		log.Debug("%s. Using default configuration\n", err)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(configDir)
		err = v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Debug("No configuration file in `%s`. Using default configuration\n", configDir)
		} else if err != nil {
			return Config{}, fmt.Errorf("error reading configuration file in `%s`: %w", configDir, err)
		} else {
			log.Debug("Loaded configuration from `%s`\n", v.ConfigFileUsed())
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.validate(); err != nil {
		return Config{}, err
	}

	log.Debug("Running with configuration:\n%s", config)
	return config, nil
}

func (c Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color setting '%s': must be one of '%s', '%s' or '%s'", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if c.Generator == "" {
		return fmt.Errorf("the generator executable must not be empty")
	}
	return nil
}

func (c Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("generator: %s\ncolor: %s\n", c.Generator, c.Color)
	}
	return string(out)
}

// UseColor decides whether output should be coloured given whether it goes to a terminal.
func (c Config) UseColor(terminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return terminal
}
