package config

import (
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// config structure
type Config struct {
	API    APIConfig    `mapstructure:"API"`
	Github GithubConfig `mapstructure:"GITHUB"`
	Tasks  TasksConfig  `mapstructure:"TASKS"`
	Logs   LogsConfig   `mapstructure:"LOGS"`
	Colors ColorsConfig `mapstructure:"COLORS"`
}

type APIConfig struct {
	ListenPort string `mapstructure:"ListenPort"`
}

type GithubConfig struct {
	Token   string `mapstructure:"Token"`   // empty means unauthenticated requests
	PerPage int    `mapstructure:"PerPage"` // single page fetch, no pagination loop
}

type TasksConfig struct {
	MaxParallelTasksAllowed int `mapstructure:"MaxParallelTasksAllowed"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJson"`
}

type ColorsConfig struct {
	OverrideFile string `mapstructure:"OverrideFile"` // .json or .toml merged over the embedded table
	DefaultColor string `mapstructure:"DefaultColor"` // used for languages missing from the table
}

const defaultConfigFile = "config/config.toml"

// Load reads the configuration file at path over the defaults.
// An empty path looks for config/config.toml next to the binary, then in the working directory.
// When no file can be found the defaults are returned.
func Load(path string) (*Config, error) {
	// .env is optional, only used to provide GITHUB_TOKEN locally
	_ = godotenv.Load()

	cfg := GetDefault()

	if path == "" {
		found, err := lookupConfigFile()
		if err != nil {
			return nil, err
		}
		path = found
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	if path != "" {
		if _, err := snakelet.InitAndLoad(cfg, path); err != nil {
			return nil, errors.Wrapf(err, "unable to load config file %s", path)
		}
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.Github.Token = token
	}

	return cfg, nil
}

func lookupConfigFile() (string, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		return "", err
	}

	for _, candidate := range []string{filepath.Join(dir, defaultConfigFile), defaultConfigFile} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", nil
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort: "5000",
		},
		Github: GithubConfig{
			PerPage: 1000,
		},
		Tasks: TasksConfig{
			MaxParallelTasksAllowed: 8,
		},
		Logs: LogsConfig{
			Level:            "info",
			OutputLogsAsJSON: false,
		},
		Colors: ColorsConfig{
			DefaultColor: "#cccccc",
		},
	}
}
