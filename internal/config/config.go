// Package config loads campus settings from a YAML file, an optional .env
// file and CAMPUS_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/llm"
)

// Config is the file-level configuration. API keys are deliberately absent:
// they come from the environment only.
type Config struct {
	// DB is the LLM event log path. Empty means store.DefaultDBPath.
	DB  string    `yaml:"db"`
	Log LogConfig `yaml:"log"`
	LLM LLMConfig `yaml:"llm"`

	// ProviderOverride comes from --provider. It beats the file and the
	// environment, and key discovery never replaces it.
	ProviderOverride string `yaml:"-"`
}

// LogConfig selects the log destination and level.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// LLMConfig holds the provider settings that may live in the file.
type LLMConfig struct {
	Provider    string        `yaml:"provider"`
	Model       string        `yaml:"model"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxAttempts int           `yaml:"max_attempts"`
}

// DefaultPath returns $XDG_CONFIG_HOME/campus/config.yaml, falling back to
// ~/.config/campus/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "campus", "config.yaml"), nil
}

// Load reads the YAML file at path. With an empty path the default location
// is tried and a missing file yields the zero Config. An explicit path must
// exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=value pairs from the given files (default ".env")
// into the process environment. Variables that are already set win, and
// missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays CAMPUS_LOG_FILE and CAMPUS_LOG_LEVEL. CAMPUS_DB is
// resolved by the store itself; LLM variables by ProviderConfig.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("CAMPUS_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := getenv("CAMPUS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// ProviderConfig layers defaults, the file's llm section, CAMPUS_* variables
// and finally the providers' standard API key variables.
func (c Config) ProviderConfig(getenv func(string) string) llm.Config {
	cfg := llm.DefaultConfig()

	if c.LLM.Provider != "" {
		cfg.Provider = c.LLM.Provider
	}
	if c.LLM.Timeout > 0 {
		cfg.Timeout = c.LLM.Timeout
	}
	if c.LLM.MaxAttempts > 0 {
		cfg.Retry.MaxAttempts = c.LLM.MaxAttempts
	}

	cfg.ApplyEnv(getenv)
	if c.ProviderOverride != "" {
		cfg.Provider = c.ProviderOverride
	}

	if c.LLM.Model != "" && getenv(modelEnvKey(cfg.Provider)) == "" {
		setModel(&cfg, c.LLM.Model)
	}

	cfg.DiscoverKeys(getenv)
	if c.ProviderOverride != "" {
		cfg.Provider = c.ProviderOverride
	}
	return cfg
}

func modelEnvKey(provider string) string {
	switch provider {
	case "anthropic":
		return "CAMPUS_ANTHROPIC_MODEL"
	case "openai":
		return "CAMPUS_OPENAI_MODEL"
	case "gemini":
		return "CAMPUS_GEMINI_MODEL"
	case "openrouter":
		return "CAMPUS_OPENROUTER_MODEL"
	}
	return ""
}

func setModel(cfg *llm.Config, model string) {
	switch cfg.Provider {
	case "anthropic":
		cfg.Anthropic.Model = model
	case "openai":
		cfg.OpenAI.Model = model
	case "gemini":
		cfg.Gemini.Model = model
	case "openrouter":
		cfg.OpenRouter.Model = model
	}
}
