// Package config loads optional user preferences from a YAML file.
// A missing file yields compiled defaults; a malformed one is an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/periodic"
	"github.com/ducnm/elementary/internal/quizgen"
)

// Config holds the user preferences.
type Config struct {
	// Language is the display language code: "en" or "vi".
	Language string `yaml:"language"`

	Quiz QuizConfig `yaml:"quiz"`
}

// QuizConfig holds the default quiz settings used to pre-fill the intro form.
type QuizConfig struct {
	QuestionCount int `yaml:"question_count"`
	Types         struct {
		Symbol   bool `yaml:"symbol"`
		Category bool `yaml:"category"`
		Property bool `yaml:"property"`
	} `yaml:"types"`
	// TimeLimitSecs bounds the quiz; 0 means no limit.
	TimeLimitSecs int `yaml:"time_limit_secs"`
}

// Default returns the stock configuration: English, 10 questions, every
// question type, no time limit.
func Default() Config {
	cfg := Config{Language: string(i18n.LangEN)}
	cfg.Quiz.QuestionCount = 10
	cfg.Quiz.Types.Symbol = true
	cfg.Quiz.Types.Category = true
	cfg.Quiz.Types.Property = true
	return cfg
}

// Load reads the config at path, falling back to Default when the file does
// not exist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/elementary/config.yaml, or ~/.config/... when unset.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "elementary", "config.yaml"), nil
}

// Lang returns the configured display language.
func (c Config) Lang() i18n.Lang {
	return i18n.ParseLang(c.Language)
}

// Settings converts the quiz preferences into generator settings, clamping
// the question count to what the element pool can supply.
func (c Config) Settings() quizgen.Settings {
	count := c.Quiz.QuestionCount
	if count <= 0 {
		count = 10
	}
	if count > len(periodic.Elements) {
		count = len(periodic.Elements)
	}
	return quizgen.Settings{
		QuestionCount: count,
		Types: quizgen.TypeSet{
			Symbol:   c.Quiz.Types.Symbol,
			Category: c.Quiz.Types.Category,
			Property: c.Quiz.Types.Property,
		},
		TimeLimit: time.Duration(c.Quiz.TimeLimitSecs) * time.Second,
	}
}
