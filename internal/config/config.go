package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/omatheusmesmo/checksignals/internal/inspect"
	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the working directory when no --config is given.
const ConfigFileName = "check-signals.yaml"

type RulesConfig struct {
	ComponentMarker string   `yaml:"component_marker,omitempty"`
	NamePattern     string   `yaml:"name_pattern,omitempty"`
	OnPushMarker    string   `yaml:"onpush_marker,omitempty"`
	SignalAPIs      []string `yaml:"signal_apis,omitempty"`
}

type ProjectConfig struct {
	Root      string      `yaml:"root,omitempty"`
	Extension string      `yaml:"extension,omitempty"`
	KeepGoing bool        `yaml:"keep_going,omitempty"`
	Rules     RulesConfig `yaml:"rules,omitempty"`
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads and parses the config file at configPath.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Settings is the fully resolved configuration of one run.
type Settings struct {
	Root      string
	KeepGoing bool
	Rules     inspect.Rules
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		Root:  checksignals.DefaultRoot,
		Rules: inspect.DefaultRules(),
	}
}

// Apply overlays the non-empty values of cfg onto s. A nil cfg is a no-op.
func (s Settings) Apply(cfg *ProjectConfig) Settings {
	if cfg == nil {
		return s
	}
	if cfg.Root != "" {
		s.Root = cfg.Root
	}
	if cfg.Extension != "" {
		s.Rules.Extension = cfg.Extension
	}
	if cfg.KeepGoing {
		s.KeepGoing = true
	}
	if cfg.Rules.ComponentMarker != "" {
		s.Rules.ComponentMarker = cfg.Rules.ComponentMarker
	}
	if cfg.Rules.NamePattern != "" {
		s.Rules.NamePattern = cfg.Rules.NamePattern
	}
	if cfg.Rules.OnPushMarker != "" {
		s.Rules.OnPushMarker = cfg.Rules.OnPushMarker
	}
	if len(cfg.Rules.SignalAPIs) > 0 {
		s.Rules.SignalAPIs = append([]string(nil), cfg.Rules.SignalAPIs...)
	}
	return s
}

// Validate reports an ErrInvalidConfig-wrapped error for unusable settings.
func (s Settings) Validate() error {
	if s.Root == "" {
		return fmt.Errorf("%w: root must not be empty", checksignals.ErrInvalidConfig)
	}
	if _, err := s.Rules.Validate(); err != nil {
		return err
	}
	return nil
}

// FromSettings returns the file representation of s with every field set.
func FromSettings(s Settings) *ProjectConfig {
	return &ProjectConfig{
		Root:      s.Root,
		Extension: s.Rules.Extension,
		KeepGoing: s.KeepGoing,
		Rules: RulesConfig{
			ComponentMarker: s.Rules.ComponentMarker,
			NamePattern:     s.Rules.NamePattern,
			OnPushMarker:    s.Rules.OnPushMarker,
			SignalAPIs:      append([]string(nil), s.Rules.SignalAPIs...),
		},
	}
}

// Save writes cfg as ConfigFileName in dir.
func Save(dir string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", ConfigFileName, err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFileName, err)
	}
	return nil
}
