// Package config loads groundwork settings from an optional YAML file and
// GROUNDWORK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/timeline"
	"gopkg.in/yaml.v3"
)

// Config holds everything the entrypoint needs to wire the application.
type Config struct {
	DBPath            string
	DependencyGapDays int
	LogUseCases       bool
	// View is used until the user saves their own settings.
	View domain.ViewSettings
}

type fileConfig struct {
	DBPath            string    `yaml:"db_path"`
	DependencyGapDays *int      `yaml:"dependency_gap_days"`
	Log               logConfig `yaml:"log"`
	View              *viewFile `yaml:"view"`
}

type logConfig struct {
	UseCases *bool `yaml:"use_cases"`
}

type viewFile struct {
	Zoom         string   `yaml:"zoom"`
	GroupBy      string   `yaml:"group_by"`
	CriticalPath *bool    `yaml:"critical_path"`
	Baselines    *bool    `yaml:"baselines"`
	Progress     *bool    `yaml:"progress"`
	Milestones   *bool    `yaml:"milestones"`
	Dependencies *bool    `yaml:"dependencies"`
	Statuses     []string `yaml:"statuses"`
	Resources    []string `yaml:"resources"`
}

// DefaultConfig stores data under ~/.groundwork and logs nothing.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:            filepath.Join(home, ".groundwork", "groundwork.db"),
		DependencyGapDays: timeline.DefaultMaxGapDays,
		View:              domain.DefaultViewSettings(),
	}
}

// Path returns the config file location: GROUNDWORK_CONFIG, or
// ~/.groundwork/config.yaml.
func Path(home string) string {
	if v := os.Getenv("GROUNDWORK_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(home, ".groundwork", "config.yaml")
}

// LoadConfig reads the config file, if any, and then applies environment
// overrides. A missing file is not an error; a malformed one is.
func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	path := Path(home)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := cfg.apply(data); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.View.Validate(); err != nil {
		return Config{}, fmt.Errorf("config view: %w", err)
	}
	return cfg, nil
}

func (c *Config) apply(data []byte) error {
	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.DBPath != "" {
		c.DBPath = expandHome(f.DBPath)
	}
	if f.DependencyGapDays != nil {
		if *f.DependencyGapDays < 0 {
			return fmt.Errorf("dependency_gap_days must not be negative")
		}
		c.DependencyGapDays = *f.DependencyGapDays
	}
	c.LogUseCases = domain.BoolFromPtrWithDefault(c.LogUseCases, f.Log.UseCases)
	if f.View != nil {
		c.View = f.View.merge(c.View)
	}
	return nil
}

func (v *viewFile) merge(base domain.ViewSettings) domain.ViewSettings {
	out := base.Clone()
	if v.Zoom != "" {
		out.Zoom = domain.ZoomLevel(strings.ToLower(v.Zoom))
	}
	if v.GroupBy != "" {
		out.GroupBy = domain.GroupMode(strings.ToLower(v.GroupBy))
	}
	out.ShowCriticalPath = domain.BoolFromPtrWithDefault(out.ShowCriticalPath, v.CriticalPath)
	out.ShowBaselines = domain.BoolFromPtrWithDefault(out.ShowBaselines, v.Baselines)
	out.ShowProgress = domain.BoolFromPtrWithDefault(out.ShowProgress, v.Progress)
	out.ShowMilestones = domain.BoolFromPtrWithDefault(out.ShowMilestones, v.Milestones)
	out.ShowDependencies = domain.BoolFromPtrWithDefault(out.ShowDependencies, v.Dependencies)
	if v.Statuses != nil {
		out.StatusFilter = append([]string(nil), v.Statuses...)
	}
	if v.Resources != nil {
		out.ResourceFilter = append([]string(nil), v.Resources...)
	}
	return out
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GROUNDWORK_DB"); v != "" {
		c.DBPath = expandHome(v)
	}
	if v := os.Getenv("GROUNDWORK_LOG_USE_CASES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GROUNDWORK_LOG_USE_CASES: %w", err)
		}
		c.LogUseCases = b
	}
	if v := os.Getenv("GROUNDWORK_DEPENDENCY_GAP_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("GROUNDWORK_DEPENDENCY_GAP_DAYS must be a non-negative integer, got %q", v)
		}
		c.DependencyGapDays = n
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
