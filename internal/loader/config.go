package loader

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// ResourcesDirEnv overrides the resource directory.
	ResourcesDirEnv = "DYNUI_RESOURCES_DIR"
	// HTTPTimeoutEnv overrides the remote fetch timeout (Go duration syntax).
	HTTPTimeoutEnv = "DYNUI_HTTP_TIMEOUT"

	// DefaultScreenName is the local screen resource used when none is configured.
	DefaultScreenName = "defaultScreen"
	// DefaultDefaultsName is the component defaults resource used when none is configured.
	DefaultDefaultsName = "componentDefaults"
	// DefaultResourcesDir is where local resources live unless overridden.
	DefaultResourcesDir = "resources"
	// DefaultHTTPTimeout bounds a single remote fetch.
	DefaultHTTPTimeout = 15 * time.Second
)

// Config names the resources the loader reads.
type Config struct {
	// DefaultScreenFile, when set, is loaded for every local source.
	DefaultScreenFile string `yaml:"defaultScreenFile,omitempty"`
	// ComponentsDefaultsFile names the per-type style defaults resource.
	ComponentsDefaultsFile string `yaml:"componentsDefaultsFile,omitempty"`
	// ResourcesDir is the directory local resources are resolved against.
	ResourcesDir string        `yaml:"resourcesDir,omitempty"`
	HTTPTimeout  time.Duration `yaml:"httpTimeout,omitempty"`
}

// DefaultConfig returns a config with no overrides.
func DefaultConfig() Config {
	return Config{
		ResourcesDir: DefaultResourcesDir,
		HTTPTimeout:  DefaultHTTPTimeout,
	}
}

// LoadConfig reads a YAML config file, if path is non-empty, then applies
// environment overrides. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %q: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if cfg.ResourcesDir == "" {
		cfg.ResourcesDir = DefaultResourcesDir
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if dir := os.Getenv(ResourcesDirEnv); dir != "" {
		c.ResourcesDir = dir
	}
	if raw := os.Getenv(HTTPTimeoutEnv); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", HTTPTimeoutEnv, err)
		}
		c.HTTPTimeout = d
	}
	return nil
}

// ScreenResource returns the local resource to load for source.
func (c Config) ScreenResource(source string) string {
	if c.DefaultScreenFile != "" {
		return c.DefaultScreenFile
	}
	if source == "" {
		return DefaultScreenName
	}
	return source
}

// DefaultsResource returns the component defaults resource name.
func (c Config) DefaultsResource() string {
	if c.ComponentsDefaultsFile != "" {
		return c.ComponentsDefaultsFile
	}
	return DefaultDefaultsName
}
