// Package bootstrap wires configuration files and logging into a runnable
// blog module for the CLI entry points.
package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Options collect the CLI flags that override file-based configuration.
type Options struct {
	ConfigPath string
	ContentDir string
	Extension  string
}

// LoadConfig returns the default configuration overlaid with the YAML file
// at path (when given) and any CLI overrides.
func LoadConfig(opts Options) (blog.Config, error) {
	cfg := blog.DefaultConfig()

	if path := strings.TrimSpace(opts.ConfigPath); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return blog.Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return blog.Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if dir := strings.TrimSpace(opts.ContentDir); dir != "" {
		cfg.Content.Dir = dir
	}
	if ext := strings.TrimSpace(opts.Extension); ext != "" {
		cfg.Content.Extension = ext
	}

	return cfg, nil
}

// BuildModule constructs the logger provider and the blog module from the
// resolved configuration.
func BuildModule(cfg blog.Config) (*blog.Module, interfaces.Logger, error) {
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Focus:     cfg.Logging.Focus,
	})
	if err != nil {
		return nil, nil, err
	}

	module, err := blog.New(cfg, blog.WithLoggerProvider(provider))
	if err != nil {
		return nil, nil, err
	}

	return module, logging.ModuleLogger(provider, logging.RootModule), nil
}
