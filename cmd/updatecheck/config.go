package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// duration wraps time.Duration so YAML values like "10s" or "24h" parse.
type duration time.Duration

func (d *duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = duration(parsed)
	return nil
}

// fileConfig mirrors the check command's flags. Values from the file apply
// only where the corresponding flag was not set on the command line.
type fileConfig struct {
	Current  string   `yaml:"current"`
	Timeout  duration `yaml:"timeout"`
	CacheTTL duration `yaml:"cache_ttl"`
	CacheDir string   `yaml:"cache_dir"`
	NoCache  bool     `yaml:"no_cache"`
	Pre      bool     `yaml:"pre"`
	Registry string   `yaml:"registry"`
	JSON     bool     `yaml:"json"`
}

func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfigFile copies file values into the flag variables for any flag
// the user left at its default.
func applyConfigFile(cmd *cobra.Command, cfg *fileConfig) {
	flags := cmd.Flags()

	if !flags.Changed("current") && cfg.Current != "" {
		currentVersion = cfg.Current
	}
	if !flags.Changed("timeout") && cfg.Timeout != 0 {
		timeout = time.Duration(cfg.Timeout)
	}
	if !flags.Changed("cache-ttl") && cfg.CacheTTL != 0 {
		cacheTTL = time.Duration(cfg.CacheTTL)
	}
	if !flags.Changed("cache-dir") && cfg.CacheDir != "" {
		cacheDir = cfg.CacheDir
	}
	if !flags.Changed("no-cache") && cfg.NoCache {
		noCache = true
	}
	if !flags.Changed("pre") && cfg.Pre {
		includePre = true
	}
	if !flags.Changed("registry") && cfg.Registry != "" {
		registryURL = cfg.Registry
	}
	if !flags.Changed("json") && cfg.JSON {
		jsonOutput = true
	}
}
