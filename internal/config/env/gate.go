package env

import (
	"os"

	"student_portal_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type gateYAML struct {
	Gate struct {
		PublicPaths  []string `yaml:"public_paths"`
		SkipPrefixes []string `yaml:"skip_prefixes"`
		SkipSuffixes []string `yaml:"skip_suffixes"`
	} `yaml:"gate"`
}

type gateConfig struct {
	publicPaths  []string
	skipPrefixes []string
	skipSuffixes []string
}

// NewGateConfigFromYAML - loads the session gate path sets from a YAML file.
// Missing sections fall back to the built-in defaults so an empty file
// still yields a working gate.
func NewGateConfigFromYAML(path string) (config.GateConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed gateYAML
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	cfg := &gateConfig{
		publicPaths:  parsed.Gate.PublicPaths,
		skipPrefixes: parsed.Gate.SkipPrefixes,
		skipSuffixes: parsed.Gate.SkipSuffixes,
	}

	if len(cfg.publicPaths) == 0 {
		cfg.publicPaths = []string{"/login", "/register", "/health"}
	}
	if len(cfg.skipPrefixes) == 0 {
		cfg.skipPrefixes = []string{"/api/", "/static/", "/favicon.ico"}
	}
	if len(cfg.skipSuffixes) == 0 {
		cfg.skipSuffixes = []string{".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp", ".css", ".js"}
	}

	return cfg, nil
}

func (cfg *gateConfig) PublicPaths() []string {
	return cfg.publicPaths
}

func (cfg *gateConfig) SkipPrefixes() []string {
	return cfg.skipPrefixes
}

func (cfg *gateConfig) SkipSuffixes() []string {
	return cfg.skipSuffixes
}
