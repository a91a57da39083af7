package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the stripseq CLI settings.
type Config struct {
	// Lexicon is the path to the word-vector SQLite database.
	Lexicon string `yaml:"lexicon"`
	// Languages lists OCR language hints (e.g. eng).
	Languages []string `yaml:"languages,omitempty"`
	// DPI is the assumed resolution of uploaded images; zero means unknown.
	DPI int `yaml:"dpi,omitempty"`
	// Output is the default path of the rendered HTML page.
	Output string `yaml:"output,omitempty"`
	// Title is the heading of the rendered page.
	Title string `yaml:"title,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Lexicon:   "lexicon.db",
		Languages: []string{"eng"},
		Output:    "strip.html",
		Title:     "Reconstructed strip",
	}
}

// Path returns the configuration file location: the STRIPSEQ_CONFIG
// environment variable when set, otherwise stripseq.yaml under the user
// config directory.
func Path() (string, error) {
	if override := os.Getenv("STRIPSEQ_CONFIG"); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config dir: %w", err)
	}
	return filepath.Join(base, "stripseq", "stripseq.yaml"), nil
}

// Load reads the configuration at path, layering it over the defaults. A
// missing file is not an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
