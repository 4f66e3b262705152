package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "SCHEMAGEN_"

// Config holds every CLI option. Precedence, lowest to highest: built-in
// defaults, config file, SCHEMAGEN_* environment variables, flags.
type Config struct {
	Name          string `koanf:"name"`
	Label         string `koanf:"label"`
	Description   string `koanf:"description"`
	Markup        string `koanf:"markup"`
	Data          string `koanf:"data"`
	Prompt        string `koanf:"prompt"`
	Input         string `koanf:"input"`
	Output        string `koanf:"output"`
	RegistryDir   string `koanf:"registry_dir"`
	IsContent     bool   `koanf:"is_content"`
	IsMultiple    bool   `koanf:"is_multiple"`
	Multilanguage bool   `koanf:"multilanguage"`
	Interactive   bool   `koanf:"interactive"`
	LogLevel      string `koanf:"log_level"`
	LogFormat     string `koanf:"log_format"`
}

// defineFlags declares the CLI surface. Kebab-case flag names map onto the
// snake_case config keys during load.
func defineFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file path (default: schemagen.yaml if present)")
	flags.String("name", "", "template name (snake_case identifier)")
	flags.String("label", "", "template label")
	flags.String("description", "", "template description")
	flags.String("markup", "", "design-tool markup export: file path, or '-' for stdin")
	flags.String("data", "", "JSON example payload: file path, or '-' for stdin")
	flags.String("prompt", "", "free-text prompt: inline text or file path")
	flags.String("input", "", "untyped payload routed by content detection: file path or '-'")
	flags.StringP("output", "o", "", "output file (stdout if empty)")
	flags.String("registry-dir", "", "directory of field-type catalog documents (embedded catalog if empty)")
	flags.Bool("is-content", false, "mark the template as a content template")
	flags.Bool("is-multiple", false, "mark the template as multi-entry")
	flags.Bool("multilanguage", false, "enable per-language content")
	flags.BoolP("interactive", "i", false, "prompt for missing name/label")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "console", "log format: console, json, pretty")
}

// loadConfig merges defaults, the optional config file, environment
// variables, and explicitly set flags into one Config.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"log_level":  "info",
		"log_format": "console",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(flags); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return nil, fmt.Errorf("load flags: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// findConfigFile resolves the config file: explicit --config first, then
// schemagen.yaml / schemagen.yml in the working directory.
func findConfigFile(flags *pflag.FlagSet) string {
	if explicit, _ := flags.GetString("config"); explicit != "" {
		return explicit
	}
	for _, candidate := range []string{"schemagen.yaml", "schemagen.yml"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
