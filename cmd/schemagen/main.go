// Command schemagen infers a content-template schema from design-tool markup,
// a JSON example payload, or a free-text prompt, and writes the template JSON
// to a file or stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/spf13/pflag"

	"github.com/tobidsn/anticms-schemagen/pkg/generator"
	"github.com/tobidsn/anticms-schemagen/pkg/registry"
)

func main() {
	flags := pflag.NewFlagSet("schemagen", pflag.ContinueOnError)
	defineFlags(flags)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *Config, logger *glog.BaseLogger) error {
	if cfg.Interactive {
		if err := askMissing(cfg); err != nil {
			return err
		}
	}

	reg, err := resolveRegistry(cfg, logger)
	if err != nil {
		return err
	}

	req := generator.Request{
		Name:        cfg.Name,
		Label:       cfg.Label,
		Description: cfg.Description,
		IsContent:   cfg.IsContent,
	}
	if cfg.IsMultiple {
		value := true
		req.IsMultiple = &value
	}
	if cfg.Multilanguage {
		value := true
		req.Multilanguage = &value
	}

	if req.Markup, err = readInput(cfg.Markup); err != nil {
		return fmt.Errorf("read markup input: %w", err)
	}
	data, err := readInput(cfg.Data)
	if err != nil {
		return fmt.Errorf("read data input: %w", err)
	}
	req.Data = []byte(data)
	if req.Prompt, err = readPrompt(cfg.Prompt); err != nil {
		return fmt.Errorf("read prompt input: %w", err)
	}
	raw, err := readInput(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	req.Raw = []byte(raw)

	gen := generator.New(
		generator.WithRegistry(reg),
		generator.WithLogger(logger),
	)

	template, err := gen.Generate(context.Background(), req)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return fmt.Errorf("encode template: %w", err)
	}
	payload = append(payload, '\n')

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, payload, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("template written", "path", cfg.Output)
		return nil
	}
	_, err = os.Stdout.Write(payload)
	return err
}

// askMissing prompts for the template identifiers that were not supplied via
// config, env, or flags.
func askMissing(cfg *Config) error {
	if strings.TrimSpace(cfg.Name) == "" {
		prompt := &survey.Input{Message: "Template name:", Help: "snake_case identifier, e.g. landing_page"}
		if err := survey.AskOne(prompt, &cfg.Name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	if strings.TrimSpace(cfg.Label) == "" {
		prompt := &survey.Input{Message: "Template label:"}
		if err := survey.AskOne(prompt, &cfg.Label, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	return nil
}

// resolveRegistry loads the declarative catalog from --registry-dir when
// given, falling back to the embedded catalog (and, past that, the minimal
// built-in set) so the command degrades instead of refusing to start.
func resolveRegistry(cfg *Config, logger *glog.BaseLogger) (*registry.Registry, error) {
	if cfg.RegistryDir == "" {
		return registry.Default(), nil
	}
	reg, err := registry.LoadFS(os.DirFS(cfg.RegistryDir))
	if err != nil {
		logger.Warn("registry catalog failed to load; using built-in fallback",
			"dir", cfg.RegistryDir, "error", err)
		return registry.Builtin(), nil
	}
	if len(reg.Kinds()) == 0 {
		logger.Warn("registry catalog is empty; using built-in fallback", "dir", cfg.RegistryDir)
		return registry.Builtin(), nil
	}
	return reg, nil
}

// readInput resolves a file path ('-' for stdin) to its contents. An empty
// spec stays empty.
func readInput(spec string) (string, error) {
	switch {
	case spec == "":
		return "", nil
	case spec == "-":
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	default:
		data, err := os.ReadFile(spec)
		return string(data), err
	}
}

// readPrompt treats the value as a file path when one exists, otherwise as
// the prompt text itself.
func readPrompt(spec string) (string, error) {
	if spec == "" || spec == "-" {
		return readInput(spec)
	}
	if _, err := os.Stat(spec); err == nil {
		return readInput(spec)
	}
	return spec, nil
}

func newLogger(cfg *Config) (*glog.BaseLogger, error) {
	options := []glog.Option{}
	if level := normalizeLevel(cfg.LogLevel); level != "" {
		options = append(options, glog.WithLevel(level))
	}
	switch strings.ToLower(strings.TrimSpace(cfg.LogFormat)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}
	return glog.NewLogger(options...), nil
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "", "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}
