// Package config provides the configuration loader for droid.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only droid.yaml schema version understood by the loader.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds droid.yaml in cwd or one of its parents and returns the resolved configuration.
// Without a config file the defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	configPath, found := findConfiguration(absCwd)
	if !found {
		return domain.DefaultConfig(absCwd), nil
	}

	var droidfile Droidfile
	if err := readAndUnmarshalYAML(configPath, &droidfile); err != nil {
		return nil, err
	}

	if droidfile.Version != "" && droidfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("unsupported version %q in %s, expected %q",
			droidfile.Version, configPath, SupportedVersion))
	}

	cfg, err := buildConfig(filepath.Dir(configPath), &droidfile)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func buildConfig(root string, dto *Droidfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig(root)

	if dto.SourceDir != "" {
		cfg.SourceDir = domain.JoinRoot(root, dto.SourceDir)
	}
	if dto.AppName != "" {
		cfg.AppName = dto.AppName
	}
	if dto.Mode != "" {
		mode, err := domain.ParseBuildMode(dto.Mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}
	if err := domain.ValidatePort(dto.DevServerPort); err != nil {
		return nil, err
	}
	cfg.DevServerPort = dto.DevServerPort
	cfg.Args = slices.Clone(dto.Args)

	return cfg, nil
}

// readAndUnmarshalYAML reads a YAML file and strictly decodes it into the target struct.
// Unknown keys are rejected and an empty file decodes to the zero value.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findConfiguration
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", configPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, parseErr), "path", configPath)
	}

	return nil
}
