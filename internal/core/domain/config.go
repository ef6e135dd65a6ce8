package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

const (
	// DefaultSourceDir is the Android project directory relative to the project root.
	DefaultSourceDir = "android"

	// DefaultAppName is the Gradle module of the application.
	DefaultAppName = "app"

	// DefaultBuildMode is used when neither flags nor configuration select a mode.
	DefaultBuildMode = BuildModeDebug

	// DevServerPortProperty is the Gradle project property that points the app at a dev server.
	DevServerPortProperty = "reactNativeDevServerPort"

	// MaxPort is the highest valid TCP port.
	MaxPort = 65535
)

// Config is the resolved project configuration.
type Config struct {
	// Root is the directory the configuration was loaded from.
	Root string
	// SourceDir is the absolute path of the Android project.
	SourceDir     string
	AppName       string
	Mode          BuildMode
	Args          []string
	DevServerPort int
}

// DefaultConfig returns the configuration used when no config file exists under root.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:      root,
		SourceDir: JoinRoot(root, DefaultSourceDir),
		AppName:   DefaultAppName,
		Mode:      DefaultBuildMode,
	}
}

// DevServerPortArg returns the Gradle flag for the given dev server port.
func DevServerPortArg(port int) string {
	return "-P" + DevServerPortProperty + "=" + strconv.Itoa(port)
}

// ValidatePort accepts 0 (unset) or a TCP port in 1-65535.
func ValidatePort(port int) error {
	if port < 0 || port > MaxPort {
		return zerr.With(zerr.Wrap(ErrInvalidDevServerPort, "port out of range"), "port", port)
	}
	return nil
}
