package config

import (
	"errors"
	"os"
	"os/user"
	"path"

	"github.com/go-ini/ini"
)

const (
	requiredPermissions = 0600
	rcFilename          = ".stackshiprc"

	// DefaultRegion is used when no region is supplied by flag, environment,
	// or rc file.
	DefaultRegion = "us-east-1"
)

// ErrMissingHomeDir represents an error when a home directory could not be found
var ErrMissingHomeDir = errors.New("Could not find Home Directory")

// ErrWrongConfigPermissions represents an error when the config permissions
// are incorrect.
var ErrWrongConfigPermissions = errors.New(
	"~/.stackshiprc must be only readable and writable to the current user (0600)")

// ErrExpectedFile represents an error where the stackshiprc file was a
// directory instead of a file.
var ErrExpectedFile = errors.New("Expected ~/.stackshiprc to be a file; found a directory")

// Config represents the configuration which is stored inside a ~/.stackshiprc
// file in ini format. It supplies defaults for values the user does not pass
// on the command line.
type Config struct {
	Region  string `ini:"region"`
	Profile string `ini:"profile"`
}

// Load checks if ~/.stackshiprc exists, if it does, it reads it from disk.
//
// If it doesn't an empty config with the default values is returned.
//
// If the file cannot be read, or it has the incorrect permissions an error is
// returned.
func Load() (*Config, error) {
	rcpath, err := RCPath()
	if err != nil {
		return nil, err
	}

	return LoadFrom(rcpath)
}

// LoadFrom reads a Config from the given rc file path.
func LoadFrom(rcpath string) (*Config, error) {
	err := checkPermissions(rcpath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		Region: DefaultRegion,
	}

	if os.IsNotExist(err) {
		return cfg, nil
	}

	err = ini.MapTo(cfg, rcpath)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func checkPermissions(path string) error {
	src, err := os.Stat(path)
	if err != nil {
		return err
	}

	if src.IsDir() {
		return ErrExpectedFile
	}

	if fMode := src.Mode(); fMode.Perm() != requiredPermissions {
		return ErrWrongConfigPermissions
	}

	return nil
}

// RCPath returns the absolute path to the ~/.stackshiprc file
func RCPath() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}

	if u.HomeDir == "" {
		return "", ErrMissingHomeDir
	}

	return path.Join(u.HomeDir, rcFilename), nil
}
