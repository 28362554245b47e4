package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/xFA25E/bratus/pkg/report"
)

// File names searched when --config is not given.
const (
	LocalFileName = ".bratus.yaml"
	UserFileName  = "config.yaml"
	appDirName    = "bratus"
)

// File represents the YAML configuration file.
type File struct {
	Colors        FileColors `yaml:"colors"`
	Format        string     `yaml:"format"`
	MaxLabelWidth int        `yaml:"max_label_width"`
	LabelCase     string     `yaml:"label_case"`
	Dedup         *bool      `yaml:"dedup"` // nil means not set
	Debug         bool       `yaml:"debug"`
}

// FileColors holds the raw color strings of the file.
type FileColors struct {
	Monitor  string `yaml:"monitor"`
	Free     string `yaml:"free"`
	Occupied string `yaml:"occupied"`
	Urgent   string `yaml:"urgent"`
	State    string `yaml:"state"`
}

func (c FileColors) get(cat report.Category) string {
	switch cat {
	case report.CategoryMonitor:
		return c.Monitor
	case report.CategoryFree:
		return c.Free
	case report.CategoryOccupied:
		return c.Occupied
	case report.CategoryUrgent:
		return c.Urgent
	case report.CategoryState:
		return c.State
	default:
		return ""
	}
}

// LoadFile reads and decodes the config file at path. Unknown keys are
// rejected so that typos do not silently fall back to defaults. An empty
// file is a valid, empty configuration.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &f, nil
}

// FindConfigFile returns the config file to use when none was given: the
// local .bratus.yaml first, then the one in the user config directory.
// It returns "" when neither exists.
func FindConfigFile() string {
	if _, err := os.Stat(LocalFileName); err == nil {
		return LocalFileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not usable for a per-user path.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	userPath := filepath.Join(configHome, appDirName, UserFileName)
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}
