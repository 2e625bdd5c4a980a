package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MapFS is an in-memory FileSystem keyed by path.
type MapFS map[string][]byte

// ReadFile returns the contents stored under path.
func (m MapFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

// Format is a settings file syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Loader reads settings files.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a loader on the OS file system.
func NewLoader() *Loader {
	return &Loader{fs: OSFS{}}
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load reads and decodes the settings file at path. A missing file yields
// empty settings and no error.
func (l *Loader) Load(path string) (*Settings, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, format, data)
}

// Parse decodes settings. source names the data in errors.
func Parse(source string, format Format, data []byte) (*Settings, error) {
	var s Settings
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, tomlParseError(source, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	return &s, nil
}

func tomlParseError(source string, err error) error {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
		pe.Message = derr.Error()
	}
	var serr *toml.StrictMissingError
	if errors.As(err, &serr) && len(serr.Errors) > 0 {
		pe.Line, pe.Column = serr.Errors[0].Position()
		pe.Message = serr.Errors[0].Error()
	}
	return pe
}
