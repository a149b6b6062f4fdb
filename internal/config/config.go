// Package config loads squircle parameters from TOML and YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/squircle"
)

// Defaults for fields a file leaves out.
const (
	DefaultCornerSmoothing   = 0.8
	DefaultPreserveSmoothing = true
)

// ErrUnknownFormat is returned for files whose extension is neither .toml
// nor .yaml/.yml.
var ErrUnknownFormat = errors.New("config: unknown file format")

type Format int

const (
	TOML Format = iota + 1
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	default:
		return "invalid format"
	}
}

// FormatOf picks the format of a file by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// File is the on-disk form of a squircle.
//
//	width = 100
//	height = 60
//	radius = 20
//	cornerSmoothing = 0.6
//	topLeftRadius = 40
//
// Missing cornerSmoothing and preserveSmoothing fields take
// DefaultCornerSmoothing and DefaultPreserveSmoothing, the defaults of the
// squircle React component, not the zero values of [squircle.Params].
type File struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Radius float64 `toml:"radius" yaml:"radius"`

	TopLeftRadius     *float64 `toml:"topLeftRadius,omitempty" yaml:"topLeftRadius,omitempty"`
	TopRightRadius    *float64 `toml:"topRightRadius,omitempty" yaml:"topRightRadius,omitempty"`
	BottomRightRadius *float64 `toml:"bottomRightRadius,omitempty" yaml:"bottomRightRadius,omitempty"`
	BottomLeftRadius  *float64 `toml:"bottomLeftRadius,omitempty" yaml:"bottomLeftRadius,omitempty"`

	CornerSmoothing   *float64 `toml:"cornerSmoothing,omitempty" yaml:"cornerSmoothing,omitempty"`
	PreserveSmoothing *bool    `toml:"preserveSmoothing,omitempty" yaml:"preserveSmoothing,omitempty"`

	// Precision is the number of fractional digits in generated path data.
	// It defaults to squircle.DefaultPrecision.
	Precision *int `toml:"precision,omitempty" yaml:"precision,omitempty"`
}

// Params converts f to squircle parameters, filling in defaults.
func (f File) Params() squircle.Params {
	smoothing := DefaultCornerSmoothing
	if f.CornerSmoothing != nil {
		smoothing = *f.CornerSmoothing
	}
	preserve := DefaultPreserveSmoothing
	if f.PreserveSmoothing != nil {
		preserve = *f.PreserveSmoothing
	}
	return squircle.Params{
		Width:             f.Width,
		Height:            f.Height,
		Radius:            f.Radius,
		TopLeftRadius:     f.TopLeftRadius,
		TopRightRadius:    f.TopRightRadius,
		BottomRightRadius: f.BottomRightRadius,
		BottomLeftRadius:  f.BottomLeftRadius,
		CornerSmoothing:   smoothing,
		PreserveSmoothing: preserve,
	}
}

// OutputPrecision returns the configured precision or
// squircle.DefaultPrecision.
func (f File) OutputPrecision() int {
	if f.Precision == nil {
		return squircle.DefaultPrecision
	}
	return *f.Precision
}

// Load reads the file at path. A leading ~ refers to the user's home
// directory.
func Load(path string) (File, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	format, err := FormatOf(expanded)
	if err != nil {
		return File{}, err
	}
	fd, err := os.Open(expanded)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	defer fd.Close()

	f, err := Decode(fd, format)
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Decode reads a configuration in the given format from r. Unknown keys
// are an error.
func Decode(r io.Reader, format Format) (File, error) {
	var f File
	switch format {
	case TOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return File{}, fmt.Errorf("line %d, column %d: %w", row, col, err)
			}
			return File{}, err
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document is an empty configuration.
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return File{}, err
		}
	default:
		return File{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return f, nil
}
