// Package config loads tianzige settings from a TOML or YAML file.
//
// Every field of [File] is optional. Only fields present in the file are
// applied to [pipeline.Options], so a config file can override a single
// default without restating the rest:
//
//	# ~/.config/tianzige/config.toml
//	page_size = "a5"
//	color = "#c04040"
//
//	[margins]
//	left = 25
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tianzige/pkg/errors"
	"github.com/matzehuels/tianzige/pkg/pipeline"
)

// File mirrors the config file. Nil fields were not set.
type File struct {
	PageSize      *string  `toml:"page_size" yaml:"page_size"`
	SquareSize    *float64 `toml:"square_size" yaml:"square_size"`
	MinHorizontal *int     `toml:"min_horizontal" yaml:"min_horizontal"`
	MinVertical   *int     `toml:"min_vertical" yaml:"min_vertical"`
	SizeStep      *float64 `toml:"size_step" yaml:"size_step"`
	Margins       Margins  `toml:"margins" yaml:"margins"`
	Color         *string  `toml:"color" yaml:"color"`
	LineWidth     *float64 `toml:"line_width" yaml:"line_width"`
	InnerGrid     *bool    `toml:"inner_grid" yaml:"inner_grid"`
	Guides        *bool    `toml:"guides" yaml:"guides"`
	Diagonals     *bool    `toml:"diagonals" yaml:"diagonals"`
}

// Margins holds the optional page margins in millimeters.
type Margins struct {
	Top    *float64 `toml:"top" yaml:"top"`
	Bottom *float64 `toml:"bottom" yaml:"bottom"`
	Left   *float64 `toml:"left" yaml:"left"`
	Right  *float64 `toml:"right" yaml:"right"`
}

// DefaultPath returns $XDG_CONFIG_HOME/tianzige/config.toml, falling back
// to ~/.config/tianzige/config.toml. It returns "" if neither base
// directory can be determined.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tianzige", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tianzige", "config.toml")
}

// Load reads the config file at path. The decoder is picked by extension:
// .toml, .yaml or .yml. Unknown keys are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &f)
	case ".yaml", ".yml":
		err = decodeYAML(data, &f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return &f, nil
}

// LoadDefault loads the file at DefaultPath. A missing file yields an
// empty File.
func LoadDefault() (*File, error) {
	path := DefaultPath()
	if path == "" {
		return &File{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &File{}, nil
	}
	return Load(path)
}

func decodeTOML(data []byte, f *File) error {
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func decodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Apply overlays every field set in f onto opts.
func (f *File) Apply(opts *pipeline.Options) {
	setString(&opts.PageSize, f.PageSize)
	setFloat(&opts.SquareSize, f.SquareSize)
	setInt(&opts.MinHorizontal, f.MinHorizontal)
	setInt(&opts.MinVertical, f.MinVertical)
	setFloat(&opts.SizeStep, f.SizeStep)
	setFloat(&opts.MarginTop, f.Margins.Top)
	setFloat(&opts.MarginBottom, f.Margins.Bottom)
	setFloat(&opts.MarginLeft, f.Margins.Left)
	setFloat(&opts.MarginRight, f.Margins.Right)
	setString(&opts.Color, f.Color)
	setFloat(&opts.LineWidth, f.LineWidth)
	setBool(&opts.InnerGrid, f.InnerGrid)
	setBool(&opts.Guides, f.Guides)
	setBool(&opts.Diagonals, f.Diagonals)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
