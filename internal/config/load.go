package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads settings from path. Keys absent from the file keep their
// default values. A missing file is not an error; the defaults are
// returned unchanged.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML settings on top of the defaults. The path is used
// for error reporting only.
func Parse(path string, data []byte) (Settings, error) {
	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		perr := &ParseError{Path: path, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return Settings{}, perr
	}
	return s, nil
}
