package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ParseError is returned when a catalog file can't be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse catalog %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load a catalog from TOML, e.g.
//
//	[[types]]
//	name = "Set"
//	super = "Object"
//	meta = "Type"
//	global = true
//	methods = ["size: Number", "add(element: Object): Void"]
//
//	[[objects]]
//	name = "empty"
//	type = "Set"
//	global = true
//
// Unknown keys are rejected, so that typos in hand-authored files don't go unnoticed.
func Load(r io.Reader) (c Catalog, err error) {
	err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&c)
	if err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			keys := make([]string, len(strictErr.Errors))
			for i, e := range strictErr.Errors {
				keys[i] = strings.Join(e.Key(), ".")
			}
			return c, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), err)
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return c, fmt.Errorf("line %d, col %d: %w", row, col, err)
		}
		return c, err
	}
	return c, nil
}

// LoadFile loads a catalog from the TOML file at path.
func LoadFile(path string) (c Catalog, err error) {
	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	c, err = Load(f)
	if err != nil {
		return c, &ParseError{Path: path, Err: err}
	}
	return c, nil
}
