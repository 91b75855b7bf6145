// Package configuration implements reading the optional configuration file
// (dotenv syntax) into the typed settings of both programs.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// DefaultFile is the configuration file that is read from the working
// directory, if present, when no other file was given.
const DefaultFile = "recursion.env"

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	genericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
	}
}

// ReadGeneric reads the given configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.genericHandler.Read(filenames...)
}

// readOptional reads a configuration file, where a missing file is only an
// error if the file was explicitly requested (required). A missing optional
// file results in an empty map.
func (c *Handler) readOptional(filename string, required bool) (map[string]string, error) {
	if filename == "" {
		return map[string]string{}, nil
	}

	envMap, err := c.ReadGeneric(filename)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No configuration file found, using defaults.",
				"path", filename,
			)

			return map[string]string{}, nil
		}

		return nil, fmt.Errorf("(config) %w", err)
	}

	return envMap, nil
}

// MapKeyToString returns the value of a key, or an empty string if the key
// does not exist.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// stringSetting overrides target with the value of key, if it is set.
func (c *Handler) stringSetting(envMap map[string]string, key string, target *string) {
	if _, exists := envMap[key]; exists {
		*target = c.MapKeyToString(envMap, key)
	}
}

// floatSetting overrides target with the value of key, if it is set. Values
// that cannot be parsed are appended to errs.
func (c *Handler) floatSetting(envMap map[string]string, key string, target *float64, errs *multierror.Error) *multierror.Error {
	if _, exists := envMap[key]; !exists {
		return errs
	}

	value := c.MapKeyToString(envMap, key)

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return multierror.Append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value))
	}
	*target = floatValue

	return errs
}
