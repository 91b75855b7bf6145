package configuration

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	// SettingSorterDefaultDest is the destination used when none is given.
	SettingSorterDefaultDest = "SORTER_DEFAULT_DEST"

	// SettingSorterLogFile is the file the run's log is written to.
	SettingSorterLogFile = "SORTER_LOG_FILE"

	// SettingSorterTempSuffix is the suffix of intermediate files.
	SettingSorterTempSuffix = "SORTER_TEMP_SUFFIX"
)

// SorterConfig holds the settings of the sorter program.
type SorterConfig struct {
	DefaultDest string
	LogFile     string
	TempSuffix  string
}

// DefaultSorterConfig returns a pointer to a [SorterConfig] holding the
// default settings.
func DefaultSorterConfig() *SorterConfig {
	return &SorterConfig{
		DefaultDest: "dist",
		LogFile:     "copy_log.txt",
		TempSuffix:  ".sorter",
	}
}

// LoadSorter returns the [SorterConfig] from the given file, applied on top
// of the defaults. A missing file is only an error if it is required.
func (c *Handler) LoadSorter(filename string, required bool) (*SorterConfig, error) {
	envMap, err := c.readOptional(filename, required)
	if err != nil {
		return nil, err
	}

	config := DefaultSorterConfig()

	c.stringSetting(envMap, SettingSorterDefaultDest, &config.DefaultDest)
	c.stringSetting(envMap, SettingSorterLogFile, &config.LogFile)
	c.stringSetting(envMap, SettingSorterTempSuffix, &config.TempSuffix)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}

	return config, nil
}

// Validate returns an error covering every invalid setting, or nil.
func (s *SorterConfig) Validate() error {
	var errs *multierror.Error

	if s.DefaultDest == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrEmptyValue, SettingSorterDefaultDest))
	}

	if s.LogFile == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrEmptyValue, SettingSorterLogFile))
	}

	if s.TempSuffix == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrEmptyValue, SettingSorterTempSuffix))
	} else if strings.ContainsRune(s.TempSuffix, '/') {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidValue, SettingSorterTempSuffix, s.TempSuffix))
	}

	return errs.ErrorOrNil()
}
