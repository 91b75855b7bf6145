package configuration

import (
	"fmt"

	"github.com/desertwitch/recursion/internal/koch"
	"github.com/hashicorp/go-multierror"
)

const (
	// SettingSnowflakeSize is the base length of each of the three curves.
	SettingSnowflakeSize = "SNOWFLAKE_SIZE"

	// SettingSnowflakeStartX is the x coordinate the drawing starts at.
	SettingSnowflakeStartX = "SNOWFLAKE_START_X"

	// SettingSnowflakeStartY is the y coordinate the drawing starts at.
	SettingSnowflakeStartY = "SNOWFLAKE_START_Y"

	// SettingSnowflakeSVGStroke is the stroke color of SVG output.
	SettingSnowflakeSVGStroke = "SNOWFLAKE_SVG_STROKE"
)

// SnowflakeConfig holds the settings of the snowflake program.
type SnowflakeConfig struct {
	Size      float64
	StartX    float64
	StartY    float64
	SVGStroke string
}

// DefaultSnowflakeConfig returns a pointer to a [SnowflakeConfig] holding the
// default settings, i.e. the default [koch.Options].
func DefaultSnowflakeConfig() *SnowflakeConfig {
	opts := koch.DefaultOptions()

	return &SnowflakeConfig{
		Size:      opts.Size,
		StartX:    opts.Start.X,
		StartY:    opts.Start.Y,
		SVGStroke: "black",
	}
}

// Options returns the [koch.Options] described by the settings.
func (s *SnowflakeConfig) Options() koch.Options {
	return koch.Options{
		Size:  s.Size,
		Start: koch.Point{X: s.StartX, Y: s.StartY},
	}
}

// LoadSnowflake returns the [SnowflakeConfig] from the given file, applied on
// top of the defaults. A missing file is only an error if it is required.
func (c *Handler) LoadSnowflake(filename string, required bool) (*SnowflakeConfig, error) {
	envMap, err := c.readOptional(filename, required)
	if err != nil {
		return nil, err
	}

	config := DefaultSnowflakeConfig()

	var errs *multierror.Error
	errs = c.floatSetting(envMap, SettingSnowflakeSize, &config.Size, errs)
	errs = c.floatSetting(envMap, SettingSnowflakeStartX, &config.StartX, errs)
	errs = c.floatSetting(envMap, SettingSnowflakeStartY, &config.StartY, errs)
	c.stringSetting(envMap, SettingSnowflakeSVGStroke, &config.SVGStroke)

	if err := config.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}

	return config, nil
}

// Validate returns an error covering every invalid setting, or nil.
func (s *SnowflakeConfig) Validate() error {
	var errs *multierror.Error

	if s.Size <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s=%v (must be > 0)", ErrOutOfRange, SettingSnowflakeSize, s.Size))
	}

	if s.SVGStroke == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrEmptyValue, SettingSnowflakeSVGStroke))
	}

	return errs.ErrorOrNil()
}
