// Package config holds the process-wide settings: loaded once at
// startup from a JSON configuration file, overridden by any CLI flags
// the user set, validated, and read-only from then on.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/meni-adin/magnet-framer/internal/logging"
)

// CropSettings are the pixels removed from each edge of a source image
// before scaling.
type CropSettings struct {
	Left   int `mapstructure:"left" json:"left" validate:"gte=0"`
	Top    int `mapstructure:"top" json:"top" validate:"gte=0"`
	Right  int `mapstructure:"right" json:"right" validate:"gte=0"`
	Bottom int `mapstructure:"bottom" json:"bottom" validate:"gte=0"`
}

// OrientationSettings is the parameter set tuned for one source
// orientation: which frame artwork to use, how much to crop and how
// much overscale to apply on top of the best-fit ratio.
type OrientationSettings struct {
	FramePath   string       `mapstructure:"frame-path" json:"frame-path" validate:"required"`
	Crop        CropSettings `mapstructure:"crop" json:"crop"`
	ScaleFactor float64      `mapstructure:"scale-factor" json:"scale-factor" validate:"gt=0"`
}

// Settings holds the application configuration.
type Settings struct {
	InputPath         string              `mapstructure:"input-path" json:"input-path" validate:"required"`
	OutputPath        string              `mapstructure:"output-path" json:"output-path" validate:"required"`
	Debug             bool                `mapstructure:"debug" json:"debug"`
	RotateToLandscape bool                `mapstructure:"rotate-to-landscape" json:"rotate-to-landscape"`
	JPEGQuality       int                 `mapstructure:"jpeg-quality" json:"jpeg-quality" validate:"min=1,max=100"`
	Landscape         OrientationSettings `mapstructure:"landscape" json:"landscape" validate:"required"`
	Portrait          OrientationSettings `mapstructure:"portrait" json:"portrait" validate:"required"`
	Log               logging.Config      `mapstructure:"log" json:"log"`
}

// flagBindings maps config keys to the CLI flags that override them.
var flagBindings = map[string]string{
	"input-path":           "input",
	"output-path":          "output",
	"landscape.frame-path": "landscape-frame",
	"portrait.frame-path":  "portrait-frame",
	"debug":                "debug",
}

// Default returns settings with default values. Frame paths have no
// usable default and must come from the config file or flags.
func Default() *Settings {
	return &Settings{
		InputPath:         "input",
		OutputPath:        "output",
		RotateToLandscape: true,
		JPEGQuality:       95,
		Landscape:         OrientationSettings{ScaleFactor: 1.0},
		Portrait:          OrientationSettings{ScaleFactor: 1.0},
		Log:               logging.DefaultConfig(),
	}
}

// Load reads the JSON configuration file and overlays any flags the
// user set on the command line. Flags win over file values, file
// values win over defaults.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if flags != nil {
		for key, name := range flagBindings {
			flag := flags.Lookup(name)
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	settings := Default()
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks the settings against their field constraints.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
