package ringchart

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sgostarter/libringchart/segment"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGapDegrees          = 3
	DefaultStrokeWidth         = 6
	DefaultAnimationDurationMs = 1500
)

var DefaultPalette = []string{
	"#4477AA",
	"#EE6677",
	"#228833",
	"#CCBB44",
	"#66CCEE",
}

type Config struct {
	GapDegrees          float64  `yaml:"gapDegrees" json:"gapDegrees"`
	StrokeWidth         float64  `yaml:"strokeWidth" json:"strokeWidth"`
	RoundedCaps         bool     `yaml:"roundedCaps" json:"roundedCaps"`
	Palette             []string `yaml:"palette" json:"palette"`
	AnimationDurationMs int      `yaml:"animationDurationMs" json:"animationDurationMs"`
	Caption             string   `yaml:"caption" json:"caption"`
}

func DefaultConfig() *Config {
	return &Config{
		GapDegrees:          DefaultGapDegrees,
		StrokeWidth:         DefaultStrokeWidth,
		RoundedCaps:         true,
		Palette:             append([]string{}, DefaultPalette...),
		AnimationDurationMs: DefaultAnimationDurationMs,
	}
}

func (cfg *Config) AnimationDuration() time.Duration {
	return time.Duration(cfg.AnimationDurationMs) * time.Millisecond
}

func (cfg *Config) Validate() error {
	if cfg.GapDegrees < 0 {
		return fmt.Errorf("%w: gapDegrees %v", ErrBadConfig, cfg.GapDegrees)
	}

	if cfg.StrokeWidth < 0 {
		return fmt.Errorf("%w: strokeWidth %v", ErrBadConfig, cfg.StrokeWidth)
	}

	if cfg.AnimationDurationMs < 0 {
		return fmt.Errorf("%w: animationDurationMs %d", ErrBadConfig, cfg.AnimationDurationMs)
	}

	_, err := segment.ParsePalette(cfg.Palette)

	return err
}

// LoadConfig reads a yaml file on top of DefaultConfig.
func LoadConfig(file string) (*Config, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFromAttrs builds a config from a host attribute map keyed like the
// yaml tags. Values are coerced, so "3" and 3 both work for gapDegrees.
// The palette may be a list or a comma separated string.
func ConfigFromAttrs(attrs map[string]interface{}) (cfg *Config, err error) {
	cfg = DefaultConfig()

	for key, v := range attrs {
		switch key {
		case "gapDegrees":
			cfg.GapDegrees, err = cast.ToFloat64E(v)
		case "strokeWidth":
			cfg.StrokeWidth, err = cast.ToFloat64E(v)
		case "roundedCaps":
			cfg.RoundedCaps, err = cast.ToBoolE(v)
		case "animationDurationMs":
			cfg.AnimationDurationMs, err = cast.ToIntE(v)
		case "caption":
			cfg.Caption, err = cast.ToStringE(v)
		case "palette":
			cfg.Palette, err = paletteAttr(v)
		default:
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadConfig, key, err)
		}
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func paletteAttr(v interface{}) ([]string, error) {
	if s, ok := v.(string); ok {
		var ps []string

		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				ps = append(ps, p)
			}
		}

		return ps, nil
	}

	return cast.ToStringSliceE(v)
}
