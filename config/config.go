// Package config loads the generator's runtime parameters from an INI
// file: a [Path] section naming the output directory, and a
// [Generation] section controlling grid shape and sampling density.
//
// Parsing itself is delegated to gopkg.in/ini.v1; range validation and
// default substitution for out-of-range or malformed numeric values is
// this package's own policy.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"
)

// ErrMissing is returned when the config file does not exist.
var ErrMissing = errors.New("config: file not found")

// ErrParse is returned when the INI file cannot be parsed.
var ErrParse = errors.New("config: malformed file")

// ErrType is returned when a string-valued key (Output) is present
// but empty; numeric keys never fail this way, they fall back to
// their default instead.
var ErrType = errors.New("config: invalid value type")

// Params holds the validated, clamped generation parameters the
// Driver needs, plus the output directory path.
type Params struct {
	Output              string
	Size                int
	Depth               int
	MaxPoints           int
	DesiredCombinations uint64
}

// Default parameter values, used whenever a key is absent, malformed,
// or out of range.
const (
	DefaultOutput              = "./output"
	DefaultSize                = 32
	DefaultDepth               = 1
	DefaultMaxPoints           = 4
	DefaultDesiredCombinations = 100
)

// Load parses path as an INI file and returns validated Params. Absent
// keys take their defaults silently; malformed or out-of-range numeric
// values fall back to their defaults with a warning logged through log.
// An Output key that is present but empty is fatal (ErrType).
func Load(path string, log zerolog.Logger) (Params, error) {
	if _, err := os.Stat(path); err != nil {
		return Params{}, fmt.Errorf("%w: %s", ErrMissing, path)
	}

	file, err := ini.Load(path)
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	out := Params{
		Output:              DefaultOutput,
		Size:                DefaultSize,
		Depth:               DefaultDepth,
		MaxPoints:           DefaultMaxPoints,
		DesiredCombinations: DefaultDesiredCombinations,
	}

	pathSection := file.Section("Path")
	if pathSection.HasKey("Output") {
		key := pathSection.Key("Output").String()
		if key == "" {
			return Params{}, fmt.Errorf("%w: [Path] Output must not be empty", ErrType)
		}
		out.Output = key
	}

	gen := file.Section("Generation")
	out.Size = clampInt(gen, log, "Size", DefaultSize, 1, 255)
	out.Depth = clampInt(gen, log, "Depth", DefaultDepth, 1, 255)
	out.MaxPoints = clampInt(gen, log, "MaxNumberOfPoints", DefaultMaxPoints, 1, 255)
	out.DesiredCombinations = clampUint64(gen, log, "DesiredCombinations", DefaultDesiredCombinations, 1, 1<<32-1)

	return out, nil
}

// clampInt reads key from section, returning def when the key is
// absent, and falling back to def with a warn log naming the key, the
// bad value, and the default when it fails to parse as an int or falls
// outside [lo, hi].
func clampInt(section *ini.Section, log zerolog.Logger, key string, def, lo, hi int) int {
	if !section.HasKey(key) {
		return def
	}
	raw := section.Key(key).String()
	v, err := section.Key(key).Int()
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Int("default", def).Msg("config: value is not an integer, using default")
		return def
	}
	if v < lo || v > hi {
		log.Warn().Str("key", key).Int("value", v).Int("default", def).Msg("config: value out of range, using default")
		return def
	}

	return v
}

func clampUint64(section *ini.Section, log zerolog.Logger, key string, def, lo, hi uint64) uint64 {
	if !section.HasKey(key) {
		return def
	}
	raw := section.Key(key).String()
	v, err := section.Key(key).Uint64()
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Uint64("default", def).Msg("config: value is not an integer, using default")
		return def
	}
	if v < lo || v > hi {
		log.Warn().Str("key", key).Uint64("value", v).Uint64("default", def).Msg("config: value out of range, using default")
		return def
	}

	return v
}
