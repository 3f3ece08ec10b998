package legible

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/legible/locale"
)

// Config holds startup configuration for NewWithConfig. The zero value is
// equivalent to New(). The yaml tags let config files map onto it directly.
type Config struct {
	// Language is a BCP-47-like tag ("en", "en_US", "es"). Empty selects
	// English.
	Language string `yaml:"language"`

	// Strict makes an unsupported Language an error instead of an English
	// fallback.
	Strict bool `yaml:"strict"`

	// RemoveApostrophes strips contraction apostrophes during punctuation
	// removal.
	RemoveApostrophes bool `yaml:"remove_apostrophes"`

	// Rounding rounds float-returning metrics to RoundingPoints decimal
	// places, half away from zero.
	Rounding       bool `yaml:"rounding"`
	RoundingPoints int  `yaml:"rounding_points"`

	// Logger receives debug traces from the consensus path. Nil disables
	// them. Language-fallback warnings go through zerolog's global logger.
	Logger *zerolog.Logger `yaml:"-"`
}

// scoreOptions holds the resolved per-instance preferences.
type scoreOptions struct {
	// Resolved primary language subtag
	lang string

	// Apostrophe policy for punctuation removal
	removeApostrophes bool

	// Rounding preference for float-returning metrics
	rounding bool
	points   int
}

// defaultOptions returns the default scoring options.
func defaultOptions() scoreOptions {
	return scoreOptions{
		lang:              locale.DefaultLanguage,
		removeApostrophes: false,
		rounding:          false,
		points:            0,
	}
}
