package text

import "github.com/go-text/typesetting/language"

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	name          string
	instanceLimit int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		instanceLimit: 256, // blended instances kept per source
	}
}

// WithName overrides the font name read from the font file.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}

// WithInstanceLimit sets how many font instances a source keeps cached.
// Animations create a new instance per frame for every blended font, so the
// cache is bounded. A value of 0 disables the limit.
func WithInstanceLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		if n >= 0 {
			c.instanceLimit = n
		}
	}
}

// ShaperOption configures a GoTextShaper.
type ShaperOption func(*shaperConfig)

// shaperConfig holds configuration for GoTextShaper.
type shaperConfig struct {
	fallback []*FontSource
	language language.Language
	features []Feature
}

// defaultShaperConfig returns the default shaper configuration.
func defaultShaperConfig() shaperConfig {
	return shaperConfig{
		language: language.NewLanguage("en"),
	}
}

// WithFallback adds font sources consulted, in order, for runes the primary
// source does not cover.
func WithFallback(sources ...*FontSource) ShaperOption {
	return func(c *shaperConfig) {
		for _, s := range sources {
			if s != nil {
				c.fallback = append(c.fallback, s)
			}
		}
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "ar").
func WithLanguage(lang string) ShaperOption {
	return func(c *shaperConfig) {
		c.language = language.NewLanguage(lang)
	}
}

// WithFeatures sets OpenType features applied to every shaping call,
// such as {"liga", 0} to disable ligatures.
func WithFeatures(features ...Feature) ShaperOption {
	return func(c *shaperConfig) {
		c.features = append(c.features[:0:0], features...)
	}
}

// Feature is an OpenType feature setting.
type Feature struct {
	Tag   string
	Value uint32
}
