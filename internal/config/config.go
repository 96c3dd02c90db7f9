package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/leengari/listdiff/internal/parser"
)

// Output formats accepted by the report printer
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Similarity strategies
const (
	SimilarityHash  = "hash"
	SimilarityMerge = "merge"
)

// Config holds every tunable of a run. It is read from an optional TOML file
// and then overridden by command line flags.
type Config struct {
	LogLevel   string `toml:"log_level"`
	SeqURL     string `toml:"seq_url"`
	Format     string `toml:"format"`
	Malformed  string `toml:"malformed_lines"`
	Strict     bool   `toml:"strict_tokens"`
	Similarity string `toml:"similarity"`
}

func Default() Config {
	return Config{
		LogLevel:   "warn",
		Format:     FormatText,
		Malformed:  string(parser.MalformedAbort),
		Similarity: SimilarityHash,
	}
}

// Load decodes the TOML file at path on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("read config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// Validate checks that every enumerated setting holds a known value
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := oneOf("format", c.Format, FormatText, FormatJSON); err != nil {
		return err
	}
	if err := oneOf("malformed_lines", c.Malformed, string(parser.MalformedAbort), string(parser.MalformedSkip)); err != nil {
		return err
	}
	return oneOf("similarity", c.Similarity, SimilarityHash, SimilarityMerge)
}

// ParserOptions translates the config into options for the line parser
func (c Config) ParserOptions() parser.Options {
	return parser.Options{
		Malformed: parser.MalformedPolicy(c.Malformed),
		Strict:    c.Strict,
	}
}

// ParseLevel maps a level name to its slog level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, &ValueError{Key: "log_level", Value: name, Allowed: []string{"debug", "info", "warn", "error"}}
	}
	return level, nil
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValueError{Key: key, Value: value, Allowed: allowed}
}

// ValueError reports a setting whose value is not one of the allowed ones
type ValueError struct {
	Key     string
	Value   string
	Allowed []string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s %q (expected one of: %s)", e.Key, e.Value, strings.Join(e.Allowed, ", "))
}
