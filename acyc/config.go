package acyc

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DumpStage names the six fixed diagnostic dump points of the driver
// sequence, matching spec.md §6's "Optional diagnostics" suffixes.
type DumpStage string

const (
	DumpPre   DumpStage = "acyc_pre"
	DumpSimp  DumpStage = "acyc_simp"
	DumpMid   DumpStage = "acyc_mid"
	DumpRank  DumpStage = "acyc_rank"
	DumpPlace DumpStage = "acyc_place"
	DumpDone  DumpStage = "acyc_done"
)

// Config holds the engine's ambient configuration: everything about how it
// runs that is not part of the graph contract itself.
type Config struct {
	// Logger receives structured trace/debug output mirroring the
	// original's UINFO calls. Defaults to a logger at warn level if nil.
	Logger *log.Logger

	// DumpDir, if non-empty, enables SVG diagnostic dumps at each of the
	// six fixed stages, written as "<DumpDir>/<run-id>.<stage>.svg".
	DumpDir string

	// DebugLevel records a diagnostic verbosity level. The engine does not
	// read it: dumps are enabled by DumpDir alone, and log output is
	// governed by the Logger's own level.
	DebugLevel int

	// CutHeuristics gates CutBasic/CutBackward during the cut-enabled
	// Reducer pass, mirroring the original's fAcycSimp escape hatch.
	// Defaults to true; with it false the Reducer still converges via
	// None/One/Out/Dup alone, leaving more edges for the Placer to cut.
	CutHeuristics bool
}

// FileConfig is the on-disk (TOML) shape of Config, for hosts that want to
// load engine tuning from a config file rather than wire up Options in Go.
// CutHeuristics is a pointer so an absent key in the TOML file leaves the
// Config default (true) untouched rather than silently disabling it.
type FileConfig struct {
	DumpDir       string `toml:"dump_dir"`
	DebugLevel    int    `toml:"debug_level"`
	CutHeuristics *bool  `toml:"cut_heuristics"`
}

// LoadFileConfig reads a TOML file into a FileConfig, suitable for passing
// to WithFileConfig.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("acyc: load config %s: %w", path, err)
	}
	return fc, nil
}

// Option configures an Engine at construction time.
type Option func(*Config)

// WithLogger overrides the default logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithDebugLevel sets Config.DebugLevel. The engine does not read that
// value; it changes neither dumps nor logging.
func WithDebugLevel(n int) Option {
	return func(c *Config) { c.DebugLevel = n }
}

// WithDumpDir enables the six fixed-stage SVG dumps, written under dir.
func WithDumpDir(dir string) Option {
	return func(c *Config) { c.DumpDir = dir }
}

// WithCutHeuristics enables or disables CutBasic/CutBackward on the
// cut-enabled Reducer pass. Defaults to true; disabling it is intended for
// testing that the Reducer's None/One/Out/Dup rules plus the Placer alone
// converge to the same final cut set, just with more Placer work.
func WithCutHeuristics(enabled bool) Option {
	return func(c *Config) { c.CutHeuristics = enabled }
}

// WithFileConfig applies settings loaded via LoadFileConfig.
func WithFileConfig(fc FileConfig) Option {
	return func(c *Config) {
		if fc.DumpDir != "" {
			c.DumpDir = fc.DumpDir
		}
		c.DebugLevel = fc.DebugLevel
		if fc.CutHeuristics != nil {
			c.CutHeuristics = *fc.CutHeuristics
		}
	}
}

func defaultConfig() Config {
	return Config{
		Logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.WarnLevel,
		}),
		CutHeuristics: true,
	}
}

func newConfig(opts ...Option) Config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.Logger == nil {
		c.Logger = defaultConfig().Logger
	}
	return c
}
