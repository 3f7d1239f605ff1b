package opt

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/config"
)

// Engine holds the board and search flags shared by commands. Flags
// given on the command line override the config file and environment.
type Engine struct {
	ConfigFile string
	Width      int
	Height     int
	Depth      int
	Algorithm  string
	First      string
	Weights    string
	NoTable    bool
	LogLevel   string
	Debug      bool

	flags *flag.FlagSet
}

func (o *Engine) AddFlags(flags *flag.FlagSet) {
	o.flags = flags
	flags.StringVar(&o.ConfigFile, "config", "", "YAML config file")
	flags.IntVar(&o.Width, "width", 7, "board width")
	flags.IntVar(&o.Height, "height", 6, "board height")
	flags.IntVar(&o.Depth, "depth", 4, "search depth in plies")
	flags.StringVar(&o.Algorithm, "algorithm", "alphabeta", "search algorithm (minimax or alphabeta)")
	flags.StringVar(&o.First, "first", "computer", "side to move first (computer or human)")
	flags.StringVar(&o.Weights, "weights", "", "JSON-encoded evaluation weights")
	flags.BoolVar(&o.NoTable, "no-table", false, "disable the transposition table")
	flags.StringVar(&o.LogLevel, "log-level", "info", "log level")
	flags.BoolVar(&o.Debug, "debug", false, "log at debug level")
}

// Load merges the configuration with any flags that were set and
// applies the resulting log level.
func (o *Engine) Load() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return nil, err
	}
	var ferr error
	o.flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = o.Width
		case "height":
			cfg.Height = o.Height
		case "depth":
			cfg.Depth = o.Depth
		case "algorithm":
			cfg.Algorithm = o.Algorithm
		case "first":
			c, err := c4.ParseColor(o.First)
			if err != nil {
				ferr = fmt.Errorf("-first: %w", err)
			}
			cfg.ComputerFirst = c == c4.Computer
		case "weights":
			w, err := ai.OverlayWeights(cfg.Weights, o.Weights)
			if err != nil {
				ferr = fmt.Errorf("-weights: %w", err)
			}
			cfg.Weights = w
		case "log-level":
			cfg.LogLevel = o.LogLevel
		}
	})
	if ferr != nil {
		return nil, ferr
	}
	if o.Debug {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, _ := cfg.Level()
	zerolog.SetGlobalLevel(lvl)
	return cfg, nil
}

func (o *Engine) BuildConfig(cfg *config.Config) ai.Config {
	ec, err := cfg.Engine()
	if err != nil {
		panic(err)
	}
	ec.NoTable = o.NoTable
	return ec
}
