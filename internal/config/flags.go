package config

import "flag"

// Command-line overrides. Zero values leave the file setting alone.
var (
	flagConfig     = flag.String("config", "", "config file (default: $"+EnvConfig+", ./config.yaml, user config dir)")
	flagDebug      = flag.Bool("debug", false, "log at debug level")
	flagLogFile    = flag.String("log", "", "also write logs to this file")
	flagWidth      = flag.Int("width", 0, "viewport width in pixels")
	flagHeight     = flag.Int("height", 0, "viewport height in pixels")
	flagOrtho      = flag.Bool("ortho", false, "start with an orthographic projection")
	flagIterations = flag.Int("iterations", 0, "inversions per method in bench")
)

// ParseFlags parses the process flags. Call it before Load.
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the -config flag value.
func ConfigPath() string {
	return *flagConfig
}

func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagWidth > 0 {
		cfg.Projection.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Projection.Height = *flagHeight
	}
	if *flagOrtho {
		cfg.Projection.Mode = "ortho"
	}
	if *flagIterations > 0 {
		cfg.Bench.Iterations = *flagIterations
	}
}
