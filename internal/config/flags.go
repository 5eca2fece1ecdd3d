package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagOut      = flag.String("out", "", "Output directory for mesh buffers")
	flagWrite    = flag.Bool("write", false, "Write vertex and index buffers")
	flagNoCheck  = flag.Bool("no-validate", false, "Skip mesh buffer validation")
	flagMorph    = flag.Bool("morph", false, "Set the morph targets bit in pipeline keys")
	flagLogFile  = flag.String("log-file", "", "Also log to this file (rotated)")
	flagFeatures = flag.Uint64("features", 0, "Downstream feature bits ORed into pipeline keys")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments remaining after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
		cfg.Output.WriteBuffers = true
	}
	if *flagWrite {
		cfg.Output.WriteBuffers = true
	}
	if *flagNoCheck {
		cfg.Mesh.Validate = false
	}
	if *flagMorph {
		cfg.Mesh.MorphTargets = true
	}
	if *flagFeatures != 0 {
		cfg.Mesh.FeatureBits = *flagFeatures
	}
}
