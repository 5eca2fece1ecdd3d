// meshtool builds mesh buffers from YAML shape files and inspects pipeline
// specialization keys.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshkit/internal/config"
	"github.com/Faultbox/meshkit/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "build", "b":
		err = cmdBuild(cfg, args)
	case "key", "k":
		err = cmdKey(cfg, args)
	case "decode", "d":
		err = cmdDecode(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - primitive mesh builder and pipeline key utility

Usage:
  meshtool [flags] <command> [args]

Commands:
  build <shapes.yaml>     Mesh every shape in the file and report buffers
  key [topology]          Pack a pipeline key (default topology from config)
  decode <key>            Decode a pipeline key (hex or decimal)

Flags:
  -config <file>          Config file (default ./meshtool.yaml)
  -debug                  Debug logging
  -out <dir>              Write .vtx/.idx buffers to dir
  -no-validate            Skip buffer validation
  -morph                  Set the morph targets bit
  -features <bits>        Downstream feature bits for keys

Examples:
  meshtool build shapes.yaml
  meshtool -out ./buffers build shapes.yaml
  meshtool -features 0x1 key line-strip
  meshtool decode 0x2000000000000001`)
}
