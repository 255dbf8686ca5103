// vectool is a CLI utility for inspecting vector and orientation conversions.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Faultbox/vecmath/internal/config"
	"github.com/Faultbox/vecmath/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	if args[0] == "help" {
		printUsage()
		return
	}

	if err := run(os.Stdout, args, cfg); err != nil {
		logger.Sugar.Errorw("command failed", "command", args[0], "error", err)
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			printUsage()
		}
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage() {
	fmt.Println(`vectool - vector and orientation conversion utility

Usage:
  vectool [flags] <command> [arguments]

Commands:
  angles <x> <y> <z>                 Yaw, pitch and view angles of a direction
  polar <x> <y> <z>                  Polar coordinates (radius, yaw, -pitch)
  frame <x> <y> <z>                  Rotation frame with the vector as forward axis
  normal <x> <y> <z>                 Unit vector
  mask <x> <y> <z>                   6-bit direction mask of the sign pattern
  unmask <mask>                      Sign vector encoded by a direction mask
  lerp <x1> <y1> <z1> <x2> <y2> <z2> Linear interpolation samples
  slerp <x1> <y1> <z1> <x2> <y2> <z2> Spherical interpolation samples (inputs normalized)
  sphere <x> <y> <radius>            Project a point onto a trackball sphere

Flags:
  -config <path>   Config file (default ./config.yaml or the user config dir)
  -precision <n>   Fractional digits in output
  -steps <n>       Interpolation steps
  -debug           Enable debug logging
  -log-file <path> Write logs to a rotating file

Examples:
  vectool angles 0 0 5
  vectool -precision 2 frame 1 1 0
  vectool -steps 8 slerp 1 0 0 0 1 0`)
}
