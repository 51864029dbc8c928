package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/lvgo/cmd/lvgo/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "generate":
		err = commands.Generate(args)
	case "config":
		err = commands.Config(args)
	case "sim":
		err = commands.Sim(args)
	case "version", "-v", "--version":
		fmt.Printf("lvgo version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lvgo - Go bindings for the LVGL widget engine

Usage: lvgo <command> [options]

Commands:
  generate        Generate widgets_gen.go from widgets.toml
  config          Print the effective configuration, or write a default one
  sim             Drive a demo screen on the simulated engine
  version         Print version information
  help            Show this help message

Examples:
  lvgo generate                     Regenerate widget wrappers
  lvgo config -file lvgo.toml       Show configuration with overrides applied
  lvgo config -init                 Write lvgo.toml with default values
  lvgo sim -clicks 3                Tap the demo button three times

Configuration:
  Engines are configured via lvgo.toml. LVGO_LIB_PATH overrides the
  location of the native engine library.`)
}
