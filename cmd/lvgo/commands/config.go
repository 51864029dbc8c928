package commands

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/agiangrant/lvgo"
)

const defaultConfigFile = "lvgo.toml"

// Config implements the 'lvgo config' command.
func Config(args []string) error {
	flags := flag.NewFlagSet("config", flag.ExitOnError)
	file := flags.String("file", defaultConfigFile, "Path to the configuration file")
	initFile := flags.Bool("init", false, "Write a configuration file with default values")
	flags.Parse(args)

	if *initFile {
		return writeDefault(*file)
	}

	cfg, err := loadConfig(*file)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	os.Stdout.Write(data)
	return nil
}

// loadConfig reads path, falling back to defaults when it does not exist.
func loadConfig(path string) (lvgo.Config, error) {
	cfg, err := lvgo.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return lvgo.ParseConfig(nil)
	}
	return cfg, err
}

func writeDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	data, err := lvgo.DefaultConfig().Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}
