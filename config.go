package lvgo

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/pelletier/go-toml/v2"
)

// Backends understood by Open.
const (
	// BackendNative loads the engine's shared library.
	BackendNative = "native"
	// BackendSim runs the in-process engine simulation.
	BackendSim = "sim"
)

// Config configures an Engine.
type Config struct {
	// Backend is BackendNative or BackendSim.
	Backend string `toml:"backend"`

	// LibraryPath locates the engine's shared library. LVGO_LIB_PATH
	// overrides it; when both are empty the usual locations are searched.
	LibraryPath string `toml:"library_path"`

	// DrawBufferDivisor sizes draw buffers from NewDrawBufferFor as a
	// fraction of the frame.
	DrawBufferDivisor int `toml:"draw_buffer_divisor"`

	// TickPeriodMS is the default pass period of Run.
	TickPeriodMS int `toml:"tick_period_ms"`

	Log LogConfig `toml:"log"`
	Sim SimConfig `toml:"sim"`

	// Logger receives binding and engine logs. When unset, a stdr logger
	// writing to stderr is used.
	Logger logr.Logger `toml:"-"`
}

// LogConfig controls the default logger.
type LogConfig struct {
	// Verbosity enables V-levels up to this value: 1 shows engine log
	// lines, 2 traces every callback registration.
	Verbosity int `toml:"verbosity"`
}

// SimConfig tunes the simulated engine.
type SimConfig struct {
	LongPressTime       uint32 `toml:"long_press_time"`
	LongPressRepeatTime uint32 `toml:"long_press_repeat_time"`
	DrawEvents          bool   `toml:"draw_events"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Backend:           BackendNative,
		DrawBufferDivisor: 10,
		TickPeriodMS:      5,
		Sim: SimConfig{
			LongPressTime:       400,
			LongPressRepeatTime: 100,
		},
	}
}

// LoadConfig reads a TOML configuration file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML on top of DefaultConfig and applies environment
// overrides.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// Marshal encodes cfg as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func (c *Config) applyEnv() {
	if path := os.Getenv("LVGO_LIB_PATH"); path != "" {
		c.LibraryPath = path
	}
}

func (c Config) logger() logr.Logger {
	if c.Logger.GetSink() != nil {
		return c.Logger
	}
	stdr.SetVerbosity(c.Log.Verbosity)
	return stdr.New(log.New(os.Stderr, "lvgo: ", log.LstdFlags))
}

func (c Config) tickPeriod() time.Duration {
	if c.TickPeriodMS <= 0 {
		return 5 * time.Millisecond
	}
	return time.Duration(c.TickPeriodMS) * time.Millisecond
}
