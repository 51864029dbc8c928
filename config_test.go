package lvgo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		env     string
		want    func(*Config)
		wantErr bool
	}{
		{
			name: "empty",
			want: func(*Config) {},
		},
		{
			name: "overrides",
			data: `
backend = "sim"
draw_buffer_divisor = 4

[log]
verbosity = 2

[sim]
long_press_time = 250
draw_events = true
`,
			want: func(c *Config) {
				c.Backend = BackendSim
				c.DrawBufferDivisor = 4
				c.Log.Verbosity = 2
				c.Sim.LongPressTime = 250
				c.Sim.DrawEvents = true
			},
		},
		{
			name: "environment wins",
			data: `library_path = "/opt/lvgl/liblvgl.so"`,
			env:  "/usr/local/lib/liblvgl.so",
			want: func(c *Config) { c.LibraryPath = "/usr/local/lib/liblvgl.so" },
		},
		{
			name:    "malformed",
			data:    `backend = `,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LVGO_LIB_PATH", tt.env)
			got, err := ParseConfig([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			want := DefaultConfig()
			tt.want(&want)
			if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Config{}, "Logger")); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("LVGO_LIB_PATH", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "lvgo.toml")

	cfg := DefaultConfig()
	cfg.Backend = BackendSim
	cfg.TickPeriodMS = 16
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if diff := cmp.Diff(cfg, got, cmpopts.IgnoreFields(Config{}, "Logger")); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadConfig() of a missing file succeeded")
	}
}
