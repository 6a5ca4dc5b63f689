// Package emu ties the hardware model to the host: configuration and the
// pieces of plumbing that are not part of the emulated machine itself.
package emu

import (
	"os"
	"path/filepath"
	"sync"

	"w65c02/emu/log"
	"w65c02/hw"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
)

type Config struct {
	Layout hw.Layout   `toml:"layout"`
	Trace  TraceConfig `toml:"trace"`
}

type TraceConfig struct {
	// Log bus accesses even when no --trace flag is given; the trace then
	// goes to the file named here.
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"`
}

func defaultConfig() Config {
	return Config{Layout: hw.DefaultLayout()}
}

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("w65c02")
	if err := configdir.MakePath(dir); err != nil {
		log.ModSys.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the user config
// directory, falling back to the built-in defaults.
func LoadConfigOrDefault() Config {
	cfg, err := LoadConfigFile(filepath.Join(ConfigDir, cfgFilename))
	if err != nil {
		return defaultConfig()
	}
	return cfg
}

// LoadConfigFile loads the configuration from an explicit path. Fields
// absent from the file keep their default values.
func LoadConfigFile(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfig into the user config directory.
func SaveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(ConfigDir, cfgFilename), buf, 0644)
}
