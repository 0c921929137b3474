package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Load reads path over the defaults then applies environment overrides
// An empty path returns the defaults with overrides; unknown keys are logged and ignored
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "decode config %s", path)
		}
		for _, key := range md.Undecoded() {
			slog.Warn("unknown config key ignored", "key", key.String(), "file", path)
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from DIPPID_PONG_* variables
// Unparseable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DIPPID_PONG_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	if v := os.Getenv("DIPPID_PONG_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = n
		}
	}
	if v, ok := os.LookupEnv("DIPPID_PONG_VIZ_ADDR"); ok {
		c.Viz.Addr = v
	}
	if v := os.Getenv("DIPPID_PONG_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}
