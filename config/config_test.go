package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/dippid-pong/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[field]
width = 800

[match]
win_score = 3
reset_delay = "500ms"

[collision]
accuracy = 50

[unknown]
key = 1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Field.Width != 800 {
		t.Errorf("Expected width 800, got %v", cfg.Field.Width)
	}
	if cfg.Field.Height != parameter.FieldHeight {
		t.Errorf("Expected default height kept, got %v", cfg.Field.Height)
	}
	if cfg.Match.WinScore != 3 {
		t.Errorf("Expected win score 3, got %d", cfg.Match.WinScore)
	}
	if cfg.Match.ResetDelay != 500*time.Millisecond {
		t.Errorf("Expected reset delay 500ms, got %v", cfg.Match.ResetDelay)
	}

	g := cfg.GameConfig(42)
	if g.Accuracy != 50 || g.Width != 800 || g.Seed != 42 {
		t.Errorf("Unexpected game config %+v", g)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero accuracy", "[collision]\naccuracy = 0\n"},
		{"negative accuracy", "[collision]\naccuracy = -5\n"},
		{"zero win score", "[match]\nwin_score = 0\n"},
		{"same ports", "[sensor]\nleft_port = 5700\nright_port = 5700\n"},
		{"zero ball speed", "[ball]\nspeed = 0\n"},
		{"paddles overlap", "[field]\nwidth = 100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	if _, err := Load(writeConfig(t, "[field\nwidth=")); err == nil {
		t.Error("Expected decode error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DIPPID_PONG_AUDIO_ENABLED", "false")
	t.Setenv("DIPPID_PONG_MASTER_VOLUME", "40")
	t.Setenv("DIPPID_PONG_VIZ_ADDR", "127.0.0.1:9090")
	t.Setenv("DIPPID_PONG_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if got := cfg.AudioConfig().MasterVolume; got != 0.4 {
		t.Errorf("Expected master volume 0.4, got %v", got)
	}
	if cfg.Viz.Addr != "127.0.0.1:9090" {
		t.Errorf("Expected viz addr override, got %q", cfg.Viz.Addr)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", cfg.LogLevel())
	}
}

func TestLogLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "chatty"
	if cfg.LogLevel() != slog.LevelInfo {
		t.Errorf("Expected info fallback, got %v", cfg.LogLevel())
	}
	cfg.Log.Level = "WARN"
	if cfg.LogLevel() != slog.LevelWarn {
		t.Errorf("Expected warn, got %v", cfg.LogLevel())
	}
}
