package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/skyspeak/rouse/config"
)

func defaultConfig() *config.Config {
	return &config.Config{
		Daemon: config.DaemonConfig{
			TickInterval: time.Second,
		},
		Sound: config.SoundConfig{
			Enabled:      true,
			AnnounceMode: config.AnnounceCue,
			RemoteURLs: []string{
				"https://skyspeak.github.io/timer/audio",
				"https://gliu.github.io/timer/audio",
			},
		},
		Speech: config.SpeechConfig{
			Enabled:        true,
			Command:        "espeak-ng -s {rate} -p {pitch} -a {volume} -v {voice} {text}",
			SpokenWarnings: false,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme:      true,
			TwentyFourHour: true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	// a default config file must be written on first run
	if _, err := os.Stat(configPath); err != nil {
		t.Fatal("expected default config file to be written:", err)
	}

	assert.Equal(t, defaultConfig(), cfg)
}

func TestViperReadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	contents := []byte(`daemon:
  tick_interval: 250ms
sound:
  enabled: false
  announce_mode: speech
speech:
  spoken_warnings: true
display:
  24hr_clock: false
`)
	if err := os.WriteFile(configPath, contents, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := defaultConfig()
	want.Daemon.TickInterval = 250 * time.Millisecond
	want.Sound.Enabled = false
	want.Sound.AnnounceMode = config.AnnounceSpeech
	want.Speech.SpokenWarnings = true
	want.Display.TwentyFourHour = false

	assert.Equal(t, want, cfg)
}
