// Package config loads the daemon configuration from the config file and
// provides filesystem paths for the data store, log file, and audio assets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all daemon-level settings. The routine document itself
	// (window, stages, voices) lives in the data store, not here.
	Config struct {
		Daemon        DaemonConfig        `mapstructure:"daemon"`
		Sound         SoundConfig         `mapstructure:"sound"`
		Speech        SpeechConfig        `mapstructure:"speech"`
		Notifications NotificationConfig  `mapstructure:"notifications"`
		Display       DisplayConfig       `mapstructure:"display"`
	}

	// DaemonConfig controls the clock loop.
	DaemonConfig struct {
		// TickInterval is how often the wall clock is sampled.
		TickInterval time.Duration `mapstructure:"tick_interval"`
	}

	// SoundConfig controls cue playback.
	SoundConfig struct {
		Enabled bool `mapstructure:"enabled"`
		// AnnounceMode selects the stage announcement variant: "cue"
		// plays the numbered alert asset three times, "speech" speaks
		// the instruction three times with the calming voice profile.
		AnnounceMode string `mapstructure:"announce_mode"`
		// RemoteURLs are base URLs tried, in order, after all local
		// candidates for an audio file have failed.
		RemoteURLs []string `mapstructure:"remote_urls"`
	}

	// SpeechConfig controls the speech synthesizer.
	SpeechConfig struct {
		Enabled bool `mapstructure:"enabled"`
		// Command is the synthesizer command template. The placeholders
		// {text}, {rate}, {pitch}, {volume}, and {voice} are substituted
		// before execution.
		Command string `mapstructure:"command"`
		// SpokenWarnings speaks the one-minute warning instead of only
		// logging it.
		SpokenWarnings bool `mapstructure:"spoken_warnings"`
	}

	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.1.0"

// AnnounceMode values.
const (
	AnnounceCue    = "cue"
	AnnounceSpeech = "speech"
)

var (
	configDir      = "rouse"
	configFileName = "config.yml"
	dbFileName     = "rouse.db"
	logFileName    = "rouse.log"
	audioDirName   = "audio"
	dbFilePath     string
	configFilePath string
	logFilePath    string
	audioDirPath   string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// AudioDirPath is the first location searched for audio cue files.
func AudioDirPath() string {
	return audioDirPath
}

// InitializePaths resolves all filesystem paths through XDG. Setting
// ROUSE_ENV isolates the paths for testing.
func InitializePaths() {
	rouseEnv := strings.TrimSpace(os.Getenv("ROUSE_ENV"))
	if rouseEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", rouseEnv)
		dbFileName = fmt.Sprintf("rouse_%s.db", rouseEnv)
		logFileName = fmt.Sprintf("rouse_%s.log", rouseEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)

	audioDirPath = filepath.Join(dataDir, audioDirName)

	if err = os.MkdirAll(audioDirPath, 0o755); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// New creates a Config and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	return cfg, nil
}
