package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyTickInterval        = "daemon.tick_interval"
	keySoundEnabled        = "sound.enabled"
	keyAnnounceMode        = "sound.announce_mode"
	keyRemoteURLs          = "sound.remote_urls"
	keySpeechEnabled       = "speech.enabled"
	keySpeechCommand       = "speech.command"
	keySpokenWarnings      = "speech.spoken_warnings"
	keyNotificationsOn     = "notifications.enabled"
	keyDarkTheme           = "display.dark_theme"
	keyTwentyFourHourClock = "display.24hr_clock"
)

// defaultSpeechCommand drives espeak-ng; any synthesizer with a comparable
// flag surface can be substituted in the config file.
const defaultSpeechCommand = "espeak-ng -s {rate} -p {pitch} -a {volume} -v {voice} {text}"

// defaultRemoteURLs are the hosted fallbacks for audio assets that are not
// present locally.
var defaultRemoteURLs = []string{
	"https://skyspeak.github.io/timer/audio",
	"https://gliu.github.io/timer/audio",
}

// WithViperConfig returns an Option that loads configuration from Viper,
// writing a config file with defaults on first run.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return v.Unmarshal(c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyTickInterval, "1s")
	v.SetDefault(keySoundEnabled, true)
	v.SetDefault(keyAnnounceMode, AnnounceCue)
	v.SetDefault(keyRemoteURLs, defaultRemoteURLs)
	v.SetDefault(keySpeechEnabled, true)
	v.SetDefault(keySpeechCommand, defaultSpeechCommand)
	v.SetDefault(keySpokenWarnings, false)
	v.SetDefault(keyNotificationsOn, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHourClock, true)
}
