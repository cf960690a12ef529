package timer

import "github.com/skyspeak/rouse/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errAudioDisabled = &apperr.Error{
		Message: "audio playback has not been enabled",
	}

	errRemoteFetch = &apperr.Error{
		Message: "unable to fetch remote audio file",
	}
)
