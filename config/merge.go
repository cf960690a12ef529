package config

import (
	"encoding/json"

	"github.com/skyspeak/rouse/internal/models"
)

// MergeSettings overlays the raw JSON document on top of base, section by
// section. A section present in raw replaces the corresponding section of
// base wholesale; sections absent from raw keep their base values. This is
// the shallow merge that stored documents and imports rely on, so partial
// documents and documents from older versions both load cleanly.
//
// Unknown top-level keys are ignored. A malformed document (or a malformed
// section) returns an error and leaves base untouched in the caller.
func MergeSettings(base models.Settings, raw []byte) (models.Settings, error) {
	var doc map[string]json.RawMessage

	if err := json.Unmarshal(raw, &doc); err != nil {
		return base, errInvalidDocument.Wrap(err)
	}

	merged := base

	if section, ok := doc["timerSettings"]; ok {
		var timer models.TimerSettings
		if err := json.Unmarshal(section, &timer); err != nil {
			return base, errInvalidDocument.Wrap(err)
		}

		merged.Timer = timer
	}

	if section, ok := doc["intervals"]; ok {
		var stages []models.Stage
		if err := json.Unmarshal(section, &stages); err != nil {
			return base, errInvalidDocument.Wrap(err)
		}

		merged.Stages = stages
	}

	if section, ok := doc["ttsSettings"]; ok {
		var tts models.TTSSettings
		if err := json.Unmarshal(section, &tts); err != nil {
			return base, errInvalidDocument.Wrap(err)
		}

		merged.TTS = tts
	}

	if section, ok := doc["audioSettings"]; ok {
		var audio models.AudioSettings
		if err := json.Unmarshal(section, &audio); err != nil {
			return base, errInvalidDocument.Wrap(err)
		}

		merged.Audio = audio
	}

	return merged, nil
}
