package config

import "github.com/skyspeak/rouse/internal/models"

// DefaultSettings returns the compiled-in routine document: a weekday
// 07:00–07:43 morning routine with six stages. Stored documents are merged
// over this, so missing sections fall back to these values.
func DefaultSettings() models.Settings {
	return models.Settings{
		Timer: models.TimerSettings{
			StartTime:     "07:00",
			EndTime:       "07:43",
			ActiveDays:    []int{1, 2, 3, 4, 5},
			TotalDuration: 43,
		},
		Stages: []models.Stage{
			{
				ID:          1,
				Minute:      0,
				Duration:    5,
				Color:       "#FF6B6B",
				Instruction: "It is time to wake up wake up now! Rise and shine and have an amazing day",
				Audio:       "wake_up_routine.mp3",
				Enabled:     true,
			},
			{
				ID:          2,
				Minute:      5,
				Duration:    5,
				Color:       "#FF4757",
				Instruction: "Time to change your clothes!",
				Audio:       "ambulance_siren.mp3",
				Enabled:     true,
			},
			{
				ID:          3,
				Minute:      10,
				Duration:    5,
				Color:       "#FFA502",
				Instruction: "Time to pee and go eat!",
				Audio:       "big_announcement_bells.mp3",
				Enabled:     true,
			},
			{
				ID:          4,
				Minute:      15,
				Duration:    20,
				Color:       "#2ED573",
				Instruction: "EAT YOUR FOOD!",
				Audio:       "relaxing_music.mp3",
				Enabled:     true,
			},
			{
				ID:          5,
				Minute:      35,
				Duration:    0,
				Color:       "#3742FA",
				Instruction: "Time to brush and get ready for school, 8 minutes left!",
				Audio:       "final_reminder.mp3",
				Enabled:     true,
			},
			{
				ID:          6,
				Minute:      40,
				Duration:    3,
				Color:       "#9B59B6",
				Instruction: "Wear your shoes, grab your jackets and backpack!",
				Audio:       "ambulance_siren.mp3",
				Enabled:     true,
			},
		},
		TTS: models.TTSSettings{
			Rate:   1.0,
			Pitch:  1.0,
			Volume: 1.0,
			Voice:  "default",
		},
		Audio: models.AudioSettings{
			Volume:  0.8,
			FadeIn:  200,
			FadeOut: 200,
		},
	}
}
