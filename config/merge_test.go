package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/skyspeak/rouse/internal/models"
)

func TestMergeSettingsEmptyDocument(t *testing.T) {
	base := DefaultSettings()

	got, err := MergeSettings(base, []byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(base, got); diff != "" {
		t.Errorf("empty merge changed the document (-want +got):\n%s", diff)
	}
}

func TestMergeSettingsReplacesSections(t *testing.T) {
	base := DefaultSettings()

	raw := []byte(`{
		"timerSettings": {
			"startTime": "06:30",
			"endTime": "07:15",
			"activeDays": [0, 6],
			"totalDuration": 45
		},
		"audioSettings": {"volume": 0.5, "fadeIn": 100, "fadeOut": 300}
	}`)

	got, err := MergeSettings(base, raw)
	if err != nil {
		t.Fatal(err)
	}

	wantTimer := models.TimerSettings{
		StartTime:     "06:30",
		EndTime:       "07:15",
		ActiveDays:    []int{0, 6},
		TotalDuration: 45,
	}
	if diff := cmp.Diff(wantTimer, got.Timer); diff != "" {
		t.Errorf("timer section (-want +got):\n%s", diff)
	}

	wantAudio := models.AudioSettings{Volume: 0.5, FadeIn: 100, FadeOut: 300}
	if diff := cmp.Diff(wantAudio, got.Audio); diff != "" {
		t.Errorf("audio section (-want +got):\n%s", diff)
	}

	// untouched sections keep defaults
	if diff := cmp.Diff(base.Stages, got.Stages); diff != "" {
		t.Errorf("stages changed unexpectedly (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(base.TTS, got.TTS); diff != "" {
		t.Errorf("tts changed unexpectedly (-want +got):\n%s", diff)
	}
}

func TestMergeSettingsSectionReplaceIsWholesale(t *testing.T) {
	base := DefaultSettings()

	// a partial section replaces the whole section, not single fields
	got, err := MergeSettings(
		base,
		[]byte(`{"timerSettings": {"startTime": "06:30"}}`),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := models.TimerSettings{StartTime: "06:30"}
	if diff := cmp.Diff(want, got.Timer); diff != "" {
		t.Errorf("timer section (-want +got):\n%s", diff)
	}
}

func TestMergeSettingsMalformed(t *testing.T) {
	base := DefaultSettings()

	for _, raw := range []string{
		`not json at all`,
		`[1, 2, 3]`,
		`{"intervals": "should be an array"}`,
	} {
		got, err := MergeSettings(base, []byte(raw))
		if err == nil {
			t.Errorf("MergeSettings(%q): expected error", raw)
		}

		if diff := cmp.Diff(base, got); diff != "" {
			t.Errorf(
				"MergeSettings(%q) modified document on error (-want +got):\n%s",
				raw,
				diff,
			)
		}
	}
}

func TestMergeSettingsIgnoresUnknownKeys(t *testing.T) {
	base := DefaultSettings()

	got, err := MergeSettings(base, []byte(`{"theme": "dark", "version": 3}`))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(base, got); diff != "" {
		t.Errorf("unknown keys changed the document (-want +got):\n%s", diff)
	}
}
