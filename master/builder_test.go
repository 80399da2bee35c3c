package master

import (
	"context"
	"testing"

	"veoforge/profile"
	"veoforge/rules"
)

// Extraction runs against a nil provider in these tests, so the person
// identity always comes from the deterministic fallback path.
func newTestBuilder() *Builder {
	return NewBuilder(rules.Default(), profile.NewExtractor(nil))
}

func TestBuildDefaults(t *testing.T) {
	m := newTestBuilder().Build(context.Background(), "I'm Grace Hopper and I build compilers.", "uploads/ref.jpg", Options{})

	if m.ProjectMetadata.TotalClips != 3 {
		t.Errorf("total clips = %d; want default 3", m.ProjectMetadata.TotalClips)
	}
	if m.ProjectMetadata.TotalDurationSeconds != 24 {
		t.Errorf("total duration = %d; want 24", m.ProjectMetadata.TotalDurationSeconds)
	}
	if m.ProjectMetadata.SpeakingSpeed != "1x" {
		t.Errorf("speaking speed = %q; want normalized 1x", m.ProjectMetadata.SpeakingSpeed)
	}
	if m.PersonIdentity.Name != "Grace Hopper" {
		t.Errorf("person name = %q; want fallback-extracted name", m.PersonIdentity.Name)
	}
	if m.VisualSettings.Background.Type != "keep_original" {
		t.Errorf("background type = %q; want keep_original", m.VisualSettings.Background.Type)
	}
	if m.VisualSettings.Background.ExtractFrom != "uploads/ref.jpg" {
		t.Errorf("background extract_from = %q", m.VisualSettings.Background.ExtractFrom)
	}
	if m.AudioProfile.Music.Enabled {
		t.Error("music enabled by default; want disabled")
	}
	if m.AudioProfile.Music.VolumeDB != -100 {
		t.Errorf("silent music volume = %v; want -100", m.AudioProfile.Music.VolumeDB)
	}
}

func TestBuildTotalDurationInvariant(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 10} {
		m := newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{ClipCount: n})
		if m.ProjectMetadata.TotalDurationSeconds != n*8 {
			t.Errorf("clipCount=%d: total duration = %d; want %d", n, m.ProjectMetadata.TotalDurationSeconds, n*8)
		}
	}
}

func TestBuildSpeedResolution(t *testing.T) {
	m := newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{Speed: "2x"})
	if m.TimingConfig.WordsPerSecond != 5.4 {
		t.Errorf("2x words/sec = %v; want 5.4", m.TimingConfig.WordsPerSecond)
	}
	if m.TimingConfig.TargetWordsPerClip != 42 {
		t.Errorf("2x target words = %d; want 42", m.TimingConfig.TargetWordsPerClip)
	}

	unknown := newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{Speed: "9x"})
	normal := newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{Speed: "1x"})
	if unknown.TimingConfig != normal.TimingConfig {
		t.Errorf("unknown speed timing = %+v; want identical to 1x", unknown.TimingConfig)
	}
	if unknown.ProjectMetadata.SpeakingSpeed != "1x" {
		t.Errorf("unknown speed recorded as %q; want 1x", unknown.ProjectMetadata.SpeakingSpeed)
	}
}

func TestBuildUserToneOverride(t *testing.T) {
	m := newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{UserTone: "enthusiastic"})
	if m.PersonIdentity.Tone != "enthusiastic" {
		t.Errorf("tone = %q; want user override", m.PersonIdentity.Tone)
	}

	unknown := newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{UserTone: "sarcastic"})
	if unknown.PersonIdentity.Tone != "professional" {
		t.Errorf("unknown tone = %q; want extracted tone kept", unknown.PersonIdentity.Tone)
	}
}

func TestBuildBackgroundPresetResolution(t *testing.T) {
	m := newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{BackgroundPreset: "modern_tech"})
	if m.VisualSettings.Background.PresetName != "modern_tech" {
		t.Errorf("preset name = %q; want modern_tech", m.VisualSettings.Background.PresetName)
	}
	if m.VisualSettings.Background.PrimaryColor != "#1e293b" {
		t.Errorf("preset primary color = %q", m.VisualSettings.Background.PrimaryColor)
	}

	// Unknown presets record the substituted name, not the requested one.
	m = newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{BackgroundPreset: "unknown_preset"})
	if m.VisualSettings.Background.PresetName != rules.DefaultBackgroundPreset {
		t.Errorf("unknown preset recorded as %q; want %q", m.VisualSettings.Background.PresetName, rules.DefaultBackgroundPreset)
	}
	if m.ProjectMetadata.BackgroundPreset != rules.DefaultBackgroundPreset {
		t.Errorf("metadata preset = %q; want substituted default", m.ProjectMetadata.BackgroundPreset)
	}
}

func TestBuildCustomBackgroundDegrades(t *testing.T) {
	m := newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{
		BackgroundPreset: "custom",
		BackgroundCustom: "sunlit loft with plants",
	})
	if m.VisualSettings.Background.Type != "custom_description" {
		t.Errorf("custom background type = %q", m.VisualSettings.Background.Type)
	}
	if !m.VisualSettings.Background.UserProvided {
		t.Error("custom background not marked user provided")
	}

	// "custom" without a description silently degrades to keep_original.
	m = newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{BackgroundPreset: "custom"})
	if m.VisualSettings.Background.Type != "keep_original" {
		t.Errorf("degraded background type = %q; want keep_original", m.VisualSettings.Background.Type)
	}
	if m.ProjectMetadata.BackgroundPreset != "keep_original" {
		t.Errorf("metadata preset = %q; want keep_original", m.ProjectMetadata.BackgroundPreset)
	}
}

func TestBuildMusicConfig(t *testing.T) {
	m := newTestBuilder().Build(context.Background(), "desc", "ref.jpg", Options{BackgroundMusic: true})
	music := m.AudioProfile.Music
	if !music.Enabled {
		t.Fatal("music not enabled")
	}
	if music.VolumeDB != -40 {
		t.Errorf("music volume = %v dB; want -40", music.VolumeDB)
	}
	if music.VolumePercentage != 0.15 {
		t.Errorf("music volume = %v; want 0.15", music.VolumePercentage)
	}
	if music.Genre != "ambient_subtle" {
		t.Errorf("music genre = %q; want ambient_subtle", music.Genre)
	}
}
