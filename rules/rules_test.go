package rules

import (
	"strings"
	"testing"
)

func TestSpeedProfilesFitDialogueDeadline(t *testing.T) {
	c := Default()
	for _, key := range []string{"1x", "1.5x", "2x"} {
		sp, applied := c.Resolve(key)
		if applied != key {
			t.Errorf("Resolve(%q) applied %q", key, applied)
		}
		if d := float64(sp.TargetWords) / sp.WordsPerSecond; d > 7.9 {
			t.Errorf("speed %q: target words take %.2fs, exceeds 7.9s deadline", key, d)
		}
		if sp.MinWords > sp.TargetWords || sp.TargetWords > sp.MaxWords {
			t.Errorf("speed %q: word band %d <= %d <= %d violated", key, sp.MinWords, sp.TargetWords, sp.MaxWords)
		}
	}
}

func TestResolveUnknownSpeedNormalizes(t *testing.T) {
	c := Default()
	want, _ := c.Resolve("1x")

	for _, key := range []string{"", "3x", "slow", "1X"} {
		got, applied := c.Resolve(key)
		if applied != DefaultSpeedKey {
			t.Errorf("Resolve(%q) applied %q; want %q", key, applied, DefaultSpeedKey)
		}
		if got != want {
			t.Errorf("Resolve(%q) = %+v; want 1x profile", key, got)
		}
	}
}

func TestBackgroundPresetNormalizes(t *testing.T) {
	c := Default()

	p, applied := c.BackgroundPreset("warm_office")
	if applied != "warm_office" || p.PrimaryColor != "#78350f" {
		t.Errorf("BackgroundPreset(warm_office) = %+v (%s)", p, applied)
	}

	p, applied = c.BackgroundPreset("unknown_preset")
	if applied != DefaultBackgroundPreset {
		t.Errorf("unknown preset applied %q; want %q", applied, DefaultBackgroundPreset)
	}
	if p.Description != "Professional blue gradient" {
		t.Errorf("unknown preset resolved to %+v", p)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	c := Default()

	s1 := c.Snapshot()
	s1.FacePreservation.LockedFeatures[0] = "mutated"
	s1.AudioProfile.Voice.LockedVoiceFeatures[0] = "mutated"

	s2 := c.Snapshot()
	if s2.FacePreservation.LockedFeatures[0] == "mutated" {
		t.Error("mutating one snapshot's face lock affected the catalog")
	}
	if s2.AudioProfile.Voice.LockedVoiceFeatures[0] == "mutated" {
		t.Error("mutating one snapshot's voice lock affected the catalog")
	}
}

func TestPromptRequirementsInterpolatesSpeed(t *testing.T) {
	c := Default()
	sp, _ := c.Resolve("1.5x")

	text := PromptRequirements(sp)
	if !strings.Contains(text, "4.5 words/second") {
		t.Errorf("requirements text missing pace: %s", text)
	}
	if !strings.Contains(text, "~35 words") {
		t.Errorf("requirements text missing target words: %s", text)
	}
}

func TestSpeedKeysSorted(t *testing.T) {
	keys := Default().SpeedKeys()
	want := []string{"1.5x", "1x", "2x"}
	if len(keys) != len(want) {
		t.Fatalf("SpeedKeys() = %v; want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("SpeedKeys() = %v; want %v", keys, want)
		}
	}
}
