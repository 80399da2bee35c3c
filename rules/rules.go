// Package rules holds the immutable generation rule catalog. The catalog is
// constructed once at process start; consumers only ever receive resolved
// values or deep-copied snapshots, never a mutable reference into it.
package rules

import (
	"fmt"
	"sort"

	"veoforge/config"
	"veoforge/types"
)

// Default keys applied when a request carries an unknown value.
const (
	DefaultSpeedKey         = "1x"
	DefaultBackgroundPreset = "professional_gradient"
)

// Catalog is the immutable rule set driving descriptor construction.
type Catalog struct {
	speeds      map[string]types.SpeedProfile
	presets     map[string]types.BackgroundPreset
	face        types.FacePreservation
	lipSync     types.LipSyncConfig
	visual      types.VisualSettings
	audio       types.AudioProfile
	timing      types.TimingConfig
	transitions types.TransitionRules
}

// Sections is an independent, deep-copied set of catalog sections, safe to
// embed into a master descriptor without risk of cross-mutation.
type Sections struct {
	FacePreservation types.FacePreservation
	LipSyncConfig    types.LipSyncConfig
	VisualSettings   types.VisualSettings
	AudioProfile     types.AudioProfile
	TimingConfig     types.TimingConfig
	TransitionRules  types.TransitionRules
}

// Default constructs the catalog. Call it once and share the result.
func Default() *Catalog {
	return &Catalog{
		// Target words must finish inside the 7.9s dialogue deadline at
		// each speed's words-per-second rate.
		speeds: map[string]types.SpeedProfile{
			"1x": {
				WordsPerSecond: 3.0,
				TargetWords:    23,
				MinWords:       20,
				MaxWords:       28,
				Label:          "Normal",
				Description:    "Natural conversational pace",
			},
			"1.5x": {
				WordsPerSecond: 4.5,
				TargetWords:    35,
				MinWords:       31,
				MaxWords:       40,
				Label:          "Energetic",
				Description:    "Lively and engaging pace",
			},
			"2x": {
				WordsPerSecond: 5.4,
				TargetWords:    42,
				MinWords:       38,
				MaxWords:       48,
				Label:          "Fast",
				Description:    "Quick and dynamic pace",
			},
		},
		presets: map[string]types.BackgroundPreset{
			"professional_gradient": {
				Type:           "gradient",
				PrimaryColor:   "#1a365d",
				SecondaryColor: "#2d5a8f",
				Description:    "Professional blue gradient",
			},
			"warm_office": {
				Type:           "gradient",
				PrimaryColor:   "#78350f",
				SecondaryColor: "#92400e",
				Description:    "Warm brown office ambiance",
			},
			"modern_tech": {
				Type:           "gradient",
				PrimaryColor:   "#1e293b",
				SecondaryColor: "#334155",
				Description:    "Modern tech gray",
			},
			"creative_purple": {
				Type:           "gradient",
				PrimaryColor:   "#4c1d95",
				SecondaryColor: "#6d28d9",
				Description:    "Creative purple gradient",
			},
		},
		face: types.FacePreservation{
			Mode:                 "ABSOLUTE_LOCK",
			ConsistencyThreshold: config.FaceSimilarityThreshold,
			ValidationMethod:     "pixel_level_facial_recognition",
			LockedFeatures: []string{
				"facial_structure",
				"eye_shape",
				"eye_color",
				"eye_spacing",
				"nose_geometry",
				"mouth_shape",
				"lip_fullness",
				"skin_tone",
				"age_appearance",
				"facial_hair",
				"eyebrow_shape",
				"distinctive_marks",
			},
			ForbiddenModifications: []string{
				"beautification_filters",
				"skin_smoothing",
				"age_modification",
				"feature_enhancement",
				"skin_tone_changes",
			},
			Enforcement: "auto_reject_if_below_97_percent",
		},
		lipSync: types.LipSyncConfig{
			Method:         "phoneme_accurate",
			SyncPrecision:  "frame_perfect",
			MaxDeviationMs: 16.67,
			PhonemeMapping: "detailed_IPA_with_coarticulation",
			MouthClosure:   "automatic_when_silent",
			BreathingSync:  "natural_pauses_synchronized",
		},
		visual: types.VisualSettings{
			Camera: types.CameraSettings{
				ShotType: "medium_close_up",
				Angle:    "eye_level",
				Movement: "static_locked",
				Framing:  "professional_portrait",
			},
			Lighting: types.LightingSettings{
				Setup:       "three_point_studio",
				KeyLight:    "soft_frontal_45deg",
				FillLight:   "opposite_side_subtle",
				BackLight:   "separation_from_background",
				Consistency: "IDENTICAL_across_all_clips",
			},
			Background: types.BackgroundConfig{
				Type:        "keep_original",
				Consistency: "PIXEL_PERFECT_match_across_all_clips",
			},
			TechnicalSpecs: types.TechnicalSpecs{
				Resolution:  "1920x1080",
				AspectRatio: "16:9",
				FPS:         60,
				ColorSpace:  "sRGB",
			},
		},
		audio: types.AudioProfile{
			Voice: types.VoiceConsistency{
				Mode:                 "ABSOLUTE_VOICE_LOCK",
				ConsistencyThreshold: config.VoiceSimilarityThreshold,
				ValidationMethod:     "spectral_voice_fingerprint",
				LockedVoiceFeatures: []string{
					"pitch_range",
					"vocal_timbre",
					"speech_rhythm",
					"accent_dialect",
					"pronunciation_style",
					"voice_texture",
					"resonance_frequencies",
					"breathiness_level",
					"vocal_register",
					"intonation_patterns",
				},
				ForbiddenModifications: []string{
					"voice_change",
					"pitch_shifting",
					"timbre_modification",
					"accent_changes",
					"speed_modification_beyond_selected",
				},
				Enforcement: "auto_reject_if_below_97_percent",
			},
			Quality: types.AudioQuality{
				SampleRate:   "48kHz",
				BitDepth:     "24-bit",
				Channels:     "stereo",
				NoiseFloor:   "-60dB",
				DynamicRange: "professional_broadcast",
			},
			Music: types.MusicConfig{
				Enabled:          false,
				Type:             "none",
				VolumeDB:         -100,
				VolumePercentage: 0,
				Consistency:      "IDENTICAL_ACROSS_ALL_CLIPS",
			},
		},
		timing: types.TimingConfig{
			DurationSeconds:          config.ClipDurationSeconds,
			DialogueCompletionTarget: config.DialogueDeadlineSeconds,
			BufferSeconds:            config.ClipBufferSeconds,
			WordsPerSecond:           3.0,
			TargetWordsPerClip:       23,
			MinWordsPerClip:          20,
			MaxWordsPerClip:          28,
		},
		transitions: types.TransitionRules{
			ClipToClip:           "seamless_cut",
			FacePosition:         "EXACT_MATCH_required",
			VoiceContinuity:      "EXACT_MATCH_required",
			VisualContinuity:     "EXACT_MATCH_required",
			BackgroundContinuity: "PIXEL_PERFECT_required",
			LightingContinuity:   "IDENTICAL_required",
			CutTiming:            "on_natural_pause",
			NoFadesBetweenClips:  true,
		},
	}
}

// Resolve returns the speed profile for the given key. Unknown or empty keys
// normalize to DefaultSpeedKey; the returned key is the one actually applied.
func (c *Catalog) Resolve(speedKey string) (types.SpeedProfile, string) {
	if sp, ok := c.speeds[speedKey]; ok {
		return sp, speedKey
	}
	return c.speeds[DefaultSpeedKey], DefaultSpeedKey
}

// SpeedKeys returns the recognized speed keys in sorted order.
func (c *Catalog) SpeedKeys() []string {
	keys := make([]string, 0, len(c.speeds))
	for k := range c.speeds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BackgroundPreset looks up a named background preset. Unknown names
// normalize to DefaultBackgroundPreset; the returned name is the one that
// was actually applied.
func (c *Catalog) BackgroundPreset(name string) (types.BackgroundPreset, string) {
	if p, ok := c.presets[name]; ok {
		return p, name
	}
	return c.presets[DefaultBackgroundPreset], DefaultBackgroundPreset
}

// Snapshot returns an independent copy of every catalog section.
func (c *Catalog) Snapshot() Sections {
	return Sections{
		FacePreservation: c.face.Clone(),
		LipSyncConfig:    c.lipSync,
		VisualSettings:   c.visual,
		AudioProfile:     c.audio.Clone(),
		TimingConfig:     c.timing,
		TransitionRules:  c.transitions,
	}
}

// PromptRequirements renders the generation requirements text interpolated
// with the chosen speed profile. It is prepended to every clip prompt.
func PromptRequirements(sp types.SpeedProfile) string {
	return fmt.Sprintf(`CRITICAL GENERATION REQUIREMENTS - READ CAREFULLY

FACE & VOICE CONSISTENCY:
- Face similarity: 99%% threshold (ABSOLUTE REQUIREMENT)
- Voice similarity: 99%% threshold (ABSOLUTE REQUIREMENT)
- Any clip below 97%% similarity: AUTO-REJECT
- Validation: Pixel-level facial recognition + spectral voice analysis

TIMING REQUIREMENTS:
- Clip duration: EXACTLY 8 seconds
- Dialogue MUST complete within 7.9 seconds
- Speaking pace: %g words/second
- Target word count: ~%d words
- Buffer: 0.1 seconds before clip end

VOICE PROCESSING ORDER (CRITICAL):
1. GENERATE VOICE FIRST - completely independently
2. LOCK VOICE at 99%% similarity to first clip
3. ADD MUSIC AFTER - as separate layer (if enabled)
4. Voice and music are SEPARATE tracks
5. Music CANNOT affect voice characteristics

GENERATION REQUIREMENTS:
- All clips MUST use IDENTICAL visual settings
- Background MUST be pixel-perfect match across clips
- Lighting MUST be identical across clips
- Camera position MUST be locked (no movement)
- Face position MUST match exactly at clip boundaries
- Voice characteristics MUST be locked from Clip 1`,
		sp.WordsPerSecond, sp.TargetWords)
}
