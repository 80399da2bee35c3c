// Package master composes the project-level descriptor from the rule
// catalog, the extracted person profile and the request's choices. All
// internal resolution failures degrade to documented defaults; the only
// errors surfaced to callers come from collaborators.
package master

import (
	"context"
	"log"
	"time"

	"veoforge/config"
	"veoforge/profile"
	"veoforge/rules"
	"veoforge/types"
)

// GeneratorVersion is stamped into every produced master descriptor.
const GeneratorVersion = "veoforge_v1.0"

// Options are the user-tunable knobs for one generation request. Zero values
// select documented defaults.
type Options struct {
	ClipCount              int
	Speed                  string
	BackgroundMusic        bool
	UserTone               string
	BackgroundPreset       string
	BackgroundCustom       string
	AdditionalInstructions string
}

// Builder constructs master descriptors.
type Builder struct {
	catalog   *rules.Catalog
	extractor *profile.Extractor
}

// NewBuilder wires a builder to the shared rule catalog and profile extractor.
func NewBuilder(catalog *rules.Catalog, extractor *profile.Extractor) *Builder {
	return &Builder{catalog: catalog, extractor: extractor}
}

// Build assembles the complete master descriptor for one request.
func (b *Builder) Build(ctx context.Context, description, referenceImagePath string, opts Options) types.MasterDescriptor {
	clipCount := opts.ClipCount
	if clipCount <= 0 {
		clipCount = config.DefaultClipCount
	}
	backgroundPreset := opts.BackgroundPreset
	if backgroundPreset == "" {
		backgroundPreset = "keep_original"
	}

	sp, speed := b.catalog.Resolve(opts.Speed)

	person, outcome := b.extractor.Extract(ctx, description)
	if outcome.UsedFallback {
		log.Printf("⚠️  Using fallback person details (%s)", outcome.Reason)
	}
	if opts.UserTone != "" {
		if validTone(opts.UserTone) {
			person.Tone = opts.UserTone
		} else {
			log.Printf("⚠️  Unknown voice tone %q, keeping %q", opts.UserTone, person.Tone)
		}
	}

	sections := b.catalog.Snapshot()

	background, backgroundPreset := b.resolveBackground(backgroundPreset, opts.BackgroundCustom, referenceImagePath)
	music := musicConfig(opts.BackgroundMusic)

	visual := sections.VisualSettings
	visual.Background = background

	audio := sections.AudioProfile
	audio.Music = music

	timing := sections.TimingConfig
	timing.SelectedSpeed = speed
	timing.WordsPerSecond = sp.WordsPerSecond
	timing.TargetWordsPerClip = sp.TargetWords
	timing.MinWordsPerClip = sp.MinWords
	timing.MaxWordsPerClip = sp.MaxWords
	timing.SpeedLabel = sp.Label
	timing.SpeedDescription = sp.Description

	return types.MasterDescriptor{
		ProjectMetadata: types.ProjectMetadata{
			Type:                      "speaking_person_video",
			Version:                   "VEO_3.1_compatible",
			TotalClips:                clipCount,
			ClipDurationSeconds:       config.ClipDurationSeconds,
			TotalDurationSeconds:      clipCount * config.ClipDurationSeconds,
			SpeakingSpeed:             speed,
			SpeedProfile:              sp,
			BackgroundMusicEnabled:    opts.BackgroundMusic,
			BackgroundPreset:          backgroundPreset,
			BackgroundCustom:          opts.BackgroundCustom,
			HasAdditionalInstructions: opts.AdditionalInstructions != "",
			CreatedAt:                 time.Now().UTC(),
			Generator:                 GeneratorVersion,
		},
		ReferenceImage: types.ReferenceImage{
			Path:        referenceImagePath,
			Usage:       "STRICT_FACE_REFERENCE",
			Description: "This face MUST be preserved exactly across all clips",
			Requirements: []string{
				"Frontal view (±15° max rotation)",
				"Clear, well-lit face",
				"Neutral or friendly expression",
				"High resolution (1024x1024+ recommended)",
			},
		},
		PersonIdentity: person,
		AdditionalInstructions: types.AdditionalInstructions{
			Enabled:         opts.AdditionalInstructions != "",
			Instructions:    opts.AdditionalInstructions,
			ApplyToAllClips: true,
			Description:     "User-provided specific requirements (clothing, styling, modifications, etc.)",
		},
		FacePreservation: sections.FacePreservation,
		LipSyncConfig:    sections.LipSyncConfig,
		VisualSettings:   visual,
		AudioProfile:     audio,
		TimingConfig:     timing,
		TransitionRules:  sections.TransitionRules,
		ContinuitySettings: types.ContinuitySettings{
			NarrativeFlow:   "connected_story",
			TransitionStyle: "seamless",
			MaintainAcrossClips: []string{
				"person_identity",
				"face_appearance",
				"voice_characteristics",
				"visual_settings",
				"audio_profile",
				"background",
				"lighting",
				"camera_setup",
				"background_music_settings",
			},
		},
		QualityRequirements: types.QualityRequirements{
			MinimumFaceSimilarity:   config.FaceSimilarityThreshold,
			MinimumVoiceSimilarity:  config.VoiceSimilarityThreshold,
			LipSyncAccuracy:         "frame_perfect",
			TransitionSmoothness:    "invisible_cuts",
			AudioVideoSync:          "perfect",
			VoiceConsistencyCheck:   "REQUIRED",
			RejectIfAnyRuleViolated: true,
		},
	}
}

// resolveBackground maps a requested preset to a concrete background
// configuration. "custom" without a description degrades to keep_original;
// unknown preset names normalize to the catalog default. The returned name
// is the one actually applied.
func (b *Builder) resolveBackground(preset, custom, referenceImagePath string) (types.BackgroundConfig, string) {
	switch preset {
	case "keep_original":
		return keepOriginalBackground(referenceImagePath), preset
	case "custom":
		if custom == "" {
			log.Printf("⚠️  No custom background description provided, keeping original")
			return keepOriginalBackground(referenceImagePath), "keep_original"
		}
		return types.BackgroundConfig{
			Type:         "custom_description",
			Description:  custom,
			Consistency:  "IDENTICAL_ACROSS_ALL_CLIPS",
			UserProvided: true,
		}, preset
	default:
		p, applied := b.catalog.BackgroundPreset(preset)
		if applied != preset {
			log.Printf("⚠️  Unknown background preset %q, using %q", preset, applied)
		}
		return types.BackgroundConfig{
			Type:           p.Type,
			PresetName:     applied,
			PrimaryColor:   p.PrimaryColor,
			SecondaryColor: p.SecondaryColor,
			Description:    p.Description,
			Consistency:    "IDENTICAL_ACROSS_ALL_CLIPS",
		}, applied
	}
}

// validTone reports whether the tone is one of the accepted speaking tones.
func validTone(tone string) bool {
	for _, t := range types.Tones {
		if t == tone {
			return true
		}
	}
	return false
}

func keepOriginalBackground(referenceImagePath string) types.BackgroundConfig {
	return types.BackgroundConfig{
		Type:        "keep_original",
		Source:      "reference_image",
		Description: "Use exact background from reference image - no modification",
		Consistency: "IDENTICAL_ACROSS_ALL_CLIPS",
		ExtractFrom: referenceImagePath,
	}
}

// musicConfig returns the fixed music layer: a subtle ambient preset at
// -40dB / 15% volume when enabled, silence otherwise. No other music
// parameters are user-configurable.
func musicConfig(enabled bool) types.MusicConfig {
	if enabled {
		return types.MusicConfig{
			Enabled:          true,
			Type:             "ambient_subtle",
			Genre:            "ambient_subtle",
			VolumeDB:         -40,
			VolumePercentage: 0.15,
			Description:      "Subtle ambient background music at 15% volume (-40dB)",
			Consistency:      "IDENTICAL_ACROSS_ALL_CLIPS",
		}
	}
	return types.MusicConfig{
		Enabled:          false,
		Type:             "none",
		VolumeDB:         -100,
		VolumePercentage: 0,
		Description:      "No background music",
		Consistency:      "IDENTICAL_ACROSS_ALL_CLIPS",
	}
}
