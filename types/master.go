package types

import "time"

// ProjectMetadata records the request-level choices the master was built from.
type ProjectMetadata struct {
	Type                      string       `json:"type"`
	Version                   string       `json:"version"`
	TotalClips                int          `json:"total_clips"`
	ClipDurationSeconds       int          `json:"clip_duration_seconds"`
	TotalDurationSeconds      int          `json:"total_duration_seconds"`
	SpeakingSpeed             string       `json:"speaking_speed"`
	SpeedProfile              SpeedProfile `json:"speed_profile"`
	BackgroundMusicEnabled    bool         `json:"background_music_enabled"`
	BackgroundPreset          string       `json:"background_preset"`
	BackgroundCustom          string       `json:"background_custom,omitempty"`
	HasAdditionalInstructions bool         `json:"has_additional_instructions"`
	CreatedAt                 time.Time    `json:"created_at"`
	Generator                 string       `json:"generator"`
}

// ReferenceImage declares how the supplied face reference must be used.
type ReferenceImage struct {
	Path         string   `json:"path"`
	Usage        string   `json:"usage"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// AdditionalInstructions carries optional user styling requirements applied to all clips.
type AdditionalInstructions struct {
	Enabled         bool   `json:"enabled"`
	Instructions    string `json:"instructions,omitempty"`
	ApplyToAllClips bool   `json:"apply_to_all_clips"`
	Description     string `json:"description"`
}

// ContinuitySettings names the sections that must stay identical across clips.
type ContinuitySettings struct {
	NarrativeFlow       string   `json:"narrative_flow"`
	TransitionStyle     string   `json:"transition_style"`
	MaintainAcrossClips []string `json:"maintain_across_clips"`
}

// QualityRequirements is the declared acceptance bar for generated output.
type QualityRequirements struct {
	MinimumFaceSimilarity   float64 `json:"minimum_face_similarity"`
	MinimumVoiceSimilarity  float64 `json:"minimum_voice_similarity"`
	LipSyncAccuracy         string  `json:"lip_sync_accuracy"`
	TransitionSmoothness    string  `json:"transition_smoothness"`
	AudioVideoSync          string  `json:"audio_video_sync"`
	VoiceConsistencyCheck   string  `json:"voice_consistency_check"`
	RejectIfAnyRuleViolated bool    `json:"reject_if_any_rule_violated"`
}

// MasterDescriptor is the project-level document every clip descriptor is
// derived from. It is never mutated after construction.
type MasterDescriptor struct {
	ProjectMetadata        ProjectMetadata        `json:"project_metadata"`
	ReferenceImage         ReferenceImage         `json:"reference_image"`
	PersonIdentity         PersonProfile          `json:"person_identity"`
	AdditionalInstructions AdditionalInstructions `json:"additional_instructions"`
	FacePreservation       FacePreservation       `json:"face_preservation"`
	LipSyncConfig          LipSyncConfig          `json:"lip_sync_config"`
	VisualSettings         VisualSettings         `json:"visual_settings"`
	AudioProfile           AudioProfile           `json:"audio_profile"`
	TimingConfig           TimingConfig           `json:"timing_config"`
	TransitionRules        TransitionRules        `json:"transition_rules"`
	ContinuitySettings     ContinuitySettings     `json:"continuity_settings"`
	QualityRequirements    QualityRequirements    `json:"quality_requirements"`
}
