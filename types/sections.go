package types

// SpeedProfile maps a relative playback speed to a speaking pace and an
// acceptable per-clip word-count band.
type SpeedProfile struct {
	WordsPerSecond float64 `json:"words_per_second"`
	TargetWords    int     `json:"target_words"`
	MinWords       int     `json:"min_words"`
	MaxWords       int     `json:"max_words"`
	Label          string  `json:"speed_label"`
	Description    string  `json:"speed_description"`
}

// FacePreservation declares the face-lock requirements applied to every clip.
type FacePreservation struct {
	Mode                   string   `json:"mode"`
	ConsistencyThreshold   float64  `json:"consistency_threshold"`
	ValidationMethod       string   `json:"validation_method"`
	LockedFeatures         []string `json:"locked_features"`
	ForbiddenModifications []string `json:"forbidden_modifications"`
	Enforcement            string   `json:"enforcement"`
}

// Clone returns an independent copy whose slices share no backing storage.
func (f FacePreservation) Clone() FacePreservation {
	cp := f
	cp.LockedFeatures = append([]string(nil), f.LockedFeatures...)
	cp.ForbiddenModifications = append([]string(nil), f.ForbiddenModifications...)
	return cp
}

// LipSyncConfig declares how dialogue audio is aligned with mouth movement.
type LipSyncConfig struct {
	Method         string  `json:"method"`
	SyncPrecision  string  `json:"sync_precision"`
	MaxDeviationMs float64 `json:"max_deviation_ms"`
	PhonemeMapping string  `json:"phoneme_mapping"`
	MouthClosure   string  `json:"mouth_closure"`
	BreathingSync  string  `json:"breathing_sync"`
}

// CameraSettings is the locked camera setup shared by all clips.
type CameraSettings struct {
	ShotType string `json:"shot_type"`
	Angle    string `json:"angle"`
	Movement string `json:"movement"`
	Framing  string `json:"framing"`
}

// LightingSettings is the locked lighting setup shared by all clips.
type LightingSettings struct {
	Setup       string `json:"setup"`
	KeyLight    string `json:"key_light"`
	FillLight   string `json:"fill_light"`
	BackLight   string `json:"back_light"`
	Consistency string `json:"consistency"`
}

// TechnicalSpecs carries the fixed output format of every clip.
type TechnicalSpecs struct {
	Resolution  string `json:"resolution"`
	AspectRatio string `json:"aspect_ratio"`
	FPS         int    `json:"fps"`
	ColorSpace  string `json:"color_space"`
}

// BackgroundPreset is a named background entry in the rule catalog.
type BackgroundPreset struct {
	Type           string `json:"type"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Description    string `json:"description"`
}

// BackgroundConfig is the background resolved for one generation request.
// Exactly one of the source fields is populated depending on Type.
type BackgroundConfig struct {
	Type           string `json:"type"`
	Source         string `json:"source,omitempty"`
	PresetName     string `json:"preset_name,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	Description    string `json:"description"`
	Consistency    string `json:"consistency"`
	ExtractFrom    string `json:"extract_from,omitempty"`
	UserProvided   bool   `json:"user_provided,omitempty"`
}

// VisualSettings groups the camera, lighting, background and format rules.
type VisualSettings struct {
	Camera         CameraSettings   `json:"camera"`
	Lighting       LightingSettings `json:"lighting"`
	Background     BackgroundConfig `json:"background"`
	TechnicalSpecs TechnicalSpecs   `json:"technical_specs"`
}

// VoiceConsistency declares the voice-lock requirements applied to every clip.
type VoiceConsistency struct {
	Mode                   string   `json:"mode"`
	ConsistencyThreshold   float64  `json:"consistency_threshold"`
	ValidationMethod       string   `json:"validation_method"`
	LockedVoiceFeatures    []string `json:"locked_voice_features"`
	ForbiddenModifications []string `json:"forbidden_modifications"`
	Enforcement            string   `json:"enforcement"`
}

// Clone returns an independent copy whose slices share no backing storage.
func (v VoiceConsistency) Clone() VoiceConsistency {
	cp := v
	cp.LockedVoiceFeatures = append([]string(nil), v.LockedVoiceFeatures...)
	cp.ForbiddenModifications = append([]string(nil), v.ForbiddenModifications...)
	return cp
}

// AudioQuality carries the fixed audio format of every clip.
type AudioQuality struct {
	SampleRate   string `json:"sample_rate"`
	BitDepth     string `json:"bit_depth"`
	Channels     string `json:"channels"`
	NoiseFloor   string `json:"noise_floor"`
	DynamicRange string `json:"dynamic_range"`
}

// MusicConfig describes the background music layer for a generation request.
type MusicConfig struct {
	Enabled          bool    `json:"enabled"`
	Type             string  `json:"type"`
	Genre            string  `json:"genre,omitempty"`
	VolumeDB         float64 `json:"volume_db"`
	VolumePercentage float64 `json:"volume_percentage"`
	FadeInDuration   float64 `json:"fade_in_duration"`
	FadeOutDuration  float64 `json:"fade_out_duration"`
	Description      string  `json:"description,omitempty"`
	Consistency      string  `json:"consistency"`
}

// AudioProfile groups the voice lock, audio format and music configuration.
type AudioProfile struct {
	Voice   VoiceConsistency `json:"voice_consistency"`
	Quality AudioQuality     `json:"audio_quality"`
	Music   MusicConfig      `json:"background_music"`
}

// Clone returns an independent copy whose slices share no backing storage.
func (a AudioProfile) Clone() AudioProfile {
	cp := a
	cp.Voice = a.Voice.Clone()
	return cp
}

// TimingConfig is the per-project timing arithmetic resolved from a speed profile.
type TimingConfig struct {
	DurationSeconds          int     `json:"duration_seconds"`
	DialogueCompletionTarget float64 `json:"dialogue_completion_target"`
	BufferSeconds            float64 `json:"buffer_seconds"`
	SelectedSpeed            string  `json:"selected_speed"`
	WordsPerSecond           float64 `json:"words_per_second"`
	TargetWordsPerClip       int     `json:"target_words_per_clip"`
	MinWordsPerClip          int     `json:"min_words_per_clip"`
	MaxWordsPerClip          int     `json:"max_words_per_clip"`
	SpeedLabel               string  `json:"speed_label"`
	SpeedDescription         string  `json:"speed_description"`
}

// TransitionRules declares the continuity requirements at clip boundaries.
type TransitionRules struct {
	ClipToClip           string `json:"clip_to_clip"`
	FacePosition         string `json:"face_position"`
	VoiceContinuity      string `json:"voice_continuity"`
	VisualContinuity     string `json:"visual_continuity"`
	BackgroundContinuity string `json:"background_continuity"`
	LightingContinuity   string `json:"lighting_continuity"`
	CutTiming            string `json:"cut_timing"`
	NoFadesBetweenClips  bool   `json:"no_fades_between_clips"`
}
