package types

// ClipMetadata positions one clip on the project timeline.
type ClipMetadata struct {
	ClipNumber       int     `json:"clip_number"`
	StartTimeSeconds float64 `json:"start_time_seconds"`
	EndTimeSeconds   float64 `json:"end_time_seconds"`
	DurationSeconds  int     `json:"duration_seconds"`
	SequencePosition string  `json:"sequence_position"`
}

// DialogueSegment is one clip's worth of spoken text with derived timing.
type DialogueSegment struct {
	Text                     string  `json:"text"`
	WordCount                int     `json:"word_count"`
	EstimatedDurationSeconds float64 `json:"estimated_duration_seconds"`
}

// DialogueBlock is a clip's dialogue with the delivery attributes copied
// from the person identity.
type DialogueBlock struct {
	Text                     string  `json:"text"`
	WordCount                int     `json:"word_count"`
	EstimatedDurationSeconds float64 `json:"estimated_duration_seconds"`
	Tone                     string  `json:"tone"`
	SpeakingStyle            string  `json:"speaking_style"`
	IsIntroduction           bool    `json:"is_introduction"`
}

// TransitionCue links a clip to its neighbours for seamless cuts.
type TransitionCue struct {
	FromPrevious         string `json:"from_previous_clip"`
	ToNext               string `json:"to_next_clip"`
	ContinuityCheck      string `json:"continuity_check"`
	VoiceContinuityCheck string `json:"voice_continuity_check"`
}

// KeyframeAction identifies a point of interest within a clip's timeline.
type KeyframeAction string

const (
	KeyframeSegmentStart       KeyframeAction = "segment_start"
	KeyframeDialogueCompletion KeyframeAction = "dialogue_completion"
	KeyframeSegmentEnd         KeyframeAction = "segment_end"
)

// KeyframeEvent is a timestamped marker carrying expected state at that moment.
type KeyframeEvent struct {
	Time       float64           `json:"time"`
	Action     KeyframeAction    `json:"action"`
	Properties map[string]string `json:"properties"`
}

// ClipDescriptor is the per-segment generation document. Every section copied
// from the master is independently owned; mutating one clip never affects the
// master or a sibling clip.
type ClipDescriptor struct {
	ClipMetadata        ClipMetadata     `json:"clip_metadata"`
	PersonIdentity      PersonProfile    `json:"person_identity"`
	FacePreservation    FacePreservation `json:"face_preservation"`
	LipSyncConfig       LipSyncConfig    `json:"lip_sync_config"`
	VisualSettings      VisualSettings   `json:"visual_settings"`
	AudioProfile        AudioProfile     `json:"audio_profile"`
	TimingConfig        TimingConfig     `json:"timing_config"`
	TransitionRules     TransitionRules  `json:"transition_rules"`
	InheritedFromMaster bool             `json:"inherited_from_master"`
	MasterReference     string           `json:"master_reference"`
	Dialogue            DialogueBlock    `json:"dialogue"`
	Transition          TransitionCue    `json:"transition"`
	Prompt              string           `json:"veo_prompt"`
	Keyframes           []KeyframeEvent  `json:"keyframes"`
}
