package clips

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"veoforge/rules"
	"veoforge/types"
)

// BuildClip composes the descriptor for one clip from the master and its
// dialogue. Every section copied from the master is an independent copy.
// Clips must be built in ascending order: previousEnd is the last sentence
// of the prior clip's dialogue, empty for the first clip.
func BuildClip(clipNumber int, m types.MasterDescriptor, dialogueText, previousEnd string) types.ClipDescriptor {
	duration := m.TimingConfig.DurationSeconds
	startTime := float64((clipNumber - 1) * duration)
	endTime := float64(clipNumber * duration)
	totalClips := m.ProjectMetadata.TotalClips
	isLast := clipNumber == totalClips

	fromPrevious := previousEnd
	if fromPrevious == "" {
		fromPrevious = "Opening segment"
	}

	continuityCheck := "verify_face_position_matches_previous"
	voiceCheck := "verify_voice_matches_previous"
	if clipNumber == 1 {
		continuityCheck = "N/A"
		voiceCheck = "establish_voice_reference"
	}

	wordCount := len(strings.Fields(dialogueText))

	return types.ClipDescriptor{
		ClipMetadata: types.ClipMetadata{
			ClipNumber:       clipNumber,
			StartTimeSeconds: startTime,
			EndTimeSeconds:   endTime,
			DurationSeconds:  duration,
			SequencePosition: fmt.Sprintf("%d/%d", clipNumber, totalClips),
		},
		PersonIdentity:      m.PersonIdentity.Clone(),
		FacePreservation:    m.FacePreservation.Clone(),
		LipSyncConfig:       m.LipSyncConfig,
		VisualSettings:      m.VisualSettings,
		AudioProfile:        m.AudioProfile.Clone(),
		TimingConfig:        m.TimingConfig,
		TransitionRules:     m.TransitionRules,
		InheritedFromMaster: true,
		MasterReference:     m.ProjectMetadata.CreatedAt.Format(time.RFC3339),
		Dialogue: types.DialogueBlock{
			Text:                     dialogueText,
			WordCount:                wordCount,
			EstimatedDurationSeconds: float64(wordCount) / m.TimingConfig.WordsPerSecond,
			Tone:                     m.PersonIdentity.Tone,
			SpeakingStyle:            m.PersonIdentity.SpeakingStyle,
			IsIntroduction:           clipNumber == 1,
		},
		Transition: types.TransitionCue{
			FromPrevious:         fromPrevious,
			ToNext:               transitionCue(dialogueText, isLast),
			ContinuityCheck:      continuityCheck,
			VoiceContinuityCheck: voiceCheck,
		},
		Prompt:    buildPrompt(m, dialogueText, clipNumber),
		Keyframes: keyframes(clipNumber, duration, isLast),
	}
}

// buildPrompt assembles the natural-language generation instruction for one
// clip. Pure template expansion over already-known values, no model call.
func buildPrompt(m types.MasterDescriptor, dialogue string, clipNumber int) string {
	person := m.PersonIdentity
	timing := m.TimingConfig
	totalClips := m.ProjectMetadata.TotalClips
	music := m.AudioProfile.Music

	requirements := rules.PromptRequirements(types.SpeedProfile{
		WordsPerSecond: timing.WordsPerSecond,
		TargetWords:    timing.TargetWordsPerClip,
	})

	musicSection := "BACKGROUND MUSIC: Disabled"
	if music.Enabled {
		musicSection = fmt.Sprintf("BACKGROUND MUSIC: %s at %g%%\nCRITICAL: Voice generated FIRST, music added AFTER as separate layer",
			music.Genre, music.VolumePercentage*100)
	}

	background := m.VisualSettings.Background.Description
	if background == "" {
		background = "Original from reference image"
	}

	lockTarget := "Clip 1 (LOCKED)"
	if clipNumber == 1 {
		lockTarget = "Clip 1 (establish reference)"
	}

	wordCount := len(strings.Fields(dialogue))
	estimated := float64(wordCount) / timing.WordsPerSecond

	var b strings.Builder
	fmt.Fprintf(&b, "SPEAKING PERSON VIDEO - CLIP %d/%d\n\n", clipNumber, totalClips)
	b.WriteString(requirements)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "PERSON: %s - %s\n", person.Name, person.Role)
	fmt.Fprintf(&b, "TONE: %s\n", titleCase(person.Tone))
	fmt.Fprintf(&b, "BACKGROUND: %s\n", background)
	b.WriteString(musicSection)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "DIALOGUE (MUST COMPLETE IN %.1f SECONDS):\n\n%q\n\n", timing.DialogueCompletionTarget, dialogue)
	b.WriteString("TIMING:\n")
	fmt.Fprintf(&b, "- Word Count: %d words\n", wordCount)
	fmt.Fprintf(&b, "- Speed: %g words/second\n", timing.WordsPerSecond)
	fmt.Fprintf(&b, "- Estimated Duration: %.1f seconds\n", estimated)
	fmt.Fprintf(&b, "- MUST complete by: %.1f seconds\n", timing.DialogueCompletionTarget)
	fmt.Fprintf(&b, "- Clip total: %.1f seconds\n\n", float64(timing.DurationSeconds))
	b.WriteString("CONSISTENCY LOCKS:\n")
	fmt.Fprintf(&b, "- Face: 99%% similarity to %s\n", lockTarget)
	fmt.Fprintf(&b, "- Voice: 99%% similarity to %s\n", lockTarget)
	b.WriteString("- Background: Pixel-perfect match across all clips\n")
	b.WriteString("- Lighting: Identical across all clips\n\n")
	b.WriteString("NATURAL GESTURES: 1-3 subtle gestures per clip, professional and organic\n\n")
	fmt.Fprintf(&b, "GENERATE: Follow all rules strictly, complete dialogue in %.1fs", timing.DialogueCompletionTarget)
	return b.String()
}

// keyframes returns the fixed three-event timeline for a clip.
func keyframes(clipNumber, duration int, isLast bool) []types.KeyframeEvent {
	fadeIn := "none"
	voiceCheck := "verify_voice_reference_match"
	if clipNumber == 1 {
		fadeIn = "0.3s"
		voiceCheck = "establish_voice_reference"
	}

	fadeOut := "none"
	nextSync := "position_match_required"
	if isLast {
		fadeOut = "0.4s"
		nextSync = "final_frame"
	}

	return []types.KeyframeEvent{
		{
			Time:   0,
			Action: types.KeyframeSegmentStart,
			Properties: map[string]string{
				"fade_in":     fadeIn,
				"face_check":  "verify_reference_match",
				"voice_check": voiceCheck,
				"expression":  "neutral_to_natural",
			},
		},
		{
			Time:   7.9,
			Action: types.KeyframeDialogueCompletion,
			Properties: map[string]string{
				"description":        "Dialogue must complete by this point",
				"voice_level":        "natural_completion",
				"prepare_transition": "true",
			},
		},
		{
			Time:   float64(duration) - 0.1,
			Action: types.KeyframeSegmentEnd,
			Properties: map[string]string{
				"fade_out":          fadeOut,
				"position":          "exact_hold_for_cut",
				"next_segment_sync": nextSync,
			},
		},
	}
}

// transitionCue describes what the next clip should pick up from.
func transitionCue(dialogue string, isLast bool) string {
	if isLast {
		return "Final segment - natural close"
	}
	return "Continue from: " + LastSentence(dialogue)
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// LastSentence returns the final sentence fragment of the text, or the whole
// trimmed text when no terminal punctuation delimits one.
func LastSentence(text string) string {
	parts := sentenceSplit.Split(strings.TrimSpace(text), -1)
	last := ""
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			last = trimmed
		}
	}
	if last == "" {
		return strings.TrimSpace(text)
	}
	return last
}
