// Package clips produces the per-clip descriptors: word-budgeted dialogue
// segments and the composed clip documents derived from a master descriptor.
package clips

import (
	"context"
	"fmt"
	"log"
	"strings"

	"veoforge/config"
	"veoforge/llm"
	"veoforge/types"
)

// Segmenter requests structured dialogue from the language model and
// validates it against the timing word-count band. Every failure mode has a
// deterministic substitute; Segment always returns exactly clipCount entries.
type Segmenter struct {
	provider llm.CompletionProvider
}

// NewSegmenter creates a segmenter backed by the given completion provider.
// A nil provider is allowed; segmentation then takes the fallback path.
func NewSegmenter(provider llm.CompletionProvider) *Segmenter {
	return &Segmenter{provider: provider}
}

const dialoguePreambleTemplate = "You create structured dialogue hitting EXACT word counts. First segment MUST be introduction with person's name. Each segment must be %d words (±%d words). Return ONLY valid JSON."

const dialoguePromptTemplate = `You are an expert dialogue creator for video generation.

PERSON INFORMATION:
- Name: %[1]s
- Role: %[2]s

CONTENT TO COVER:
%[3]s

YOUR TASK:
Create %[4]d dialogue segments for video clips. Each segment will be spoken in an 8-second clip.

CRITICAL STRUCTURE RULES:

CLIP 1 (INTRODUCTION - MANDATORY FORMAT):
- MUST start with: "Hello, I'm %[1]s" or "Hi, I'm %[1]s"
- Follow with brief role/title introduction
- Keep it warm and welcoming
- Target: %[5]d words
- Complete introduction only - NO content details yet

CLIPS 2-%[4]d (CONTENT):
- Cover the main content from the description above
- Build logically: overview -> details -> conclusion/call-to-action
- Each segment: complete, substantial thoughts
- Flow naturally between segments

TIMING REQUIREMENTS (CRITICAL):
- Speed: %[6]s (%[7]g words/second)
- Each dialogue MUST complete within 7.9 seconds
- Target words per clip: %[5]d words
- Acceptable range: %[8]d-%[9]d words
- At %[7]g words/sec, %[5]d words = ~%.1[10]f seconds
- YOU MUST hit the target word count for perfect timing

DIALOGUE QUALITY:
- Natural, conversational, professional tone
- Complete sentences and thoughts
- NO filler words ("um", "uh", "like", "you know")
- Smooth transitions between clips
- First-person perspective ("I", "my", "we")
- Engaging and clear

RETURN ONLY THIS JSON (no explanations):
{
  "segment_1": "Introduction dialogue with exactly %[5]d words...",
  "segment_2": "Content dialogue with exactly %[5]d words...",
  "segment_3": "More content with exactly %[5]d words..."
}

Use "segment_4", "segment_5", etc. for additional clips.

CRITICAL:
- Return ONLY valid JSON
- No markdown formatting
- No extra text
- Each segment must be %[8]d-%[9]d words
- Segment 1 MUST be introduction with name`

// Segment returns exactly clipCount dialogue segments for the description,
// each annotated with its word count and estimated spoken duration.
func (s *Segmenter) Segment(ctx context.Context, personName, personRole, description string, clipCount int, sp types.SpeedProfile) []types.DialogueSegment {
	texts := s.segmentTexts(ctx, personName, personRole, description, clipCount, sp)

	segments := make([]types.DialogueSegment, len(texts))
	for i, text := range texts {
		segments[i] = newSegment(text, sp.WordsPerSecond)
	}
	return segments
}

// segmentTexts runs the model call and per-segment validation, substituting
// deterministic fallbacks for anything missing or for a failed call.
func (s *Segmenter) segmentTexts(ctx context.Context, personName, personRole, description string, clipCount int, sp types.SpeedProfile) []string {
	raw, err := s.request(ctx, personName, personRole, description, clipCount, sp)
	if err != nil {
		log.Printf("⚠️  Dialogue generation failed: %v", err)
		log.Printf("Using fallback structured dialogue...")
		return fallbackDialogue(personName, personRole, description, clipCount)
	}

	parsed := map[string]string{}
	if err := llm.ExtractJSONObject(raw, &parsed); err != nil {
		log.Printf("⚠️  Dialogue response unparseable: %v", err)
		log.Printf("Using fallback structured dialogue...")
		return fallbackDialogue(personName, personRole, description, clipCount)
	}

	texts := make([]string, 0, clipCount)
	for i := 1; i <= clipCount; i++ {
		segment, ok := parsed[fmt.Sprintf("segment_%d", i)]
		if !ok {
			if i == 1 {
				segment = fmt.Sprintf("Hello, I'm %s, a %s. I'm excited to share my experience with you.", personName, personRole)
			} else {
				segment = fmt.Sprintf("Continuing from previous segment... [Clip %d]", i)
			}
			texts = append(texts, segment)
			continue
		}

		if i == 1 && !hasGreeting(segment) {
			log.Printf("⚠️  Clip 1 missing greeting, adding introduction")
			segment = fmt.Sprintf("Hello, I'm %s. %s", personName, segment)
		}

		// Diagnostics only; over-budget text is never truncated here.
		wordCount := len(strings.Fields(segment))
		estimated := float64(wordCount) / sp.WordsPerSecond
		switch {
		case estimated > config.DialogueDeadlineSeconds:
			log.Printf("⚠️  Segment %d: %d words = %.1fs (over budget, rendering must cut at %.1fs)", i, wordCount, estimated, config.DialogueDeadlineSeconds)
		case wordCount < sp.MinWords:
			log.Printf("⚠️  Segment %d: %d words (target: %d) - too short", i, wordCount, sp.TargetWords)
		default:
			log.Printf("✅ Segment %d: %d words = %.1fs", i, wordCount, estimated)
		}

		texts = append(texts, segment)
	}
	return texts
}

func (s *Segmenter) request(ctx context.Context, personName, personRole, description string, clipCount int, sp types.SpeedProfile) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("no completion provider configured")
	}
	prompt := fmt.Sprintf(dialoguePromptTemplate,
		personName,
		personRole,
		description,
		clipCount,
		sp.TargetWords,
		sp.Label,
		sp.WordsPerSecond,
		sp.MinWords,
		sp.MaxWords,
		float64(sp.TargetWords)/sp.WordsPerSecond,
	)
	return s.provider.Complete(ctx, llm.Request{
		Preamble:    fmt.Sprintf(dialoguePreambleTemplate, sp.TargetWords, sp.MaxWords-sp.TargetWords),
		Message:     prompt,
		Temperature: config.DialogueTemperature,
		MaxTokens:   config.DialogueMaxTokens,
	})
}

// hasGreeting reports whether the first ~20 characters contain a greeting token.
func hasGreeting(text string) bool {
	prefix := strings.ToLower(text)
	if len(prefix) > 20 {
		prefix = prefix[:20]
	}
	for _, greeting := range []string{"hello", "hi", "hey", "greetings"} {
		if strings.Contains(prefix, greeting) {
			return true
		}
	}
	return false
}

// fallbackDialogue builds fully deterministic segments when the model call
// produces nothing usable. Segment 1 is always the introduction; the
// description's words are split across the remaining clips in
// integer-division chunks, remainder words going to the last chunk.
func fallbackDialogue(personName, personRole, description string, clipCount int) []string {
	segments := []string{
		fmt.Sprintf("Hello, I'm %s, a %s. I'm excited to share my journey and expertise with you today.", personName, personRole),
	}

	if clipCount > 1 {
		words := strings.Fields(description)
		wordsPerClip := len(words) / (clipCount - 1)

		for i := 1; i < clipCount; i++ {
			start := (i - 1) * wordsPerClip
			end := i * wordsPerClip
			if i == clipCount-1 {
				end = len(words)
			}
			segments = append(segments, strings.Join(words[start:end], " "))
		}
	}

	return segments
}

func newSegment(text string, wordsPerSecond float64) types.DialogueSegment {
	wordCount := len(strings.Fields(text))
	return types.DialogueSegment{
		Text:                     text,
		WordCount:                wordCount,
		EstimatedDurationSeconds: float64(wordCount) / wordsPerSecond,
	}
}
