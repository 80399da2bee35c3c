// Package profile derives a structured person profile from a free-text
// description using one language model call, with a deterministic fallback
// when the call fails or the response is unusable.
package profile

import (
	"context"
	"fmt"
	"log"
	"regexp"

	"veoforge/config"
	"veoforge/llm"
	"veoforge/types"
)

// Outcome reports how a profile was obtained. Extraction never fails; the
// fallback branch always produces the same deterministic default.
type Outcome struct {
	UsedFallback bool
	Reason       string
}

// Extractor turns a person description into a PersonProfile.
type Extractor struct {
	provider llm.CompletionProvider
}

// NewExtractor creates an extractor backed by the given completion provider.
// A nil provider is allowed; every extraction then takes the fallback path.
func NewExtractor(provider llm.CompletionProvider) *Extractor {
	return &Extractor{provider: provider}
}

const extractionPreamble = "You extract person details and return ONLY valid JSON. No markdown formatting."

const extractionPromptTemplate = `You are a person detail extractor for video generation.

USER DESCRIPTION:
%s

TASK:
Extract the following details about the person. If not explicitly mentioned, make reasonable professional assumptions.

RETURN ONLY THIS JSON (no other text):
{
  "name": "Full name of the person",
  "role": "Their role/title (e.g., 'College Student', 'Software Engineer')",
  "tone": "Speaking tone (choose one: professional, friendly, confident, enthusiastic, warm)",
  "appearance": {
    "gender": "male/female/non-binary (infer from name/description)",
    "age_range": "Estimated age range (e.g., '20-25', '30-35')",
    "clothing": "What they're wearing (e.g., 'business casual', 'college attire', 'formal')",
    "distinctive_features": "Any mentioned features (e.g., 'glasses', 'long hair')"
  },
  "key_points": [
    "Main point 1 from description",
    "Main point 2 from description",
    "Main point 3 from description"
  ],
  "speaking_style": "How they speak (e.g., 'clear and articulate', 'conversational')"
}

CRITICAL: Return ONLY valid JSON. No markdown, no explanations, no extra text.`

// Extract derives a PersonProfile from the description. Any failure along
// the way (call error, unparseable response, missing required field) is
// recovered locally by substituting the deterministic fallback profile.
func (e *Extractor) Extract(ctx context.Context, description string) (types.PersonProfile, Outcome) {
	if e.provider == nil {
		return fallbackProfile(description), Outcome{UsedFallback: true, Reason: "no completion provider configured"}
	}

	raw, err := e.provider.Complete(ctx, llm.Request{
		Preamble:    extractionPreamble,
		Message:     fmt.Sprintf(extractionPromptTemplate, description),
		Temperature: config.ExtractionTemperature,
		MaxTokens:   config.ExtractionMaxTokens,
	})
	if err != nil {
		log.Printf("⚠️  Person extraction call failed: %v", err)
		return fallbackProfile(description), Outcome{UsedFallback: true, Reason: "completion call failed"}
	}

	var p types.PersonProfile
	if err := llm.ExtractJSONObject(raw, &p); err != nil {
		log.Printf("⚠️  Person extraction returned unparseable response: %v", err)
		return fallbackProfile(description), Outcome{UsedFallback: true, Reason: "unparseable response"}
	}

	if missing := missingRequiredField(p); missing != "" {
		log.Printf("⚠️  Person extraction missing required field %q", missing)
		return fallbackProfile(description), Outcome{UsedFallback: true, Reason: "missing field: " + missing}
	}

	return p, Outcome{}
}

// missingRequiredField returns the name of the first absent required field.
func missingRequiredField(p types.PersonProfile) string {
	switch {
	case p.Name == "":
		return "name"
	case p.Role == "":
		return "role"
	case p.Tone == "":
		return "tone"
	case p.Appearance == (types.Appearance{}):
		return "appearance"
	case len(p.KeyPoints) == 0:
		return "key_points"
	}
	return ""
}

var namePattern = regexp.MustCompile(`(?:I'm|I am|My name is)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

// fallbackProfile builds the fixed professional-default profile, extracting
// a candidate name from the description when one is stated.
func fallbackProfile(description string) types.PersonProfile {
	name := "Speaker"
	if m := namePattern.FindStringSubmatch(description); m != nil {
		name = m[1]
	}

	return types.PersonProfile{
		Name: name,
		Role: "Professional Speaker",
		Tone: "professional",
		Appearance: types.Appearance{
			Gender:              "unknown",
			AgeRange:            "25-35",
			Clothing:            "professional attire",
			DistinctiveFeatures: "as shown in reference image",
		},
		KeyPoints: []string{
			"Professional background",
			"Relevant experience",
			"Call to action",
		},
		SpeakingStyle: "clear and articulate",
	}
}
