package config

// Clip Timing Constants
const (
	// ClipDurationSeconds is the fixed length of every generated clip
	ClipDurationSeconds = 8

	// DialogueDeadlineSeconds is the point by which spoken dialogue must finish
	DialogueDeadlineSeconds = 7.9

	// ClipBufferSeconds is the silent tail reserved at the end of each clip
	ClipBufferSeconds = 0.1

	// DefaultClipCount is used when a request does not specify num_clips
	DefaultClipCount = 3
)

// Language Model Constants
const (
	// CompletionModel is the Cohere chat model used for all extraction calls
	CompletionModel = "command-r-plus-08-2024"

	// ExtractionTemperature keeps person/resume extraction close to the source text
	ExtractionTemperature = 0.3

	// DialogueTemperature allows more creative wording for dialogue segments
	DialogueTemperature = 0.7

	// ExtractionMaxTokens bounds person-detail extraction responses
	ExtractionMaxTokens = 500

	// ResumeMaxTokens bounds structured resume extraction responses
	ResumeMaxTokens = 2000

	// DialogueMaxTokens bounds dialogue segmentation responses
	DialogueMaxTokens = 2000
)

// Directory Constants
const (
	// UploadDir holds reference images and uploaded resume files
	UploadDir = "uploads"

	// OutputDir is where master and clip descriptor documents are written
	OutputDir = "outputs"
)

// Consistency Thresholds
const (
	// FaceSimilarityThreshold is the declared face-lock similarity requirement
	FaceSimilarityThreshold = 0.99

	// VoiceSimilarityThreshold is the declared voice-lock similarity requirement
	VoiceSimilarityThreshold = 0.99
)
