// Package resume extracts structured data from uploaded resume files and
// turns it into a content description for the descriptor pipeline.
package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"veoforge/config"
	"veoforge/llm"
)

// PersonalInfo is the contact section of a parsed resume.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Skills groups the skill lists of a parsed resume.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// ExperienceEntry is one role in the work history.
type ExperienceEntry struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
}

// EducationEntry is one item in the education history.
type EducationEntry struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationYear string `json:"graduation_year"`
}

// ProjectEntry is one highlighted project.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Data is the structured form of a parsed resume.
type Data struct {
	PersonalInfo           PersonalInfo      `json:"personal_info"`
	ProfessionalSummary    string            `json:"professional_summary"`
	CurrentRole            string            `json:"current_role"`
	YearsOfExperience      string            `json:"years_of_experience"`
	KeyStrengths           []string          `json:"key_strengths"`
	Skills                 Skills            `json:"skills"`
	Experience             []ExperienceEntry `json:"experience"`
	Education              []EducationEntry  `json:"education"`
	Projects               []ProjectEntry    `json:"projects"`
	Certifications         []string          `json:"certifications"`
	Achievements           []string          `json:"achievements"`
	SpeakingToneSuggestion string            `json:"speaking_tone_suggestion"`
	RawText                string            `json:"raw_text,omitempty"`
	ParsedAt               time.Time         `json:"parsed_at"`
	IsFallback             bool              `json:"is_fallback"`
	Warnings               []string          `json:"warnings"`
}

// Parser extracts structured resume data from PDF and DOCX files.
type Parser struct {
	provider llm.CompletionProvider
}

// NewParser creates a parser backed by the given completion provider.
func NewParser(provider llm.CompletionProvider) *Parser {
	return &Parser{provider: provider}
}

// ParseFile reads the file and extracts structured data. Unsupported
// extensions and unreadable files are fatal; model failures degrade to the
// deterministic fallback extraction.
func (p *Parser) ParseFile(ctx context.Context, path string) (Data, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = extractPDFText(path)
	case ".docx":
		text, err = extractDOCXText(path)
	default:
		return Data{}, fmt.Errorf("unsupported file format %q: use PDF or DOCX", filepath.Ext(path))
	}
	if err != nil {
		return Data{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Data{}, fmt.Errorf("no text extracted from %s", filepath.Base(path))
	}

	data := p.extractStructuredData(ctx, text)
	data.RawText = text
	data.ParsedAt = time.Now().UTC()
	return data, nil
}

// extractPDFText pulls plain text out of a PDF file.
func extractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("error reading PDF: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("error reading PDF: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", fmt.Errorf("error reading PDF: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// extractDOCXText pulls paragraph text out of the DOCX zip container.
func extractDOCXText(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("error reading DOCX: %w", err)
	}
	defer zr.Close()

	for _, file := range zr.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("error reading DOCX: %w", err)
		}
		defer rc.Close()
		return docxParagraphs(rc)
	}
	return "", fmt.Errorf("error reading DOCX: no document body found")
}

// docxParagraphs walks document.xml collecting text runs, one line per
// paragraph element.
func docxParagraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var b strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error reading DOCX: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
			if t.Name.Local == "p" {
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}

const resumePreamble = "Extract info and return ONLY valid JSON. No markdown."

const resumePromptTemplate = `Extract information from this resume.

RESUME TEXT:
%s

RETURN ONLY THIS JSON (no markdown):
{
  "personal_info": {
    "name": "Full name",
    "email": "email@example.com",
    "phone": "+1234567890",
    "location": "City, State/Country",
    "linkedin": "LinkedIn URL if present",
    "github": "GitHub URL if present"
  },
  "professional_summary": "2-3 sentence summary",
  "current_role": "Current job title",
  "years_of_experience": "X years",
  "key_strengths": ["Strength 1", "Strength 2", "Strength 3"],
  "skills": {
    "technical": ["Skill1", "Skill2"],
    "soft": ["Communication", "Leadership"],
    "tools": ["Tool1", "Tool2"]
  },
  "experience": [
    {
      "company": "Company Name",
      "role": "Job Title",
      "duration": "Month Year - Month Year",
      "achievements": ["Achievement 1", "Achievement 2"]
    }
  ],
  "education": [
    {
      "institution": "University Name",
      "degree": "Degree Name",
      "field": "Field of Study",
      "graduation_year": "Year"
    }
  ],
  "projects": [
    {
      "name": "Project Name",
      "description": "Brief description",
      "technologies": ["Tech1", "Tech2"]
    }
  ],
  "certifications": ["Cert 1", "Cert 2"],
  "achievements": ["Achievement 1"],
  "speaking_tone_suggestion": "professional/friendly/confident"
}

Return ONLY valid JSON. If section not found, use empty array [] or empty string "".`

// extractStructuredData asks the model for structured fields, degrading to
// the heuristic fallback on any failure.
func (p *Parser) extractStructuredData(ctx context.Context, text string) Data {
	if p.provider == nil {
		return fallbackExtraction(text)
	}

	raw, err := p.provider.Complete(ctx, llm.Request{
		Preamble:    resumePreamble,
		Message:     fmt.Sprintf(resumePromptTemplate, text),
		Temperature: config.ExtractionTemperature,
		MaxTokens:   config.ResumeMaxTokens,
	})
	if err != nil {
		log.Printf("⚠️  Resume extraction call failed: %v", err)
		return fallbackExtraction(text)
	}

	var data Data
	if err := llm.ExtractJSONObject(raw, &data); err != nil {
		log.Printf("⚠️  Resume extraction returned unparseable response: %v", err)
		return fallbackExtraction(text)
	}

	data.IsFallback = false
	data.Warnings = []string{}
	return data
}

var (
	titleCaseName = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+`)
	emailPattern  = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// fallbackExtraction derives minimal resume data heuristically: the first
// Title Case line as the name, plus any email address found in the text.
func fallbackExtraction(text string) Data {
	name := "Professional"
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 3 && titleCaseName.MatchString(trimmed) {
			name = trimmed
			break
		}
	}

	email := ""
	if m := emailPattern.FindString(text); m != "" {
		email = m
	}

	return Data{
		PersonalInfo: PersonalInfo{
			Name:  name,
			Email: email,
		},
		ProfessionalSummary:    "Experienced professional.",
		CurrentRole:            "Professional",
		Skills:                 Skills{Technical: []string{}, Soft: []string{}, Tools: []string{}},
		Experience:             []ExperienceEntry{},
		Education:              []EducationEntry{},
		Projects:               []ProjectEntry{},
		Certifications:         []string{},
		Achievements:           []string{},
		SpeakingToneSuggestion: "professional",
		IsFallback:             true,
		Warnings:               []string{"AI extraction failed (likely rate limit or connection issue). Using generic fallback data."},
	}
}
