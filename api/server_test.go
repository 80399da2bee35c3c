package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"veoforge/clips"
	"veoforge/generator"
	"veoforge/master"
	"veoforge/profile"
	"veoforge/resume"
	"veoforge/rules"
	"veoforge/storage"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Chdir(t.TempDir())
	gin.SetMode(gin.TestMode)

	catalog := rules.Default()
	deps := Deps{
		Generator: generator.New(
			master.NewBuilder(catalog, profile.NewExtractor(nil)),
			clips.NewSegmenter(nil),
		),
		Store:   storage.NewDocumentStore("outputs"),
		Resume:  resume.NewParser(nil),
		Catalog: catalog,
	}
	return NewRouter(deps)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", body["status"])
	}
}

func TestTestEndpointReportsComponents(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Success       bool `json:"success"`
		LLMConfigured bool `json:"llm_configured"`
		Components    struct {
			Generator    bool `json:"generator"`
			ResumeParser bool `json:"resume_parser"`
			S3Uploader   bool `json:"s3_uploader"`
		} `json:"components_initialized"`
		Config struct {
			SpeedKeys []string `json:"speed_keys"`
		} `json:"config"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !body.Success {
		t.Error("expected success=true")
	}
	if body.LLMConfigured {
		t.Error("expected llm_configured=false without provider")
	}
	if !body.Components.Generator || !body.Components.ResumeParser {
		t.Error("expected generator and resume_parser initialized")
	}
	if body.Components.S3Uploader {
		t.Error("expected s3_uploader uninitialized")
	}
	if len(body.Config.SpeedKeys) != 3 {
		t.Errorf("speed_keys = %v; want the three catalog keys", body.Config.SpeedKeys)
	}
}

func TestGenerateRejectsMissingFields(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing image", `{"content_description": "I'm Maya Chen, a product designer."}`},
		{"missing description", `{"reference_image": "aGVsbG8="}`},
		{"invalid json", `{not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestGenerateRejectsBadBase64(t *testing.T) {
	r := newTestRouter(t)

	body := `{"content_description": "I'm Maya Chen, a product designer.", "reference_image": "!!not-base64!!"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateProducesDescriptors(t *testing.T) {
	r := newTestRouter(t)

	image := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
	payload := map[string]any{
		"content_description": "I'm Maya Chen, a product designer with ten years of experience building tools people love.",
		"reference_image":     "data:image/jpeg;base64," + image,
		"num_clips":           2,
		"speed":               "1.5x",
		"background_music":    true,
	}
	raw, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		Success   bool              `json:"success"`
		ProjectID string            `json:"project_id"`
		Master    json.RawMessage   `json:"master"`
		Clips     []json.RawMessage `json:"clips"`
		Message   string            `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !body.Success {
		t.Error("expected success=true")
	}
	if body.ProjectID == "" {
		t.Error("expected a project id")
	}
	if len(body.Clips) != 2 {
		t.Errorf("clips = %d, want 2", len(body.Clips))
	}
	if len(body.Master) == 0 {
		t.Error("expected master descriptor in response")
	}
}

func TestParseResumeRejectsUnsupportedExtension(t *testing.T) {
	r := newTestRouter(t)

	var buf strings.Builder
	boundary := "testboundary"
	buf.WriteString("--" + boundary + "\r\n")
	buf.WriteString(`Content-Disposition: form-data; name="file"; filename="resume.txt"` + "\r\n")
	buf.WriteString("Content-Type: text/plain\r\n\r\n")
	buf.WriteString("plain text resume\r\n")
	buf.WriteString("--" + boundary + "--\r\n")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/parse-resume", strings.NewReader(buf.String()))
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "PDF and DOCX") {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}

func TestParseResumeRejectsMissingFile(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/parse-resume", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateDescriptionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]any{
		"resume_data": map[string]any{
			"personal_info": map[string]any{"name": "Maya Chen"},
			"summary":       "Product designer",
		},
		"focus": "comprehensive",
	}
	raw, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-description", strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var body struct {
		Success     bool   `json:"success"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !body.Success || body.Description == "" {
		t.Errorf("expected non-empty description, got %+v", body)
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/missing", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Endpoint not found") {
		t.Errorf("unexpected 404 body: %s", w.Body.String())
	}
}
