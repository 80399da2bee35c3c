package llm

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// Request is one synchronous completion call: a system preamble, a user
// message with interpolated variables, and sampling limits.
type Request struct {
	Preamble    string
	Message     string
	Temperature float64
	MaxTokens   int
}

// CompletionProvider abstracts the external language model. Implementations
// return the raw response text; callers are responsible for parsing it
// defensively. No retries are performed at this layer.
type CompletionProvider interface {
	Complete(ctx context.Context, req Request) (string, error)
	ModelName() string
}

// CohereProvider implements CompletionProvider using the Cohere Chat API.
// SDK: github.com/cohere-ai/cohere-go/v2
type CohereProvider struct {
	client *cohereclient.Client
	model  string
}

// NewCohereProvider returns a provider if COHERE_API_KEY is set, nil otherwise.
func NewCohereProvider(model string) *CohereProvider {
	key := os.Getenv("COHERE_API_KEY")
	if key == "" {
		return nil
	}

	// Force HTTP/1.1 to avoid HTTP/2 protocol errors against the Cohere API
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(key),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereProvider{client: client, model: model}
}

func (c *CohereProvider) ModelName() string { return c.model }

// Complete issues one chat request and returns the response text.
func (c *CohereProvider) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message:     req.Message,
		Model:       cohere.String(c.model),
		Preamble:    cohere.String(req.Preamble),
		Temperature: cohere.Float64(req.Temperature),
		MaxTokens:   cohere.Int(req.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil || resp.Text == "" {
		return "", errors.New("cohere chat returned empty response")
	}
	return resp.Text, nil
}
