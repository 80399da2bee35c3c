package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"veoforge/api"
	"veoforge/clips"
	"veoforge/config"
	"veoforge/generator"
	"veoforge/llm"
	"veoforge/master"
	"veoforge/profile"
	"veoforge/resume"
	"veoforge/rules"
	"veoforge/storage"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	provider := llm.NewCohereProvider(config.CompletionModel)
	if provider == nil {
		log.Println("⚠️ COHERE_API_KEY not set; running with deterministic fallbacks")
	} else {
		log.Printf("Completion model: %s", provider.ModelName())
	}

	catalog := rules.Default()
	gen := generator.New(
		master.NewBuilder(catalog, profile.NewExtractor(providerOrNil(provider))),
		clips.NewSegmenter(providerOrNil(provider)),
	)

	uploader := storage.NewUploaderFromEnv(context.Background())
	if uploader == nil {
		log.Println("S3 not configured; descriptor uploads disabled")
	}

	deps := api.Deps{
		Generator:     gen,
		Store:         storage.NewDocumentStore(config.OutputDir),
		Uploader:      uploader,
		Resume:        resume.NewParser(providerOrNil(provider)),
		Catalog:       catalog,
		LLMConfigured: provider != nil,
	}

	r := api.NewRouter(deps)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/test")
	log.Println("  POST /api/generate")
	log.Println("  POST /api/parse-resume")
	log.Println("  POST /api/generate-description")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// providerOrNil keeps a typed-nil *CohereProvider from sneaking into the
// CompletionProvider interface as a non-nil value.
func providerOrNil(p *llm.CohereProvider) llm.CompletionProvider {
	if p == nil {
		return nil
	}
	return p
}
