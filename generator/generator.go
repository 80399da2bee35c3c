// Package generator runs the descriptor pipeline for one request: master
// first, then dialogue, then clips in ascending order. Each clip's
// transition depends on the previous clip's finished dialogue, so no step
// is parallelized.
package generator

import (
	"context"
	"log"

	"veoforge/clips"
	"veoforge/master"
	"veoforge/types"

	"github.com/google/uuid"
)

// Request carries everything needed to generate one project's descriptors.
type Request struct {
	Description        string
	ReferenceImagePath string
	Options            master.Options
}

// Result is the complete output of one generation request.
type Result struct {
	ProjectID string
	Master    types.MasterDescriptor
	Clips     []types.ClipDescriptor
}

// Generator owns the shared pipeline components.
type Generator struct {
	masterBuilder *master.Builder
	segmenter     *clips.Segmenter
}

// New wires a generator to its master builder and dialogue segmenter.
func New(masterBuilder *master.Builder, segmenter *clips.Segmenter) *Generator {
	return &Generator{masterBuilder: masterBuilder, segmenter: segmenter}
}

// Generate produces the master descriptor and exactly TotalClips clip
// descriptors. It never returns a partial result.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	projectID := uuid.NewString()
	log.Printf("🏗️  Building master descriptor for project %s", projectID)

	m := g.masterBuilder.Build(ctx, req.Description, req.ReferenceImagePath, req.Options)

	log.Printf("🎬 Generating dialogue for %d clips (%s, %g words/sec)",
		m.ProjectMetadata.TotalClips, m.TimingConfig.SpeedLabel, m.TimingConfig.WordsPerSecond)

	segments := g.segmenter.Segment(ctx,
		m.PersonIdentity.Name,
		m.PersonIdentity.Role,
		req.Description,
		m.ProjectMetadata.TotalClips,
		m.ProjectMetadata.SpeedProfile,
	)

	clipDocs := make([]types.ClipDescriptor, 0, len(segments))
	previousEnd := ""
	for i, seg := range segments {
		clipNumber := i + 1
		log.Printf("🔨 Building clip %d/%d", clipNumber, len(segments))
		clipDocs = append(clipDocs, clips.BuildClip(clipNumber, m, seg.Text, previousEnd))
		previousEnd = clips.LastSentence(seg.Text)
	}

	log.Printf("✅ Generated master + %d clip descriptors", len(clipDocs))
	return Result{ProjectID: projectID, Master: m, Clips: clipDocs}
}
