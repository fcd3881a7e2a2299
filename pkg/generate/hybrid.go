package generate

import (
	"context"
	"log/slog"
	"time"

	"github.com/qaforge/datagen/pkg/schema"
)

// HybridGenerator chains retrieval and LLM generation: retrieved patterns
// become reference examples in the LLM prompt. When retrieval comes back
// empty the LLM pass proceeds alone.
type HybridGenerator struct {
	retrieval *RetrievalGenerator
	llm       *LLMGenerator
}

func NewHybridGenerator(retrieval *RetrievalGenerator, llm *LLMGenerator) *HybridGenerator {
	return &HybridGenerator{retrieval: retrieval, llm: llm}
}

func (g *HybridGenerator) Supports(req *Request) bool {
	return g.retrieval.Supports(req) && g.llm.Supports(req)
}

func (g *HybridGenerator) Generate(ctx context.Context, req *Request, s *schema.Schema) (*Result, error) {
	start := time.Now()
	collection := g.retrieval.Collection(req)

	var examples []map[string]any
	retrievalResult, err := g.retrieval.Generate(ctx, req, s)
	if err != nil {
		slog.Warn("hybrid retrieval pass failed, proceeding with LLM only",
			"request_id", req.RequestID,
			"error", err,
		)
	} else if len(retrievalResult.Records) == 0 {
		slog.Warn("hybrid retrieval found no patterns, proceeding with LLM only",
			"request_id", req.RequestID,
			"collection", collection,
		)
	} else {
		examples = retrievalResult.RecordMaps()
	}

	augmented := *req
	augmented.Examples = examples

	llmResult, err := g.llm.Generate(ctx, &augmented, s)
	if err != nil {
		return nil, err
	}

	durationMS := float64(time.Since(start).Microseconds()) / 1000
	metadata := map[string]any{
		MetaPath:         MethodHybrid.String(),
		MetaCollection:   collection,
		MetaExamplesUsed: len(examples),
		MetaTimeMS:       durationMS,
	}
	for _, key := range []string{MetaProvider, MetaTokens, MetaAttempts} {
		if v, ok := llmResult.Metadata[key]; ok {
			metadata[key] = v
		}
	}

	slog.Info("hybrid generation complete",
		"request_id", req.RequestID,
		"examples_used", len(examples),
		"count", len(llmResult.Records),
		"duration_ms", durationMS,
	)

	return &Result{Records: llmResult.Records, Metadata: metadata}, nil
}
