// Package generate implements the four generation backends and the router
// that picks between them. Each backend consumes a normalized Request and
// produces ordered records plus a metadata map describing how the data was
// made.
package generate

import (
	"context"

	"github.com/qaforge/datagen/pkg/record"
	"github.com/qaforge/datagen/pkg/schema"
	"github.com/qaforge/datagen/pkg/validate"
)

// Method selects a generation path. Auto delegates to the router.
type Method int

const (
	MethodAuto Method = iota
	MethodSynthetic
	MethodLLM
	MethodRetrieval
	MethodHybrid
)

func (m Method) String() string {
	switch m {
	case MethodSynthetic:
		return "synthetic"
	case MethodLLM:
		return "llm"
	case MethodRetrieval:
		return "retrieval"
	case MethodHybrid:
		return "hybrid"
	default:
		return "auto"
	}
}

// Scenario is a named bucket of records with optional field overrides.
type Scenario struct {
	Name        string
	Count       int
	Description string
	Overrides   map[string]string
}

// Request is the transport-independent generation request.
type Request struct {
	RequestID        string
	Domain           string
	Entity           string
	Count            int
	Context          string
	Hints            []string
	Scenarios        []Scenario
	Constraints      map[string]*validate.Constraint
	LearnFromHistory bool
	DefectTriggering bool
	ProductionLike   bool
	Method           Method

	// Examples carries retrieved patterns when the hybrid path feeds a
	// retrieval pass into the LLM.
	Examples []map[string]any
}

// Metadata keys shared across generators.
const (
	MetaPath         = "generation_path"
	MetaProvider     = "llm_provider"
	MetaTokens       = "tokens_used"
	MetaTimeMS       = "generation_time_ms"
	MetaCoherence    = "coherence_score"
	MetaAttempts     = "attempts"
	MetaPatterns     = "rag_patterns_found"
	MetaCollection   = "retrieval_collection"
	MetaExamplesUsed = "retrieval_examples_used"
	MetaPoolUsed     = "pool_records_used"
)

// Result is the output of one generation pass.
type Result struct {
	Records  []*record.Record
	Metadata map[string]any
}

// Generator is one generation backend. Supports reports whether the
// backend can serve the request; the synthetic backend supports everything
// and acts as the universal fallback.
type Generator interface {
	Generate(ctx context.Context, req *Request, s *schema.Schema) (*Result, error)
	Supports(req *Request) bool
}

// RecordMaps converts the result's records to plain maps for scoring and
// pooling. Key order is lost.
func (r *Result) RecordMaps() []map[string]any {
	out := make([]map[string]any, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Map()
	}
	return out
}
