package generate

import (
	"fmt"
	"strings"
)

// Decision is the router's verdict for one request.
type Decision struct {
	Path       Method
	Reason     string
	Confidence float64
}

// Router picks the generation path for a request. It is a pure function of
// the request; the same request always routes the same way.
type Router struct{}

func NewRouter() *Router {
	return &Router{}
}

// Route applies the priority ladder: explicit method, then hybrid, then
// retrieval, then LLM, with synthetic as the default.
func (r *Router) Route(req *Request) Decision {
	if req.Method != MethodAuto {
		return Decision{
			Path:       req.Method,
			Reason:     fmt.Sprintf("User explicitly selected %s generation method", req.Method),
			Confidence: 1.0,
		}
	}

	hints := lowerHints(req.Hints)

	if shouldUseHybrid(req, hints) {
		return Decision{
			Path:       MethodHybrid,
			Reason:     "Complex request with historical patterns and intelligence needed",
			Confidence: 0.9,
		}
	}

	if shouldUseRetrieval(req, hints) {
		return Decision{
			Path:       MethodRetrieval,
			Reason:     retrievalReason(req, hints),
			Confidence: 0.85,
		}
	}

	if shouldUseLLM(req, hints) {
		return Decision{
			Path:       MethodLLM,
			Reason:     llmReason(req, hints),
			Confidence: 0.8,
		}
	}

	return Decision{
		Path:       MethodSynthetic,
		Reason:     syntheticReason(req, hints),
		Confidence: 0.95,
	}
}

func lowerHints(hints []string) []string {
	out := make([]string, len(hints))
	for i, h := range hints {
		out[i] = strings.ToLower(h)
	}
	return out
}

func hasHint(hints []string, wanted ...string) bool {
	for _, h := range hints {
		for _, w := range wanted {
			if h == w {
				return true
			}
		}
	}
	return false
}

func shouldUseHybrid(req *Request, hints []string) bool {
	if shouldUseRetrieval(req, hints) && shouldUseLLM(req, hints) {
		return true
	}
	// Complex scenario mixes backed by history also warrant both passes.
	if len(req.Scenarios) > 2 && (req.LearnFromHistory || req.ProductionLike) {
		return true
	}
	return false
}

func shouldUseRetrieval(req *Request, hints []string) bool {
	if req.LearnFromHistory || req.DefectTriggering || req.ProductionLike {
		return true
	}
	return hasHint(hints, "similar", "pattern", "historical", "production")
}

func shouldUseLLM(req *Request, hints []string) bool {
	if len(req.Context) > 10 {
		return true
	}
	if (req.Entity == "cart" || req.Entity == "order") && hasHint(hints, "coherent", "realistic") {
		return true
	}
	switch req.Entity {
	case "review", "comment", "feedback", "description":
		return true
	}
	if hasHint(hints, "realistic", "coherent", "intelligent", "natural") {
		return true
	}
	for _, s := range req.Scenarios {
		if len(s.Description) > 20 {
			return true
		}
	}
	return false
}

func retrievalReason(req *Request, hints []string) string {
	var reasons []string
	if req.LearnFromHistory {
		reasons = append(reasons, "learn_from_history flag set")
	}
	if req.DefectTriggering {
		reasons = append(reasons, "defect_triggering mode requested")
	}
	if req.ProductionLike {
		reasons = append(reasons, "production-like distributions needed")
	}
	if hasHint(hints, "similar", "pattern", "historical") {
		reasons = append(reasons, fmt.Sprintf("hints suggest pattern matching: %v", hints))
	}
	if len(reasons) == 0 {
		return "Retrieval: pattern-based generation"
	}
	return "Retrieval: " + strings.Join(reasons, ", ")
}

func llmReason(req *Request, hints []string) string {
	var reasons []string
	if req.Context != "" {
		reasons = append(reasons, "context provided")
	}
	if req.Entity == "cart" || req.Entity == "order" {
		reasons = append(reasons, fmt.Sprintf("coherence needed for %s", req.Entity))
	}
	if req.Entity == "review" || req.Entity == "comment" || req.Entity == "feedback" {
		reasons = append(reasons, fmt.Sprintf("text content generation for %s", req.Entity))
	}
	if hasHint(hints, "realistic", "coherent", "intelligent") {
		reasons = append(reasons, fmt.Sprintf("intelligent generation requested via hints: %v", hints))
	}
	for _, s := range req.Scenarios {
		if s.Description != "" {
			reasons = append(reasons, "detailed scenario descriptions provided")
			break
		}
	}
	if len(reasons) == 0 {
		return "LLM: intelligent generation"
	}
	return "LLM: " + strings.Join(reasons, ", ")
}

func syntheticReason(req *Request, hints []string) string {
	var reasons []string
	if req.Context == "" {
		reasons = append(reasons, "no context provided")
	}
	if req.Count > 500 {
		reasons = append(reasons, fmt.Sprintf("high volume (%d records)", req.Count))
	}
	if hasHint(hints, "fast") {
		reasons = append(reasons, "fast generation requested")
	}
	if (req.Entity == "user" || req.Entity == "payment") && !hasHint(hints, "realistic", "coherent") {
		reasons = append(reasons, fmt.Sprintf("simple entity (%s)", req.Entity))
	}
	if len(reasons) == 0 {
		return "Synthetic: default fast generation"
	}
	return "Synthetic: " + strings.Join(reasons, ", ")
}
