package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/qaforge/datagen/pkg/llms"
	"github.com/qaforge/datagen/pkg/prompt"
	"github.com/qaforge/datagen/pkg/record"
	"github.com/qaforge/datagen/pkg/schema"
	"github.com/qaforge/datagen/pkg/validate"
)

// defaultParseRetries is how many times a malformed completion is retried
// with a stricter prompt before falling back.
const defaultParseRetries = 2

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// LLMGenerator drives a primary completion provider with an optional
// secondary fallback. Parse failures retry against the primary with a
// stricter prompt; only after exhausting retries does the secondary get
// one attempt.
type LLMGenerator struct {
	primary      llms.Provider
	secondary    llms.Provider
	builder      *prompt.Builder
	parseRetries int
}

func NewLLMGenerator(primary, secondary llms.Provider) *LLMGenerator {
	return &LLMGenerator{
		primary:      primary,
		secondary:    secondary,
		builder:      prompt.NewBuilder(),
		parseRetries: defaultParseRetries,
	}
}

func (g *LLMGenerator) Supports(req *Request) bool {
	if req.Context != "" {
		return true
	}
	hints := lowerHints(req.Hints)
	if hasHint(hints, "realistic", "coherent", "intelligent") {
		return true
	}
	switch req.Entity {
	case "review", "comment", "feedback", "description":
		return true
	case "cart", "order":
		if hasHint(hints, "coherent") {
			return true
		}
	}
	for _, s := range req.Scenarios {
		if s.Description != "" {
			return true
		}
	}
	return false
}

func (g *LLMGenerator) Generate(ctx context.Context, req *Request, s *schema.Schema) (*Result, error) {
	if g.primary == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	start := time.Now()
	system, user := g.builder.Build(promptInput(req, s))

	totalTokens := 0
	attempts := 0
	var lastErr error

	currentPrompt := user
	for attempt := 0; attempt <= g.parseRetries; attempt++ {
		attempts++
		content, tokens, err := g.primary.Generate(ctx, system, currentPrompt)
		totalTokens += tokens
		if err != nil {
			lastErr = err
			// API failures are already retried inside the provider;
			// a stricter prompt won't help here.
			break
		}

		records, err := parseRecords(content)
		if err != nil {
			lastErr = &llms.BackendError{Provider: g.primary.Name(), Kind: llms.ErrParse, Message: "completion was not a JSON record list", Err: err}
			slog.Warn("LLM output parse failed, retrying with stricter prompt",
				"request_id", req.RequestID,
				"attempt", attempts,
				"error", err,
			)
			currentPrompt = user + prompt.StricterSuffix
			continue
		}

		finalize(records)
		return g.result(req, g.primary.Name(), records, totalTokens, attempts, start), nil
	}

	if g.secondary != nil {
		slog.Warn("primary LLM exhausted, falling back to secondary",
			"request_id", req.RequestID,
			"primary", g.primary.Name(),
			"secondary", g.secondary.Name(),
			"error", lastErr,
		)
		content, tokens, err := g.secondary.Generate(ctx, system, user+prompt.StricterSuffix)
		totalTokens += tokens
		attempts++
		if err == nil {
			records, perr := parseRecords(content)
			if perr == nil {
				finalize(records)
				return g.result(req, g.secondary.Name(), records, totalTokens, attempts, start), nil
			}
			err = perr
		}
		lastErr = err
	}

	return nil, fmt.Errorf("LLM generation failed after %d attempts: %w", attempts, lastErr)
}

func (g *LLMGenerator) result(req *Request, provider string, records []*record.Record, tokens, attempts int, start time.Time) *Result {
	durationMS := float64(time.Since(start).Microseconds()) / 1000
	slog.Info("LLM generation complete",
		"request_id", req.RequestID,
		"provider", provider,
		"count", len(records),
		"tokens", tokens,
		"attempts", attempts,
		"duration_ms", durationMS,
	)
	return &Result{
		Records: records,
		Metadata: map[string]any{
			MetaPath:     MethodLLM.String(),
			MetaProvider: provider,
			MetaTokens:   tokens,
			MetaAttempts: attempts,
			MetaTimeMS:   durationMS,
		},
	}
}

func promptInput(req *Request, s *schema.Schema) prompt.Input {
	scenarios := make([]prompt.Scenario, 0, len(req.Scenarios))
	for _, sc := range req.Scenarios {
		scenarios = append(scenarios, prompt.Scenario{
			Name:        sc.Name,
			Count:       sc.Count,
			Description: sc.Description,
			Overrides:   sc.Overrides,
		})
	}

	constraints := make(map[string]*validate.Constraint, len(req.Constraints))
	for name, c := range req.Constraints {
		constraints[name] = c
	}

	return prompt.Input{
		Count:            req.Count,
		Domain:           req.Domain,
		Entity:           req.Entity,
		Context:          req.Context,
		Hints:            req.Hints,
		DefectTriggering: req.DefectTriggering,
		Scenarios:        scenarios,
		Constraints:      constraints,
		Schema:           s,
		Examples:         req.Examples,
	}
}

// parseRecords decodes a completion into records. A fenced block is
// unwrapped, a lone object becomes a one-element list, and anything that
// is not a list of objects is rejected.
func parseRecords(content string) ([]*record.Record, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		if m := fenceRe.FindStringSubmatch(content); m != nil {
			content = m[1]
		}
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("empty completion")
	}

	var raws []json.RawMessage
	switch content[0] {
	case '[':
		if err := json.Unmarshal([]byte(content), &raws); err != nil {
			return nil, fmt.Errorf("invalid JSON array: %w", err)
		}
	case '{':
		raws = []json.RawMessage{json.RawMessage(content)}
	default:
		return nil, fmt.Errorf("top-level JSON is neither array nor object")
	}

	records := make([]*record.Record, 0, len(raws))
	for i, raw := range raws {
		trimmed := strings.TrimSpace(string(raw))
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("element %d is not a JSON object", i)
		}
		var rec record.Record
		if err := rec.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		records = append(records, &rec)
	}
	return records, nil
}

// finalize stamps sequential indexes and a default scenario on records the
// model left unlabeled.
func finalize(records []*record.Record) {
	for i, rec := range records {
		if !rec.Has(record.KeyScenario) {
			rec.Set(record.KeyScenario, "default")
		}
		rec.Set(record.KeyIndex, i)
	}
}
