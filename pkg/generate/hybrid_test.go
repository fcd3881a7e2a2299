package generate

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/datagen/pkg/databases"
)

// capturingProvider records the prompts and returns one fixed reply.
type capturingProvider struct {
	reply   string
	prompts []string
}

func (p *capturingProvider) Name() string { return "capture" }

func (p *capturingProvider) Generate(_ context.Context, _, user string) (string, int, error) {
	p.prompts = append(p.prompts, user)
	return p.reply, 40, nil
}

func (p *capturingProvider) Close() error { return nil }

func TestHybridGenerator_ExamplesFeedThePrompt(t *testing.T) {
	store := &fakeStore{results: []databases.SearchResult{
		patternResult("p1", map[string]any{"data": map[string]any{
			"order_id": "ORD-2026-0001234",
			"status":   "delivered",
		}}),
	}}
	provider := &capturingProvider{reply: `[{"order_id":"ORD-2026-7654321","status":"pending"}]`}

	g := NewHybridGenerator(NewRetrievalGenerator(store, 5), NewLLMGenerator(provider, nil))

	result, err := g.Generate(context.Background(), &Request{
		RequestID:        "h1",
		Entity:           "order",
		Count:            2,
		Context:          "orders that previously broke fulfillment",
		LearnFromHistory: true,
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	assert.Equal(t, "hybrid", result.Metadata[MetaPath])
	assert.Equal(t, databases.CollectionPatterns, result.Metadata[MetaCollection])
	assert.Equal(t, 2, result.Metadata[MetaExamplesUsed])
	assert.Equal(t, "capture", result.Metadata[MetaProvider])
	assert.Equal(t, 40, result.Metadata[MetaTokens])

	// The retrieved pattern shows up as a reference example in the prompt.
	require.NotEmpty(t, provider.prompts)
	assert.Contains(t, provider.prompts[0], "REFERENCE EXAMPLES")
	assert.Contains(t, provider.prompts[0], "delivered")
}

func TestHybridGenerator_EmptyRetrievalProceedsLLMOnly(t *testing.T) {
	provider := &capturingProvider{reply: `[{"order_id":"ORD-2026-7654321"}]`}
	g := NewHybridGenerator(NewRetrievalGenerator(&fakeStore{}, 5), NewLLMGenerator(provider, nil))

	result, err := g.Generate(context.Background(), &Request{
		Entity:           "order",
		Count:            1,
		Context:          "unfulfillable orders",
		LearnFromHistory: true,
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	assert.Equal(t, 0, result.Metadata[MetaExamplesUsed])
	assert.NotContains(t, provider.prompts[0], "REFERENCE EXAMPLES")
}

func TestHybridGenerator_RetrievalFailureProceedsLLMOnly(t *testing.T) {
	store := &fakeStore{searchErr: fmt.Errorf("vector store down")}
	provider := &capturingProvider{reply: `[{"order_id":"ORD-2026-7654321"}]`}
	g := NewHybridGenerator(NewRetrievalGenerator(store, 5), NewLLMGenerator(provider, nil))

	result, err := g.Generate(context.Background(), &Request{
		Entity:           "order",
		Count:            1,
		Context:          "unfulfillable orders",
		LearnFromHistory: true,
	}, nil)
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, 0, result.Metadata[MetaExamplesUsed])
}

func TestHybridGenerator_LLMFailurePropagates(t *testing.T) {
	failing := &scriptedProvider{name: "claude", replies: []string{"no", "no", "no"}}
	g := NewHybridGenerator(NewRetrievalGenerator(&fakeStore{}, 5), NewLLMGenerator(failing, nil))

	_, err := g.Generate(context.Background(), &Request{
		Entity:           "order",
		Count:            1,
		Context:          "unfulfillable orders",
		LearnFromHistory: true,
	}, nil)
	assert.Error(t, err)
}

func TestHybridGenerator_OriginalRequestUntouched(t *testing.T) {
	store := &fakeStore{results: []databases.SearchResult{
		patternResult("p1", map[string]any{"data": map[string]any{"a": 1}}),
	}}
	provider := &capturingProvider{reply: `[{"a":2}]`}
	g := NewHybridGenerator(NewRetrievalGenerator(store, 5), NewLLMGenerator(provider, nil))

	req := &Request{Entity: "order", Count: 1, Context: "ctx longer than ten", LearnFromHistory: true}
	_, err := g.Generate(context.Background(), req, nil)
	require.NoError(t, err)

	// Examples are injected into a copy, not the caller's request.
	assert.Nil(t, req.Examples)
}

func TestHybridGenerator_Supports(t *testing.T) {
	g := NewHybridGenerator(
		NewRetrievalGenerator(&fakeStore{}, 5),
		NewLLMGenerator(&capturingProvider{}, nil),
	)

	assert.True(t, g.Supports(&Request{LearnFromHistory: true, Context: "long enough context"}))
	assert.False(t, g.Supports(&Request{LearnFromHistory: true}))
	assert.False(t, g.Supports(&Request{Context: "long enough context"}))
}
