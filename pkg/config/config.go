// Package config holds the environment-driven settings for the data
// generation service. Every value can be overridden by an environment
// variable of the same name (case-insensitive); .env and .env.local files
// are honored when present.
package config

// Settings is the process-wide configuration.
type Settings struct {
	// Service
	ServiceName string
	GRPCPort    int
	HTTPPort    int
	LogLevel    string
	LogFormat   string
	Environment string

	// LLM - Anthropic (primary)
	AnthropicAPIKey   string
	ClaudeModel       string
	ClaudeMaxTokens   int
	ClaudeTemperature float64

	// LLM - local vLLM (OpenAI-compatible, secondary)
	VLLMBaseURL string
	VLLMModel   string
	UseLocalLLM bool

	// Retrieval - vector store
	VectorBackend  string
	WeaviateURL    string
	WeaviateAPIKey string
	QdrantURL      string
	RAGTopK        int

	// Cache - Redis
	RedisURL        string
	CacheTTLSeconds int

	// Generation
	MaxSyncRecords     int
	DefaultBatchSize   int
	CoherenceThreshold float64

	// Schemas
	SchemaDir string

	// Observability
	PrometheusEnabled bool
	TracingEnabled    bool
	OTLPEndpoint      string
}

// Load reads settings from the environment, applying defaults for anything
// unset. It never fails; validation of required values (such as the
// Anthropic API key) happens where the value is consumed.
func Load() *Settings {
	LoadEnvFiles()

	return &Settings{
		ServiceName: getString("SERVICE_NAME", "datagen"),
		GRPCPort:    getInt("GRPC_PORT", 9091),
		HTTPPort:    getInt("HTTP_PORT", 8091),
		LogLevel:    getString("LOG_LEVEL", "INFO"),
		LogFormat:   getString("LOG_FORMAT", "text"),
		Environment: getString("ENVIRONMENT", "development"),

		AnthropicAPIKey:   getString("ANTHROPIC_API_KEY", ""),
		ClaudeModel:       getString("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		ClaudeMaxTokens:   getInt("CLAUDE_MAX_TOKENS", 4096),
		ClaudeTemperature: getFloat("CLAUDE_TEMPERATURE", 0.7),

		VLLMBaseURL: getString("VLLM_BASE_URL", "http://vllm:8000/v1"),
		VLLMModel:   getString("VLLM_MODEL", "meta-llama/Meta-Llama-3-8B-Instruct"),
		UseLocalLLM: getBool("USE_LOCAL_LLM", false),

		VectorBackend:  getString("VECTOR_BACKEND", "weaviate"),
		WeaviateURL:    getString("WEAVIATE_URL", "http://weaviate:8080"),
		WeaviateAPIKey: getString("WEAVIATE_API_KEY", ""),
		QdrantURL:      getString("QDRANT_URL", "qdrant:6334"),
		RAGTopK:        getInt("RAG_TOP_K", 5),

		RedisURL:        getString("REDIS_URL", "redis://redis:6379/0"),
		CacheTTLSeconds: getInt("CACHE_TTL_SECONDS", 86400),

		MaxSyncRecords:     getInt("MAX_SYNC_RECORDS", 1000),
		DefaultBatchSize:   getInt("DEFAULT_BATCH_SIZE", 50),
		CoherenceThreshold: getFloat("COHERENCE_THRESHOLD", 0.85),

		SchemaDir: getString("SCHEMA_DIR", ""),

		PrometheusEnabled: getBool("PROMETHEUS_ENABLED", true),
		TracingEnabled:    getBool("TRACING_ENABLED", false),
		OTLPEndpoint:      getString("OTLP_ENDPOINT", "otel-collector:4317"),
	}
}
