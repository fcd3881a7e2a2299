package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/qaforge/datagen/pkg/generate"
	"github.com/qaforge/datagen/pkg/pb"
	"github.com/qaforge/datagen/pkg/record"
	"github.com/qaforge/datagen/pkg/schema"
)

func (s *Service) GenerateData(ctx context.Context, req *pb.GenerateRequest) (*pb.GenerateResponse, error) {
	requestID := req.GetRequestId()
	if requestID == "" {
		requestID = uuid.NewString()
	}

	if req.GetCount() <= 0 {
		return failResponse(requestID, "count must be positive"), nil
	}
	if max := s.maxSyncRecords(); int(req.GetCount()) > max {
		return failResponse(requestID, fmt.Sprintf(
			"Count %d exceeds max sync limit %d. Use streaming instead.", req.GetCount(), max)), nil
	}

	start := time.Now()
	dreq := requestFromProto(req)
	dreq.RequestID = requestID

	sch, err := s.resolveSchema(req, dreq)
	if err != nil {
		return failResponse(requestID, err.Error()), nil
	}

	result, path, err := s.execute(ctx, dreq, sch)
	s.metrics.RecordRequest(ctx, path.String(), dreq.Domain, dreq.Entity, time.Since(start), resultLen(result), err)
	if err != nil {
		slog.Error("generation failed",
			"request_id", requestID,
			"path", path.String(),
			"error", err,
		)
		return failResponse(requestID, err.Error()), nil
	}

	s.scoreCoherence(ctx, dreq, result)
	s.recordTokens(ctx, result)

	data, err := record.MarshalList(result.Records, "  ")
	if err != nil {
		return failResponse(requestID, fmt.Sprintf("failed to serialize records: %v", err)), nil
	}

	slog.Info("generation complete",
		"request_id", requestID,
		"path", path.String(),
		"entity", dreq.Entity,
		"count", len(result.Records),
		"duration_ms", float64(time.Since(start).Microseconds())/1000,
	)

	return &pb.GenerateResponse{
		RequestId:   requestID,
		Success:     true,
		Data:        data,
		RecordCount: int32(len(result.Records)),
		Metadata:    metadataToProto(result.Metadata, scenarioCounts(result.Records)),
	}, nil
}

func (s *Service) GenerateDataStream(req *pb.GenerateRequest, stream grpc.ServerStreamingServer[pb.DataChunk]) error {
	ctx := stream.Context()
	requestID := req.GetRequestId()
	if requestID == "" {
		requestID = uuid.NewString()
	}

	if req.GetCount() <= 0 {
		return sendErrorChunk(stream, requestID, 0, "count must be positive")
	}

	dreq := requestFromProto(req)
	dreq.RequestID = requestID

	sch, err := s.resolveSchema(req, dreq)
	if err != nil {
		return sendErrorChunk(stream, requestID, 0, err.Error())
	}

	start := time.Now()
	result, path, err := s.execute(ctx, dreq, sch)
	s.metrics.RecordRequest(ctx, path.String(), dreq.Domain, dreq.Entity, time.Since(start), resultLen(result), err)
	if err != nil {
		slog.Error("streaming generation failed",
			"request_id", requestID,
			"path", path.String(),
			"error", err,
		)
		return sendErrorChunk(stream, requestID, 0, err.Error())
	}

	s.scoreCoherence(ctx, dreq, result)
	s.recordTokens(ctx, result)

	batchSize := s.batchSize()
	chunkIndex := int32(0)
	for offset := 0; offset < len(result.Records); offset += batchSize {
		end := offset + batchSize
		if end > len(result.Records) {
			end = len(result.Records)
		}

		data, err := record.MarshalList(result.Records[offset:end], "")
		if err != nil {
			return sendErrorChunk(stream, requestID, chunkIndex, fmt.Sprintf("failed to serialize batch: %v", err))
		}
		if err := stream.Send(&pb.DataChunk{
			RequestId:  requestID,
			Data:       data,
			ChunkIndex: chunkIndex,
			IsFinal:    false,
		}); err != nil {
			return err
		}
		chunkIndex++
	}

	slog.Info("streaming generation complete",
		"request_id", requestID,
		"path", path.String(),
		"count", len(result.Records),
		"chunks", chunkIndex,
	)

	return stream.Send(&pb.DataChunk{
		RequestId:  requestID,
		ChunkIndex: chunkIndex,
		IsFinal:    true,
	})
}

// execute routes the request and dispatches the chosen generator, applying
// the fallback ladder. The returned method is the path that actually
// produced the records.
func (s *Service) execute(ctx context.Context, req *generate.Request, sch *schema.Schema) (*generate.Result, generate.Method, error) {
	decision := s.router.Route(req)
	slog.Info("routing decision",
		"request_id", req.RequestID,
		"path", decision.Path.String(),
		"confidence", decision.Confidence,
		"reason", decision.Reason,
	)

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, decision.Path, err
	}
	defer s.sem.Release(1)

	switch decision.Path {
	case generate.MethodLLM:
		if s.llm == nil {
			return nil, decision.Path, fmt.Errorf("no LLM provider configured")
		}
		result, err := s.llm.Generate(ctx, req, sch)
		return result, generate.MethodLLM, err

	case generate.MethodRetrieval:
		result, err := s.runRetrieval(ctx, req, sch)
		if err != nil {
			slog.Warn("retrieval unavailable, falling back to synthetic",
				"request_id", req.RequestID,
				"error", err,
			)
			result, err = s.synthetic.Generate(ctx, req, sch)
			return result, generate.MethodSynthetic, err
		}
		if len(result.Records) == 0 {
			slog.Warn("retrieval found no patterns, falling back to synthetic",
				"request_id", req.RequestID,
			)
			result, err = s.synthetic.Generate(ctx, req, sch)
			return result, generate.MethodSynthetic, err
		}
		return result, generate.MethodRetrieval, nil

	case generate.MethodHybrid:
		return s.runHybrid(ctx, req, sch)

	default:
		if recs := s.pooledRecords(ctx, req, sch); recs != nil {
			return &generate.Result{
				Records: recs,
				Metadata: map[string]any{
					generate.MetaPath:     generate.MethodSynthetic.String(),
					generate.MetaPoolUsed: true,
				},
			}, generate.MethodSynthetic, nil
		}
		result, err := s.synthetic.Generate(ctx, req, sch)
		return result, generate.MethodSynthetic, err
	}
}

// pooledRecords serves plain default requests from the pre-generated Redis
// pool. Requests carrying scenarios, constraints, or defect shaping always
// generate fresh data. A short pool is left untouched for later top-up.
func (s *Service) pooledRecords(ctx context.Context, req *generate.Request, sch *schema.Schema) []*record.Record {
	if s.cache == nil || !s.cache.Enabled() {
		return nil
	}
	if len(req.Scenarios) > 0 || len(req.Constraints) > 0 || req.DefectTriggering {
		return nil
	}

	if s.cache.PoolSize(ctx, req.Entity) < req.Count {
		s.metrics.RecordCacheLookup(ctx, false)
		return nil
	}
	maps := s.cache.GetFromPool(ctx, req.Entity, req.Count)
	if len(maps) < req.Count {
		s.metrics.RecordCacheLookup(ctx, false)
		return nil
	}
	s.metrics.RecordCacheLookup(ctx, true)

	var order []string
	if sch != nil {
		order = sch.Fields.Names()
	}
	recs := make([]*record.Record, 0, req.Count)
	for i, m := range maps[:req.Count] {
		rec := record.FromMap(m, order)
		rec.Set(record.KeyScenario, "default")
		rec.Set(record.KeyIndex, i)
		recs = append(recs, rec)
	}

	slog.Info("served records from pool",
		"request_id", req.RequestID,
		"entity", req.Entity,
		"count", len(recs),
	)
	return recs
}

func (s *Service) runRetrieval(ctx context.Context, req *generate.Request, sch *schema.Schema) (*generate.Result, error) {
	if s.retrieval == nil || s.store == nil {
		return nil, fmt.Errorf("retrieval store not configured")
	}
	if err := s.store.Connect(ctx); err != nil {
		return nil, fmt.Errorf("retrieval store connect failed: %w", err)
	}
	defer s.store.Disconnect()

	return s.retrieval.Generate(ctx, req, sch)
}

// runHybrid opens the store for the hybrid pass. When the store is absent
// or unreachable the request degrades to the LLM path, matching the
// retrieval-to-synthetic fallback one level up.
func (s *Service) runHybrid(ctx context.Context, req *generate.Request, sch *schema.Schema) (*generate.Result, generate.Method, error) {
	if s.llm == nil {
		return nil, generate.MethodHybrid, fmt.Errorf("no LLM provider configured")
	}

	if s.hybrid == nil || s.store == nil {
		result, err := s.llm.Generate(ctx, req, sch)
		return result, generate.MethodLLM, err
	}
	if err := s.store.Connect(ctx); err != nil {
		slog.Warn("retrieval store unavailable for hybrid, using LLM only",
			"request_id", req.RequestID,
			"error", err,
		)
		result, err := s.llm.Generate(ctx, req, sch)
		return result, generate.MethodLLM, err
	}
	defer s.store.Disconnect()

	result, err := s.hybrid.Generate(ctx, req, sch)
	return result, generate.MethodHybrid, err
}

// resolveSchema applies the precedence inline > registry-by-name > entity
// lookup. A bad inline document fails the request; a missing schema only
// logs, generation proceeds schemaless.
func (s *Service) resolveSchema(req *pb.GenerateRequest, dreq *generate.Request) (*schema.Schema, error) {
	if inline := req.GetInlineSchema(); inline != "" {
		sch, err := schema.ParseJSON([]byte(inline))
		if err != nil {
			return nil, fmt.Errorf("invalid inline schema: %v", err)
		}
		if sch.Name != "" {
			if err := s.registry.Register(sch); err != nil {
				slog.Debug("inline schema not registered", "name", sch.Name, "error", err)
			}
		}
		return sch, nil
	}

	if name := req.GetSchema().GetPredefinedSchema(); name != "" {
		if sch, ok := s.registry.Get(name); ok {
			return sch, nil
		}
		slog.Warn("predefined schema not found", "request_id", dreq.RequestID, "schema", name)
		return nil, nil
	}

	if sch, ok := s.registry.Get(dreq.Entity); ok {
		return sch, nil
	}
	slog.Warn("no schema for entity, generating without one",
		"request_id", dreq.RequestID,
		"entity", dreq.Entity,
	)
	return nil, nil
}

// scoreCoherence overwrites the metadata score with the mean score across
// all records. Entities without a dedicated scorer get the neutral score.
func (s *Service) scoreCoherence(ctx context.Context, req *generate.Request, result *generate.Result) {
	if result == nil || len(result.Records) == 0 {
		return
	}

	total := 0.0
	for _, rec := range result.Records {
		total += s.scorer.Score(rec.Map(), req.Entity)
	}
	mean := total / float64(len(result.Records))

	if result.Metadata == nil {
		result.Metadata = map[string]any{}
	}
	result.Metadata[generate.MetaCoherence] = mean
	s.metrics.RecordCoherence(ctx, req.Entity, mean)
}

func (s *Service) recordTokens(ctx context.Context, result *generate.Result) {
	if result == nil {
		return
	}
	tokens, ok := asInt(result.Metadata[generate.MetaTokens])
	if !ok || tokens <= 0 {
		return
	}
	provider, _ := result.Metadata[generate.MetaProvider].(string)
	s.metrics.RecordLLMTokens(ctx, provider, tokens)
}

func (s *Service) maxSyncRecords() int {
	if s.cfg != nil && s.cfg.MaxSyncRecords > 0 {
		return s.cfg.MaxSyncRecords
	}
	return 1000
}

func (s *Service) batchSize() int {
	if s.cfg != nil && s.cfg.DefaultBatchSize > 0 {
		return s.cfg.DefaultBatchSize
	}
	return 50
}

func resultLen(result *generate.Result) int {
	if result == nil {
		return 0
	}
	return len(result.Records)
}

func scenarioCounts(records []*record.Record) map[string]int32 {
	if len(records) == 0 {
		return nil
	}
	counts := make(map[string]int32)
	for _, rec := range records {
		name := "default"
		if v, ok := rec.Get(record.KeyScenario); ok {
			if s, ok := v.(string); ok && s != "" {
				name = s
			}
		}
		counts[name]++
	}
	return counts
}

func failResponse(requestID, message string) *pb.GenerateResponse {
	return &pb.GenerateResponse{
		RequestId: requestID,
		Success:   false,
		Error:     message,
	}
}

func sendErrorChunk(stream grpc.ServerStreamingServer[pb.DataChunk], requestID string, index int32, message string) error {
	payload, _ := json.Marshal(map[string]string{"error": message})
	return stream.Send(&pb.DataChunk{
		RequestId:  requestID,
		Data:       string(payload),
		ChunkIndex: index,
		IsFinal:    true,
	})
}
