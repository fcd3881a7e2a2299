package service

import (
	"github.com/qaforge/datagen/pkg/generate"
	"github.com/qaforge/datagen/pkg/pb"
	"github.com/qaforge/datagen/pkg/validate"
)

func requestFromProto(req *pb.GenerateRequest) *generate.Request {
	out := &generate.Request{
		RequestID:        req.GetRequestId(),
		Domain:           req.GetDomain(),
		Entity:           req.GetEntity(),
		Count:            int(req.GetCount()),
		Context:          req.GetContext(),
		Hints:            req.GetHints(),
		LearnFromHistory: req.GetLearnFromHistory(),
		DefectTriggering: req.GetDefectTriggering(),
		ProductionLike:   req.GetProductionLike(),
		Method:           methodFromProto(req.GetGenerationMethod()),
	}

	for _, sc := range req.GetScenarios() {
		out.Scenarios = append(out.Scenarios, generate.Scenario{
			Name:        sc.GetName(),
			Count:       int(sc.GetCount()),
			Description: sc.GetDescription(),
			Overrides:   sc.GetOverrides(),
		})
	}

	if fc := req.GetConstraints().GetFieldConstraints(); len(fc) > 0 {
		out.Constraints = make(map[string]*validate.Constraint, len(fc))
		for name, c := range fc {
			out.Constraints[name] = constraintFromProto(c)
		}
	}

	return out
}

func constraintFromProto(c *pb.FieldConstraint) *validate.Constraint {
	out := &validate.Constraint{
		EnumValues: c.GetEnumValues(),
	}
	if c.Min != nil {
		v := c.GetMin()
		out.Min = &v
	}
	if c.Max != nil {
		v := c.GetMax()
		out.Max = &v
	}
	if c.MinLength != nil {
		v := int(c.GetMinLength())
		out.MinLength = &v
	}
	if c.MaxLength != nil {
		v := int(c.GetMaxLength())
		out.MaxLength = &v
	}
	out.Regex = c.GetRegex()
	out.Format = c.GetFormat()
	return out
}

func methodFromProto(m pb.GenerationMethod) generate.Method {
	switch m {
	case pb.GenerationMethod_SYNTHETIC:
		return generate.MethodSynthetic
	case pb.GenerationMethod_LLM:
		return generate.MethodLLM
	case pb.GenerationMethod_RETRIEVAL:
		return generate.MethodRetrieval
	case pb.GenerationMethod_HYBRID:
		return generate.MethodHybrid
	default:
		return generate.MethodAuto
	}
}

// metadataToProto flattens the generator metadata map into the typed
// response message. Unknown keys are dropped.
func metadataToProto(metadata map[string]any, scenarioCounts map[string]int32) *pb.GenerationMetadata {
	out := &pb.GenerationMetadata{
		ScenarioCounts: scenarioCounts,
	}
	if v, ok := metadata[generate.MetaPath].(string); ok {
		out.GenerationPath = v
	}
	if v, ok := asInt(metadata[generate.MetaTokens]); ok {
		out.LlmTokensUsed = int32(v)
	}
	if v, ok := asFloat(metadata[generate.MetaTimeMS]); ok {
		out.GenerationTimeMs = v
	}
	if v, ok := asFloat(metadata[generate.MetaCoherence]); ok {
		out.CoherenceScore = v
	}
	return out
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
