package generate

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/qaforge/datagen/pkg/record"
	"github.com/qaforge/datagen/pkg/schema"
)

var randomFormatRe = regexp.MustCompile(`\{random:(\d+)\}`)

// SyntheticGenerator produces records directly from the schema using a
// faker and per-field heuristics. It is the fastest path and the universal
// fallback; every request is supported.
type SyntheticGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

func NewSyntheticGenerator() *SyntheticGenerator {
	return NewSyntheticGeneratorSeeded(time.Now().UnixNano())
}

// NewSyntheticGeneratorSeeded pins the random source, used by tests for
// reproducible output.
func NewSyntheticGeneratorSeeded(seed int64) *SyntheticGenerator {
	return &SyntheticGenerator{
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (g *SyntheticGenerator) Supports(*Request) bool {
	return true
}

func (g *SyntheticGenerator) Generate(ctx context.Context, req *Request, s *schema.Schema) (*Result, error) {
	start := time.Now()

	if s == nil {
		s = &schema.Schema{
			Name:   "generic",
			Domain: req.Domain,
			Fields: schema.NewFieldMap(),
		}
	}

	var records []*record.Record
	for _, bucket := range scenarioDistribution(req) {
		for i := 0; i < bucket.Count; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rec := g.generateRecord(s, bucket.Overrides)
			rec.Set(record.KeyScenario, bucket.Name)
			records = append(records, rec)
		}
	}
	stampIndexes(records)

	durationMS := float64(time.Since(start).Microseconds()) / 1000
	slog.Info("synthetic generation complete",
		"request_id", req.RequestID,
		"count", len(records),
		"duration_ms", durationMS,
	)

	return &Result{
		Records: records,
		Metadata: map[string]any{
			MetaPath:   MethodSynthetic.String(),
			MetaTimeMS: durationMS,
		},
	}, nil
}

type scenarioBucket struct {
	Name      string
	Count     int
	Overrides map[string]string
}

// scenarioDistribution returns one bucket per scenario, or a single
// default bucket covering the whole count. A mismatch between the scenario
// sum and the requested count is logged and the scenario counts win.
func scenarioDistribution(req *Request) []scenarioBucket {
	if len(req.Scenarios) == 0 {
		return []scenarioBucket{{Name: "default", Count: req.Count}}
	}

	buckets := make([]scenarioBucket, 0, len(req.Scenarios))
	total := 0
	for _, sc := range req.Scenarios {
		buckets = append(buckets, scenarioBucket{Name: sc.Name, Count: sc.Count, Overrides: sc.Overrides})
		total += sc.Count
	}
	if total != req.Count {
		slog.Warn("scenario count mismatch", "expected", req.Count, "actual", total)
	}
	return buckets
}

// stampIndexes writes sequential _index values across the whole list.
func stampIndexes(records []*record.Record) {
	for i, rec := range records {
		rec.Set(record.KeyIndex, i)
	}
}

func (g *SyntheticGenerator) generateRecord(s *schema.Schema, overrides map[string]string) *record.Record {
	rec := record.New()
	for _, name := range s.Fields.Names() {
		def, _ := s.Fields.Get(name)

		if v, ok := overrides[name]; ok {
			rec.Set(name, v)
			continue
		}
		rec.Set(name, g.fieldValue(name, def))
	}
	return rec
}

func (g *SyntheticGenerator) fieldValue(name string, def *schema.FieldDef) any {
	switch def.Type {
	case schema.TypeString:
		return g.stringValue(name, def)
	case schema.TypeInteger:
		return g.intValue(def)
	case schema.TypeFloat:
		return g.floatValue(def)
	case schema.TypeBoolean:
		return g.faker.Bool()
	case schema.TypeDate:
		return g.faker.DateRange(startOfYear(), time.Now()).Format("2006-01-02")
	case schema.TypeDateTime:
		return g.faker.DateRange(startOfYear(), time.Now()).Format(time.RFC3339)
	case schema.TypeEmail:
		return g.faker.Email()
	case schema.TypePhone:
		return g.faker.Phone()
	case schema.TypeAddress:
		addr := g.faker.Address()
		return fmt.Sprintf("%s, %s, %s %s", addr.Street, addr.City, addr.State, addr.Zip)
	case schema.TypeUUID:
		return g.faker.UUID()
	case schema.TypeEnum:
		return g.enumValue(def)
	case schema.TypeObject:
		return g.objectValue(def)
	case schema.TypeArray:
		return g.arrayValue(def)
	default:
		return g.faker.Word()
	}
}

func (g *SyntheticGenerator) stringValue(name string, def *schema.FieldDef) string {
	if def.Format != "" {
		return g.applyFormat(def.Format)
	}

	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "name"):
		if strings.Contains(lower, "first") {
			return g.faker.FirstName()
		}
		if strings.Contains(lower, "last") {
			return g.faker.LastName()
		}
		return g.faker.Name()
	case strings.Contains(lower, "email"):
		return g.faker.Email()
	case strings.Contains(lower, "phone"):
		return g.faker.Phone()
	case strings.Contains(lower, "address"), strings.Contains(lower, "street"):
		return g.faker.Street()
	case strings.Contains(lower, "city"):
		return g.faker.City()
	case strings.Contains(lower, "state"):
		return g.faker.StateAbr()
	case strings.Contains(lower, "zip"):
		return g.faker.Zip()
	case strings.Contains(lower, "country"):
		if s, ok := def.Default.(string); ok && s != "" {
			return s
		}
		return "US"
	case strings.Contains(lower, "title"):
		return strings.TrimSuffix(g.faker.Sentence(6), ".")
	case strings.Contains(lower, "body"), strings.Contains(lower, "description"):
		return g.faker.Paragraph(1, 3, 10, " ")
	case strings.Contains(lower, "sku"):
		categories := []string{"APP", "HOME", "BEAUTY", "JEWELRY"}
		return fmt.Sprintf("%s-%s", categories[g.rng.Intn(len(categories))], g.faker.Numerify("######"))
	}

	minLen, maxLen := 5, 20
	if def.MinLength != nil {
		minLen = *def.MinLength
	}
	if def.MaxLength != nil {
		maxLen = *def.MaxLength
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	n := minLen
	if maxLen > minLen {
		n += g.rng.Intn(maxLen - minLen + 1)
	}
	return g.faker.LetterN(uint(n))
}

func (g *SyntheticGenerator) intValue(def *schema.FieldDef) int {
	minVal, maxVal := 0, 100
	if def.Min != nil {
		minVal = int(*def.Min)
	}
	if def.Max != nil {
		maxVal = int(*def.Max)
	}
	if maxVal < minVal {
		maxVal = minVal
	}
	return minVal + g.rng.Intn(maxVal-minVal+1)
}

func (g *SyntheticGenerator) floatValue(def *schema.FieldDef) float64 {
	minVal, maxVal := 0.0, 1000.0
	if def.Min != nil {
		minVal = *def.Min
	}
	if def.Max != nil {
		maxVal = *def.Max
	}
	if maxVal < minVal {
		maxVal = minVal
	}
	v := minVal + g.rng.Float64()*(maxVal-minVal)
	return float64(int(v*100+0.5)) / 100
}

// enumValue picks the declared default half the time when one exists.
func (g *SyntheticGenerator) enumValue(def *schema.FieldDef) string {
	if len(def.Values) == 0 {
		return ""
	}
	if s, ok := def.Default.(string); ok && s != "" && g.rng.Float64() < 0.5 {
		return s
	}
	return def.Values[g.rng.Intn(len(def.Values))]
}

func (g *SyntheticGenerator) objectValue(def *schema.FieldDef) map[string]any {
	obj := make(map[string]any)
	for _, name := range def.Fields.Names() {
		nested, _ := def.Fields.Get(name)
		obj[name] = g.fieldValue(name, nested)
	}
	return obj
}

func (g *SyntheticGenerator) arrayValue(def *schema.FieldDef) []any {
	length := 2 + g.rng.Intn(4)
	items := make([]any, 0, length)
	for i := 0; i < length; i++ {
		if def.ItemSchema != nil && def.ItemSchema.Type == schema.TypeObject {
			items = append(items, g.objectValue(def.ItemSchema))
		} else if def.ItemSchema != nil {
			items = append(items, g.fieldValue("item", def.ItemSchema))
		} else {
			items = append(items, g.faker.Word())
		}
	}
	return items
}

// applyFormat expands {year} and {random:N} placeholders.
func (g *SyntheticGenerator) applyFormat(format string) string {
	out := strings.ReplaceAll(format, "{year}", strconv.Itoa(time.Now().Year()))
	out = randomFormatRe.ReplaceAllStringFunc(out, func(match string) string {
		sub := randomFormatRe.FindStringSubmatch(match)
		n, _ := strconv.Atoi(sub[1])
		digits := make([]byte, n)
		for i := range digits {
			digits[i] = byte('0' + g.rng.Intn(10))
		}
		return string(digits)
	})
	return out
}

func startOfYear() time.Time {
	now := time.Now()
	return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
}
