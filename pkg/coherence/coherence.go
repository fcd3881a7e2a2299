// Package coherence scores how believable a generated record is. Carts and
// orders get a weighted breakdown of category affinity, quantity sanity,
// arithmetic consistency, and date ordering; other entities score a flat
// neutral value.
package coherence

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"
)

// NeutralScore is returned for entities without a dedicated scorer.
const NeutralScore = 0.7

// categoryGroups lists product names that plausibly belong in one basket.
var categoryGroups = map[string][]string{
	"fitness":    {"running shoes", "athletic socks", "water bottle", "fitness tracker", "gym bag", "yoga mat"},
	"beauty":     {"lipstick", "mascara", "foundation", "brushes", "makeup remover", "face cream"},
	"home":       {"bedding", "pillows", "blankets", "candles", "throw pillows", "sheets"},
	"baby":       {"onesies", "blanket", "stuffed animal", "baby clothes", "diapers", "bottles"},
	"date_night": {"dress", "heels", "clutch", "jewelry", "perfume", "earrings"},
	"office":     {"blazer", "dress shirt", "slacks", "tie", "belt", "dress shoes"},
	"casual":     {"jeans", "t-shirt", "sneakers", "hoodie", "backpack", "cap"},
	"kitchen":    {"cookware", "utensils", "dishes", "glassware", "cutting board", "knives"},
}

type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score rates a record between 0.0 and 1.0 for the given entity type.
func (s *Scorer) Score(data map[string]any, entityType string) float64 {
	switch entityType {
	case "cart":
		return s.ScoreCart(data)
	case "order":
		return s.ScoreOrder(data)
	default:
		return NeutralScore
	}
}

// ScoreCart weights category affinity 0.3, quantities 0.2, math 0.3, and
// dates 0.2.
func (s *Scorer) ScoreCart(cart map[string]any) float64 {
	items := itemList(cart)

	category := scoreCategoryAffinity(items)
	quantities := scoreQuantities(items)
	math := scoreCartMath(cart)
	dates := scoreDates(cart)

	total := category*0.3 + quantities*0.2 + math*0.3 + dates*0.2
	slog.Debug("cart coherence scored",
		"total", total,
		"category_affinity", category,
		"quantities", quantities,
		"math", math,
		"dates", dates,
	)
	return total
}

// ScoreOrder weights math and dates more heavily than carts since orders
// carry shipping and fulfillment timestamps.
func (s *Scorer) ScoreOrder(order map[string]any) float64 {
	items := itemList(order)

	category := scoreCategoryAffinity(items)
	quantities := scoreQuantities(items)
	math := scoreOrderMath(order)
	dates := scoreDates(order)

	total := category*0.25 + quantities*0.15 + math*0.3 + dates*0.3
	slog.Debug("order coherence scored",
		"total", total,
		"category_affinity", category,
		"quantities", quantities,
		"math", math,
		"dates", dates,
	)
	return total
}

func itemList(record map[string]any) []map[string]any {
	raw, ok := record["items"].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if m, ok := it.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

// scoreCategoryAffinity checks whether the basket's items cluster into any
// single affinity group. Single-item baskets are coherent by definition.
func scoreCategoryAffinity(items []map[string]any) float64 {
	if len(items) < 2 {
		return 1.0
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.ToLower(stringField(item, "name"))
		if name == "" {
			name = strings.ToLower(stringField(item, "category"))
		}
		names = append(names, name)
	}

	maxMatch := 0.0
	for _, group := range categoryGroups {
		matches := 0
		for _, name := range names {
			for _, g := range group {
				if strings.Contains(name, g) {
					matches++
					break
				}
			}
		}
		ratio := float64(matches) / float64(len(names))
		if ratio > maxMatch {
			maxMatch = ratio
		}
	}

	switch {
	case maxMatch >= 0.8:
		return 1.0
	case maxMatch >= 0.5:
		return 0.6
	case maxMatch >= 0.3:
		return 0.4
	default:
		// No group match. Still possible, just random-looking.
		return 0.2
	}
}

func scoreQuantities(items []map[string]any) float64 {
	if len(items) == 0 {
		return 1.0
	}

	reasonable := 0.0
	for _, item := range items {
		qty, ok := numberField(item, "quantity")
		if !ok {
			qty = 1
		}
		switch {
		case qty >= 1 && qty <= 10:
			reasonable += 1.0
		case qty > 20:
			reasonable += 0.2
		case qty <= 0:
			// wrong, scores nothing
		default:
			reasonable += 0.7
		}
	}
	return reasonable / float64(len(items))
}

func scoreCartMath(cart map[string]any) float64 {
	subtotal, _ := numberField(cart, "subtotal")
	tax, _ := numberField(cart, "tax")
	total, _ := numberField(cart, "total")

	return scoreTotalDelta(total - (subtotal + tax))
}

func scoreOrderMath(order map[string]any) float64 {
	subtotal, _ := numberField(order, "subtotal")
	tax, _ := numberField(order, "tax")
	shipping, _ := numberField(order, "shipping_cost")
	discount, _ := numberField(order, "discount")
	total, _ := numberField(order, "total")

	return scoreTotalDelta(total - (subtotal + tax + shipping - discount))
}

func scoreTotalDelta(delta float64) float64 {
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta < 0.01:
		return 1.0
	case delta < 1.0:
		return 0.7
	default:
		return 0.0
	}
}

var dateFields = []string{"created_at", "updated_at", "completed_at", "modified_at", "shipped_at"}

func scoreDates(record map[string]any) float64 {
	dates := make(map[string]time.Time)
	for _, field := range dateFields {
		raw, ok := record[field].(string)
		if !ok {
			continue
		}
		if t, err := parseISO(raw); err == nil {
			dates[field] = t
		}
	}

	if len(dates) == 0 {
		return 1.0
	}

	score := 1.0
	if after(dates, "created_at", "updated_at") {
		score -= 0.5
	}
	if after(dates, "updated_at", "completed_at") {
		score -= 0.5
	}
	if after(dates, "created_at", "shipped_at") {
		score -= 0.5
	}
	if score < 0 {
		return 0
	}
	return score
}

// after reports whether both fields parsed and the earlier one is newer.
func after(dates map[string]time.Time, earlier, later string) bool {
	a, okA := dates[earlier]
	b, okB := dates[later]
	return okA && okB && a.After(b)
}

func parseISO(value string) (time.Time, error) {
	value = strings.Replace(value, "Z", "+00:00", 1)
	if t, err := time.Parse("2006-01-02T15:04:05.999999999-07:00", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05-07:00", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func numberField(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
