package schema

// Category classifies a knowledge-base entry.
type Category string

const (
	CategoryFeed    Category = "feed"
	CategoryProduct Category = "product"
	CategoryFlare   Category = "flare"
	CategoryFuel    Category = "fuel"
	CategoryOther   Category = "other"
)

// CategoryOrder is the fixed emission order for knowledge-base sections.
var CategoryOrder = []Category{CategoryFeed, CategoryProduct, CategoryFlare, CategoryFuel, CategoryOther}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFeed, CategoryProduct, CategoryFlare, CategoryFuel, CategoryOther:
		return true
	}
	return false
}

// Icon returns the emoji used on card headers for this category.
func (c Category) Icon() string {
	switch c {
	case CategoryFeed:
		return "⛽"
	case CategoryProduct:
		return "🧪"
	case CategoryFlare:
		return "🔥"
	case CategoryFuel:
		return "♨️"
	default:
		return "📦"
	}
}

// BilingualText is a label in both supported languages.
type BilingualText struct {
	EN string
	AR string
}

// IsZero reports whether both language variants are empty.
func (b BilingualText) IsZero() bool { return b.EN == "" && b.AR == "" }

// Quantity is a scalar value or a min-max range in a specific unit.
type Quantity struct {
	Value   float64
	Min     float64
	Max     float64
	IsRange bool
	Unit    Unit
}

// Scalar builds a scalar quantity.
func Scalar(value float64, unit Unit) *Quantity {
	return &Quantity{Value: value, Unit: unit}
}

// Range builds a min-max range quantity.
func Range(min, max float64, unit Unit) *Quantity {
	return &Quantity{Min: min, Max: max, IsRange: true, Unit: unit}
}

// Representative returns a single number standing in for the quantity:
// the value itself, or the midpoint for a range.
func (q *Quantity) Representative() float64 {
	if q == nil {
		return 0
	}
	if q.IsRange {
		return (q.Min + q.Max) / 2
	}
	return q.Value
}

// AnnualTonnes converts the quantity's representative value to t/y.
func (q *Quantity) AnnualTonnes() float64 {
	if q == nil {
		return 0
	}
	v := q.Representative()
	switch q.Unit {
	case KilogramsPerHour:
		return HourlyKgToAnnualTonnes(v)
	case TonnesPerHour:
		return AnnualizeHourly(v)
	default:
		return v
	}
}

// HourlyTonnes converts the quantity's representative value to t/h.
func (q *Quantity) HourlyTonnes() float64 {
	if q == nil {
		return 0
	}
	v := q.Representative()
	switch q.Unit {
	case KilogramsPerHour:
		return KilogramsToTonnes(v)
	case TonnesPerHour:
		return v
	default:
		return HourlyFromAnnual(v)
	}
}

// CompositionItem is one component share of an entry, in percent.
// Min == Max for a scalar share.
type CompositionItem struct {
	Name string
	Min  float64
	Max  float64
}

// IsRange reports whether the share is a range rather than a point value.
func (c CompositionItem) IsRange() bool { return c.Min != c.Max }

// OperatingConditions carries the descriptive process conditions of an
// entry. All fields are free-text literals from the study.
type OperatingConditions struct {
	Pressure    string
	Temperature string
	Phase       string
}

// Routing describes where a stream comes from and where it goes.
type Routing struct {
	From BilingualText
	To   BilingualText
}

// KnowledgeEntry is one documented process item: a feed, product, flare,
// fuel stream, or other gas. Optional fields are nil/empty when the study
// has nothing to say; the renderer omits the corresponding card section.
type KnowledgeEntry struct {
	ID            string
	Name          BilingualText
	Category      Category
	Design        *Quantity
	Actual        *Quantity
	Composition   []CompositionItem
	Conditions    *OperatingConditions
	Routing       *Routing
	Comment       BilingualText // markdown
	DefinitionKey string
	Notes         []BilingualText // descriptive bullet list for non-quantitative entries
}

// Utilization returns the actual/design capacity percentage for the
// entry, clamped to [0, 100]. Entries missing either quantity report 0.
func (e *KnowledgeEntry) Utilization() float64 {
	if e.Design == nil || e.Actual == nil {
		return 0
	}
	// Compare in a common unit so mixed-unit entries stay meaningful.
	return Utilization(e.Actual.AnnualTonnes(), e.Design.AnnualTonnes())
}

// HasQuantities reports whether the entry carries any quantitative data.
func (e *KnowledgeEntry) HasQuantities() bool {
	return e.Design != nil || e.Actual != nil
}

// CountByCategory tallies entries per category.
func CountByCategory(entries []KnowledgeEntry) map[Category]int {
	counts := make(map[Category]int, len(CategoryOrder))
	for i := range entries {
		counts[entries[i].Category]++
	}
	return counts
}
