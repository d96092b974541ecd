package charts

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// decodeFigure unmarshals a snippet's JSON back into data/layout for
// assertions.
func decodeFigure(t *testing.T, raw string) (data []map[string]interface{}, layout map[string]interface{}) {
	t.Helper()
	var fig struct {
		Data   []map[string]interface{} `json:"data"`
		Layout map[string]interface{}   `json:"layout"`
	}
	if err := json.Unmarshal([]byte(raw), &fig); err != nil {
		t.Fatalf("figure JSON does not parse: %v", err)
	}
	return fig.Data, fig.Layout
}

func TestGenerateAll(t *testing.T) {
	cg := NewChartGenerator()
	cs, err := cg.GenerateAll(schema.LoadMetrics())
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}

	snippets := cs.All()
	if len(snippets) != 9 {
		t.Fatalf("expected 9 charts, got %d", len(snippets))
	}

	seen := map[string]bool{}
	for _, s := range snippets {
		if s.Key == "" || s.DivID == "" {
			t.Errorf("snippet missing key or div id: %+v", s)
		}
		if seen[s.Key] {
			t.Errorf("duplicate chart key %q", s.Key)
		}
		seen[s.Key] = true

		// Both language variants must be valid standalone figures.
		decodeFigure(t, s.FigureEN)
		decodeFigure(t, s.FigureAR)
	}
}

func TestGenerateAllNilMetrics(t *testing.T) {
	if _, err := NewChartGenerator().GenerateAll(nil); err == nil {
		t.Error("nil metric set should be rejected")
	}
}

func TestPhaseDonut(t *testing.T) {
	m := schema.LoadMetrics()
	fig, err := NewChartGenerator().buildPhaseDonut(m, LangEN)
	if err != nil {
		t.Fatalf("buildPhaseDonut failed: %v", err)
	}

	trace := fig.Data[0].(map[string]interface{})
	values := trace["values"].([]float64)
	if len(values) != 2 {
		t.Fatalf("expected 2 donut segments, got %d", len(values))
	}
	if values[0]+values[1] != m.Summary.Phase12Net+m.Summary.Phase34Net {
		t.Error("donut segments do not sum to the phase totals")
	}
	if trace["hole"] != 0.65 {
		t.Errorf("expected hole 0.65, got %v", trace["hole"])
	}

	// Center annotation shows the total in $M.
	anns := fig.Layout["annotations"].([]interface{})
	center := anns[0].(map[string]interface{})["text"].(string)
	if !strings.Contains(center, "$196M") {
		t.Errorf("center annotation should show $196M, got %q", center)
	}
}

func TestProductBarsOrderAndColors(t *testing.T) {
	fig, err := NewChartGenerator().buildProductBars(schema.LoadMetrics(), LangEN)
	if err != nil {
		t.Fatalf("buildProductBars failed: %v", err)
	}
	trace := fig.Data[0].(map[string]interface{})

	products := trace["y"].([]string)
	if len(products) != 7 || products[0] != "LPG (C3+C4)" || products[6] != "Propylene (MTO)" {
		t.Errorf("unexpected product order: %v", products)
	}

	values := trace["x"].([]float64)
	if values[0] < values[1] {
		t.Error("LPG should carry the largest value")
	}

	colors := trace["marker"].(map[string]interface{})["color"].([]string)
	if colors[0] != colorSecondary || colors[2] != colorPrimary || colors[4] != colorAccent {
		t.Errorf("phase color grouping broken: %v", colors)
	}
}

func TestCostBenefitPhase34HasNoCost(t *testing.T) {
	fig, err := NewChartGenerator().buildCostBenefitBars(schema.LoadMetrics(), LangEN)
	if err != nil {
		t.Fatalf("buildCostBenefitBars failed: %v", err)
	}
	if len(fig.Data) != 3 {
		t.Fatalf("expected 3 trace groups, got %d", len(fig.Data))
	}
	costBar := fig.Data[1].(map[string]interface{})
	y := costBar["y"].([]float64)
	if y[1] != 0 {
		t.Errorf("phase 3+4 NG cost should be zero, got %f", y[1])
	}
}

func TestSankeyLinkValidation(t *testing.T) {
	fig, err := NewChartGenerator().buildSankey(schema.LoadMetrics(), LangAR)
	if err != nil {
		t.Fatalf("buildSankey failed: %v", err)
	}
	trace := fig.Data[0].(map[string]interface{})
	node := trace["node"].(map[string]interface{})
	if n := len(node["label"].([]string)); n != 12 {
		t.Errorf("expected 12 sankey nodes, got %d", n)
	}

	// Too few nodes for the link table must be rejected.
	if err := validateSankeyLinks(5); err == nil {
		t.Error("link indices beyond the node count should fail validation")
	}
}

func TestGaugeRejectsOutOfRange(t *testing.T) {
	cg := NewChartGenerator()
	for _, bad := range []float64{-0.1, 1.01, 2} {
		if _, err := cg.buildGauge(bad, LangEN); err == nil {
			t.Errorf("fraction %f should be rejected", bad)
		}
	}

	fig, err := cg.buildGauge(0.7058, LangEN)
	if err != nil {
		t.Fatalf("valid fraction rejected: %v", err)
	}
	trace := fig.Data[0].(map[string]interface{})
	if v := trace["value"].(float64); v < 70.57 || v > 70.59 {
		t.Errorf("gauge should display 70.58, got %f", v)
	}
}

func TestHeatmapZeroRowStaysAligned(t *testing.T) {
	m := schema.LoadMetrics()
	// Zero out one component entirely; the heatmap must keep its row.
	m.StreamComponents["CO"] = []float64{0, 0, 0, 0, 0, 0}

	fig, err := NewChartGenerator().buildStreamHeatmap(m, LangEN)
	if err != nil {
		t.Fatalf("buildStreamHeatmap failed: %v", err)
	}
	trace := fig.Data[0].(map[string]interface{})
	z := trace["z"].([][]float64)
	if len(z) != len(m.ComponentOrder) {
		t.Fatalf("expected %d rows, got %d", len(m.ComponentOrder), len(z))
	}
	coRow := z[6] // CO is seventh in component order
	for _, v := range coRow {
		if v != 0 {
			t.Errorf("zeroed component should produce a zero row, got %v", coRow)
		}
	}

	text := trace["text"].([][]string)
	for _, cell := range text[6] {
		if cell != "" {
			t.Errorf("zero cells should carry no label, got %q", cell)
		}
	}
}

func TestHeatmapMissingComponentFails(t *testing.T) {
	m := schema.LoadMetrics()
	delete(m.StreamComponents, "C4")
	if _, err := NewChartGenerator().buildStreamHeatmap(m, LangEN); err == nil {
		t.Error("missing component row should be an error")
	}
}

func TestMethanolAllocationSplit(t *testing.T) {
	m := schema.LoadMetrics()
	fig, err := NewChartGenerator().buildMethanolAllocation(m, LangEN)
	if err != nil {
		t.Fatalf("buildMethanolAllocation failed: %v", err)
	}
	trace := fig.Data[0].(map[string]interface{})
	values := trace["values"].([]float64)
	total := values[0] + values[1]
	if diff := total - m.MethanolSynthesis.TotalMethanol; diff > 0.01 || diff < -0.01 {
		t.Errorf("allocation segments %f do not sum to total methanol %f", total, m.MethanolSynthesis.TotalMethanol)
	}
}

func TestLanguageVariantsDiffer(t *testing.T) {
	s, err := bilingual("donut", "chart-donut", func(lang Lang) (figure, error) {
		return NewChartGenerator().buildPhaseDonut(schema.LoadMetrics(), lang)
	})
	if err != nil {
		t.Fatalf("bilingual build failed: %v", err)
	}
	if s.FigureEN == s.FigureAR {
		t.Error("EN and AR figures should carry different labels")
	}
	if !strings.Contains(s.FigureAR, "المرحلة") {
		t.Error("AR figure should contain Arabic labels")
	}
}
