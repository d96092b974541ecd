package charts

import (
	"fmt"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// ChartGenerator builds the dashboard's Plotly figures from a metric set.
type ChartGenerator struct {
	log *logger.Logger
}

// NewChartGenerator creates a new chart generator.
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{log: logger.NewDefault().WithComponent("charts")}
}

// ChartSet holds every dashboard chart, both language variants each,
// keyed the way the page's chart registry expects them.
type ChartSet struct {
	Donut       ChartSnippet
	Products    ChartSnippet
	CostBenefit ChartSnippet
	Sankey      ChartSnippet
	GaugeMin    ChartSnippet
	GaugeMax    ChartSnippet
	H2Balance   ChartSnippet
	Heatmap     ChartSnippet
	Methanol    ChartSnippet
}

// All returns the snippets in page registration order.
func (cs *ChartSet) All() []ChartSnippet {
	return []ChartSnippet{
		cs.Donut, cs.Products, cs.CostBenefit, cs.Sankey,
		cs.GaugeMin, cs.GaugeMax, cs.H2Balance, cs.Heatmap, cs.Methanol,
	}
}

// GenerateAll builds every chart. The first builder error aborts the run;
// a dashboard with a missing chart is worse than no dashboard.
func (cg *ChartGenerator) GenerateAll(m *schema.MetricSet) (*ChartSet, error) {
	if m == nil {
		return nil, fmt.Errorf("metric set cannot be nil")
	}

	var (
		cs  ChartSet
		err error
	)

	if cs.Donut, err = bilingual("donut", "chart-donut", func(lang Lang) (figure, error) {
		return cg.buildPhaseDonut(m, lang)
	}); err != nil {
		return nil, err
	}

	if cs.Products, err = bilingual("products", "chart-products", func(lang Lang) (figure, error) {
		return cg.buildProductBars(m, lang)
	}); err != nil {
		return nil, err
	}

	if cs.CostBenefit, err = bilingual("costbenefit", "chart-costbenefit", func(lang Lang) (figure, error) {
		return cg.buildCostBenefitBars(m, lang)
	}); err != nil {
		return nil, err
	}

	if cs.Sankey, err = bilingual("sankey", "chart-sankey", func(lang Lang) (figure, error) {
		return cg.buildSankey(m, lang)
	}); err != nil {
		return nil, err
	}

	if cs.GaugeMin, err = bilingual("gaugeMin", "chart-gauge-min", func(lang Lang) (figure, error) {
		return cg.buildGauge(m.EthaneSupply.CoverageMin, lang)
	}); err != nil {
		return nil, err
	}

	if cs.GaugeMax, err = bilingual("gaugeMax", "chart-gauge-max", func(lang Lang) (figure, error) {
		return cg.buildGauge(m.EthaneSupply.CoverageMax, lang)
	}); err != nil {
		return nil, err
	}

	if cs.H2Balance, err = bilingual("h2", "chart-h2", func(lang Lang) (figure, error) {
		return cg.buildH2Balance(m, lang)
	}); err != nil {
		return nil, err
	}

	if cs.Heatmap, err = bilingual("heatmap", "chart-heatmap", func(lang Lang) (figure, error) {
		return cg.buildStreamHeatmap(m, lang)
	}); err != nil {
		return nil, err
	}

	if cs.Methanol, err = bilingual("methanol", "chart-methanol", func(lang Lang) (figure, error) {
		return cg.buildMethanolAllocation(m, lang)
	}); err != nil {
		return nil, err
	}

	cg.log.Info("Generated dashboard charts", map[string]interface{}{"count": len(cs.All())})
	return &cs, nil
}
