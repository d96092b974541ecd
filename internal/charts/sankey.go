package charts

import (
	"fmt"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// Sankey topology: feed streams fan out into recovery stages which merge
// into net value, with methanol and MTO as intermediate nodes. Link
// values are rounded study figures in kt/y or $M, good enough for ribbon
// widths.
var (
	sankeySource = []int{0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 5, 6, 7, 8, 9, 10}
	sankeyTarget = []int{4, 5, 6, 4, 5, 6, 7, 4, 5, 8, 4, 5, 6, 11, 11, 11, 11, 9, 10, 11}
	sankeyValue  = []float64{7.5, 7.6, 7.2, 16, 36, 11, 46, 13, 9, 25, 2.5, 7, 2.3, 79, 91, 13, 24, 224, 101, 60}

	sankeyNodeColors = []string{
		colorFlare, colorFlare, colorFlare, colorFlare,
		colorPrimary, colorSecondary, colorSecondary, colorPrimary,
		colorViolet, colorAccent, colorAccent, colorSuccess,
	}
)

// buildSankey builds the material and value flow diagram.
func (cg *ChartGenerator) buildSankey(m *schema.MetricSet, lang Lang) (figure, error) {
	var labels []string
	if lang == LangAR {
		labels = []string{
			"غاز الشعلة", "غاز المصفاة", "PSA + كنس", "بنيكس",
			"استرداد H2", "استرداد LPG", "استرداد C5+", "استرداد C2",
			"CO/CO2", "ميثانول", "منتجات MTO", "القيمة الصافية",
		}
	} else {
		labels = []string{
			"Flare Gas", "Refinery Gas", "PSA + Sweep", "Penex",
			"H2 Recovery", "LPG Recovery", "C5+ Recovery", "C2 Recovery",
			"CO/CO2", "Methanol", "MTO Products", "Net Value",
		}
	}

	if err := validateSankeyLinks(len(labels)); err != nil {
		return figure{}, err
	}

	trace := map[string]interface{}{
		"type": "sankey",
		"node": map[string]interface{}{
			"pad":       20,
			"thickness": 25,
			"line":      map[string]interface{}{"color": "white", "width": 2},
			"label":     labels,
			"color":     sankeyNodeColors,
		},
		"link": map[string]interface{}{
			"source": sankeySource,
			"target": sankeyTarget,
			"value":  sankeyValue,
			"color":  "rgba(100,100,100,0.15)",
		},
	}

	layout := baseLayout(400)
	delete(layout, "plot_bgcolor") // sankey has no plot area
	layout["margin"] = margins(20, 20, 10, 10)
	layout["font"] = interFont(12, colorLight)

	return figure{Data: []interface{}{trace}, Layout: layout}, nil
}

// validateSankeyLinks rejects malformed link tables before they reach the
// browser, where Plotly would fail silently with an empty diagram.
func validateSankeyLinks(nodeCount int) error {
	if len(sankeySource) != len(sankeyTarget) || len(sankeySource) != len(sankeyValue) {
		return fmt.Errorf("sankey link arrays have mismatched lengths: %d/%d/%d",
			len(sankeySource), len(sankeyTarget), len(sankeyValue))
	}
	for i := range sankeySource {
		if sankeySource[i] < 0 || sankeySource[i] >= nodeCount {
			return fmt.Errorf("sankey link %d: source index %d out of range", i, sankeySource[i])
		}
		if sankeyTarget[i] < 0 || sankeyTarget[i] >= nodeCount {
			return fmt.Errorf("sankey link %d: target index %d out of range", i, sankeyTarget[i])
		}
		if sankeyValue[i] <= 0 {
			return fmt.Errorf("sankey link %d: non-positive value %f", i, sankeyValue[i])
		}
	}
	return nil
}
