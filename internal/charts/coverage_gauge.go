package charts

import "fmt"

// buildGauge builds a percentage gauge from a fraction in [0, 1]. The
// band steps mark the usual traffic-light thresholds at 50 and 75.
// Fractions outside the unit interval are data errors and are rejected
// rather than clamped into a misleading needle position.
func (cg *ChartGenerator) buildGauge(fraction float64, lang Lang) (figure, error) {
	if fraction < 0 || fraction > 1 {
		return figure{}, fmt.Errorf("gauge fraction %f outside [0, 1]", fraction)
	}

	trace := map[string]interface{}{
		"type":  "indicator",
		"mode":  "gauge+number",
		"value": fraction * 100,
		"number": map[string]interface{}{
			"suffix": "%",
			"font":   interFont(36, colorLight),
		},
		"gauge": map[string]interface{}{
			"axis": map[string]interface{}{
				"range":     []int{0, 100},
				"tickwidth": 2,
				"tickcolor": colorLight,
				"tickfont":  font(10, colorLight),
			},
			"bar":         map[string]interface{}{"color": colorSecondary, "thickness": 0.8},
			"bgcolor":     "rgba(0,0,0,0.05)",
			"borderwidth": 0,
			"steps": []interface{}{
				map[string]interface{}{"range": []int{0, 50}, "color": "rgba(239,68,68,0.2)"},
				map[string]interface{}{"range": []int{50, 75}, "color": "rgba(245,158,11,0.2)"},
				map[string]interface{}{"range": []int{75, 100}, "color": "rgba(34,197,94,0.2)"},
			},
		},
	}

	layout := baseLayout(200)
	layout["margin"] = margins(20, 10, 20, 20)
	layout["font"] = map[string]interface{}{"family": "Inter", "color": colorLight}

	return figure{Data: []interface{}{trace}, Layout: layout}, nil
}
