package charts

import (
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// buildMethanolAllocation builds the gasoline-blending vs MTO split pie.
func (cg *ChartGenerator) buildMethanolAllocation(m *schema.MetricSet, lang Lang) (figure, error) {
	var labels []string
	if lang == LangAR {
		labels = []string{"مزج البنزين", "تحويل MTO"}
	} else {
		labels = []string{"Gasoline Blending", "MTO Conversion"}
	}

	values := []float64{m.MTOEconomics.MethanolInGasoline, m.MTOEconomics.MethanolForMTO}

	trace := map[string]interface{}{
		"type":   "pie",
		"labels": labels,
		"values": values,
		"hole":   0.5,
		"marker": map[string]interface{}{
			"colors": []string{colorSecondary, colorAccent},
			"line":   map[string]interface{}{"color": "white", "width": 2},
		},
		"textinfo":      "percent+label",
		"textposition":  "outside",
		"textfont":      interFont(12, colorLight),
		"hovertemplate": "<b>%{label}</b><br>%{value:,.0f} t/y<br>%{percent}<extra></extra>",
	}

	layout := baseLayout(300)
	layout["showlegend"] = false
	layout["margin"] = margins(30, 30, 20, 20)

	return figure{Data: []interface{}{trace}, Layout: layout}, nil
}
