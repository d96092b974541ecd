package charts

import (
	"fmt"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// buildPhaseDonut builds the phase value distribution donut. The center
// annotation carries the total net value in $M.
func (cg *ChartGenerator) buildPhaseDonut(m *schema.MetricSet, lang Lang) (figure, error) {
	var labels []string
	if lang == LangAR {
		labels = []string{"المرحلة 1+2: استرداد الغاز", "المرحلة 3+4: الميثانول"}
	} else {
		labels = []string{"Phase 1+2: Gas Recovery", "Phase 3+4: Methanol & MTO"}
	}

	values := []float64{m.Summary.Phase12Net, m.Summary.Phase34Net}
	total := values[0] + values[1]

	trace := map[string]interface{}{
		"type":   "pie",
		"labels": labels,
		"values": values,
		"hole":   0.65,
		"marker": map[string]interface{}{
			"colors": []string{colorSecondary, colorAccent},
			"line":   map[string]interface{}{"color": "white", "width": 3},
		},
		"textinfo":      "percent",
		"textfont":      interFont(16, "white"),
		"hovertemplate": "<b>%{label}</b><br>$%{value:,.0f}<br>%{percent}<extra></extra>",
		"direction":     "clockwise",
		"sort":          false,
	}

	layout := baseLayout(320)
	layout["showlegend"] = true
	layout["legend"] = map[string]interface{}{
		"orientation": "h", "yanchor": "bottom", "y": -0.2,
		"xanchor": "center", "x": 0.5,
		"font": interFont(12, colorLight),
	}
	layout["annotations"] = []interface{}{
		map[string]interface{}{
			"text":      fmt.Sprintf("<b>$%.0fM</b>", total/1e6),
			"x":         0.5,
			"y":         0.5,
			"font":      interFont(28, colorLight),
			"showarrow": false,
		},
	}
	layout["margin"] = margins(20, 70, 20, 20)

	return figure{Data: []interface{}{trace}, Layout: layout}, nil
}
