package charts

import (
	"fmt"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// buildCostBenefitBars builds the grouped gross/cost/net comparison of the
// two phase groups. Phase 3+4 has no natural gas makeup cost, so its cost
// bar is pinned at zero.
func (cg *ChartGenerator) buildCostBenefitBars(m *schema.MetricSet, lang Lang) (figure, error) {
	var categories, legend []string
	var yaxisTitle string
	if lang == LangAR {
		categories = []string{"المرحلة 1+2", "المرحلة 3+4"}
		legend = []string{"القيمة الإجمالية", "تكلفة الغاز الطبيعي", "القيمة الصافية"}
		yaxisTitle = "القيمة (مليون $)"
	} else {
		categories = []string{"Phase 1+2", "Phase 3+4"}
		legend = []string{"Gross Value", "NG Makeup Cost", "Net Value"}
		yaxisTitle = "Value ($ Million)"
	}

	grossBar := map[string]interface{}{
		"type":         "bar",
		"name":         legend[0],
		"x":            categories,
		"y":            []float64{m.Summary.Phase12Gross / 1e6, m.MTOEconomics.Phase34Net / 1e6},
		"marker":       map[string]interface{}{"color": colorSuccess},
		"text":         []string{fmt.Sprintf("$%.0fM", m.Summary.Phase12Gross/1e6), fmt.Sprintf("$%.0fM", m.MTOEconomics.Phase34Net/1e6)},
		"textposition": "outside",
		"textfont":     font(12, colorLight),
	}

	costBar := map[string]interface{}{
		"type":         "bar",
		"name":         legend[1],
		"x":            categories,
		"y":            []float64{m.Summary.Phase12NGCost / 1e6, 0},
		"marker":       map[string]interface{}{"color": colorDanger},
		"text":         []string{fmt.Sprintf("$%.0fM", m.Summary.Phase12NGCost/1e6), "$0M"},
		"textposition": "outside",
		"textfont":     font(12, colorLight),
	}

	netBar := map[string]interface{}{
		"type":         "bar",
		"name":         legend[2],
		"x":            categories,
		"y":            []float64{m.Summary.Phase12Net / 1e6, m.Summary.Phase34Net / 1e6},
		"marker":       map[string]interface{}{"color": colorPrimary},
		"text":         []string{fmt.Sprintf("$%.0fM", m.Summary.Phase12Net/1e6), fmt.Sprintf("$%.0fM", m.Summary.Phase34Net/1e6)},
		"textposition": "outside",
		"textfont":     font(12, colorLight),
	}

	layout := baseLayout(400)
	layout["barmode"] = "group"
	layout["legend"] = map[string]interface{}{
		"orientation": "h", "yanchor": "bottom", "y": 1.08,
		"xanchor": "center", "x": 0.5,
		"font": font(11, colorLight),
	}
	layout["xaxis"] = map[string]interface{}{"tickfont": interFont(12, colorLight)}
	layout["yaxis"] = map[string]interface{}{
		"title":     map[string]interface{}{"text": yaxisTitle, "font": font(11, colorLight)},
		"tickfont":  font(10, colorLight),
		"gridcolor": gridLineColor,
	}
	layout["margin"] = margins(80, 40, 60, 20)
	layout["bargap"] = 0.25

	return figure{Data: []interface{}{grossBar, costBar, netBar}, Layout: layout}, nil
}
