package charts

import (
	"fmt"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// buildH2Balance builds the available/required/deficit hydrogen bars for
// methanol synthesis, annotated with the utilization figure.
func (cg *ChartGenerator) buildH2Balance(m *schema.MetricSet, lang Lang) (figure, error) {
	var categories []string
	var yaxisTitle, utilText string

	utilization := m.MethanolSynthesis.H2Utilization * 100
	if lang == LangAR {
		categories = []string{"H2 المتوفر", "H2 المطلوب", "العجز"}
		yaxisTitle = "الكمية (ألف طن/سنة)"
		utilText = fmt.Sprintf("<b>نسبة الاستخدام: %.0f%%</b>", utilization)
	} else {
		categories = []string{"H2 Available", "H2 Required", "Deficit"}
		yaxisTitle = "Quantity (kt/year)"
		utilText = fmt.Sprintf("<b>Utilization: %.0f%%</b>", utilization)
	}

	values := []float64{
		m.MethanolSynthesis.H2Available / 1000,
		m.MethanolSynthesis.H2Required / 1000,
		m.MethanolSynthesis.H2Deficit / 1000,
	}

	maxVal := 0.0
	text := make([]string, len(values))
	for i, v := range values {
		text[i] = fmt.Sprintf("%.1fK", v)
		if v > maxVal {
			maxVal = v
		}
	}

	trace := map[string]interface{}{
		"type":         "bar",
		"x":            categories,
		"y":            values,
		"marker":       map[string]interface{}{"color": []string{colorSuccess, colorPrimary, colorDanger}},
		"text":         text,
		"textposition": "outside",
		"textfont":     interFont(14, colorLight),
		"width":        0.6,
	}

	layout := baseLayout(300)
	layout["annotations"] = []interface{}{
		map[string]interface{}{
			"x":         1,
			"y":         maxVal * 1.1,
			"text":      utilText,
			"showarrow": false,
			"font":      interFont(14, colorPrimary),
		},
	}
	layout["yaxis"] = map[string]interface{}{
		"title":     map[string]interface{}{"text": yaxisTitle, "font": font(10, colorLight)},
		"gridcolor": gridLineColor,
		"tickfont":  font(10, colorLight),
	}
	layout["xaxis"] = map[string]interface{}{"tickfont": interFont(10, colorLight)}
	layout["margin"] = margins(40, 30, 50, 20)

	return figure{Data: []interface{}{trace}, Layout: layout}, nil
}
