package charts

import (
	"fmt"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// buildProductBars builds the horizontal annual product value chart.
func (cg *ChartGenerator) buildProductBars(m *schema.MetricSet, lang Lang) (figure, error) {
	var products []string
	var xaxisTitle string
	if lang == LangAR {
		products = []string{
			"غاز مسال (LPG)", "نافثا (C5+)", "هيدروجين (H2)", "إيثان (C2)",
			"ميثانول", "إيثيلين MTO", "بروبيلين MTO",
		}
		xaxisTitle = "القيمة (مليون دولار/سنة)"
	} else {
		products = []string{
			"LPG (C3+C4)", "Naphtha (C5+)", "Hydrogen (H2)", "Ethane (C2)",
			"Methanol Blend", "Ethylene (MTO)", "Propylene (MTO)",
		}
		xaxisTitle = "Value ($ Million/year)"
	}

	values := []float64{
		m.LPGRecovery.LPGValue / 1e6,
		m.LPGRecovery.C5PlusValue / 1e6,
		m.HydrogenRecovery.H2Value / 1e6,
		m.EthaneSupply.C2Value / 1e6,
		m.MTOEconomics.MethanolValue / 1e6,
		m.MTOEconomics.EthyleneValue / 1e6,
		m.MTOEconomics.PropyleneValue / 1e6,
	}

	maxVal := 0.0
	text := make([]string, len(values))
	for i, v := range values {
		text[i] = fmt.Sprintf("$%.1fM", v)
		if v > maxVal {
			maxVal = v
		}
	}

	colors := []string{
		colorSecondary, colorSecondary,
		colorPrimary, colorPrimary,
		colorAccent, colorAccent, colorAccent,
	}

	trace := map[string]interface{}{
		"type":        "bar",
		"orientation": "h",
		"y":           products,
		"x":           values,
		"marker": map[string]interface{}{
			"color": colors,
			"line":  map[string]interface{}{"width": 0},
		},
		"text":          text,
		"textposition":  "outside",
		"textfont":      interFont(13, colorLight),
		"hovertemplate": "<b>%{y}</b><br>$%{x:.1f}M<extra></extra>",
	}

	layout := baseLayout(400)
	layout["xaxis"] = map[string]interface{}{
		"title":     map[string]interface{}{"text": xaxisTitle, "font": font(12, colorLight)},
		"tickfont":  font(11, colorLight),
		"gridcolor": gridLineColor,
		"showgrid":  true,
		"range":     []float64{0, maxVal * 1.35},
	}
	layout["yaxis"] = map[string]interface{}{
		"tickfont":  interFont(11, colorLight),
		"autorange": "reversed",
	}
	layout["margin"] = margins(30, 60, 120, 70)
	layout["bargap"] = 0.35

	return figure{Data: []interface{}{trace}, Layout: layout}, nil
}
