package charts

import (
	"fmt"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// buildStreamHeatmap builds the component-by-stream distribution heatmap
// in kt/y. A component with no tonnage anywhere keeps a zero-filled row
// so the axis stays aligned with the component order.
func (cg *ChartGenerator) buildStreamHeatmap(m *schema.MetricSet, lang Lang) (figure, error) {
	var streams []string
	if lang == LangAR {
		streams = []string{"شعلة قديم", "شعلة جديد", "مصفاة", "PSA", "كنس", "بنيكس"}
	} else {
		streams = []string{"Flare OLD", "Flare New", "Refinery", "PSA", "Sweep", "Penex"}
	}

	n := m.Streams.Len()
	z := make([][]float64, 0, len(m.ComponentOrder))
	text := make([][]string, 0, len(m.ComponentOrder))
	for _, comp := range m.ComponentOrder {
		row, ok := m.StreamComponents[comp]
		if !ok || len(row) != n {
			return figure{}, fmt.Errorf("component %s: missing or mis-sized stream row", comp)
		}

		total := 0.0
		for _, v := range row {
			total += v
		}

		zRow := make([]float64, n)
		tRow := make([]string, n)
		if total > 0 {
			for i, v := range row {
				zRow[i] = v / 1000
				if zRow[i] > 0 {
					tRow[i] = fmt.Sprintf("%.0f", zRow[i])
				}
			}
		}
		z = append(z, zRow)
		text = append(text, tRow)
	}

	trace := map[string]interface{}{
		"type":          "heatmap",
		"z":             z,
		"x":             streams,
		"y":             m.ComponentOrder,
		"colorscale":    "Viridis",
		"text":          text,
		"texttemplate":  "%{text}",
		"textfont":      map[string]interface{}{"size": 10, "color": "white"},
		"hovertemplate": "%{y} in %{x}: %{z:.1f}K t/y<extra></extra>",
		"colorbar": map[string]interface{}{
			"title":    map[string]interface{}{"text": "kt/y", "font": font(11, colorLight)},
			"tickfont": font(10, colorLight),
		},
	}

	layout := baseLayout(350)
	delete(layout, "plot_bgcolor")
	layout["xaxis"] = map[string]interface{}{
		"tickfont":  interFont(10, colorLight),
		"side":      "bottom",
		"tickangle": -45,
	}
	layout["yaxis"] = map[string]interface{}{
		"tickfont":  interFont(10, colorLight),
		"autorange": "reversed",
	}
	layout["margin"] = margins(20, 60, 50, 80)

	return figure{Data: []interface{}{trace}, Layout: layout}, nil
}
