package charts

import (
	"encoding/json"
	"fmt"
)

// Lang selects which language variant of a chart to build.
type Lang string

const (
	LangEN Lang = "en"
	LangAR Lang = "ar"
)

// figure is a Plotly figure: a list of traces plus a layout object. It
// marshals to the {data, layout} shape Plotly.newPlot consumes.
type figure struct {
	Data   []interface{}          `json:"data"`
	Layout map[string]interface{} `json:"layout"`
}

// ChartSnippet is one chart ready for template substitution: the JS key
// it is registered under, the DOM id prefix (the page appends -en/-ar),
// and the marshaled figure for each language.
type ChartSnippet struct {
	Key      string
	DivID    string
	FigureEN string
	FigureAR string
}

// bilingual runs a figure builder for both languages and marshals the
// results into a snippet.
func bilingual(key, divID string, build func(Lang) (figure, error)) (ChartSnippet, error) {
	en, err := build(LangEN)
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("%s (en): %w", key, err)
	}
	ar, err := build(LangAR)
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("%s (ar): %w", key, err)
	}

	enJSON, err := json.Marshal(en)
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("marshal %s (en): %w", key, err)
	}
	arJSON, err := json.Marshal(ar)
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("marshal %s (ar): %w", key, err)
	}

	return ChartSnippet{Key: key, DivID: divID, FigureEN: string(enJSON), FigureAR: string(arJSON)}, nil
}

// font builds a Plotly font descriptor.
func font(size int, color string) map[string]interface{} {
	return map[string]interface{}{"size": size, "color": color}
}

// interFont builds a font descriptor pinned to the Inter family.
func interFont(size int, color string) map[string]interface{} {
	return map[string]interface{}{"size": size, "family": "Inter", "color": color}
}

// baseLayout returns the transparent-background layout every chart starts
// from.
func baseLayout(height int) map[string]interface{} {
	return map[string]interface{}{
		"paper_bgcolor": transparent,
		"plot_bgcolor":  transparent,
		"height":        height,
		"autosize":      true,
	}
}

// margins builds a Plotly margin object.
func margins(t, b, l, r int) map[string]interface{} {
	return map[string]interface{}{"t": t, "b": b, "l": l, "r": r}
}
