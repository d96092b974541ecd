package reports

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// PNGRenderer produces static fallback charts for contexts that cannot
// run the interactive dashboard (email attachments, printed reports).
type PNGRenderer struct {
	log *logger.Logger
}

// NewPNGRenderer creates a PNG chart renderer.
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{log: logger.NewDefault().WithComponent("png-charts")}
}

var (
	pngSecondary = drawing.ColorFromHex("06b6d4")
	pngPrimary   = drawing.ColorFromHex("0ea5e9")
	pngAccent    = drawing.ColorFromHex("f59e0b")
	pngSuccess   = drawing.ColorFromHex("22c55e")
	pngDanger    = drawing.ColorFromHex("ef4444")
)

// RenderAll renders every fallback chart, keyed by output filename.
func (r *PNGRenderer) RenderAll(m *schema.MetricSet) (map[string][]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("metric set cannot be nil")
	}

	out := make(map[string][]byte, 3)

	phaseSplit, err := r.renderPhaseSplit(m)
	if err != nil {
		return nil, fmt.Errorf("phase split chart: %w", err)
	}
	out["phase_split.png"] = phaseSplit

	productValues, err := r.renderProductValues(m)
	if err != nil {
		return nil, fmt.Errorf("product values chart: %w", err)
	}
	out["product_values.png"] = productValues

	hydrogen, err := r.renderHydrogenBalance(m)
	if err != nil {
		return nil, fmt.Errorf("hydrogen balance chart: %w", err)
	}
	out["hydrogen_balance.png"] = hydrogen

	r.log.Info("Rendered fallback charts", map[string]interface{}{"count": len(out)})
	return out, nil
}

func (r *PNGRenderer) renderPhaseSplit(m *schema.MetricSet) ([]byte, error) {
	donut := chart.DonutChart{
		Title:  "Net Value by Phase ($M/year)",
		Width:  640,
		Height: 480,
		Values: []chart.Value{
			{
				Value: m.Summary.Phase12Net / 1e6,
				Label: fmt.Sprintf("Phase 1+2 ($%.0fM)", m.Summary.Phase12Net/1e6),
				Style: chart.Style{FillColor: pngSecondary},
			},
			{
				Value: m.Summary.Phase34Net / 1e6,
				Label: fmt.Sprintf("Phase 3+4 ($%.0fM)", m.Summary.Phase34Net/1e6),
				Style: chart.Style{FillColor: pngAccent},
			},
		},
	}

	var buf bytes.Buffer
	if err := donut.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PNGRenderer) renderProductValues(m *schema.MetricSet) ([]byte, error) {
	bars := []chart.Value{
		{Value: m.LPGRecovery.LPGValue / 1e6, Label: "LPG", Style: chart.Style{FillColor: pngSecondary}},
		{Value: m.HydrogenRecovery.H2Value / 1e6, Label: "H2", Style: chart.Style{FillColor: pngPrimary}},
		{Value: m.MTOEconomics.PropyleneValue / 1e6, Label: "Propylene", Style: chart.Style{FillColor: pngAccent}},
		{Value: m.MTOEconomics.MethanolValue / 1e6, Label: "Methanol", Style: chart.Style{FillColor: pngAccent}},
		{Value: m.EthaneSupply.C2Value / 1e6, Label: "Ethane", Style: chart.Style{FillColor: pngPrimary}},
		{Value: m.MTOEconomics.EthyleneValue / 1e6, Label: "Ethylene", Style: chart.Style{FillColor: pngAccent}},
		{Value: m.LPGRecovery.C5PlusValue / 1e6, Label: "Naphtha", Style: chart.Style{FillColor: pngSecondary}},
	}

	bar := chart.BarChart{
		Title:    "Annual Product Values ($M/year)",
		Width:    900,
		Height:   480,
		BarWidth: 70,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bar.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PNGRenderer) renderHydrogenBalance(m *schema.MetricSet) ([]byte, error) {
	ms := m.MethanolSynthesis
	bar := chart.BarChart{
		Title:    "Hydrogen Balance (kt/year)",
		Width:    640,
		Height:   480,
		BarWidth: 90,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: []chart.Value{
			{Value: ms.H2Available / 1000, Label: "Available", Style: chart.Style{FillColor: pngSuccess}},
			{Value: ms.H2Required / 1000, Label: "Required", Style: chart.Style{FillColor: pngPrimary}},
			{Value: ms.H2Deficit / 1000, Label: "Deficit", Style: chart.Style{FillColor: pngDanger}},
		},
	}

	var buf bytes.Buffer
	if err := bar.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
