package main

import (
	"fmt"
	"os"
	"path/filepath"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// Developer tool: renders the headline figures as a quick standalone
// page so palette and proportions can be eyeballed without rebuilding
// the full dashboard.
func main() {
	log := logger.NewDefault().WithComponent("chartcheck")
	m := schema.LoadMetrics()

	page := components.NewPage()
	page.PageTitle = "Chart check"
	page.AddCharts(productBar(m), phasePie(m), hydrogenBar(m))

	path := filepath.Join(".", "chartcheck.html")
	f, err := os.Create(path)
	if err != nil {
		log.Fatal("Failed to create output file", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		log.Fatal("Failed to render page", err)
	}
	fmt.Printf("Wrote %s\n", path)
}

func productBar(m *schema.MetricSet) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Annual Product Values ($M/year)"}),
	)

	names := []string{"LPG", "H2", "Propylene", "Methanol", "Ethane", "Ethylene", "Naphtha"}
	values := []float64{
		m.LPGRecovery.LPGValue,
		m.HydrogenRecovery.H2Value,
		m.MTOEconomics.PropyleneValue,
		m.MTOEconomics.MethanolValue,
		m.EthaneSupply.C2Value,
		m.MTOEconomics.EthyleneValue,
		m.LPGRecovery.C5PlusValue,
	}
	colors := []string{"#06b6d4", "#0ea5e9", "#f59e0b", "#f59e0b", "#0ea5e9", "#f59e0b", "#06b6d4"}

	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{
			Value:     v / 1e6,
			ItemStyle: &opts.ItemStyle{Color: colors[i]},
		}
	}
	bar.SetXAxis(names).AddSeries("$M/year", data)
	return bar
}

func phasePie(m *schema.MetricSet) *echarts.Pie {
	pie := echarts.NewPie()
	pie.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Net Value by Phase"}),
	)
	pie.AddSeries("phases", []opts.PieData{
		{Name: "Phase 1+2", Value: m.Summary.Phase12Net / 1e6, ItemStyle: &opts.ItemStyle{Color: "#06b6d4"}},
		{Name: "Phase 3+4", Value: m.Summary.Phase34Net / 1e6, ItemStyle: &opts.ItemStyle{Color: "#f59e0b"}},
	})
	return pie
}

func hydrogenBar(m *schema.MetricSet) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Hydrogen Balance (kt/year)"}),
	)
	ms := m.MethanolSynthesis
	bar.SetXAxis([]string{"Available", "Required", "Deficit"}).
		AddSeries("kt/year", []opts.BarData{
			{Value: ms.H2Available / 1000, ItemStyle: &opts.ItemStyle{Color: "#22c55e"}},
			{Value: ms.H2Required / 1000, ItemStyle: &opts.ItemStyle{Color: "#0ea5e9"}},
			{Value: ms.H2Deficit / 1000, ItemStyle: &opts.ItemStyle{Color: "#ef4444"}},
		})
	return bar
}
