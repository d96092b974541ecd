package slides

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// PresentationFilename is the canonical name of the generated deck.
const PresentationFilename = "MIDOR_ETHYDCO_Integration_Presentation.pptx"

// productBarMaxMillions is the $M figure that maps to a full-width bar
// on the product values slide.
const productBarMaxMillions = 100.0

// Builder assembles the ten-slide integration deck from the metric set.
type Builder struct {
	m   *schema.MetricSet
	log *logger.Logger
}

// NewBuilder creates a deck builder.
func NewBuilder(m *schema.MetricSet) *Builder {
	return &Builder{
		m:   m,
		log: logger.NewDefault().WithComponent("slides"),
	}
}

// BuildDeck assembles the full deck. Slide order: title, executive
// summary, opportunity, phases, product values, C2 coverage, hydrogen
// balance, financial summary, next steps, conclusion.
func (b *Builder) BuildDeck() (*Deck, error) {
	if b.m == nil {
		return nil, fmt.Errorf("metric set is required")
	}

	d := &Deck{Width: Inches(10), Height: Inches(7.5)}

	b.titleSlide(d)
	b.executiveSummarySlide(d)
	b.opportunitySlide(d)
	b.phasesSlide(d)
	b.productValuesSlide(d)
	b.coverageSlide(d)
	b.hydrogenBalanceSlide(d)
	b.financialSummarySlide(d)
	b.nextStepsSlide(d)
	b.conclusionSlide(d)

	b.log.Info("Deck assembled", map[string]interface{}{"slides": len(d.Slides)})
	return d, nil
}

func (b *Builder) titleSlide(d *Deck) {
	s := d.AddSlide(colorDark)

	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(2.5), Inches(9), Inches(1.5)},
		Lines: []string{"MIDOR-ETHYDCO Integration"},
		Size:  54, Bold: true, Color: colorWhite, Align: AlignCenter,
	})
	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(4), Inches(9), Inches(0.8)},
		Lines: []string{"Petrochemical Integration Analysis"},
		Size:  28, Color: colorSecondary, Align: AlignCenter,
	})
	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(5), Inches(9), Inches(1)},
		Lines: []string{fmt.Sprintf("$%.0f Million/Year Net Value", b.m.Summary.TotalNet/1e6)},
		Size:  32, Bold: true, Color: colorAccent, Align: AlignCenter,
	})
	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(6.5), Inches(9), Inches(0.5)},
		Lines: []string{"Middle East Oil Refinery (MIDOR) & Egyptian Ethylene and Derivatives Company (ETHYDCO)"},
		Size:  14, Color: colorGray, Align: AlignCenter,
	})
}

func (b *Builder) executiveSummarySlide(d *Deck) {
	s := d.AddSlide(colorDark)
	slideTitle(s, "Executive Summary")

	card(s, Rect{Inches(0.5), Inches(1.2), Inches(9), Inches(1.2)}, colorSecondary, 2)
	s.AddText(Text{
		Rect:  Rect{Inches(0.7), Inches(1.5), Inches(8.6), Inches(0.8)},
		Lines: []string{"Strategic integration between MIDOR refinery and ETHYDCO petrochemical complex creates significant value through gas recovery, hydrogen utilization, and methanol production pathways."},
		Size:  16, Color: colorLight, Align: AlignCenter,
	})

	kpis := []struct {
		value, title, subtitle string
		color                  RGB
	}{
		{millions0(b.m.Summary.TotalNet), "Total Net Value", "Per Year", colorSecondary},
		{millions0(b.m.Summary.Phase12Net), "Phase 1+2", "Gas Recovery", colorPrimary},
		{millions0(b.m.Summary.Phase34Net), "Phase 3+4", "Methanol & MTO", colorAccent},
	}
	for i, k := range kpis {
		x := Inches(0.5 + float64(i)*3.1)
		card(s, Rect{x, Inches(2.6), Inches(2.9), Inches(1.8)}, k.color, 3)
		s.AddText(Text{
			Rect:  Rect{x, Inches(2.8), Inches(2.9), Inches(0.8)},
			Lines: []string{k.value},
			Size:  36, Bold: true, Color: k.color, Align: AlignCenter,
		})
		s.AddText(Text{
			Rect:  Rect{x, Inches(3.5), Inches(2.9), Inches(0.4)},
			Lines: []string{k.title},
			Size:  14, Bold: true, Color: colorWhite, Align: AlignCenter,
		})
		s.AddText(Text{
			Rect:  Rect{x, Inches(3.85), Inches(2.9), Inches(0.4)},
			Lines: []string{k.subtitle},
			Size:  12, Color: colorGray, Align: AlignCenter,
		})
	}

	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(4.6), Inches(9), Inches(0.5)},
		Lines: []string{"Key Benefits"},
		Size:  20, Bold: true, Color: colorSecondary,
	})

	benefits := []string{
		"Eliminates flare gas waste - converts to valuable products",
		fmt.Sprintf("Provides %.0f-%.0f%% of ETHYDCO's ethane feedstock requirements",
			b.m.EthaneSupply.CoverageMax*100, b.m.EthaneSupply.CoverageMin*100),
		"Creates new revenue streams from hydrogen and methanol",
		"Reduces environmental impact through emission reduction",
	}
	for i, benefit := range benefits {
		s.AddText(Text{
			Rect:  Rect{Inches(0.7), Inches(5.1 + float64(i)*0.4), Inches(8.5), Inches(0.4)},
			Lines: []string{"✓  " + benefit},
			Size:  14, Color: colorLight,
		})
	}
}

func (b *Builder) opportunitySlide(d *Deck) {
	s := d.AddSlide(colorDark)
	slideTitle(s, "The Opportunity")

	columns := []struct {
		title  string
		x      float64
		color  RGB
		points []string
	}{
		{"MIDOR Refinery", 0.5, colorPrimary, []string{
			"• Flaring valuable gases",
			"• 56,000+ t/y of recoverable gases",
			"• Lost hydrogen, LPG, ethane",
			"• Environmental concerns",
			"• Wasted economic potential",
		}},
		{"ETHYDCO Complex", 5.2, colorAccent, []string{
			"• Needs ethane feedstock",
			"• 84-122 kt/y C2 demand",
			"• Dependent on imports",
			"• Supply chain risks",
			"• Cost pressures",
		}},
	}
	for _, col := range columns {
		s.AddText(Text{
			Rect:  Rect{Inches(col.x), Inches(1.2), Inches(4.3), Inches(0.5)},
			Lines: []string{col.title},
			Size:  22, Bold: true, Color: col.color,
		})
		card(s, Rect{Inches(col.x), Inches(1.7), Inches(4.3), Inches(2.5)}, col.color, 2)
		for i, point := range col.points {
			s.AddText(Text{
				Rect:  Rect{Inches(col.x + 0.2), Inches(1.9 + float64(i)*0.45), Inches(4), Inches(0.4)},
				Lines: []string{point},
				Size:  14, Color: colorLight,
			})
		}
	}

	s.AddText(Text{
		Rect:  Rect{Inches(4.3), Inches(2.7), Inches(1.4), Inches(0.5)},
		Lines: []string{"↔"},
		Size:  48, Color: colorSuccess, Align: AlignCenter,
	})

	card(s, Rect{Inches(0.5), Inches(4.5), Inches(9), Inches(2)}, colorSuccess, 3)
	s.AddText(Text{
		Rect:  Rect{Inches(0.7), Inches(4.7), Inches(8.6), Inches(0.5)},
		Lines: []string{"The Solution: Strategic Integration"},
		Size:  20, Bold: true, Color: colorSuccess,
	})
	s.AddText(Text{
		Rect:  Rect{Inches(0.7), Inches(5.2), Inches(8.6), Inches(1.2)},
		Lines: []string{"By integrating MIDOR's off-gas streams with ETHYDCO's feedstock needs, we create a symbiotic relationship that transforms waste into value. MIDOR's flare gases become ETHYDCO's feedstock, while recovered hydrogen enables methanol production for gasoline blending."},
		Size:  14, Color: colorLight,
	})
}

func (b *Builder) phasesSlide(d *Deck) {
	s := d.AddSlide(colorDark)
	slideTitle(s, "Integration Phases")

	phases := []struct {
		num, title, desc string
		value            float64
		color            RGB
	}{
		{"1", "LPG & C5+ Recovery", "Recover propane, butane, and naphtha from all gas streams",
			b.m.LPGRecovery.LPGValue + b.m.LPGRecovery.C5PlusValue, colorSecondary},
		{"2", "Hydrogen Recovery", "Extract hydrogen for refinery use and methanol synthesis",
			b.m.HydrogenRecovery.H2Value, colorPrimary},
		{"3", "Methanol Production", "Convert CO/CO2 + H2 to methanol for gasoline blending",
			b.m.MTOEconomics.MethanolValue, colorAccent},
		{"4", "MTO Conversion", "Methanol-to-Olefins producing ethylene & propylene",
			b.m.MTOEconomics.EthyleneValue + b.m.MTOEconomics.PropyleneValue, colorSuccess},
	}

	for i, phase := range phases {
		y := 1.2 + float64(i)*1.4

		s.AddBox(Box{Kind: BoxOval, Rect: Rect{Inches(0.5), Inches(y), Inches(0.7), Inches(0.7)}, Fill: phase.color})
		s.AddText(Text{
			Rect:  Rect{Inches(0.5), Inches(y + 0.1), Inches(0.7), Inches(0.5)},
			Lines: []string{phase.num},
			Size:  24, Bold: true, Color: colorWhite, Align: AlignCenter,
		})

		card(s, Rect{Inches(1.4), Inches(y), Inches(6.5), Inches(1.1)}, phase.color, 2)
		s.AddText(Text{
			Rect:  Rect{Inches(1.6), Inches(y + 0.15), Inches(4), Inches(0.4)},
			Lines: []string{phase.title},
			Size:  18, Bold: true, Color: colorWhite,
		})
		s.AddText(Text{
			Rect:  Rect{Inches(1.6), Inches(y + 0.55), Inches(5), Inches(0.5)},
			Lines: []string{phase.desc},
			Size:  12, Color: colorGray,
		})
		s.AddText(Text{
			Rect:  Rect{Inches(6.8), Inches(y + 0.25), Inches(1.1), Inches(0.6)},
			Lines: []string{millions0(phase.value)},
			Size:  22, Bold: true, Color: phase.color, Align: AlignCenter,
		})

		if i < len(phases)-1 {
			s.AddBox(Box{Kind: BoxRect, Rect: Rect{Inches(0.82), Inches(y + 0.75), Inches(0.06), Inches(0.65)}, Fill: colorGray})
		}
	}

	card(s, Rect{Inches(8.2), Inches(2.5), Inches(1.5), Inches(2)}, colorWhite, 2)
	s.AddText(Text{
		Rect:  Rect{Inches(8.2), Inches(2.7), Inches(1.5), Inches(0.4)},
		Lines: []string{"TOTAL"},
		Size:  12, Bold: true, Color: colorGray, Align: AlignCenter,
	})
	s.AddText(Text{
		Rect:  Rect{Inches(8.2), Inches(3.1), Inches(1.5), Inches(0.6)},
		Lines: []string{millions0(b.m.Summary.TotalNet)},
		Size:  28, Bold: true, Color: colorWhite, Align: AlignCenter,
	})
	s.AddText(Text{
		Rect:  Rect{Inches(8.2), Inches(3.6), Inches(1.5), Inches(0.4)},
		Lines: []string{"Net/Year"},
		Size:  11, Color: colorGray, Align: AlignCenter,
	})
}

// productValueRow is one bar of the product values slide.
type productValueRow struct {
	Name     string
	Value    float64 // $/y
	TonnesPY float64
	Color    RGB
}

// productValueRows lists the seven sellable products, largest value first.
func (b *Builder) productValueRows() []productValueRow {
	rows := []productValueRow{
		{"LPG (C3+C4)", b.m.LPGRecovery.LPGValue, b.m.LPGRecovery.TotalLPG, colorSecondary},
		{"Hydrogen (H2)", b.m.HydrogenRecovery.H2Value, b.m.HydrogenRecovery.TotalH2, colorPrimary},
		{"Propylene (MTO)", b.m.MTOEconomics.PropyleneValue, b.m.MTOEconomics.PropyleneFromMTO, colorAccent},
		{"Methanol Blend", b.m.MTOEconomics.MethanolValue, b.m.MTOEconomics.MethanolInGasoline, colorAccent},
		{"Ethane (C2)", b.m.EthaneSupply.C2Value, b.m.EthaneSupply.MIDORSupply, colorPrimary},
		{"Ethylene (MTO)", b.m.MTOEconomics.EthyleneValue, b.m.MTOEconomics.EthyleneFromMTO, colorAccent},
		{"Naphtha (C5+)", b.m.LPGRecovery.C5PlusValue, b.m.LPGRecovery.TotalC5Plus, colorSecondary},
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	return rows
}

func (b *Builder) productValuesSlide(d *Deck) {
	s := d.AddSlide(colorDark)
	slideTitle(s, "Annual Product Values")

	const maxWidth = 7.5 // inches at productBarMaxMillions

	for i, row := range b.productValueRows() {
		y := 1.1 + float64(i)*0.75

		s.AddText(Text{
			Rect:  Rect{Inches(0.5), Inches(y), Inches(2.2), Inches(0.4)},
			Lines: []string{row.Name},
			Size:  13, Color: colorLight,
		})

		barWidth := maxWidth * (row.Value / 1e6) / productBarMaxMillions
		s.AddBox(Box{Kind: BoxRounded, Rect: Rect{Inches(2.7), Inches(y + 0.05), Inches(maxWidth), Inches(0.35)}, Fill: colorDarkLight})
		s.AddBox(Box{Kind: BoxRounded, Rect: Rect{Inches(2.7), Inches(y + 0.05), Inches(barWidth), Inches(0.35)}, Fill: row.Color})

		s.AddText(Text{
			Rect:  Rect{Inches(2.7 + barWidth + 0.1), Inches(y), Inches(1), Inches(0.4)},
			Lines: []string{millions1(row.Value)},
			Size:  13, Bold: true, Color: colorWhite,
		})
		s.AddText(Text{
			Rect:  Rect{Inches(0.5), Inches(y + 0.35), Inches(2.2), Inches(0.3)},
			Lines: []string{tonnesPerYear(row.TonnesPY)},
			Size:  10, Color: colorGray,
		})
	}

	card(s, Rect{Inches(0.5), Inches(6.3), Inches(9), Inches(0.6)}, colorDanger, 2)
	s.AddText(Text{
		Rect: Rect{Inches(0.7), Inches(6.4), Inches(8.6), Inches(0.4)},
		Lines: []string{fmt.Sprintf("Note: Natural Gas makeup cost of %s/year deducted to arrive at net value of %s",
			millions1(b.m.Summary.Phase12NGCost), millions0(b.m.Summary.TotalNet))},
		Size: 12, Color: colorLight, Align: AlignCenter,
	})
}

func (b *Builder) coverageSlide(d *Deck) {
	s := d.AddSlide(colorDark)
	slideTitle(s, "ETHYDCO C2 Feed Coverage")

	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(0.9), Inches(9), Inches(0.5)},
		Lines: []string{fmt.Sprintf("MIDOR can supply %s of ethane to ETHYDCO", tonnesPerYear(b.m.EthaneSupply.MIDORSupply))},
		Size:  16, Color: colorGray,
	})

	gauges := []struct {
		title    string
		demand   float64
		coverage float64
		color    RGB
	}{
		{"Minimum Demand", b.m.EthaneSupply.ETHYDCONeedMin, b.m.EthaneSupply.CoverageMin, colorSuccess},
		{"Maximum Demand", b.m.EthaneSupply.ETHYDCONeedMax, b.m.EthaneSupply.CoverageMax, colorAccent},
	}
	for i, g := range gauges {
		x := Inches(0.8 + float64(i)*4.7)

		card(s, Rect{x, Inches(1.6), Inches(4), Inches(3.2)}, g.color, 2)
		s.AddText(Text{
			Rect:  Rect{x, Inches(1.8), Inches(4), Inches(0.4)},
			Lines: []string{g.title},
			Size:  18, Bold: true, Color: colorWhite, Align: AlignCenter,
		})
		s.AddText(Text{
			Rect:  Rect{x, Inches(2.2), Inches(4), Inches(0.4)},
			Lines: []string{"ETHYDCO needs: " + tonnesPerYear(g.demand)},
			Size:  12, Color: colorGray, Align: AlignCenter,
		})
		s.AddText(Text{
			Rect:  Rect{x, Inches(2.8), Inches(4), Inches(1)},
			Lines: []string{fmt.Sprintf("%.1f%%", g.coverage*100)},
			Size:  54, Bold: true, Color: g.color, Align: AlignCenter,
		})
		s.AddText(Text{
			Rect:  Rect{x, Inches(3.8), Inches(4), Inches(0.4)},
			Lines: []string{"Coverage"},
			Size:  14, Color: colorGray, Align: AlignCenter,
		})
	}

	card(s, Rect{Inches(0.5), Inches(5.1), Inches(9), Inches(1.5)}, colorSecondary, 2)
	s.AddText(Text{
		Rect:  Rect{Inches(0.7), Inches(5.25), Inches(8.6), Inches(0.4)},
		Lines: []string{"Key Insight"},
		Size:  16, Bold: true, Color: colorSecondary,
	})
	s.AddText(Text{
		Rect: Rect{Inches(0.7), Inches(5.65), Inches(8.6), Inches(0.9)},
		Lines: []string{fmt.Sprintf("MIDOR's integration can provide nearly half to over two-thirds of ETHYDCO's ethane requirements, significantly reducing import dependency and creating a reliable local supply chain worth %s annually.",
			millions1(b.m.EthaneSupply.C2Value))},
		Size: 13, Color: colorLight,
	})
}

func (b *Builder) hydrogenBalanceSlide(d *Deck) {
	s := d.AddSlide(colorDark)
	slideTitle(s, "Hydrogen Balance for Methanol")

	columns := []struct {
		title string
		value float64
		desc  string
		color RGB
	}{
		{"H2 Available", b.m.MethanolSynthesis.H2Available, "From gas recovery", colorSuccess},
		{"H2 Required", b.m.MethanolSynthesis.H2Required, "For full methanol production", colorPrimary},
		{"H2 Deficit", b.m.MethanolSynthesis.H2Deficit, "External supply needed", colorDanger},
	}
	for i, col := range columns {
		x := Inches(0.5 + float64(i)*3.1)

		card(s, Rect{x, Inches(1.2), Inches(2.9), Inches(2.2)}, col.color, 2)
		s.AddText(Text{
			Rect:  Rect{x, Inches(1.4), Inches(2.9), Inches(0.4)},
			Lines: []string{col.title},
			Size:  14, Color: colorGray, Align: AlignCenter,
		})
		s.AddText(Text{
			Rect:  Rect{x, Inches(1.9), Inches(2.9), Inches(0.8)},
			Lines: []string{fmt.Sprintf("%.1fK t/y", col.value/1000)},
			Size:  36, Bold: true, Color: col.color, Align: AlignCenter,
		})
		s.AddText(Text{
			Rect:  Rect{x, Inches(2.7), Inches(2.9), Inches(0.5)},
			Lines: []string{col.desc},
			Size:  11, Color: colorGray, Align: AlignCenter,
		})
	}

	card(s, Rect{Inches(3), Inches(3.6), Inches(4), Inches(1)}, colorSecondary, 3)
	s.AddText(Text{
		Rect:  Rect{Inches(3), Inches(3.75), Inches(4), Inches(0.4)},
		Lines: []string{"H2 Utilization Rate"},
		Size:  14, Color: colorGray, Align: AlignCenter,
	})
	s.AddText(Text{
		Rect:  Rect{Inches(3), Inches(4.05), Inches(4), Inches(0.5)},
		Lines: []string{fmt.Sprintf("%.0f%%", b.m.MethanolSynthesis.H2Utilization*100)},
		Size:  32, Bold: true, Color: colorSecondary, Align: AlignCenter,
	})

	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(4.8), Inches(9), Inches(0.5)},
		Lines: []string{fmt.Sprintf("Methanol Allocation (%s Total)", tonnesPerYear(b.m.MethanolSynthesis.TotalMethanol))},
		Size:  20, Bold: true, Color: colorWhite,
	})

	total := b.m.MethanolSynthesis.TotalMethanol
	allocations := []struct {
		name   string
		tonnes float64
		value  float64
		color  RGB
	}{
		{"Gasoline Blending", b.m.MTOEconomics.MethanolInGasoline, b.m.MTOEconomics.MethanolValue, colorSecondary},
		{"MTO Conversion", b.m.MTOEconomics.MethanolForMTO,
			b.m.MTOEconomics.EthyleneValue + b.m.MTOEconomics.PropyleneValue, colorAccent},
	}
	for i, a := range allocations {
		y := 5.3 + float64(i)*0.7
		share := a.tonnes / total

		s.AddText(Text{
			Rect:  Rect{Inches(0.5), Inches(y), Inches(2), Inches(0.4)},
			Lines: []string{a.name},
			Size:  14, Color: colorLight,
		})

		s.AddBox(Box{Kind: BoxRounded, Rect: Rect{Inches(2.5), Inches(y + 0.05), Inches(5), Inches(0.35)}, Fill: colorDarkLight})
		s.AddBox(Box{Kind: BoxRounded, Rect: Rect{Inches(2.5), Inches(y + 0.05), Inches(5 * share), Inches(0.35)}, Fill: a.color})

		s.AddText(Text{
			Rect:  Rect{Inches(7.6), Inches(y), Inches(2), Inches(0.4)},
			Lines: []string{fmt.Sprintf("%.1f%% | %s", share*100, millions1(a.value))},
			Size:  12, Bold: true, Color: a.color,
		})
	}
}

func (b *Builder) financialSummarySlide(d *Deck) {
	s := d.AddSlide(colorDark)
	slideTitle(s, "Financial Summary")

	headers := []string{"Category", "Gross Value", "NG Cost", "Net Value"}
	colWidths := []float64{2.5, 2, 2, 2}

	y := 1.2
	x := 0.75
	for i, header := range headers {
		s.AddBox(Box{Kind: BoxRect, Rect: Rect{Inches(x), Inches(y), Inches(colWidths[i]), Inches(0.5)}, Fill: colorSecondary})
		s.AddText(Text{
			Rect:  Rect{Inches(x), Inches(y + 0.1), Inches(colWidths[i]), Inches(0.4)},
			Lines: []string{header},
			Size:  14, Bold: true, Color: colorWhite, Align: AlignCenter,
		})
		x += colWidths[i]
	}

	sum := b.m.Summary
	rows := [][]string{
		{"Phase 1+2: Gas Recovery", millions1(sum.Phase12Gross), "-" + millions1(sum.Phase12NGCost), millions1(sum.Phase12Net)},
		{"Phase 3+4: Methanol & MTO", millions1(sum.Phase34Net), "$0", millions1(sum.Phase34Net)},
		{"TOTAL", millions1(sum.Phase12Gross + sum.Phase34Net), "-" + millions1(sum.Phase12NGCost), millions1(sum.TotalNet)},
	}
	for rowIdx, row := range rows {
		y += 0.6
		x = 0.75
		isTotal := rowIdx == len(rows)-1

		for colIdx, cell := range row {
			fill := colorDarkLight
			if isTotal {
				fill = colorTotalCell
			}
			s.AddBox(Box{
				Kind: BoxRect,
				Rect: Rect{Inches(x), Inches(y), Inches(colWidths[colIdx]), Inches(0.55)},
				Fill: fill, HasLine: true, Line: colorGray, LineWidth: Points(0.5),
			})

			size := 13.0
			if isTotal {
				size = 14
			}
			var textColor RGB
			switch {
			case colIdx == 2 && strings.Contains(cell, "-"):
				textColor = colorDanger
			case colIdx == 3:
				textColor = colorSuccess
			default:
				textColor = colorWhite
			}
			align := AlignLeft
			if colIdx > 0 {
				align = AlignCenter
			}
			s.AddText(Text{
				Rect:  Rect{Inches(x), Inches(y + 0.12), Inches(colWidths[colIdx]), Inches(0.4)},
				Lines: []string{cell},
				Size:  size, Bold: isTotal || colIdx == 0, Color: textColor, Align: align,
			})
			x += colWidths[colIdx]
		}
	}

	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(3.8), Inches(9), Inches(0.5)},
		Lines: []string{"Value Composition"},
		Size:  20, Bold: true, Color: colorWhite,
	})

	const totalWidth = 8.5
	phase12Width := totalWidth * sum.Phase12Net / sum.TotalNet
	phase34Width := totalWidth * sum.Phase34Net / sum.TotalNet

	s.AddBox(Box{Kind: BoxRounded, Rect: Rect{Inches(0.75), Inches(4.4), Inches(phase12Width), Inches(0.8)}, Fill: colorPrimary})
	s.AddText(Text{
		Rect:  Rect{Inches(0.75), Inches(4.55), Inches(phase12Width), Inches(0.5)},
		Lines: []string{fmt.Sprintf("Phase 1+2: %s (%.0f%%)", millions1(sum.Phase12Net), sum.Phase12Net/sum.TotalNet*100)},
		Size:  14, Bold: true, Color: colorWhite, Align: AlignCenter,
	})
	s.AddBox(Box{Kind: BoxRounded, Rect: Rect{Inches(0.75 + phase12Width), Inches(4.4), Inches(phase34Width), Inches(0.8)}, Fill: colorAccent})
	s.AddText(Text{
		Rect:  Rect{Inches(0.75 + phase12Width), Inches(4.55), Inches(phase34Width), Inches(0.5)},
		Lines: []string{fmt.Sprintf("Phase 3+4: %s (%.0f%%)", millions1(sum.Phase34Net), sum.Phase34Net/sum.TotalNet*100)},
		Size:  14, Bold: true, Color: colorWhite, Align: AlignCenter,
	})

	card(s, Rect{Inches(0.5), Inches(5.5), Inches(9), Inches(1.3)}, colorSuccess, 2)
	s.AddText(Text{
		Rect:  Rect{Inches(0.7), Inches(5.65), Inches(8.6), Inches(0.4)},
		Lines: []string{"Investment Considerations"},
		Size:  16, Bold: true, Color: colorSuccess,
	})
	s.AddText(Text{
		Rect: Rect{Inches(0.7), Inches(6.0), Inches(8.6), Inches(0.7)},
		Lines: []string{
			fmt.Sprintf("• Net annual value of %s provides strong basis for capital investment", millions0(sum.TotalNet)),
			"• Phased implementation reduces initial capital requirements",
			"• Phase 1+2 can be implemented independently with positive returns",
		},
		Size: 12, Color: colorLight,
	})
}

func (b *Builder) nextStepsSlide(d *Deck) {
	s := d.AddSlide(colorDark)
	slideTitle(s, "Recommendations & Next Steps")

	steps := []struct {
		num, title, desc string
		color            RGB
	}{
		{"1", "Feasibility Study", "Conduct detailed engineering and economic feasibility study for gas recovery infrastructure", colorSecondary},
		{"2", "Partnership Agreement", "Establish formal partnership framework between MIDOR and ETHYDCO for feedstock supply", colorPrimary},
		{"3", "Phase 1 Implementation", "Begin with LPG and hydrogen recovery as quick wins with proven technology", colorAccent},
		{"4", "Methanol Unit Planning", "Plan methanol synthesis and MTO units based on Phase 1 performance", colorSuccess},
	}
	for i, step := range steps {
		y := 1.1 + float64(i)*1.35

		s.AddBox(Box{Kind: BoxRounded, Rect: Rect{Inches(0.5), Inches(y), Inches(0.6), Inches(0.6)}, Fill: step.color})
		s.AddText(Text{
			Rect:  Rect{Inches(0.5), Inches(y + 0.1), Inches(0.6), Inches(0.4)},
			Lines: []string{step.num},
			Size:  24, Bold: true, Color: colorWhite, Align: AlignCenter,
		})
		s.AddText(Text{
			Rect:  Rect{Inches(1.3), Inches(y), Inches(8), Inches(0.5)},
			Lines: []string{step.title},
			Size:  18, Bold: true, Color: step.color,
		})
		s.AddText(Text{
			Rect:  Rect{Inches(1.3), Inches(y + 0.45), Inches(8), Inches(0.5)},
			Lines: []string{step.desc},
			Size:  13, Color: colorLight,
		})
	}

	card(s, Rect{Inches(0.5), Inches(5.8), Inches(9), Inches(1)}, colorSecondary, 2)
	s.AddText(Text{
		Rect:  Rect{Inches(0.7), Inches(5.95), Inches(8.6), Inches(0.4)},
		Lines: []string{"Suggested Timeline"},
		Size:  14, Bold: true, Color: colorSecondary,
	})
	s.AddText(Text{
		Rect:  Rect{Inches(0.7), Inches(6.3), Inches(8.6), Inches(0.4)},
		Lines: []string{"Phase 1+2: 18-24 months  |  Phase 3+4: 24-36 months after Phase 1+2 completion"},
		Size:  12, Color: colorLight,
	})
}

func (b *Builder) conclusionSlide(d *Deck) {
	s := d.AddSlide(colorDark)

	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(0.5), Inches(9), Inches(1)},
		Lines: []string{"Conclusion"},
		Size:  42, Bold: true, Color: colorWhite,
	})

	card(s, Rect{Inches(0.5), Inches(1.6), Inches(9), Inches(1.5)}, colorSecondary, 3)
	s.AddText(Text{
		Rect: Rect{Inches(0.7), Inches(1.85), Inches(8.6), Inches(1.2)},
		Lines: []string{fmt.Sprintf("The MIDOR-ETHYDCO integration represents a transformative opportunity to create $%.0f million in annual value while strengthening Egypt's petrochemical industry and reducing environmental impact.",
			b.m.Summary.TotalNet/1e6)},
		Size: 18, Color: colorLight, Align: AlignCenter,
	})

	stats := []struct {
		value, label string
	}{
		{millions0(b.m.Summary.TotalNet), "Annual Net Value"},
		{fmt.Sprintf("%d", b.m.Streams.Len()), "Gas Streams Utilized"},
		{fmt.Sprintf("%d", len(b.productValueRows())), "Valuable Products"},
		{fmt.Sprintf("%.0f%%+", b.m.MethanolSynthesis.H2Utilization*100), "Feedstock Coverage"},
	}
	for i, stat := range stats {
		x := Inches(0.5 + float64(i)*2.4)
		s.AddText(Text{
			Rect:  Rect{x, Inches(3.5), Inches(2.2), Inches(0.8)},
			Lines: []string{stat.value},
			Size:  36, Bold: true, Color: colorSecondary, Align: AlignCenter,
		})
		s.AddText(Text{
			Rect:  Rect{x, Inches(4.2), Inches(2.2), Inches(0.5)},
			Lines: []string{stat.label},
			Size:  12, Color: colorGray, Align: AlignCenter,
		})
	}

	s.AddBox(Box{Kind: BoxRounded, Rect: Rect{Inches(2.5), Inches(5), Inches(5), Inches(0.8)}, Fill: colorSuccess})
	s.AddText(Text{
		Rect:  Rect{Inches(2.5), Inches(5.15), Inches(5), Inches(0.5)},
		Lines: []string{"Ready to Transform Waste into Value"},
		Size:  20, Bold: true, Color: colorWhite, Align: AlignCenter,
	})

	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(6.3), Inches(9), Inches(0.5)},
		Lines: []string{"MIDOR-ETHYDCO Integration Analysis | December 2025"},
		Size:  12, Color: colorGray, Align: AlignCenter,
	})
}

// slideTitle puts the standard heading on a content slide.
func slideTitle(s *Slide, title string) {
	s.AddText(Text{
		Rect:  Rect{Inches(0.5), Inches(0.3), Inches(9), Inches(0.8)},
		Lines: []string{title},
		Size:  36, Bold: true, Color: colorWhite,
	})
}

// card adds the dark rounded panel used throughout the deck.
func card(s *Slide, r Rect, line RGB, lineWidthPt float64) {
	s.AddBox(Box{
		Kind: BoxRounded, Rect: r,
		Fill: colorDarkLight, HasLine: true, Line: line, LineWidth: Points(lineWidthPt),
	})
}

func millions0(v float64) string { return fmt.Sprintf("$%.0fM", v/1e6) }
func millions1(v float64) string { return fmt.Sprintf("$%.1fM", v/1e6) }

func tonnesPerYear(v float64) string { return groupThousands(v) + " t/y" }

// groupThousands renders v rounded to a whole number with comma
// separators, e.g. 125508.57 -> "125,509".
func groupThousands(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
