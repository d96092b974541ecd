package reports

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// GenerateFinancialRows renders the financial summary table body: seven
// product rows, the NG makeup cost, and the total net line.
func (h *HTMLBuilder) GenerateFinancialRows(m *schema.MetricSet) template.HTML {
	rows := []struct {
		name     string
		quantity float64
		value    float64
	}{
		{"LPG (C3+C4)", m.LPGRecovery.TotalLPG, m.LPGRecovery.LPGValue},
		{"C5+ (Naphtha)", m.LPGRecovery.TotalC5Plus, m.LPGRecovery.C5PlusValue},
		{"Hydrogen (H2)", m.HydrogenRecovery.TotalH2, m.HydrogenRecovery.H2Value},
		{"Ethane (C2)", m.EthaneSupply.MIDORSupply, m.EthaneSupply.C2Value},
		{"Methanol Blend", m.MTOEconomics.MethanolInGasoline, m.MTOEconomics.MethanolValue},
		{"Ethylene (MTO)", m.MTOEconomics.EthyleneFromMTO, m.MTOEconomics.EthyleneValue},
		{"Propylene (MTO)", m.MTOEconomics.PropyleneFromMTO, m.MTOEconomics.PropyleneValue},
	}

	var buf strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&buf, `<tr><td>%s</td><td>%s</td><td class="value">%s</td></tr>`,
			template.HTMLEscapeString(r.name),
			formatThousands(r.quantity, 0),
			formatDollars(r.value))
	}

	fmt.Fprintf(&buf, `<tr style="background: rgba(239,68,68,0.1);">`+
		`<td><strong class="en-only">NG Makeup Cost</strong><strong class="ar-only">تكلفة الغاز الطبيعي</strong></td>`+
		`<td>-</td><td class="cost">-%s</td></tr>`,
		formatDollars(m.Summary.Phase12NGCost))

	fmt.Fprintf(&buf, `<tr style="background: rgba(34,197,94,0.2);">`+
		`<td><strong class="en-only">TOTAL NET VALUE</strong><strong class="ar-only">إجمالي القيمة الصافية</strong></td>`+
		`<td>-</td><td class="value"><strong>%s</strong></td></tr>`,
		formatDollars(m.Summary.TotalNet))

	return template.HTML(buf.String())
}

// GeneratePricesRows renders the product price table body in price-table
// order.
func (h *HTMLBuilder) GeneratePricesRows(m *schema.MetricSet) template.HTML {
	var buf strings.Builder
	for _, p := range m.Prices {
		fmt.Fprintf(&buf, `<tr><td>%s</td><td>$%s</td></tr>`,
			template.HTMLEscapeString(p.Name), formatThousands(p.Price, 0))
	}
	return template.HTML(buf.String())
}
