package reports

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// categoryLabels maps a category to its filter-button caption.
var categoryLabels = map[schema.Category]schema.BilingualText{
	schema.CategoryFeed:    {EN: "Feeds", AR: "التغذية"},
	schema.CategoryProduct: {EN: "Products", AR: "المنتجات"},
	schema.CategoryFlare:   {EN: "Flares", AR: "الشعلات"},
	schema.CategoryFuel:    {EN: "Fuel", AR: "الوقود"},
	schema.CategoryOther:   {EN: "Other", AR: "أخرى"},
}

// GenerateFilterButtons builds the knowledge-base category filter bar.
// Counts are the initial totals; the page recomputes them as filters and
// search narrow the visible set.
func (h *HTMLBuilder) GenerateFilterButtons(entries []schema.KnowledgeEntry) template.HTML {
	counts := schema.CountByCategory(entries)

	var buf strings.Builder
	fmt.Fprintf(&buf, `<button class="filter-btn active" data-category="all" onclick="filterCategory('all')">`+
		`<span class="en-only">All</span><span class="ar-only">الكل</span>`+
		`<span class="filter-count" data-category="all">%d</span></button>`, len(entries))

	for _, cat := range schema.CategoryOrder {
		label := categoryLabels[cat]
		fmt.Fprintf(&buf, `<button class="filter-btn" data-category="%s" onclick="filterCategory('%s')">`+
			`<span class="en-only">%s</span><span class="ar-only">%s</span>`+
			`<span class="filter-count" data-category="%s">%d</span></button>`,
			cat, cat,
			template.HTMLEscapeString(label.EN), template.HTMLEscapeString(label.AR),
			cat, counts[cat])
	}

	return template.HTML(buf.String())
}

// GenerateKnowledgeCards renders one expandable card per entry. Optional
// sections are emitted only when the entry carries the data.
func (h *HTMLBuilder) GenerateKnowledgeCards(entries []schema.KnowledgeEntry, definitions map[string]schema.DefinitionEntry) (template.HTML, error) {
	var buf strings.Builder
	for i := range entries {
		card, err := h.renderKnowledgeCard(&entries[i], definitions)
		if err != nil {
			return "", err
		}
		buf.WriteString(card)
	}
	return template.HTML(buf.String()), nil
}

func (h *HTMLBuilder) renderKnowledgeCard(e *schema.KnowledgeEntry, definitions map[string]schema.DefinitionEntry) (string, error) {
	var buf strings.Builder

	fmt.Fprintf(&buf, `<div class="kb-card" data-category="%s" data-search="%s">`,
		e.Category, template.HTMLEscapeString(searchText(e)))

	// Header: icon, bilingual name, unit-aware quantity summary, badge.
	buf.WriteString(`<div class="kb-card-header" onclick="toggleCard(this)">`)
	fmt.Fprintf(&buf, `<span class="kb-icon">%s</span>`, e.Category.Icon())
	buf.WriteString(`<div class="kb-head-text">`)
	fmt.Fprintf(&buf, `<div class="kb-name"><span class="en-only">%s</span><span class="ar-only">%s</span></div>`,
		template.HTMLEscapeString(e.Name.EN), template.HTMLEscapeString(e.Name.AR))
	if e.HasQuantities() {
		hourly, annual := quantitySummary(e)
		fmt.Fprintf(&buf, `<div class="kb-summary kb-quantity" data-hourly="%s" data-annual="%s">%s</div>`,
			template.HTMLEscapeString(hourly), template.HTMLEscapeString(annual), template.HTMLEscapeString(annual))
	}
	buf.WriteString(`</div>`)
	label := categoryLabels[e.Category]
	fmt.Fprintf(&buf, `<span class="kb-badge"><span class="en-only">%s</span><span class="ar-only">%s</span></span>`,
		template.HTMLEscapeString(label.EN), template.HTMLEscapeString(label.AR))
	buf.WriteString(`</div>`)

	buf.WriteString(`<div class="kb-card-body">`)

	if util := e.Utilization(); e.Design != nil && e.Actual != nil {
		buf.WriteString(`<div class="kb-section">`)
		buf.WriteString(`<div class="kb-section-title"><span class="en-only">Capacity Utilization</span><span class="ar-only">استغلال الطاقة</span></div>`)
		fmt.Fprintf(&buf, `<div class="kb-bar-track"><div class="kb-bar-fill" style="width: %.1f%%"></div></div>`, util)
		fmt.Fprintf(&buf, `<div class="kb-bar-label">%.1f%%</div>`, util)
		buf.WriteString(`</div>`)
	}

	if len(e.Composition) > 0 {
		buf.WriteString(`<div class="kb-section">`)
		buf.WriteString(`<div class="kb-section-title"><span class="en-only">Composition</span><span class="ar-only">التركيب</span></div>`)
		for _, c := range e.Composition {
			fmt.Fprintf(&buf, `<div class="data-row"><span>%s</span><span>%s</span></div>`,
				template.HTMLEscapeString(c.Name), shareText(c))
		}
		buf.WriteString(`</div>`)
	}

	if e.Conditions != nil {
		buf.WriteString(`<div class="kb-section">`)
		buf.WriteString(`<div class="kb-section-title"><span class="en-only">Operating Conditions</span><span class="ar-only">ظروف التشغيل</span></div>`)
		fmt.Fprintf(&buf, `<div class="data-row"><span><span class="en-only">Pressure</span><span class="ar-only">الضغط</span></span><span>%s</span></div>`,
			template.HTMLEscapeString(e.Conditions.Pressure))
		fmt.Fprintf(&buf, `<div class="data-row"><span><span class="en-only">Temperature</span><span class="ar-only">الحرارة</span></span><span>%s</span></div>`,
			template.HTMLEscapeString(e.Conditions.Temperature))
		fmt.Fprintf(&buf, `<div class="data-row"><span><span class="en-only">Phase</span><span class="ar-only">الطور</span></span><span>%s</span></div>`,
			template.HTMLEscapeString(e.Conditions.Phase))
		buf.WriteString(`</div>`)
	}

	if e.Routing != nil {
		buf.WriteString(`<div class="kb-section">`)
		buf.WriteString(`<div class="kb-section-title"><span class="en-only">Routing</span><span class="ar-only">المسار</span></div>`)
		fmt.Fprintf(&buf, `<div class="kb-routing"><span><span class="en-only">%s</span><span class="ar-only">%s</span></span>`+
			`<span class="arrow">→</span>`+
			`<span><span class="en-only">%s</span><span class="ar-only">%s</span></span></div>`,
			template.HTMLEscapeString(e.Routing.From.EN), template.HTMLEscapeString(e.Routing.From.AR),
			template.HTMLEscapeString(e.Routing.To.EN), template.HTMLEscapeString(e.Routing.To.AR))
		buf.WriteString(`</div>`)
	}

	if e.DefinitionKey != "" {
		def, ok := definitions[e.DefinitionKey]
		if !ok {
			return "", fmt.Errorf("entry %q references unknown definition %q", e.ID, e.DefinitionKey)
		}
		buf.WriteString(`<div class="kb-section kb-def">`)
		fmt.Fprintf(&buf, `<button class="kb-def-btn" onclick="togglePopover(this)">ℹ <span class="en-only">%s</span><span class="ar-only">%s</span></button>`,
			template.HTMLEscapeString(def.Term.EN), template.HTMLEscapeString(def.Term.AR))
		buf.WriteString(`<div class="kb-popover">`)
		fmt.Fprintf(&buf, `<div class="kb-popover-term"><span class="en-only">%s</span><span class="ar-only">%s</span></div>`,
			template.HTMLEscapeString(def.Term.EN), template.HTMLEscapeString(def.Term.AR))
		fmt.Fprintf(&buf, `<div class="kb-popover-short"><span class="en-only">%s</span><span class="ar-only">%s</span></div>`,
			template.HTMLEscapeString(def.Short.EN), template.HTMLEscapeString(def.Short.AR))
		fmt.Fprintf(&buf, `<div class="kb-popover-long"><span class="en-only">%s</span><span class="ar-only">%s</span></div>`,
			template.HTMLEscapeString(def.Long.EN), template.HTMLEscapeString(def.Long.AR))
		buf.WriteString(`</div></div>`)
	}

	if !e.Comment.IsZero() {
		commentEN, err := h.ConvertMarkdownToHTML(e.Comment.EN)
		if err != nil {
			return "", fmt.Errorf("entry %q: render comment: %w", e.ID, err)
		}
		commentAR, err := h.ConvertMarkdownToHTML(e.Comment.AR)
		if err != nil {
			return "", fmt.Errorf("entry %q: render comment: %w", e.ID, err)
		}
		buf.WriteString(`<div class="kb-section kb-comment">`)
		fmt.Fprintf(&buf, `<div class="en-only">%s</div><div class="ar-only">%s</div>`, commentEN, commentAR)
		buf.WriteString(`</div>`)
	}

	if len(e.Notes) > 0 {
		buf.WriteString(`<div class="kb-section"><ul class="kb-notes">`)
		for _, n := range e.Notes {
			fmt.Fprintf(&buf, `<li><span class="en-only">%s</span><span class="ar-only">%s</span></li>`,
				template.HTMLEscapeString(n.EN), template.HTMLEscapeString(n.AR))
		}
		buf.WriteString(`</ul></div>`)
	}

	buf.WriteString(`</div></div>`)
	return buf.String(), nil
}

// searchText flattens an entry into the lowercase haystack the page's
// search box matches against.
func searchText(e *schema.KnowledgeEntry) string {
	parts := []string{e.Name.EN, e.Name.AR, string(e.Category)}
	for _, c := range e.Composition {
		parts = append(parts, c.Name)
	}
	if e.Routing != nil {
		parts = append(parts, e.Routing.From.EN, e.Routing.From.AR, e.Routing.To.EN, e.Routing.To.AR)
	}
	parts = append(parts, e.Comment.EN, e.Comment.AR)
	for _, n := range e.Notes {
		parts = append(parts, n.EN, n.AR)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// quantitySummary precomputes both unit renderings of the actual/design
// pair so the unit toggle is a pure text swap in the browser.
func quantitySummary(e *schema.KnowledgeEntry) (hourly, annual string) {
	switch {
	case e.Actual != nil && e.Design != nil:
		hourly = qtyHourly(e.Actual) + " / " + qtyHourly(e.Design) + " t/h"
		annual = qtyAnnual(e.Actual) + " / " + qtyAnnual(e.Design) + " t/y"
	case e.Actual != nil:
		hourly = qtyHourly(e.Actual) + " t/h"
		annual = qtyAnnual(e.Actual) + " t/y"
	default:
		hourly = qtyHourly(e.Design) + " t/h"
		annual = qtyAnnual(e.Design) + " t/y"
	}
	return hourly, annual
}

func qtyAnnual(q *schema.Quantity) string {
	if q.IsRange {
		lo := schema.Scalar(q.Min, q.Unit).AnnualTonnes()
		hi := schema.Scalar(q.Max, q.Unit).AnnualTonnes()
		return formatThousands(lo, 0) + "–" + formatThousands(hi, 0)
	}
	return formatThousands(q.AnnualTonnes(), 0)
}

func qtyHourly(q *schema.Quantity) string {
	if q.IsRange {
		lo := schema.Scalar(q.Min, q.Unit).HourlyTonnes()
		hi := schema.Scalar(q.Max, q.Unit).HourlyTonnes()
		return formatThousands(lo, 1) + "–" + formatThousands(hi, 1)
	}
	return formatThousands(q.HourlyTonnes(), 1)
}

// shareText renders a composition share, collapsing point ranges.
func shareText(c schema.CompositionItem) string {
	if c.IsRange() {
		return fmt.Sprintf("%.1f–%.1f%%", c.Min, c.Max)
	}
	return fmt.Sprintf("%.1f%%", c.Min)
}

// GenerateStreamCards renders the detailed-tab cards, one per recovered
// stream, with the per-component tonnage rows.
func (h *HTMLBuilder) GenerateStreamCards(m *schema.MetricSet) template.HTML {
	components := []string{"H2", "CH4", "C2", "C3", "C4", "C5+"}

	var buf strings.Builder
	for i := 0; i < m.Streams.Len(); i++ {
		buf.WriteString(`<div class="data-card">`)
		fmt.Fprintf(&buf, `<div class="data-card-header">%s <span class="ar-only">(%s)</span></div>`,
			template.HTMLEscapeString(m.Streams.Names[i]), template.HTMLEscapeString(m.Streams.NamesAR[i]))
		fmt.Fprintf(&buf, `<div class="data-card-value">%.1fK <span style="font-size: 0.8rem; color: var(--gray);">t/y</span></div>`,
			m.Streams.FlowTY[i]/1000)
		for _, comp := range components {
			fmt.Fprintf(&buf, `<div class="data-row"><span>%s</span><span>%s t/y</span></div>`,
				comp, formatThousands(m.StreamComponents[comp][i], 0))
		}
		buf.WriteString(`</div>`)
	}
	return template.HTML(buf.String())
}
