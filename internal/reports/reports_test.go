package reports

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/charts"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/storage"
)

func buildDashboardHTML(t *testing.T) string {
	t.Helper()
	m := schema.LoadMetrics()
	chartSet, err := charts.NewChartGenerator().GenerateAll(m)
	if err != nil {
		t.Fatalf("chart generation failed: %v", err)
	}
	html, err := NewHTMLBuilder().BuildDashboard(m, schema.LoadKnowledgeBase(), schema.LoadDefinitions(), chartSet)
	if err != nil {
		t.Fatalf("BuildDashboard failed: %v", err)
	}
	return html
}

func TestBuildDashboardContainsEverything(t *testing.T) {
	html := buildDashboardHTML(t)

	wants := []string{
		"<!DOCTYPE html>",
		// Both language variants of the chart registries.
		"var chartsEN =",
		"var chartsAR =",
		"المرحلة",
		// One div pair per chart.
		`id="chart-donut-en"`, `id="chart-donut-ar"`,
		`id="chart-sankey-en"`, `id="chart-gauge-min-en"`, `id="chart-gauge-max-ar"`,
		// Headline KPIs.
		"$196M", "$100M", "$96M",
		// Knowledge-base controls and cards.
		`class="kb-search"`,
		`data-category="feed"`,
		`data-category="all"`,
		"kb-card",
		"data-hourly=",
		"data-annual=",
		// Financial table.
		"TOTAL NET VALUE",
		"إجمالي القيمة الصافية",
	}
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestFilterButtonCounts(t *testing.T) {
	h := NewHTMLBuilder()
	entries := schema.LoadKnowledgeBase()
	buttons := string(h.GenerateFilterButtons(entries))

	counts := map[string]int{
		"all": len(entries), "feed": 4, "product": 7, "flare": 2, "fuel": 2, "other": 3,
	}
	for cat, n := range counts {
		want := fmt.Sprintf(`<span class="filter-count" data-category="%s">%d</span>`, cat, n)
		if !strings.Contains(buttons, want) {
			t.Errorf("filter buttons missing %q", want)
		}
	}
}

func TestKnowledgeCardUnitSummaries(t *testing.T) {
	h := NewHTMLBuilder()
	cards, err := h.GenerateKnowledgeCards(schema.LoadKnowledgeBase(), schema.LoadDefinitions())
	if err != nil {
		t.Fatalf("GenerateKnowledgeCards failed: %v", err)
	}
	s := string(cards)

	// Refinery off-gas: 48,459.44 kg/h actual against 52,000 kg/h design.
	if !strings.Contains(s, `data-hourly="48.5 / 52.0 t/h"`) {
		t.Error("refinery off-gas hourly summary missing or wrong")
	}
	if !strings.Contains(s, `data-annual="387,676 / 416,000 t/y"`) {
		t.Error("refinery off-gas annual summary missing or wrong")
	}

	// Ethane: range design renders both bounds.
	if !strings.Contains(s, "83,600–121,600") {
		t.Error("ethane design range missing from annual summary")
	}
}

func TestKnowledgeCardMarkdownComment(t *testing.T) {
	h := NewHTMLBuilder()
	entry := schema.KnowledgeEntry{
		ID:       "test-entry",
		Name:     schema.BilingualText{EN: "Test", AR: "اختبار"},
		Category: schema.CategoryOther,
		Comment:  schema.BilingualText{EN: "A **bold** claim", AR: "ادعاء **جريء**"},
	}
	card, err := h.renderKnowledgeCard(&entry, schema.LoadDefinitions())
	if err != nil {
		t.Fatalf("renderKnowledgeCard failed: %v", err)
	}
	if !strings.Contains(card, "<strong>bold</strong>") {
		t.Errorf("markdown comment not rendered:\n%s", card)
	}
	if !strings.Contains(card, "<strong>جريء</strong>") {
		t.Errorf("arabic markdown comment not rendered:\n%s", card)
	}
}

func TestKnowledgeCardUnknownDefinitionFails(t *testing.T) {
	h := NewHTMLBuilder()
	entry := schema.KnowledgeEntry{
		ID:            "bad-entry",
		Name:          schema.BilingualText{EN: "Bad", AR: "سيئ"},
		Category:      schema.CategoryOther,
		DefinitionKey: "no-such-key",
	}
	if _, err := h.renderKnowledgeCard(&entry, schema.LoadDefinitions()); err == nil {
		t.Fatal("expected error for unknown definition key")
	}
}

func TestFinancialRows(t *testing.T) {
	h := NewHTMLBuilder()
	rows := string(h.GenerateFinancialRows(schema.LoadMetrics()))

	for _, want := range []string{
		"125,509",        // LPG quantity
		"$91,495,750",    // LPG value
		"-$76,231,322",   // NG makeup cost
		"$196,065,942",   // total net
		"TOTAL NET VALUE",
	} {
		if !strings.Contains(rows, want) {
			t.Errorf("financial rows missing %q", want)
		}
	}

	if n := strings.Count(rows, "<tr"); n != 9 {
		t.Errorf("expected 9 table rows, got %d", n)
	}
}

func TestStreamCards(t *testing.T) {
	h := NewHTMLBuilder()
	cards := string(h.GenerateStreamCards(schema.LoadMetrics()))

	if n := strings.Count(cards, `class="data-card"`); n != 6 {
		t.Errorf("expected 6 stream cards, got %d", n)
	}
	for _, want := range []string{"Refinery Gas", "غاز المصفاة", "387.7K", "PSA Purge"} {
		if !strings.Contains(cards, want) {
			t.Errorf("stream cards missing %q", want)
		}
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{125508.57, 0, "125,509"},
		{48.45944, 1, "48.5"},
		{1234567.89, 0, "1,234,568"},
		{-76231321.92, 0, "-76,231,322"},
		{999, 0, "999"},
	}
	for _, tt := range tests {
		if got := formatThousands(tt.v, tt.decimals); got != tt.want {
			t.Errorf("formatThousands(%f, %d) = %q, want %q", tt.v, tt.decimals, got, tt.want)
		}
	}
}

func TestRenderAllPNGCharts(t *testing.T) {
	pngs, err := NewPNGRenderer().RenderAll(schema.LoadMetrics())
	if err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}
	for _, name := range []string{"phase_split.png", "product_values.png", "hydrogen_balance.png"} {
		data, ok := pngs[name]
		if !ok {
			t.Errorf("missing chart %s", name)
			continue
		}
		if len(data) < 8 || !bytes.HasPrefix(data, []byte("\x89PNG")) {
			t.Errorf("%s does not look like a PNG", name)
		}
	}
}

func TestBuildWorkbook(t *testing.T) {
	entries := schema.LoadKnowledgeBase()
	data, err := NewExcelWriter().BuildWorkbook(schema.LoadMetrics(), entries)
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not reopen: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{sheetKnowledge, sheetPrices, sheetSummary} {
		found := false
		for _, s := range sheets {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("workbook missing sheet %q (have %v)", want, sheets)
		}
	}

	rows, err := f.GetRows(sheetKnowledge)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != len(entries)+1 {
		t.Errorf("knowledge sheet has %d rows, want %d", len(rows), len(entries)+1)
	}
	if rows[0][0] != "ID" || rows[0][3] != "Category" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
}

func TestFileGeneratorEndToEnd(t *testing.T) {
	fg := NewFileGenerator()
	files, err := fg.GenerateAll(schema.LoadMetrics(), schema.LoadKnowledgeBase(), schema.LoadDefinitions())
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if !bytes.Contains(files.Dashboard, []byte("<!DOCTYPE html>")) {
		t.Error("dashboard artifact is not HTML")
	}
	if !bytes.HasPrefix(files.Workbook, []byte("PK")) {
		t.Error("workbook artifact is not a zip container")
	}
	if len(files.Charts) != 3 {
		t.Errorf("expected 3 chart artifacts, got %d", len(files.Charts))
	}

	dir := t.TempDir()
	if err := fg.WriteLocal(dir, files); err != nil {
		t.Fatalf("WriteLocal failed: %v", err)
	}
	for _, name := range []string{storage.DashboardFilename, WorkbookFilename, "phase_split.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("artifact %s not written: %v", name, err)
		}
	}

	store, err := storage.NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("storage client: %v", err)
	}
	defer store.Close()

	ts := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	if err := fg.Publish(context.Background(), store, files, ts); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	latest, err := store.GetLatestReport()
	if err != nil {
		t.Fatalf("GetLatestReport failed: %v", err)
	}
	if filepath.Base(latest) != storage.DashboardFilename {
		t.Errorf("latest report = %q, want dashboard", latest)
	}
}
