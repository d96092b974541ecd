package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/charts"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/config"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
)

// HTMLBuilder assembles the dashboard document from the metric set, the
// knowledge base, and the pre-built chart figures.
type HTMLBuilder struct {
	templateLoader *TemplateLoader
	goldmark       goldmark.Markdown
	log            *logger.Logger
}

// NewHTMLBuilder creates an HTML builder.
func NewHTMLBuilder() *HTMLBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithHardWraps(),
			htmlrenderer.WithUnsafe(),
		),
	)

	return &HTMLBuilder{
		templateLoader: NewTemplateLoader(),
		goldmark:       md,
		log:            logger.NewDefault().WithComponent("reports"),
	}
}

// TemplateData is the substitution payload for the dashboard template.
type TemplateData struct {
	TotalValueM string
	Phase12M    string
	Phase34M    string

	FinancialRows  template.HTML
	PricesRows     template.HTML
	StreamCards    template.HTML
	FilterButtons  template.HTML
	KnowledgeCards template.HTML

	ChartsEN template.JS
	ChartsAR template.JS

	GeneratedAt string
	Version     string
}

// ConvertMarkdownToHTML converts markdown to HTML using goldmark.
func (h *HTMLBuilder) ConvertMarkdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := h.goldmark.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// BuildDashboard produces the complete self-contained dashboard HTML.
func (h *HTMLBuilder) BuildDashboard(
	m *schema.MetricSet,
	entries []schema.KnowledgeEntry,
	definitions map[string]schema.DefinitionEntry,
	chartSet *charts.ChartSet) (string, error) {

	// A schema defect must stop the build, not ship a broken page.
	if err := schema.ValidateKnowledgeBase(entries, definitions); err != nil {
		return "", fmt.Errorf("knowledge base validation: %w", err)
	}

	knowledgeCards, err := h.GenerateKnowledgeCards(entries, definitions)
	if err != nil {
		return "", err
	}

	data := TemplateData{
		TotalValueM:    formatMillions(m.Summary.TotalNet),
		Phase12M:       formatMillions(m.Summary.Phase12Net),
		Phase34M:       formatMillions(m.Summary.Phase34Net),
		FinancialRows:  h.GenerateFinancialRows(m),
		PricesRows:     h.GeneratePricesRows(m),
		StreamCards:    h.GenerateStreamCards(m),
		FilterButtons:  h.GenerateFilterButtons(entries),
		KnowledgeCards: knowledgeCards,
		ChartsEN:       chartRegistry(chartSet, charts.LangEN),
		ChartsAR:       chartRegistry(chartSet, charts.LangAR),
		GeneratedAt:    time.Now().Format("2006-01-02"),
		Version:        config.GetVersion(),
	}

	finalHTML, err := h.executeTemplate(data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	h.log.Info("Dashboard HTML built", map[string]interface{}{"bytes": len(finalHTML)})
	return finalHTML, nil
}

// chartRegistry builds the JS object literal registering every chart
// figure under its page key.
func chartRegistry(cs *charts.ChartSet, lang charts.Lang) template.JS {
	var pairs []string
	for _, s := range cs.All() {
		fig := s.FigureEN
		if lang == charts.LangAR {
			fig = s.FigureAR
		}
		pairs = append(pairs, fmt.Sprintf("%s: %s", s.Key, fig))
	}
	return template.JS("{\n            " + strings.Join(pairs, ",\n            ") + "\n        }")
}

// executeTemplate executes the dashboard template with the provided data.
func (h *HTMLBuilder) executeTemplate(data TemplateData) (string, error) {
	htmlTemplate, err := h.templateLoader.LoadHTMLTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to load HTML template: %w", err)
	}

	tmpl, err := template.New("dashboard").Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
