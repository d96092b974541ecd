package reports

import "embed"

//go:embed templates/dashboard.html
var templateFS embed.FS

// TemplateLoader handles loading the embedded HTML template.
type TemplateLoader struct{}

// NewTemplateLoader creates a new template loader.
func NewTemplateLoader() *TemplateLoader {
	return &TemplateLoader{}
}

// LoadHTMLTemplate returns the dashboard template source.
func (t *TemplateLoader) LoadHTMLTemplate() (string, error) {
	content, err := templateFS.ReadFile("templates/dashboard.html")
	if err != nil {
		return "", err
	}
	return string(content), nil
}
