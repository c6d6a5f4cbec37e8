package copywriting

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

// Supported prompt locales.
const (
	LocaleEnglish = "en"
	LocaleKorean  = "ko"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PromptBuilder renders the product page prompt for a Brief.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder returns a builder for the embedded template of locale.
// When templatePath is set, that file is parsed instead and locale is ignored.
func NewPromptBuilder(locale, templatePath string) (*PromptBuilder, error) {
	if templatePath != "" {
		content, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidTemplate, templatePath, err)
		}
		return parsePrompt("custom", string(content))
	}

	if locale == "" {
		locale = LocaleEnglish
	}
	content, err := templateFS.ReadFile("templates/product_page." + locale + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return parsePrompt(locale, string(content))
}

func parsePrompt(name, content string) (*PromptBuilder, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt. The same brief always yields the same text.
func (b *PromptBuilder) Build(brief *Brief) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, brief); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
