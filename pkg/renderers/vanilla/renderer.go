package vanilla

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	rendertemplate "github.com/goliatone/go-cardgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-cardgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-cardgen/pkg/styles"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	styleFor         card.StyleResolver
	defaultStyles    bool
	stylesheet       string
	icons            map[card.Status]string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStyleResolver overrides the default style lookup collaborator.
func WithStyleResolver(styleFor card.StyleResolver) Option {
	return func(cfg *config) {
		if styleFor != nil {
			cfg.styleFor = styleFor
		}
	}
}

// WithDefaultStyles inlines the embedded stylesheet into the rendered output
// so cards are presentable without an asset pipeline.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.defaultStyles = true
	}
}

// WithStylesheet links an external stylesheet by URL.
func WithStylesheet(url string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(url)
	}
}

// WithIcons overrides the built-in status icon markup. Every entry is run
// through the SVG sanitizer; entries that sanitize to nothing are dropped.
func WithIcons(icons map[card.Status]string) Option {
	return func(cfg *config) {
		if len(icons) == 0 {
			return
		}
		if cfg.icons == nil {
			cfg.icons = make(map[card.Status]string, len(icons))
		}
		for status, markup := range icons {
			if cleaned := SanitizeIconMarkup(markup); cleaned != "" {
				cfg.icons[status] = cleaned
			}
		}
	}
}

// Renderer emits a standalone HTML fragment for a card: the two-region
// content layout in normal mode, the alert layout when validation is shown.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	styleFor      card.StyleResolver
	defaultStyles bool
	stylesheet    string
	icons         map[card.Status]string
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		styleFor:      cfg.styleFor,
		defaultStyles: cfg.defaultStyles,
		stylesheet:    cfg.stylesheet,
		icons:         cfg.icons,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, input card.Input, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("vanilla renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	state := r.resolve(input, options)

	result, err := r.templates.RenderTemplate("templates/card.tmpl", r.templateContext(input, state, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) resolve(input card.Input, options render.RenderOptions) card.State {
	styleFor := options.StyleResolver
	if styleFor == nil {
		styleFor = r.styleFor
	}
	if styleFor == nil {
		if options.Theme != nil {
			styleFor = styles.FromTheme(options.Theme)
		} else {
			styleFor = styles.Default()
		}
	}

	instance := card.New(input,
		card.WithStyleResolver(styleFor),
		card.WithObserver(options.Observer),
	)
	return instance.Resolve()
}

func (r *Renderer) templateContext(input card.Input, state card.State, options render.RenderOptions) map[string]any {
	cardClass := chromeClass(options.ChromeClasses, ChromeKeyCard, DefaultCardClass)
	alertClass := chromeClass(options.ChromeClasses, ChromeKeyAlert, DefaultAlertClass)

	classes := append([]string{}, state.Style.Classes...)
	if len(classes) == 0 {
		classes = []string{cardClass}
	} else if cardClass != DefaultCardClass {
		classes[0] = cardClass
	}

	stylesheet := options.Stylesheet
	if stylesheet == "" {
		stylesheet = r.stylesheet
	}
	if stylesheet == "" {
		stylesheet = state.Style.Stylesheet
	}

	inline := ""
	if r.defaultStyles {
		inline = defaultStylesheet()
	}

	icon := ""
	if state.Mode == card.ModeValidationError {
		icon = iconFor(card.StatusError, r.icons)
	} else if state.Variant == card.VariantStatus && state.Status != card.StatusNone {
		icon = iconFor(state.Status, r.icons)
	}

	return map[string]any{
		"mode":        string(state.Mode),
		"title":       strings.TrimSpace(input.Title),
		"description": strings.TrimSpace(input.Description),
		"classes":     strings.Join(classes, " "),
		"attrs":       dataAttrs(state.Style.DataAttrs),
		"card_class":  cardClass,
		"alert_class": alertClass,
		"message":     state.Verdict.Message,
		"css_vars":    styles.CSSVarsBlock(state.Style.CSSVars),
		"stylesheet":  stylesheet,
		"inline_css":  inline,
		"icon":        icon,
		"compact":     state.Variant == card.VariantCompact,
	}
}

func chromeClass(overrides map[string]string, key, fallback string) string {
	if value := strings.TrimSpace(overrides[key]); value != "" {
		return value
	}
	return fallback
}

// dataAttrs renders a deterministic attribute tail for the card element.
// Values are enum strings but get escaped anyway.
func dataAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrs[key]))
		b.WriteString(`"`)
	}
	return b.String()
}
