// Package prompt builds the component-generation prompt handed to an AI
// assistant that emits card components for other frameworks. The prompt is
// an embedded template filled from a typed config, so the selector lists and
// validation limits always match what the library actually implements.
package prompt

import (
	"embed"
	"fmt"
	"strings"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render/template/gotemplate"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Config drives the generated prompt text. Zero values fall back to the
// card package's own selectors and limits.
type Config struct {
	// Component is the name the assistant should give the generated
	// component. Defaults to "Card".
	Component string

	// Framework names the target UI framework, e.g. "React" or "Vue".
	Framework string

	// Variants, Sizes, and Statuses list the selector values the generated
	// component must support. Empty slices default to the full sets.
	Variants []string
	Sizes    []string
	Statuses []string

	// TitleLimit and DescriptionLimit are the maximum character counts the
	// generated validation logic should enforce. Zero defaults to the
	// library limits.
	TitleLimit       int
	DescriptionLimit int

	// Rules lists extra instructions appended after the built-in validation
	// rules.
	Rules []string
}

// DefaultConfig returns a config matching the library's own behavior.
func DefaultConfig() Config {
	return Config{
		Component:        "Card",
		Framework:        "React",
		Variants:         selectorStrings(card.Variants()),
		Sizes:            selectorStrings(card.Sizes()),
		Statuses:         selectorStrings(card.Statuses()),
		TitleLimit:       card.MaxTitleLength,
		DescriptionLimit: card.MaxDescriptionLength,
	}
}

// Build renders the component-generation prompt for the given config.
func Build(cfg Config) (string, error) {
	cfg = withDefaults(cfg)

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		return "", fmt.Errorf("prompt: create engine: %w", err)
	}

	out, err := engine.RenderTemplate("templates/component", map[string]any{
		"component":         cfg.Component,
		"framework":         cfg.Framework,
		"variants":          cfg.Variants,
		"sizes":             cfg.Sizes,
		"statuses":          cfg.Statuses,
		"title_limit":       cfg.TitleLimit,
		"description_limit": cfg.DescriptionLimit,
		"rules":             cfg.Rules,
	})
	if err != nil {
		return "", fmt.Errorf("prompt: render: %w", err)
	}

	return strings.TrimSpace(out) + "\n", nil
}

// MustBuild is Build for static configs known to be valid.
func MustBuild(cfg Config) string {
	out, err := Build(cfg)
	if err != nil {
		panic(err)
	}
	return out
}

func withDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.Component) == "" {
		cfg.Component = defaults.Component
	}
	if strings.TrimSpace(cfg.Framework) == "" {
		cfg.Framework = defaults.Framework
	}
	if len(cfg.Variants) == 0 {
		cfg.Variants = defaults.Variants
	}
	if len(cfg.Sizes) == 0 {
		cfg.Sizes = defaults.Sizes
	}
	if len(cfg.Statuses) == 0 {
		cfg.Statuses = defaults.Statuses
	}
	if cfg.TitleLimit <= 0 {
		cfg.TitleLimit = defaults.TitleLimit
	}
	if cfg.DescriptionLimit <= 0 {
		cfg.DescriptionLimit = defaults.DescriptionLimit
	}
	return cfg
}

func selectorStrings[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}
	return out
}
