// Package cardgen generates presentational card components from typed
// inputs. The root package re-exports the common types and offers one-call
// helpers; the pkg/ tree holds the composable pieces (validator, resolver,
// renderers, presets, orchestrator).
package cardgen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/orchestrator"
	"github.com/goliatone/go-cardgen/pkg/presets"
	"github.com/goliatone/go-cardgen/pkg/render"
)

// Input carries the caller-supplied card content and presentation selectors.
type Input = card.Input

// Verdict is the validation result for a title/description pair.
type Verdict = card.Verdict

// State is the resolved presentation state for a render pass.
type State = card.State

// Style is the opaque style descriptor produced by a StyleResolver.
type Style = card.Style

// StyleResolver maps (variant, size, status) to a style descriptor.
type StyleResolver = card.StyleResolver

// Observer receives validation verdicts per the change-notification
// contract.
type Observer = card.Observer

// RenderOptions describes per-request overrides renderers can surface.
type RenderOptions = render.RenderOptions

// Validate classifies a title/description pair into a verdict with a
// canonical diagnostic message. It never fails; every input maps to a
// verdict.
func Validate(title, description string) Verdict {
	return card.Validate(title, description)
}

// ResolveMode decides between the normal and validation-error render modes.
func ResolveMode(verdict Verdict, showValidation bool) card.Mode {
	return card.ResolveMode(verdict, showValidation)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers composing custom pipelines.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML validates the input and renders it with the named renderer.
// It is the simplest entry point for callers that just want HTML output.
func GenerateHTML(ctx context.Context, input Input, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Input:    input,
		Renderer: rendererName,
	})
}

// GenerateFromPreset renders a named preset from the configured (or
// embedded) catalog using the named renderer.
func GenerateFromPreset(ctx context.Context, presetName, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Preset:   presetName,
		Renderer: rendererName,
	})
}

// EmbeddedPresets loads the built-in preset catalog exercised by the demo
// applications.
func EmbeddedPresets() *presets.Store {
	return presets.MustLoadEmbedded()
}

// WithThemeSelector passes a go-theme selector through to the orchestrator
// so theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

// WithObserver registers a validation observer applied to every request.
func WithObserver(observer Observer) orchestrator.Option {
	return orchestrator.WithObserver(observer)
}

// WithStyleResolver installs an orchestrator-wide style lookup.
func WithStyleResolver(resolver StyleResolver) orchestrator.Option {
	return orchestrator.WithStyleResolver(resolver)
}
