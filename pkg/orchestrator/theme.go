package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

type themeSelector = theme.ThemeSelector

// WithThemeSelector passes a go-theme selector through to the orchestrator
// so theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks overrides the fallback partials applied when deriving
// renderer configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// defaultThemeFallbacks maps partial keys to the embedded templates used
// when a theme does not override them.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"card.layout": "templates/card.tmpl",
	}
}

// resolveTheme builds the renderer-facing theme configuration for the
// requested theme/variant pair. Base manifest values are layered first, then
// the selected variant's overrides.
func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if name == "" {
		return nil, nil
	}
	if o.themeSelector == nil {
		return nil, errors.New("orchestrator: theme requested but no selector configured")
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("orchestrator: theme %q resolved to an empty selection", name)
	}

	manifest := selection.Manifest

	tokens := mergeStringMaps(manifest.Tokens, nil)
	partials := mergeStringMaps(o.fallbackPartials(), manifest.Templates)
	assetPrefix := manifest.Assets.Prefix
	assetFiles := mergeStringMaps(manifest.Assets.Files, nil)

	if variantSpec, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStringMaps(tokens, variantSpec.Tokens)
		partials = mergeStringMaps(partials, variantSpec.Templates)
		if variantSpec.Assets.Prefix != "" {
			assetPrefix = variantSpec.Assets.Prefix
		}
		assetFiles = mergeStringMaps(assetFiles, variantSpec.Assets.Files)
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(assetPrefix, assetFiles),
	}
	return cfg, nil
}

func (o *Orchestrator) fallbackPartials() map[string]string {
	if o.themeFallbacks != nil {
		return o.themeFallbacks
	}
	return defaultThemeFallbacks()
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}

func mergeStringMaps(base, overlay map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overlay {
		out[key] = value
	}
	return out
}
