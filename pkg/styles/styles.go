// Package styles provides the built-in style resolution for cardgen
// renderers: a deterministic mapping from variant/size/status to semantic
// class names, optionally layered with go-theme tokens.
package styles

import (
	"sort"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// Semantic chrome classes emitted by the default resolver.
const (
	ClassCard  = "cardgen-card"
	ClassAlert = "cardgen-alert"
)

func variantClass(v card.Variant) string {
	return ClassCard + "--" + string(v)
}

func sizeClass(s card.Size) string {
	return ClassCard + "--size-" + string(s)
}

func statusClass(s card.Status) string {
	return ClassCard + "--status-" + string(s)
}

// Default returns the built-in StyleResolver. The mapping is pure: the same
// selectors always yield the same descriptor. The status class is only
// emitted for the status variant, matching the selector semantics.
func Default() card.StyleResolver {
	return func(variant card.Variant, size card.Size, status card.Status) card.Style {
		classes := []string{ClassCard, variantClass(variant)}
		if size != card.SizeDefault {
			classes = append(classes, sizeClass(size))
		}
		if variant == card.VariantStatus && status != card.StatusNone {
			classes = append(classes, statusClass(status))
		}

		return card.Style{
			Classes: classes,
			DataAttrs: map[string]string{
				"data-variant": string(variant),
				"data-size":    string(size),
				"data-status":  string(status),
			},
		}
	}
}

// FromTheme layers a go-theme renderer configuration over the default
// resolver: theme CSS vars ride along on every descriptor and the theme
// stylesheet (asset key "card.stylesheet") is surfaced when resolvable.
func FromTheme(cfg *theme.RendererConfig) card.StyleResolver {
	base := Default()
	if cfg == nil {
		return base
	}

	vars := cssVars(cfg)
	stylesheet := ""
	if cfg.AssetURL != nil {
		stylesheet = cfg.AssetURL("card.stylesheet")
	}

	return func(variant card.Variant, size card.Size, status card.Status) card.Style {
		style := base(variant, size, status)
		style.CSSVars = vars
		style.Stylesheet = stylesheet
		return style
	}
}

func cssVars(cfg *theme.RendererConfig) map[string]string {
	if cfg == nil {
		return nil
	}
	if len(cfg.CSSVars) > 0 {
		return copyStringMap(cfg.CSSVars)
	}
	if len(cfg.Tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(cfg.Tokens))
	for token, value := range cfg.Tokens {
		out["--"+token] = value
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

// CSSVarsBlock renders a deterministic :root block from the supplied vars so
// renderers can inline theme tokens without a stylesheet round trip.
func CSSVarsBlock(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := ":root {\n"
	for _, key := range keys {
		out += "  " + key + ": " + vars[key] + ";\n"
	}
	out += "}"
	return out
}
